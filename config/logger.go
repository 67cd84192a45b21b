// config/logger.go
package config

import (
	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func InitLogger(level string) {
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Logger.Warnf("Unknown log level %q, using %s", level, DefaultLogLevel)
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)
}
