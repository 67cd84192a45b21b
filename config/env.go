package config

import (
	"github.com/joho/godotenv"
)

// LoadEnv copies a .env file into the process environment. Variables already set win.
// A missing file is not an error; the real environment is used instead.
func LoadEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		Logger.Warn("Error loading .env file, will use environment variables instead: ", err)
	}
}
