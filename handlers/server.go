package handlers

import (
	"context"
	"io"
	"time"

	"clementus360/habit-dashboard/config"
	"clementus360/habit-dashboard/types"
)

// TaskService is the remote task source the handlers delegate to.
type TaskService interface {
	FetchDueTasks(ctx context.Context, now time.Time) ([]types.Task, error)
	MarkTaskDone(ctx context.Context, taskID string) error
}

type Renderer interface {
	RenderDashboard(w io.Writer, tasks []types.Task) error
	RenderLogin(w io.Writer) error
}

// Server holds what the HTTP handlers need. Nothing in it changes after startup.
type Server struct {
	Site     config.SiteConfig
	Tasks    TaskService
	Renderer Renderer
	Now      func() time.Time
}

func New(cfg *config.Config, tasks TaskService, renderer Renderer) *Server {
	return &Server{
		Site:     cfg.Site,
		Tasks:    tasks,
		Renderer: renderer,
		Now:      time.Now,
	}
}
