package handlers

import (
	"bytes"
	"clementus360/habit-dashboard/config"
	"clementus360/habit-dashboard/types"
	"context"
	"net/http"

	"github.com/google/uuid"
)

// DashboardHandler renders the tasks due today. A remote failure fails the request;
// there is no cached fallback.
func (s *Server) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	// The remote call finishes even if the browser goes away.
	ctx := context.WithoutCancel(r.Context())

	tasks, err := s.Tasks.FetchDueTasks(ctx, s.Now())
	if err != nil {
		config.Logger.Error("Failed to fetch due tasks: ", err)
		http.Error(w, "Failed to fetch tasks", upstreamStatus(err))
		return
	}

	var buf bytes.Buffer
	if err := s.Renderer.RenderDashboard(&buf, tasks); err != nil {
		config.Logger.Error("Failed to render dashboard: ", err)
		http.Error(w, "Failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// CompleteTaskHandler scores the task named in the path upward.
func (s *Server) CompleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(taskID); err != nil {
		config.Logger.Warn("Invalid task ID format: ", err)
		writeError(w, "Invalid task ID", http.StatusBadRequest)
		return
	}

	config.Logger.Infof("Completing task %s", taskID)

	if err := s.Tasks.MarkTaskDone(context.WithoutCancel(r.Context()), taskID); err != nil {
		config.Logger.Error("Failed to complete task: ", err)
		writeError(w, "Failed to complete task", upstreamStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, types.CompleteTaskResponse{
		Success: true,
		TaskID:  taskID,
	})
}
