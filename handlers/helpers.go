package handlers

import (
	"clementus360/habit-dashboard/habitica"
	"clementus360/habit-dashboard/types"
	"encoding/json"
	"errors"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, status int) {
	resp := types.CompleteTaskResponse{
		Success:      false,
		ErrorMessage: message,
	}
	writeJSON(w, status, resp)
}

// upstreamStatus maps remote failures to 502 and anything else to 500.
func upstreamStatus(err error) int {
	var upstream *habitica.UpstreamError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
