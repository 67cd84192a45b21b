package habitica

import (
	"context"
	"errors"
	"net/http"

	"clementus360/habit-dashboard/types"
)

// FetchDayStartHour returns the hour at which the user's day begins.
func (c *Client) FetchDayStartHour(ctx context.Context) (int, error) {
	var resp types.UserResponse
	if err := c.do(ctx, "fetch day start", http.MethodGet, "/user?userFields=preferences", &resp); err != nil {
		return 0, err
	}
	if !resp.Success {
		return 0, &UpstreamError{Op: "fetch day start", StatusCode: http.StatusOK, Err: errors.New("response reported failure")}
	}
	return resp.Data.Preferences.DayStart, nil
}
