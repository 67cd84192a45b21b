package habitica

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"clementus360/habit-dashboard/schedule"
	"clementus360/habit-dashboard/types"
)

// Direction is the way a task is scored.
type Direction string

const DirectionUp Direction = "up"

// FetchAllTasks returns every task on the account in the order the service lists them.
func (c *Client) FetchAllTasks(ctx context.Context) ([]types.Task, error) {
	var resp types.TasksResponse
	if err := c.do(ctx, "fetch tasks", http.MethodGet, "/tasks/user", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &UpstreamError{Op: "fetch tasks", StatusCode: http.StatusOK, Err: errors.New("response reported failure")}
	}
	return resp.Data, nil
}

// FetchDueTasks returns the tasks due at now according to the user's day start.
func (c *Client) FetchDueTasks(ctx context.Context, now time.Time) ([]types.Task, error) {
	dayStart, err := c.FetchDayStartHour(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := c.FetchAllTasks(ctx)
	if err != nil {
		return nil, err
	}

	return schedule.FilterDue(tasks, now, dayStart), nil
}

// MarkTaskDone scores the task upward. The dashboard never scores down.
func (c *Client) MarkTaskDone(ctx context.Context, taskID string) error {
	return c.scoreTask(ctx, taskID, DirectionUp)
}

func (c *Client) scoreTask(ctx context.Context, taskID string, direction Direction) error {
	path := "/tasks/" + url.PathEscape(taskID) + "/score/" + string(direction)
	return c.do(ctx, "score task", http.MethodPost, path, nil)
}
