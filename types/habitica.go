package types

// Envelope is the wrapper every remote API response is delivered in.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type User struct {
	Preferences Preferences `json:"preferences"`
}

type Preferences struct {
	DayStart int `json:"dayStart"`
}

type TasksResponse = Envelope[[]Task]

type UserResponse = Envelope[User]
