package dto

// ActionResponse is the uniform envelope returned by form-submission handlers.
// Exactly one of Message/Error is set.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Success(msg string) ActionResponse { return ActionResponse{Success: true, Message: msg} }
func Failure(msg string) ActionResponse { return ActionResponse{Success: false, Error: msg} }
