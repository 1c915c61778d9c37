// Package actions is the orchestration layer: each action accepts typed
// input, performs at most two backend calls, and returns a uniform
// success/error envelope. No raw error ever escapes to a caller.
package actions

import (
	"github.com/vamm99/moterplace/internal/errors"
)

// Result is the envelope every action returns. Error is a user-facing
// message, already safe to render.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// fail maps err to a user-facing message: an AppError keeps its message,
// anything else collapses to the fallback.
func fail[T any](err error, fallback string) Result[T] {

	message := fallback

	if appErr, isApp := errors.IsAppError(err); isApp && appErr.Message != "" {
		message = appErr.Message
	}

	return Result[T]{Success: false, Error: message}
}

func failMessage[T any](message string) Result[T] {
	return Result[T]{Success: false, Error: message}
}

// idDoc is the minimal backend creation response: just the new document id.
type idDoc struct {
	ID string `json:"_id"`
}

// dataEnvelope is the backend's standard response wrapper.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}
