package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("Invalid input")
	ErrInternal     = errors.New("Internal error")
)

// NotRelevantError is returned when the relevance gate explicitly judged an
// image as not depicting job-posting content. Recoverable: the caller may
// retry with force=true to skip the gate.
type NotRelevantError struct {
	Reason string
}

func (e *NotRelevantError) Error() string {
	if e == nil {
		return ""
	}
	return "image not relevant: " + e.Reason
}
