package survey

import (
	"errors"
	"fmt"
)

// ErrInvalidAnswer is returned by Sheet.Record when the value is neither
// True nor False. Answers can be overwritten but never cleared back to
// Unanswered.
var ErrInvalidAnswer = errors.New("answer must be true or false")

var errNilSet = errors.New("survey: nil question set")

// ErrInvalidPageSize rejects flow construction with a non-positive page
// size.
type ErrInvalidPageSize struct {
	PageSize int
}

func (e *ErrInvalidPageSize) Error() string {
	return fmt.Sprintf("page size must be positive, got %d", e.PageSize)
}

// ErrUnknownQuestion indicates an answer was recorded against an id that is
// not in the question set. Existing state is left untouched.
type ErrUnknownQuestion struct {
	ID int
}

func (e *ErrUnknownQuestion) Error() string {
	return fmt.Sprintf("no question with id %d", e.ID)
}

// ErrPageOutOfRange indicates a page query outside [0, Pages). Question
// pages only: the info step is the flow's concern, not the paginator's.
type ErrPageOutOfRange struct {
	Page  int
	Pages int
}

func (e *ErrPageOutOfRange) Error() string {
	return fmt.Sprintf("page %d out of range [0, %d)", e.Page, e.Pages)
}
