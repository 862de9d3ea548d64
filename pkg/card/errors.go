package card

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrGenerationFailed   = errors.New("text generation failed")
	ErrInvalidModelOutput = errors.New("model returned invalid JSON for card stats")
)

// ModelOutputError reports text-model output that could not be decoded into
// card stats. Raw holds the trimmed model text.
type ModelOutputError struct {
	Raw string
	Err error
}

func (e *ModelOutputError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidModelOutput, e.Err)
}

func (e *ModelOutputError) Unwrap() error { return e.Err }

func (e *ModelOutputError) Is(target error) bool { return target == ErrInvalidModelOutput }
