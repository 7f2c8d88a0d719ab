package conjugate

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is.
var (
	ErrNoParadigm  = errors.New("no paradigm")
	ErrMissingForm = errors.New("missing form")
	ErrNotCompound = errors.New("not a compound tense")
)

// NoParadigmError reports a verb that matches no paradigm.
type NoParadigmError struct {
	Verb     string
	Paradigm string
}

func (e *NoParadigmError) Error() string {
	if e.Paradigm != "" {
		return fmt.Sprintf("verb %q declares unknown paradigm %q", e.Verb, e.Paradigm)
	}
	return fmt.Sprintf("no paradigm found for %q", e.Verb)
}

// Is implements errors.Is.
func (e *NoParadigmError) Is(target error) bool {
	return target == ErrNoParadigm
}

// MissingFormError reports a paradigm lacking a requested entry.
type MissingFormError struct {
	Verb     string
	Paradigm string
	Mood     string
	Tense    string
	Subject  string
	Reason   string
	Err      error
}

func (e *MissingFormError) Error() string {
	where := e.Paradigm
	if e.Mood != "" {
		where += " " + e.Mood
	}
	if e.Tense != "" {
		where += "/" + e.Tense
	}
	if e.Subject != "" {
		where += " [" + e.Subject + "]"
	}
	return fmt.Sprintf("cannot form %q (%s): %s", e.Verb, where, e.Reason)
}

// Is implements errors.Is.
func (e *MissingFormError) Is(target error) bool {
	return target == ErrMissingForm
}

// Unwrap returns the underlying cause, if any.
func (e *MissingFormError) Unwrap() error {
	return e.Err
}
