package agent

import "autointake/models"

// GenerationError is a failed generation stage: the backend call itself, or
// reducing its output to one JSON record.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "generate service request: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ValidationError is a merged record that still fails the strict profile,
// either because the generator omitted a required field no override filled,
// or because an override produced an invalid combination.
type ValidationError struct {
	Fields models.ValidationErrors
}

func (e *ValidationError) Error() string {
	return "merged record failed validation: " + e.Fields.Error()
}

func (e *ValidationError) Unwrap() error { return e.Fields }
