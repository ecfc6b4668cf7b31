package driver

import (
	"context"
	"fmt"
)

// Page is the capability the driver needs from an interactive form page.
// A real browser session satisfies it, and so does an in-memory double,
// which is how the sequencing logic is tested without Chrome.
type Page interface {
	Fill(ctx context.Context, selector, value string) error
	SelectOption(ctx context.Context, selector, value string) error
	Click(ctx context.Context, selector string) error
	WaitForVisible(ctx context.Context, selector string) error
}

// Error is a fatal driver failure: a missing target element, a visibility
// wait that timed out, or a field touched while its section was collapsed.
// The remaining sequence is never attempted after one.
type Error struct {
	Op     string
	Target string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("form driver: %s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("form driver: %s %s", e.Op, e.Target)
}

func (e *Error) Unwrap() error { return e.Err }
