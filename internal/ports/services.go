package ports

import (
	"context"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
)

// Session is a snapshot of one open form together with its identifier.
type Session struct {
	ID   string
	Form form.Snapshot
}

// RegistrationService defines the service port for registration form
// sessions. Implemented by the application layer (in-process) and by the
// formapi client (over HTTP); called by handlers and the scenario runner.
//
// Every method that takes an id returns domain.ErrNotFound when no session
// with that id is open. Methods that take a field name return a
// *domain.ValidationError when the form has no such field.
type RegistrationService interface {
	// Open initializes a new, empty registration form and returns it.
	Open(ctx context.Context) (*Session, error)

	// Get returns the current state of an open form.
	Get(ctx context.Context, id string) (*Session, error)

	// Input applies a value change to a field (the phone field is masked).
	Input(ctx context.Context, id, field, value string) (*Session, error)

	// Blur signals that a field lost focus, updating its visual state.
	Blur(ctx context.Context, id, field string) (*Session, error)

	// Submit attempts a submission. On password mismatch it returns a
	// *domain.ValidationError wrapping domain.ErrPasswordMismatch and the
	// form keeps its values. On success the success notice is shown and the
	// form is reset once the notice duration has elapsed.
	Submit(ctx context.Context, id string) (*Session, error)

	// Close discards an open form.
	Close(ctx context.Context, id string) error

	// MaskPhone applies the phone mask to raw without touching any form.
	MaskPhone(ctx context.Context, raw string) (string, error)
}
