// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/phone"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/logging"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/telemetry"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

// Compile-time checks.
var (
	_ ports.RegistrationService = (*RegistrationService)(nil)
	_ ports.HealthChecker       = (*RegistrationService)(nil)
)

// DefaultNoticeDuration is how long the success notice stays up before the
// form is cleared.
const DefaultNoticeDuration = 3 * time.Second

// Options configures a RegistrationService.
type Options struct {
	// Layout is the form every session is built from. Zero value means
	// form.Registration().
	Layout form.Layout
	// NoticeDuration is the delay between a successful submission and the
	// form reset. Zero means DefaultNoticeDuration.
	NoticeDuration time.Duration
	// SessionTTL expires sessions idle for longer. Zero disables expiry.
	SessionTTL time.Duration
	// MaxSessions caps concurrently open sessions. Zero means unlimited.
	MaxSessions int
}

// session is one open form. Its mutex serialises events so every handler
// runs to completion before the next one, including the reset timer.
type session struct {
	mu       sync.Mutex
	form     *form.Form
	lastSeen time.Time
}

// RegistrationService implements ports.RegistrationService with in-memory
// form sessions. Each Open call is one explicit initialisation of a form;
// nothing is shared between sessions.
type RegistrationService struct {
	opts      Options
	checker   *form.Checker
	scheduler ports.Scheduler
	metrics   *telemetry.Metrics
	logger    *slog.Logger
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewRegistrationService creates a RegistrationService. The scheduler runs
// the post-submission reset. A nil metrics skips metric recording and a nil
// logger discards logs.
func NewRegistrationService(
	opts Options,
	scheduler ports.Scheduler,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) (*RegistrationService, error) {
	if scheduler == nil {
		return nil, errors.New("app: nil scheduler")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Layout.Fields == nil {
		opts.Layout = form.Registration()
	}
	if opts.NoticeDuration <= 0 {
		opts.NoticeDuration = DefaultNoticeDuration
	}
	if err := opts.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	checker, err := form.NewChecker()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	return &RegistrationService{
		opts:      opts,
		checker:   checker,
		scheduler: scheduler,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
		sessions:  make(map[string]*session),
	}, nil
}

// Open initializes a new, empty form session.
func (s *RegistrationService) Open(ctx context.Context) (*ports.Session, error) {
	f, err := form.New(s.opts.Layout, s.checker)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to build form",
			slog.String("operation", "Open"),
			slog.Any("error", err),
		)
		return nil, err
	}

	now := s.now()
	id := uuid.NewString()

	s.mu.Lock()
	expired := s.sweepLocked(now)
	if s.opts.MaxSessions > 0 && len(s.sessions) >= s.opts.MaxSessions {
		s.mu.Unlock()
		s.log(ctx).WarnContext(ctx, "form session limit reached",
			slog.String("operation", "Open"),
			slog.Int("max_sessions", s.opts.MaxSessions),
		)
		return nil, fmt.Errorf("opening form: %w", domain.ErrExhausted)
	}
	s.sessions[id] = &session{form: f, lastSeen: now}
	s.mu.Unlock()

	s.log(ctx).InfoContext(ctx, "form session opened",
		slog.String("session_id", id),
		slog.Int("expired_sessions", expired),
	)

	return &ports.Session{ID: id, Form: f.Snapshot()}, nil
}

// Get returns the current state of a form session.
func (s *RegistrationService) Get(_ context.Context, id string) (*ports.Session, error) {
	return s.apply(id, func(*form.Form) error { return nil })
}

// Input applies a value change to a field.
func (s *RegistrationService) Input(ctx context.Context, id, field, value string) (*ports.Session, error) {
	typed := slog.String("value", value)
	if s.secret(field) {
		typed = slog.Bool("filled", value != "")
	}
	s.log(ctx).DebugContext(ctx, "field input",
		slog.String("session_id", id),
		slog.String("field", field),
		typed,
	)
	return s.apply(id, func(f *form.Form) error { return f.Input(field, value) })
}

// Blur signals that a field lost focus.
func (s *RegistrationService) Blur(ctx context.Context, id, field string) (*ports.Session, error) {
	s.log(ctx).DebugContext(ctx, "field blur",
		slog.String("session_id", id),
		slog.String("field", field),
	)
	return s.apply(id, func(f *form.Form) error { return f.Blur(field) })
}

// Submit attempts a submission. A successful submission schedules a single,
// non-cancellable reset after the notice duration. Rapid repeated
// submissions each schedule their own reset.
func (s *RegistrationService) Submit(ctx context.Context, id string) (*ports.Session, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.lastSeen = s.now()
	if err := sess.form.Submit(); err != nil {
		s.recordSubmission(ctx, "blocked")
		s.log(ctx).InfoContext(ctx, "submission blocked",
			slog.String("session_id", id),
			slog.String("reason", domain.ErrPasswordMismatch.Error()),
		)
		return nil, err
	}

	s.recordSubmission(ctx, "accepted")
	s.log(ctx).InfoContext(ctx, "submission accepted",
		slog.String("session_id", id),
		slog.Duration("reset_after", s.opts.NoticeDuration),
	)

	logger := s.logger
	s.scheduler.AfterFunc(s.opts.NoticeDuration, func() {
		sess.mu.Lock()
		sess.form.Reset()
		sess.mu.Unlock()
		logger.Info("form reset after submission", slog.String("session_id", id))
	})

	return &ports.Session{ID: id, Form: sess.form.Snapshot()}, nil
}

// Close discards a form session.
func (s *RegistrationService) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("form session %s: %w", id, domain.ErrNotFound)
	}

	s.log(ctx).InfoContext(ctx, "form session closed", slog.String("session_id", id))
	return nil
}

// MaskPhone applies the phone mask to raw.
func (s *RegistrationService) MaskPhone(ctx context.Context, raw string) (string, error) {
	if s.metrics != nil && s.metrics.PhoneMaskTotal != nil {
		s.metrics.PhoneMaskTotal.Add(ctx, 1)
	}
	return phone.Mask(raw), nil
}

// Name identifies the session store in readiness checks.
func (s *RegistrationService) Name() string {
	return "form-sessions"
}

// HealthCheck reports an error when the session store is full.
func (s *RegistrationService) HealthCheck(_ context.Context) error {
	if s.opts.MaxSessions <= 0 {
		return nil
	}

	s.mu.RLock()
	open := len(s.sessions)
	s.mu.RUnlock()

	if open >= s.opts.MaxSessions {
		return fmt.Errorf("form-sessions: %d of %d sessions open: %w", open, s.opts.MaxSessions, domain.ErrExhausted)
	}
	return nil
}

// apply runs fn against the session's form under the session lock and
// returns the resulting snapshot.
func (s *RegistrationService) apply(id string, fn func(*form.Form) error) (*ports.Session, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.lastSeen = s.now()
	if err := fn(sess.form); err != nil {
		return nil, err
	}
	return &ports.Session{ID: id, Form: sess.form.Snapshot()}, nil
}

func (s *RegistrationService) lookup(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("form session %s: %w", id, domain.ErrNotFound)
	}
	return sess, nil
}

// sweepLocked drops sessions idle for longer than the TTL and returns how
// many were dropped. Caller must hold s.mu.
func (s *RegistrationService) sweepLocked(now time.Time) int {
	if s.opts.SessionTTL <= 0 {
		return 0
	}

	dropped := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastSeen)
		sess.mu.Unlock()

		if idle > s.opts.SessionTTL {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// log prefers the request-scoped logger so request and correlation IDs reach
// service logs.
// secret reports whether the layout marks field as secret.
func (s *RegistrationService) secret(field string) bool {
	for _, d := range s.opts.Layout.Fields {
		if d.Name == field {
			return d.Secret
		}
	}
	return false
}

func (s *RegistrationService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

func (s *RegistrationService) recordSubmission(ctx context.Context, result string) {
	if s.metrics == nil || s.metrics.FormSubmissionTotal == nil {
		return
	}
	s.metrics.FormSubmissionTotal.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrResult.String(result)),
	)
}
