package scenario

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

// DefaultWorkers is the number of scenarios played at once.
const DefaultWorkers = 4

// Runner plays scenarios against a registration service, which may be the
// in-process service or a client for a remote one.
type Runner struct {
	svc     ports.RegistrationService
	workers int
	logger  *slog.Logger
}

// NewRunner creates a Runner. Non-positive workers means DefaultWorkers and a
// nil logger discards logs.
func NewRunner(svc ports.RegistrationService, workers int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{svc: svc, workers: workers, logger: logger}
}

// Run plays every scenario, each in its own form session, and returns the
// results in input order.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) []Result {
	return fanOut(ctx, r.workers, scenarios, r.play, func(sc Scenario, err error) Result {
		return Result{Scenario: sc, Err: err}
	})
}

// play opens a session, types each field present in the scenario in form
// order (input, then blur), submits and classifies the outcome.
func (r *Runner) play(ctx context.Context, sc Scenario) Result {
	res := Result{Scenario: sc}
	logger := r.logger.With(slog.String("scenario", sc.Name))

	sess, err := r.svc.Open(ctx)
	if err != nil {
		res.Err = fmt.Errorf("opening form: %w", err)
		return res
	}
	defer func() {
		if err := r.svc.Close(context.WithoutCancel(ctx), sess.ID); err != nil {
			logger.WarnContext(ctx, "failed to close form session",
				slog.String("session_id", sess.ID),
				slog.Any("error", err),
			)
		}
	}()

	for _, fv := range sess.Form.Fields {
		value, ok := sc.Values[fv.Name]
		if !ok {
			continue
		}
		if _, err := r.svc.Input(ctx, sess.ID, fv.Name, value); err != nil {
			res.Err = fmt.Errorf("typing %s: %w", fv.Name, err)
			return res
		}
		if _, err := r.svc.Blur(ctx, sess.ID, fv.Name); err != nil {
			res.Err = fmt.Errorf("leaving %s: %w", fv.Name, err)
			return res
		}
	}

	submitted, err := r.svc.Submit(ctx, sess.ID)
	switch {
	case err == nil:
		res.Form = submitted.Form
		if !submitted.Form.Notice.Visible() || submitted.Form.Notice.Kind != form.NoticeSuccess {
			res.Err = errors.New("submit accepted but no success notice shown")
			return res
		}
		res.Outcome = OutcomeSuccess
	case errors.Is(err, domain.ErrPasswordMismatch):
		current, getErr := r.svc.Get(ctx, sess.ID)
		if getErr != nil {
			res.Err = fmt.Errorf("reading blocked form: %w", getErr)
			return res
		}
		res.Form = current.Form
		if err := checkBlocked(err, current.Form); err != nil {
			res.Err = err
			return res
		}
		res.Outcome = OutcomeBlocked
	default:
		res.Err = fmt.Errorf("submitting: %w", err)
		return res
	}

	logger.InfoContext(ctx, "scenario played",
		slog.String("outcome", string(res.Outcome)),
		slog.String("expect", string(sc.Expect)),
		slog.Bool("passed", res.Passed()),
	)
	return res
}

// checkBlocked verifies a refused submission left the form blocked: the
// blocking notice is up and the field named by the mismatch error is focused
// and invalid.
func checkBlocked(mismatch error, snap form.Snapshot) error {
	if !snap.Notice.Visible() || snap.Notice.Kind != form.NoticeBlocking {
		return errors.New("submit blocked but no blocking notice shown")
	}

	confirmation := snap.Focus
	var verr *domain.ValidationError
	if errors.As(mismatch, &verr) && len(verr.Fields) == 1 {
		for name := range verr.Fields {
			confirmation = name
		}
	}
	if confirmation == "" {
		return errors.New("submit blocked but no field named")
	}
	if snap.Focus != confirmation {
		return fmt.Errorf("submit blocked but focus is on %q, not %q", snap.Focus, confirmation)
	}
	fv, ok := snap.Field(confirmation)
	if !ok {
		return fmt.Errorf("submit blocked on unknown field %q", confirmation)
	}
	if fv.State != form.StateInvalid {
		return fmt.Errorf("submit blocked but %s is %s, not invalid", confirmation, fv.State)
	}
	return nil
}

// Summary counts results by verdict.
type Summary struct {
	Passed int
	Failed int
	Errors int
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Errors++
		case r.Passed():
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}

// OK reports whether every scenario passed.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errors == 0
}
