package scenario_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/OliveiraRafael10/automacao-formulario/internal/app"
	"github.com/OliveiraRafael10/automacao-formulario/internal/app/scenario"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
	"github.com/OliveiraRafael10/automacao-formulario/mocks"
)

func newLocalService(t *testing.T, opts app.Options) *app.RegistrationService {
	t.Helper()

	scheduler := mocks.NewMockScheduler(t)
	scheduler.EXPECT().AfterFunc(mock.Anything, mock.Anything).Maybe()

	svc, err := app.NewRegistrationService(opts, scheduler, nil, nil)
	if err != nil {
		t.Fatalf("NewRegistrationService() error = %v", err)
	}
	return svc
}

func TestRunner_Run_InProcess(t *testing.T) {
	t.Parallel()

	scenarios := parse(t, `
scenario=ok
nome=Maria Silva
email=maria@example.com
telefone=11987654321
senha=abc123
confirmarSenha=abc123
---
scenario=blocked as expected
nome=Joao
senha=abc123
confirmarSenha=abc124
expect=blocked
---
scenario=wrong expectation
nome=Ana
senha=abc123
confirmarSenha=xyz
`)

	svc := newLocalService(t, app.Options{MaxSessions: len(scenarios)})
	results := scenario.NewRunner(svc, 2, nil).Run(context.Background(), scenarios)

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}

	if !results[0].Passed() {
		t.Errorf("results[0] = %s, want pass", results[0])
	}
	phone, _ := results[0].Form.Field(form.FieldPhone)
	if phone.Value != "(11) 98765-4321" {
		t.Errorf("typed phone = %q, want masked", phone.Value)
	}

	if !results[1].Passed() || results[1].Outcome != scenario.OutcomeBlocked {
		t.Errorf("results[1] = %s, want blocked pass", results[1])
	}
	conf, _ := results[1].Form.Field(form.FieldConfirmPassword)
	if conf.State != form.StateInvalid {
		t.Errorf("blocked confirmation state = %q, want invalid", conf.State)
	}

	if results[2].Passed() || results[2].Err != nil {
		t.Errorf("results[2] = %s, want fail without error", results[2])
	}
	if !strings.HasPrefix(results[2].String(), "FAIL") {
		t.Errorf("results[2].String() = %q, want FAIL prefix", results[2].String())
	}

	sum := scenario.Summarize(results)
	if sum.Passed != 2 || sum.Failed != 1 || sum.Errors != 0 || sum.OK() {
		t.Errorf("Summarize() = %+v, want 2 passed 1 failed", sum)
	}

	// Every session was closed, so the store is below capacity again.
	if err := svc.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestRunner_Run_OpenFails(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRegistrationService(t)
	svc.EXPECT().Open(mock.Anything).Return(nil, domain.ErrExhausted)

	results := scenario.NewRunner(svc, 1, nil).Run(context.Background(), parse(t, "nome=Maria\n"))

	if !errors.Is(results[0].Err, domain.ErrExhausted) {
		t.Errorf("Err = %v, want ErrExhausted", results[0].Err)
	}
	if sum := scenario.Summarize(results); sum.Errors != 1 {
		t.Errorf("Summarize().Errors = %d, want 1", sum.Errors)
	}
}

func TestRunner_Run_InputFailsClosesSession(t *testing.T) {
	t.Parallel()

	layout := form.Registration()
	f, err := form.New(layout, form.MustChecker())
	if err != nil {
		t.Fatalf("form.New() error = %v", err)
	}
	sess := &ports.Session{ID: "s-1", Form: f.Snapshot()}

	svc := mocks.NewMockRegistrationService(t)
	svc.EXPECT().Open(mock.Anything).Return(sess, nil)
	svc.EXPECT().Input(mock.Anything, "s-1", form.FieldName, "Maria").Return(nil, domain.ErrUnavailable)
	svc.EXPECT().Close(mock.Anything, "s-1").Return(nil).Once()

	results := scenario.NewRunner(svc, 1, nil).Run(context.Background(), parse(t, "nome=Maria\n"))

	if !errors.Is(results[0].Err, domain.ErrUnavailable) {
		t.Errorf("Err = %v, want ErrUnavailable", results[0].Err)
	}
}

func TestRunner_Run_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := mocks.NewMockRegistrationService(t)
	results := scenario.NewRunner(svc, 1, nil).Run(ctx, parse(t, "nome=Maria\n---\nnome=Joao\n"))

	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
		}
	}
}

func TestRunner_Run_TestdataFile(t *testing.T) {
	t.Parallel()

	scenarios, err := scenario.Load("testdata/registrations.txt")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	results := scenario.NewRunner(newLocalService(t, app.Options{}), 0, nil).Run(context.Background(), scenarios)
	for _, r := range results {
		if !r.Passed() {
			t.Errorf("%s", r)
		}
	}
}

func TestRunner_Run_BlockedFormIsVerified(t *testing.T) {
	t.Parallel()

	mismatch := &domain.ValidationError{
		Fields: map[string]string{form.FieldConfirmPassword: domain.ErrPasswordMismatch.Error()},
		Cause:  domain.ErrPasswordMismatch,
	}

	blocked := func(t *testing.T) form.Snapshot {
		t.Helper()
		f, err := form.New(form.Registration(), form.MustChecker())
		if err != nil {
			t.Fatalf("form.New() error = %v", err)
		}
		_ = f.Input(form.FieldPassword, "abc123")
		_ = f.Input(form.FieldConfirmPassword, "abc124")
		if err := f.Submit(); !errors.Is(err, domain.ErrPasswordMismatch) {
			t.Fatalf("Submit() = %v, want mismatch", err)
		}
		return f.Snapshot()
	}

	setConfirmState := func(s form.Snapshot, st form.State) form.Snapshot {
		fields := make([]form.FieldView, len(s.Fields))
		copy(fields, s.Fields)
		for i := range fields {
			if fields[i].Name == form.FieldConfirmPassword {
				fields[i].State = st
			}
		}
		s.Fields = fields
		return s
	}

	tests := []struct {
		name    string
		tamper  func(form.Snapshot) form.Snapshot
		wantErr string
	}{
		{name: "properly blocked", tamper: func(s form.Snapshot) form.Snapshot { return s }},
		{
			name:    "confirmation left neutral",
			tamper:  func(s form.Snapshot) form.Snapshot { return setConfirmState(s, form.StateNeutral) },
			wantErr: "not invalid",
		},
		{
			name:    "no blocking notice",
			tamper:  func(s form.Snapshot) form.Snapshot { s.Notice = form.Notice{}; return s },
			wantErr: "no blocking notice",
		},
		{
			name:    "focus not moved",
			tamper:  func(s form.Snapshot) form.Snapshot { s.Focus = form.FieldName; return s },
			wantErr: "focus is on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := blocked(t)
			sess := &ports.Session{ID: "s-1", Form: snap}

			svc := mocks.NewMockRegistrationService(t)
			svc.EXPECT().Open(mock.Anything).Return(sess, nil)
			svc.EXPECT().Input(mock.Anything, "s-1", mock.Anything, mock.Anything).Return(sess, nil)
			svc.EXPECT().Blur(mock.Anything, "s-1", mock.Anything).Return(sess, nil)
			svc.EXPECT().Submit(mock.Anything, "s-1").Return(nil, mismatch)
			svc.EXPECT().Get(mock.Anything, "s-1").Return(&ports.Session{ID: "s-1", Form: tt.tamper(snap)}, nil)
			svc.EXPECT().Close(mock.Anything, "s-1").Return(nil).Once()

			results := scenario.NewRunner(svc, 1, nil).Run(context.Background(),
				parse(t, "senha=abc123\nconfirmarSenha=abc124\nexpect=blocked\n"))

			if tt.wantErr == "" {
				if !results[0].Passed() {
					t.Errorf("result = %s, want blocked pass", results[0])
				}
				return
			}
			if results[0].Err == nil || !strings.Contains(results[0].Err.Error(), tt.wantErr) {
				t.Errorf("Err = %v, want containing %q", results[0].Err, tt.wantErr)
			}
			if results[0].Outcome == scenario.OutcomeBlocked {
				t.Error("Outcome = blocked, want unset")
			}
		})
	}
}
