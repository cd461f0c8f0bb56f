package ports

import "context"

// HealthChecker is a component whose state decides readiness: the form
// session store in the server, the form API client in formctl.
type HealthChecker interface {
	// Name labels the component in readiness output ("form-sessions",
	// "form-api").
	Name() string
	// HealthCheck returns nil when the component can serve, or an error
	// saying why not. It must honour ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them on demand.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every check and returns the results keyed by name. A
	// nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
