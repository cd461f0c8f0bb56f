package dto

import "sort"

// Health statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status string          `json:"status"`
	Checks []CheckResponse `json:"checks,omitempty"`
}

// CheckResponse reports one readiness check. Code classifies the failure
// with the same codes as problem details (e.g. session_limit when the form
// session store is full).
type CheckResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
}

// ToReadinessResponse converts health check results, keyed by checker name,
// to a response sorted by name. ready is false when any check failed.
func ToReadinessResponse(results map[string]error) (resp HealthResponse, ready bool) {
	resp.Checks = make([]CheckResponse, 0, len(results))
	ready = true

	for name, err := range results {
		check := CheckResponse{Name: name, Status: HealthOK}
		if err != nil {
			_, code := Classify(err)
			check.Status = HealthNotReady
			check.Error = err.Error()
			check.Code = code
			ready = false
		}
		resp.Checks = append(resp.Checks, check)
	}
	sort.Slice(resp.Checks, func(i, j int) bool {
		return resp.Checks[i].Name < resp.Checks[j].Name
	})

	resp.Status = HealthReady
	if !ready {
		resp.Status = HealthNotReady
	}
	return resp, ready
}
