package entities

// ExecutionStatus is the outcome of one commit plan.
type ExecutionStatus string

const (
	StatusCommitted ExecutionStatus = "committed"
	StatusSkipped   ExecutionStatus = "skipped"
	StatusFailed    ExecutionStatus = "failed"
)

// ExecutionResult records what happened to a single plan: the commit hash
// when it was created, the reason when it was skipped, or the error when it
// failed.
type ExecutionResult struct {
	Plan     CommitPlan
	Status   ExecutionStatus
	CommitID string
	Reason   string
	Err      error
}

// RunSummary aggregates the per-plan results of one run, in execution order.
type RunSummary struct {
	Results []ExecutionResult
}

// Plans returns the plans of all results, in execution order.
func (s *RunSummary) Plans() []CommitPlan {
	plans := make([]CommitPlan, 0, len(s.Results))
	for _, r := range s.Results {
		plans = append(plans, r.Plan)
	}
	return plans
}

// CountByStatus returns how many results carry the given status.
func (s *RunSummary) CountByStatus(status ExecutionStatus) int {
	count := 0
	for _, r := range s.Results {
		if r.Status == status {
			count++
		}
	}
	return count
}

// HasFailures reports whether at least one plan failed.
func (s *RunSummary) HasFailures() bool {
	return s.CountByStatus(StatusFailed) > 0
}
