package domain

import "sort"

// CheckStatus represents the lifecycle state of one combination check.
type CheckStatus string

const (
	// StatusPending indicates the check has not started yet.
	StatusPending CheckStatus = "Pending"
	// StatusRunning indicates the check is currently executing.
	StatusRunning CheckStatus = "Running"
	// StatusSucceeded indicates the validator exited zero.
	StatusSucceeded CheckStatus = "Succeeded"
	// StatusFailed indicates the validator exited non-zero.
	StatusFailed CheckStatus = "Failed"
)

// CheckOutcome is the result of validating a single combination. Err is
// nil on success; Diagnostics carries the validator's captured error
// stream and is retained only on failure.
type CheckOutcome struct {
	Combination Combination
	Err         error
	Diagnostics string
}

// Failed reports whether the check failed.
func (o CheckOutcome) Failed() bool {
	return o.Err != nil
}

// CheckFailure pairs a failed combination with its diagnostic text.
type CheckFailure struct {
	Combination Combination
	Diagnostics string
}

// Report is the aggregate of a full run, constructed only after every
// lane has finished.
type Report struct {
	Total    int
	Failures []CheckFailure
}

// Passed reports whether every combination succeeded.
func (r Report) Passed() bool {
	return len(r.Failures) == 0
}

// SortedFailures returns the failures ordered by combination key, so a
// rerun with the same failures displays the same list.
func (r Report) SortedFailures() []CheckFailure {
	failures := make([]CheckFailure, len(r.Failures))
	copy(failures, r.Failures)
	sort.Slice(failures, func(i, j int) bool {
		return failures[i].Combination.Key() < failures[j].Combination.Key()
	})
	return failures
}
