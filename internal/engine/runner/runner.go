// Package runner implements the concurrent execution of combination
// checks.
package runner

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/featvet/featvet/internal/core/domain"
	"github.com/featvet/featvet/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner executes combination checks across a fixed number of lanes.
// Combinations are partitioned over the lanes by index, and each lane
// works through its share sequentially.
type Runner struct {
	checker ports.Checker

	mu     sync.RWMutex
	status map[string]domain.CheckStatus

	progress atomic.Uint64
}

// New creates a Runner validating combinations through the given
// checker.
func New(checker ports.Checker) *Runner {
	return &Runner{
		checker: checker,
		status:  make(map[string]domain.CheckStatus),
	}
}

// Progress returns the number of checks finished so far.
func (r *Runner) Progress() uint64 {
	return r.progress.Load()
}

// updateStatus updates the status of a combination.
func (r *Runner) updateStatus(key string, status domain.CheckStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[key] = status
}

// Run checks every combination and returns the aggregated report. A
// failing check never aborts the run; lanes stop early only when the
// context is canceled. Failures are concatenated in lane order, so the
// same input always yields the same report.
func (r *Runner) Run(
	ctx context.Context,
	project *domain.Project,
	combinations []domain.Combination,
	lanes int,
	telemetry ports.Telemetry,
) (*domain.Report, error) {
	if lanes < 1 {
		return nil, zerr.With(domain.ErrInvalidConcurrency, "lanes", lanes)
	}
	if lanes > len(combinations) {
		lanes = len(combinations)
	}

	for _, combination := range combinations {
		r.updateStatus(combination.Key(), domain.StatusPending)
	}

	failuresByLane := make([][]domain.CheckFailure, lanes)

	group, groupCtx := errgroup.WithContext(ctx)
	for lane := 0; lane < lanes; lane++ {
		group.Go(func() error {
			for i := lane; i < len(combinations); i += lanes {
				if err := groupCtx.Err(); err != nil {
					return err
				}

				combination := combinations[i]
				outcome := r.check(groupCtx, project, combination, telemetry)
				if outcome.Failed() {
					failuresByLane[lane] = append(failuresByLane[lane], domain.CheckFailure{
						Combination: combination,
						Diagnostics: outcome.Diagnostics,
					})
				}
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	report := &domain.Report{Total: len(combinations)}
	for _, failures := range failuresByLane {
		report.Failures = append(report.Failures, failures...)
	}
	return report, nil
}

// check runs a single combination through the checker, recording its
// lifecycle in the status map and the telemetry sink.
func (r *Runner) check(
	ctx context.Context,
	project *domain.Project,
	combination domain.Combination,
	telemetry ports.Telemetry,
) domain.CheckOutcome {
	key := combination.Key()
	r.updateStatus(key, domain.StatusRunning)

	vertex := telemetry.Record(combination.Label())
	outcome := r.checker.Check(ctx, project, combination)
	if outcome.Failed() {
		if outcome.Diagnostics != "" {
			_, _ = io.WriteString(vertex.Stderr(), outcome.Diagnostics)
		}
		vertex.Complete(outcome.Err)
		r.updateStatus(key, domain.StatusFailed)
	} else {
		vertex.Complete(nil)
		r.updateStatus(key, domain.StatusSucceeded)
	}

	r.progress.Add(1)
	return outcome
}
