package telemetry

import (
	"fmt"
	"sync"
	"time"

	"github.com/featvet/featvet/internal/ui/style"
	"github.com/muesli/termenv"
	"github.com/vito/progrock"
)

// Linear renders progress as plain completion lines, one per check.
// It is the mode of choice for CI logs and redirected output.
type Linear struct {
	mu        sync.Mutex
	out       *termenv.Output
	total     int
	completed int
	started   map[string]time.Time
	done      map[string]bool
}

// NewLinear returns a line renderer expecting total checks overall.
func NewLinear(out *termenv.Output, total int) *Linear {
	return &Linear{
		out:     out,
		total:   total,
		started: make(map[string]time.Time),
		done:    make(map[string]bool),
	}
}

// WriteStatus implements progrock.Writer.
func (l *Linear) WriteStatus(status *progrock.StatusUpdate) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, v := range status.Vertexes {
		if v.Started != nil {
			if _, seen := l.started[v.Id]; !seen {
				l.started[v.Id] = time.Now()
			}
		}

		if v.Completed == nil || l.done[v.Id] {
			continue
		}
		l.done[v.Id] = true
		l.completed++

		var elapsed time.Duration
		if start, ok := l.started[v.Id]; ok {
			elapsed = time.Since(start).Round(time.Millisecond)
		}

		if v.Error != nil {
			cross := l.out.String(style.Cross).Foreground(termenv.ANSIRed).String()
			fmt.Fprintf(l.out, "[%s] %s failed after %v (%d/%d)\n", v.Name, cross, elapsed, l.completed, l.total)
			continue
		}

		check := l.out.String(style.Check).Foreground(termenv.ANSIGreen).String()
		fmt.Fprintf(l.out, "[%s] %s passed in %v (%d/%d)\n", v.Name, check, elapsed, l.completed, l.total)
	}
	return nil
}

// Close implements progrock.Writer.
func (l *Linear) Close() error {
	return nil
}
