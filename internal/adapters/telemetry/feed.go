package telemetry

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

const feedBuffer = 64

// Feed is an in-process progrock writer whose updates can be consumed
// on the other end, one status at a time. It decouples the check
// goroutines from whatever renders their progress.
type Feed struct {
	mu     sync.Mutex
	ch     chan *progrock.StatusUpdate
	closed bool
}

// NewFeed returns an open feed ready to be written and read.
func NewFeed() *Feed {
	return &Feed{
		ch: make(chan *progrock.StatusUpdate, feedBuffer),
	}
}

// WriteStatus implements progrock.Writer. Updates are dropped when the
// buffer is full so a stalled consumer cannot block the checks.
func (f *Feed) WriteStatus(status *progrock.StatusUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return io.ErrClosedPipe
	}

	select {
	case f.ch <- status:
	default:
	}
	return nil
}

// Read blocks until the next update arrives. It returns io.EOF once the
// feed is closed and drained.
func (f *Feed) Read() (*progrock.StatusUpdate, error) {
	update, ok := <-f.ch
	if !ok {
		return nil, io.EOF
	}
	return update, nil
}

// Close implements progrock.Writer. Pending updates remain readable.
func (f *Feed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.closed {
		f.closed = true
		close(f.ch)
	}
	return nil
}
