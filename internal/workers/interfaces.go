// Package workers runs the process-local housekeeping loops of the server.
// It defines the Worker interface and a Workers aggregate that starts them
// together and waits for them on shutdown.
package workers

import (
	"context"
	"time"
)

// Worker is a background loop. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Evicter drops state that has been idle for longer than ttl and reports how
// many entries it removed.
type Evicter interface {
	Evict(ttl time.Duration) int
}
