package quota

import (
	"context"
	"fmt"
)

// QuotaAuthorizer admits a bounded number of concurrently open grid sessions,
// scenarios above the limit wait in a FIFO queue
type QuotaAuthorizer interface {
	// Reserve blocks until a slot is granted, the queue is full or ctx is done
	Reserve(ctx context.Context) error
	// Release frees a slot or hands it over to the oldest waiter, returns slots in use
	Release() int
	Limit() int
	Allocated() int
	Stats() Stats
}

type Stats struct {
	Limit      int
	Allocated  int
	Queued     int
	QueueLimit int
}

func (s Stats) String() string {
	return fmt.Sprintf("allocated=%d, limit=%d, queued=%d/%d", s.Allocated, s.Limit, s.Queued, s.QueueLimit)
}
