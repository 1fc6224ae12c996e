package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/pos-lite/internal/service"
)

type syncWorker struct {
	job          service.ClientSyncJob
	interval     time.Duration
	initialDelay time.Duration
}

// NewSyncWorker runs job for as long as the worker runs.
func NewSyncWorker(job service.ClientSyncJob, interval, initialDelay time.Duration) Worker {
	return &syncWorker{
		job:          job,
		interval:     interval,
		initialDelay: initialDelay,
	}
}

func (w *syncWorker) Run(ctx context.Context) error {
	w.job.Start(ctx, w.interval, w.initialDelay)
	<-ctx.Done()
	w.job.Stop()
	return nil
}
