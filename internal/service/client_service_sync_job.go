package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/pos-lite/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that calls syncService.Reconcile on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService) ClientSyncJob {
	return &clientSyncJob{syncService: syncService}
}

// Start stops any previous run and launches the loop. A non-positive
// interval defaults to 5 minutes; a non-positive initialDelay skips the
// startup pass.
func (j *clientSyncJob) Start(ctx context.Context, interval, initialDelay time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		if initialDelay > 0 {
			startup := time.NewTimer(initialDelay)
			select {
			case <-jobCtx.Done():
				startup.Stop()
				return
			case <-startup.C:
				j.run(jobCtx)
			}
		}

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) run(ctx context.Context) {
	log := logger.FromContext(ctx)

	report, err := j.syncService.Reconcile(ctx)
	if err != nil {
		log.Err(err).Str("func", "clientSyncJob.run").Msg("scheduled reconciliation failed")
		return
	}
	logReport(log, "clientSyncJob.run", report)
}

// Stop cancels the loop and waits for it to exit. Safe to call when the
// job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
