// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pos-lite/models"
)

// spySyncService counts Reconcile calls; the other methods are inert.
type spySyncService struct {
	calls atomic.Int64
	err   error
}

func (s *spySyncService) SetOnline(context.Context, bool) {}

func (s *spySyncService) Reconcile(context.Context) (models.SyncReport, error) {
	s.calls.Add(1)
	return skipped(models.SkipNothingToDo), s.err
}

func (s *spySyncService) CombinedStats(context.Context) (models.Stats, error) {
	return models.Stats{}, nil
}

func (s *spySyncService) FetchBackendTransactions(context.Context, int) []models.Transaction {
	return nil
}

func (s *spySyncService) State() models.SyncState { return models.SyncStateOffline }

func (s *spySyncService) Status(context.Context) (models.SyncStatus, error) {
	return models.SyncStatus{}, nil
}

// ── NewClientSyncJob ──

func TestNewClientSyncJob(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{})
	require.NotNil(t, job)
}

// ── Start / Stop ──

func TestClientSyncJob_Start_TicksReconcile(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond, 0)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Reconcile called %d times", got)
}

func TestClientSyncJob_Start_InitialDelayRunsOnce(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy)

	// interval far beyond the test, so only the startup pass can fire
	job.Start(context.Background(), time.Hour, 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestClientSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), 0, 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond, 0)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load())
}

func TestClientSyncJob_Stop_Idempotent(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{})

	assert.NotPanics(t, func() { job.Stop() })

	job.Start(context.Background(), 10*time.Millisecond, 0)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Restart(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond, 0)
	time.Sleep(30 * time.Millisecond)
	before := spy.calls.Load()
	assert.Positive(t, before)

	job.Start(ctx, 10*time.Millisecond, 0)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), before)
}

func TestClientSyncJob_ContextCancel(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond, time.Hour)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancel")
	}
}

func TestClientSyncJob_ReconcileError_KeepsRunning(t *testing.T) {
	spy := &spySyncService{err: assert.AnError}
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond, 0)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}
