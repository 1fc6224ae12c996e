package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/pos-lite/internal/adapter"
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/models"
)

const defaultFetchDays = 7

type clientSyncService struct {
	local   LocalTransactionService
	backend adapter.BackendAdapter

	online     atomic.Bool
	inProgress atomic.Bool

	// passes tracks reconciliations started by a restored connection.
	passes sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncService starts in the offline state; the connectivity
// monitor flips it online.
func NewClientSyncService(local LocalTransactionService, backend adapter.BackendAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		local:   local,
		backend: backend,
		logger:  logger,
	}
}

func (s *clientSyncService) SetOnline(ctx context.Context, online bool) {
	was := s.online.Swap(online)
	if was == online {
		return
	}

	log := logger.FromContext(ctx)
	if !online {
		log.Info().Str("func", "clientSyncService.SetOnline").Msg("connection lost, working offline")
		return
	}

	log.Info().Str("func", "clientSyncService.SetOnline").Msg("connection restored, reconciling")

	// the caller keeps reporting connectivity while the pass runs
	ctx = context.WithoutCancel(ctx)
	s.passes.Go(func() {
		report, err := s.Reconcile(ctx)
		if err != nil {
			log.Err(err).Str("func", "clientSyncService.SetOnline").Msg("reconciliation failed")
			return
		}
		logReport(log, "clientSyncService.SetOnline", report)
	})
}

func (s *clientSyncService) Reconcile(ctx context.Context) (models.SyncReport, error) {
	if !s.online.Load() {
		return skipped(models.SkipOffline), nil
	}

	if !s.inProgress.CompareAndSwap(false, true) {
		return skipped(models.SkipInProgress), nil
	}
	defer s.inProgress.Store(false)

	// a started pass runs to the end even if the trigger goes away
	ctx = context.WithoutCancel(ctx)
	log := logger.FromContext(ctx)

	if _, err := s.backend.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("func", "clientSyncService.Reconcile").Msg("backend probe failed")
		return skipped(models.SkipUnreachable), nil
	}

	pending, err := s.local.GetUnsynced(ctx)
	if err != nil {
		return models.SyncReport{}, err
	}
	if len(pending) == 0 {
		return skipped(models.SkipNothingToDo), nil
	}

	report := models.SyncReport{
		Attempted: len(pending),
		SyncedIDs: make([]string, 0, len(pending)),
		FailedIDs: make([]string, 0),
	}

	acked, bulkErr := s.backend.SyncTransactions(ctx, pending)
	if bulkErr == nil {
		report.Mode = models.SyncModeBulk
		return s.applyBulkAck(ctx, report, pending, acked)
	}

	log.Warn().Err(bulkErr).
		Str("func", "clientSyncService.Reconcile").
		Int("pending", len(pending)).
		Msg("bulk sync failed, sending transactions one by one")

	report.Mode = models.SyncModeIndividual
	for _, tx := range pending {
		res := s.backend.AddTransaction(ctx, tx)
		if !res.Success {
			log.Warn().
				Str("func", "clientSyncService.Reconcile").
				Str("local_id", tx.LocalID).
				Str("error", res.Error).
				Msg("transaction not accepted, will retry on next pass")
			report.FailedIDs = append(report.FailedIDs, tx.LocalID)
			continue
		}

		if _, err = s.local.MarkSynced(ctx, []string{tx.LocalID}); err != nil {
			return report, err
		}
		report.SyncedIDs = append(report.SyncedIDs, tx.LocalID)
	}

	return report, nil
}

// applyBulkAck marks the submitted records the backend acknowledged. Ids
// that were not part of this pass are ignored.
func (s *clientSyncService) applyBulkAck(ctx context.Context, report models.SyncReport, pending []models.Transaction, acked []string) (models.SyncReport, error) {
	ackSet := make(map[string]struct{}, len(acked))
	for _, id := range acked {
		ackSet[id] = struct{}{}
	}

	for _, tx := range pending {
		if _, ok := ackSet[tx.LocalID]; ok {
			report.SyncedIDs = append(report.SyncedIDs, tx.LocalID)
		} else {
			report.FailedIDs = append(report.FailedIDs, tx.LocalID)
		}
	}

	if _, err := s.local.MarkSynced(ctx, report.SyncedIDs); err != nil {
		return report, err
	}

	return report, nil
}

func (s *clientSyncService) CombinedStats(ctx context.Context) (models.Stats, error) {
	if s.online.Load() {
		remote, err := s.backend.GetStats(ctx)
		if err == nil {
			pending, pendingErr := s.local.PendingCount(ctx)
			if pendingErr == nil {
				remote.Pending = pending
				return remote, nil
			}
			err = pendingErr
		}
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "clientSyncService.CombinedStats").
			Msg("backend stats unavailable, using local stats")
	}

	return s.local.Stats(ctx)
}

func (s *clientSyncService) FetchBackendTransactions(ctx context.Context, days int) []models.Transaction {
	if days <= 0 {
		days = defaultFetchDays
	}
	if !s.online.Load() {
		return make([]models.Transaction, 0)
	}

	txs, err := s.backend.GetTransactions(ctx, days)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "clientSyncService.FetchBackendTransactions").
			Int("days", days).
			Msg("failed to fetch backend transactions")
		return make([]models.Transaction, 0)
	}

	return txs
}

func (s *clientSyncService) State() models.SyncState {
	switch {
	case !s.online.Load():
		return models.SyncStateOffline
	case s.inProgress.Load():
		return models.SyncStateSyncing
	default:
		return models.SyncStateOnlineIdle
	}
}

func (s *clientSyncService) Status(ctx context.Context) (models.SyncStatus, error) {
	pending, err := s.local.PendingCount(ctx)
	if err != nil {
		return models.SyncStatus{}, err
	}

	return models.SyncStatus{
		State:   s.State(),
		Online:  s.online.Load(),
		Pending: pending,
	}, nil
}

func skipped(reason string) models.SyncReport {
	return models.SyncReport{
		Skipped:    true,
		SkipReason: reason,
		SyncedIDs:  make([]string, 0),
		FailedIDs:  make([]string, 0),
	}
}

func logReport(log *logger.Logger, funcName string, report models.SyncReport) {
	if report.Skipped {
		log.Debug().Str("func", funcName).Str("reason", report.SkipReason).Msg("reconciliation skipped")
		return
	}

	log.Info().
		Str("func", funcName).
		Str("mode", string(report.Mode)).
		Int("attempted", report.Attempted).
		Int("synced", len(report.SyncedIDs)).
		Int("failed", len(report.FailedIDs)).
		Msg("reconciliation finished")
}
