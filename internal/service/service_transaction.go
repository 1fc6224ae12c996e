package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/pos-lite/internal/broker"
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/stats"
	"github.com/MKhiriev/pos-lite/internal/store"
	"github.com/MKhiriev/pos-lite/internal/utils"
	"github.com/MKhiriev/pos-lite/internal/validators"
	"github.com/MKhiriev/pos-lite/models"
)

type idGenerator interface {
	Generate() string
}

type transactionService struct {
	repo      store.TransactionRepository
	validator validators.Validator
	publisher broker.Publisher

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewTransactionService(repo store.TransactionRepository, validator validators.Validator, publisher broker.Publisher, logger *logger.Logger) TransactionService {
	if publisher == nil {
		publisher = broker.NewNoopPublisher()
	}

	return &transactionService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *transactionService) Add(ctx context.Context, txs []models.Transaction) ([]models.Transaction, error) {
	for i := range txs {
		if txs[i].LocalID == "" {
			txs[i].LocalID = s.ids.Generate()
		}
	}

	res, err := s.create(ctx, txs)
	if err != nil {
		return nil, err
	}

	return res.Created, nil
}

func (s *transactionService) Sync(ctx context.Context, txs []models.Transaction) ([]string, error) {
	res, err := s.create(ctx, txs)
	if err != nil {
		return nil, err
	}

	held := make(map[string]struct{}, len(res.Created)+len(res.Existing))
	for _, tx := range res.Created {
		held[tx.LocalID] = struct{}{}
	}
	for _, id := range res.Existing {
		held[id] = struct{}{}
	}

	acked := make([]string, 0, len(held))
	for _, tx := range txs {
		if _, ok := held[tx.LocalID]; ok {
			acked = append(acked, tx.LocalID)
			delete(held, tx.LocalID)
		}
	}

	return acked, nil
}

func (s *transactionService) create(ctx context.Context, txs []models.Transaction) (store.CreateResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, txs); err != nil {
		log.Warn().Err(err).Str("func", "transactionService.create").Msg("rejected transaction batch")
		return store.CreateResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	terminalID, _ := utils.GetTerminalIDFromContext(ctx)

	res, err := s.repo.Create(ctx, terminalID, txs)
	if err != nil {
		log.Err(err).Str("func", "transactionService.create").Msg("failed to store transactions")
		return store.CreateResult{}, err
	}

	log.Info().
		Str("func", "transactionService.create").
		Str("terminal_id", terminalID).
		Int("created", len(res.Created)).
		Int("existing", len(res.Existing)).
		Msg("transactions stored")

	s.publishCreated(ctx, res.Created)

	return res, nil
}

// publishCreated announces new sales. Broker failures are logged only: the
// sale is already committed and the terminal must still get its ack.
func (s *transactionService) publishCreated(ctx context.Context, created []models.Transaction) {
	now := s.now()
	for _, tx := range created {
		if err := s.publisher.PublishSaleRecorded(ctx, models.NewSaleRecordedEvent(tx, now)); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "transactionService.publishCreated").
				Str("local_id", tx.LocalID).
				Msg("sale event not published")
		}
	}
}

func (s *transactionService) List(ctx context.Context, filter models.TransactionsFilter) ([]models.Transaction, error) {
	return s.repo.List(ctx, filter, s.now())
}

func (s *transactionService) Stats(ctx context.Context) (models.Stats, error) {
	now := s.now()
	dayStart := stats.DayStart(now)

	daily, err := s.repo.Summarize(ctx, dayStart)
	if err != nil {
		return models.Stats{}, fmt.Errorf("daily stats: %w", err)
	}

	weekly, err := s.repo.Summarize(ctx, stats.WeekStart(now))
	if err != nil {
		return models.Stats{}, fmt.Errorf("weekly stats: %w", err)
	}

	daily.Transactions, err = s.repo.List(ctx, models.TransactionsFilter{Start: &dayStart}, now)
	if err != nil {
		return models.Stats{}, fmt.Errorf("daily transactions: %w", err)
	}

	return models.Stats{Daily: daily, Weekly: weekly}, nil
}
