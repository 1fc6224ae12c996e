package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/pos-lite/internal/crypto"
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/stats"
	"github.com/MKhiriev/pos-lite/internal/store"
	"github.com/MKhiriev/pos-lite/internal/utils"
	"github.com/MKhiriev/pos-lite/internal/validators"
	"github.com/MKhiriev/pos-lite/models"
)

// InstallationKeySetting is the settings row holding the field cipher key.
const InstallationKeySetting = "installation_key"

// ClientStoreOpener opens the terminal database. It is called by Init until
// it first succeeds.
type ClientStoreOpener func(ctx context.Context) (*store.ClientStorages, error)

type localTransactionService struct {
	open      ClientStoreOpener
	validator validators.Validator

	initMu   sync.Mutex
	storages *store.ClientStorages
	cipher   crypto.FieldCipher

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewLocalTransactionService(open ClientStoreOpener, validator validators.Validator, logger *logger.Logger) LocalTransactionService {
	return &localTransactionService{
		open:      open,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *localTransactionService) Init(ctx context.Context) error {
	_, _, err := s.ready(ctx)
	return err
}

// ready returns the opened repositories and the cipher, initializing them
// on first use. A failed attempt leaves nothing behind so the next call
// retries from scratch.
func (s *localTransactionService) ready(ctx context.Context) (*store.ClientStorages, crypto.FieldCipher, error) {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.storages != nil && s.cipher != nil {
		return s.storages, s.cipher, nil
	}

	log := logger.FromContext(ctx)

	storages := s.storages
	if storages == nil {
		opened, err := s.open(ctx)
		if err != nil {
			log.Err(err).Str("func", "localTransactionService.Init").Msg("failed to open local store")
			return nil, nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		storages = opened
	}

	candidate, err := crypto.GenerateInstallationKey()
	if err != nil {
		return nil, nil, err
	}

	// PutIfAbsent hands back the key of the first installation run, so a
	// key generated here is discarded unless none was stored yet.
	key, err := storages.Settings.PutIfAbsent(ctx, InstallationKeySetting, candidate)
	if err != nil {
		log.Err(err).Str("func", "localTransactionService.Init").Msg("failed to load installation key")
		s.storages = storages
		return nil, nil, fmt.Errorf("load installation key: %w", err)
	}

	cipher, err := crypto.NewFieldCipher(key)
	if err != nil {
		s.storages = storages
		return nil, nil, fmt.Errorf("create field cipher: %w", err)
	}

	s.storages = storages
	s.cipher = cipher
	log.Debug().Str("func", "localTransactionService.Init").Msg("local store ready")

	return storages, cipher, nil
}

func (s *localTransactionService) Save(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	storages, cipher, err := s.ready(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	if err = s.validator.Validate(ctx, tx); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tx.ID = 0
	tx.Synced = false
	// the local store keeps milliseconds
	tx.Timestamp = tx.Timestamp.Truncate(time.Millisecond)

	enc, err := encryptTransaction(cipher, tx)
	if err != nil {
		return models.Transaction{}, err
	}

	if err = storages.Transactions.Insert(ctx, enc); err != nil {
		return models.Transaction{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "localTransactionService.Save").
		Str("local_id", tx.LocalID).
		Msg("transaction saved locally")

	return tx, nil
}

func (s *localTransactionService) Record(ctx context.Context, sale models.NewSale) (models.Transaction, error) {
	if err := s.validator.Validate(ctx, sale); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.Save(ctx, models.Transaction{
		LocalID:     s.ids.Generate(),
		ProductName: models.StrPtr(sale.ProductName),
		Amount:      sale.Amount,
		Quantity:    sale.Quantity,
		PaymentType: models.StrPtr(sale.PaymentType),
		Timestamp:   s.now(),
	})
}

func (s *localTransactionService) GetAll(ctx context.Context) ([]models.Transaction, error) {
	storages, cipher, err := s.ready(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := storages.Transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	return decryptTransactions(ctx, cipher, rows), nil
}

func (s *localTransactionService) GetUnsynced(ctx context.Context) ([]models.Transaction, error) {
	storages, cipher, err := s.ready(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := storages.Transactions.ListUnsynced(ctx)
	if err != nil {
		return nil, err
	}

	return decryptTransactions(ctx, cipher, rows), nil
}

func (s *localTransactionService) MarkSynced(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	storages, _, err := s.ready(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, id := range ids {
		ok, markErr := storages.Transactions.MarkSynced(ctx, id)
		if markErr != nil {
			return changed, markErr
		}
		if ok {
			changed++
		}
	}

	return changed, nil
}

func (s *localTransactionService) Delete(ctx context.Context, localID string) error {
	storages, _, err := s.ready(ctx)
	if err != nil {
		return err
	}

	return storages.Transactions.Delete(ctx, localID)
}

func (s *localTransactionService) Stats(ctx context.Context) (models.Stats, error) {
	records, err := s.GetAll(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	return stats.Aggregate(records, s.now()), nil
}

func (s *localTransactionService) PendingCount(ctx context.Context) (int, error) {
	storages, _, err := s.ready(ctx)
	if err != nil {
		return 0, err
	}

	return storages.Transactions.CountUnsynced(ctx)
}

func (s *localTransactionService) Close() error {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	err := s.storages.Close()
	s.storages = nil
	s.cipher = nil
	return err
}

func encryptTransaction(cipher crypto.FieldCipher, tx models.Transaction) (models.EncryptedTransaction, error) {
	product, err := cipher.Encrypt(tx.ProductName)
	if err != nil {
		return models.EncryptedTransaction{}, fmt.Errorf("encrypt product_name: %w", err)
	}

	payment, err := cipher.Encrypt(tx.PaymentType)
	if err != nil {
		return models.EncryptedTransaction{}, fmt.Errorf("encrypt payment_type: %w", err)
	}

	return models.EncryptedTransaction{
		LocalID:     tx.LocalID,
		ProductName: product,
		Amount:      tx.Amount,
		Quantity:    tx.Quantity,
		PaymentType: payment,
		Timestamp:   tx.Timestamp,
		Synced:      tx.Synced,
	}, nil
}

func decryptTransactions(ctx context.Context, cipher crypto.FieldCipher, rows []models.EncryptedTransaction) []models.Transaction {
	result := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.Transaction{
			LocalID:     row.LocalID,
			ProductName: cipher.DecryptString(ctx, row.ProductName),
			Amount:      row.Amount,
			Quantity:    row.Quantity,
			PaymentType: cipher.DecryptString(ctx, row.PaymentType),
			Timestamp:   row.Timestamp,
			Synced:      row.Synced,
		})
	}
	return result
}
