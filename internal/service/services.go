package service

import (
	"github.com/MKhiriev/pos-lite/internal/broker"
	"github.com/MKhiriev/pos-lite/internal/config"
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/store"
	"github.com/MKhiriev/pos-lite/internal/validators"
)

type Services struct {
	TransactionService TransactionService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, publisher broker.Publisher, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		TransactionService: NewTransactionService(storages.TransactionRepository, validators.NewTransactionValidator(), publisher, logger),
		AppInfoService:     appInfo,
	}, nil
}
