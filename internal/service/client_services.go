package service

import (
	"github.com/MKhiriev/pos-lite/internal/adapter"
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/validators"
)

// ClientServices wires the terminal services together.
type ClientServices struct {
	TransactionService LocalTransactionService
	SyncService        ClientSyncService
	SyncJob            ClientSyncJob
}

func NewClientServices(open ClientStoreOpener, backend adapter.BackendAdapter, logger *logger.Logger) *ClientServices {
	local := NewLocalTransactionService(open, validators.NewTransactionValidator(), logger)
	syncSvc := NewClientSyncService(local, backend, logger)

	return &ClientServices{
		TransactionService: local,
		SyncService:        syncSvc,
		SyncJob:            NewClientSyncJob(syncSvc),
	}
}
