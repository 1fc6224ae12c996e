// Package broker publishes backend domain events.
//
// The backend announces every newly stored sale as a [models.SaleRecordedEvent].
// With a broker URL configured events go to RabbitMQ through
// [NewAMQPPublisher]; without one [NewNoopPublisher] drops them.
package broker

import (
	"context"

	"github.com/MKhiriev/pos-lite/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/broker_mock.go -package=mock

// Publisher sends sale events to subscribers.
type Publisher interface {
	PublishSaleRecorded(ctx context.Context, event models.SaleRecordedEvent) error
	Close() error
}
