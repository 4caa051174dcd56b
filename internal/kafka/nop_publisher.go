package kafka

import (
	"context"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
	"github.com/Gunvolt24/wb_microservices/internal/ports"
)

var _ ports.EventPublisher = NopPublisher{}

// NopPublisher — заглушка для окружений без Kafka (события молча отбрасываются).
type NopPublisher struct{}

// NewNopPublisher — конструктор в том же стиле, что и NewProducer:
// места сборки не различают, включена Kafka или нет.
func NewNopPublisher() NopPublisher { return NopPublisher{} }

func (NopPublisher) Publish(context.Context, domain.OrderEvent) error { return nil }
func (NopPublisher) Close() error                                     { return nil }
