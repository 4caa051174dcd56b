package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
	"github.com/Gunvolt24/wb_microservices/internal/ports"
	"github.com/Gunvolt24/wb_microservices/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Producer удовлетворяет порту приложения.
var _ ports.EventPublisher = (*Producer)(nil)

// writer — минимальный контракт над kafka.Writer для подмены в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ProducerConfig — настройки продюсера событий заказов.
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Producer — публикация событий заказов в Kafka.
// Ключ сообщения — order_id: события одного заказа попадают в одну партицию
// и сохраняют порядок. Гарантий доставки наружу не даётся (best-effort).
type Producer struct {
	writer writer
	topic  string
	log    ports.Logger
}

// NewProducer — конструктор поверх kafka.Writer.
func NewProducer(cfg ProducerConfig, log ports.Logger) *Producer {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: wt,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		writer: w,
		topic:  cfg.Topic,
		log:    log,
	}
}

// Publish — сериализует событие и пишет одно сообщение.
func (p *Producer) Publish(ctx context.Context, event domain.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		metrics.EventsFailed.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.EventsFailed.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("write message: %w", err)
	}

	metrics.EventsPublished.WithLabelValues(p.topic).Inc()
	return nil
}

// Close — закрывает writer.
func (p *Producer) Close() error { return p.writer.Close() }
