package producer

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"github.com/segmentio/kafka-go"
)

type OrderEventType string

var (
	OrderEventCreated OrderEventType = "order_created"
)

type IOrderEventProducer interface {
	ProduceOrderCreatedEvent(ctx context.Context, order *model.Order) error
	Close() error
}

// 以user id當key做分區, 同一個user的訂單事件保持有序
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return &OrderEventProducer{writer: writer}
}

func (p *OrderEventProducer) ProduceOrderCreatedEvent(ctx context.Context, order *model.Order) error {
	msg, err := p.convertToMessage(OrderEventCreated, order)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *OrderEventProducer) convertToMessage(evt OrderEventType, order *model.Order) (kafka.Message, error) {
	orderValue, err := json.Marshal(order)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(order.UserID), 10)),
		Value: orderValue,
		Headers: []kafka.Header{
			{
				Key:   "event_type",
				Value: []byte(evt),
			},
		},
	}, nil
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}

var _ IOrderEventProducer = (*OrderEventProducer)(nil)
