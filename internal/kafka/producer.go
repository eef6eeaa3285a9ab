package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/RaikyD/charms-admin/internal/domain"
)

// Producer publishes console notifications so other services can follow what
// admins did.
type Producer struct {
	w *kafka.Writer
}

func NewProducer(brokersSTR, topic string) *Producer {
	brokers := strings.Split(brokersSTR, ",")

	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
	}
}

func (p *Producer) Close() error {
	return p.w.Close()
}

// Publish writes n keyed by its action and target, so events about one
// order stay on one partition.
func (p *Producer) Publish(ctx context.Context, n domain.Notification) error {
	msg, err := notificationMessage(n)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, msg)
}

func notificationMessage(n domain.Notification) (kafka.Message, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(notificationKey(n)),
		Value: b,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "level", Value: []byte(n.Level)},
			{Key: "id", Value: []byte(n.ID.String())},
		},
	}, nil
}

func notificationKey(n domain.Notification) string {
	return string(n.Action) + ":" + formatID(n.TargetID)
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
