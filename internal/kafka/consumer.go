package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/RaikyD/charms-admin/internal/logger"
)

type ConsumerConfig struct {
	Brokers string
	Topic   string
	GroupID string
}

// OrderEvent is what the shop backend emits when an order is created or changed.
type OrderEvent struct {
	Type    string `json:"type"`
	OrderID int64  `json:"orderId"`
}

var errEmptyEvent = errors.New("order event without type")

// Reloader is refreshed once per order event.
type Reloader interface {
	ReloadOrders(ctx context.Context) error
}

// ReloaderFunc adapts a function to Reloader.
type ReloaderFunc func(ctx context.Context) error

func (f ReloaderFunc) ReloadOrders(ctx context.Context) error { return f(ctx) }

func decodeOrderEvent(value []byte) (OrderEvent, error) {
	var ev OrderEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		return OrderEvent{}, err
	}
	if strings.TrimSpace(ev.Type) == "" {
		return OrderEvent{}, errEmptyEvent
	}
	return ev, nil
}

// StartConsumer reads order events until ctx is cancelled. Every valid event
// triggers a reload; malformed messages are skipped and committed.
func StartConsumer(ctx context.Context, target Reloader, cfg ConsumerConfig) (*kafka.Reader, error) {
	brokers := strings.Split(cfg.Brokers, ",")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:         brokers,
		GroupID:         cfg.GroupID,
		Topic:           cfg.Topic,
		MinBytes:        1,
		MaxBytes:        10e6,
		CommitInterval:  0,
		StartOffset:     kafka.LastOffset,
		ReadLagInterval: -1,
	})

	logger.Info("kafka consumer starting", "brokers", cfg.Brokers, "topic", cfg.Topic, "group", cfg.GroupID)

	go func() {
		defer r.Close()

		backoff := time.Millisecond * 300
		for {
			m, err := r.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Warn("kafka fetch error", "err", err)
				time.Sleep(backoff)
				continue
			}

			ev, err := decodeOrderEvent(m.Value)
			if err != nil {
				logger.Warn("kafka invalid order event. skip and commit", "offset", m.Offset, "err", err)
				_ = r.CommitMessages(ctx, m)
				continue
			}

			if err = target.ReloadOrders(ctx); err != nil {
				// The console already reported the failed load; the next event retries it.
				logger.Warn("reload after order event failed", "type", ev.Type, "order_id", ev.OrderID, "err", err)
			}

			if err := r.CommitMessages(ctx, m); err != nil {
				logger.Warn("[kafka] commit failed", "err", err)
			} else {
				logger.Debug("[kafka] committed", "topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "type", ev.Type)
			}
		}
	}()
	return r, nil
}
