package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

var (
	ErrConnect = errors.New("events: failed to connect to NATS")
	ErrPublish = errors.New("events: failed to publish event")
	ErrSubject = errors.New("events: event subject is empty")
)

// conn часть *nats.Conn, используемая публикатором
type conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSPublisher публикует события в NATS
type NATSPublisher struct {
	conn   conn
	prefix string
}

// NewNATSPublisher подключается к NATS
// prefix добавляется к теме события, например "prod." -> "prod.hotel.stay.checked_in"
func NewNATSPublisher(url, clientName, prefix string, timeout time.Duration) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name(clientName),
		nats.Timeout(timeout),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	return &NATSPublisher{conn: nc, prefix: prefix}, nil
}

// Publish сериализует событие в JSON и отправляет в тему события
func (p *NATSPublisher) Publish(ctx context.Context, event StayEvent) error {
	if event.Subject == "" {
		return ErrSubject
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}

	if err := p.conn.Publish(p.prefix+event.Subject, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, event.Subject, err)
	}
	return nil
}

// Close отправляет буферизованные сообщения и закрывает соединение
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
