package notification

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=./mocks/dispatcher_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tm30/config"
	"tm30/infras/kafka"
	"tm30/infras/otel"
	"tm30/shared/constant"
)

// Dispatcher publishes booking events to the notification topic. Callers
// invoke it from detached goroutines so a slow or failing broker never
// delays the booking response.
type Dispatcher interface {
	BookingRegistered(ctx context.Context, event BookingRegistered) error
}

type dispatcherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewDispatcher(client kafka.Client, cfg *config.Config, ot otel.Otel) Dispatcher {
	return &dispatcherImpl{
		client: client,
		cfg:    cfg,
		otel:   ot,
	}
}

func (d *dispatcherImpl) BookingRegistered(ctx context.Context, event BookingRegistered) error {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".notification.BookingRegistered")
	defer scope.End()

	message := kafka.Message{
		Key:   event.SubmissionID,
		Value: event,
	}

	if err := d.client.SendMessages(ctx, d.cfg.Kafka.NotificationTopic, message); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	scope.AddEvent("booking event published")

	return nil
}
