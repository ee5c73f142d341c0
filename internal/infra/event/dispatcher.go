package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dlaan/geopoint/pkg/events"
	carrier "github.com/dlaan/geopoint/pkg/otel"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
)

const exchange = "amq.direct"

// Dispatcher publishes domain events to RabbitMQ with the event name as the
// routing key. Trace context travels in the AMQP headers.
type Dispatcher struct {
	RabbitMQChannel *amqp.Channel
}

func NewDispatcher(ch *amqp.Channel) *Dispatcher {
	return &Dispatcher{RabbitMQChannel: ch}
}

func (ed *Dispatcher) Dispatch(ctx context.Context, event events.Event) error {
	headers := make(amqp.Table)
	headers["x-event-id"] = uuid.NewString()
	otel.GetTextMapPropagator().Inject(ctx, carrier.AMQPHeadersCarrier(headers))

	payload, err := json.Marshal(event.GetPayload())
	if err != nil {
		return err
	}

	return ed.RabbitMQChannel.PublishWithContext(
		ctx,
		exchange,
		event.GetName(),
		false,
		false,
		amqp.Publishing{
			Headers:     headers,
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        payload,
		})
}
