package messaging

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "payments.audit"
	QueueName    = "audit_events"
	RoutingKey   = "audit.event"
)

// AuditMessage is the JSON payload published for every audit call.
type AuditMessage struct {
	Event      string              `json:"event"`
	MethodType entities.MethodType `json:"method_type,omitempty"`
	MethodID   string              `json:"method_id,omitempty"`
	Amount     float64             `json:"amount,omitempty"`
	Status     string              `json:"status,omitempty"`
	ErrorCode  string              `json:"error_code,omitempty"`
	Details    string              `json:"details,omitempty"`
	Timestamp  time.Time           `json:"timestamp"`
}

// AuditPublisher decorates another auditor and additionally publishes each
// audit event to RabbitMQ. Publish failures are logged, never surfaced: audit
// delivery must not fail the payment path.

type AuditPublisher struct {
	inner   interfaces.IAuditor
	conn    *amqp.Connection
	channel *amqp.Channel
}

var _ interfaces.IAuditor = (*AuditPublisher)(nil)

func NewAuditPublisher(amqpURL string, inner interfaces.IAuditor) (*AuditPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		ExchangeName,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := channel.QueueBind(QueueName, RoutingKey, ExchangeName, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	return &AuditPublisher{inner: inner, conn: conn, channel: channel}, nil
}

func (p *AuditPublisher) AuditPaymentAttempt(method entities.PaymentMethod, amount float64) {
	p.inner.AuditPaymentAttempt(method, amount)

	msg := AuditMessage{
		Event:     "payment_attempt",
		Amount:    amount,
		Timestamp: time.Now().UTC(),
	}
	if method != nil {
		msg.MethodType = method.MethodType()
		msg.MethodID = method.MethodID()
	}
	p.publish(msg)
}

func (p *AuditPublisher) AuditPaymentResult(result entities.PaymentResult) {
	p.inner.AuditPaymentResult(result)

	msg := AuditMessage{
		Event:     "payment_result",
		Status:    string(result.Kind()),
		Timestamp: time.Now().UTC(),
	}
	switch r := result.(type) {
	case entities.Success:
		msg.Amount = r.Amount
		if r.Method != nil {
			msg.MethodType = r.Method.MethodType()
			msg.MethodID = r.Method.MethodID()
		}
	case entities.Pending:
		msg.Amount = r.Amount
		if r.Method != nil {
			msg.MethodType = r.Method.MethodType()
			msg.MethodID = r.Method.MethodID()
		}
	case entities.Failed:
		msg.Amount = r.Amount
		msg.ErrorCode = r.ErrorCode
		if r.Method != nil {
			msg.MethodType = r.Method.MethodType()
			msg.MethodID = r.Method.MethodID()
		}
	case entities.Cancelled:
		msg.Amount = r.Amount
	}
	p.publish(msg)
}

func (p *AuditPublisher) AuditSecurityEvent(event string, details string) {
	p.inner.AuditSecurityEvent(event, details)
	p.publish(AuditMessage{
		Event:     event,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func (p *AuditPublisher) publish(msg AuditMessage) {
	body, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[audit][publisher] marshal failed event=%s err=%v", msg.Event, err)
		return
	}

	err = p.channel.Publish(
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		log.Printf("[audit][publisher] publish failed event=%s err=%v", msg.Event, err)
	}
}

// Close closes the RabbitMQ connection.
func (p *AuditPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
