package queue

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"lucky-money/pkg/config"
	"lucky-money/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ActivityExchange = "activities"

// ActivityEvent is the message body published for every committed activity.
type ActivityEvent struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Content   string                 `json:"content"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
	mu      sync.Mutex // amqp channels are not safe for concurrent publishing
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	if cfg.RabbitMQHost == "" {
		return nil, fmt.Errorf("RABBITMQ_HOST is not set")
	}

	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Consumers bind their own queues to this exchange.
	err = channel.ExchangeDeclare(
		ActivityExchange, // name
		"topic",          // type
		true,             // durable
		false,            // auto-deleted
		false,            // internal
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishActivity sends an already committed activity to the exchange.
func (c *Client) PublishActivity(event ActivityEvent) error {
	routingKey, msg, err := buildActivityMessage(event)
	if err != nil {
		return err
	}

	c.mu.Lock()
	err = c.channel.Publish(ActivityExchange, routingKey, false, false, msg)
	c.mu.Unlock()
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish to exchange=%s, routing_key=%s: %v", ActivityExchange, routingKey, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published activity %s to exchange=%s, routing_key=%s", event.ID, ActivityExchange, routingKey)
	return nil
}

func routingKeyFor(activityType string) string {
	return "activity." + strings.ToLower(activityType)
}

func buildActivityMessage(event ActivityEvent) (string, amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return "", amqp.Publishing{}, fmt.Errorf("failed to marshal activity: %w", err)
	}
	return routingKeyFor(event.Type), amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    event.ID,
		Type:         event.Type,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.CreatedAt,
	}, nil
}
