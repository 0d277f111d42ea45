// Package rabbitmq publishes catalog mutation events to a message broker.
package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

const catalogQueue = "catalog_events"

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// CatalogEvent is the message published for every admin catalog mutation.
type CatalogEvent struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     int       `json:"id"`
	At     time.Time `json:"at"`
}

// NewClient connects to RabbitMQ and declares the durable catalog queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		catalogQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s queue: %w", catalogQueue, err)
	}

	log.Printf("RabbitMQ client connected, %s queue declared", catalogQueue)
	return &Client{conn: conn, channel: ch}, nil
}

// PublishCatalogEvent publishes one catalog mutation as a persistent JSON
// message.
func (c *Client) PublishCatalogEvent(entity, action string, id int) error {
	body, err := json.Marshal(CatalogEvent{
		Entity: entity,
		Action: action,
		ID:     id,
		At:     time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal catalog event: %w", err)
	}

	err = c.channel.Publish(
		"",           // default exchange
		catalogQueue, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish catalog event: %w", err)
	}
	return nil
}

// ConsumeCatalogEvents delivers queued catalog events to the handler. A nil
// handler error acknowledges the message; an error requeues it.
func (c *Client) ConsumeCatalogEvents(handler func(amqp.Delivery) error) error {
	msgs, err := c.channel.Consume(
		catalogQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	for msg := range msgs {
		if err := handler(msg); err != nil {
			log.Printf("Catalog event handler failed, requeueing: %v", err)
			msg.Nack(false, true)
			continue
		}
		msg.Ack(false)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors during RabbitMQ client close: %v", errs)
	}
	return nil
}
