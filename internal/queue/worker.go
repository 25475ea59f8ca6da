package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

// Publisher publishes a JSON body to a queue.
type Publisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// Config configures a Worker.
type Config struct {
	URL          string
	RequestQueue string
	ResultQueue  string
	Workers      int // Defaults to 3
}

// Worker consumes analysis requests from RabbitMQ.
type Worker struct {
	cfg       Config
	processor *Processor
	publisher Publisher
}

// NewWorker creates a Worker. The publisher is used for replies; Run wires an
// AMQP publisher when it is nil.
func NewWorker(cfg Config, processor *Processor, publisher Publisher) *Worker {
	if cfg.Workers <= 0 {
		cfg.Workers = 3
	}
	return &Worker{cfg: cfg, processor: processor, publisher: publisher}
}

// Run dials the broker, declares both queues and processes deliveries with a
// pool of goroutines until ctx is cancelled or the delivery channel closes.
func (w *Worker) Run(ctx context.Context) error {
	conn, err := amqp.Dial(w.cfg.URL)
	if err != nil {
		return fmt.Errorf("error dialling rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	for _, name := range []string{w.cfg.RequestQueue, w.cfg.ResultQueue} {
		if _, err := ch.QueueDeclare(
			name,  // queue name
			true,  // durable (survives broker restarts)
			false, // auto-delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", name, err)
		}
	}

	if err := ch.Qos(w.cfg.Workers, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	msgs, err := ch.Consume(
		w.cfg.RequestQueue, // queue name
		"",                 // consumer tag
		false,              // auto-ack
		false,              // exclusive
		false,              // no-local
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		return fmt.Errorf("error consuming from %s: %w", w.cfg.RequestQueue, err)
	}

	if w.publisher == nil {
		w.publisher = &channelPublisher{ch: ch}
	}

	var wg sync.WaitGroup
	wg.Add(w.cfg.Workers)
	for i := 0; i < w.cfg.Workers; i++ {
		go func(id int) {
			defer wg.Done()
			log.Printf("[worker %d] started", id)
			w.consume(ctx, id, msgs)
		}(i + 1)
	}

	<-ctx.Done()
	log.Println("[worker] shutting down...")
	// Closing the channel ends the delivery stream so consumers return.
	_ = ch.Close()
	wg.Wait()
	return nil
}

func (w *Worker) consume(ctx context.Context, id int, msgs <-chan amqp.Delivery) {
	for msg := range msgs {
		if err := w.Handle(ctx, msg.Body); err != nil {
			log.Printf("[worker %d] requeueing delivery %d: %v", id, msg.DeliveryTag, err)
			_ = msg.Nack(false, true)
			continue
		}
		_ = msg.Ack(false)
	}
}

// Handle processes one request body and publishes the reply. A returned error
// means the request should be redelivered.
func (w *Worker) Handle(ctx context.Context, body []byte) error {
	reply, err := w.processor.Process(ctx, body)
	if err != nil {
		return err
	}

	if reply.Status == StatusFailed {
		log.Printf("[worker] request %q failed: %s", reply.RequestID, reply.Error)
	} else {
		log.Printf("[worker] request %q analyzed as %s (score %d)", reply.RequestID, reply.Analysis.ID, reply.Analysis.FinalScore)
	}

	data, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("failed to marshal reply: %w", err)
	}

	if err := retry(3, func() error {
		return w.publisher.Publish(ctx, w.cfg.ResultQueue, data)
	}); err != nil {
		// Replies are best effort once the analysis is saved.
		log.Printf("[worker] failed to publish reply for %q: %v", reply.RequestID, err)
	}
	return nil
}

// channelPublisher publishes to the default exchange with the queue name as routing key.
type channelPublisher struct {
	mu sync.Mutex
	ch *amqp.Channel
}

func (p *channelPublisher) Publish(_ context.Context, queue string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Publish(
		"",    // default exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}
