// Package analytics buffers search events and publishes them to Kafka off
// the request path. Events are dropped, never blocked on, when the buffer
// is full.
package analytics

import (
	"context"
	"log/slog"

	"github.com/daisyflemming/textsearch/pkg/kafka"
)

// Collector forwards tracked events to a Kafka producer from a single
// background goroutine.
type Collector struct {
	producer *kafka.Producer
	eventCh  chan SearchEvent
	logger   *slog.Logger
	done     chan struct{}
}

// NewCollector creates a Collector with the given buffer size.
func NewCollector(producer *kafka.Producer, bufferSize int) *Collector {
	if bufferSize <= 0 {
		bufferSize = 10000
	}
	return &Collector{
		producer: producer,
		eventCh:  make(chan SearchEvent, bufferSize),
		logger:   slog.Default().With("component", "analytics-collector"),
		done:     make(chan struct{}),
	}
}

// Start launches the publishing goroutine. It runs until Close is called or
// ctx is cancelled; on cancellation it drains whatever is already buffered.
func (c *Collector) Start(ctx context.Context) {
	go func() {
		defer close(c.done)
		for {
			select {
			case event, ok := <-c.eventCh:
				if !ok {
					return
				}
				c.publish(ctx, event)
			case <-ctx.Done():
				c.drain()
				return
			}
		}
	}()
	c.logger.Info("analytics collector started", "buffer_size", cap(c.eventCh))
}

// Track enqueues an event without blocking the caller.
func (c *Collector) Track(event SearchEvent) {
	select {
	case c.eventCh <- event:
	default:
		c.logger.Warn("analytics event dropped (buffer full)")
	}
}

// Close stops accepting events and waits for the publisher to finish.
func (c *Collector) Close() {
	close(c.eventCh)
	<-c.done
}

func (c *Collector) publish(ctx context.Context, event SearchEvent) {
	err := c.producer.Publish(ctx, kafka.Event{
		Key:   string(event.Type),
		Value: event,
	})
	if err != nil {
		c.logger.Error("failed to publish analytics event", "error", err)
	}
}

func (c *Collector) drain() {
	for {
		select {
		case event, ok := <-c.eventCh:
			if !ok {
				return
			}
			c.publish(context.Background(), event)
		default:
			return
		}
	}
}
