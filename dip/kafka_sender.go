package dip

import (
	"context"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

// ErrNilWriter is returned by a KafkaSender that has no MessageWriter.
var ErrNilWriter = errors.New("dip: kafka sender has no writer")

// MessageWriter is the slice of *kafka.Writer that KafkaSender uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

var _ MessageWriter = (*kafka.Writer)(nil)

// NewKafkaWriter returns a writer publishing to topic on the given brokers.
func NewKafkaWriter(topic string, brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// KafkaSender publishes messages as JSON, keyed by message ID.
type KafkaSender struct {
	w MessageWriter
}

func NewKafkaSender(w MessageWriter) *KafkaSender {
	return &KafkaSender{w: w}
}

func (*KafkaSender) Channel() string { return "kafka" }

func (s *KafkaSender) Send(ctx context.Context, msg Message) error {
	if s == nil || s.w == nil {
		return ErrNilWriter
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("dip: encode message: %w", err)
	}
	if err := s.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.ID.String()),
		Value: payload,
	}); err != nil {
		return fmt.Errorf("dip: publish message %s: %w", msg.ID, err)
	}
	return nil
}

// PrintWriter is a MessageWriter that prints messages instead of talking to a broker.
type PrintWriter struct {
	Out   io.Writer
	Topic string
}

func (p PrintWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.Out, "kafka %s: %s\n", p.Topic, m.Value); err != nil {
			return err
		}
	}
	return nil
}
