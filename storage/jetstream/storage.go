package jetstream

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ustchcl/contractgen/generate"
	"github.com/ustchcl/contractgen/log"
)

const (
	STREAM_NAME = "CONTRACTGEN"

	HEADER_KEY_NAME   = "Name"
	HEADER_KEY_RUN_ID = "RunID"
)

var _ generate.Storage = (*Storage)(nil)

// Storage publishes every generated file to a JetStream stream so that
// downstream builds can pick up fresh bindings.
type Storage struct {
	jetstream jetstream.JetStream
	runID     string
}

func NewStorage(ctx context.Context, js jetstream.JetStream) (*Storage, error) {
	id := uuid.NewString()
	id = id[len(id)-12:]

	s := &Storage{
		jetstream: js,
		runID:     id,
	}

	err := createStream(ctx, js)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// RunID identifies the messages published by this storage.
func (s *Storage) RunID() string {
	return s.runID
}

func (s *Storage) Subject() string {
	return fmt.Sprintf("%s.%s", STREAM_NAME, s.runID)
}

func (s *Storage) Put(ctx context.Context, name string, data []byte) error {
	ctx, span := otel.Tracer("").Start(ctx, "jetstream.Storage.Put")
	defer span.End()

	msg := nats.NewMsg(s.Subject())
	msg.Header.Set(HEADER_KEY_NAME, name)
	msg.Header.Set(HEADER_KEY_RUN_ID, s.runID)
	msg.Header.Set(nats.MsgIdHdr, s.runID+":"+name)
	msg.Data = data

	// Inject the trace context into the message header.
	propagator := propagation.TraceContext{}
	carrier := propagation.HeaderCarrier(msg.Header)
	propagator.Inject(ctx, carrier)

	_, err := s.jetstream.PublishMsg(ctx, msg)
	if err != nil {
		return errors.Wrap(err, "publish message")
	}
	log.Logger().Debug().Str("name", name).Str("subject", msg.Subject).Msg("published")
	return nil
}

func createStream(ctx context.Context, js jetstream.JetStream) error {
	// Creating a stream with an identical config is a no-op on the server.
	_, err := js.CreateStream(ctx, jetstream.StreamConfig{
		Name:     STREAM_NAME,
		Subjects: []string{STREAM_NAME + ".*"},
	})
	return errors.Wrap(err, "create stream")
}
