package jetstream

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ustchcl/contractgen/generate"
	"github.com/ustchcl/contractgen/log"
)

// Mirror copies published files into another storage, e.g. a checkout
// that builds against the generated modules.
type Mirror struct {
	id        string
	jetstream jetstream.JetStream
	runID     string
	dst       generate.Storage
}

// NewMirror mirrors the files of run runID, or of every run when runID is
// empty.
func NewMirror(js jetstream.JetStream, runID string, dst generate.Storage) *Mirror {
	id := uuid.NewString()
	id = id[len(id)-12:]

	return &Mirror{
		id:        id,
		jetstream: js,
		runID:     runID,
		dst:       dst,
	}
}

// mirrorInactiveThreshold lets the server remove the consumer of a mirror
// that exited without cleaning up.
const mirrorInactiveThreshold = 10 * time.Minute

// Name is the durable name of the mirror's consumer.
func (m *Mirror) Name() string {
	return "Mirror-" + m.id
}

func (m *Mirror) subject() string {
	if m.runID == "" {
		return STREAM_NAME + ".*"
	}
	return STREAM_NAME + "." + m.runID
}

// Start begins consuming and returns once the consumer is set up. Messages
// are handled until ctx is done, after which the consumer is deleted.
func (m *Mirror) Start(ctx context.Context) error {
	err := createStream(ctx, m.jetstream)
	if err != nil {
		return err
	}

	consumer, err := m.jetstream.CreateOrUpdateConsumer(ctx, STREAM_NAME, jetstream.ConsumerConfig{
		Durable:           m.Name(),
		AckPolicy:         jetstream.AckExplicitPolicy,
		FilterSubject:     m.subject(),
		InactiveThreshold: mirrorInactiveThreshold,
	})
	if err != nil {
		return errors.Wrap(err, "create consumer")
	}

	consCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		m.handle(ctx, msg)
	})
	if err != nil {
		return errors.Wrap(err, "execute consumer")
	}

	go func() {
		<-ctx.Done()
		consCtx.Stop()

		cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := m.jetstream.DeleteConsumer(cleanupCtx, STREAM_NAME, m.Name())
		if err != nil {
			log.Logger().Warn().Err(err).Str("consumer", m.Name()).Msg("delete consumer")
		}
	}()
	return nil
}

func (m *Mirror) handle(ctx context.Context, msg jetstream.Msg) {
	// Continue the trace of the run that published the file.
	carrier := propagation.HeaderCarrier(msg.Headers())
	ctx = propagation.TraceContext{}.Extract(ctx, carrier)
	ctx, span := otel.Tracer("").Start(ctx, "jetstream.Mirror.handle")
	defer span.End()

	name := msg.Headers().Get(HEADER_KEY_NAME)
	span.SetAttributes(attribute.String("name", name))
	if name == "" {
		log.Logger().Warn().Str("subject", msg.Subject()).Msg("dropping message without name")
		_ = msg.Term()
		return
	}

	err := m.dst.Put(ctx, name, msg.Data())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Logger().Error().Err(err).Str("name", name).Msg("mirroring failed")
		_ = msg.Nak()
		return
	}

	err = msg.Ack()
	if err != nil {
		log.Logger().Error().Err(err).Str("name", name).Msg("acknowledge message")
		return
	}
	log.Logger().Info().Str("name", name).Str("run", msg.Headers().Get(HEADER_KEY_RUN_ID)).Msg("mirrored")
}
