package jetstream

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
)

func TestPut(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	js := initJetStream(t)

	storage, err := NewStorage(ctx, js)
	require.NoError(t, err)

	// A second run against the same server reuses the stream.
	_, err = NewStorage(ctx, js)
	require.NoError(t, err)

	err = storage.Put(ctx, "base.ts", []byte("export const networkId = '1337'"))
	require.NoError(t, err)
	err = storage.Put(ctx, "contracts/Token.ts", []byte("export default class TokenContract {}"))
	require.NoError(t, err)

	consumer, err := js.CreateOrUpdateConsumer(ctx, STREAM_NAME, jetstream.ConsumerConfig{
		Durable:       "test-" + storage.RunID(),
		AckPolicy:     jetstream.AckExplicitPolicy,
		FilterSubject: storage.Subject(),
	})
	require.NoError(t, err)

	received := make(chan jetstream.Msg, 10)
	consCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		_ = msg.Ack()
		received <- msg
	})
	require.NoError(t, err)
	t.Cleanup(consCtx.Stop)

	files := map[string]string{}
	for len(files) < 2 {
		select {
		case msg := <-received:
			require.Equal(t, storage.RunID(), msg.Headers().Get(HEADER_KEY_RUN_ID))
			files[msg.Headers().Get(HEADER_KEY_NAME)] = string(msg.Data())
		case <-ctx.Done():
			t.Fatal("timed out waiting for published files")
		}
	}

	require.Equal(t, map[string]string{
		"base.ts":            "export const networkId = '1337'",
		"contracts/Token.ts": "export default class TokenContract {}",
	}, files)
}

func initJetStream(t *testing.T) jetstream.JetStream {
	// Setup a NATS server with JetStream enabled.
	opts := server.Options{
		JetStream: true,
		StoreDir:  t.TempDir(),
		Port:      server.RANDOM_PORT,
	}
	s, err := server.NewServer(&opts)
	require.NoError(t, err)
	go s.Start()
	require.True(t, s.ReadyForConnections(5*time.Second))
	t.Cleanup(s.Shutdown)

	nc, err := nats.Connect(s.ClientURL())
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	js, err := jetstream.New(nc)
	require.NoError(t, err)
	return js
}
