package main

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	natsjetstream "github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ustchcl/contractgen/generate"
	"github.com/ustchcl/contractgen/log"
	"github.com/ustchcl/contractgen/storage/fs"
	"github.com/ustchcl/contractgen/storage/jetstream"
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a module for every artifact in the input directory",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	addConfigFlags(cmd.Flags())
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	shutdown, err := setupTracing(ctx, config.TraceEndpoint, "contractgen")
	if err != nil {
		return err
	}
	defer shutdown()

	storage, closeStorage, err := newStorage(ctx, config)
	if err != nil {
		return err
	}
	defer closeStorage()

	writer, err := generate.NewWriter(config, storage)
	if err != nil {
		return err
	}

	report, err := writer.Write(ctx)
	if err != nil {
		return err
	}

	for _, path := range report.Generated {
		fmt.Fprintf(cmd.OutOrStdout(), "generated %s\n", path)
	}
	err = report.Err()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// newStorage publishes to JetStream when a NATS url is configured and
// writes to the output directory otherwise.
func newStorage(ctx context.Context, config generate.Config) (generate.Storage, func(), error) {
	if config.NatsURL == "" {
		if config.Output == "" {
			return nil, nil, errors.New("output directory is required")
		}
		return fs.NewStorage(config.Output), func() {}, nil
	}

	nc, err := nats.Connect(config.NatsURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "connecting to NATS")
	}

	js, err := natsjetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, errors.Wrap(err, "initializing JetStream instance")
	}

	storage, err := jetstream.NewStorage(ctx, js)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}
	log.Logger().Info().Str("subject", storage.Subject()).Msg("publishing generated files")

	return storage, func() { nc.Drain() }, nil
}
