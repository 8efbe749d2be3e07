package main

import (
	"github.com/nats-io/nats.go"
	natsjetstream "github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ustchcl/contractgen/log"
	"github.com/ustchcl/contractgen/storage/fs"
	"github.com/ustchcl/contractgen/storage/jetstream"
)

func newSyncCommand() *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Write files published to JetStream into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, runID)
		},
	}
	cmd.Flags().StringVar(&runID, "run-id", "", "only mirror files of this run")
	cmd.Flags().StringP("output", "o", "generated", "directory generated files are written to")
	cmd.Flags().String("nats-url", nats.DefaultURL, "NATS server to consume from")
	cmd.Flags().String("trace-endpoint", "", `OTLP/HTTP endpoint for traces, or "stdout"`)
	return cmd
}

func runSync(cmd *cobra.Command, runID string) error {
	config, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	shutdown, err := setupTracing(ctx, config.TraceEndpoint, "contractgen-sync")
	if err != nil {
		return err
	}
	defer shutdown()

	nc, err := nats.Connect(config.NatsURL)
	if err != nil {
		return errors.Wrap(err, "connecting to NATS")
	}
	defer nc.Drain()

	js, err := natsjetstream.New(nc)
	if err != nil {
		return errors.Wrap(err, "initializing JetStream instance")
	}

	mirror := jetstream.NewMirror(js, runID, fs.NewStorage(config.Output))
	err = mirror.Start(ctx)
	if err != nil {
		return err
	}
	log.Logger().Info().Str("output", config.Output).Msg("syncing")

	<-ctx.Done()
	return nil
}
