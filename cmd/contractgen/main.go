package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ustchcl/contractgen/generate"
	"github.com/ustchcl/contractgen/log"
	"github.com/ustchcl/contractgen/tracing"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "contractgen",
		Short: "Generate typed wrappers for compiled contract artifacts",
		Long: `contractgen reads the JSON artifacts a contract compiler writes and renders
one wrapper module per contract.

Options are read from flags, CONTRACTGEN_* environment variables and an
optional contractgen.yaml in the working directory, in that order.

Examples:
  contractgen generate -i build/contracts -o src/generated
  contractgen generate -i build/contracts -o bindings --target go --package bindings
  contractgen serve --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetOutput(os.Stderr, zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(newGenerateCommand())
	root.AddCommand(newServeCommand())
	root.AddCommand(newSyncCommand())
	return root
}

// configFlags are the flags shared by every command that reads a
// generate.Config, keyed by their mapstructure name.
var configFlags = map[string]string{
	"input":            "input",
	"output":           "output",
	"target":           "target",
	"package":          "package",
	"network_id":       "network-id",
	"jobs":             "jobs",
	"synthesize_names": "synthesize-names",
	"nats_url":         "nats-url",
	"trace_endpoint":   "trace-endpoint",
}

func addConfigFlags(flags *pflag.FlagSet) {
	defaults := generate.DefaultConfig()
	flags.StringP("input", "i", "", "directory searched for *.json artifacts")
	flags.StringP("output", "o", "generated", "directory generated files are written to")
	flags.String("target", defaults.Target, "output language: typescript or go")
	flags.String("package", defaults.Package, "package name of generated Go files")
	flags.String("network-id", defaults.NetworkID, "network id the TypeScript runtime resolves addresses for")
	flags.Int("jobs", defaults.Jobs, "number of artifacts generated concurrently")
	flags.Bool("synthesize-names", false, "name unnamed parameters arg<i>")
	flags.String("nats-url", "", "publish generated files to JetStream instead of the output directory")
	flags.String("trace-endpoint", "", `OTLP/HTTP endpoint for traces, or "stdout"`)
}

// loadConfig merges flags, environment and the optional config file.
func loadConfig(flags *pflag.FlagSet) (generate.Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CONTRACTGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("contractgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return generate.Config{}, errors.Wrap(err, "reading config file")
		}
	}

	for key, name := range configFlags {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		err := v.BindPFlag(key, flag)
		if err != nil {
			return generate.Config{}, errors.Wrapf(err, "binding flag %s", name)
		}
	}

	var config generate.Config
	err = v.Unmarshal(&config)
	if err != nil {
		return generate.Config{}, errors.Wrap(err, "decoding config")
	}
	return config, nil
}

// setupTracing installs a global tracer provider when endpoint is set.
func setupTracing(ctx context.Context, endpoint, name string) (func(), error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	if endpoint == "" {
		return func() {}, nil
	}

	tp, shutdown, err := tracing.NewProvider(ctx, endpoint, name)
	if err != nil {
		return nil, errors.Wrap(err, "new tracing provider")
	}
	otel.SetTracerProvider(tp)
	return func() {
		tp.ForceFlush(context.Background())
		shutdown()
	}, nil
}
