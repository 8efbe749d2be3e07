package generate

import (
	"runtime"

	"github.com/pkg/errors"
)

const (
	TargetTypeScript = "typescript"
	TargetGo         = "go"
)

// Config controls a generation run.
type Config struct {
	// Input is the directory searched recursively for *.json artifacts.
	Input string `mapstructure:"input"`
	// Output is the directory the filesystem storage writes to.
	Output          string `mapstructure:"output"`
	Target          string `mapstructure:"target"`
	Package         string `mapstructure:"package"`
	NetworkID       string `mapstructure:"network_id"`
	Jobs            int    `mapstructure:"jobs"`
	SynthesizeNames bool   `mapstructure:"synthesize_names"`

	NatsURL       string `mapstructure:"nats_url"`
	TraceEndpoint string `mapstructure:"trace_endpoint"`
}

// DefaultConfig returns the values used for unset options.
func DefaultConfig() Config {
	return Config{
		Target:    TargetTypeScript,
		Package:   "contracts",
		NetworkID: "1337",
		Jobs:      runtime.NumCPU(),
	}
}

// Validate fills zero values with defaults and rejects unusable settings.
func (c *Config) Validate() error {
	defaults := DefaultConfig()
	if c.Target == "" {
		c.Target = defaults.Target
	}
	if c.Package == "" {
		c.Package = defaults.Package
	}
	if c.NetworkID == "" {
		c.NetworkID = defaults.NetworkID
	}
	if c.Jobs <= 0 {
		c.Jobs = defaults.Jobs
	}

	if c.Input == "" {
		return errors.New("input directory is required")
	}
	_, err := c.Emitter()
	return err
}

// Emitter returns the emitter for the configured target.
func (c *Config) Emitter() (Emitter, error) {
	return NewEmitter(c.Target, *c)
}

// NewEmitter returns the emitter for target.
func NewEmitter(target string, c Config) (Emitter, error) {
	switch target {
	case TargetTypeScript, "ts":
		return &TypeScriptEmitter{SynthesizeNames: c.SynthesizeNames}, nil
	case TargetGo, "golang":
		return &GoEmitter{Package: c.Package}, nil
	default:
		return nil, errors.Errorf("unknown target %q", target)
	}
}
