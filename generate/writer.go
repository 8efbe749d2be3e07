package generate

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/ustchcl/contractgen/log"
)

// Storage persists generated files under slash separated names.
type Storage interface {
	Put(ctx context.Context, name string, data []byte) error
}

// Report lists the outcome of every artifact of a run.
type Report struct {
	Generated []string
	Failed    map[string]error
}

// Err summarizes the failures, or returns nil when every artifact succeeded.
func (r *Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	paths := make([]string, 0, len(r.Failed))
	for path := range r.Failed {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	msgs := make([]string, len(paths))
	for i, path := range paths {
		msgs[i] = path + ": " + r.Failed[path].Error()
	}
	return errors.Errorf("%d of %d artifacts failed:\n%s",
		len(r.Failed), len(r.Failed)+len(r.Generated), strings.Join(msgs, "\n"))
}

type Writer struct {
	config  Config
	storage Storage
	emitter Emitter
}

func NewWriter(config Config, storage Storage) (*Writer, error) {
	err := config.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	emitter, err := config.Emitter()
	if err != nil {
		return nil, err
	}
	return &Writer{
		config:  config,
		storage: storage,
		emitter: emitter,
	}, nil
}

// Write generates a module for every artifact below the input directory.
// A failing artifact is recorded in the report and does not stop the
// others; the returned error is reserved for failures of the run itself.
func (w *Writer) Write(ctx context.Context) (*Report, error) {
	ctx, span := otel.Tracer("").Start(ctx, "generate.Writer.Write")
	defer span.End()

	paths, err := w.artifacts()
	if err != nil {
		return nil, errors.Wrap(err, "listing artifacts")
	}
	span.SetAttributes(attribute.Int("artifacts", len(paths)))

	if _, ok := w.emitter.(*TypeScriptEmitter); ok {
		base, err := RenderBase(w.config.NetworkID)
		if err != nil {
			return nil, err
		}
		err = w.storage.Put(ctx, "base.ts", []byte(base))
		if err != nil {
			return nil, errors.Wrap(err, "storing base.ts")
		}
	}

	report := &Report{Failed: map[string]error{}}
	record := func(path string, err error) {
		if err != nil {
			log.Logger().Error().Err(err).Str("artifact", path).Msg("generation failed")
			report.Failed[path] = err
			return
		}
		log.Logger().Info().Str("artifact", path).Msg("generated")
		report.Generated = append(report.Generated, path)
	}

	// Rendering runs concurrently. Storing runs in walk order so that the
	// first artifact claiming an output name always keeps it.
	rendered := make([]rendering, len(paths))
	queue := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < w.config.Jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				rendered[i] = w.render(ctx, paths[i])
			}
		}()
	}

	started := 0
loop:
	for started < len(paths) {
		select {
		case queue <- started:
			started++
		case <-ctx.Done():
			break loop
		}
	}
	close(queue)
	wg.Wait()
	for i := started; i < len(paths); i++ {
		rendered[i].err = errors.Wrap(ctx.Err(), "not started")
	}

	owners := map[string]string{}
	for i, path := range paths {
		r := rendered[i]
		if r.err != nil {
			record(path, r.err)
			continue
		}
		record(path, w.store(ctx, path, r.outputs, owners))
	}

	sort.Strings(report.Generated)
	if len(report.Failed) > 0 {
		span.SetStatus(codes.Error, "artifacts failed")
	}
	return report, nil
}

type output struct {
	name string
	data []byte
}

type rendering struct {
	outputs []output
	err     error
}

// render parses the artifact at path and returns the files generated for
// it.
func (w *Writer) render(ctx context.Context, path string) rendering {
	_, span := otel.Tracer("").Start(ctx, "generate.Writer.render")
	defer span.End()
	span.SetAttributes(attribute.String("artifact", path))

	if ctx.Err() != nil {
		return rendering{err: errors.Wrap(ctx.Err(), "not started")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rendering{err: errors.Wrap(err, "reading artifact")}
	}

	schema, err := ParseSchema(data)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return rendering{err: err}
	}

	code, err := w.emitter.Emit(schema)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return rendering{err: errors.Wrapf(err, "generating %s", schema.ContractName)}
	}

	if _, ok := w.emitter.(*GoEmitter); ok {
		return rendering{outputs: []output{{goFileName(schema.ContractName), []byte(code)}}}
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".ts"
	return rendering{outputs: []output{
		{"contracts/" + name, []byte(code)},
		{"json/" + base, data},
	}}
}

// store claims the output names of one artifact and writes them. Names
// already claimed by an earlier artifact fail the artifact as a whole.
func (w *Writer) store(ctx context.Context, path string, outputs []output, owners map[string]string) error {
	ctx, span := otel.Tracer("").Start(ctx, "generate.Writer.store")
	defer span.End()
	span.SetAttributes(attribute.String("artifact", path))

	for _, o := range outputs {
		if owner, ok := owners[o.name]; ok {
			return errors.Errorf("output name %s already taken by %s", o.name, owner)
		}
	}
	for _, o := range outputs {
		owners[o.name] = path
	}

	for _, o := range outputs {
		err := w.storage.Put(ctx, o.name, o.data)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return errors.Wrapf(err, "storing %s", o.name)
		}
	}
	return nil
}

// artifacts lists the *.json files below the input directory in lexical
// order.
func (w *Writer) artifacts() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(w.config.Input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
