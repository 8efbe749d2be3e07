package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/ustchcl/contractgen/generate"
)

var _ generate.Storage = (*Storage)(nil)

// Storage writes generated files below a root directory.
type Storage struct {
	root string
}

func NewStorage(root string) *Storage {
	return &Storage{root: root}
}

func (s *Storage) Put(ctx context.Context, name string, data []byte) error {
	_, span := otel.Tracer("").Start(ctx, "fs.Storage.Put")
	defer span.End()

	local := filepath.FromSlash(name)
	if !filepath.IsLocal(local) {
		return errors.Errorf("name %q escapes the output directory", name)
	}

	path := filepath.Join(s.root, local)
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return errors.Wrap(err, "creating directory")
	}

	err = os.WriteFile(path, data, 0o644)
	return errors.Wrap(err, "writing file")
}
