package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/huandu/go-clone"
	"go.opentelemetry.io/otel"

	"github.com/ustchcl/contractgen/generate"
)

var _ generate.Storage = (*Storage)(nil)

// Storage keeps generated files in memory. Used for dry runs, the HTTP
// endpoint and tests.
type Storage struct {
	files sync.Map
}

func NewStorage() *Storage {
	return &Storage{}
}

func (s *Storage) Put(ctx context.Context, name string, data []byte) error {
	_, span := otel.Tracer("").Start(ctx, "memory.Storage.Put")
	defer span.End()

	// The caller may reuse data after Put returns.
	s.files.Store(name, clone.Clone(data).([]byte))
	return nil
}

// Get returns a copy of the file stored under name.
func (s *Storage) Get(name string) ([]byte, bool) {
	v, ok := s.files.Load(name)
	if !ok {
		return nil, false
	}
	return clone.Clone(v).([]byte), true
}

// Names lists the stored file names in lexical order.
func (s *Storage) Names() []string {
	var names []string
	s.files.Range(func(key, _ any) bool {
		names = append(names, key.(string))
		return true
	})
	sort.Strings(names)
	return names
}

// Files returns a snapshot that callers are free to modify.
func (s *Storage) Files() map[string][]byte {
	files := map[string][]byte{}
	s.files.Range(func(key, value any) bool {
		files[key.(string)] = value.([]byte)
		return true
	})
	return clone.Clone(files).(map[string][]byte)
}
