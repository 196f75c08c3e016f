// Package registry provides the in-memory implementation of the
// usecase.DescriptorStore. The catalogue is registered once at startup and is
// read-only afterwards; the mutex exists only because List/Find may race with
// a late Save during tests.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"ankibridge/internal/domain"
)

// Registry stores descriptors in registration order together with their
// compiled input-schema validators.
type Registry struct {
	mu         sync.RWMutex
	order      []string
	descs      map[string]domain.Descriptor
	validators map[string]*jsonschema.Schema
	logger     *slog.Logger
}

// New creates an empty Registry.
func New(logger *slog.Logger) *Registry {
	return &Registry{
		descs:      make(map[string]domain.Descriptor),
		validators: make(map[string]*jsonschema.Schema),
		logger:     logger.With("component", "registry"),
	}
}

// Save registers the given descriptors, compiling each input schema. A
// duplicate name, an empty name, or an uncompilable schema aborts the whole
// Save; the catalogue is static data, so any of these is a programming error
// worth failing startup over.
func (r *Registry) Save(ctx context.Context, descs []domain.Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, desc := range descs {
		if desc.Name == "" {
			return fmt.Errorf("save failed: descriptor with empty name")
		}
		if _, exists := r.descs[desc.Name]; exists {
			return fmt.Errorf("save failed: duplicate descriptor name %q", desc.Name)
		}
		validator, err := compileSchema(desc.Name, desc.InputSchema)
		if err != nil {
			return fmt.Errorf("save failed: schema for %q does not compile: %w", desc.Name, err)
		}
		r.descs[desc.Name] = desc
		r.validators[desc.Name] = validator
		r.order = append(r.order, desc.Name)
	}
	r.logger.Info("Registered descriptors", slog.Int("count", len(descs)), slog.Int("total", len(r.order)))
	return nil
}

// List returns all descriptors in registration order.
func (r *Registry) List(ctx context.Context) ([]domain.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Descriptor, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.descs[name])
	}
	return list, nil
}

// Find retrieves a descriptor by name.
func (r *Registry) Find(ctx context.Context, name string) (*domain.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.descs[name]
	if !ok {
		r.logger.Warn("Descriptor not found", slog.String("tool", name))
		return nil, &domain.ToolNotFoundError{Tool: name}
	}
	return &desc, nil
}

// FindValidator retrieves the compiled input schema for a descriptor.
func (r *Registry) FindValidator(ctx context.Context, name string) (*jsonschema.Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	validator, ok := r.validators[name]
	if !ok {
		r.logger.Warn("Validator not found", slog.String("tool", name))
		return nil, &domain.ToolNotFoundError{Tool: name}
	}
	return validator, nil
}

// compileSchema turns the descriptor's structural schema into a JSON Schema
// validator. The schema marshals to standard JSON Schema, so compilation is
// a marshal/compile round trip.
func compileSchema(name string, schema domain.Schema) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	url := name + ".schema.json"
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}
