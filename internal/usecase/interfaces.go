package usecase

import (
	"context"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"ankibridge/internal/domain"
)

// ActionInvoker is the sole network-facing primitive: it performs exactly one
// action invocation against the AnkiConnect endpoint and normalizes its
// outcome. Implementations are stateless and reentrant; concurrent
// invocations are independent. Failures surface as the typed errors defined
// in the domain package.
type ActionInvoker interface {
	Invoke(ctx context.Context, action string, params map[string]any) (any, error)
}

// DescriptorStore is the contract for the static action catalogue. The store
// is write-once: Save is called during startup, everything after is reads.
type DescriptorStore interface {
	// Save registers descriptors, compiling each input schema into a
	// validator. Duplicate names and uncompilable schemas are errors.
	Save(ctx context.Context, descs []domain.Descriptor) error

	// List returns every registered descriptor in registration order. The
	// order is stable across calls within a process.
	List(ctx context.Context) ([]domain.Descriptor, error)

	// Find retrieves a descriptor by its unique name.
	Find(ctx context.Context, name string) (*domain.Descriptor, error)

	// FindValidator retrieves the compiled input schema for a descriptor.
	FindValidator(ctx context.Context, name string) (*jsonschema.Schema, error)
}
