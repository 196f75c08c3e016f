package registry_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ankibridge/internal/adapter/outbound/registry"
	"ankibridge/internal/domain"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return registry.New(logger)
}

func testDescriptors() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:        "suspend",
			Description: "Suspends cards.",
			InputSchema: domain.Schema{
				Type: "object",
				Properties: map[string]domain.Schema{
					"cards": {Type: "array", Items: &domain.Schema{Type: "integer"}},
				},
				Required: []string{"cards"},
			},
			Format: domain.FormatBool("Suspended.", "Not suspended."),
		},
		{
			Name:        "deckNames",
			Description: "Lists deck names.",
			InputSchema: domain.Schema{Type: "object"},
			Format:      domain.FormatJSON(),
		},
	}
}

func TestRegistry_SaveAndList(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	require.NoError(t, reg.Save(ctx, testDescriptors()))

	list, err := reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Registration order is preserved.
	assert.Equal(t, "suspend", list[0].Name)
	assert.Equal(t, "deckNames", list[1].Name)
}

func TestRegistry_Save_RejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	descs := testDescriptors()
	require.NoError(t, reg.Save(ctx, descs))

	err := reg.Save(ctx, descs[:1])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestRegistry_Save_RejectsEmptyName(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	err := reg.Save(ctx, []domain.Descriptor{{InputSchema: domain.Schema{Type: "object"}}})
	require.Error(t, err)
}

func TestRegistry_Find(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)
	require.NoError(t, reg.Save(ctx, testDescriptors()))

	desc, err := reg.Find(ctx, "suspend")
	require.NoError(t, err)
	assert.Equal(t, "suspend", desc.Name)

	validator, err := reg.FindValidator(ctx, "suspend")
	require.NoError(t, err)
	require.NotNil(t, validator)

	// The compiled validator enforces the declared schema.
	assert.NoError(t, validator.Validate(map[string]any{"cards": []any{float64(1)}}))
	assert.Error(t, validator.Validate(map[string]any{"cards": "not-an-array"}))
}

func TestRegistry_Find_Unknown(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)
	require.NoError(t, reg.Save(ctx, testDescriptors()))

	_, err := reg.Find(ctx, "doesNotExist")
	var notFound *domain.ToolNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "doesNotExist", notFound.Tool)

	_, err = reg.FindValidator(ctx, "doesNotExist")
	require.ErrorAs(t, err, &notFound)
}
