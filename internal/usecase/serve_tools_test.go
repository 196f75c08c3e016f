package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ankibridge/internal/domain"
	"ankibridge/internal/usecase"
)

// MockDescriptorStore is a mock implementation of the DescriptorStore interface.
type MockDescriptorStore struct {
	mock.Mock
}

func (m *MockDescriptorStore) Save(ctx context.Context, descs []domain.Descriptor) error {
	args := m.Called(ctx, descs)
	return args.Error(0)
}

func (m *MockDescriptorStore) List(ctx context.Context) ([]domain.Descriptor, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.Descriptor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDescriptorStore) Find(ctx context.Context, name string) (*domain.Descriptor, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*domain.Descriptor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDescriptorStore) FindValidator(ctx context.Context, name string) (*jsonschema.Schema, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*jsonschema.Schema), args.Error(1)
	}
	return nil, args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// compileTestSchema compiles a domain.Schema the way the registry does, so
// use case tests validate against real validators.
func compileTestSchema(t *testing.T, schema domain.Schema) *jsonschema.Schema {
	t.Helper()
	raw, err := json.Marshal(schema)
	require.NoError(t, err)
	compiled, err := jsonschema.CompileString("test.schema.json", string(raw))
	require.NoError(t, err)
	return compiled
}

func TestServeToolsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	descs := []domain.Descriptor{
		{Name: "suspend", Description: "Suspends cards.", InputSchema: domain.Schema{Type: "object"}},
		{Name: "deckNames", Description: "Lists deck names.", InputSchema: domain.Schema{Type: "object"}},
	}

	t.Run("Success - returns full catalogue", func(t *testing.T) {
		store := new(MockDescriptorStore)
		store.On("List", mock.Anything).Return(descs, nil).Once()

		uc := usecase.NewServeToolsUseCase(store, testLogger())
		got, err := uc.Execute(ctx)

		require.NoError(t, err)
		assert.Equal(t, descs, got)
		store.AssertExpectations(t)
	})

	t.Run("Failure - store error wrapped", func(t *testing.T) {
		store := new(MockDescriptorStore)
		store.On("List", mock.Anything).Return(nil, errors.New("boom")).Once()

		uc := usecase.NewServeToolsUseCase(store, testLogger())
		_, err := uc.Execute(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
		store.AssertExpectations(t)
	})
}
