package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"ankibridge/internal/domain"
)

// ServeToolsUseCase provides the functionality to list available tools.
type ServeToolsUseCase struct {
	store  DescriptorStore
	logger *slog.Logger
}

// NewServeToolsUseCase creates a new ServeToolsUseCase.
func NewServeToolsUseCase(store DescriptorStore, logger *slog.Logger) *ServeToolsUseCase {
	return &ServeToolsUseCase{
		store:  store,
		logger: logger.With("usecase", "ServeTools"),
	}
}

// Execute retrieves the full registered catalogue in registration order.
func (uc *ServeToolsUseCase) Execute(ctx context.Context) ([]domain.Descriptor, error) {
	descs, err := uc.store.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list descriptors", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list descriptors: %w", err)
	}
	uc.logger.Debug("Listed tools", slog.Int("count", len(descs)))
	return descs, nil
}
