package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

// CallToolUseCase handles a single tool invocation: look the descriptor up,
// validate the arguments against its input schema, forward the translated
// parameters through the ActionInvoker, and format the unwrapped result.
// Every call is a stateless, independent cycle; errors from validation and
// from the invoker propagate unchanged as the typed kinds defined in domain.
type CallToolUseCase struct {
	store   DescriptorStore
	invoker ActionInvoker
	logger  *slog.Logger
}

// NewCallToolUseCase creates a new CallToolUseCase.
func NewCallToolUseCase(store DescriptorStore, invoker ActionInvoker, logger *slog.Logger) *CallToolUseCase {
	return &CallToolUseCase{
		store:   store,
		invoker: invoker,
		logger:  logger.With("usecase", "CallTool"),
	}
}

// Execute runs one request/validate/dispatch/format cycle and returns the
// text content for the outer protocol layer.
func (uc *CallToolUseCase) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	log := uc.logger.With(slog.String("tool", name))

	desc, err := uc.store.Find(ctx, name)
	if err != nil {
		log.Warn("Tool not registered", slog.Any("error", err))
		return "", err
	}
	validator, err := uc.store.FindValidator(ctx, name)
	if err != nil {
		log.Error("Validator not registered", slog.Any("error", err))
		return "", err
	}

	if err := validateArgs(desc, validator, args); err != nil {
		log.Warn("Rejected arguments", slog.Any("error", err))
		return "", err
	}

	result, err := uc.invoker.Invoke(ctx, desc.Name, desc.Params(args))
	if err != nil {
		log.Error("Invocation failed", slog.Any("error", err))
		return "", err
	}

	text, err := desc.Format(result)
	if err != nil {
		log.Error("Failed to format result", slog.Any("error", err))
		return "", fmt.Errorf("failed to format result of %s: %w", name, err)
	}
	log.Debug("Tool call completed")
	return text, nil
}
