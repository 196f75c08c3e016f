package mcpserver

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpGoServer "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ankibridge/internal/adapter/outbound/registry"
	"ankibridge/internal/domain"
	"ankibridge/internal/usecase"
)

// stubInvoker returns a canned result or error and records the last call.
type stubInvoker struct {
	result     any
	err        error
	lastAction string
	lastParams map[string]any
}

func (s *stubInvoker) Invoke(ctx context.Context, action string, params map[string]any) (any, error) {
	s.lastAction = action
	s.lastParams = params
	return s.result, s.err
}

func newTestServer(t *testing.T, invoker usecase.ActionInvoker) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store := registry.New(logger)
	descs := []domain.Descriptor{
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
			Format: domain.FormatBool("Cards suspended.", "No cards were suspended."),
		},
		{
			Name:        "deckNames",
			Description: "Lists deck names.",
			InputSchema: domain.Schema{Type: "object"},
			Format:      domain.FormatJSON(),
		},
	}
	require.NoError(t, store.Save(context.Background(), descs))

	serveUC := usecase.NewServeToolsUseCase(store, logger)
	callUC := usecase.NewCallToolUseCase(store, invoker, logger)
	mcpSrv := mcpGoServer.NewMCPServer("ankibridge-test", "0.0.1")

	srv := New(mcpSrv, serveUC, callUC, logger)
	require.NoError(t, srv.RegisterTools(context.Background()))
	return srv
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is not text")
	return text.Text
}

func TestHandler_Success(t *testing.T) {
	invoker := &stubInvoker{result: true}
	srv := newTestServer(t, invoker)

	result, err := srv.handler("suspend")(context.Background(), callRequest("suspend", map[string]any{
		"cards": []any{float64(12345)},
	}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "Cards suspended.", textOf(t, result))
	assert.Equal(t, "suspend", invoker.lastAction)
	assert.Equal(t, map[string]any{"cards": []any{float64(12345)}}, invoker.lastParams)
}

func TestHandler_TypedErrorsSurfaceAsFailures(t *testing.T) {
	tests := []struct {
		name    string
		invoker *stubInvoker
		args    map[string]any
		asErr   any
	}{
		{
			name:    "remote action error",
			invoker: &stubInvoker{err: &domain.RemoteActionError{Message: "deck was not found"}},
			args:    map[string]any{"cards": []any{float64(1)}},
			asErr:   new(*domain.RemoteActionError),
		},
		{
			name:    "validation error",
			invoker: &stubInvoker{},
			args:    map[string]any{},
			asErr:   new(*domain.InvalidParametersError),
		},
		{
			name:    "transport error",
			invoker: &stubInvoker{err: &domain.TransportError{Status: 502}},
			args:    map[string]any{"cards": []any{float64(1)}},
			asErr:   new(*domain.TransportError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.invoker)
			result, err := srv.handler("suspend")(context.Background(), callRequest("suspend", tt.args))

			require.Error(t, err)
			assert.Nil(t, result)
			switch target := tt.asErr.(type) {
			case **domain.RemoteActionError:
				assert.True(t, errors.As(err, target))
			case **domain.InvalidParametersError:
				assert.True(t, errors.As(err, target))
			case **domain.TransportError:
				assert.True(t, errors.As(err, target))
			}
		})
	}
}

func TestHandler_UnknownToolIsTyped(t *testing.T) {
	srv := newTestServer(t, &stubInvoker{})

	_, err := srv.handler("doesNotExist")(context.Background(), callRequest("doesNotExist", nil))

	var notFound *domain.ToolNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestHandler_UnexpectedErrorsBecomeSoftResults(t *testing.T) {
	invoker := &stubInvoker{err: errors.New("something odd happened")}
	srv := newTestServer(t, invoker)

	result, err := srv.handler("suspend")(context.Background(), callRequest("suspend", map[string]any{
		"cards": []any{float64(1)},
	}))

	// Untyped failures downgrade to isError content so the session survives.
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
