package ankiconnect_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ankibridge/internal/adapter/outbound/ankiconnect"
	"ankibridge/internal/domain"
)

func newTestInvoker(t *testing.T, handler http.Handler) *ankiconnect.Invoker {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ankiconnect.New(server.Client(), server.URL, "", 6, logger)
}

func TestInvoker_Invoke(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		inAction    string
		inParams    map[string]any
		wantResult  any
		wantErrType any
		wantErrText string
	}{
		{
			name: "Success - result unwrapped",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(http.MethodPost, r.Method)
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				var req map[string]any
				require.NoError(t, json.Unmarshal(body, &req))
				assert.Equal("createDeck", req["action"])
				assert.Equal(float64(6), req["version"])
				assert.Equal(map[string]any{"deck": "Spanish"}, req["params"])

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"error": null, "result": 1694938000000}`))
			},
			inAction:   "createDeck",
			inParams:   map[string]any{"deck": "Spanish"},
			wantResult: json.Number("1694938000000"),
		},
		{
			name: "Success - nil params sent as empty object",
			handler: func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				var req map[string]any
				require.NoError(t, json.Unmarshal(body, &req))
				assert.Equal(map[string]any{}, req["params"])
				_, _ = w.Write([]byte(`{"error": null, "result": ["Default", "Spanish"]}`))
			},
			inAction:   "deckNames",
			wantResult: []any{"Default", "Spanish"},
		},
		{
			name: "Success - null result is a valid success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error": null, "result": null}`))
			},
			inAction:   "forgetCards",
			inParams:   map[string]any{"cards": []any{json.Number("1")}},
			wantResult: nil,
		},
		{
			name: "Remote error - message passed through verbatim",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error": "deck was not found: Nope", "result": null}`))
			},
			inAction:    "deleteDecks",
			inParams:    map[string]any{"decks": []any{"Nope"}, "cardsToo": true},
			wantErrType: &domain.RemoteActionError{},
			wantErrText: "deck was not found: Nope",
		},
		{
			name: "Protocol violation - missing result key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error": null}`))
			},
			inAction:    "deckNames",
			wantErrType: &domain.ProtocolViolationError{},
		},
		{
			name: "Protocol violation - missing error key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"result": []}`))
			},
			inAction:    "deckNames",
			wantErrType: &domain.ProtocolViolationError{},
		},
		{
			name: "Protocol violation - non-object body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`"hello"`))
			},
			inAction:    "deckNames",
			wantErrType: &domain.ProtocolViolationError{},
		},
		{
			name: "Transport error - non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "internal error", http.StatusInternalServerError)
			},
			inAction:    "deckNames",
			wantErrType: &domain.TransportError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoker := newTestInvoker(t, tt.handler)
			result, err := invoker.Invoke(ctx, tt.inAction, tt.inParams)

			if tt.wantErrType != nil {
				require.Error(t, err)
				switch tt.wantErrType.(type) {
				case *domain.RemoteActionError:
					var remoteErr *domain.RemoteActionError
					require.ErrorAs(t, err, &remoteErr)
					assert.Equal(tt.wantErrText, remoteErr.Message)
					assert.Equal(tt.wantErrText, remoteErr.Error())
				case *domain.ProtocolViolationError:
					var protoErr *domain.ProtocolViolationError
					require.ErrorAs(t, err, &protoErr)
				case *domain.TransportError:
					var transportErr *domain.TransportError
					require.ErrorAs(t, err, &transportErr)
				}
				assert.Nil(result)
			} else {
				require.NoError(t, err)
				assert.Equal(tt.wantResult, result)
			}
		})
	}
}

func TestInvoker_Invoke_ConnectionFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	// Server started and immediately closed: the port refuses connections.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	invoker := ankiconnect.New(server.Client(), url, "", 6, logger)
	_, err := invoker.Invoke(context.Background(), "deckNames", nil)

	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 0, transportErr.Status)
	assert.Error(t, transportErr.Unwrap())
}

func TestInvoker_Invoke_APIKeyIncluded(t *testing.T) {
	var gotKey any
	handler := func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		_ = json.Unmarshal(body, &req)
		gotKey = req["key"]
		_, _ = w.Write([]byte(`{"error": null, "result": 6}`))
	}
	server := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	invoker := ankiconnect.New(server.Client(), server.URL, "s3cret", 6, logger)
	_, err := invoker.Invoke(context.Background(), "version", nil)

	require.NoError(t, err)
	assert.Equal(t, "s3cret", gotKey)
}
