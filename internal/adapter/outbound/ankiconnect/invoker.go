// Package ankiconnect implements the usecase.ActionInvoker interface against
// the AnkiConnect HTTP endpoint: one POST per invocation, body
// {action, params, version}, reply unwrapped from the fixed {error, result}
// envelope.
package ankiconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ankibridge/internal/domain"
)

// DefaultVersion is the AnkiConnect API version spoken by this adapter.
const DefaultVersion = 6

var tracer = otel.Tracer("ankibridge/internal/adapter/outbound/ankiconnect")

// Invoker performs action invocations against a fixed AnkiConnect endpoint.
// It is stateless and reentrant: concurrent invocations are independent and
// make no ordering guarantee relative to one another.
type Invoker struct {
	client  *http.Client
	url     string
	apiKey  string
	version int
	logger  *slog.Logger
}

// New creates an Invoker bound to the given endpoint URL for the process
// lifetime. The URL is never mutated after construction. An empty apiKey
// means no key parameter is sent. A version of 0 selects DefaultVersion.
func New(client *http.Client, url, apiKey string, version int, logger *slog.Logger) *Invoker {
	if client == nil {
		client = http.DefaultClient
	}
	if version == 0 {
		version = DefaultVersion
	}
	return &Invoker{
		client:  client,
		url:     url,
		apiKey:  apiKey,
		version: version,
		logger:  logger.With("component", "ankiconnect_invoker"),
	}
}

// request is the AnkiConnect wire format. Key is AnkiConnect's optional
// authentication parameter and is omitted when unset.
type request struct {
	Action  string         `json:"action"`
	Params  map[string]any `json:"params"`
	Version int            `json:"version"`
	Key     string         `json:"key,omitempty"`
}

// Invoke executes one action against the endpoint and returns the unwrapped
// result. The result's shape is action-specific and returned unchanged; no
// coercion, no narrowing. Numbers are decoded as json.Number so identifiers
// survive rendering verbatim.
func (i *Invoker) Invoke(ctx context.Context, action string, params map[string]any) (any, error) {
	log := i.logger.With(slog.String("action", action))

	ctx, span := tracer.Start(ctx, "ankiconnect.invoke",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("anki.action", action)),
	)
	defer span.End()

	if params == nil {
		params = map[string]any{}
	}
	body, err := json.Marshal(request{Action: action, Params: params, Version: i.version, Key: i.apiKey})
	if err != nil {
		return nil, i.fail(log, span, fmt.Errorf("failed to marshal request for %s: %w", action, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.url, bytes.NewReader(body))
	if err != nil {
		return nil, i.fail(log, span, fmt.Errorf("failed to create request for %s: %w", action, err))
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug("Executing AnkiConnect request", slog.String("url", i.url))
	resp, err := i.client.Do(req)
	if err != nil {
		return nil, i.fail(log, span, &domain.TransportError{Err: err})
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, i.fail(log, span, &domain.TransportError{Err: err})
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("Non-success status from AnkiConnect", slog.Int("status_code", resp.StatusCode))
		return nil, i.fail(log, span, &domain.TransportError{Status: resp.StatusCode})
	}

	result, err := unwrapEnvelope(respBody)
	if err != nil {
		return nil, i.fail(log, span, err)
	}

	span.SetStatus(codes.Ok, "")
	log.Debug("AnkiConnect request succeeded")
	return result, nil
}

// unwrapEnvelope validates the {error, result} envelope and returns the raw
// result. Both keys must be present; a null value still counts as present.
func unwrapEnvelope(body []byte) (any, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &domain.ProtocolViolationError{Reason: "response is not a JSON object"}
	}
	errRaw, ok := envelope["error"]
	if !ok {
		return nil, &domain.ProtocolViolationError{Reason: `response missing "error" key`}
	}
	resultRaw, ok := envelope["result"]
	if !ok {
		return nil, &domain.ProtocolViolationError{Reason: `response missing "result" key`}
	}

	var remoteErr *string
	if err := json.Unmarshal(errRaw, &remoteErr); err != nil {
		return nil, &domain.ProtocolViolationError{Reason: `"error" value is neither string nor null`}
	}
	if remoteErr != nil {
		return nil, &domain.RemoteActionError{Message: *remoteErr}
	}

	var result any
	dec := json.NewDecoder(bytes.NewReader(resultRaw))
	dec.UseNumber()
	if err := dec.Decode(&result); err != nil {
		return nil, &domain.ProtocolViolationError{Reason: `"result" value is not valid JSON`}
	}
	return result, nil
}

// fail records the error on the span and the diagnostic stream before
// returning it unchanged. Observability only, never control flow.
func (i *Invoker) fail(log *slog.Logger, span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	log.Error("AnkiConnect invocation failed", slog.Any("error", err))
	return err
}
