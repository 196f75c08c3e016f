package domain

import "fmt"

// InvalidParametersError reports arguments that failed schema validation
// before any network activity: a missing required field, a wrong type, or
// mismatched paired-array lengths. Field names the offending argument.
type InvalidParametersError struct {
	Tool   string
	Field  string
	Reason string
}

func (e *InvalidParametersError) Error() string {
	return fmt.Sprintf("invalid parameters for tool %q: field %q %s", e.Tool, e.Field, e.Reason)
}

// ToolNotFoundError reports a tool name absent from the registry.
type ToolNotFoundError struct {
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool %q not found", e.Tool)
}

// TransportError reports that the exchange with the AnkiConnect endpoint
// could not be completed, or that the endpoint replied with a non-success
// HTTP status. Status is zero when the failure happened below HTTP.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("anki-connect request failed: %v", e.Err)
	}
	return fmt.Sprintf("anki-connect returned HTTP %d", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolViolationError reports that the endpoint replied but the reply
// violated the fixed {error, result} envelope contract. This is distinct
// from TransportError: the endpoint was reachable but misbehaved.
type ProtocolViolationError struct {
	Reason string
}

func (e *ProtocolViolationError) Error() string {
	return "malformed anki-connect response: " + e.Reason
}

// RemoteActionError carries a domain-specific failure reported by the
// endpoint itself (e.g. "deck was not found"). The message is the endpoint's
// error string verbatim, never rewritten.
type RemoteActionError struct {
	Message string
}

func (e *RemoteActionError) Error() string { return e.Message }
