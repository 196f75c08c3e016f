package domain

import (
	"encoding/json"
	"fmt"
)

// Formatter renders an unwrapped remote result as the tool's text output.
// The formatting convention is declared per action at registration time, not
// inferred at call time: structured results get a JSON dump, boolean-success
// actions get a status line, and so on.
type Formatter func(result any) (string, error)

// FormatJSON renders the raw result as pretty-printed JSON. Used for
// query/list/object results where every field must reach the caller.
func FormatJSON() Formatter {
	return func(result any) (string, error) {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to render result as JSON: %w", err)
		}
		return string(out), nil
	}
}

// FormatBool renders a boolean result as one of two fixed status lines.
// A non-boolean result (some actions report null on success) renders the
// success line.
func FormatBool(success, failure string) Formatter {
	return func(result any) (string, error) {
		if ok, isBool := result.(bool); isBool && !ok {
			return failure, nil
		}
		return success, nil
	}
}

// FormatLine interpolates the result into a single status line. The result
// is rendered with %v; numbers decoded as json.Number keep their exact
// textual form (no float formatting of large identifiers).
func FormatLine(template string) Formatter {
	return func(result any) (string, error) {
		return fmt.Sprintf(template, result), nil
	}
}

// FormatAck renders a fixed acknowledgement line, ignoring the result.
// Used for actions whose result is null on success.
func FormatAck(message string) Formatter {
	return func(any) (string, error) {
		return message, nil
	}
}
