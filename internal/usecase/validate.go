package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"ankibridge/internal/domain"
)

// validateArgs applies the per-descriptor argument contract before any
// network activity: required fields present and non-null, structural schema
// conformance, and equal lengths for paired arrays. It never coerces or
// defaults a value.
func validateArgs(desc *domain.Descriptor, schema *jsonschema.Schema, args map[string]any) error {
	if args == nil {
		args = map[string]any{}
	}

	// Required presence is checked by hand so the error names the exact
	// field instead of the validator's aggregate message.
	for _, field := range desc.InputSchema.Required {
		if v, ok := args[field]; !ok || v == nil {
			return &domain.InvalidParametersError{Tool: desc.Name, Field: field, Reason: "is required"}
		}
	}

	if err := schema.Validate(map[string]any(args)); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			leaf := ve
			for len(leaf.Causes) > 0 {
				leaf = leaf.Causes[0]
			}
			return &domain.InvalidParametersError{
				Tool:   desc.Name,
				Field:  strings.TrimPrefix(leaf.InstanceLocation, "/"),
				Reason: leaf.Message,
			}
		}
		return &domain.InvalidParametersError{Tool: desc.Name, Reason: err.Error()}
	}

	for _, pair := range desc.PairedArrays {
		first, firstOK := args[pair[0]].([]any)
		second, secondOK := args[pair[1]].([]any)
		if firstOK && secondOK && len(first) != len(second) {
			return &domain.InvalidParametersError{
				Tool:   desc.Name,
				Field:  pair[1],
				Reason: fmt.Sprintf("must have the same length as %q (got %d, want %d)", pair[0], len(second), len(first)),
			}
		}
	}
	return nil
}
