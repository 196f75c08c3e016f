package domain

// Descriptor is the static registration record for one AnkiConnect action
// exposed as an MCP tool. Descriptors are created once at process start from
// the catalog declarations and are never mutated afterwards.
type Descriptor struct {
	// Name is the AnkiConnect action name and the MCP tool name. It MUST be
	// unique within the registry and match the AnkiConnect vocabulary exactly,
	// since it is forwarded verbatim to the endpoint.
	Name string

	// Description is the natural language explanation shown to the LLM client.
	Description string

	// InputSchema defines the structure of the arguments the tool expects.
	// It is served as-is in tools/list responses and compiled into a JSON
	// Schema validator at registration time.
	InputSchema Schema

	// PairedArrays lists pairs of array-valued argument names that must have
	// equal length (e.g. "cards" and "easeFactors"). JSON Schema cannot
	// express this cross-field constraint, so it is kept as descriptor data.
	PairedArrays [][2]string

	// Translate reshapes validated arguments into the parameter object the
	// remote action expects. Nil means the arguments are forwarded unchanged,
	// which is the case for almost every action.
	Translate func(args map[string]any) map[string]any

	// Format renders the unwrapped remote result as the tool's text output.
	Format Formatter
}

// Params returns the parameter object to send for the given arguments,
// applying the descriptor's translation when one is declared.
func (d *Descriptor) Params(args map[string]any) map[string]any {
	if d.Translate == nil {
		return args
	}
	return d.Translate(args)
}

// Schema is the structural input schema attached to a Descriptor. It is a
// small subset of JSON Schema, sufficient for the AnkiConnect parameter
// shapes, and marshals directly to standard JSON Schema.
type Schema struct {
	Type        string            `json:"type,omitempty"`
	Description string            `json:"description,omitempty"`
	Properties  map[string]Schema `json:"properties,omitempty"`
	Required    []string          `json:"required,omitempty"`
	Items       *Schema           `json:"items,omitempty"`
	Enum        []any             `json:"enum,omitempty"`
}
