package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ankibridge/internal/catalog"
	"ankibridge/internal/domain"
)

func TestAll_NamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, desc := range catalog.All() {
		assert.False(t, seen[desc.Name], "duplicate descriptor name %q", desc.Name)
		seen[desc.Name] = true
	}
}

func TestAll_DescriptorsAreComplete(t *testing.T) {
	for _, desc := range catalog.All() {
		assert.NotEmpty(t, desc.Name)
		assert.NotEmpty(t, desc.Description, "descriptor %q has no description", desc.Name)
		assert.Equal(t, "object", desc.InputSchema.Type, "descriptor %q input schema is not an object", desc.Name)
		assert.NotNil(t, desc.Format, "descriptor %q has no formatter", desc.Name)

		// Every required field must be declared in properties.
		for _, field := range desc.InputSchema.Required {
			_, ok := desc.InputSchema.Properties[field]
			assert.True(t, ok, "descriptor %q requires undeclared field %q", desc.Name, field)
		}
		// Every paired array must name declared array fields.
		for _, pair := range desc.PairedArrays {
			for _, field := range pair {
				prop, ok := desc.InputSchema.Properties[field]
				require.True(t, ok, "descriptor %q pairs undeclared field %q", desc.Name, field)
				assert.Equal(t, "array", prop.Type, "descriptor %q paired field %q is not an array", desc.Name, field)
			}
		}
	}
}

func TestGroups_CoverTheDocumentedVocabulary(t *testing.T) {
	groups := catalog.Groups()

	// Spot-check one well-known action per group.
	spot := map[string]string{
		catalog.GroupCards:  "suspend",
		catalog.GroupDecks:  "createDeck",
		catalog.GroupGUI:    "guiBrowse",
		catalog.GroupMedia:  "storeMediaFile",
		catalog.GroupMisc:   "multi",
		catalog.GroupModels: "modelNames",
		catalog.GroupNotes:  "addNote",
		catalog.GroupStats:  "cardReviews",
	}
	for group, name := range spot {
		descs, ok := groups[group]
		require.True(t, ok, "missing group %q", group)
		assert.True(t, containsName(descs, name), "group %q missing action %q", group, name)
	}

	total := 0
	for _, descs := range groups {
		total += len(descs)
	}
	assert.Equal(t, len(catalog.All()), total)
	assert.GreaterOrEqual(t, total, 100, "catalogue should span the full AnkiConnect vocabulary")
}

func TestWithout_DropsWholeGroups(t *testing.T) {
	all := catalog.All()
	withoutGUI := catalog.Without([]string{catalog.GroupGUI})

	assert.Len(t, withoutGUI, len(all)-len(catalog.Groups()[catalog.GroupGUI]))
	assert.False(t, containsName(withoutGUI, "guiBrowse"))
	assert.True(t, containsName(withoutGUI, "addNote"))

	// Unknown group names are ignored.
	assert.Len(t, catalog.Without([]string{"nope"}), len(all))
}

func TestDescriptor_SetEaseFactorsDeclaresPairing(t *testing.T) {
	desc := findDescriptor(t, "setEaseFactors")
	require.Len(t, desc.PairedArrays, 1)
	assert.Equal(t, [2]string{"cards", "easeFactors"}, desc.PairedArrays[0])
	assert.ElementsMatch(t, []string{"cards", "easeFactors"}, desc.InputSchema.Required)
}

func TestDescriptor_CreateDeckShape(t *testing.T) {
	desc := findDescriptor(t, "createDeck")
	assert.Equal(t, []string{"deck"}, desc.InputSchema.Required)
	assert.Equal(t, "string", desc.InputSchema.Properties["deck"].Type)
}

func TestDescriptor_AddNoteShape(t *testing.T) {
	desc := findDescriptor(t, "addNote")
	require.Equal(t, []string{"note"}, desc.InputSchema.Required)

	note := desc.InputSchema.Properties["note"]
	assert.Equal(t, "object", note.Type)
	assert.ElementsMatch(t, []string{"deckName", "modelName", "fields"}, note.Required)
	for _, field := range []string{"deckName", "modelName", "fields", "tags", "options", "audio", "video", "picture"} {
		_, ok := note.Properties[field]
		assert.True(t, ok, "addNote note schema missing field %q", field)
	}
}

func containsName(descs []domain.Descriptor, name string) bool {
	for _, d := range descs {
		if d.Name == name {
			return true
		}
	}
	return false
}

func findDescriptor(t *testing.T, name string) domain.Descriptor {
	t.Helper()
	for _, d := range catalog.All() {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("descriptor %q not found", name)
	return domain.Descriptor{}
}
