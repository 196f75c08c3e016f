package catalog

import "ankibridge/internal/domain"

// miscActions covers system-level operations: permissions, reflection,
// profiles, sync, batched execution and package import/export.
func miscActions() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:        "requestPermission",
			Description: "Requests permission to use the AnkiConnect API. Returns whether the request was granted, the API version and whether a key is required. The only action that never raises an error.",
			InputSchema: obj(nil),
			Format:      domain.FormatJSON(),
		},
		{
			Name:        "version",
			Description: "Returns the version of the AnkiConnect API.",
			InputSchema: obj(nil),
			Format:      domain.FormatLine("AnkiConnect API version %v"),
		},
		{
			Name:        "apiReflect",
			Description: "Returns information about the AnkiConnect APIs available on the endpoint, filtered by the given scopes and action names.",
			InputSchema: obj(map[string]domain.Schema{
				"scopes":  stringList("Scopes to reflect over; currently only \"actions\" is supported."),
				"actions": stringList("Action names to filter by; omit for all."),
			}, "scopes"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "sync",
			Description: "Synchronizes the local Anki collection with AnkiWeb.",
			InputSchema: obj(nil),
			Format:      domain.FormatAck("Collection sync started."),
		},
		{
			Name:        "getProfiles",
			Description: "Returns the list of profiles.",
			InputSchema: obj(nil),
			Format:      domain.FormatJSON(),
		},
		{
			Name:        "getActiveProfile",
			Description: "Returns the name of the currently active profile.",
			InputSchema: obj(nil),
			Format:      domain.FormatLine("Active profile: %v"),
		},
		{
			Name:        "loadProfile",
			Description: "Selects the profile with the given name and opens its collection.",
			InputSchema: obj(map[string]domain.Schema{
				"name": str("Name of the profile to load."),
			}, "name"),
			Format: domain.FormatBool("Profile loaded.", "Failed to load profile."),
		},
		{
			Name:        "multi",
			Description: "Performs multiple actions in one request and returns an array of their results, in order.",
			InputSchema: obj(map[string]domain.Schema{
				"actions": array("Actions to perform.", obj(map[string]domain.Schema{
					"action":  str("Action name."),
					"params":  freeform("Parameters for the action."),
					"version": integer("API version for the action; defaults to the request's version."),
				}, "action")),
			}, "actions"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "exportPackage",
			Description: "Exports the given deck to an .apkg file at the given path. Returns true on success.",
			InputSchema: obj(map[string]domain.Schema{
				"deck":         str("Name of the deck to export."),
				"path":         str("Destination path of the .apkg file."),
				"includeSched": boolean("Include scheduling data (default false)."),
			}, "deck", "path"),
			Format: domain.FormatBool("Deck exported.", "Failed to export deck."),
		},
		{
			Name:        "importPackage",
			Description: "Imports an .apkg file at the given path into the collection. The path is relative to Anki's collection.media folder, not to the AnkiConnect client.",
			InputSchema: obj(map[string]domain.Schema{
				"path": str("Path of the .apkg file to import."),
			}, "path"),
			Format: domain.FormatBool("Package imported.", "Failed to import package."),
		},
		{
			Name:        "reloadCollection",
			Description: "Tells Anki to reload all data from the database.",
			InputSchema: obj(nil),
			Format:      domain.FormatAck("Collection reloaded."),
		},
	}
}
