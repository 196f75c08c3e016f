package catalog

import "ankibridge/internal/domain"

// noteActions covers note CRUD, validation and tag management.
func noteActions() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:        "addNote",
			Description: "Creates a note from the given deck, model, field values and tags. Returns the ID of the created note, or an error if it cannot be created (e.g. duplicate).",
			InputSchema: obj(map[string]domain.Schema{
				"note": noteInput(),
			}, "note"),
			Format: domain.FormatLine("Note added with ID %v"),
		},
		{
			Name:        "addNotes",
			Description: "Creates multiple notes at once. Returns an array of created note IDs, with null for notes that could not be created.",
			InputSchema: obj(map[string]domain.Schema{
				"notes": array("Notes to create.", noteInput()),
			}, "notes"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "canAddNotes",
			Description: "Returns an array of booleans indicating whether each given note can be added.",
			InputSchema: obj(map[string]domain.Schema{
				"notes": array("Notes to check.", noteInput()),
			}, "notes"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "canAddNotesWithErrorDetail",
			Description: "Like canAddNotes, but each entry also carries the reason a note cannot be added.",
			InputSchema: obj(map[string]domain.Schema{
				"notes": array("Notes to check.", noteInput()),
			}, "notes"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "updateNoteFields",
			Description: "Modifies the fields of an existing note. The note must not be open in a browser Edit dialog, or Anki will fail to save it.",
			InputSchema: obj(map[string]domain.Schema{
				"note": obj(map[string]domain.Schema{
					"id":      integer("ID of the note to update."),
					"fields":  freeform("Mapping of field names to new contents."),
					"audio":   mediaAttachments("Audio files to download or embed."),
					"video":   mediaAttachments("Video files to download or embed."),
					"picture": mediaAttachments("Pictures to download or embed."),
				}, "id", "fields"),
			}, "note"),
			Format: domain.FormatAck("Note fields updated."),
		},
		{
			Name:        "updateNote",
			Description: "Modifies the fields and/or tags of an existing note. At least one of fields or tags must be provided.",
			InputSchema: obj(map[string]domain.Schema{
				"note": obj(map[string]domain.Schema{
					"id":     integer("ID of the note to update."),
					"fields": freeform("Mapping of field names to new contents."),
					"tags":   stringList("Full replacement set of tags."),
				}, "id"),
			}, "note"),
			Format: domain.FormatAck("Note updated."),
		},
		{
			Name:        "updateNoteModel",
			Description: "Changes the model of an existing note, updating its fields and tags to the new model's.",
			InputSchema: obj(map[string]domain.Schema{
				"note": obj(map[string]domain.Schema{
					"id":        integer("ID of the note to update."),
					"modelName": str("Name of the new model."),
					"fields":    freeform("Mapping of the new model's field names to contents."),
					"tags":      stringList("Full replacement set of tags."),
				}, "id", "modelName", "fields"),
			}, "note"),
			Format: domain.FormatAck("Note model updated."),
		},
		{
			Name:        "updateNoteTags",
			Description: "Replaces the tags of the note with the given ID.",
			InputSchema: obj(map[string]domain.Schema{
				"note": integer("ID of the note to update."),
				"tags": stringList("Full replacement set of tags."),
			}, "note", "tags"),
			Format: domain.FormatAck("Note tags updated."),
		},
		{
			Name:        "getNoteTags",
			Description: "Returns the tags of the note with the given ID.",
			InputSchema: obj(map[string]domain.Schema{
				"note": integer("Note ID to look up."),
			}, "note"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "addTags",
			Description: "Adds the given space-separated tags to the given notes.",
			InputSchema: obj(map[string]domain.Schema{
				"notes": noteIDs("Note IDs to tag."),
				"tags":  str("Space-separated tags to add."),
			}, "notes", "tags"),
			Format: domain.FormatAck("Tags added."),
		},
		{
			Name:        "removeTags",
			Description: "Removes the given space-separated tags from the given notes.",
			InputSchema: obj(map[string]domain.Schema{
				"notes": noteIDs("Note IDs to untag."),
				"tags":  str("Space-separated tags to remove."),
			}, "notes", "tags"),
			Format: domain.FormatAck("Tags removed."),
		},
		{
			Name:        "getTags",
			Description: "Returns the complete list of tags for the current user.",
			InputSchema: obj(nil),
			Format:      domain.FormatJSON(),
		},
		{
			Name:        "clearUnusedTags",
			Description: "Clears all tags that are no longer attached to any note.",
			InputSchema: obj(nil),
			Format:      domain.FormatAck("Unused tags cleared."),
		},
		{
			Name:        "replaceTags",
			Description: "Replaces a tag with a new one on the given notes.",
			InputSchema: obj(map[string]domain.Schema{
				"notes":            noteIDs("Note IDs to modify."),
				"tag_to_replace":   str("Tag to replace."),
				"replace_with_tag": str("Replacement tag."),
			}, "notes", "tag_to_replace", "replace_with_tag"),
			Format: domain.FormatAck("Tags replaced."),
		},
		{
			Name:        "replaceTagsInAllNotes",
			Description: "Replaces a tag with a new one across all notes in the collection.",
			InputSchema: obj(map[string]domain.Schema{
				"tag_to_replace":   str("Tag to replace."),
				"replace_with_tag": str("Replacement tag."),
			}, "tag_to_replace", "replace_with_tag"),
			Format: domain.FormatAck("Tags replaced in all notes."),
		},
		{
			Name:        "findNotes",
			Description: "Returns an array of note IDs for the given Anki search query (same syntax as the Browse screen).",
			InputSchema: obj(map[string]domain.Schema{
				"query": str("Anki search query, e.g. \"deck:current\"."),
			}, "query"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "notesInfo",
			Description: "Returns a list of objects with each note's fields, tags, model and card IDs, looked up either by note IDs or by a search query.",
			InputSchema: obj(map[string]domain.Schema{
				"notes": noteIDs("Note IDs to look up."),
				"query": str("Anki search query; alternative to notes."),
			}),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "notesModTime",
			Description: "Returns a list of objects with the modification time of each given note.",
			InputSchema: obj(map[string]domain.Schema{
				"notes": noteIDs("Note IDs to look up."),
			}, "notes"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "deleteNotes",
			Description: "Deletes the given notes and all of their cards.",
			InputSchema: obj(map[string]domain.Schema{
				"notes": noteIDs("Note IDs to delete."),
			}, "notes"),
			Format: domain.FormatAck("Notes deleted."),
		},
		{
			Name:        "removeEmptyNotes",
			Description: "Removes all empty notes from the collection.",
			InputSchema: obj(nil),
			Format:      domain.FormatAck("Empty notes removed."),
		},
	}
}
