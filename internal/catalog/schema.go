package catalog

import "ankibridge/internal/domain"

// Schema declaration helpers. The catalogue is a few thousand lines of
// repetitive data; these keep each action declaration down to its essentials.

func obj(props map[string]domain.Schema, required ...string) domain.Schema {
	return domain.Schema{Type: "object", Properties: props, Required: required}
}

func str(desc string) domain.Schema {
	return domain.Schema{Type: "string", Description: desc}
}

func strEnum(desc string, values ...any) domain.Schema {
	return domain.Schema{Type: "string", Description: desc, Enum: values}
}

func integer(desc string) domain.Schema {
	return domain.Schema{Type: "integer", Description: desc}
}

func boolean(desc string) domain.Schema {
	return domain.Schema{Type: "boolean", Description: desc}
}

func array(desc string, items domain.Schema) domain.Schema {
	return domain.Schema{Type: "array", Description: desc, Items: &items}
}

// freeform is an object whose keys are not fixed (e.g. a field-name to
// field-content mapping).
func freeform(desc string) domain.Schema {
	return domain.Schema{Type: "object", Description: desc}
}

// anything places no type constraint on the value.
func anything(desc string) domain.Schema {
	return domain.Schema{Description: desc}
}

func cardIDs(desc string) domain.Schema {
	return array(desc, integer(""))
}

func noteIDs(desc string) domain.Schema {
	return array(desc, integer(""))
}

func stringList(desc string) domain.Schema {
	return array(desc, str(""))
}

// noteInput is the note object accepted by addNote, addNotes, canAddNotes
// and guiAddCards, matching the AnkiConnect documented shape exactly.
func noteInput() domain.Schema {
	return obj(map[string]domain.Schema{
		"deckName":  str("Name of the deck the note belongs to."),
		"modelName": str("Name of the note type (model)."),
		"fields":    freeform("Mapping of field names to field contents."),
		"tags":      stringList("Tags to attach to the note."),
		"options":   freeform("Duplicate handling options (allowDuplicate, duplicateScope, duplicateScopeOptions)."),
		"audio":     mediaAttachments("Audio files to download or embed into the note."),
		"video":     mediaAttachments("Video files to download or embed into the note."),
		"picture":   mediaAttachments("Pictures to download or embed into the note."),
	}, "deckName", "modelName", "fields")
}

// mediaAttachments is the audio/video/picture attachment list shared by the
// note-creating actions: each entry names a file plus a source (url, data or
// path) and the fields it is appended to.
func mediaAttachments(desc string) domain.Schema {
	item := obj(map[string]domain.Schema{
		"filename": str("Filename to store the media under."),
		"url":      str("URL to download the media from."),
		"data":     str("Base64-encoded media contents."),
		"path":     str("Absolute path of a local media file."),
		"skipHash": str("MD5 hash; the file is skipped when it matches."),
		"fields":   stringList("Note fields the media reference is appended to."),
	}, "filename")
	return array(desc, item)
}

// cardTemplate is the template object used by createModel and
// modelTemplateAdd.
func cardTemplate(desc string) domain.Schema {
	s := obj(map[string]domain.Schema{
		"Name":  str("Template name."),
		"Front": str("Front side template."),
		"Back":  str("Back side template."),
	}, "Front", "Back")
	s.Description = desc
	return s
}
