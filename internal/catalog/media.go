package catalog

import "ankibridge/internal/domain"

// mediaActions covers media file storage and retrieval.
func mediaActions() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:        "storeMediaFile",
			Description: "Stores a file in the media folder from base64 data, a local path or a URL. By default an existing file with the same name is replaced. Returns the stored filename.",
			InputSchema: obj(map[string]domain.Schema{
				"filename":       str("Filename to store the media under."),
				"data":           str("Base64-encoded file contents."),
				"path":           str("Absolute path of a local file to copy."),
				"url":            str("URL to download the file from."),
				"deleteExisting": boolean("Replace an existing file of the same name (default true); false stores under a deduplicated name."),
			}, "filename"),
			Format: domain.FormatLine("Stored media file %v"),
		},
		{
			Name:        "retrieveMediaFile",
			Description: "Retrieves the base64-encoded contents of the given media file, or false if the file does not exist.",
			InputSchema: obj(map[string]domain.Schema{
				"filename": str("Name of the media file to retrieve."),
			}, "filename"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "getMediaFilesNames",
			Description: "Returns the names of media files matching the given glob pattern. All names by default.",
			InputSchema: obj(map[string]domain.Schema{
				"pattern": str("Glob pattern, e.g. \"_hell*.txt\"."),
			}),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "getMediaDirPath",
			Description: "Returns the full path of the collection.media folder of the currently opened profile.",
			InputSchema: obj(nil),
			Format:      domain.FormatLine("Media directory: %v"),
		},
		{
			Name:        "deleteMediaFile",
			Description: "Deletes the given file from the media folder.",
			InputSchema: obj(map[string]domain.Schema{
				"filename": str("Name of the media file to delete."),
			}, "filename"),
			Format: domain.FormatAck("Media file deleted."),
		},
	}
}
