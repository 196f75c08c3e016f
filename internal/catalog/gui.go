package catalog

import "ankibridge/internal/domain"

// guiActions covers interactive control of the running Anki GUI.
func guiActions() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:        "guiBrowse",
			Description: "Invokes the Card Browser and searches for the given query. Returns the array of card IDs shown. reorderCards optionally sorts the browser column.",
			InputSchema: obj(map[string]domain.Schema{
				"query": str("Anki search query to open the browser with."),
				"reorderCards": obj(map[string]domain.Schema{
					"order":    strEnum("Sort direction.", "ascending", "descending"),
					"columnId": str("Browser column to sort by, e.g. \"noteCrt\"."),
				}),
			}, "query"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "guiSelectCard",
			Description: "Selects the given card in the Card Browser, which must already be open. Returns true if the browser is open.",
			InputSchema: obj(map[string]domain.Schema{
				"card": integer("Card ID to select."),
			}, "card"),
			Format: domain.FormatBool("Card selected.", "Card Browser is not open."),
		},
		{
			Name:        "guiSelectedNotes",
			Description: "Returns the note IDs selected in the Card Browser.",
			InputSchema: obj(nil),
			Format:      domain.FormatJSON(),
		},
		{
			Name:        "guiAddCards",
			Description: "Invokes the Add Cards dialog pre-filled with the given note. Returns the ID of the note that would be added.",
			InputSchema: obj(map[string]domain.Schema{
				"note": noteInput(),
			}, "note"),
			Format: domain.FormatLine("Add Cards dialog opened for note %v"),
		},
		{
			Name:        "guiEditNote",
			Description: "Opens the Edit dialog for the note with the given ID, as from the review screen's Edit button.",
			InputSchema: obj(map[string]domain.Schema{
				"note": integer("Note ID to edit."),
			}, "note"),
			Format: domain.FormatAck("Edit dialog opened."),
		},
		{
			Name:        "guiCurrentCard",
			Description: "Returns the card currently shown in review, or an error if the review screen is not open.",
			InputSchema: obj(nil),
			Format:      domain.FormatJSON(),
		},
		{
			Name:        "guiStartCardTimer",
			Description: "Starts or resets the timer for the current card.",
			InputSchema: obj(nil),
			Format:      domain.FormatBool("Card timer started.", "Failed to start card timer."),
		},
		{
			Name:        "guiShowQuestion",
			Description: "Shows the question side of the current card. Returns true if the review screen is open.",
			InputSchema: obj(nil),
			Format:      domain.FormatBool("Showing question side.", "Review screen is not open."),
		},
		{
			Name:        "guiShowAnswer",
			Description: "Shows the answer side of the current card. Returns true if the review screen is open.",
			InputSchema: obj(nil),
			Format:      domain.FormatBool("Showing answer side.", "Review screen is not open."),
		},
		{
			Name:        "guiAnswerCard",
			Description: "Answers the current card with the given ease. The answer side must be shown first.",
			InputSchema: obj(map[string]domain.Schema{
				"ease": integer("Answer ease, 1 (Again) through 4 (Easy)."),
			}, "ease"),
			Format: domain.FormatBool("Card answered.", "Failed to answer card (is the answer side shown?)."),
		},
		{
			Name:        "guiUndo",
			Description: "Undoes the last action or card review. Returns true on success.",
			InputSchema: obj(nil),
			Format:      domain.FormatBool("Undone.", "Nothing to undo."),
		},
		{
			Name:        "guiDeckOverview",
			Description: "Opens the Deck Overview screen for the given deck. Returns true on success.",
			InputSchema: obj(map[string]domain.Schema{
				"name": str("Name of the deck."),
			}, "name"),
			Format: domain.FormatBool("Deck overview opened.", "Failed to open deck overview."),
		},
		{
			Name:        "guiDeckBrowser",
			Description: "Opens the Deck Browser screen.",
			InputSchema: obj(nil),
			Format:      domain.FormatAck("Deck browser opened."),
		},
		{
			Name:        "guiDeckReview",
			Description: "Starts reviewing the given deck. Returns true on success.",
			InputSchema: obj(map[string]domain.Schema{
				"name": str("Name of the deck to review."),
			}, "name"),
			Format: domain.FormatBool("Deck review started.", "Failed to start deck review."),
		},
		{
			Name:        "guiImportFile",
			Description: "Opens the Import dialog with an optional file path. Forward slashes must be used on Windows too.",
			InputSchema: obj(map[string]domain.Schema{
				"path": str("Path of the file to import."),
			}),
			Format: domain.FormatAck("Import dialog opened."),
		},
		{
			Name:        "guiExitAnki",
			Description: "Schedules a request to gracefully close Anki. Returns immediately, before the collection is actually closed.",
			InputSchema: obj(nil),
			Format:      domain.FormatAck("Anki is closing."),
		},
		{
			Name:        "guiCheckDatabase",
			Description: "Requests a database check. Returns immediately with true; the check result is not reported.",
			InputSchema: obj(nil),
			Format:      domain.FormatBool("Database check started.", "Failed to start database check."),
		},
	}
}
