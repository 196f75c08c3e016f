package catalog

import "ankibridge/internal/domain"

// cardActions covers card state and scheduling: ease factors, suspension,
// due/interval queries, forgetting, relearning and answering.
func cardActions() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:        "getEaseFactors",
			Description: "Returns an array with the ease factor for each of the given cards, in the same order.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to look up."),
			}, "cards"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "setEaseFactors",
			Description: "Sets the ease factor of each given card, one ease factor per card. Returns true for each card whose ease factor was set.",
			InputSchema: obj(map[string]domain.Schema{
				"cards":       cardIDs("Card IDs to modify."),
				"easeFactors": array("New ease factors, one per card (e.g. 2500 for 250%).", integer("")),
			}, "cards", "easeFactors"),
			PairedArrays: [][2]string{{"cards", "easeFactors"}},
			Format:       domain.FormatJSON(),
		},
		{
			Name:        "setSpecificValueOfCard",
			Description: "Sets specific values of a single card. Intended for internal fields like flags; pass warning_check true to acknowledge values that can corrupt the database when misused.",
			InputSchema: obj(map[string]domain.Schema{
				"card":          integer("Card ID to modify."),
				"keys":          stringList("Names of the card values to set."),
				"newValues":     stringList("New values, one per key."),
				"warning_check": boolean("Must be true to change risky internal values."),
			}, "card", "keys", "newValues"),
			PairedArrays: [][2]string{{"keys", "newValues"}},
			Format:       domain.FormatJSON(),
		},
		{
			Name:        "suspend",
			Description: "Suspends the given cards. Returns true if at least one card was not already suspended.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to suspend."),
			}, "cards"),
			Format: domain.FormatBool("Cards suspended.", "No cards were suspended (they may already be suspended)."),
		},
		{
			Name:        "unsuspend",
			Description: "Unsuspends the given cards. Returns true if at least one card was previously suspended.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to unsuspend."),
			}, "cards"),
			Format: domain.FormatBool("Cards unsuspended.", "No cards were unsuspended (none were suspended)."),
		},
		{
			Name:        "suspended",
			Description: "Checks whether the given card is suspended.",
			InputSchema: obj(map[string]domain.Schema{
				"card": integer("Card ID to check."),
			}, "card"),
			Format: domain.FormatBool("Card is suspended.", "Card is not suspended."),
		},
		{
			Name:        "areSuspended",
			Description: "Returns an array indicating whether each of the given cards is suspended, in the same order. Unknown cards yield null.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to check."),
			}, "cards"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "areDue",
			Description: "Returns an array indicating whether each of the given cards is due, in the same order. Cards in the learning queue with a large interval are treated as not due.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to check."),
			}, "cards"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "getIntervals",
			Description: "Returns an array of the most recent intervals for each given card, or a 2-dimensional array of all intervals when complete is true. Negative intervals are seconds, positive intervals are days.",
			InputSchema: obj(map[string]domain.Schema{
				"cards":    cardIDs("Card IDs to look up."),
				"complete": boolean("Return all intervals instead of only the most recent one."),
			}, "cards"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "findCards",
			Description: "Returns an array of card IDs for the given Anki search query (same syntax as the Browse screen).",
			InputSchema: obj(map[string]domain.Schema{
				"query": str("Anki search query, e.g. \"deck:current\"."),
			}, "query"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "cardsToNotes",
			Description: "Returns an unordered array of note IDs for the given card IDs. Cards of the same note map to a single note ID.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to convert."),
			}, "cards"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "cardsModTime",
			Description: "Returns a list of objects with the modification time of each given card. Faster than cardsInfo.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to look up."),
			}, "cards"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "cardsInfo",
			Description: "Returns a list of objects with card fields, front/back sides, note type, interval, due value and more for each given card.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to look up."),
			}, "cards"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "forgetCards",
			Description: "Forgets the given cards, making them new again.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to reset."),
			}, "cards"),
			Format: domain.FormatAck("Cards reset to new."),
		},
		{
			Name:        "relearnCards",
			Description: "Makes the given cards relearning.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to set to relearning."),
			}, "cards"),
			Format: domain.FormatAck("Cards set to relearning."),
		},
		{
			Name:        "answerCards",
			Description: "Answers the given cards with the given ease (1-4). The day's review limit applies. Returns true for each card that existed.",
			InputSchema: obj(map[string]domain.Schema{
				"answers": array("Answers to apply.", obj(map[string]domain.Schema{
					"cardId": integer("Card ID to answer."),
					"ease":   integer("Answer ease, 1 (Again) through 4 (Easy)."),
				}, "cardId", "ease")),
			}, "answers"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "setDueDate",
			Description: "Sets the due date of the given cards. Turns new cards into review cards when a due date is given; \"0\" means today, \"1!\" means tomorrow with interval reset, \"3-7\" means a random choice of 3-7 days.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to reschedule."),
				"days":  str("Due date specifier, e.g. \"0\", \"1!\" or \"3-7\"."),
			}, "cards", "days"),
			Format: domain.FormatBool("Due date updated.", "Failed to update due date."),
		},
	}
}
