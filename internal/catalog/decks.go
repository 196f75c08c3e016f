package catalog

import "ankibridge/internal/domain"

// deckActions covers deck lifecycle and configuration.
func deckActions() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:        "deckNames",
			Description: "Returns the complete list of deck names for the current user.",
			InputSchema: obj(nil),
			Format:      domain.FormatJSON(),
		},
		{
			Name:        "deckNamesAndIds",
			Description: "Returns an object mapping each deck name to its deck ID.",
			InputSchema: obj(nil),
			Format:      domain.FormatJSON(),
		},
		{
			Name:        "getDecks",
			Description: "Returns an object mapping each deck name to an array of the given card IDs that belong to it.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to group by deck."),
			}, "cards"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "createDeck",
			Description: "Creates a new empty deck (nested decks use \"::\" separators). Will not overwrite a deck that already exists. Returns the new deck's ID.",
			InputSchema: obj(map[string]domain.Schema{
				"deck": str("Name of the deck to create."),
			}, "deck"),
			Format: domain.FormatLine("Created deck with ID %v"),
		},
		{
			Name:        "changeDeck",
			Description: "Moves the given cards to a different deck, creating the deck if it doesn't exist yet.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to move."),
				"deck":  str("Name of the destination deck."),
			}, "cards", "deck"),
			Format: domain.FormatAck("Cards moved to deck."),
		},
		{
			Name:        "deleteDecks",
			Description: "Deletes the given decks. cardsToo must be true: the cards in the decks are deleted as well.",
			InputSchema: obj(map[string]domain.Schema{
				"decks":    stringList("Names of the decks to delete."),
				"cardsToo": boolean("Must be true; the decks' cards are deleted with them."),
			}, "decks", "cardsToo"),
			Format: domain.FormatAck("Decks deleted."),
		},
		{
			Name:        "getDeckConfig",
			Description: "Returns the configuration group object for the given deck.",
			InputSchema: obj(map[string]domain.Schema{
				"deck": str("Name of the deck."),
			}, "deck"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "saveDeckConfig",
			Description: "Saves the given configuration group. Returns true on success, false if the group ID is invalid.",
			InputSchema: obj(map[string]domain.Schema{
				"config": freeform("Configuration group object as returned by getDeckConfig."),
			}, "config"),
			Format: domain.FormatBool("Deck configuration saved.", "Failed to save deck configuration."),
		},
		{
			Name:        "setDeckConfigId",
			Description: "Changes the configuration group of the given decks to the one with the given ID. Returns true on success, false if any deck or the group does not exist.",
			InputSchema: obj(map[string]domain.Schema{
				"decks":    stringList("Names of the decks to change."),
				"configId": integer("ID of the configuration group to assign."),
			}, "decks", "configId"),
			Format: domain.FormatBool("Deck configuration assigned.", "Failed to assign deck configuration."),
		},
		{
			Name:        "cloneDeckConfigId",
			Description: "Creates a new configuration group cloned from the given one (defaults to the default group). Returns the new group's ID, or false if the source group does not exist.",
			InputSchema: obj(map[string]domain.Schema{
				"name":      str("Name of the new configuration group."),
				"cloneFrom": integer("ID of the configuration group to clone."),
			}, "name"),
			Format: domain.FormatLine("Cloned deck configuration with ID %v"),
		},
		{
			Name:        "removeDeckConfigId",
			Description: "Removes the configuration group with the given ID. Returns true on success, false if the ID is invalid or is the default group.",
			InputSchema: obj(map[string]domain.Schema{
				"configId": integer("ID of the configuration group to remove."),
			}, "configId"),
			Format: domain.FormatBool("Deck configuration removed.", "Failed to remove deck configuration."),
		},
		{
			Name:        "getDeckStats",
			Description: "Returns per-deck statistics (new/learn/review counts, total cards) for the given decks.",
			InputSchema: obj(map[string]domain.Schema{
				"decks": stringList("Names of the decks to inspect."),
			}, "decks"),
			Format: domain.FormatJSON(),
		},
	}
}
