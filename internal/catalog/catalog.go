// Package catalog declares the static AnkiConnect action vocabulary exposed
// by ankibridge. Every descriptor's name and parameter shape matches the
// AnkiConnect documented API bit-exactly, since both are forwarded to the
// endpoint largely verbatim. The catalogue is pure data: each group file
// returns literal descriptors and nothing here talks to the network.
package catalog

import "ankibridge/internal/domain"

// Group names, keyed the way the AnkiConnect documentation groups actions.
// Config can disable whole groups by these names.
const (
	GroupCards  = "cards"
	GroupDecks  = "decks"
	GroupGUI    = "gui"
	GroupMedia  = "media"
	GroupMisc   = "misc"
	GroupModels = "models"
	GroupNotes  = "notes"
	GroupStats  = "stats"
)

// groupOrder fixes the catalogue order: listTools output is stable per
// process and follows this declaration order.
var groupOrder = []string{
	GroupCards,
	GroupDecks,
	GroupGUI,
	GroupMedia,
	GroupMisc,
	GroupModels,
	GroupNotes,
	GroupStats,
}

// Groups returns the catalogue keyed by group name.
func Groups() map[string][]domain.Descriptor {
	return map[string][]domain.Descriptor{
		GroupCards:  cardActions(),
		GroupDecks:  deckActions(),
		GroupGUI:    guiActions(),
		GroupMedia:  mediaActions(),
		GroupMisc:   miscActions(),
		GroupModels: modelActions(),
		GroupNotes:  noteActions(),
		GroupStats:  statActions(),
	}
}

// All returns the complete catalogue in its fixed declaration order.
func All() []domain.Descriptor {
	return Without(nil)
}

// Without returns the catalogue minus the named groups. Unknown group names
// are ignored.
func Without(disabled []string) []domain.Descriptor {
	skip := make(map[string]bool, len(disabled))
	for _, g := range disabled {
		skip[g] = true
	}
	groups := Groups()
	var out []domain.Descriptor
	for _, g := range groupOrder {
		if skip[g] {
			continue
		}
		out = append(out, groups[g]...)
	}
	return out
}
