package catalog

import "ankibridge/internal/domain"

// statActions covers review-history and statistics queries.
func statActions() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:        "getNumCardsReviewedToday",
			Description: "Returns the number of cards reviewed in the current day (since 4am by default).",
			InputSchema: obj(nil),
			Format:      domain.FormatLine("Cards reviewed today: %v"),
		},
		{
			Name:        "getNumCardsReviewedByDay",
			Description: "Returns an array of [date, count] pairs with the number of cards reviewed per day.",
			InputSchema: obj(nil),
			Format:      domain.FormatJSON(),
		},
		{
			Name:        "getCollectionStatsHTML",
			Description: "Returns the collection statistics report as HTML.",
			InputSchema: obj(map[string]domain.Schema{
				"wholeCollection": boolean("Statistics for the whole collection instead of the current deck."),
			}),
			Format: domain.FormatLine("%v"),
		},
		{
			Name:        "cardReviews",
			Description: "Returns all reviews for the given deck made after the given review time, as [reviewTime, cardID, usn, buttonPressed, newInterval, previousInterval, newFactor, reviewDuration, reviewType] rows.",
			InputSchema: obj(map[string]domain.Schema{
				"deck":    str("Name of the deck."),
				"startID": integer("Latest unix time in milliseconds not included in the result."),
			}, "deck", "startID"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "getReviewsOfCards",
			Description: "Returns an object mapping each given card ID to its review history.",
			InputSchema: obj(map[string]domain.Schema{
				"cards": cardIDs("Card IDs to look up."),
			}, "cards"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "getLatestReviewID",
			Description: "Returns the unix time in milliseconds of the latest review for the given deck, or 0 if there is none.",
			InputSchema: obj(map[string]domain.Schema{
				"deck": str("Name of the deck."),
			}, "deck"),
			Format: domain.FormatLine("Latest review ID: %v"),
		},
		{
			Name:        "insertReviews",
			Description: "Inserts the given reviews into the database, as [reviewTime, cardID, usn, buttonPressed, newInterval, previousInterval, newFactor, reviewDuration, reviewType] rows.",
			InputSchema: obj(map[string]domain.Schema{
				"reviews": array("Review rows to insert.", array("", anything(""))),
			}, "reviews"),
			Format: domain.FormatAck("Reviews inserted."),
		},
	}
}
