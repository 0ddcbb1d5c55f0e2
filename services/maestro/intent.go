package maestro

import (
	"context"
	"fmt"
	"strings"

	"voyager/models"

	"go.uber.org/zap"
)

// intentKeywords drive the deterministic first pass of classification.
// Booking phrases are checked before the rest so "book a flight" routes
// to the booking flow, not a flight search.
var intentKeywords = []struct {
	intent models.Intent
	words  []string
}{
	{models.IntentBooking, []string{"book", "reserve", "booking", "reservation", "cancel"}},
	{models.IntentPackage, []string{"package", "trip to", "getaway", "flight and hotel", "bundle"}},
	{models.IntentFlight, []string{"flight", "fly", "fare", "airline", "airport", "nonstop"}},
	{models.IntentHotel, []string{"hotel", "stay", "room", "suite", "resort", "check in", "check-in"}},
	{models.IntentRestaurant, []string{"restaurant", "dinner", "lunch", "table", "eat", "dining", "michelin"}},
	{models.IntentDestination, []string{"destination", "guide", "visit", "what to do", "where should", "itinerary ideas", "recommend"}},
}

// classifyRules runs keyword matching. The second return reports whether
// the match is confident enough to skip the model.
func classifyRules(text string) (models.Intent, bool) {
	lower := strings.ToLower(text)
	for _, entry := range intentKeywords {
		for _, w := range entry.words {
			if strings.Contains(lower, w) {
				return entry.intent, true
			}
		}
	}
	return models.IntentGeneral, false
}

const classifyPrompt = `Classify this travel assistant message into exactly one word from:
flight, hotel, restaurant, destination, booking, package, general.
Message: %q
Answer with the single word only.`

// classify resolves the intent for a message: rules first, one model call
// when the rules are unconfident, and general when both come up empty.
func (m *Maestro) classify(ctx context.Context, text string) models.Intent {
	intent, confident := classifyRules(text)
	if confident {
		return intent
	}
	if m.Gemini == nil {
		return models.IntentGeneral
	}

	raw, err := m.Gemini.GenerateContent(ctx, fmt.Sprintf(classifyPrompt, text))
	if err != nil {
		m.Logger.Warn("model classification failed", zap.Error(err))
		return models.IntentGeneral
	}

	switch models.Intent(strings.ToLower(strings.TrimSpace(raw))) {
	case models.IntentFlight:
		return models.IntentFlight
	case models.IntentHotel:
		return models.IntentHotel
	case models.IntentRestaurant:
		return models.IntentRestaurant
	case models.IntentDestination:
		return models.IntentDestination
	case models.IntentBooking:
		return models.IntentBooking
	case models.IntentPackage:
		return models.IntentPackage
	default:
		return models.IntentGeneral
	}
}

// knownCities are the locations the extractors recognize in free text.
var knownCities = []string{
	"new york", "los angeles", "san francisco", "miami", "chicago",
	"paris", "london", "tokyo", "dubai", "rome", "barcelona", "amsterdam",
	"singapore", "hong kong", "sydney", "maldives", "bali", "whistler",
	"vancouver",
}

// extractCity finds the first known city mentioned in a message.
func extractCity(text string) string {
	lower := strings.ToLower(text)
	for _, city := range knownCities {
		if strings.Contains(lower, city) {
			return city
		}
	}
	return ""
}

// extractRoute finds an origin/destination pair from "from X to Y" phrasing.
// A single city mention is treated as the destination.
func extractRoute(text string) (origin, destination string) {
	lower := strings.ToLower(text)

	if idx := strings.Index(lower, " to "); idx >= 0 {
		origin = extractCity(lower[:idx+1])
		destination = extractCity(lower[idx+3:])
	}
	if destination == "" {
		destination = extractCity(lower)
	}
	return origin, destination
}
