package destination

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"voyager/models"
	"voyager/services/intelligence"

	"go.uber.org/zap"
)

// ErrGuideUnavailable is returned when no curated guide exists and a
// generated one could not be produced.
var ErrGuideUnavailable = errors.New("destination guide unavailable")

// DefaultDestinationService serves curated guides, generating one when a
// destination is off the curated map.
type DefaultDestinationService struct {
	Gemini intelligence.Generator
	Logger *zap.Logger
}

func (s *DefaultDestinationService) Guide(ctx context.Context, destination string) (*models.DestinationGuide, error) {
	dest := strings.TrimSpace(destination)
	if dest == "" {
		return nil, ErrGuideUnavailable
	}

	if guide, ok := curatedGuides[strings.ToLower(dest)]; ok {
		g := guide
		return &g, nil
	}

	if s.Gemini == nil {
		return nil, fmt.Errorf("%w: no curated guide for %q", ErrGuideUnavailable, dest)
	}

	guide, err := s.generateGuide(ctx, dest)
	if err != nil {
		s.Logger.Error("guide generation failed", zap.Error(err),
			zap.String("destination", dest))
		return nil, fmt.Errorf("%w: %v", ErrGuideUnavailable, err)
	}
	return guide, nil
}

const guidePrompt = `You are a luxury travel concierge. Produce a destination guide for %q
as a single JSON object with exactly these keys:
{"destination": string, "country": string, "summary": string,
 "bestSeason": string, "highlights": [string, string, string],
 "dining": [string, string], "insiderTip": string}
Respond with the JSON object only, no markdown fences or commentary.`

func (s *DefaultDestinationService) generateGuide(ctx context.Context, dest string) (*models.DestinationGuide, error) {
	raw, err := s.Gemini.GenerateContent(ctx, fmt.Sprintf(guidePrompt, dest))
	if err != nil {
		return nil, err
	}

	// Models occasionally wrap JSON in fences despite the instruction.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var guide models.DestinationGuide
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &guide); err != nil {
		return nil, fmt.Errorf("parse generated guide: %w", err)
	}
	if guide.Destination == "" {
		guide.Destination = dest
	}
	guide.Source = "generated"
	if guide.ImageURL == "" {
		guide.ImageURL = guideImage(strings.ToLower(dest))
	}
	return &guide, nil
}
