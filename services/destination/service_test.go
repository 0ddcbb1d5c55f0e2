package destination

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func TestGuideReturnsCuratedEntry(t *testing.T) {
	svc := &DefaultDestinationService{Logger: zap.NewNop()}

	guide, err := svc.Guide(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("Guide returned error: %v", err)
	}
	if guide.Source != "curated" {
		t.Errorf("Source = %q, want curated", guide.Source)
	}
	if guide.Destination != "Paris" {
		t.Errorf("Destination = %q, want Paris", guide.Destination)
	}
	if len(guide.Highlights) == 0 {
		t.Error("curated guide has no highlights")
	}
}

func TestGuideCuratedLookupIsCaseInsensitive(t *testing.T) {
	svc := &DefaultDestinationService{Logger: zap.NewNop()}

	guide, err := svc.Guide(context.Background(), "  TOKYO  ")
	if err != nil {
		t.Fatalf("Guide returned error: %v", err)
	}
	if guide.Source != "curated" {
		t.Errorf("Source = %q, want curated", guide.Source)
	}
}

func TestGuideUnavailableWithoutGenerator(t *testing.T) {
	svc := &DefaultDestinationService{Logger: zap.NewNop()}

	_, err := svc.Guide(context.Background(), "Tashkent")
	if !errors.Is(err, ErrGuideUnavailable) {
		t.Errorf("err = %v, want ErrGuideUnavailable", err)
	}

	_, err = svc.Guide(context.Background(), "")
	if !errors.Is(err, ErrGuideUnavailable) {
		t.Errorf("empty destination err = %v, want ErrGuideUnavailable", err)
	}
}

func TestGuideGeneratesWhenOffTheMap(t *testing.T) {
	gen := &fakeGenerator{response: `{
		"destination": "Tashkent",
		"country": "Uzbekistan",
		"summary": "Silk Road city of turquoise domes.",
		"bestSeason": "April to June",
		"highlights": ["Chorsu Bazaar", "Khast Imam", "Amir Timur Square"],
		"dining": ["Plov Centre", "Caravan"],
		"insiderTip": "Ride the ornate metro."
	}`}
	svc := &DefaultDestinationService{Gemini: gen, Logger: zap.NewNop()}

	guide, err := svc.Guide(context.Background(), "Tashkent")
	if err != nil {
		t.Fatalf("Guide returned error: %v", err)
	}
	if guide.Source != "generated" {
		t.Errorf("Source = %q, want generated", guide.Source)
	}
	if guide.Country != "Uzbekistan" {
		t.Errorf("Country = %q", guide.Country)
	}
	if guide.ImageURL == "" {
		t.Error("generated guide missing fallback image")
	}
	if len(gen.prompts) != 1 {
		t.Errorf("generator called %d times, want 1", len(gen.prompts))
	}
}

func TestGuideStripsMarkdownFences(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n{\"destination\": \"Tbilisi\", \"country\": \"Georgia\", \"summary\": \"s\"}\n```"}
	svc := &DefaultDestinationService{Gemini: gen, Logger: zap.NewNop()}

	guide, err := svc.Guide(context.Background(), "Tbilisi")
	if err != nil {
		t.Fatalf("Guide returned error: %v", err)
	}
	if guide.Country != "Georgia" {
		t.Errorf("Country = %q, want Georgia", guide.Country)
	}
}

func TestGuideWrapsGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	svc := &DefaultDestinationService{Gemini: gen, Logger: zap.NewNop()}

	_, err := svc.Guide(context.Background(), "Tashkent")
	if !errors.Is(err, ErrGuideUnavailable) {
		t.Errorf("err = %v, want ErrGuideUnavailable", err)
	}
}

func TestGuideRejectsMalformedJSON(t *testing.T) {
	gen := &fakeGenerator{response: "I cannot produce a guide right now."}
	svc := &DefaultDestinationService{Gemini: gen, Logger: zap.NewNop()}

	_, err := svc.Guide(context.Background(), "Tashkent")
	if !errors.Is(err, ErrGuideUnavailable) {
		t.Errorf("err = %v, want ErrGuideUnavailable", err)
	}
}
