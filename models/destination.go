package models

// DestinationGuide is Isla's briefing for a destination.
type DestinationGuide struct {
	Destination string   `json:"destination"`
	Country     string   `json:"country"`
	Summary     string   `json:"summary"`
	BestSeason  string   `json:"bestSeason"`
	Highlights  []string `json:"highlights"`
	Dining      []string `json:"dining"`
	InsiderTip  string   `json:"insiderTip"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Source      string   `json:"source"` // "curated" or "gemini"
}
