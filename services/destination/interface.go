package destination

import (
	"context"

	"voyager/models"
)

// Service is the destination specialist ("Isla"). Guides come from the
// curated library first, with generated guides as a fallback.
type Service interface {
	Guide(ctx context.Context, destination string) (*models.DestinationGuide, error)
}
