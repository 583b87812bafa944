// Package seed replaces the destination catalog with the embedded static
// dataset. Seeding is a full replace, never an append: running it any number
// of times leaves exactly the dataset's row count in the store.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/perugo/perugo-api/internal/domain"
	"github.com/perugo/perugo-api/internal/logger"
	"github.com/perugo/perugo-api/internal/repo/postgres"
)

//go:embed destinations.json
var destinationsJSON []byte

// Load parses the embedded dataset.
func Load() ([]domain.Destination, error) {
	var destinations []domain.Destination
	if err := json.Unmarshal(destinationsJSON, &destinations); err != nil {
		return nil, fmt.Errorf("failed to parse seed dataset: %w", err)
	}
	return destinations, nil
}

type Seeder struct {
	destinationRepo postgres.DestinationRepository
}

func NewSeeder(destinationRepo postgres.DestinationRepository) *Seeder {
	return &Seeder{destinationRepo: destinationRepo}
}

func (s *Seeder) Run(ctx context.Context) error {
	destinations, err := Load()
	if err != nil {
		return err
	}

	if err := s.destinationRepo.ReplaceAll(ctx, destinations); err != nil {
		return fmt.Errorf("failed to seed destinations: %w", err)
	}

	logger.InfoContext(ctx, "Destination catalog seeded", "count", len(destinations))
	return nil
}
