package riders

import (
	"context"
	"log"
	"math/rand"
	"time"

	"smartride/internal/domain/entities"
	"smartride/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SimulatedMatcher is a placeholder for real rider matching: it waits a fixed
// delay and returns a canned rider profile. The delay is injected so tests
// can run matching synchronously.

type SimulatedMatcher struct {
	delay time.Duration
}

var _ interfaces.IRiderMatcher = (*SimulatedMatcher)(nil)

func NewSimulatedMatcher(delay time.Duration) *SimulatedMatcher {
	return &SimulatedMatcher{delay: delay}
}

var cannedRiders = []entities.Rider{
	{Name: "Emeka O.", Phone: "+2348012000001", VehicleType: "motorbike", PlateNumber: "KJA-412-XA", Rating: 4.8},
	{Name: "Funmi A.", Phone: "+2348012000002", VehicleType: "motorbike", PlateNumber: "LSD-207-QB", Rating: 4.9},
	{Name: "Ibrahim S.", Phone: "+2348012000003", VehicleType: "van", PlateNumber: "ABC-915-ZZ", Rating: 4.7},
}

func (m *SimulatedMatcher) Match(ctx context.Context, draft entities.BookingDraft) (entities.Rider, error) {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return entities.Rider{}, ctx.Err()
		}
	}

	rider := cannedRiders[rand.Intn(len(cannedRiders))]
	rider.ID = uuid.NewString()
	log.Printf("[rider][matcher] matched rider_id=%s vehicle=%s", rider.ID, rider.VehicleType)
	return rider, nil
}
