package services

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"fleetsync/internal/common"
	"fleetsync/internal/models"
	"fleetsync/internal/store/vehicles"
	"fleetsync/internal/syncer"
)

// VehicleService exposes fleet CRUD to the UI. Every mutation goes through
// the orchestrator (local write plus best-effort remote push) and then
// re-emits a fresh snapshot to all observers.
type VehicleService struct {
	repo vehicles.Repository
	orch *syncer.Orchestrator

	mu   sync.Mutex
	subs map[chan []models.Vehicle]struct{}
}

func NewVehicleService(repo vehicles.Repository, orch *syncer.Orchestrator) *VehicleService {
	return &VehicleService{
		repo: repo,
		orch: orch,
		subs: make(map[chan []models.Vehicle]struct{}),
	}
}

// List returns the current local fleet ordered by brand.
func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.repo.GetAll(ctx)
}

// Get looks up a single vehicle by plate.
func (s *VehicleService) Get(ctx context.Context, plate string) (*models.Vehicle, error) {
	return s.repo.GetByPlate(ctx, plate)
}

// Observe returns a channel that immediately replays the current snapshot
// and then receives a fresh full snapshot after every mutation made through
// this service. The subscription ends when ctx is cancelled; the channel is
// closed on unsubscribe. Slow observers never block mutations: a pending
// stale snapshot is dropped in favor of the newest one.
func (s *VehicleService) Observe(ctx context.Context) <-chan []models.Vehicle {
	ch := make(chan []models.Vehicle, 1)
	if snap, err := s.repo.GetAll(ctx); err == nil {
		ch <- snap
	}

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, ch)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// Add validates and creates a vehicle. Offline it still succeeds locally.
func (s *VehicleService) Add(ctx context.Context, v *models.Vehicle) syncer.Outcome {
	if res := validateVehicle(v); !res.OK() {
		return res
	}
	res := s.orch.AddVehicle(ctx, v)
	if res.OK() || res.Deferred {
		s.broadcast(ctx)
	}
	return res
}

// Update validates and edits an existing vehicle.
func (s *VehicleService) Update(ctx context.Context, v *models.Vehicle) syncer.Outcome {
	if res := validateVehicle(v); !res.OK() {
		return res
	}
	res := s.orch.UpdateVehicle(ctx, v)
	if res.OK() || res.Deferred {
		s.broadcast(ctx)
	}
	return res
}

// Delete removes a vehicle locally and, when online, remotely.
func (s *VehicleService) Delete(ctx context.Context, plate string) syncer.Outcome {
	v, err := s.repo.GetByPlate(ctx, plate)
	if err != nil {
		return syncer.Failure(err, "")
	}
	res := s.orch.DeleteVehicle(ctx, v)
	if res.OK() || res.Deferred {
		s.broadcast(ctx)
	}
	return res
}

// Sync runs a full reconcile pass and refreshes observers with the merged
// fleet.
func (s *VehicleService) Sync(ctx context.Context) syncer.Outcome {
	res := s.orch.Reconcile(ctx)
	if res.OK() {
		s.broadcast(ctx)
	}
	return res
}

// MigrateImages uploads pending local images without a full sync.
func (s *VehicleService) MigrateImages(ctx context.Context) syncer.Outcome {
	res := s.orch.MigrateImages(ctx)
	if res.OK() {
		s.broadcast(ctx)
	}
	return res
}

func (s *VehicleService) broadcast(ctx context.Context) {
	snap, err := s.repo.GetAll(ctx)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func validateVehicle(v *models.Vehicle) syncer.Outcome {
	if v.Plate == "" || v.Brand == "" || v.Color == "" {
		return syncer.Failure(common.ErrMissingFields, "")
	}
	if !models.ValidPlate(v.Plate) {
		return syncer.Failure(common.ErrInvalidPlate, "plate must look like ABC123")
	}
	if v.DailyRate.IsNegative() {
		return syncer.Failure(common.ErrInvalidRate, "daily rate cannot be negative")
	}
	return syncer.Outcome{}
}

// ParseRate converts user input into an exact decimal daily rate.
func ParseRate(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, common.ErrInvalidRate
	}
	return d, nil
}
