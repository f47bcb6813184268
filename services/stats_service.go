// File: /services/stats_service.go
package services

import (
	"context"
	"time"

	"fueltrack-api/models"
	"fueltrack-api/repositories"
)

const statsLoadTimeout = 5 * time.Second

// StatsService loads a user's entries and hands them to the aggregator.
type StatsService struct {
	vehicleRepo *repositories.VehicleRepository
	entryRepo   *repositories.EnergyEntryRepository
}

func NewStatsService(vehicleRepo *repositories.VehicleRepository, entryRepo *repositories.EnergyEntryRepository) *StatsService {
	return &StatsService{
		vehicleRepo: vehicleRepo,
		entryRepo:   entryRepo,
	}
}

// VehicleStats returns the statistics of one vehicle owned by userID.
func (s *StatsService) VehicleStats(ctx context.Context, userID, vehicleID string) (*models.VehicleStats, error) {
	ctx, cancel := context.WithTimeout(ctx, statsLoadTimeout)
	defer cancel()

	vehicle, err := s.vehicleRepo.FindOwned(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.AllByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}

	stats := ComputeVehicleStats(vehicle.ID, entries)
	return &stats, nil
}

// DashboardStats returns statistics for every vehicle of userID, including
// vehicles without entries.
func (s *StatsService) DashboardStats(ctx context.Context, userID string) (*models.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, statsLoadTimeout)
	defer cancel()

	vehicles, err := s.vehicleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(vehicles))
	groups := make(map[string][]models.EnergyEntry, len(vehicles))
	for _, v := range vehicles {
		ids = append(ids, v.ID)
		groups[v.ID] = nil
	}

	entries, err := s.entryRepo.AllByVehicles(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		groups[e.VehicleID] = append(groups[e.VehicleID], e)
	}

	dashboard := ComputeDashboardStats(groups)
	return &dashboard, nil
}
