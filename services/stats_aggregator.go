package services

import (
	"sort"
	"time"

	"fueltrack-api/models"
)

// ComputeVehicleStats summarises the energy entries of one vehicle, grouped by
// measurement unit. Entries may be passed in any order and are not modified.
//
// Consumption is defined per entry as quantity*100/distance, where distance is
// the mileage delta to the previous entry of the same unit group. The first
// entry of a group and entries without a positive delta have no consumption
// and are left out of the average; they still count towards totals.
func ComputeVehicleStats(vehicleID string, entries []models.EnergyEntry) models.VehicleStats {
	stats := models.VehicleStats{
		VehicleID: vehicleID,
		Groups:    []models.EnergyUnitStats{},
	}

	for _, group := range groupByUnit(entries) {
		unitStats := computeUnitStats(group.unit, group.entries)
		stats.TotalEntries += unitStats.EntryCount
		stats.TotalCost += unitStats.TotalCost
		stats.Groups = append(stats.Groups, unitStats)
	}

	return stats
}

// ComputeDashboardStats applies ComputeVehicleStats to each vehicle and adds a
// cross-vehicle rollup. Vehicles are reported in ascending id order.
func ComputeDashboardStats(vehicleGroups map[string][]models.EnergyEntry) models.DashboardStats {
	vehicleIDs := make([]string, 0, len(vehicleGroups))
	for id := range vehicleGroups {
		vehicleIDs = append(vehicleIDs, id)
	}
	sort.Strings(vehicleIDs)

	dashboard := models.DashboardStats{
		VehicleCount:   len(vehicleIDs),
		QuantityByUnit: []models.UnitQuantity{},
		Vehicles:       make([]models.VehicleStats, 0, len(vehicleIDs)),
	}

	byUnit := make(map[models.EnergyUnit]float64)
	for _, id := range vehicleIDs {
		vs := ComputeVehicleStats(id, vehicleGroups[id])
		dashboard.Vehicles = append(dashboard.Vehicles, vs)
		dashboard.TotalEntries += vs.TotalEntries
		dashboard.TotalCost += vs.TotalCost
		for _, g := range vs.Groups {
			dashboard.TotalQuantity += g.TotalQuantity
			byUnit[g.Unit] += g.TotalQuantity
		}
	}

	for unit, quantity := range byUnit {
		dashboard.QuantityByUnit = append(dashboard.QuantityByUnit, models.UnitQuantity{Unit: unit, Quantity: quantity})
	}
	sort.Slice(dashboard.QuantityByUnit, func(i, j int) bool {
		return unitLess(dashboard.QuantityByUnit[i].Unit, dashboard.QuantityByUnit[j].Unit)
	})

	return dashboard
}

type unitGroup struct {
	unit    models.EnergyUnit
	entries []models.EnergyEntry
}

// groupByUnit partitions a copy of entries by unit, sorts each partition
// chronologically and returns the partitions in unit rank order.
func groupByUnit(entries []models.EnergyEntry) []unitGroup {
	index := make(map[models.EnergyUnit]int)
	var groups []unitGroup
	for _, e := range entries {
		i, ok := index[e.Unit]
		if !ok {
			i = len(groups)
			index[e.Unit] = i
			groups = append(groups, unitGroup{unit: e.Unit})
		}
		groups[i].entries = append(groups[i].entries, e)
	}

	for _, g := range groups {
		sort.Slice(g.entries, func(i, j int) bool {
			return entryLess(g.entries[i], g.entries[j])
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return unitLess(groups[i].unit, groups[j].unit)
	})
	return groups
}

// entryLess orders by date, then mileage, then id.
func entryLess(a, b models.EnergyEntry) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	if a.Mileage != b.Mileage {
		return a.Mileage < b.Mileage
	}
	return a.ID < b.ID
}

func unitLess(a, b models.EnergyUnit) bool {
	if a.Rank() != b.Rank() {
		return a.Rank() < b.Rank()
	}
	return a < b
}

// computeUnitStats expects entries sorted by entryLess.
func computeUnitStats(unit models.EnergyUnit, entries []models.EnergyEntry) models.EnergyUnitStats {
	stats := models.EnergyUnitStats{
		Unit:        unit,
		EnergyTypes: []models.EnergyType{},
		EntryCount:  len(entries),
	}
	if len(entries) == 0 {
		return stats
	}

	var (
		priceSum, consumptionSum float64
		priceCount               int
		travelledCost            float64
		seenTypes                = make(map[models.EnergyType]bool)
	)

	for i, e := range entries {
		stats.TotalQuantity += e.Quantity
		stats.TotalCost += e.Cost

		if e.PricePerUnit != nil && *e.PricePerUnit > 0 {
			priceSum += *e.PricePerUnit
			priceCount++
		}
		if !seenTypes[e.EnergyType] {
			seenTypes[e.EnergyType] = true
			stats.EnergyTypes = append(stats.EnergyTypes, e.EnergyType)
		}

		if i == 0 {
			continue
		}
		delta := e.Mileage - entries[i-1].Mileage
		if delta <= 0 {
			continue
		}
		consumptionSum += e.Quantity * 100 / delta
		stats.ConsumptionSamples++
		stats.Distance += delta
		travelledCost += e.Cost
	}

	sort.Slice(stats.EnergyTypes, func(i, j int) bool {
		return stats.EnergyTypes[i] < stats.EnergyTypes[j]
	})

	if priceCount > 0 {
		stats.AveragePricePerUnit = priceSum / float64(priceCount)
	}
	if stats.ConsumptionSamples > 0 {
		stats.AverageConsumption = consumptionSum / float64(stats.ConsumptionSamples)
	}
	stats.AverageCostPer100 = stats.AverageConsumption * stats.AveragePricePerUnit
	if stats.Distance > 0 {
		stats.CostPerDistance = travelledCost / stats.Distance
	}

	first, last := entries[0].Date, entries[len(entries)-1].Date
	stats.FirstDate = timePtr(first)
	stats.LastDate = timePtr(last)

	return stats
}

func timePtr(t time.Time) *time.Time {
	return &t
}
