// File: /models/energy.go
package models

// EnergyType is the fuel or power source of an energy entry.
type EnergyType string

const (
	EnergyGasoline EnergyType = "gasoline"
	EnergyDiesel   EnergyType = "diesel"
	EnergyLPG      EnergyType = "lpg"
	EnergyCNG      EnergyType = "cng"
	EnergyEthanol  EnergyType = "ethanol"
	EnergyHydrogen EnergyType = "hydrogen"
	EnergyElectric EnergyType = "electric"
)

// EnergyUnit is the measurement unit of an entry's quantity. It is independent
// of EnergyType: several energy types share a unit, and statistics are grouped
// by unit only.
type EnergyUnit string

const (
	UnitLiter        EnergyUnit = "liter"
	UnitGallon       EnergyUnit = "gallon"
	UnitKilogram     EnergyUnit = "kilogram"
	UnitKilowattHour EnergyUnit = "kwh"
)

var energyTypeUnits = map[EnergyType][]EnergyUnit{
	EnergyGasoline: {UnitLiter, UnitGallon},
	EnergyDiesel:   {UnitLiter, UnitGallon},
	EnergyLPG:      {UnitLiter, UnitGallon},
	EnergyEthanol:  {UnitLiter, UnitGallon},
	EnergyCNG:      {UnitKilogram},
	EnergyHydrogen: {UnitKilogram},
	EnergyElectric: {UnitKilowattHour},
}

var unitRanks = map[EnergyUnit]int{
	UnitLiter:        0,
	UnitGallon:       1,
	UnitKilogram:     2,
	UnitKilowattHour: 3,
}

// IsValid reports whether t is a known energy type.
func (t EnergyType) IsValid() bool {
	_, ok := energyTypeUnits[t]
	return ok
}

// AllowedUnits returns the units an entry of this energy type may be logged in.
func (t EnergyType) AllowedUnits() []EnergyUnit {
	return energyTypeUnits[t]
}

// Accepts reports whether u is a valid unit for t.
func (t EnergyType) Accepts(u EnergyUnit) bool {
	for _, allowed := range energyTypeUnits[t] {
		if allowed == u {
			return true
		}
	}
	return false
}

// IsValid reports whether u is a known unit.
func (u EnergyUnit) IsValid() bool {
	_, ok := unitRanks[u]
	return ok
}

// Rank orders units for output. Unknown units sort last.
func (u EnergyUnit) Rank() int {
	if r, ok := unitRanks[u]; ok {
		return r
	}
	return len(unitRanks)
}
