// File: /utils/validators.go
package utils

import (
	"strconv"
	"unicode"

	"fueltrack-api/models"
)

func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	// At least 3 of 4 character types required
	count := 0
	if hasUpper {
		count++
	}
	if hasLower {
		count++
	}
	if hasNumber {
		count++
	}
	if hasSpecial {
		count++
	}

	return count >= 3
}

// ValidateEnergyTypes checks that every type is known and none repeats.
func ValidateEnergyTypes(types []models.EnergyType) error {
	seen := make(map[models.EnergyType]bool, len(types))
	for _, t := range types {
		if !t.IsValid() {
			return NewValidationError("Unknown energy type: " + string(t))
		}
		if seen[t] {
			return NewValidationError("Duplicate energy type: " + string(t))
		}
		seen[t] = true
	}
	return nil
}

// ValidateEntryForVehicle checks an entry request against the vehicle's
// declared energy types and the unit table.
func ValidateEntryForVehicle(vehicle *models.Vehicle, req models.EnergyEntryRequest) error {
	if !req.EnergyType.IsValid() {
		return NewValidationError("Unknown energy type: " + string(req.EnergyType))
	}
	if !req.Unit.IsValid() {
		return NewValidationError("Unknown unit: " + string(req.Unit))
	}
	if !vehicle.Supports(req.EnergyType) {
		return ErrIncompatibleEnergyType.WithMessage("Energy type %s is not declared on this vehicle", req.EnergyType)
	}
	if !req.EnergyType.Accepts(req.Unit) {
		return ErrIncompatibleUnit.WithMessage("Unit %s is not valid for energy type %s", req.Unit, req.EnergyType)
	}
	return nil
}

// ValidateMileage checks that mileage fits between the closest earlier and
// later entries. Either neighbour may be nil.
func ValidateMileage(mileage float64, previous, next *models.EnergyEntry) error {
	if previous != nil && mileage < previous.Mileage {
		return ErrInvalidMileage.WithMessage("Mileage must be at least %s (entry of %s)",
			strconv.FormatFloat(previous.Mileage, 'f', -1, 64), previous.Date.Format("2006-01-02"))
	}
	if next != nil && mileage > next.Mileage {
		return ErrInvalidMileage.WithMessage("Mileage must be at most %s (entry of %s)",
			strconv.FormatFloat(next.Mileage, 'f', -1, 64), next.Date.Format("2006-01-02"))
	}
	return nil
}
