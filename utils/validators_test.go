package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"fueltrack-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Sup3rSecret!", true},
		{"abcdEFGH1", true},
		{"abcd1234!", true},
		{"Ab1!", false},
		{"abcdefghij", false},
		{"ABCDEFGH12", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPassword(tt.password))
		})
	}
}

func TestValidateEnergyTypes(t *testing.T) {
	assert.NoError(t, ValidateEnergyTypes([]models.EnergyType{models.EnergyGasoline, models.EnergyElectric}))

	err := ValidateEnergyTypes([]models.EnergyType{"steam"})
	assert.ErrorIs(t, err, NewValidationError(""))

	err = ValidateEnergyTypes([]models.EnergyType{models.EnergyDiesel, models.EnergyDiesel})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate")
}

func TestValidateEntryForVehicle(t *testing.T) {
	vehicle := &models.Vehicle{
		ID:          "v1",
		EnergyTypes: []models.VehicleEnergyType{{EnergyType: models.EnergyGasoline}},
	}

	tests := []struct {
		name   string
		et     models.EnergyType
		unit   models.EnergyUnit
		target error
	}{
		{"valid", models.EnergyGasoline, models.UnitLiter, nil},
		{"gallons", models.EnergyGasoline, models.UnitGallon, nil},
		{"unknown type", "steam", models.UnitLiter, NewValidationError("")},
		{"unknown unit", models.EnergyGasoline, "barrel", NewValidationError("")},
		{"undeclared type", models.EnergyElectric, models.UnitKilowattHour, ErrIncompatibleEnergyType},
		{"wrong unit", models.EnergyGasoline, models.UnitKilowattHour, ErrIncompatibleUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntryForVehicle(vehicle, models.EnergyEntryRequest{EnergyType: tt.et, Unit: tt.unit, Quantity: 1})
			if tt.target == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestValidateMileage(t *testing.T) {
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	prev := &models.EnergyEntry{Mileage: 1000, Date: day}
	next := &models.EnergyEntry{Mileage: 1500, Date: day.AddDate(0, 0, 10)}

	assert.NoError(t, ValidateMileage(1200, prev, next))
	assert.NoError(t, ValidateMileage(1000, prev, next))
	assert.NoError(t, ValidateMileage(1500, prev, next))
	assert.NoError(t, ValidateMileage(0, nil, nil))

	err := ValidateMileage(999, prev, next)
	assert.ErrorIs(t, err, ErrInvalidMileage)
	assert.Contains(t, err.Error(), "2024-03-01")

	err = ValidateMileage(1501, prev, nil)
	assert.NoError(t, err)
	assert.ErrorIs(t, ValidateMileage(1501, nil, next), ErrInvalidMileage)
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("loading vehicle: %w", ErrVehicleNotFound)
	appErr := AsAppError(wrapped)
	assert.Equal(t, CodeVehicleNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.Status)

	internal := AsAppError(errors.New("connection reset"))
	assert.Equal(t, CodeInternal, internal.Code)
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "Internal server error", internal.Message)
	assert.ErrorContains(t, internal, "connection reset")
}

func TestWithMessageKeepsCode(t *testing.T) {
	err := ErrEnergyTypeDeleteFailed.WithMessage("Energy type %s still has entries", "diesel")
	assert.ErrorIs(t, err, ErrEnergyTypeDeleteFailed)
	assert.NotErrorIs(t, err, ErrIncompatibleEnergyType)
	assert.Equal(t, "Energy type diesel still has entries", err.Error())
}
