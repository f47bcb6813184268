// File: /controllers/energy_entry_controller.go
package controllers

import (
	"context"
	"net/http"
	"strings"

	"fueltrack-api/models"
	"fueltrack-api/repositories"
	"fueltrack-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnergyEntryController struct {
	vehicles *repositories.VehicleRepository
	entries  *repositories.EnergyEntryRepository
}

func NewEnergyEntryController(db *gorm.DB) *EnergyEntryController {
	return &EnergyEntryController{
		vehicles: repositories.NewVehicleRepository(db),
		entries:  repositories.NewEnergyEntryRepository(db),
	}
}

// GetEntries lists entries newest first. Expects the Pagination middleware.
func (ec *EnergyEntryController) GetEntries(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := ec.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	page, limit := c.GetInt("page"), c.GetInt("limit")
	entries, total, err := ec.entries.ListByVehicle(ctx, vehicle.ID, page, limit)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendPaginated(c, entries, page, limit, total)
}

func (ec *EnergyEntryController) CreateEntry(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := ec.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	var req models.EnergyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	entry := models.EnergyEntry{ID: uuid.New().String(), VehicleID: vehicle.ID}
	applyEntryRequest(&entry, req)

	if err := ec.validate(ctx, vehicle, &entry, req); err != nil {
		utils.SendAppError(c, err)
		return
	}
	if err := ec.entries.Create(ctx, &entry); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (ec *EnergyEntryController) GetEntry(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := ec.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	entry, err := ec.entries.FindByID(ctx, vehicle.ID, c.Param("entryId"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (ec *EnergyEntryController) UpdateEntry(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := ec.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	entry, err := ec.entries.FindByID(ctx, vehicle.ID, c.Param("entryId"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	var req models.EnergyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	applyEntryRequest(entry, req)
	if err := ec.validate(ctx, vehicle, entry, req); err != nil {
		utils.SendAppError(c, err)
		return
	}
	if err := ec.entries.Update(ctx, entry); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (ec *EnergyEntryController) DeleteEntry(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := ec.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	if err := ec.entries.Delete(ctx, vehicle.ID, c.Param("entryId")); err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, "Entry deleted successfully", nil)
}

// validate checks the entry against the vehicle's energy types and against
// the mileage of the closest entries before and after its date.
func (ec *EnergyEntryController) validate(ctx context.Context, vehicle *models.Vehicle, entry *models.EnergyEntry, req models.EnergyEntryRequest) error {
	if err := utils.ValidateEntryForVehicle(vehicle, req); err != nil {
		return err
	}

	previous, next, err := ec.entries.FindNeighbours(ctx, vehicle.ID, entry.Date, entry.ID)
	if err != nil {
		return err
	}
	return utils.ValidateMileage(entry.Mileage, previous, next)
}

// applyEntryRequest copies the request onto entry. Dates are stored in UTC.
func applyEntryRequest(entry *models.EnergyEntry, req models.EnergyEntryRequest) {
	entry.Date = req.Date.UTC()
	entry.Mileage = req.Mileage
	entry.EnergyType = req.EnergyType
	entry.Quantity = req.Quantity
	entry.Unit = req.Unit
	entry.Cost = req.Cost
	entry.PricePerUnit = req.PricePerUnit
	entry.Note = strings.TrimSpace(req.Note)
}
