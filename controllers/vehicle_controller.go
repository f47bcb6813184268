// File: /controllers/vehicle_controller.go
package controllers

import (
	"net/http"
	"strings"

	"fueltrack-api/models"
	"fueltrack-api/repositories"
	"fueltrack-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleController struct {
	vehicles *repositories.VehicleRepository
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{vehicles: repositories.NewVehicleRepository(db)}
}

func (vc *VehicleController) GetVehicles(c *gin.Context) {
	vehicles, err := vc.vehicles.ListByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var req models.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if err := utils.ValidateEnergyTypes(req.EnergyTypes); err != nil {
		utils.SendAppError(c, err)
		return
	}

	vehicle := models.Vehicle{
		ID:     uuid.New().String(),
		UserID: c.GetString("user_id"),
		Name:   strings.TrimSpace(req.Name),
		Brand:  strings.TrimSpace(req.Brand),
		Model:  strings.TrimSpace(req.Model),
		Year:   req.Year,
	}
	for _, et := range req.EnergyTypes {
		vehicle.EnergyTypes = append(vehicle.EnergyTypes, models.VehicleEnergyType{EnergyType: et})
	}

	if err := vc.vehicles.Create(c.Request.Context(), &vehicle); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (vc *VehicleController) GetVehicle(c *gin.Context) {
	vehicle, err := vc.vehicles.FindOwned(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func (vc *VehicleController) UpdateVehicle(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := vc.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	var req models.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Brand != nil {
		if strings.TrimSpace(*req.Brand) == "" {
			utils.SendValidationError(c, "brand must not be empty")
			return
		}
		updates["brand"] = strings.TrimSpace(*req.Brand)
	}
	if req.Model != nil {
		if strings.TrimSpace(*req.Model) == "" {
			utils.SendValidationError(c, "model must not be empty")
			return
		}
		updates["model"] = strings.TrimSpace(*req.Model)
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}

	if err := vc.vehicles.Update(ctx, vehicle.ID, updates); err != nil {
		utils.SendAppError(c, err)
		return
	}

	updated, err := vc.vehicles.FindByID(ctx, vehicle.ID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteVehicle removes the vehicle together with its entries and service records.
func (vc *VehicleController) DeleteVehicle(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := vc.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	if err := vc.vehicles.Delete(ctx, vehicle.ID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, "Vehicle deleted successfully", nil)
}

func (vc *VehicleController) AddEnergyType(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := vc.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	var req models.AddEnergyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if !req.EnergyType.IsValid() {
		utils.SendAppError(c, utils.NewValidationError("Unknown energy type: "+string(req.EnergyType)))
		return
	}

	if _, err := vc.vehicles.AddEnergyType(ctx, vehicle.ID, req.EnergyType); err != nil {
		utils.SendAppError(c, err)
		return
	}

	updated, err := vc.vehicles.FindByID(ctx, vehicle.ID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, updated)
}

func (vc *VehicleController) RemoveEnergyType(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := vc.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	energyType := models.EnergyType(c.Param("type"))
	if err := vc.vehicles.RemoveEnergyType(ctx, vehicle.ID, energyType); err != nil {
		utils.SendAppError(c, err)
		return
	}

	updated, err := vc.vehicles.FindByID(ctx, vehicle.ID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
