// File: /controllers/service_record_controller.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"fueltrack-api/models"
	"fueltrack-api/repositories"
	"fueltrack-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRecordController struct {
	vehicles *repositories.VehicleRepository
	services *repositories.ServiceRecordRepository
}

func NewServiceRecordController(db *gorm.DB) *ServiceRecordController {
	return &ServiceRecordController{
		vehicles: repositories.NewVehicleRepository(db),
		services: repositories.NewServiceRecordRepository(db),
	}
}

func (sc *ServiceRecordController) GetServiceRecords(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := sc.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	records, err := sc.services.ListByVehicle(ctx, vehicle.ID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (sc *ServiceRecordController) CreateServiceRecord(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := sc.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	var req models.ServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	record := models.ServiceRecord{ID: uuid.New().String(), VehicleID: vehicle.ID}
	applyServiceRequest(&record, req)

	if err := sc.services.Create(ctx, &record); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (sc *ServiceRecordController) GetServiceRecord(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := sc.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	record, err := sc.services.FindByID(ctx, vehicle.ID, c.Param("serviceId"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateServiceRecord re-arms the reminder when the next service date changes.
func (sc *ServiceRecordController) UpdateServiceRecord(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := sc.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	record, err := sc.services.FindByID(ctx, vehicle.ID, c.Param("serviceId"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	var req models.ServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	previousDue := record.NextServiceDate
	applyServiceRequest(record, req)
	if !sameTime(previousDue, record.NextServiceDate) {
		record.ReminderSentAt = nil
	}

	if err := sc.services.Update(ctx, record); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (sc *ServiceRecordController) DeleteServiceRecord(c *gin.Context) {
	ctx := c.Request.Context()
	vehicle, err := sc.vehicles.FindOwned(ctx, c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	if err := sc.services.Delete(ctx, vehicle.ID, c.Param("serviceId")); err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, "Service record deleted successfully", nil)
}

func applyServiceRequest(record *models.ServiceRecord, req models.ServiceRecordRequest) {
	record.Date = req.Date.UTC()
	record.Mileage = req.Mileage
	record.ServiceType = strings.TrimSpace(req.ServiceType)
	record.Description = strings.TrimSpace(req.Description)
	record.Cost = req.Cost
	record.NextServiceMileage = req.NextServiceMileage
	record.NextServiceDate = nil
	if req.NextServiceDate != nil {
		next := req.NextServiceDate.UTC()
		record.NextServiceDate = &next
	}
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
