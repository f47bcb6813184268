package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fueltrack-api/config"
	"fueltrack-api/database"
	"fueltrack-api/models"
	"fueltrack-api/services"
	"fueltrack-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPassword = "Sup3rSecret!"

type testAPI struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := database.Initialize("sqlite", dsn, "silent")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	r := gin.New()
	SetupRoutes(r, db, cfg, services.NewEmailServiceWithSender(nil, "noreply@fueltrack.local", "FuelTrack"))

	return &testAPI{t: t, db: db, router: r}
}

func (a *testAPI) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (a *testAPI) register(email string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/auth/register", "", gin.H{"name": "Ada", "email": email, "password": testPassword})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.AuthResponse](a.t, w).Token
}

func (a *testAPI) createVehicle(token string, types ...models.EnergyType) models.Vehicle {
	a.t.Helper()
	w := a.do(http.MethodPost, "/vehicles", token, gin.H{
		"brand": "Skoda", "model": "Octavia", "year": 2017, "energy_types": types,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Vehicle](a.t, w)
}

func entryBody(date string, mileage, quantity float64, et models.EnergyType, unit models.EnergyUnit) gin.H {
	return gin.H{
		"date": date, "mileage": mileage, "energy_type": et, "quantity": quantity, "unit": unit, "cost": quantity * 1.7,
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[utils.ErrorResponse](t, w).ErrorCode
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/auth/register", "", gin.H{"name": "Ada", "email": "Ada@Example.com ", "password": testPassword})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	registered := decode[models.AuthResponse](t, w)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "ada@example.com", registered.User.Email)
	assert.NotContains(t, w.Body.String(), "password")

	w = api.do(http.MethodPost, "/auth/register", "", gin.H{"name": "Ada", "email": "ada@example.com", "password": testPassword})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, utils.CodeEmailTaken, errorCode(t, w))

	w = api.do(http.MethodPost, "/auth/register", "", gin.H{"name": "Bob", "email": "bob@example.com", "password": "password"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/auth/login", "", gin.H{"email": "ada@example.com", "password": testPassword})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, registered.User.ID, decode[models.AuthResponse](t, w).User.ID)

	w = api.do(http.MethodPost, "/auth/login", "", gin.H{"email": "ada@example.com", "password": "Wr0ngPassword!"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, utils.CodeInvalidCredentials, errorCode(t, w))

	w = api.do(http.MethodPost, "/auth/login", "", gin.H{"email": "nobody@example.com", "password": testPassword})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, utils.CodeInvalidCredentials, errorCode(t, w))

	w = api.do(http.MethodPost, "/auth/login", "", gin.H{"email": "  ADA@example.COM\t", "password": testPassword})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/auth/register", "", gin.H{"name": "Eve", "email": " not-an-email ", "password": testPassword})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.CodeValidation, errorCode(t, w))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/users/me", "/vehicles", "/stats"} {
		w := api.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestUsers_ProfilePasswordAndDelete(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("ada@example.com")
	api.register("bob@example.com")

	w := api.do(http.MethodPut, "/users/me", token, gin.H{"name": "Ada Lovelace"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ada Lovelace", decode[models.User](t, w).Name)

	w = api.do(http.MethodPut, "/users/me", token, gin.H{"email": " BOB@example.com "})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPut, "/users/me", token, gin.H{"email": " Ada.L@Example.com "})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "ada.l@example.com", decode[models.User](t, w).Email)

	w = api.do(http.MethodPut, "/users/me", token, gin.H{"email": "ada@example.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodPut, "/users/me/password", token, gin.H{"current_password": "Wr0ngPassword!", "new_password": "N3wPassword!"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, utils.CodeWrongPassword, errorCode(t, w))

	w = api.do(http.MethodPut, "/users/me/password", token, gin.H{"current_password": testPassword, "new_password": "N3wPassword!"})
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPost, "/auth/login", "", gin.H{"email": "ada@example.com", "password": "N3wPassword!"})
	assert.Equal(t, http.StatusOK, w.Code)

	api.createVehicle(token, models.EnergyGasoline)
	w = api.do(http.MethodDelete, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/users/me", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var vehicles int64
	api.db.Model(&models.Vehicle{}).Count(&vehicles)
	assert.Zero(t, vehicles)
}

func TestVehicles_CRUDAndOwnership(t *testing.T) {
	api := newTestAPI(t)
	owner := api.register("ada@example.com")
	stranger := api.register("bob@example.com")

	vehicle := api.createVehicle(owner, models.EnergyGasoline, models.EnergyDiesel)
	assert.Len(t, vehicle.EnergyTypes, 2)

	w := api.do(http.MethodPost, "/vehicles", owner, gin.H{"brand": "X", "model": "Y", "year": 2020, "energy_types": []string{"steam"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/vehicles", owner, gin.H{"brand": "X", "model": "Y", "year": 2020, "energy_types": []string{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/vehicles", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Vehicle](t, w), 1)

	w = api.do(http.MethodGet, "/vehicles", stranger, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Vehicle](t, w))

	w = api.do(http.MethodPut, "/vehicles/"+vehicle.ID, owner, gin.H{"name": "Family car", "year": 2018})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.Vehicle](t, w)
	assert.Equal(t, "Family car", updated.Name)
	assert.Equal(t, 2018, updated.Year)
	assert.Equal(t, "Octavia", updated.Model)

	w = api.do(http.MethodGet, "/vehicles/"+vehicle.ID, stranger, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, utils.CodeVehicleForbidden, errorCode(t, w))

	w = api.do(http.MethodDelete, "/vehicles/"+vehicle.ID, stranger, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodGet, "/vehicles/missing", owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, utils.CodeVehicleNotFound, errorCode(t, w))
}

func TestVehicles_EnergyTypes(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("ada@example.com")
	vehicle := api.createVehicle(token, models.EnergyGasoline)
	base := "/vehicles/" + vehicle.ID

	w := api.do(http.MethodPost, base+"/energy-types", token, gin.H{"energy_type": "gasoline"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, utils.CodeEnergyTypeExists, errorCode(t, w))

	w = api.do(http.MethodPost, base+"/energy-types", token, gin.H{"energy_type": "electric"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, decode[models.Vehicle](t, w).EnergyTypes, 2)

	w = api.do(http.MethodPost, base+"/entries", token, entryBody("2024-03-01T08:00:00Z", 1000, 20, models.EnergyElectric, models.UnitKilowattHour))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(http.MethodDelete, base+"/energy-types/electric", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	deleteFailed := errorCode(t, w)
	assert.Equal(t, utils.CodeEnergyTypeDeleteFailed, deleteFailed)

	w = api.do(http.MethodPost, base+"/entries", token, entryBody("2024-03-02T08:00:00Z", 1100, 20, models.EnergyDiesel, models.UnitLiter))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	incompatible := errorCode(t, w)
	assert.Equal(t, utils.CodeIncompatibleEnergyType, incompatible)
	assert.NotEqual(t, deleteFailed, incompatible)

	w = api.do(http.MethodDelete, base+"/energy-types/gasoline", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	remaining := decode[models.Vehicle](t, w).EnergyTypes
	require.Len(t, remaining, 1)
	assert.Equal(t, models.EnergyElectric, remaining[0].EnergyType)

	w = api.do(http.MethodDelete, base+"/energy-types/hydrogen", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEntries_ValidationAndStats(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("ada@example.com")
	vehicle := api.createVehicle(token, models.EnergyGasoline)
	base := "/vehicles/" + vehicle.ID

	w := api.do(http.MethodPost, base+"/entries", token, entryBody("2024-03-01T08:00:00Z", 10000, 40, models.EnergyGasoline, models.UnitLiter))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decode[models.EnergyEntry](t, w)

	w = api.do(http.MethodPost, base+"/entries", token, entryBody("2024-03-11T10:00:00+02:00", 10500, 35, models.EnergyGasoline, models.UnitLiter))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	second := decode[models.EnergyEntry](t, w)
	assert.True(t, second.Date.Equal(time.Date(2024, time.March, 11, 8, 0, 0, 0, time.UTC)))

	tests := []struct {
		name   string
		body   gin.H
		status int
		code   string
	}{
		{"unit not valid for type", entryBody("2024-03-20T08:00:00Z", 11000, 30, models.EnergyGasoline, models.UnitKilowattHour), http.StatusUnprocessableEntity, utils.CodeIncompatibleUnit},
		{"type not on vehicle", entryBody("2024-03-20T08:00:00Z", 11000, 30, models.EnergyElectric, models.UnitKilowattHour), http.StatusUnprocessableEntity, utils.CodeIncompatibleEnergyType},
		{"mileage below previous", entryBody("2024-03-20T08:00:00Z", 10400, 30, models.EnergyGasoline, models.UnitLiter), http.StatusUnprocessableEntity, utils.CodeInvalidMileage},
		{"mileage above next", entryBody("2024-03-05T08:00:00Z", 10600, 30, models.EnergyGasoline, models.UnitLiter), http.StatusUnprocessableEntity, utils.CodeInvalidMileage},
		{"zero quantity", entryBody("2024-03-20T08:00:00Z", 11000, 0, models.EnergyGasoline, models.UnitLiter), http.StatusBadRequest, utils.CodeValidation},
		{"unknown unit", entryBody("2024-03-20T08:00:00Z", 11000, 30, models.EnergyGasoline, "barrel"), http.StatusBadRequest, utils.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPost, base+"/entries", token, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}

	w = api.do(http.MethodGet, base+"/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[models.VehicleStats](t, w)
	assert.Equal(t, 2, stats.TotalEntries)
	require.Len(t, stats.Groups, 1)
	assert.InDelta(t, 7.0, stats.Groups[0].AverageConsumption, 1e-9)

	// editing an entry keeps it out of its own neighbour check
	w = api.do(http.MethodPut, base+"/entries/"+first.ID, token, entryBody("2024-03-01T08:00:00Z", 10100, 40, models.EnergyGasoline, models.UnitLiter))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 10100.0, decode[models.EnergyEntry](t, w).Mileage)

	w = api.do(http.MethodGet, base+"/entries/"+second.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodDelete, base+"/entries/"+second.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = api.do(http.MethodGet, base+"/entries/"+second.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, utils.CodeEntryNotFound, errorCode(t, w))
}

func TestEntries_Pagination(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("ada@example.com")
	vehicle := api.createVehicle(token, models.EnergyDiesel)
	base := "/vehicles/" + vehicle.ID

	start := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		date := start.AddDate(0, 0, i).Format(time.RFC3339)
		w := api.do(http.MethodPost, base+"/entries", token, entryBody(date, float64(1000+100*i), 30, models.EnergyDiesel, models.UnitLiter))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := api.do(http.MethodGet, base+"/entries?page=2&limit=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[struct {
		Data       []models.EnergyEntry `json:"data"`
		Total      int64                `json:"total"`
		TotalPages int                  `json:"total_pages"`
	}](t, w)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Data, 2)
	assert.Equal(t, 1200.0, page.Data[0].Mileage)

	w = api.do(http.MethodGet, base+"/entries?page=0", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStats_OwnershipAndDashboard(t *testing.T) {
	api := newTestAPI(t)
	owner := api.register("ada@example.com")
	stranger := api.register("bob@example.com")
	car := api.createVehicle(owner, models.EnergyGasoline)
	ev := api.createVehicle(owner, models.EnergyElectric)

	api.do(http.MethodPost, "/vehicles/"+car.ID+"/entries", owner, entryBody("2024-03-01T08:00:00Z", 10000, 40, models.EnergyGasoline, models.UnitLiter))
	api.do(http.MethodPost, "/vehicles/"+car.ID+"/entries", owner, entryBody("2024-03-11T08:00:00Z", 10500, 35, models.EnergyGasoline, models.UnitLiter))
	api.do(http.MethodPost, "/vehicles/"+ev.ID+"/entries", owner, entryBody("2024-03-01T08:00:00Z", 500, 30, models.EnergyElectric, models.UnitKilowattHour))

	w := api.do(http.MethodGet, "/vehicles/"+car.ID+"/stats", stranger, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, utils.CodeVehicleForbidden, errorCode(t, w))

	w = api.do(http.MethodGet, "/vehicles/"+uuid.New().String()+"/stats", owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, utils.CodeVehicleNotFound, errorCode(t, w))

	w = api.do(http.MethodGet, "/stats", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	dashboard := decode[models.DashboardStats](t, w)
	assert.Equal(t, 2, dashboard.VehicleCount)
	assert.Equal(t, 3, dashboard.TotalEntries)
	assert.InDelta(t, 105.0, dashboard.TotalQuantity, 1e-9)
	require.Len(t, dashboard.QuantityByUnit, 2)
	assert.Equal(t, models.UnitLiter, dashboard.QuantityByUnit[0].Unit)

	w = api.do(http.MethodGet, "/stats", stranger, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[models.DashboardStats](t, w).VehicleCount)
}

func TestTripEstimate(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("ada@example.com")
	car := api.createVehicle(token, models.EnergyGasoline)
	base := "/vehicles/" + car.ID

	w := api.do(http.MethodPost, base+"/trip-estimate", token, gin.H{"distance": 300})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, utils.CodeInsufficientData, errorCode(t, w))
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	stranger := api.register("bob@example.com")
	w = api.do(http.MethodPost, base+"/trip-estimate", stranger, gin.H{"distance": 300})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, utils.CodeVehicleForbidden, errorCode(t, w))

	api.do(http.MethodPost, base+"/entries", token, entryBody("2024-03-01T08:00:00Z", 10000, 40, models.EnergyGasoline, models.UnitLiter))
	api.do(http.MethodPost, base+"/entries", token, entryBody("2024-03-11T08:00:00Z", 10500, 35, models.EnergyGasoline, models.UnitLiter))

	w = api.do(http.MethodPost, base+"/trip-estimate", token, gin.H{"distance": 300, "price_per_unit": 2, "other_costs": 15})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	estimate := decode[models.TripEstimate](t, w)
	assert.InDelta(t, 21.0, estimate.EnergyNeeded, 1e-9)
	assert.InDelta(t, 57.0, estimate.TotalCost, 1e-9)

	w = api.do(http.MethodPost, base+"/trip-estimate", token, gin.H{"distance": -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceRecords_CRUDAndVehicleCascade(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("ada@example.com")
	vehicle := api.createVehicle(token, models.EnergyGasoline)
	base := "/vehicles/" + vehicle.ID

	w := api.do(http.MethodPost, base+"/services", token, gin.H{
		"date": "2024-02-01T09:00:00Z", "mileage": 9000, "service_type": "oil_change", "cost": 120,
		"next_service_date": "2025-02-01T09:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	record := decode[models.ServiceRecord](t, w)

	sent := time.Date(2025, time.January, 28, 0, 0, 0, 0, time.UTC)
	require.NoError(t, api.db.Model(&models.ServiceRecord{}).Where("id = ?", record.ID).Update("reminder_sent_at", sent).Error)

	// same next date keeps the reminder stamp
	w = api.do(http.MethodPut, base+"/services/"+record.ID, token, gin.H{
		"date": "2024-02-01T09:00:00Z", "mileage": 9000, "service_type": "oil_change", "cost": 135,
		"next_service_date": "2025-02-01T09:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotNil(t, decode[models.ServiceRecord](t, w).ReminderSentAt)

	w = api.do(http.MethodPut, base+"/services/"+record.ID, token, gin.H{
		"date": "2024-02-01T09:00:00Z", "mileage": 9000, "service_type": "oil_change", "cost": 135,
		"next_service_date": "2025-03-01T09:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[models.ServiceRecord](t, w).ReminderSentAt)

	w = api.do(http.MethodGet, base+"/services", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.ServiceRecord](t, w), 1)

	w = api.do(http.MethodGet, base+"/services/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, utils.CodeServiceNotFound, errorCode(t, w))

	api.do(http.MethodPost, base+"/entries", token, entryBody("2024-03-01T08:00:00Z", 10000, 40, models.EnergyGasoline, models.UnitLiter))

	w = api.do(http.MethodDelete, base, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries, records int64
	api.db.Model(&models.EnergyEntry{}).Count(&entries)
	api.db.Model(&models.ServiceRecord{}).Count(&records)
	assert.Zero(t, entries)
	assert.Zero(t, records)

	w = api.do(http.MethodGet, base, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
