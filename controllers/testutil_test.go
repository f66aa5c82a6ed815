package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/odairorso/Contratoloca-aocarro/config"
	"github.com/odairorso/Contratoloca-aocarro/models"
	"github.com/odairorso/Contratoloca-aocarro/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// setupTest wires an isolated in-memory database into config.DB, registers
// the API routes and returns the router together with a bearer token for a
// freshly created account.
func setupTest(t *testing.T) (*gin.Engine, *models.User, string) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:ctrl%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Vehicle{},
		&models.Contract{},
		&models.ReminderLog{},
	))
	config.DB = db

	user := models.User{
		Email:       "dono@locadora.test",
		Phone:       "+5567999000111",
		Name:        "Odair",
		Password:    "super-secret-1",
		CompanyName: "OR dos Santos de Oliveira",
		IsActive:    true,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID.String(), user.ID.String())
	require.NoError(t, err)

	r := gin.New()

	auth := r.Group("/auth")
	{
		auth.POST("/register", Register)
		auth.POST("/login", Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		clients := api.Group("/clients")
		{
			clients.POST("", CreateClient)
			clients.GET("", GetClients)
			clients.GET("/history", GetClientsFromHistory)
			clients.GET("/:id", GetClient)
			clients.PUT("/:id", UpdateClient)
			clients.DELETE("/:id", DeleteClient)
		}
		vehicles := api.Group("/vehicles")
		{
			vehicles.POST("", CreateVehicle)
			vehicles.GET("", GetVehicles)
			vehicles.GET("/:id", GetVehicle)
			vehicles.PUT("/:id", UpdateVehicle)
			vehicles.DELETE("/:id", DeleteVehicle)
		}
		contracts := api.Group("/contracts")
		{
			contracts.POST("", GenerateContract)
			contracts.GET("", GetContracts)
			contracts.GET("/:id", GetContract)
			contracts.DELETE("/:id", DeleteContract)
		}
		reportController := ReportController{}
		api.GET("/reports", reportController.GetReportAnalytics)
		api.GET("/dashboard", GetDashboardOverview)
	}

	return r, &user, token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}
