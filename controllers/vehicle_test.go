package controllers

import (
	"net/http"
	"testing"

	"github.com/odairorso/Contratoloca-aocarro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVehicleInput() map[string]interface{} {
	return map[string]interface{}{
		"brand":       "Fiat",
		"model":       "Mobi",
		"year":        2022,
		"plate":       "ABC1D23",
		"color":       "Branco",
		"dailyRate":   100.0,
		"marketValue": 48000.0,
	}
}

func TestCreateVehicle(t *testing.T) {
	r, _, token := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/vehicles", token, validVehicleInput())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Vehicle
	decodeBody(t, w, &created)
	assert.Equal(t, "Mobi", created.ModelName)
	assert.Equal(t, "ABC1D23", created.Plate)
	assert.True(t, created.IsActive)
}

func TestCreateVehicleRejectsBadPlate(t *testing.T) {
	r, _, token := setupTest(t)

	input := validVehicleInput()
	input["plate"] = "1234ABC"
	w := doRequest(t, r, http.MethodPost, "/api/vehicles", token, input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVehicleDuplicatePlate(t *testing.T) {
	r, _, token := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/vehicles", token, validVehicleInput())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/vehicles", token, validVehicleInput())
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetVehiclesSearch(t *testing.T) {
	r, _, token := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/vehicles", token, validVehicleInput())
	require.Equal(t, http.StatusCreated, w.Code)

	second := validVehicleInput()
	second["brand"] = "Chevrolet"
	second["model"] = "Onix"
	second["plate"] = "XYZ9876"
	w = doRequest(t, r, http.MethodPost, "/api/vehicles", token, second)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/vehicles?q=onix&token=req-7", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-7", w.Header().Get("X-Request-Token"))

	var results []models.Vehicle
	decodeBody(t, w, &results)
	require.Len(t, results, 1)
	assert.Equal(t, "Onix", results[0].ModelName)
}

func TestUpdateVehiclePartial(t *testing.T) {
	r, _, token := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/vehicles", token, validVehicleInput())
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Vehicle
	decodeBody(t, w, &created)

	w = doRequest(t, r, http.MethodPut, "/api/vehicles/"+created.ID.String(), token,
		map[string]interface{}{"dailyRate": 120.0})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Vehicle
	decodeBody(t, w, &updated)
	assert.InDelta(t, 120.0, updated.DailyRate, 0.001)
	assert.Equal(t, created.Plate, updated.Plate)
}

func TestDeleteVehicle(t *testing.T) {
	r, _, token := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/vehicles", token, validVehicleInput())
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Vehicle
	decodeBody(t, w, &created)

	w = doRequest(t, r, http.MethodDelete, "/api/vehicles/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/vehicles/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
