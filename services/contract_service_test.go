package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/odairorso/Contratoloca-aocarro/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Contract{}))
	return db
}

func TestGenerateRequiresClientName(t *testing.T) {
	svc := NewContractService(newTestDB(t))

	_, err := svc.Generate(uuid.New(), uuid.New(), GenerateInput{
		ContractType: models.ContractTypeRental,
		Client:       ClientSnapshot{Name: "   "},
	}, testNow)

	assert.ErrorIs(t, err, ErrClientNameRequired)
}

func TestGenerateRejectsSwappedPeriod(t *testing.T) {
	svc := NewContractService(newTestDB(t))
	client, service := rentalFixture()
	service.StartDate = "2024-01-12"
	service.EndDate = "2024-01-10"

	_, err := svc.Generate(uuid.New(), uuid.New(), GenerateInput{
		ContractType: models.ContractTypeRental,
		Client:       client,
		Service:      service,
	}, testNow)

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestGeneratePersistsContract(t *testing.T) {
	db := newTestDB(t)
	svc := NewContractService(db)
	client, service := rentalFixture()
	companyID := uuid.New()

	result, err := svc.Generate(companyID, uuid.New(), GenerateInput{
		ContractType: models.ContractTypeRental,
		Client:       client,
		Service:      service,
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, result.SaveErr)

	assert.Equal(t, 3, result.Days)
	assert.Equal(t, "300,00", result.Total)
	assert.Contains(t, result.Document, "Maria Aparecida Souza")

	var stored models.Contract
	require.NoError(t, db.First(&stored, "company_id = ?", companyID).Error)
	assert.Equal(t, "CTR-20260828-", stored.Number[:13])
	assert.Equal(t, models.ContractTypeRental, stored.ContractType)
	assert.Equal(t, 3, stored.Days)
	assert.InDelta(t, 100.0, stored.DailyRate, 0.001)
	assert.InDelta(t, 300.0, stored.Total, 0.001)
	assert.Equal(t, "Maria Aparecida Souza", stored.ClientData.String("nome"))
	assert.Equal(t, "ABC1D23", stored.ServiceData.String("placa"))
	assert.Equal(t, result.Document, stored.ContractText)
}

func TestGenerateGarageContractTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewContractService(db)

	result, err := svc.Generate(uuid.New(), uuid.New(), GenerateInput{
		ContractType: models.ContractTypeGarage,
		Client:       ClientSnapshot{Name: "José da Silva", CpfCnpj: "987.654.321-00"},
		Service: ServiceSnapshot{
			Vehicle:  "VW Gol 2018",
			Services: "Troca de óleo",
			Value:    "350,00",
		},
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, result.SaveErr)

	assert.Equal(t, 0, result.Days)
	assert.Equal(t, "0,00", result.Total)

	var stored models.Contract
	require.NoError(t, db.First(&stored).Error)
	assert.InDelta(t, 350.0, stored.Total, 0.001)
}

func TestGenerateReturnsDocumentWhenSaveFails(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Contract{}))
	svc := NewContractService(db)
	client, service := rentalFixture()

	result, err := svc.Generate(uuid.New(), uuid.New(), GenerateInput{
		ContractType: models.ContractTypeRental,
		Client:       client,
		Service:      service,
	}, testNow)

	require.NoError(t, err)
	assert.Error(t, result.SaveErr)
	assert.Contains(t, result.Document, "Maria Aparecida Souza")
	assert.Equal(t, 3, result.Days)
	assert.Equal(t, "300,00", result.Total)
}
