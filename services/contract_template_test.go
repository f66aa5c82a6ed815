package services

import (
	"strings"
	"testing"
	"time"

	"github.com/odairorso/Contratoloca-aocarro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

func rentalFixture() (ClientSnapshot, ServiceSnapshot) {
	client := ClientSnapshot{
		Name:         "Maria Aparecida Souza",
		CpfCnpj:      "123.456.789-09",
		Address:      "Rua das Palmeiras 45",
		Neighborhood: "Jardim Paraíso",
		Phone:        "+5567999887766",
	}
	svc := ServiceSnapshot{
		Model:       "Fiat Mobi",
		Year:        "2022",
		Color:       "Branco",
		Plate:       "ABC1D23",
		StartDate:   "2024-01-10",
		EndDate:     "2024-01-12",
		DailyRate:   "100,00",
		Deposit:     "500,00",
		MarketValue: "48.000,00",
	}
	return client, svc
}

func TestRenderRentalContract(t *testing.T) {
	client, svc := rentalFixture()

	doc, days, total, err := RenderContract(models.ContractTypeRental, client, svc, testNow)
	require.NoError(t, err)

	assert.Equal(t, 3, days)
	assert.Equal(t, "300,00", total)

	assert.Contains(t, doc, "CONTRATO DE LOCAÇÃO DE VEÍCULO")
	assert.Contains(t, doc, "Maria Aparecida Souza")
	assert.Contains(t, doc, "123.456.789-09")
	assert.Contains(t, doc, "Fiat Mobi ano 2022")
	assert.Contains(t, doc, "Com placa ABC1D23")
	assert.Contains(t, doc, "R$ 100,00")
	assert.Contains(t, doc, "R$ 300,00 para o período de 3 dias")
	assert.Contains(t, doc, "10/01/2024 A 12/01/2024")
	assert.Contains(t, doc, "R$ 500,00")
	assert.Contains(t, doc, "Naviraí, 28 de AGOSTO de 2026.")
	assert.Contains(t, doc, "LOCATÁRIO: Maria Aparecida Souza")
}

func TestRenderRentalContractIsDeterministic(t *testing.T) {
	client, svc := rentalFixture()

	first, _, _, err := RenderContract(models.ContractTypeRental, client, svc, testNow)
	require.NoError(t, err)
	second, _, _, err := RenderContract(models.ContractTypeRental, client, svc, testNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderRentalContractEscapesMarkup(t *testing.T) {
	client, svc := rentalFixture()
	client.Name = `<script>alert("x")</script>`

	doc, _, _, err := RenderContract(models.ContractTypeRental, client, svc, testNow)
	require.NoError(t, err)

	assert.NotContains(t, doc, "<script>")
	assert.Contains(t, doc, "&lt;script&gt;")
}

func TestRenderRentalContractOmitsEmptyNotes(t *testing.T) {
	client, svc := rentalFixture()

	doc, _, _, err := RenderContract(models.ContractTypeRental, client, svc, testNow)
	require.NoError(t, err)
	assert.NotContains(t, doc, "OBSERVAÇÕES")

	svc.Notes = "Entregar com tanque cheio"
	doc, _, _, err = RenderContract(models.ContractTypeRental, client, svc, testNow)
	require.NoError(t, err)
	assert.Contains(t, doc, "OBSERVAÇÕES")
	assert.Contains(t, doc, "Entregar com tanque cheio")
}

func TestRenderRentalContractBlankRate(t *testing.T) {
	client, svc := rentalFixture()
	svc.DailyRate = ""

	_, days, total, err := RenderContract(models.ContractTypeRental, client, svc, testNow)
	require.NoError(t, err)

	assert.Equal(t, 0, days)
	assert.Equal(t, "0,00", total)
}

func TestRenderGarageContract(t *testing.T) {
	client := ClientSnapshot{Name: "José da Silva", CpfCnpj: "987.654.321-00"}
	svc := ServiceSnapshot{
		Vehicle:  "VW Gol 2018",
		Plate:    "XYZ9876",
		Services: "Troca de óleo e filtros",
		Value:    "350,00",
		Deadline: "2 dias úteis",
	}

	doc, days, total, err := RenderContract(models.ContractTypeGarage, client, svc, testNow)
	require.NoError(t, err)

	assert.Equal(t, 0, days)
	assert.Equal(t, "0,00", total)

	assert.Contains(t, doc, "CONTRATO DE PRESTAÇÃO DE SERVIÇOS AUTOMOTIVOS")
	assert.Contains(t, doc, "José da Silva")
	assert.Contains(t, doc, "Troca de óleo e filtros")
	assert.Contains(t, doc, "R$ 350,00")
	assert.Contains(t, doc, "Naviraí, 28/08/2026.")
	assert.NotContains(t, doc, "CONTRATO DE LOCAÇÃO")
}

func TestRenderContractSaleUsesRentalSkeleton(t *testing.T) {
	client, svc := rentalFixture()

	doc, days, total, err := RenderContract(models.ContractTypeSale, client, svc, testNow)
	require.NoError(t, err)

	assert.Equal(t, 3, days)
	assert.Equal(t, "300,00", total)
	assert.True(t, strings.Contains(doc, "CONTRATO DE LOCAÇÃO DE VEÍCULO"))
}

func TestToJSONB(t *testing.T) {
	client, _ := rentalFixture()

	m := ToJSONB(client)
	assert.Equal(t, "Maria Aparecida Souza", m.String("nome"))
	assert.Equal(t, "123.456.789-09", m.String("cpf"))
	assert.Equal(t, "Jardim Paraíso", m.String("bairro"))
}
