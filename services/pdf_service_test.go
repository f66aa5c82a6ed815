package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractParagraphs(t *testing.T) {
	doc := `<div><h2>CONTRATO DE LOCAÇÃO DE VEÍCULO</h2>
<p><strong>CLÁUSULA 1ª</strong></p>
<p>Regula-se a locação do veículo:<br/>Fiat Mobi ano 2022</p>
<p>Valor de R$ 300,00 &amp; caução</p></div>`

	paragraphs := contractParagraphs(doc)

	require.NotEmpty(t, paragraphs)
	assert.Equal(t, "CONTRATO DE LOCAÇÃO DE VEÍCULO", paragraphs[0])
	assert.Contains(t, paragraphs, "CLÁUSULA 1ª")
	assert.Contains(t, paragraphs, "Fiat Mobi ano 2022")
	assert.Contains(t, paragraphs, "Valor de R$ 300,00 & caução")

	for _, p := range paragraphs {
		assert.NotContains(t, p, "<")
		assert.NotContains(t, p, ">")
	}
}

func TestContractParagraphsEmptyInput(t *testing.T) {
	assert.Empty(t, contractParagraphs(""))
	assert.Empty(t, contractParagraphs("<div><p>  </p></div>"))
}

func TestParagraphHeightGrowsWithLength(t *testing.T) {
	short := paragraphHeight("uma linha")
	long := paragraphHeight(string(make([]byte, 400)))

	assert.Greater(t, long, short)
}
