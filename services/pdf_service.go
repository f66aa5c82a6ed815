// services/pdf_service.go
package services

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	maroto "github.com/johnfercher/maroto/v2"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/odairorso/Contratoloca-aocarro/models"
)

var (
	tagRegex       = regexp.MustCompile(`<[^>]*>`)
	blankLineRegex = regexp.MustCompile(`\n{3,}`)
)

// GenerateContractPDF lays the stored contract text out on an A4 page for
// download. The on-screen document is HTML; here it is flattened to
// paragraphs, since the print layout carries no markup of its own.
func GenerateContractPDF(contract *models.Contract) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Contrato "+contract.Number, true).
		Build()

	m := maroto.New(cfg)

	paragraphs := contractParagraphs(contract.ContractText)
	title := "CONTRATO"
	if len(paragraphs) > 0 {
		title = paragraphs[0]
		paragraphs = paragraphs[1:]
	}

	m.AddRows(text.NewRow(12, title, props.Text{
		Style: fontstyle.Bold,
		Align: align.Center,
		Size:  13,
	}))
	m.AddRows(text.NewRow(8, "Contrato n.º "+contract.Number, props.Text{
		Align: align.Center,
		Size:  9,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}))

	for _, para := range paragraphs {
		m.AddRows(text.NewRow(paragraphHeight(para), para, props.Text{
			Size:  10,
			Align: align.Left,
		}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// contractParagraphs strips the markup from the rendered document and splits
// it into printable paragraphs.
func contractParagraphs(htmlText string) []string {
	plain := tagRegex.ReplaceAllString(strings.ReplaceAll(htmlText, "<br/>", "\n"), "\n")
	plain = html.UnescapeString(plain)
	plain = blankLineRegex.ReplaceAllString(plain, "\n\n")

	var paragraphs []string
	for _, line := range strings.Split(plain, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}

// paragraphHeight estimates the row height from the wrapped line count at
// roughly 95 characters per line on A4 with 15mm margins.
func paragraphHeight(para string) float64 {
	lines := (utf8.RuneCountInString(para) / 95) + 1
	return float64(lines) * 5
}
