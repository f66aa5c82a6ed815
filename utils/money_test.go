package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"150,50", "150.5"},
		{"150.50", "150.5"},
		{"1.234,50", "1234.5"},
		{"1.000.000,00", "1000000"},
		{"100", "100"},
		{" 75,50 ", "75.5"},
		{"0", "0"},
		{"", "0"},
		{"abc", "0"},
		{"12,34,56", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.in).String())
		})
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"300", "300,00"},
		{"1234.5", "1.234,50"},
		{"75.5", "75,50"},
		{"0", "0,00"},
		{"1000000", "1.000.000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, FormatBRL(d))
		})
	}
}

func TestRentalTotal(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	days, total := RentalTotal(start, end, "100,00")
	assert.Equal(t, 3, days)
	assert.Equal(t, "300,00", total)
}

func TestRentalTotalSameDay(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	days, total := RentalTotal(day, day, "75,50")
	assert.Equal(t, 1, days)
	assert.Equal(t, "75,50", total)
}

func TestRentalTotalBlankRate(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	days, total := RentalTotal(start, end, "")
	assert.Equal(t, 0, days)
	assert.Equal(t, "0,00", total)

	days, total = RentalTotal(start, end, "   ")
	assert.Equal(t, 0, days)
	assert.Equal(t, "0,00", total)
}

func TestRentalTotalMissingDate(t *testing.T) {
	end := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	days, total := RentalTotal(time.Time{}, end, "100,00")
	assert.Equal(t, 0, days)
	assert.Equal(t, "0,00", total)
}

func TestRentalTotalGroupedRate(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	days, total := RentalTotal(start, end, "1.234,50")
	assert.Equal(t, 3, days)
	assert.Equal(t, "3.703,50", total)
}

func TestRentalTotalFormattedRateRoundTrips(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	rate := FormatBRL(decimal.NewFromFloat(1234.50))

	days, total := RentalTotal(start, end, rate)
	assert.Equal(t, 3, days)
	assert.Equal(t, "3.703,50", total)
}

func TestRentalTotalUnparseableRate(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	days, total := RentalTotal(start, end, "muito caro")
	assert.Equal(t, 3, days)
	assert.Equal(t, "0,00", total)
}
