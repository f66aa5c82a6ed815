package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+5567999887766"))
	assert.True(t, ValidatePhone("5567999887766"))
	assert.True(t, ValidatePhone("+55 (67) 99988-7766"))

	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone("0123"))
}

func TestValidateCpfCnpj(t *testing.T) {
	assert.True(t, ValidateCpfCnpj("008.714.291-01"))
	assert.True(t, ValidateCpfCnpj("00871429101"))
	assert.True(t, ValidateCpfCnpj("17.909.442/0001-58"))
	assert.True(t, ValidateCpfCnpj("17909442000158"))

	assert.False(t, ValidateCpfCnpj(""))
	assert.False(t, ValidateCpfCnpj("123"))
	assert.False(t, ValidateCpfCnpj("123456789012"))
}

func TestValidatePlate(t *testing.T) {
	assert.True(t, ValidatePlate("ABC1234"))
	assert.True(t, ValidatePlate("abc-1234"))
	assert.True(t, ValidatePlate("ABC1D23"))
	assert.True(t, ValidatePlate("HSO 8D11"))

	assert.False(t, ValidatePlate(""))
	assert.False(t, ValidatePlate("AB12345"))
	assert.False(t, ValidatePlate("ABCD123"))
	assert.False(t, ValidatePlate("1234ABC"))
}
