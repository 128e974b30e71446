package form_test

import (
	"testing"
	"time"

	"concesionaria/internal/form"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnteroCero(t *testing.T) {
	assert.Equal(t, 5, form.EnteroCero("5"))
	assert.Equal(t, 5, form.EnteroCero(" 5 "))
	assert.Equal(t, 0, form.EnteroCero("cinco"))
	assert.Equal(t, 0, form.EnteroCero(""))
	assert.Equal(t, -2, form.EnteroCero("-2"))
}

func TestEnteroNulo(t *testing.T) {
	v := form.EnteroNulo("2023")
	require.NotNil(t, v)
	assert.Equal(t, 2023, *v)

	assert.Nil(t, form.EnteroNulo("dos mil"))
	assert.Nil(t, form.EnteroNulo(""))
	assert.Nil(t, form.EnteroNulo("2023.5"))
}

func TestDecimalCero(t *testing.T) {
	assert.True(t, form.DecimalCero("1999.99").Equal(decimal.RequireFromString("1999.99")))
	assert.True(t, form.DecimalCero("abc").IsZero())
	assert.True(t, form.DecimalCero("").IsZero())
}

func TestDecimalNulo(t *testing.T) {
	v := form.DecimalNulo("45000.50")
	require.NotNil(t, v)
	assert.True(t, v.Equal(decimal.RequireFromString("45000.50")))

	assert.Nil(t, form.DecimalNulo("no-numerico"))
	assert.Nil(t, form.DecimalNulo(""))
}

func TestFechaNula(t *testing.T) {
	v := form.FechaNula("2024-03-15")
	require.NotNil(t, v)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *v)

	// absence and malformation are the same fallback
	assert.Nil(t, form.FechaNula(""))
	assert.Nil(t, form.FechaNula("15/03/2024"))
	assert.Nil(t, form.FechaNula("2024-13-99"))
}
