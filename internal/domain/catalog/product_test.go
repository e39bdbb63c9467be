package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_ValidInput(t *testing.T) {
	p, err := NewProduct(3, "X-Burger", "Pão, carne e queijo", 29.90, "Burgers")

	require.NoError(t, err)
	assert.Contains(t, p.SID(), "prd_")
	assert.Equal(t, uint(3), p.UserID())
	assert.Equal(t, "X-Burger", p.Name())
	assert.Equal(t, 29.90, p.Price())
	assert.Equal(t, "Burgers", p.Category())
	assert.False(t, p.IsPopular())
}

func TestNewProduct_RoundsPriceToCents(t *testing.T) {
	p, err := NewProduct(1, "Suco", "", 7.999, "Bebidas")

	require.NoError(t, err)
	assert.Equal(t, 8.00, p.Price())
}

func TestNewProduct_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		userID uint
		pname  string
		price  float64
	}{
		{"zero user", 0, "X-Burger", 10},
		{"empty name", 1, "", 10},
		{"negative price", 1, "X-Burger", -0.01},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProduct(tc.userID, tc.pname, "", tc.price, "")
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestNewProduct_DefaultCategory(t *testing.T) {
	p, err := NewProduct(1, "Água", "", 4, "")

	require.NoError(t, err)
	assert.Equal(t, "Outros", p.Category())
}

func TestNewProduct_ZeroPriceAllowed(t *testing.T) {
	// "consulte valor" items are stored with price zero
	p, err := NewProduct(1, "Prato do dia", "", 0, "Pratos")

	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Price())
}

func TestProduct_Update(t *testing.T) {
	p, err := NewProduct(1, "X-Burger", "simples", 25, "Burgers")
	require.NoError(t, err)

	require.NoError(t, p.Update("X-Burger Duplo", "dois blends", 32.9, "Burgers"))
	assert.Equal(t, "X-Burger Duplo", p.Name())
	assert.Equal(t, 32.9, p.Price())

	assert.Error(t, p.Update("", "", 10, ""))
	assert.Error(t, p.Update("X", "", -1, ""))
}

func TestProduct_MarkPopular(t *testing.T) {
	p, err := NewProduct(1, "X-Burger", "", 25, "Burgers")
	require.NoError(t, err)

	p.MarkPopular(true)
	assert.True(t, p.IsPopular())

	p.MarkPopular(false)
	assert.False(t, p.IsPopular())
}
