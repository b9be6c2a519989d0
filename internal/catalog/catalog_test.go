package catalog

import (
	"testing"

	"github.com/sadiko81-hub/wonderdiina-website/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsDuplicateIDs(t *testing.T) {
	products := []domain.Product{
		{ID: "mug", Name: "Mug A", PriceMAD: decimal.NewFromInt(140)},
		{ID: "mug", Name: "Mug B", PriceMAD: decimal.NewFromInt(120)},
	}

	_, err := New(products)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestNewRejectsNegativePrice(t *testing.T) {
	products := []domain.Product{
		{ID: "mug", Name: "Mug", PriceMAD: decimal.NewFromInt(-1)},
	}

	_, err := New(products)
	assert.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestFindByID(t *testing.T) {
	c, err := New(DefaultSeed())
	require.NoError(t, err)

	p, err := c.FindByID("mug")
	require.NoError(t, err)
	assert.Equal(t, "Cozy Boho Mug", p.Name)
	assert.True(t, decimal.NewFromInt(140).Equal(p.PriceMAD))

	_, err = c.FindByID("nonexistent")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestListPreservesOrderAndIsACopy(t *testing.T) {
	c, err := New(DefaultSeed())
	require.NoError(t, err)
	require.Equal(t, 6, c.Len())

	list := c.List()
	assert.Equal(t, "agenda", list[0].ID)
	assert.Equal(t, "magnet", list[5].ID)

	list[0].Name = "tampered"
	fresh, err := c.FindByID("agenda")
	require.NoError(t, err)
	assert.Equal(t, "Boho Agenda", fresh.Name)
}
