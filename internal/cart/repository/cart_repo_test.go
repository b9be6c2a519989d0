package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sadiko81-hub/wonderdiina-website/internal/cart/domain"
	"github.com/sadiko81-hub/wonderdiina-website/internal/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())
	return client, mr
}

func sampleCart() domain.Cart {
	return domain.Cart{Lines: []domain.CartLine{
		{ProductID: "mug", Name: "Cozy Boho Mug", PriceMAD: decimal.NewFromInt(140), Quantity: 2},
		{ProductID: "agenda", Name: "Boho Agenda", PriceMAD: decimal.NewFromInt(150), Quantity: 1},
	}}
}

func TestCartRepository_SaveLoadRoundTrip(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewCartRepository(client)
	ctx := context.Background()

	saved := sampleCart()
	require.NoError(t, repo.SaveCart(ctx, "sess-1", saved))

	loaded, err := repo.LoadCart(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 2)
	assert.Equal(t, "mug", loaded.Lines[0].ProductID)
	assert.Equal(t, "agenda", loaded.Lines[1].ProductID)
	assert.Equal(t, 2, loaded.Lines[0].Quantity)
	assert.True(t, decimal.NewFromInt(140).Equal(loaded.Lines[0].PriceMAD))
}

func TestCartRepository_LoadMissingReturnsEmpty(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewCartRepository(client)

	cart, err := repo.LoadCart(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestCartRepository_LoadMalformedReturnsEmpty(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewCartRepository(client)

	mr.Set("wonderdiina:cart:broken", "{not json")

	cart, err := repo.LoadCart(context.Background(), "broken")
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestCartRepository_SaveOverwritesWholeRecord(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewCartRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.SaveCart(ctx, "sess-1", sampleCart()))
	require.NoError(t, repo.SaveCart(ctx, "sess-1", domain.Cart{Lines: []domain.CartLine{
		{ProductID: "print", Name: "Art Print", PriceMAD: decimal.NewFromInt(200), Quantity: 1},
	}}))

	loaded, err := repo.LoadCart(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, "print", loaded.Lines[0].ProductID)
}

func TestCartRepository_DeleteCart(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewCartRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.SaveCart(ctx, "sess-1", sampleCart()))
	require.NoError(t, repo.DeleteCart(ctx, "sess-1"))

	cart, err := repo.LoadCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestCartRepository_PreferenceRoundTrip(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewCartRepository(client)
	ctx := context.Background()

	pref, err := repo.LoadPreference(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, currency.MAD, pref)

	require.NoError(t, repo.SavePreference(ctx, "sess-1", currency.EUR))

	pref, err = repo.LoadPreference(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, currency.EUR, pref)
}

func TestCartRepository_MalformedPreferenceFallsBackToMAD(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewCartRepository(client)

	mr.Set("wonderdiina:currency:sess-1", "DOGE")

	pref, err := repo.LoadPreference(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, currency.MAD, pref)
}

func TestCartRepository_RecordsExpire(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewCartRepositoryWithTTL(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.SaveCart(ctx, "sess-1", sampleCart()))

	mr.FastForward(2 * time.Minute)

	cart, err := repo.LoadCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}
