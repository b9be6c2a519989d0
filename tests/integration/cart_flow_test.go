package integration

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sadiko81-hub/wonderdiina-website/internal/cart/repository"
	cartservice "github.com/sadiko81-hub/wonderdiina-website/internal/cart/service"
	"github.com/sadiko81-hub/wonderdiina-website/internal/catalog"
	"github.com/sadiko81-hub/wonderdiina-website/internal/checkout"
	"github.com/sadiko81-hub/wonderdiina-website/internal/currency"
	"github.com/sadiko81-hub/wonderdiina-website/internal/pricing"
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

func setupEngine(t *testing.T) (*cartservice.CartService, *pricing.Aggregator) {
	client, _ := setupTestRedis(t)

	cat, err := catalog.New(catalog.DefaultSeed())
	require.NoError(t, err)

	svc := cartservice.NewCartService(repository.NewCartRepository(client), cat)
	agg := pricing.NewAggregator(currency.NewDefaultConverter())
	return svc, agg
}

// The mug scenario: add 1, add 2 more, then set quantity to 0. The cart
// ends with a single line of quantity 1 and totals 140 MAD / 13.02 EUR.
func TestMugScenario(t *testing.T) {
	svc, agg := setupEngine(t)
	ctx := context.Background()

	_, err := svc.AddLine(ctx, "sess", "mug", 1)
	require.NoError(t, err)
	_, err = svc.AddLine(ctx, "sess", "mug", 2)
	require.NoError(t, err)
	cart, err := svc.SetQuantity(ctx, "sess", "mug", 0)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	totalMAD := agg.CartTotal(cart, currency.MAD)
	assert.True(t, decimal.RequireFromString("140").Equal(totalMAD), "got %s", totalMAD)

	totalEUR := agg.CartTotal(cart, currency.EUR)
	assert.True(t, decimal.RequireFromString("13.02").Equal(totalEUR), "got %s", totalEUR)
}

func TestEmptyCartScenario(t *testing.T) {
	svc, agg := setupEngine(t)

	cart, err := svc.GetCart(context.Background(), "sess")
	require.NoError(t, err)

	assert.True(t, agg.CartTotal(cart, currency.MAD).IsZero())
	assert.Equal(t, 0, pricing.ItemCount(cart))

	link := checkout.BuildPaymentLink(agg.CartTotal(cart, currency.MAD), currency.MAD, "merchant")
	assert.Equal(t, "https://www.paypal.me/merchant/0.00?currencyCode=MAD", link)
}

// Carts survive a service restart: a fresh engine over the same store
// sees the same lines in the same order.
func TestCartSurvivesRestart(t *testing.T) {
	client, _ := setupTestRedis(t)
	cat, err := catalog.New(catalog.DefaultSeed())
	require.NoError(t, err)
	ctx := context.Background()

	first := cartservice.NewCartService(repository.NewCartRepository(client), cat)
	_, err = first.AddLine(ctx, "sess", "print", 2)
	require.NoError(t, err)
	_, err = first.AddLine(ctx, "sess", "bookmark", 1)
	require.NoError(t, err)

	second := cartservice.NewCartService(repository.NewCartRepository(client), cat)
	cart, err := second.GetCart(ctx, "sess")
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "print", cart.Lines[0].ProductID)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "bookmark", cart.Lines[1].ProductID)
}

// A corrupted cart record degrades to an empty cart and the next
// mutation rewrites it cleanly.
func TestCorruptedRecordRecovers(t *testing.T) {
	client, mr := setupTestRedis(t)
	cat, err := catalog.New(catalog.DefaultSeed())
	require.NoError(t, err)
	ctx := context.Background()

	mr.Set("wonderdiina:cart:sess", "%%%corrupt%%%")

	svc := cartservice.NewCartService(repository.NewCartRepository(client), cat)
	cart, err := svc.GetCart(ctx, "sess")
	require.NoError(t, err)
	assert.True(t, cart.Empty())

	cart, err = svc.AddLine(ctx, "sess", "keychain", 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)

	reloaded, err := svc.GetCart(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, cart, reloaded)
}

// Currency preference persists independently of the cart.
func TestPreferenceIndependentOfCart(t *testing.T) {
	client, _ := setupTestRedis(t)
	cat, err := catalog.New(catalog.DefaultSeed())
	require.NoError(t, err)
	ctx := context.Background()

	svc := cartservice.NewCartService(repository.NewCartRepository(client), cat)

	_, err = svc.SetPreference(ctx, "sess", "EUR")
	require.NoError(t, err)
	_, err = svc.Clear(ctx, "sess")
	require.NoError(t, err)

	pref, err := svc.GetPreference(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, currency.EUR, pref)
}
