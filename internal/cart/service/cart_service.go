package service

import (
	"context"
	"log"
	"math"
	"sync"

	cartdomain "github.com/sadiko81-hub/wonderdiina-website/internal/cart/domain"
	"github.com/sadiko81-hub/wonderdiina-website/internal/cart/repository"
	"github.com/sadiko81-hub/wonderdiina-website/internal/catalog"
	"github.com/sadiko81-hub/wonderdiina-website/internal/currency"
)

// Observer is notified after every successful cart mutation, so
// independent view surfaces can stay consistent without re-querying.
type Observer func(sessionID string, cart cartdomain.Cart)

// CartService is the cart engine: it owns the authoritative cart state
// for each session, keeps it synchronized with the store, and exposes
// the mutation operations consumed by the storefront views.
//
// Domain anomalies (unknown product id, absent line, bad quantity) are
// logged no-ops rather than errors: a stale button in the storefront
// must never break the page. Only store failures surface as errors.
type CartService struct {
	repo    *repository.CartRepository
	catalog *catalog.Catalog

	// The store is remote, so mutations are serialized to keep
	// load-mutate-save cycles from interleaving.
	mu        sync.Mutex
	observers []Observer
}

// NewCartService creates a new CartService.
func NewCartService(repo *repository.CartRepository, cat *catalog.Catalog) *CartService {
	return &CartService{repo: repo, catalog: cat}
}

// Subscribe registers an observer invoked after every successful
// mutation. Observers run synchronously on the mutating call.
func (s *CartService) Subscribe(obs Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, obs)
}

// GetCart returns the current cart for a session.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (cartdomain.Cart, error) {
	return s.repo.LoadCart(ctx, sessionID)
}

// AddLine adds quantity of a product to the cart. If a line for the
// product already exists its quantity is incremented; otherwise a new
// line is appended with the product's name and price snapshotted from
// the catalog. An unknown product id leaves the cart unchanged.
// Quantities below 1 are treated as 1.
func (s *CartService) AddLine(ctx context.Context, sessionID, productID string, quantity int) (cartdomain.Cart, error) {
	if quantity < 1 {
		log.Printf("[cart] clamping add quantity %d to 1 session=%s product=%s", quantity, sessionID, productID)
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.repo.LoadCart(ctx, sessionID)
	if err != nil {
		return cartdomain.Cart{}, err
	}

	product, err := s.catalog.FindByID(productID)
	if err != nil {
		log.Printf("[cart] ignoring add for unknown product session=%s product=%s", sessionID, productID)
		return cart, nil
	}

	if i := cart.FindLine(productID); i >= 0 {
		cart.Lines[i].Quantity += quantity
	} else {
		cart.Lines = append(cart.Lines, cartdomain.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			PriceMAD:  product.PriceMAD,
			Quantity:  quantity,
		})
	}

	return s.persist(ctx, sessionID, cart)
}

// RemoveLine removes the line for a product. Removing an absent line is
// a no-op.
func (s *CartService) RemoveLine(ctx context.Context, sessionID, productID string) (cartdomain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.repo.LoadCart(ctx, sessionID)
	if err != nil {
		return cartdomain.Cart{}, err
	}

	i := cart.FindLine(productID)
	if i < 0 {
		return cart, nil
	}
	cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)

	return s.persist(ctx, sessionID, cart)
}

// SetQuantity sets a line's quantity to max(1, floor(quantity)).
// Setting quantity on an absent line is a no-op.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity float64) (cartdomain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.repo.LoadCart(ctx, sessionID)
	if err != nil {
		return cartdomain.Cart{}, err
	}

	i := cart.FindLine(productID)
	if i < 0 {
		log.Printf("[cart] ignoring quantity update for absent line session=%s product=%s", sessionID, productID)
		return cart, nil
	}

	q := int(math.Floor(quantity))
	if q < 1 {
		q = 1
	}
	cart.Lines[i].Quantity = q

	return s.persist(ctx, sessionID, cart)
}

// Clear empties the cart unconditionally.
func (s *CartService) Clear(ctx context.Context, sessionID string) (cartdomain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := cartdomain.Cart{}
	return s.persist(ctx, sessionID, cart)
}

// GetPreference returns the session's currency preference.
func (s *CartService) GetPreference(ctx context.Context, sessionID string) (currency.Preference, error) {
	return s.repo.LoadPreference(ctx, sessionID)
}

// SetPreference persists the session's currency preference. Unsupported
// codes are normalized to MAD.
func (s *CartService) SetPreference(ctx context.Context, sessionID, code string) (currency.Preference, error) {
	pref := currency.Parse(code)
	if !currency.Valid(code) {
		log.Printf("[cart] normalizing unsupported currency %q to %s session=%s", code, pref, sessionID)
	}
	if err := s.repo.SavePreference(ctx, sessionID, pref); err != nil {
		return pref, err
	}
	return pref, nil
}

// persist saves the cart and notifies observers. Callers hold s.mu.
func (s *CartService) persist(ctx context.Context, sessionID string, cart cartdomain.Cart) (cartdomain.Cart, error) {
	if err := s.repo.SaveCart(ctx, sessionID, cart); err != nil {
		return cartdomain.Cart{}, err
	}
	for _, obs := range s.observers {
		obs(sessionID, cart)
	}
	return cart, nil
}
