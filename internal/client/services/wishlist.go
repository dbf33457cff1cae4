package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/marketplac/internal/client/api"
	"github.com/dmitrijs2005/marketplac/internal/client/models"
)

// WishlistService mirrors the per-identity wishlist of the remote source.
// Membership is by product id. Local mutations are applied only after the
// remote call that caused them returned without error (confirm-then-apply;
// the source applied them optimistically, see DESIGN.md).
type WishlistService interface {
	Hydrate(ctx context.Context) error
	Toggle(ctx context.Context, product models.Product) error
	Contains(id string) bool
	Items() []models.WishlistItem
}

type wishlistService struct {
	client api.Client
	tokens api.TokenSource

	mu    sync.RWMutex
	items []models.WishlistItem

	// locksMu guards locks; each entry serializes toggles of one item so a
	// later toggle always observes the local effect of an earlier one.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewWishlistService(client api.Client, tokens api.TokenSource) WishlistService {
	return &wishlistService{
		client: client,
		tokens: tokens,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Hydrate replaces the local set with the remote wishlist of the current
// identity. Without a credential it resets to the empty set and issues no
// remote call.
func (s *wishlistService) Hydrate(ctx context.Context) error {
	if s.tokens.Token() == "" {
		s.mu.Lock()
		s.items = nil
		s.mu.Unlock()
		return nil
	}

	items, err := s.client.GetWishlist(ctx)
	if err != nil {
		return fmt.Errorf("hydrate wishlist: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Toggle adds the product to the wishlist when absent and removes it when
// present. The remote call is issued first; local membership changes only
// after it succeeds, so a failed call leaves local and remote state aligned.
func (s *wishlistService) Toggle(ctx context.Context, product models.Product) error {
	lock := s.itemLock(product.ID)
	lock.Lock()
	defer lock.Unlock()

	if s.Contains(product.ID) {
		if err := s.client.RemoveWishlistItem(ctx, product.ID); err != nil {
			return fmt.Errorf("remove wishlist item: %w", err)
		}
		s.removeLocal(product.ID)
		return nil
	}

	if err := s.client.AddWishlistItem(ctx, product.ID); err != nil {
		return fmt.Errorf("add wishlist item: %w", err)
	}
	s.addLocal(product)
	return nil
}

func (s *wishlistService) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (s *wishlistService) Items() []models.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WishlistItem(nil), s.items...)
}

func (s *wishlistService) addLocal(product models.Product) {
	s.mu.Lock()
	s.items = append(s.items, models.WishlistItem{
		ID:    product.ID,
		Title: product.Title,
		Price: product.Price,
		Image: product.Image,
	})
	s.mu.Unlock()
}

func (s *wishlistService) removeLocal(id string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()
}

func (s *wishlistService) itemLock(id string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}
