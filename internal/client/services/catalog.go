package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/marketplac/internal/client/api"
	"github.com/dmitrijs2005/marketplac/internal/client/models"
)

// CatalogService caches the full product collection and a view filtered by
// the live search term. The filtered view is always a pure function of
// (canonical collection, term); it is recomputed, never mutated on its own.
type CatalogService interface {
	LoadAll(ctx context.Context) error
	SetSearchTerm(term string)
	SearchTerm() string
	Products() []models.Product
	Filtered() []models.Product
	Get(id string) (models.Product, bool)
	CreateListing(ctx context.Context, draft models.ListingDraft) error
}

type catalogService struct {
	client api.Client

	mu       sync.RWMutex
	catalog  []models.Product
	term     string
	filtered []models.Product
}

func NewCatalogService(client api.Client) CatalogService {
	return &catalogService{client: client}
}

// LoadAll fetches the full product collection and replaces both the
// canonical collection and the filtered view. On failure the previous
// catalog stays intact.
func (s *catalogService) LoadAll(ctx context.Context) error {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	s.mu.Lock()
	s.catalog = products
	s.filtered = filterByTitle(s.catalog, s.term)
	s.mu.Unlock()
	return nil
}

// SetSearchTerm stores the term and recomputes the filtered view. Pure and
// synchronous, no remote call.
func (s *catalogService) SetSearchTerm(term string) {
	s.mu.Lock()
	s.term = term
	s.filtered = filterByTitle(s.catalog, term)
	s.mu.Unlock()
}

func (s *catalogService) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.term
}

// Products returns a copy of the canonical collection as last fetched.
func (s *catalogService) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.catalog...)
}

// Filtered returns a copy of the search-derived view.
func (s *catalogService) Filtered() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.filtered...)
}

// Get looks a product up by id in the canonical collection.
func (s *catalogService) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// CreateListing submits the draft and, on success, re-fetches the catalog.
// The re-fetch is sequenced strictly after the creation call succeeded. The
// draft itself is owned by the caller: it is retained for retry on failure
// and cleared by the caller on success.
func (s *catalogService) CreateListing(ctx context.Context, draft models.ListingDraft) error {
	if err := draft.Validate(); err != nil {
		return fmt.Errorf("listing draft: %w", err)
	}

	if err := s.client.CreateListing(ctx, draft); err != nil {
		return fmt.Errorf("create listing: %w", err)
	}

	if err := s.LoadAll(ctx); err != nil {
		return fmt.Errorf("refresh after create: %w", err)
	}
	return nil
}

// filterByTitle returns the subsequence of products whose title contains
// term, case-insensitively. An empty term selects everything.
func filterByTitle(products []models.Product, term string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	needle := strings.ToLower(term)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
