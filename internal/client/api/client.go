// Package api talks to the remote storefront API. The Client interface is
// the seam between application services and the concrete HTTP transport.
package api

import (
	"context"

	"github.com/dmitrijs2005/marketplac/internal/client/models"
)

// TokenSource supplies the credential for authenticated calls. The transport
// must read it at call time, never cache it: the session store is the only
// owner of the credential.
type TokenSource interface {
	Token() string
}

type Client interface {
	Close() error
	ListProducts(ctx context.Context) ([]models.Product, error)
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GetWishlist(ctx context.Context) ([]models.WishlistItem, error)
	AddWishlistItem(ctx context.Context, itemID string) error
	RemoveWishlistItem(ctx context.Context, itemID string) error
	CreateListing(ctx context.Context, draft models.ListingDraft) error
	CreatePaymentSession(ctx context.Context, amount int64) (string, error)
	Ping(ctx context.Context) error
}
