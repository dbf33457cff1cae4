package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/marketplac/internal/client/models"
)

// fakeClient implements api.Client for unit tests. It records every call in
// order so ordering guarantees can be asserted, plus the arguments of the
// last call of each kind.
type fakeClient struct {
	calls []string

	CloseErr error

	ListProductsRet []models.Product
	ListProductsErr error

	RegisterErr       error
	LastRegisterName  string
	LastRegisterEmail string

	LoginToken string
	LoginUser  *models.User
	LoginErr   error
	LastLogin  string

	GetWishlistRet []models.WishlistItem
	GetWishlistErr error

	AddWishlistErr  error
	LastAddedItemID string

	RemoveWishlistErr error
	LastRemovedItemID string

	CreateListingErr error
	LastDraft        models.ListingDraft

	PaymentSessionID  string
	PaymentSessionErr error
	LastAmount        int64

	PingErr error
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	f.calls = append(f.calls, "list")
	return append([]models.Product(nil), f.ListProductsRet...), f.ListProductsErr
}

func (f *fakeClient) Register(ctx context.Context, name, email, password string) error {
	f.calls = append(f.calls, "register")
	f.LastRegisterName = name
	f.LastRegisterEmail = email
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	f.calls = append(f.calls, "login")
	f.LastLogin = email
	return f.LoginToken, f.LoginUser, f.LoginErr
}

func (f *fakeClient) GetWishlist(ctx context.Context) ([]models.WishlistItem, error) {
	f.calls = append(f.calls, "getwishlist")
	return append([]models.WishlistItem(nil), f.GetWishlistRet...), f.GetWishlistErr
}

func (f *fakeClient) AddWishlistItem(ctx context.Context, itemID string) error {
	f.calls = append(f.calls, "add "+itemID)
	f.LastAddedItemID = itemID
	return f.AddWishlistErr
}

func (f *fakeClient) RemoveWishlistItem(ctx context.Context, itemID string) error {
	f.calls = append(f.calls, "remove "+itemID)
	f.LastRemovedItemID = itemID
	return f.RemoveWishlistErr
}

func (f *fakeClient) CreateListing(ctx context.Context, draft models.ListingDraft) error {
	f.calls = append(f.calls, "create")
	f.LastDraft = draft
	return f.CreateListingErr
}

func (f *fakeClient) CreatePaymentSession(ctx context.Context, amount int64) (string, error) {
	f.calls = append(f.calls, fmt.Sprintf("payment %d", amount))
	f.LastAmount = amount
	return f.PaymentSessionID, f.PaymentSessionErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

// staticTokens is a trivial api.TokenSource.
type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string { return s.token }
