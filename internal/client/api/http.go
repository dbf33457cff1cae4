package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/marketplac/internal/client/models"
)

const requestTimeout = 15 * time.Second

// HTTPClient implements Client over the storefront's HTTP/JSON contract.
// Authenticated calls carry the bearer token obtained from the token source
// at call time.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// SetTokenSource binds the credential source. It is set once during wiring,
// after the session store (which needs this client) has been constructed.
func (c *HTTPClient) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do issues a JSON request and decodes the JSON response into out (when out
// is non-nil). Transport failures and non-2xx statuses are translated into
// the shared sentinel errors.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/listings", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/register", body, nil); err != nil {
		return asAuthError(err)
	}
	return nil
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	body := map[string]string{"email": email, "password": password}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &resp); err != nil {
		return "", nil, asAuthError(err)
	}
	return resp.Token, &resp.User, nil
}

func (c *HTTPClient) GetWishlist(ctx context.Context) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := c.do(ctx, http.MethodGet, "/api/wishlist", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) AddWishlistItem(ctx context.Context, itemID string) error {
	body := map[string]string{"itemId": itemID}
	return c.do(ctx, http.MethodPost, "/api/wishlist", body, nil)
}

func (c *HTTPClient) RemoveWishlistItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/api/wishlist/"+url.PathEscape(itemID), nil, nil)
}

func (c *HTTPClient) CreateListing(ctx context.Context, draft models.ListingDraft) error {
	return c.do(ctx, http.MethodPost, "/api/listings", draft, nil)
}

type paymentSessionResponse struct {
	ID string `json:"id"`
}

func (c *HTTPClient) CreatePaymentSession(ctx context.Context, amount int64) (string, error) {
	body := map[string]int64{"amount": amount}

	var resp paymentSessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/create-payment-intent", body, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}
