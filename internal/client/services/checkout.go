package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/marketplac/internal/client/api"
	"github.com/dmitrijs2005/marketplac/internal/common"
	"github.com/pkg/browser"
)

// Redirector hands a checkout session over to the hosted payment page. The
// redirect is terminal for the flow: no local state changes afterwards.
type Redirector interface {
	RedirectToCheckout(sessionID string) error
}

// BrowserRedirector opens the hosted payment page in the user's browser.
type BrowserRedirector struct {
	// CheckoutPageURL is the base URL; the session id is appended as the
	// final path segment.
	CheckoutPageURL string
}

func (b *BrowserRedirector) RedirectToCheckout(sessionID string) error {
	target := strings.TrimRight(b.CheckoutPageURL, "/") + "/" + sessionID
	if err := browser.OpenURL(target); err != nil {
		return fmt.Errorf("open payment page: %w", err)
	}
	return nil
}

// CheckoutService converts a display price into a minor-currency amount,
// requests a payment session and hands control to the redirector.
type CheckoutService interface {
	Checkout(ctx context.Context, displayPrice string) (string, error)
}

type checkoutService struct {
	client   api.Client
	redirect Redirector
}

func NewCheckoutService(client api.Client, redirect Redirector) CheckoutService {
	return &checkoutService{client: client, redirect: redirect}
}

// Checkout parses the display price, requests a payment session for the
// resulting amount and redirects. A malformed price is rejected before any
// remote call; a failed session request surfaces as a distinct error.
func (s *checkoutService) Checkout(ctx context.Context, displayPrice string) (string, error) {
	amount, err := ParseDisplayPrice(displayPrice)
	if err != nil {
		return "", err
	}

	sessionID, err := s.client.CreatePaymentSession(ctx, amount)
	if err != nil {
		return "", fmt.Errorf("create payment session: %w", err)
	}

	if err := s.redirect.RedirectToCheckout(sessionID); err != nil {
		return "", fmt.Errorf("checkout redirect: %w", err)
	}
	return sessionID, nil
}

// ParseDisplayPrice converts a display price string such as "$1,234.56" into
// a minor-currency integer amount (123456). Currency symbols and grouping
// separators are ignored; one or two digits after the final dot are taken as
// the fraction. A string with no digits at all is a validation error.
func ParseDisplayPrice(displayPrice string) (int64, error) {
	var normalized strings.Builder
	for _, r := range displayPrice {
		if (r >= '0' && r <= '9') || r == '.' {
			normalized.WriteRune(r)
		}
	}
	cleaned := normalized.String()

	if strings.Trim(cleaned, ".") == "" {
		return 0, fmt.Errorf("%w: price %q contains no amount", common.ErrValidation, displayPrice)
	}

	whole := cleaned
	fraction := ""
	if dot := strings.LastIndex(cleaned, "."); dot >= 0 {
		if tail := cleaned[dot+1:]; len(tail) >= 1 && len(tail) <= 2 {
			whole, fraction = cleaned[:dot], tail
		}
	}
	// dots that did not mark a 1–2 digit fraction are grouping separators
	whole = strings.ReplaceAll(whole, ".", "")

	cents := int64(0)
	if whole != "" {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: price %q: %v", common.ErrValidation, displayPrice, err)
		}
		cents = n * 100
	}
	if fraction != "" {
		n, err := strconv.ParseInt(fraction, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: price %q: %v", common.ErrValidation, displayPrice, err)
		}
		if len(fraction) == 1 {
			n *= 10
		}
		cents += n
	}
	return cents, nil
}
