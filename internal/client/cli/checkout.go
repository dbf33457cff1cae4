package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/marketplac/internal/common"
)

// Buy starts the hosted payment flow for a catalog item. Once the redirect
// happens the flow is out of this program's hands.
func (a *App) Buy(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in to buy")
		return nil
	}

	product, ok := a.catalog.Get(id)
	if !ok {
		fmt.Println("Unknown product:", id)
		return nil
	}

	sessionID, err := a.checkout.Checkout(ctx, product.Price)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			fmt.Printf("Cannot check out %q: the price %q has no amount\n", product.Title, product.Price)
		} else {
			a.log.Error(ctx, "checkout failed", "error", err, "id", id)
			fmt.Println("Checkout failed")
		}
		return err
	}

	fmt.Printf("Opening payment page (checkout session %s)\n", sessionID)
	return nil
}
