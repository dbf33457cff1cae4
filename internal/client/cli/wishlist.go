package cli

import (
	"context"
	"fmt"
)

// ToggleWish flips wishlist membership of the given catalog item.
func (a *App) ToggleWish(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in to use the wishlist")
		return nil
	}

	product, ok := a.catalog.Get(id)
	if !ok {
		fmt.Println("Unknown product:", id)
		return nil
	}

	if err := a.wishlist.Toggle(ctx, product); err != nil {
		a.log.Error(ctx, "wishlist update failed", "error", err, "id", id)
		return err
	}

	if a.wishlist.Contains(id) {
		fmt.Println("Added to wishlist:", product.Title)
	} else {
		fmt.Println("Removed from wishlist:", product.Title)
	}
	return nil
}

func (a *App) ShowWishlist(ctx context.Context) error {
	items := a.wishlist.Items()
	if len(items) == 0 {
		fmt.Println("Wishlist is empty")
		return nil
	}

	for _, item := range items {
		fmt.Printf("%s  %s  %s\n", item.ID, item.Title, item.Price)
	}
	return nil
}
