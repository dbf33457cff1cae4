package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/marketplac/internal/client/models"
	"github.com/dmitrijs2005/marketplac/internal/common"
)

// Products prints the filtered view of the catalog.
func (a *App) Products(ctx context.Context) error {
	products := a.catalog.Filtered()
	if len(products) == 0 {
		if term := a.catalog.SearchTerm(); term != "" {
			fmt.Printf("No products match %q\n", term)
		} else {
			fmt.Println("No products")
		}
		return nil
	}

	for _, p := range products {
		fmt.Printf("%s  %s  %s\n", p.ID, p.Title, p.Price)
	}
	return nil
}

// Search stores the term and shows how many listings match.
func (a *App) Search(ctx context.Context, term string) error {
	a.catalog.SetSearchTerm(term)
	if term == "" {
		fmt.Println("Search cleared")
		return nil
	}
	fmt.Printf("%d product(s) match %q\n", len(a.catalog.Filtered()), term)
	return nil
}

// Sell collects a listing draft and submits it. The draft survives a failed
// submission: re-running sell offers the previous values as defaults.
func (a *App) Sell(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in to create a listing")
		return nil
	}

	title, err := a.draftField("Title", a.draft.Title)
	if err != nil {
		return err
	}
	price, err := a.draftField("Price", a.draft.Price)
	if err != nil {
		return err
	}
	image, err := a.draftField("Image URL", a.draft.Image)
	if err != nil {
		return err
	}

	a.draft = models.ListingDraft{Title: title, Price: price, Image: image}

	if err := a.catalog.CreateListing(ctx, a.draft); err != nil {
		if errors.Is(err, common.ErrValidation) {
			fmt.Println("All fields are required")
		} else {
			a.log.Error(ctx, "listing creation failed", "error", err)
			fmt.Println("Listing not created, draft kept for retry")
		}
		return err
	}

	a.draft = models.ListingDraft{}
	fmt.Println("Listing created")
	return nil
}

// draftField prompts for one draft field; entering nothing keeps the
// retained value.
func (a *App) draftField(label, current string) (string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	value, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}
