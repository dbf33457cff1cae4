// Package models defines the storefront types exchanged with the remote API
// and the live channel.
package models

import (
	"github.com/dmitrijs2005/marketplac/internal/common"
)

// Product is a single catalog listing. The remote source uses "_id" as the
// identifier field. Products are immutable once fetched; the catalog is only
// replaced wholesale by a re-fetch.
type Product struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Price string `json:"price"`
	Image string `json:"image"`
}

// User is the identity attached to the current session. It is never
// persisted; only the derived credential token is.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WishlistItem is a product reference held in the per-user wishlist.
// Membership is by ID.
type WishlistItem struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Price string `json:"price"`
	Image string `json:"image"`
}

// ChatMessage is a single inbound or outbound chat event. The log keeps
// messages in arrival order and never drops them within a session.
type ChatMessage struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// ListingDraft is the transient input buffer for a new listing. It is owned
// by the command constructing the request and cleared only after successful
// submission.
type ListingDraft struct {
	Title string `json:"title"`
	Price string `json:"price"`
	Image string `json:"image"`
}

// Validate checks that all draft fields are filled in. No further validation
// is performed; the remote source owns the rest.
func (d ListingDraft) Validate() error {
	if d.Title == "" || d.Price == "" || d.Image == "" {
		return common.ErrValidation
	}
	return nil
}

// Empty reports whether nothing has been entered into the draft yet.
func (d ListingDraft) Empty() bool {
	return d == ListingDraft{}
}
