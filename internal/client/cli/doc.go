// Package cli implements the interactive MarketPlac storefront client: a
// REPL over the session, catalog, wishlist, checkout and chat services.
package cli
