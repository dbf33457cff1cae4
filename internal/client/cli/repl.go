package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Products(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Sell(ctx context.Context) error
	ToggleWish(ctx context.Context, id string) error
	ShowWishlist(ctx context.Context) error
	Buy(ctx context.Context, id string) error
	ShowChat(ctx context.Context) error
	Say(ctx context.Context, message string) error
}

// runREPL starts a simple read–eval–print loop for the MarketPlac CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mp> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (p)roducts, search, sell, wish <id>, wishlist, buy <id>, chat, say <message>, logout, exit")
			} else {
				printlnFn("Available commands: (p)roducts, search, chat, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "p", "products":
			_ = a.Products(ctx)

		case "search":
			// no argument clears the filter
			_ = a.Search(ctx, strings.Join(args, " "))

		case "sell":
			_ = a.Sell(ctx)

		case "wish":
			if len(args) == 0 {
				printlnFn("Usage: wish <id>")
				continue
			}
			_ = a.ToggleWish(ctx, args[0])

		case "wishlist":
			_ = a.ShowWishlist(ctx)

		case "buy":
			if len(args) == 0 {
				printlnFn("Usage: buy <id>")
				continue
			}
			_ = a.Buy(ctx, args[0])

		case "chat":
			_ = a.ShowChat(ctx)

		case "say":
			if len(args) == 0 {
				printlnFn("Usage: say <message>")
				continue
			}
			_ = a.Say(ctx, strings.Join(args, " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
