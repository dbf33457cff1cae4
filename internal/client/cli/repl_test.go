package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Products(ctx context.Context) error {
	f.calls = append(f.calls, "products")
	return nil
}
func (f *fakeExec) Search(ctx context.Context, term string) error {
	f.calls = append(f.calls, "search "+term)
	return nil
}
func (f *fakeExec) Sell(ctx context.Context) error {
	f.calls = append(f.calls, "sell")
	return nil
}
func (f *fakeExec) ToggleWish(ctx context.Context, id string) error {
	f.calls = append(f.calls, "wish "+id)
	return nil
}
func (f *fakeExec) ShowWishlist(ctx context.Context) error {
	f.calls = append(f.calls, "wishlist")
	return nil
}
func (f *fakeExec) Buy(ctx context.Context, id string) error {
	f.calls = append(f.calls, "buy "+id)
	return nil
}
func (f *fakeExec) ShowChat(ctx context.Context) error {
	f.calls = append(f.calls, "chat")
	return nil
}
func (f *fakeExec) Say(ctx context.Context, message string) error {
	f.calls = append(f.calls, "say "+message)
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"products",
		"search office chair",
		"search",
		"wish 1",
		"wishlist",
		"buy 2",
		"sell",
		"chat",
		"say hello there",
		"logout",
		"exit",
	}, "\n")

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewScanner(strings.NewReader(input)))

	require.Equal(t, []string{
		"login",
		"products",
		"search office chair",
		"search ",
		"wish 1",
		"wishlist",
		"buy 2",
		"sell",
		"chat",
		"say hello there",
		"logout",
	}, f.calls)
}

func TestRunREPL_ArgCommandsRequireArgs(t *testing.T) {
	silencePrintln(t)

	input := strings.Join([]string{"wish", "buy", "say", "exit"}, "\n")

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewScanner(strings.NewReader(input)))

	require.Empty(t, f.calls)
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	silencePrintln(t)

	input := strings.Join([]string{"", "frobnicate", "p"}, "\n")

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewScanner(strings.NewReader(input)))

	// short alias dispatches, blank and unknown lines do not
	require.Equal(t, []string{"products"}, f.calls)
}
