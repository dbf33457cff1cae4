package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/marketplac/internal/client/api"
	"github.com/dmitrijs2005/marketplac/internal/client/chat"
	"github.com/dmitrijs2005/marketplac/internal/client/config"
	"github.com/dmitrijs2005/marketplac/internal/client/models"
	"github.com/dmitrijs2005/marketplac/internal/client/services"
	"github.com/dmitrijs2005/marketplac/internal/client/store"
	"github.com/dmitrijs2005/marketplac/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App wires the session, catalog, wishlist, checkout and chat handles
// together and drives them from a REPL. Handles are constructed once at
// session start and released when Run returns; nothing here is ambient
// global state.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	session  services.SessionService
	catalog  services.CatalogService
	wishlist services.WishlistService
	checkout services.CheckoutService
	channel  *chat.Channel
	Mode     Mode
	reader   *bufio.Reader

	// draft survives a failed submission so the user can retry
	draft models.ListingDraft
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, repos, err := store.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIEndpointURL)
	session := services.NewSessionService(apiClient, repos.Metadata)
	// the session store is the token source for every authenticated call
	apiClient.SetTokenSource(session)

	return &App{
		config:   c,
		log:      log,
		db:       db,
		session:  session,
		catalog:  services.NewCatalogService(apiClient),
		wishlist: services.NewWishlistService(apiClient, session),
		checkout: services.NewCheckoutService(apiClient, &services.BrowserRedirector{CheckoutPageURL: c.CheckoutPageURL}),
		channel:  chat.NewChannel(c.ChatEndpointURL, c.ChatRoom, log),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.channel.Close()
		_ = a.session.Close(ctx)
		_ = a.db.Close()
	}()

	fmt.Println("MarketPlac CLI (type 'help' for commands)")

	if found, err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restore failed", "error", err)
	} else if found {
		a.log.Info(ctx, "previous session restored")
		if err := a.wishlist.Hydrate(ctx); err != nil {
			a.log.Error(ctx, "wishlist hydration failed", "error", err)
		}
	}

	if err := a.catalog.LoadAll(ctx); err != nil {
		a.log.Error(ctx, "catalog load failed", "error", err)
	}

	// one subscription for the whole session, regardless of logins/logouts
	if err := a.channel.Open(ctx); err != nil {
		a.log.Error(ctx, "chat channel unavailable", "error", err)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.Token() != ""
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.Identity(); u != nil {
		s = u.Name + " "
	} else if a.isLoggedIn() {
		s = "signed-in "
	}
	if a.Mode != "" {
		s += string(a.Mode)
	}
	s = strings.TrimSpace(s)
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher periodically probes the remote source and flips
// the online/offline indicator shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.session.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
