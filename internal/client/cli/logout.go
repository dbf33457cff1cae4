package cli

import (
	"context"
	"fmt"
)

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	fmt.Println("Logged out")
	return nil
}
