package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/marketplac/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, password); err != nil {
		if errors.Is(err, common.ErrAuth) {
			fmt.Println("Login unsuccessful: check your email and password")
		} else {
			a.log.Error(ctx, "login failed", "error", err)
		}
		return err
	}

	fmt.Println("Login successful")

	// hydration failure must not undo the login
	if err := a.wishlist.Hydrate(ctx); err != nil {
		a.log.Error(ctx, "wishlist hydration failed", "error", err)
	}
	return nil
}
