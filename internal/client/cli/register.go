package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/marketplac/internal/common"
)

// Register creates an account. Registration is decoupled from login: on
// success the user is asked to log in explicitly.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, name, email, password); err != nil {
		if errors.Is(err, common.ErrAuth) {
			fmt.Println("Registration unsuccessful")
		} else {
			a.log.Error(ctx, "registration failed", "error", err)
		}
		return err
	}

	fmt.Println("Account created, you can now log in")
	return nil
}
