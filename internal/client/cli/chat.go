package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/marketplac/internal/common"
)

// ShowChat prints the chat log in arrival order.
func (a *App) ShowChat(ctx context.Context) error {
	messages := a.channel.Messages()
	if len(messages) == 0 {
		fmt.Println("No messages yet")
		return nil
	}

	for _, m := range messages {
		fmt.Printf("%s: %s\n", m.Sender, m.Message)
	}
	return nil
}

// Say sends a message as the current identity. A restored session has a
// credential but no display name, so chatting requires a fresh login.
func (a *App) Say(ctx context.Context, message string) error {
	sender := ""
	if u := a.session.Identity(); u != nil {
		sender = u.Name
	}

	if err := a.channel.Send(message, sender); err != nil {
		if errors.Is(err, common.ErrChannel) && sender == "" {
			fmt.Println("Log in to chat")
		} else {
			a.log.Error(ctx, "chat send failed", "error", err)
		}
		return err
	}
	return nil
}
