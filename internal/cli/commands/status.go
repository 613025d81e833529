package commands

import (
	"ShopFront/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check whether the stored token is accepted by the server" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	sess, err := shopClient(cfg).Session(ctx)
	if err != nil {
		return err
	}
	if !sess.LoggedIn || sess.UserID == nil {
		fmt.Fprintln(Out, "Status: anonymous")
		return nil
	}
	name, _ := authService(cfg).CurrentUser()
	fmt.Fprintf(Out, "Status: logged in as %s (id %d)\n", name, *sess.UserID)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
