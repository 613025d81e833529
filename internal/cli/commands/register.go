package commands

import (
	"ShopFront/internal/config"
	"context"
	"fmt"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account, store the token and merge the local cart" }
func (registerCmd) Usage() string       { return "register <username> <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	u, err := authService(cfg).Register(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered as %s (id %d)\n", u.Username, u.ID)
	mergeAfterLogin(ctx, cfg)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
