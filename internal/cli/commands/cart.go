package commands

import (
	"ShopFront/internal/cli/model"
	"ShopFront/internal/cli/repo"
	"ShopFront/internal/cli/service"
	"ShopFront/internal/config"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Команды корзины работают с серверной корзиной при наличии токена,
// иначе с анонимной локальной корзиной (id = item_id).

type cartCmd struct{}

func (cartCmd) Name() string        { return "cart" }
func (cartCmd) Description() string { return "Show the cart (server when logged in, local otherwise)" }
func (cartCmd) Usage() string       { return "cart" }

func (cartCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	shop := shopClient(cfg)
	if shop.LoggedIn() {
		cart, err := shop.Cart(ctx)
		if err != nil {
			return err
		}
		printServerCart(cart)
		return nil
	}
	return withLocalCart(cfg, func(r repo.LocalCartRepository) error {
		lines, err := service.NewLocalCartService(r).List(ctx)
		if err != nil {
			return err
		}
		printLocalCart(lines, catalogIndex(ctx, shop))
		return nil
	})
}

func printServerCart(cart model.Cart) {
	if len(cart.Items) == 0 {
		fmt.Fprintln(Out, "Cart is empty")
		return
	}
	for _, ci := range cart.Items {
		name := fmt.Sprintf("item %d", ci.ItemID)
		if ci.Item != nil {
			name = ci.Item.Name
		}
		fmt.Fprintf(Out, "- [%d] %-12s x%d  %10s\n", ci.ID, name, ci.Quantity, ci.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(Out, "Lines: %d  Total: %s\n", cart.Count, cart.Total.StringFixed(2))
}

// catalogIndex - товары каталога по id; недоступный сервер даёт пустой индекс
func catalogIndex(ctx context.Context, shop *service.ShopService) map[int64]model.Item {
	idx := map[int64]model.Item{}
	items, err := shop.Items(ctx, service.ItemQuery{})
	if err != nil {
		return idx
	}
	for _, it := range items {
		idx[it.ID] = it
	}
	return idx
}

func printLocalCart(lines []model.LocalCartLine, catalog map[int64]model.Item) {
	if len(lines) == 0 {
		fmt.Fprintln(Out, "Local cart is empty")
		return
	}
	total := decimal.Zero
	for _, l := range lines {
		it, ok := catalog[l.ItemID]
		if !ok {
			fmt.Fprintf(Out, "- [%d] %-12s x%d\n", l.ItemID, "?", l.Quantity)
			continue
		}
		sub := it.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		total = total.Add(sub)
		fmt.Fprintf(Out, "- [%d] %-12s x%d  %10s\n", l.ItemID, it.Name, l.Quantity, sub.StringFixed(2))
	}
	fmt.Fprintf(Out, "Lines: %d  Total: %s (local, not logged in)\n", len(lines), total.StringFixed(2))
}

type cartAddCmd struct{}

func (cartAddCmd) Name() string        { return "cart-add" }
func (cartAddCmd) Description() string { return "Add an item to the cart (quantity defaults to 1)" }
func (cartAddCmd) Usage() string       { return "cart-add <item_id> [quantity]" }

func (cartAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	itemID, err := parseID(args[0])
	if err != nil {
		return err
	}
	qty := 1
	if len(args) == 2 {
		if qty, err = parseQty(args[1]); err != nil {
			return err
		}
	}

	shop := shopClient(cfg)
	if shop.LoggedIn() {
		ci, err := shop.AddToCart(ctx, itemID, qty)
		if err != nil {
			return err
		}
		if ci != nil {
			fmt.Fprintf(Out, "Item added to cart: line %d, quantity %d\n", ci.ID, ci.Quantity)
		}
		return nil
	}
	return withLocalCart(cfg, func(r repo.LocalCartRepository) error {
		l, err := service.NewLocalCartService(r).Add(ctx, itemID, qty)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Item added to local cart: item %d, quantity %d\n", l.ItemID, l.Quantity)
		return nil
	})
}

type cartUpdateCmd struct{}

func (cartUpdateCmd) Name() string { return "cart-update" }
func (cartUpdateCmd) Description() string {
	return "Set quantity of a cart line (<= 0 removes it)"
}
func (cartUpdateCmd) Usage() string { return "cart-update <id> <quantity>" }

func (cartUpdateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	qty, err := parseQty(args[1])
	if err != nil {
		return err
	}

	shop := shopClient(cfg)
	if shop.LoggedIn() {
		ci, err := shop.UpdateCartItem(ctx, id, qty)
		if err != nil {
			return err
		}
		if ci == nil {
			fmt.Fprintln(Out, "Cart line removed")
		} else {
			fmt.Fprintf(Out, "Cart updated: line %d, quantity %d\n", ci.ID, ci.Quantity)
		}
		return nil
	}
	return withLocalCart(cfg, func(r repo.LocalCartRepository) error {
		removed, err := service.NewLocalCartService(r).Update(ctx, id, qty)
		if err != nil {
			return err
		}
		if removed {
			fmt.Fprintln(Out, "Item removed from local cart")
		} else {
			fmt.Fprintf(Out, "Local cart updated: item %d, quantity %d\n", id, qty)
		}
		return nil
	})
}

type cartRemoveCmd struct{}

func (cartRemoveCmd) Name() string        { return "cart-remove" }
func (cartRemoveCmd) Description() string { return "Remove a cart line" }
func (cartRemoveCmd) Usage() string       { return "cart-remove <id>" }

func (cartRemoveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	shop := shopClient(cfg)
	if shop.LoggedIn() {
		if err := shop.RemoveCartItem(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Item removed from cart")
		return nil
	}
	return withLocalCart(cfg, func(r repo.LocalCartRepository) error {
		if err := service.NewLocalCartService(r).Remove(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Item removed from local cart")
		return nil
	})
}

func init() {
	RegisterCmd(cartCmd{})
	RegisterCmd(cartAddCmd{})
	RegisterCmd(cartUpdateCmd{})
	RegisterCmd(cartRemoveCmd{})
}
