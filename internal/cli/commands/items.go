package commands

import (
	"ShopFront/internal/cli/service"
	"ShopFront/internal/config"
	"context"
	"flag"
	"fmt"
	"io"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "List catalog items" }
func (itemsCmd) Usage() string {
	return "items [--category c] [--min p] [--max p] [--search s]"
}

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var q service.ItemQuery
	fs.StringVar(&q.Category, "category", "", "category")
	fs.StringVar(&q.MinPrice, "min", "", "minimum price")
	fs.StringVar(&q.MaxPrice, "max", "", "maximum price")
	fs.StringVar(&q.Search, "search", "", "substring of name or description")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	items, err := shopClient(cfg).Items(ctx, q)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(Out, "No items found")
		return nil
	}
	for _, it := range items {
		fmt.Fprintf(Out, "- #%d  %-12s %10s  %-12s stock=%d\n", it.ID, it.Name, it.Price.StringFixed(2), it.Category, it.Stock)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(items))
	return nil
}

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "List catalog categories" }
func (categoriesCmd) Usage() string       { return "categories" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	cats, err := shopClient(cfg).Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		fmt.Fprintln(Out, c)
	}
	return nil
}

func init() {
	RegisterCmd(itemsCmd{})
	RegisterCmd(categoriesCmd{})
}
