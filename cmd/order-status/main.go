// Looks up one order by number and email from the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/wassup1201/Simple-Agent/internal/adapters/shopify"
	"github.com/wassup1201/Simple-Agent/internal/app/usecases"
	"github.com/wassup1201/Simple-Agent/internal/config"
	infrahttp "github.com/wassup1201/Simple-Agent/internal/infra/http"
	"github.com/wassup1201/Simple-Agent/internal/logging"
)

func main() {
	orderNumber := flag.String("order", "", "order number, with or without #")
	email := flag.String("email", "", "email used on the order")
	flag.Parse()

	cfg, err := config.LoadForOrderLookup()
	if err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.NewLogger(cfg.Log, cfg.TelegramBot)
	if err != nil {
		fmt.Printf("logger error %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Shopify.Timeout)
	defer cancel()

	admin := shopify.NewAdminClient(cfg.Shopify, infrahttp.NewClient(cfg.Shopify.Timeout), logger)
	lookup := usecases.NewOrderStatus(shopify.NewOrders(admin))

	result, err := lookup.Lookup(ctx, *orderNumber, *email)
	if err != nil {
		logger.LogError("order lookup failed", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	var out any = result.Order
	if !result.Found {
		out = map[string]any{"found": false, "note": usecases.OrderNotFoundNote}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}
