// Command storefront runs the app-startup flow headlessly: hydrate the
// session from device-local storage, pick the start route, fetch boot data,
// and print a summary of the resulting store state.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"storefront/internal/actions"
	"storefront/internal/api"
	"storefront/internal/app"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/localstore"
	"storefront/internal/store"
)

// localeSource reads the persisted UI language for the Accept-Language
// header.
type localeSource struct {
	local *localstore.Store
	def   string
}

func (l localeSource) Language() string {
	return l.local.Language(l.def)
}

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.LUTC)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Fatalf("create data dir: %v", err)
	}
	local, err := localstore.Open(cfg.LocalDBPath(), logger)
	if err != nil {
		logger.Fatalf("open local storage: %v", err)
	}
	defer local.Close()

	st := store.New()
	st.Subscribe(func(slice string) {
		logger.Printf("slice updated: %s", slice)
	})

	route := app.Bootstrap(local, st, logger)
	logger.Printf("start route: %s", route)

	client := api.New(cfg.APIBaseURL, &http.Client{}, st.Auth, localeSource{local: local, def: cfg.DefaultLanguage}, logger)
	acts := actions.New(client, st, local, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := acts.LoadCategories(ctx); err != nil {
		logger.Printf("load categories: %v", err)
	}
	if err := acts.LoadRates(ctx); err != nil {
		logger.Printf("load rates: %v", err)
	}
	if route == app.RouteHome {
		if err := acts.LoadCart(ctx); err != nil {
			logger.Printf("load cart: %v", err)
		}
		if err := acts.LoadFavorite(ctx); err != nil {
			logger.Printf("load favorite: %v", err)
		}
	}

	printSummary(st, cfg)
}

func printSummary(st *store.Store, cfg config.Config) {
	roots := st.Categories.Roots()
	fmt.Printf("language: %s, theme: %s\n", cfg.DefaultLanguage, cfg.DefaultTheme)
	fmt.Printf("categories: %d roots\n", len(roots))
	for _, c := range roots {
		fmt.Printf("  %s (%d children)\n", c.Name, len(c.Children))
	}

	items := st.Cart.Items()
	if len(items) > 0 {
		breakdown := checkout.Total(checkout.Input{
			Items:       items,
			UserType:    st.Auth.UserType(),
			Commissions: st.Rates.Commissions(),
		})
		fmt.Printf("cart: %d lines, subtotal %.2f, total %.2f\n", len(items), breakdown.Subtotal, breakdown.Total)
	}
	if err := st.Categories.Err(); err != "" {
		fmt.Printf("categories error: %s\n", err)
	}
}
