package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/config"
	"github.com/northsidewear/storefront-api/internal/content"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/find-product/main.go <keyword>")
		fmt.Println("Example: go run cmd/find-product/main.go \"linen midi\"")
		os.Exit(1)
	}

	keyword := os.Args[1]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Create content client
	client := content.NewClient(cfg.Content, logger)
	adapter := content.NewAdapter(client, logger)

	fmt.Printf("🔍 Searching for: %s\n\n", keyword)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := adapter.Search(ctx, keyword)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}

	if len(products) == 0 {
		fmt.Println("No products matched.")
		return
	}

	for _, p := range products {
		status := "in stock"
		if p.SoldOut {
			status = "SOLD OUT"
		}
		fmt.Printf("✅ %s\n", p.Name)
		fmt.Printf("   ID: %s\n", p.ID)
		fmt.Printf("   Category: %s\n", p.Category.Name)
		fmt.Printf("   Price: %d", p.Price)
		if p.HasDiscount() {
			fmt.Printf(" (offer: %d)", *p.OfferPrice)
		}
		fmt.Printf("\n   Sizes: %v\n", p.Sizes)
		fmt.Printf("   Status: %s\n\n", status)
	}

	fmt.Printf("Found %d product(s)\n", len(products))
}
