package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spellcraft/internal/config"
	rulebook "github.com/KirkDiggler/spellcraft/internal/domain/rulebook/components"
	"github.com/KirkDiggler/spellcraft/internal/repositories/components"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	tablePath := flag.String("table", cfg.Components.TablePath, "YAML component table (default: built-in table)")
	dryRun := flag.Bool("dry-run", false, "validate and print the table without writing it")
	flag.Parse()

	table := rulebook.Defaults()
	if *tablePath != "" {
		table, err = rulebook.LoadFile(*tablePath)
		if err != nil {
			log.Fatalf("Failed to load component table: %v", err)
		}
		log.Printf("Loaded %d components from %s", len(table.Options), *tablePath)
	} else {
		log.Println("Using built-in component table")
	}

	if err := table.Validate(); err != nil {
		log.Fatalf("Component table is invalid: %v", err)
	}

	if *dryRun {
		data, encodeErr := table.EncodeYAML()
		if encodeErr != nil {
			log.Fatalf("Failed to encode table: %v", encodeErr)
		}
		fmt.Print(string(data))
		return
	}

	if !cfg.Redis.Enabled() {
		log.Fatal("REDIS_URL is required to seed components")
	}

	opts, err := cfg.Redis.Options()
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		log.Printf("Failed to connect to Redis: %v", pingErr)
		os.Exit(1)
	}

	repo := components.NewRedis(client)
	if err := components.SaveTable(context.Background(), repo, table); err != nil {
		log.Printf("Failed to seed components: %v", err)
		os.Exit(1)
	}

	log.Printf("Seeded %d components", len(table.Options))
}
