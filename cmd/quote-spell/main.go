package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spellcraft/internal/config"
	rulebook "github.com/KirkDiggler/spellcraft/internal/domain/rulebook/components"
	"github.com/KirkDiggler/spellcraft/internal/domain/spell"
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
	"github.com/KirkDiggler/spellcraft/internal/repositories/components"
	"github.com/KirkDiggler/spellcraft/internal/services"
	"github.com/KirkDiggler/spellcraft/internal/services/casting"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		input      casting.QuoteInput
		ritualStep int
	)
	flag.StringVar((*string)(&input.Selection.DeliveryMethod), "delivery", string(rulebook.Touch), "delivery method key")
	flag.StringVar((*string)(&input.Selection.TargetShape), "shape", string(rulebook.Target), "target shape key")
	flag.Float64Var(&input.Selection.Range, "range", 0, "range in feet")
	flag.IntVar(&input.Selection.DurationRounds, "duration", 0, "duration in rounds")
	flag.IntVar(&input.Selection.TargetCount, "targets", 1, "number of targets")
	flag.Float64Var(&input.Selection.Volume, "volume", 0, "area of effect volume")
	flag.IntVar(&input.Selection.CasterLevel, "level", 1, "caster level")
	flag.IntVar(&ritualStep, "ritual", -1, "cast as a ritual at this timeframe step (0-8)")
	flag.Float64Var(&input.Caster.PowerLimit, "power-limit", 0, "caster power limit (0 for none)")
	flag.BoolVar(&input.Caster.InCombat, "in-combat", false, "caster is in combat")
	flag.BoolVar(&input.Caster.UnderDuress, "duress", false, "caster is under duress")
	list := flag.Bool("list", false, "list the available components and exit")
	stdin := flag.Bool("stdin", false, "read quote inputs as JSON lines from stdin")
	flag.Parse()

	if ritualStep >= 0 {
		input.Selection.Ritual = true
		input.Selection.RitualStep = ritualStep
	}

	registry := prometheus.NewRegistry()
	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr, registry)
	}

	repo, closeRepo := componentRepository(cfg)
	defer closeRepo()

	provider := services.NewProvider(&services.ProviderConfig{
		ComponentRepository: repo,
		Registerer:          registry,
	})
	svc := provider.CastingService
	ctx := context.Background()

	switch {
	case *list:
		printOptions(ctx, svc)
	case *stdin:
		if err := quoteLines(ctx, svc, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("Failed to quote input: %v", err)
		}
	default:
		printQuote(ctx, svc, &input)
	}
}

// componentRepository picks Redis when configured, otherwise an in-memory
// repository holding the configured table file. A nil repository makes the
// provider fall back to the built-in table.
func componentRepository(cfg *config.Config) (components.Repository, func()) {
	noop := func() {}

	if cfg.Redis.Enabled() {
		opts, err := cfg.Redis.Options()
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		client := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
		defer cancel()

		if pingErr := client.Ping(ctx).Err(); pingErr != nil {
			log.Printf("Failed to connect to Redis: %v", pingErr)
			log.Println("Falling back to local component table")
			_ = client.Close()
		} else {
			log.Println("Using Redis component table")
			return components.NewRedis(client), func() {
				if err := client.Close(); err != nil {
					log.Printf("Error closing Redis connection: %v", err)
				}
			}
		}
	}

	if cfg.Components.TablePath == "" {
		return nil, noop
	}

	table, err := rulebook.LoadFile(cfg.Components.TablePath)
	if err != nil {
		log.Fatalf("Failed to load component table: %v", err)
	}
	repo := components.NewInMemoryRepository()
	if err := components.SaveTable(context.Background(), repo, table); err != nil {
		log.Fatalf("Component table is invalid: %v", err)
	}
	log.Printf("Using component table %s", cfg.Components.TablePath)
	return repo, noop
}

func serveMetrics(addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	log.Printf("Serving metrics on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("Metrics server stopped: %v", err)
	}
}

func printOptions(ctx context.Context, svc casting.Service) {
	for _, slot := range []spell.Slot{spell.SlotDeliveryMethod, spell.SlotTargetShape} {
		options, err := svc.ListOptions(ctx, slot)
		if err != nil {
			log.Fatalf("Failed to list %s options: %v", slot, err)
		}

		fmt.Printf("%s:\n", slot)
		for _, option := range options {
			fmt.Printf("  %-26s %s (power %g, complexity %g)\n",
				option.Key, option.Name, option.BasePower, option.BaseComplexity)
		}
	}
}

func printQuote(ctx context.Context, svc casting.Service, input *casting.QuoteInput) {
	quote, err := svc.Quote(ctx, input)
	if err != nil {
		fmt.Printf("refused: %v\n", err)
		if meta := spellerr.GetMeta(err); len(meta) > 0 {
			fmt.Printf("  code=%s meta=%v\n", spellerr.GetCode(err), meta)
		}
		os.Exit(1)
	}

	fmt.Printf("Quote %s\n", quote.ID)
	for _, stage := range quote.Stages() {
		fmt.Printf("  %-12s power %-10.4f complexity %-10.4f time %s\n",
			stage.Stage, stage.Power, stage.Complexity, stage.Time)
	}
}

// quoteLines answers one JSON quote input per line with one JSON result per line
func quoteLines(ctx context.Context, svc casting.Service, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		var input casting.QuoteInput
		if err := json.Unmarshal(scanner.Bytes(), &input); err != nil {
			log.Printf("Skipping malformed input: %v", err)
			continue
		}

		var result lineResult
		quote, err := svc.Quote(ctx, &input)
		if err != nil {
			result.Error = err.Error()
			result.Code = spellerr.GetCode(err)
			result.Meta = spellerr.GetMeta(err)
		} else {
			result.Quote = quote
		}

		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	return scanner.Err()
}

type lineResult struct {
	Quote *casting.Quote `json:"quote,omitempty"`
	Error string         `json:"error,omitempty"`
	Code  spellerr.Code  `json:"code,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
}
