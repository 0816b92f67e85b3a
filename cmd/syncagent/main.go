package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"caca_precos/internal/client/api"
	"caca_precos/internal/client/localstore"
	"caca_precos/internal/client/sync"
	"caca_precos/internal/domain/entities"

	_ "github.com/joho/godotenv/autoload"
)

// syncagent is the capture client's background half: it owns the local
// SQLite queue and drains it against the price capture API.
//
// Usage:
//
//	syncagent                                            run the drain loop
//	syncagent enqueue <productId> <storeId> <cents> <currency>
//	                                                     queue a capture locally and exit
//
// Env vars:
//   - API_BASE_URL            (default: http://localhost:8080)
//   - SYNC_DB_PATH            (default: caca_precos.db)
//   - SYNC_INTERVAL           seconds between drain passes (default: 60)
//   - STORE_REFRESH_COOLDOWN  duration, e.g. "5m" (default: 5m)
//
// SIGUSR1 triggers an immediate drain pass.
func main() {
	store, err := localstore.Open(getenvDefault("SYNC_DB_PATH", "caca_precos.db"))
	if err != nil {
		log.Fatalf("[syncagent] failed to open local store: %v", err)
	}
	defer store.Close()

	if len(os.Args) > 1 && os.Args[1] == "enqueue" {
		runEnqueue(store, os.Args[2:])
		return
	}

	client := api.NewClient(getenvDefault("API_BASE_URL", "http://localhost:8080"))
	coordinator := sync.NewCoordinator(store, client)

	if v := os.Getenv("STORE_REFRESH_COOLDOWN"); v != "" {
		cooldown, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("[syncagent] ignoring invalid STORE_REFRESH_COOLDOWN=%q", v)
		} else {
			coordinator.SetStoreRefreshCooldown(cooldown)
		}
	}

	interval := time.Duration(getenvInt("SYNC_INTERVAL", 60)) * time.Second

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	trigger := make(chan os.Signal, 1)
	signal.Notify(trigger, syscall.SIGUSR1)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runSync(ctx, coordinator)
	for {
		select {
		case <-ctx.Done():
			log.Println("[syncagent] shutting down")
			return
		case <-ticker.C:
			runSync(ctx, coordinator)
		case <-trigger:
			log.Println("[syncagent] manual sync triggered")
			runSync(ctx, coordinator)
		}
	}
}

func runSync(ctx context.Context, coordinator *sync.Coordinator) {
	res, err := coordinator.Sync(ctx)
	if err != nil {
		log.Printf("[syncagent] sync pass failed: %v", err)
		return
	}
	if res.Skipped {
		log.Printf("[syncagent] sync already running, %d pending", res.Remaining)
		return
	}
	log.Printf("[syncagent] sync pass done: synced=%d dropped=%d failed=%d remaining=%d",
		res.Synced, res.Dropped, res.Failed, res.Remaining)
}

func runEnqueue(store *localstore.Store, args []string) {
	if len(args) != 4 {
		log.Fatal("[syncagent] usage: syncagent enqueue <productId> <storeId> <priceCents> <currency>")
	}
	priceCents, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil || priceCents <= 0 {
		log.Fatalf("[syncagent] invalid priceCents %q", args[2])
	}

	ctx := context.Background()
	deviceID, err := store.DeviceID(ctx)
	if err != nil {
		log.Fatalf("[syncagent] failed to resolve device id: %v", err)
	}

	now := time.Now().UTC()
	sub := entities.PendingSubmission{
		IdempotencyKey: localstore.NewIdempotencyKey(args[0], args[1], now),
		ProductID:      args[0],
		StoreID:        args[1],
		PriceCents:     priceCents,
		Currency:       args[3],
		CapturedAt:     now,
		SubmittedBy:    deviceID,
		CreatedAt:      now,
	}
	if err := store.Enqueue(ctx, sub); err != nil {
		log.Fatalf("[syncagent] failed to enqueue: %v", err)
	}
	log.Printf("[syncagent] queued %s", sub.IdempotencyKey)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("[syncagent] ignoring invalid %s=%q", key, v)
	}
	return def
}
