// test/helpers/helpers.go
package helpers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/pkg/config"
)

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "gamedash-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Backend: config.BackendConfig{
			BaseURL:           "http://localhost:8000",
			RequestTimeout:    5 * time.Second,
			RequestsPerSecond: 1000,
			Burst:             100,
		},
		Sync: config.SyncConfig{
			PollInterval: 10 * time.Millisecond,
			MaxDuration:  5 * time.Second,
			DefaultLimit: 40,
			ScheduleCron: "@every 6h",
		},
		Pagination: config.PaginationConfig{
			PageSize:      10,
			FetchPageSize: 100,
		},
		Redis: config.RedisConfig{
			Enabled:  true,
			Host:     "localhost",
			Port:     "6379",
			TTL:      time.Minute,
			PoolSize: 10,
		},
		Asynq: config.AsynqConfig{
			RedisAddr:   "localhost:6379",
			RedisDB:     1,
			Concurrency: 1,
			Queues:      map[string]int{"default": 1},
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 1000,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
			RequestIDHeader:   "X-Request-ID",
		},
		Server: config.ServerConfig{
			Host:            "localhost",
			Port:            "8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			GracefulTimeout: 5 * time.Second,
		},
	}
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// Dec parses a decimal literal and returns a pointer to it
func Dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// CreateTestGame creates a catalog game with every optional field set
func CreateTestGame(overrides ...func(*domain.Game)) domain.Game {
	updated := domain.NewTimestamp(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	game := domain.Game{
		ID:            1,
		Slug:          "the-witcher-3",
		Name:          "The Witcher 3",
		Released:      Ptr("2015-05-19"),
		Genre:         Ptr("RPG"),
		Rating:        Ptr(4.66),
		RatingsCount:  Ptr(6000),
		Metacritic:    Ptr(92),
		Platforms:     Ptr("PC, PlayStation 4, Xbox One"),
		PriceCheap:    Dec("9.99"),
		PriceExternal: Dec("39.99"),
		FetchedAt:     updated,
		UpdatedAt:     updated,
	}

	for _, override := range overrides {
		override(&game)
	}

	return game
}

// CreateTestGames creates count games with distinct ids, names and prices
func CreateTestGames(count int) []domain.Game {
	genres := []string{"RPG", "Action", "Strategy", "Indie"}
	games := make([]domain.Game, count)
	for i := range games {
		id := int64(i + 1)
		games[i] = CreateTestGame(func(g *domain.Game) {
			g.ID = id
			g.Slug = "game-" + decimal.NewFromInt(id).String()
			g.Name = "Game " + decimal.NewFromInt(id).String()
			g.Genre = Ptr(genres[i%len(genres)])
			g.Rating = Ptr(float64(i%5) + 0.5)
			g.PriceCheap = Dec(decimal.NewFromInt(id).Add(decimal.RequireFromString("0.99")).String())
		})
	}
	return games
}

// CreateTestSale creates a store listing of the default test game
func CreateTestSale(overrides ...func(*domain.Sale)) domain.Sale {
	created := domain.NewTimestamp(time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC))
	sale := domain.Sale{
		ID:            1,
		GameID:        1,
		OurPrice:      decimal.RequireFromString("14.99"),
		GameName:      Ptr("The Witcher 3"),
		GameGenre:     Ptr("RPG"),
		PriceCheap:    Dec("9.99"),
		PriceExternal: Dec("39.99"),
		CreatedAt:     created,
		UpdatedAt:     created,
	}

	for _, override := range overrides {
		override(&sale)
	}

	return sale
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
