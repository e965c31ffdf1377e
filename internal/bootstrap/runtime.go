// Package bootstrap establishes runtime dependencies shared by the server
// and seeder commands.
package bootstrap

import (
	"fmt"

	"lingua/internal/cache"
	"lingua/internal/config"
	"lingua/internal/database"
	"lingua/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// InitRuntime connects to the database and Redis and optionally seeds demo
// data. The Redis client may be nil if the store is unreachable; the
// application degrades gracefully without it.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		if err := seed.Seed(db, seed.Options{NumUsers: 20, NumTopics: 10}); err != nil {
			return nil, nil, fmt.Errorf("demo data seeding failed: %w", err)
		}
	}

	return db, r, nil
}
