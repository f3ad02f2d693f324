package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Game     GameConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"colorbet"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

// URL renders the postgres connection string used by both the pool and the
// migration runner.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// GameConfig holds the round lifecycle timings and betting rules. All
// deadline checks in the scheduler compare wall-clock deltas against stored
// timestamps, so the timings survive process pauses and restarts.
type GameConfig struct {
	BettingWindow     time.Duration   `env:"GAME_BETTING_WINDOW" envDefault:"25s"`
	ResolveDelay      time.Duration   `env:"GAME_RESOLVE_DELAY" envDefault:"3s"`
	NextRoundDelay    time.Duration   `env:"GAME_NEXT_ROUND_DELAY" envDefault:"2s"`
	TickInterval      time.Duration   `env:"GAME_TICK_INTERVAL" envDefault:"1s"`
	MinBet            decimal.Decimal `env:"GAME_MIN_BET" envDefault:"10"`
	PayoutMultiplier  decimal.Decimal `env:"GAME_PAYOUT_MULTIPLIER" envDefault:"2"`
	InitialBalance    decimal.Decimal `env:"GAME_INITIAL_BALANCE" envDefault:"1000.00"`
	RecentRoundsLimit int             `env:"GAME_RECENT_ROUNDS_LIMIT" envDefault:"10"`
	DemoUsername      string          `env:"GAME_DEMO_USERNAME" envDefault:"Player123"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
