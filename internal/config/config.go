package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Worker   WorkerConfig
	Wallet   WalletConfig
	Auth     AuthConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	PrettyLogs      bool          `env:"SERVER_PRETTY_LOGS" envDefault:"true"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"arena"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	MigrateOnStart  bool          `env:"DB_MIGRATE_ON_START" envDefault:"true"`
}
type WorkerConfig struct {
	MailPurgeInterval time.Duration `env:"WORKER_MAIL_PURGE_INTERVAL" envDefault:"10m"`
	ListenRetryDelay  time.Duration `env:"WORKER_LISTEN_RETRY_DELAY" envDefault:"5s"`
}

// WalletConfig holds the money rules. Amounts are in rupees.
type WalletConfig struct {
	MinWithdrawal   decimal.Decimal `env:"WALLET_MIN_WITHDRAWAL" envDefault:"100"`
	MaxBalance      decimal.Decimal `env:"WALLET_MAX_BALANCE" envDefault:"50000"`
	ReferralBonus   decimal.Decimal `env:"WALLET_REFERRAL_BONUS" envDefault:"5"`
	MaxDepositProof int             `env:"WALLET_MAX_DEPOSIT_PROOF_BYTES" envDefault:"1048576"`
	MaxPayoutQR     int             `env:"WALLET_MAX_PAYOUT_QR_BYTES" envDefault:"1048576"`
	MaxResultProof  int             `env:"WALLET_MAX_RESULT_PROOF_BYTES" envDefault:"2097152"`
	MailTTL         time.Duration   `env:"WALLET_MAIL_TTL" envDefault:"24h"`
}
type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET" envDefault:"change-me"`
	Issuer    string `env:"AUTH_ISSUER"`
}

// Load reads the environment, after applying a .env file when one is present.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
