package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// InsecureDefaultSecret is the out-of-the-box signing secret. Deployments must
// override SECRET_KEY; app startup refuses to run outside local env without it.
const InsecureDefaultSecret = "supersecretkeychangeme"

type Config struct {
	AppName      string `env:"APP_NAME" envDefault:"diploma-api"`
	AppEnv       string `env:"APP_ENV" envDefault:"local"`
	HTTPHost     string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	HTTPPort     string `env:"HTTP_PORT" envDefault:"8080"`
	HTTPBasePath string `env:"HTTP_BASE_PATH" envDefault:"/api/v1"`

	DBConnectionString string `env:"DB_CONNECTION_STRING,notEmpty"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`

	SecretKey  string        `env:"SECRET_KEY" envDefault:"supersecretkeychangeme"`
	AccessTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	RefreshTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`

	NATSURL                string `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	NATSDocumentSubject    string `env:"NATS_SUBJECT_DOCUMENT" envDefault:"documents.registered"`
	NATSCheckResultSubject string `env:"NATS_SUBJECT_CHECK_RESULT" envDefault:"documents.check-result"`
}

// OAuthEnabled reports whether Google login is configured. An empty client id
// or secret disables the OAuth endpoints without failing startup.
func (c *Config) OAuthEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
