package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"eyeslot"`
		Timezone string `envconfig:"TIMEZONE" default:"Asia/Seoul"`
		BaseURL  string `envconfig:"BASE_URL"`
		// TrustedProxies lists the CIDRs or addresses whose X-Forwarded-For is believed.
		TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"true"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"   default:"Content-Type,Authorization"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"   default:"GET,POST,PUT,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"   default:"*"`
			Enable           bool     `envconfig:"ENABLE"            default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"120"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		SignInLimiter struct {
			RequestsPerSecond float64 `envconfig:"REQUESTS_PER_SECOND" default:"1"`
			Burst             int     `envconfig:"BURST"               default:"5"`
		} `envconfig:"SIGN_IN_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		SessionSecret    string `envconfig:"SESSION_SECRET"`
		SessionExpireMin int    `envconfig:"SESSION_EXPIRE_MIN" default:"43200"`
		CookieName       string `envconfig:"COOKIE_NAME"        default:"eyeslot_session"`
	} `envconfig:"JWT"`

	Auth struct {
		Google struct {
			ClientID     string   `envconfig:"CLIENT_ID"`
			ClientSecret string   `envconfig:"CLIENT_SECRET"`
			RedirectURL  string   `envconfig:"REDIRECT_URL"`
			Scopes       []string `envconfig:"SCOPES"   default:"openid,email,profile"`
			JWKSURL      string   `envconfig:"JWKS_URL" default:"https://www.googleapis.com/oauth2/v3/certs"`
			AuthURL      string   `envconfig:"AUTH_URL"`
			TokenURL     string   `envconfig:"TOKEN_URL"`
		} `envconfig:"GOOGLE"`
		UserSyncRetrySeconds int `envconfig:"USER_SYNC_RETRY_SECONDS" default:"3"`
	} `envconfig:"AUTH"`

	DB struct {
		Postgres struct {
			URL            string `envconfig:"URL"`
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Webhook struct {
		TimeoutSeconds int `envconfig:"TIMEOUT_SECONDS" default:"10"`
	} `envconfig:"WEBHOOK"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		BookingTopic  string   `envconfig:"BOOKING_TOPIC"  default:"eyeslot.bookings"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP" default:"eyeslot"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		conf.warnMissingCredentials()

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}

// warnMissingCredentials logs, but never fails on, absent sign-in secrets.
func (c *Config) warnMissingCredentials() {
	if c.Auth.Google.ClientID == "" || c.Auth.Google.ClientSecret == "" {
		log.Warn().Msg("Google OAuth credentials are not configured, sign-in will fail")
	}

	if c.JWT.SessionSecret == "" {
		log.Warn().Msg("Session secret is not configured, session tokens will be rejected")
	}
}
