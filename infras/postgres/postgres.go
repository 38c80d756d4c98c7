package postgres

//nolint:revive
import (
	"eyeslot/config"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection holds the process-wide database handles. Read and Write share one
// pool when a single DB_POSTGRES_URL is configured.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	if pg.URL != "" {
		conn := CreatePostgresConnection("primary", pg.URL, pg.MaxRetry, pg.RetryWaitTime)

		return &Connection{Read: conn, Write: conn}
	}

	return &Connection{
		Read:  CreatePostgresConnection("read", ReadDSN(config), pg.MaxRetry, pg.RetryWaitTime),
		Write: CreatePostgresConnection("write", WriteDSN(config), pg.MaxRetry, pg.RetryWaitTime),
	}
}

// Close releases both pools.
func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Write, c.Read} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed closing database connection")
		}

		if c.Read == c.Write {
			return
		}
	}
}

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// WriteDSN builds the connection URL of the primary database.
func WriteDSN(config *config.Config) string {
	if config.DB.Postgres.URL != "" {
		return config.DB.Postgres.URL
	}

	write := config.DB.Postgres.Write

	return buildDSN(write.Username, write.Password, write.Host, write.Port, getDBName(config, write.Name), write.SSLMode)
}

// ReadDSN builds the connection URL of the read replica.
func ReadDSN(config *config.Config) string {
	if config.DB.Postgres.URL != "" {
		return config.DB.Postgres.URL
	}

	read := config.DB.Postgres.Read

	return buildDSN(read.Username, read.Password, read.Host, read.Port, getDBName(config, read.Name), read.SSLMode)
}

func buildDSN(username, password, host, port, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "require"
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(username, password),
		Host:     net.JoinHostPort(host, port),
		Path:     dbName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}

	return dsn.String()
}

// CreatePostgresConnection connects with a fixed number of attempts and fails the process afterwards.
func CreatePostgresConnection(name, dsn string, maxRetry, waitTime int) *sqlx.DB {
	var lastErr error

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			log.Info().Str("name", name).Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		lastErr = err

		log.Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Err(fmt.Errorf("connect %s database: %w", name, lastErr)).Msg("Giving up on database connection")

	return nil
}
