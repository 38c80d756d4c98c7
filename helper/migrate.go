package helper

//nolint:revive
import (
	"errors"
	"eyeslot/config"
	"eyeslot/infras/postgres"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"

	defaultSource = "file://migrations/postgres"
)

// MigrationURL points golang-migrate at the primary database and its bookkeeping table.
func MigrationURL(config *config.Config) (string, error) {
	parsed, err := url.Parse(postgres.WriteDSN(config))
	if err != nil {
		return "", fmt.Errorf("invalid database url: %w", err)
	}

	if config.DB.Postgres.MigrationTable != "" {
		query := parsed.Query()
		query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
		parsed.RawQuery = query.Encode()
	}

	return parsed.String(), nil
}

func getConnection(config *config.Config, source string) (*migrate.Migrate, error) {
	connectionString, err := MigrationURL(config)
	if err != nil {
		return nil, err
	}

	if source == "" {
		source = defaultSource
	}

	mig, err := migrate.New(source, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, source, action string) error {
	switch action {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop:
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	mig, err := getConnection(config, source)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration finished")

	return nil
}

func Up(config *config.Config, source string) error {
	return Runner(config, source, ActionUp)
}

func StepUp(config *config.Config, source string) error {
	return Runner(config, source, ActionStepUp)
}

func Down(config *config.Config, source string) error {
	return Runner(config, source, ActionDown)
}

func Drop(config *config.Config, source string) error {
	return Runner(config, source, ActionDrop)
}
