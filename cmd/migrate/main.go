package main

import (
	"eyeslot/config"
	"eyeslot/helper"
	"eyeslot/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type migrateOptions struct {
	Source string
}

type runner func(cfg *config.Config, source, action string) error

func newRootCommand(run runner) *cobra.Command {
	opts := &migrateOptions{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the eyeslot database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.Source, "source", "file://migrations/postgres", "migration source url")

	actions := []struct {
		action string
		short  string
	}{
		{helper.ActionUp, "Apply every pending migration"},
		{helper.ActionDown, "Roll back the latest migration"},
		{helper.ActionStepUp, "Apply the next pending migration"},
		{helper.ActionDrop, "Roll back every migration"},
	}

	for _, item := range actions {
		action := item.action

		root.AddCommand(&cobra.Command{
			Use:   action,
			Short: item.short,
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return run(config.Get(), opts.Source, action)
			},
		})
	}

	return root
}

func main() {
	logger.InitLogger(config.Get())
	logger.SetLogLevel(config.Get())

	if err := newRootCommand(helper.Runner).Execute(); err != nil {
		log.Error().Err(err).Msg("Migration failed")
		os.Exit(1)
	}
}
