package main

import (
	"github.com/dfryer1193/folio/blog/application"
	"github.com/dfryer1193/folio/blog/persistence"
	"github.com/dfryer1193/folio/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds what every subcommand needs once the config is loaded
type app struct {
	cfgFile     string
	cfg         *config.Config
	postService *application.PostService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "folio",
		Short:         "Serve and inspect a directory of Markdown blog posts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(
		newServeCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newSlugsCmd(a),
	)

	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	cfg.SetupLogging()

	repo := persistence.NewDirPostRepository(cfg.Content.Dir)
	markdown := application.NewMarkdownRenderer(cfg.Site.BaseURL)

	a.cfg = cfg
	a.postService = application.NewPostService(repo, markdown, cfg.Content.PageSize)

	log.Debug().Str("contentDir", cfg.Content.Dir).Msg("Configuration loaded")
	return nil
}
