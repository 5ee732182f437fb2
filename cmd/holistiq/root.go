package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tbourn/holistiq/internal/config"
	"github.com/tbourn/holistiq/internal/sysutil"
)

// app carries what every subcommand needs once PersistentPreRunE has run.
type app struct {
	envFile   string
	cfg       config.Config
	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "holistiq",
		Short: "Wellness toolkit server",
		Long: `Holistiq serves the wellness pages and JSON API: BMI and activity
tracking, mental health assessments, health reports, record exports and a
chat assistant.

QUICK START:

  $ holistiq serve                       # listen on $PORT (5000)
  $ holistiq export --format pdf         # write health_report_<ts>.pdf
  $ holistiq export --format json -o -   # print the JSON snapshot

CONFIGURATION:

  Settings come from the environment; a .env file is loaded first when
  present. STORE_DRIVER selects mongo (default), sqlite or none.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.load()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment (empty to skip)")

	root.AddCommand(newServeCmd(a), newExportCmd(a), newVersionCmd())
	return root
}

// load reads .env and the configuration, then installs the global logger.
func (a *app) load() error {
	if a.envFile != "" {
		// Real environment variables win over the file.
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", a.envFile, err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg
	a.logCloser = sysutil.SetupLogger(sysutil.LogOptions{
		Level:     cfg.Log.Level,
		Pretty:    cfg.Log.Pretty,
		File:      cfg.Log.File,
		MaxSizeMB: cfg.Log.MaxSizeMB,
	})
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "holistiq", version)
		},
	}
}
