package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/pccollector/internal/app"
	"github.com/llehouerou/pccollector/internal/catalog"
	"github.com/llehouerou/pccollector/internal/config"
	"github.com/llehouerou/pccollector/internal/errmsg"
	"github.com/llehouerou/pccollector/internal/logging"
	"github.com/llehouerou/pccollector/internal/state"
)

var (
	// configFile is set by the --config flag.
	configFile string

	cfg *config.Config
	log *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pccollector",
	Short: "Track a photocard collection in the terminal",
	Long: `pccollector tracks which photocards you own and which you want,
one catalog category at a time. Without a subcommand it starts the TUI.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ~/.config/pccollector/config.toml then ./config.toml)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(checkCmd)
}

// setup loads the configuration and the file logger for every command.
func setup(*cobra.Command, []string) error {
	var err error
	if configFile != "" {
		cfg, err = config.LoadFrom(config.ExpandPath(configFile))
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	log, err = logging.New(cfg.GetLogLevel(), logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	return nil
}

// openState opens the preference database named by the configuration.
func openState() (*state.Manager, error) {
	path, err := cfg.DatabasePath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := state.Open(path, log)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return st, nil
}

func runTUI(*cobra.Command, []string) error {
	st, err := openState()
	if err != nil {
		return err
	}
	defer st.Close()

	// A catalog error is shown full screen by the model.
	cat, catErr := catalog.LoadDir(cfg.DataDir, cfg.GetCategories())
	if catErr != nil {
		log.Error("catalog rejected", zap.String("dir", cfg.DataDir), zap.Error(catErr))
	}

	m := app.New(app.Options{
		Config:     cfg,
		Catalog:    cat,
		CatalogErr: catErr,
		State:      st,
		Logger:     log,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	log.Info("exit")
	return nil
}
