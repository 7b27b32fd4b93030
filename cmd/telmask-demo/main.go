package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/iw2rmb/telmask"
	"github.com/iw2rmb/telmask/country"
	"github.com/iw2rmb/telmask/internal/config"
	"github.com/iw2rmb/telmask/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags()
	showVersion := fs.BoolP("version", "v", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if *showVersion {
		fmt.Println("telmask-demo", telmask.VersionTag())
		return nil
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	reg := country.Builtin(log)
	if cfg.CountriesFile != "" {
		if err := reg.LoadFile(cfg.CountriesFile); err != nil {
			return err
		}
	}

	m, err := newModel(cfg, reg, log)
	if err != nil {
		return err
	}
	log.Info("starting demo",
		zap.String("user_agent", telmask.UserAgent()),
		zap.String("country", cfg.Country),
		zap.Bool("trunk_prefix", cfg.TrunkPrefix),
	)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	_, err = p.Run()
	return err
}
