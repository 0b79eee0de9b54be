package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nhle/trade-alerts/internal/app"
	"github.com/nhle/trade-alerts/internal/logging"
	"github.com/nhle/trade-alerts/internal/model"
)

func main() {
	flags := pflag.NewFlagSet("tradealerts", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", model.DefaultConfigPath(), "path to the config file")
	flags.StringP("feed", "f", "", "alert feed fixture (yaml, json or toml)")
	flags.Int("toast-duration", 0, "toast lifetime in milliseconds")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Bool("save-config", false, "write the effective config back to --config and exit")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	bind(v, flags, "feed.path", "feed")
	bind(v, flags, "display.toast_duration_ms", "toast-duration")
	bind(v, flags, "log.level", "log-level")

	cfg, err := model.LoadConfigWith(v, *configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if save, _ := flags.GetBool("save-config"); save {
		if err := model.SaveConfig(*configPath, cfg); err != nil {
			log.Fatalf("save config: %v", err)
		}
		fmt.Printf("config written to %s\n", *configPath)
		return
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	logger.Info().
		Str("config", *configPath).
		Str("feed", cfg.Feed.Path).
		Msg("starting")

	p := tea.NewProgram(app.New(app.Options{
		Config:     cfg,
		ConfigPath: *configPath,
		Logger:     logger,
		Clock:      clockwork.NewRealClock(),
	}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		fmt.Printf("error: %v\n", err)
	}
}

// bind maps a flag onto a config key. Only flags the user sets override
// the file.
func bind(v *viper.Viper, flags *pflag.FlagSet, key, name string) {
	if f := flags.Lookup(name); f != nil && f.Changed {
		_ = v.BindPFlag(key, f)
	}
}
