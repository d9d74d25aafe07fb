package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/querydev/devsearch/pkg/cache"
	"github.com/querydev/devsearch/pkg/mcpserver"
	"github.com/querydev/devsearch/pkg/platforms"
	"github.com/querydev/devsearch/pkg/tools"
)

// Information to find out exactly which commit the binary was built from.
// These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const serverName = "devsearch"
const serverVersion = "0.1.0"

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s (%s, built %s)\n", serverName, serverVersion, Commit, BuildTime)
		return
	}

	// A missing .env file is fine, env vars may come from the launcher.
	_ = godotenv.Load()

	// Stdout carries the MCP transport, so all logging goes to stderr.
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
	}

	store := cache.NewMemory()
	janitor := cron.New()
	_, err = janitor.AddFunc("@every 1m", func() {
		if removed := store.Prune(); removed > 0 {
			log.Debug().Int("removed", removed).Msg("pruned expired cache entries")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to schedule cache janitor")
	}
	janitor.Start()
	// Stop returns a context that is done once running jobs finish.
	defer func() { <-janitor.Stop().Done() }()

	client := platforms.NewClient(cfg, store, log)

	registry := tools.NewRegistry()
	for _, tool := range tools.SearchTools(client) {
		registry.Register(tool)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := mcpserver.New(serverName, serverVersion, registry, log)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func loadConfig(path string) (*platforms.Config, error) {
	cfg := &platforms.Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	return platforms.ApplyEnvDefaults(cfg), nil
}
