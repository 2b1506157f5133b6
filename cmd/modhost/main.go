package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/modkit/internal/config"
	"github.com/zeusync/modkit/internal/core/observability/log"
	"github.com/zeusync/modkit/internal/injector"
	"github.com/zeusync/modkit/internal/mods/sample"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML or HCL config file")
	ticks := flag.Int("ticks", 60, "simulation ticks to run")
	flag.Parse()

	if err := run(*configPath, *ticks); err != nil {
		fmt.Fprintln(os.Stderr, "modhost:", err)
		os.Exit(1)
	}
}

func run(configPath string, ticks int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := &headlessHost{log: log.NewNop()}
	rt, err := injector.InitializeRuntime(cfg, host, sample.Mods())
	if err != nil {
		return err
	}
	defer func() { _ = rt.Logger.Sync() }()
	host.log = rt.Logger.Named("host")

	res, err := rt.Loader.Load(ctx, cfg.EnabledModules())
	if err != nil {
		return err
	}
	for name, cause := range res.Aborted {
		rt.Logger.Warn("mod disabled", log.String("mod", name), log.Error(cause))
	}

	sim := newSimulation(rt)
	if err = sim.restore(cfg.SaveFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		rt.Logger.Warn("save not restored", log.String("file", cfg.SaveFile), log.Error(err))
	}
	if sim.empty() {
		sim.equipStarterKit()
	}

	for tick := 0; tick < ticks; tick++ {
		if ctx.Err() != nil {
			break
		}
		sim.tick()
	}
	rt.Logger.Info("simulation finished",
		log.Int("ticks", ticks),
		log.Int("defense", sim.player.Defense),
		log.Int("life", sim.player.StatLife),
		log.String("set_bonus", sim.player.SetBonus),
	)

	return sim.save(cfg.SaveFile)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cfg := config.Default()
	for _, name := range []string{sample.ExampleModName, sample.TweaksName} {
		cfg.Modules = append(cfg.Modules, config.ModuleConfig{Name: name})
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}
