package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hazyhaar/lowerlay/pkg/api"
	"github.com/hazyhaar/lowerlay/pkg/chassis"
	"github.com/hazyhaar/lowerlay/pkg/dict"
	"github.com/hazyhaar/lowerlay/pkg/index"
	"github.com/hazyhaar/lowerlay/pkg/kit"
	"github.com/mark3labs/mcp-go/server"
)

const reloadDebounce = 500 * time.Millisecond

// backends opens what the API serves. The returned closer releases the index.
func backends(cfg config, logger *slog.Logger) (api.Deps, func(), error) {
	reg := dict.NewRegistry(cfg.DictsDir)
	if err := reg.Load(); err != nil {
		return api.Deps{}, nil, err
	}
	logger.Info("dictionaries loaded", "count", reg.DictCount(), "entries", reg.TotalEntries())

	deps := api.Deps{Registry: reg, Logger: logger}
	if cfg.Metrics {
		m := kit.NewMetrics("lowerlay")
		m.GaugeFunc("lowerlay", "dictionaries", "Loaded dictionaries.", func() float64 {
			return float64(reg.DictCount())
		})
		m.GaugeFunc("lowerlay", "dictionary_entries", "Entries across loaded dictionaries.", func() float64 {
			return float64(reg.TotalEntries())
		})
		deps.Metrics = m
	}
	closer := func() {}
	if cfg.IndexDB != "" {
		ix, err := index.Open(cfg.IndexDB)
		if err != nil {
			return api.Deps{}, nil, err
		}
		deps.Index = ix
		closer = func() { ix.Close() }
		logger.Info("search index opened", "path", cfg.IndexDB)
	}
	return deps, closer, nil
}

func newMCPServer(deps api.Deps) *server.MCPServer {
	srv := server.NewMCPServer("lowerlay", version, server.WithToolCapabilities(false))
	api.RegisterMCPTools(srv, deps)
	return srv
}

func cmdServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	logger, closeLog, err := cfg.logger()
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	deps, closeBackends, err := backends(cfg, logger)
	if err != nil {
		return err
	}
	defer closeBackends()

	// SIGINT/SIGTERM: graceful shutdown. SIGHUP and dictionary changes: reload.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reload := func(reason string) {
		if err := deps.Registry.Reload(); err != nil {
			logger.Error("reload failed", "reason", reason, "error", err)
			return
		}
		logger.Info("dictionaries reloaded", "reason", reason,
			"count", deps.Registry.DictCount(), "entries", deps.Registry.TotalEntries())
	}

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	defer signal.Stop(sighup)
	go func() {
		for {
			select {
			case <-sighup:
				reload("SIGHUP")
			case <-ctx.Done():
				return
			}
		}
	}()

	if cfg.Watch {
		w, err := newDictWatcher(cfg.DictsDir)
		if err != nil {
			return fmt.Errorf("watch %s: %w", cfg.DictsDir, err)
		}
		go runDictWatcher(ctx, w, reloadDebounce, logger, func() { reload("fsnotify") })
	}

	if cfg.TLS {
		return serveChassis(ctx, cfg, deps, logger)
	}
	return serveHTTP(ctx, cfg, deps, logger)
}

func serveHTTP(ctx context.Context, cfg config, deps api.Deps, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("lowerlay listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func serveChassis(ctx context.Context, cfg config, deps api.Deps, logger *slog.Logger) error {
	srv, err := chassis.New(chassis.Config{
		Addr:      cfg.Addr,
		CertFile:  cfg.CertFile,
		KeyFile:   cfg.KeyFile,
		Handler:   api.NewRouter(deps),
		MCPServer: newMCPServer(deps),
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	if err := srv.Start(ctx); err != nil {
		return err
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

// cmdMCP serves the MCP tools over stdio, for clients that spawn lowerlay
// as a subprocess.
func cmdMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	logger, closeLog, err := cfg.logger()
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	deps, closeBackends, err := backends(cfg, logger)
	if err != nil {
		return err
	}
	defer closeBackends()

	return server.ServeStdio(newMCPServer(deps))
}
