package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jrick/logrotate/rotator"
	"gopkg.in/yaml.v3"
)

type config struct {
	Addr     string `yaml:"addr"`
	DictsDir string `yaml:"dicts_dir"`
	IndexDB  string `yaml:"index_db"`
	TLS      bool   `yaml:"tls"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
	Watch    bool   `yaml:"watch"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	Metrics  bool   `yaml:"metrics"`
}

// logRollKB is the size at which log_file is rolled; logRolls old files are kept.
const (
	logRollKB = 10 * 1024
	logRolls  = 3
)

func defaultConfig() config {
	return config{
		Addr:     ":8420",
		DictsDir: "dicts",
		Watch:    true,
		LogLevel: "info",
		Metrics:  true,
	}
}

// loadConfig reads the YAML file at path over the defaults. A missing file
// yields the defaults; unknown keys are rejected.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := cfg.level(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.TLS && (cfg.CertFile == "") != (cfg.KeyFile == "") {
		return cfg, fmt.Errorf("config %s: cert_file and key_file must be set together", path)
	}
	return cfg, nil
}

func (c config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// logger returns the process logger. Records go to stderr and, when
// log_file is set, to a size-rolled copy of that file as well. The returned
// closer flushes and closes the file.
func (c config) logger() (*slog.Logger, func(), error) {
	l, _ := c.level()
	var w io.Writer = os.Stderr
	closer := func() {}
	if c.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o700); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		r, err := rotator.New(c.LogFile, logRollKB, false, logRolls)
		if err != nil {
			return nil, nil, fmt.Errorf("create log rotator: %w", err)
		}
		w = io.MultiWriter(os.Stderr, r)
		closer = func() { r.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), closer, nil
}
