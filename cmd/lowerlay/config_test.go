package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
addr: ":9000"
dicts_dir: /srv/dicts
index_db: /srv/index.db
tls: true
watch: false
log_level: debug
log_file: /var/log/lowerlay/lowerlay.log
metrics: false
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := config{
		Addr:     ":9000",
		DictsDir: "/srv/dicts",
		IndexDB:  "/srv/index.db",
		TLS:      true,
		Watch:    false,
		LogLevel: "debug",
		LogFile:  "/var/log/lowerlay/lowerlay.log",
		Metrics:  false,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if l, _ := cfg.level(); l != slog.LevelDebug {
		t.Errorf("level = %v, want debug", l)
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Addr != ":8420" || !cfg.Watch {
		t.Errorf("empty file should keep defaults, got %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"unknown key", "adress: :80\n", "adress"},
		{"bad level", "log_level: loud\n", "log_level"},
		{"cert without key", "tls: true\ncert_file: c.pem\n", "cert_file and key_file"},
		{"bad yaml", "addr: [\n", "parse config"},
	}
	for _, tt := range tests {
		_, err := loadConfig(writeConfig(t, tt.content))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %v, want mention of %q", tt.name, err, tt.want)
		}
	}
}

func TestLoggerLogFile(t *testing.T) {
	cfg := defaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "lowerlay.log")
	logger, closeLog, err := cfg.logger()
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	logger.Info("dictionaries loaded", "count", 2)
	closeLog()

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "dictionaries loaded") {
		t.Errorf("log file = %q, want the record", data)
	}
}
