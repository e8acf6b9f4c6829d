package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load with no config file: %v", err)
	}
	if cfg.General.Currency != "EUR" || cfg.General.Locale != "fi-FI" {
		t.Errorf("defaults = %+v", cfg.General)
	}
	if cfg.Daemon.Addr != "127.0.0.1:8791" || cfg.Daemon.IntervalSec != 60 {
		t.Errorf("daemon defaults = %+v", cfg.Daemon)
	}
	if Exists() {
		t.Error("Exists() = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	in := DefaultConfig()
	in.General.Currency = "USD"
	in.General.Locale = "en-US"
	in.General.DBPath = "/tmp/custom.db"
	in.Notifications.ExtraApps = []string{"com.example.bank"}
	in.Daemon.IntervalSec = 30

	if err := Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.General != in.General {
		t.Errorf("general = %+v, want %+v", got.General, in.General)
	}
	if len(got.Notifications.ExtraApps) != 1 || got.Notifications.ExtraApps[0] != "com.example.bank" {
		t.Errorf("extra apps = %v", got.Notifications.ExtraApps)
	}
	if got.Daemon.IntervalSec != 30 {
		t.Errorf("interval = %d, want 30", got.Daemon.IntervalSec)
	}
}

func TestDBPath(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)

	cfg := DefaultConfig()
	if got, want := DBPath(cfg), filepath.Join(dataDir, "perdiem", "ledger.db"); got != want {
		t.Errorf("DBPath = %q, want %q", got, want)
	}

	cfg.General.DBPath = "/elsewhere/ledger.db"
	if got := DBPath(cfg); got != "/elsewhere/ledger.db" {
		t.Errorf("DBPath override = %q", got)
	}
}
