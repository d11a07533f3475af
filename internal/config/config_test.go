package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("turn_delay_ms: 120\nlog_level: debug\n"))
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.TurnDelayMs = 120
	want.LogLevel = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.TurnDelay() != 120*time.Millisecond {
		t.Errorf("TurnDelay = %v", cfg.TurnDelay())
	}
	if cfg.Level() != logrus.DebugLevel {
		t.Errorf("Level = %v", cfg.Level())
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	for _, in := range []string{
		"turn_delay_ms: -5",
		"log_level: loud",
		"turn_delay_ms: [1, 2]",
	} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Error("empty path should give the defaults")
	}

	path := filepath.Join(t.TempDir(), "cubeplay.yaml")
	if err := os.WriteFile(path, []byte("show_net: false\nstart_paused: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ShowNet || cfg.StartPaused {
		t.Errorf("file settings not applied: %+v", cfg)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
