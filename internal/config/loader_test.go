package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseTOML(t *testing.T) {
	data := []byte(`
locale = "de"
double_tap_threshold = "400ms"
release_tolerance = 0.5
log_level = "debug"
`)
	s, err := ParseTOML(data)
	if err != nil {
		t.Fatalf("ParseTOML: %v", err)
	}
	if s.Locale != "de" {
		t.Errorf("Locale = %q, want de", s.Locale)
	}
	if got := s.DoubleTapThreshold.Std(); got != 400*time.Millisecond {
		t.Errorf("DoubleTapThreshold = %v, want 400ms", got)
	}
	if s.ReleaseTolerance != 0.5 {
		t.Errorf("ReleaseTolerance = %v, want 0.5", s.ReleaseTolerance)
	}
	// Unset fields keep their defaults.
	if got := s.EndSentenceThreshold.Std(); got != 3*time.Second {
		t.Errorf("EndSentenceThreshold = %v, want default 3s", got)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
locale: sv
repeat_interval: 80ms
`)
	s, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if s.Locale != "sv" {
		t.Errorf("Locale = %q, want sv", s.Locale)
	}
	if got := s.RepeatInterval.Std(); got != 80*time.Millisecond {
		t.Errorf("RepeatInterval = %v, want 80ms", got)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"bad duration", `double_tap_threshold = "fast"`},
		{"negative tolerance", `release_tolerance = -1.0`},
		{"zero repeat interval", `repeat_interval = "0s"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTOML([]byte(tt.toml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("missing file gave %+v, want defaults", s)
	}
}

func TestLoadChoosesParserByExtension(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(tomlPath, []byte(`locale = "de"`), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(yamlPath, []byte(`locale: sv`), 0o644); err != nil {
		t.Fatal(err)
	}

	if s, err := Load(tomlPath); err != nil || s.Locale != "de" {
		t.Errorf("toml load = %q, %v", s.Locale, err)
	}
	if s, err := Load(yamlPath); err != nil || s.Locale != "sv" {
		t.Errorf("yaml load = %q, %v", s.Locale, err)
	}
}

func TestSettingsDiff(t *testing.T) {
	old := DefaultSettings()
	next := old
	next.Locale = "de"
	next.DoubleTapThreshold = Duration(400 * time.Millisecond)
	next.LogLevel = "debug"

	changes := old.Diff(next)
	if len(changes) != 3 {
		t.Fatalf("Diff produced %d changes, want 3: %+v", len(changes), changes)
	}

	byPath := make(map[string]Change, len(changes))
	for _, c := range changes {
		if c.Type != ChangeSet {
			t.Errorf("change %q has type %v, want set", c.Path, c.Type)
		}
		byPath[c.Path] = c
	}

	if c, ok := byPath["locale"]; !ok || c.OldValue != "en" || c.NewValue != "de" {
		t.Errorf("locale change = %+v", c)
	}
	if c, ok := byPath["double_tap_threshold"]; !ok || c.NewValue != 400*time.Millisecond {
		t.Errorf("double_tap_threshold change = %+v", c)
	}
	if c, ok := byPath["log_level"]; !ok || c.NewValue != "debug" {
		t.Errorf("log_level change = %+v", c)
	}

	if got := old.Diff(old); len(got) != 0 {
		t.Errorf("Diff of identical settings = %+v, want none", got)
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1.5s")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if d.Std() != 1500*time.Millisecond {
		t.Errorf("Std = %v, want 1.5s", d.Std())
	}

	out, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(out) != "1.5s" {
		t.Errorf("MarshalText = %q, want 1.5s", out)
	}
}
