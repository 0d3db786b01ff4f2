// Package config loads and watches the keyboard core's tunable settings:
// gesture timing thresholds, callout geometry, release tolerance, and
// per-locale input-set definitions. Settings files are TOML or YAML;
// input sets are JSON. Changes are broadcast through a Notifier so live
// components can re-tune without restarting.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from strings like "500ms".
type Duration time.Duration

// Std returns the standard library duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", string(b), err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler; yaml.v3 does not consult
// TextUnmarshaler on its own.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Settings are the tunable parameters of the input core.
type Settings struct {
	// Locale is the active layout locale.
	Locale string `toml:"locale" yaml:"locale"`

	// DoubleTapThreshold is the caps-lock double-tap window.
	DoubleTapThreshold Duration `toml:"double_tap_threshold" yaml:"double_tap_threshold"`

	// EndSentenceThreshold is the sentence auto-close window.
	EndSentenceThreshold Duration `toml:"end_sentence_threshold" yaml:"end_sentence_threshold"`

	// WordDeleteDelay is the hold time before backspace deletes words.
	WordDeleteDelay Duration `toml:"word_delete_delay" yaml:"word_delete_delay"`

	// LongPressDelay is the hold time before a long press fires.
	LongPressDelay Duration `toml:"long_press_delay" yaml:"long_press_delay"`

	// RepeatDelay is the hold time before repeat ticks start.
	RepeatDelay Duration `toml:"repeat_delay" yaml:"repeat_delay"`

	// RepeatInterval is the time between repeat ticks.
	RepeatInterval Duration `toml:"repeat_interval" yaml:"repeat_interval"`

	// MinimumVisibleDuration is the minimum input-preview visibility.
	MinimumVisibleDuration Duration `toml:"minimum_visible_duration" yaml:"minimum_visible_duration"`

	// ReleaseTolerance is the fraction of button size by which the
	// frame expands for outside-release detection.
	ReleaseTolerance float64 `toml:"release_tolerance" yaml:"release_tolerance"`

	// LogLevel is the slog level name: debug, info, warn, or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// DefaultSettings returns the stock settings.
func DefaultSettings() Settings {
	return Settings{
		Locale:                 "en",
		DoubleTapThreshold:     Duration(500 * time.Millisecond),
		EndSentenceThreshold:   Duration(3 * time.Second),
		WordDeleteDelay:        Duration(3 * time.Second),
		LongPressDelay:         Duration(500 * time.Millisecond),
		RepeatDelay:            Duration(500 * time.Millisecond),
		RepeatInterval:         Duration(100 * time.Millisecond),
		MinimumVisibleDuration: Duration(50 * time.Millisecond),
		ReleaseTolerance:       0.75,
		LogLevel:               "info",
	}
}

// Diff returns one ChangeSet per field that differs between s and next,
// with Path set to the field's settings-file key. A reloader emits these
// so path subscribers see which settings actually moved.
func (s Settings) Diff(next Settings) []Change {
	var changes []Change
	add := func(path string, old, new any) {
		changes = append(changes, Change{Path: path, Type: ChangeSet, OldValue: old, NewValue: new})
	}

	if s.Locale != next.Locale {
		add("locale", s.Locale, next.Locale)
	}
	if s.DoubleTapThreshold != next.DoubleTapThreshold {
		add("double_tap_threshold", s.DoubleTapThreshold.Std(), next.DoubleTapThreshold.Std())
	}
	if s.EndSentenceThreshold != next.EndSentenceThreshold {
		add("end_sentence_threshold", s.EndSentenceThreshold.Std(), next.EndSentenceThreshold.Std())
	}
	if s.WordDeleteDelay != next.WordDeleteDelay {
		add("word_delete_delay", s.WordDeleteDelay.Std(), next.WordDeleteDelay.Std())
	}
	if s.LongPressDelay != next.LongPressDelay {
		add("long_press_delay", s.LongPressDelay.Std(), next.LongPressDelay.Std())
	}
	if s.RepeatDelay != next.RepeatDelay {
		add("repeat_delay", s.RepeatDelay.Std(), next.RepeatDelay.Std())
	}
	if s.RepeatInterval != next.RepeatInterval {
		add("repeat_interval", s.RepeatInterval.Std(), next.RepeatInterval.Std())
	}
	if s.MinimumVisibleDuration != next.MinimumVisibleDuration {
		add("minimum_visible_duration", s.MinimumVisibleDuration.Std(), next.MinimumVisibleDuration.Std())
	}
	if s.ReleaseTolerance != next.ReleaseTolerance {
		add("release_tolerance", s.ReleaseTolerance, next.ReleaseTolerance)
	}
	if s.LogLevel != next.LogLevel {
		add("log_level", s.LogLevel, next.LogLevel)
	}
	return changes
}

// Validate returns an error describing the first invalid setting.
func (s Settings) Validate() error {
	if s.DoubleTapThreshold <= 0 {
		return fmt.Errorf("double_tap_threshold must be positive, got %v", s.DoubleTapThreshold.Std())
	}
	if s.EndSentenceThreshold <= 0 {
		return fmt.Errorf("end_sentence_threshold must be positive, got %v", s.EndSentenceThreshold.Std())
	}
	if s.ReleaseTolerance < 0 {
		return fmt.Errorf("release_tolerance must not be negative, got %v", s.ReleaseTolerance)
	}
	if s.RepeatInterval <= 0 {
		return fmt.Errorf("repeat_interval must be positive, got %v", s.RepeatInterval.Std())
	}
	return nil
}
