// Package demo hosts the terminal demo harness: a tcell screen showing a
// soft keyboard whose keys are driven by the gesture dispatcher, with the
// text the keyboard types rendered above it. The demo is the reference
// wiring of the input core; hosts embedding the core replace this package.
package demo

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/touchkey/internal/action"
	"github.com/dshills/touchkey/internal/behavior"
	"github.com/dshills/touchkey/internal/callout"
	"github.com/dshills/touchkey/internal/config"
	"github.com/dshills/touchkey/internal/geom"
	"github.com/dshills/touchkey/internal/gesture"
	"github.com/dshills/touchkey/internal/keyboard"
	"github.com/dshills/touchkey/internal/layout"
	"github.com/dshills/touchkey/internal/logging"
	"github.com/dshills/touchkey/internal/plugin/lua"
)

// Options configure the demo.
type Options struct {
	// ConfigPath is an optional settings file (TOML or YAML).
	ConfigPath string

	// LayoutPaths are optional JSON input-set definition files to
	// register on top of the built-in layouts.
	LayoutPaths []string

	// ScriptPaths are optional Lua scripts registering custom actions.
	ScriptPaths []string

	// Locale overrides the settings locale when non-empty.
	Locale string

	// LogLevel overrides the settings log level when non-empty.
	LogLevel string
}

// App is the demo application.
type App struct {
	mu sync.Mutex

	screen   tcell.Screen
	settings config.Settings
	notifier *config.Notifier
	watcher  *config.Watcher

	registry      *layout.Registry
	alternates    *callout.StandardAlternates
	inputCallout  *callout.InputCallout
	actionCallout *callout.ActionCallout
	repeat        *gesture.RepeatTimer
	policy        *behavior.StandardPolicy
	engine        *lua.Engine

	log *slog.Logger

	locale       string
	keyboardType keyboard.Type
	text         string

	keys       []*key
	active     *key
	lastPoint  geom.Point
	wasPressed bool

	longPressTimer *time.Timer
	repeatTimer    *time.Timer
	repeatStop     chan struct{}

	quit     chan struct{}
	quitOnce sync.Once
}

// New builds the demo from options. The terminal screen is not taken
// over until Run.
func New(opts Options) (*App, error) {
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Locale != "" {
		settings.Locale = opts.Locale
	}
	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}

	logging.Init(parseLevel(settings.LogLevel), os.Stderr)

	a := &App{
		settings:      settings,
		notifier:      config.NewNotifier(),
		registry:      layout.StandardRegistry(),
		alternates:    callout.NewStandardAlternates(),
		inputCallout:  callout.NewInputCallout(settings.MinimumVisibleDuration.Std()),
		actionCallout: callout.NewActionCallout(pickerConfig()),
		repeat:        gesture.NewRepeatTimer(),
		log:           logging.With("component", "demo"),
		locale:        settings.Locale,
		keyboardType:  keyboard.Alphabetic(keyboard.CaseLowercased),
		quit:          make(chan struct{}),
	}
	a.policy = behavior.NewStandardPolicy(behavior.Config{
		DoubleTapThreshold:   settings.DoubleTapThreshold.Std(),
		EndSentenceThreshold: settings.EndSentenceThreshold.Std(),
		WordDeleteDelay:      settings.WordDeleteDelay.Std(),
	}, a.repeat)

	for _, path := range opts.LayoutPaths {
		if err := a.registerLayout(path); err != nil {
			return nil, err
		}
	}

	if len(opts.ScriptPaths) > 0 {
		a.engine = lua.NewEngine()
		for _, path := range opts.ScriptPaths {
			if err := a.engine.LoadFile(path); err != nil {
				a.engine.Close()
				return nil, err
			}
		}
	}

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(a.reloadSettings, config.DefaultDebounce)
		if err != nil {
			return nil, err
		}
		if err := w.Watch(opts.ConfigPath); err != nil {
			w.Close()
			return nil, err
		}
		a.watcher = w
	}

	a.notifier.Subscribe(func(c config.Change) {
		a.log.Info("settings changed", "type", c.Type.String(), "source", c.Source)
	})

	return a, nil
}

// registerLayout loads a JSON input-set file and registers it as the
// alphabetic layout for its locale, inheriting numeric and symbolic sets
// from the locale's existing provider.
func (a *App) registerLayout(path string) error {
	locale, set, err := config.LoadInputSet(path)
	if err != nil {
		return err
	}
	base := a.registry.For(locale)
	a.registry.Register(layout.StaticProvider{
		Lang:       locale,
		Alphabetic: set,
		Numeric:    base.NumericInputSet(),
		Symbolic:   base.SymbolicInputSet(),
	})
	a.log.Info("registered layout", "locale", locale, "path", path)
	return nil
}

// reloadSettings re-reads the settings file after the watcher reports a
// change, re-tunes the policy thresholds, and publishes one ChangeSet
// per moved setting followed by the reload event.
func (a *App) reloadSettings(path string) {
	settings, err := config.Load(path)
	if err != nil {
		a.log.Warn("reload failed", "path", path, "error", err)
		return
	}

	a.mu.Lock()
	old := a.settings
	a.settings = settings
	a.locale = settings.Locale
	a.policy = behavior.NewStandardPolicy(behavior.Config{
		DoubleTapThreshold:   settings.DoubleTapThreshold.Std(),
		EndSentenceThreshold: settings.EndSentenceThreshold.Std(),
		WordDeleteDelay:      settings.WordDeleteDelay.Std(),
	}, a.repeat)
	a.mu.Unlock()

	for _, c := range old.Diff(settings) {
		c.Source = "watcher"
		if c.Path == "log_level" {
			logging.SetLevel(parseLevel(settings.LogLevel))
		}
		a.notifier.Notify(c)
	}
	a.notifier.NotifyReload(settings, "watcher")
	a.rebuildKeys()
	a.requestRedraw()
}

// Run takes over the terminal and processes events until the user quits.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	a.mu.Lock()
	a.screen = screen
	a.mu.Unlock()

	a.rebuildKeys()
	a.draw()

	for {
		select {
		case <-a.quit:
			return nil
		default:
		}

		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				a.Shutdown()
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventResize:
			screen.Sync()
			a.rebuildKeys()
		}
		a.draw()
	}
}

// Shutdown releases background resources. It is safe to call more than
// once and from any goroutine.
func (a *App) Shutdown() {
	a.quitOnce.Do(func() {
		close(a.quit)
		a.stopHoldTimers()
		if a.watcher != nil {
			a.watcher.Close()
		}
		if a.engine != nil {
			a.engine.Close()
		}
		a.mu.Lock()
		screen := a.screen
		a.mu.Unlock()
		if screen != nil {
			// Wake the event loop so it observes the quit channel.
			screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	})
}

// handleMouse maps terminal mouse events onto press, drag, and release
// samples for the key under the pointer.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := geom.Point{X: float64(x), Y: float64(y)}
	pressed := ev.Buttons()&tcell.Button1 != 0

	a.mu.Lock()
	was := a.wasPressed
	a.wasPressed = pressed
	prev := a.lastPoint
	a.lastPoint = p
	active := a.active
	a.mu.Unlock()

	switch {
	case pressed && !was:
		k := a.keyAt(p)
		if k == nil {
			return
		}
		a.mu.Lock()
		a.active = k
		a.mu.Unlock()
		k.dispatcher.Press(p)
		a.startHoldTimers(k, p)

	case pressed && was && active != nil:
		if p != prev {
			active.dispatcher.Drag(prev, p)
		}

	case !pressed && was && active != nil:
		a.stopHoldTimers()
		if active.frame.Contains(p) {
			active.dispatcher.ReleaseInside(p)
		} else {
			active.dispatcher.ReleaseOutside(p)
		}
		active.dispatcher.End()
		a.mu.Lock()
		a.active = nil
		a.mu.Unlock()
	}
}

// startHoldTimers arms the long-press timer and, for repeatable keys,
// the repeat cycle.
func (a *App) startHoldTimers(k *key, p geom.Point) {
	a.mu.Lock()
	defer a.mu.Unlock()

	longDelay := a.settings.LongPressDelay.Std()
	repeatDelay := a.settings.RepeatDelay.Std()
	interval := a.settings.RepeatInterval.Std()

	a.longPressTimer = time.AfterFunc(longDelay, func() {
		k.dispatcher.LongPress(p)
		a.requestRedraw()
	})

	if k.action.Kind != action.KindBackspace && k.action.Kind != action.KindSpace {
		return
	}
	stop := make(chan struct{})
	a.repeatStop = stop
	a.repeatTimer = time.AfterFunc(repeatDelay, func() {
		a.repeat.Start()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				k.dispatcher.RepeatTick()
				a.requestRedraw()
			case <-stop:
				return
			}
		}
	})
}

// stopHoldTimers cancels pending long-press and repeat work.
func (a *App) stopHoldTimers() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.longPressTimer != nil {
		a.longPressTimer.Stop()
		a.longPressTimer = nil
	}
	if a.repeatTimer != nil {
		a.repeatTimer.Stop()
		a.repeatTimer = nil
	}
	if a.repeatStop != nil {
		close(a.repeatStop)
		a.repeatStop = nil
	}
	a.repeat.Stop()
}

// requestRedraw wakes the event loop from a timer goroutine.
func (a *App) requestRedraw() {
	a.mu.Lock()
	screen := a.screen
	a.mu.Unlock()
	if screen != nil {
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// Text returns the document typed so far.
func (a *App) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.text
}

// context snapshots the keyboard and text state for the policy.
func (a *App) context() keyboard.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.contextLocked()
}

func (a *App) contextLocked() keyboard.Snapshot {
	return keyboard.Snapshot{
		Type:          a.keyboardType,
		PreferredType: keyboard.Alphabetic(keyboard.CaseLowercased),
		Lang:          a.locale,
		DeviceClass:   keyboard.DevicePhone,
		TextBefore:    a.text,
	}
}

func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
