package behavior

import (
	"strings"
	"sync"
	"time"

	"github.com/dshills/touchkey/internal/action"
	"github.com/dshills/touchkey/internal/keyboard"
)

// Config configures the standard policy's timing thresholds.
type Config struct {
	// DoubleTapThreshold is the maximum gap between shift taps for a
	// caps-lock double-tap.
	DoubleTapThreshold time.Duration

	// EndSentenceThreshold is the maximum gap between space taps for
	// sentence auto-closing.
	EndSentenceThreshold time.Duration

	// WordDeleteDelay is how long backspace must repeat continuously
	// before deletion escalates from characters to words.
	WordDeleteDelay time.Duration
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		DoubleTapThreshold:   500 * time.Millisecond,
		EndSentenceThreshold: 3 * time.Second,
		WordDeleteDelay:      3 * time.Second,
	}
}

// StandardPolicy is the stock Policy. It keeps the last shift and space
// tap timestamps and reads the shared repeat timer for backspace
// escalation.
type StandardPolicy struct {
	mu     sync.Mutex
	config Config
	repeat RepeatTimer

	lastShiftCheck time.Time
	lastSpaceTap   time.Time

	now func() time.Time
}

// NewStandardPolicy creates a policy with the given thresholds and
// repeat timer. The timer may be nil, in which case backspace never
// escalates past characters.
func NewStandardPolicy(config Config, repeat RepeatTimer) *StandardPolicy {
	if config.DoubleTapThreshold <= 0 {
		config.DoubleTapThreshold = DefaultConfig().DoubleTapThreshold
	}
	if config.EndSentenceThreshold <= 0 {
		config.EndSentenceThreshold = DefaultConfig().EndSentenceThreshold
	}
	if config.WordDeleteDelay <= 0 {
		config.WordDeleteDelay = DefaultConfig().WordDeleteDelay
	}
	return &StandardPolicy{
		config: config,
		repeat: repeat,
		now:    time.Now,
	}
}

// SetNowFunc overrides the clock, for tests.
func (p *StandardPolicy) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		p.now = fn
	}
}

// PreferredKeyboardType implements Policy. The type only changes on a
// definitive signal: a detected caps-lock double-tap, an alternate
// quotation character, or a restoring condition; ordinary character
// gestures leave the current type untouched.
func (p *StandardPolicy) PreferredKeyboardType(ctx keyboard.Context, g action.Gesture, a action.Action) keyboard.Type {
	if p.ShouldSwitchToCapsLock(ctx, a) {
		return keyboard.Alphabetic(keyboard.CaseCapsLocked)
	}
	if isAlternateQuotationDelimiter(a, ctx.Locale()) {
		return keyboard.Alphabetic(keyboard.CaseLowercased)
	}
	if p.ShouldSwitchToPreferredKeyboardType(ctx, g, a) {
		return ctx.PreferredKeyboardType()
	}
	return ctx.KeyboardType()
}

// ShouldSwitchToCapsLock implements Policy. A caps-lock double-tap is a
// shift action on an alphabetic keyboard within the double-tap window
// of the previous shift check. On detection the internal clock is
// rewound one second so a third rapid tap cannot chain into another
// double-tap.
func (p *StandardPolicy) ShouldSwitchToCapsLock(ctx keyboard.Context, a action.Action) bool {
	if !a.IsShift() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	isDouble := ctx.KeyboardType().IsAlphabetic() &&
		!p.lastShiftCheck.IsZero() &&
		now.Sub(p.lastShiftCheck) >= 0 &&
		now.Sub(p.lastShiftCheck) < p.config.DoubleTapThreshold

	if isDouble {
		p.lastShiftCheck = now.Add(-time.Second)
	} else {
		p.lastShiftCheck = now
	}
	return isDouble
}

// ShouldEndSentence implements Policy. True only on a space release
// when the text before the cursor already ends with two spaces, the
// cursor is at a new word but not a new sentence, and the previous
// space tap was within the end-of-sentence window. The last-space
// timestamp is re-stamped win or lose, so consecutive qualifying taps
// compound.
func (p *StandardPolicy) ShouldEndSentence(ctx keyboard.Context, g action.Gesture, a action.Action) bool {
	if g != action.GestureRelease || a.Kind != action.KindSpace {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	withinWindow := !p.lastSpaceTap.IsZero() &&
		now.Sub(p.lastSpaceTap) >= 0 &&
		now.Sub(p.lastSpaceTap) < p.config.EndSentenceThreshold
	p.lastSpaceTap = now

	return withinWindow &&
		ctx.IsCursorAtNewWord() &&
		!ctx.IsCursorAtNewSentence() &&
		strings.HasSuffix(ctx.TextBeforeCursor(), "  ")
}

// ShouldSwitchToPreferredKeyboardType implements Policy.
func (p *StandardPolicy) ShouldSwitchToPreferredKeyboardType(ctx keyboard.Context, g action.Gesture, a action.Action) bool {
	switch a.Kind {
	case action.KindShift:
		return true
	case action.KindBackspace:
		return ctx.KeyboardType() != ctx.PreferredKeyboardType()
	case action.KindKeyboardType:
		// Only a switch whose target casing is still undecided hands
		// control back to the preferred type.
		return a.Keyboard.IsAlphabetic() && a.Keyboard.Case == keyboard.CaseAuto
	default:
		return g == action.GestureRelease && ctx.KeyboardType() != ctx.PreferredKeyboardType()
	}
}

// BackspaceRange implements Policy. Deletion escalates to words once
// the repeat gesture has run for the word-delete delay; a missing timer
// or zero duration stays at characters.
func (p *StandardPolicy) BackspaceRange() DeleteRange {
	if p.repeat == nil {
		return RangeCharacter
	}
	elapsed := p.repeat.Elapsed()
	if elapsed > p.config.WordDeleteDelay {
		return RangeWord
	}
	return RangeCharacter
}

// alternateQuotationDelimiters maps a language code to its alternate
// quotation begin/end delimiters. Typing one of these on a non-letter
// keyboard snaps back to lowercase alphabetic.
var alternateQuotationDelimiters = map[string][2]string{
	"en": {"‘", "’"},
	"de": {"‚", "‘"},
	"fr": {"‹", "›"},
	"it": {"‘", "’"},
	"nb": {"‘", "’"},
	"ru": {"„", "“"},
	"sv": {"’", "’"},
}

// isAlternateQuotationDelimiter returns true if the action types one of
// the locale's alternate quotation delimiters.
func isAlternateQuotationDelimiter(a action.Action, locale string) bool {
	if a.Kind != action.KindCharacter {
		return false
	}
	lang := strings.ToLower(locale)
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	delims, ok := alternateQuotationDelimiters[lang]
	if !ok {
		delims = alternateQuotationDelimiters["en"]
	}
	return a.Char == delims[0] || a.Char == delims[1]
}
