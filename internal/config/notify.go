package config

import "sync"

// ChangeType represents the type of configuration change.
type ChangeType int

const (
	// ChangeSet indicates a value was set or updated.
	ChangeSet ChangeType = iota

	// ChangeReload indicates the entire configuration was reloaded.
	ChangeReload
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Change represents a configuration change event.
type Change struct {
	// Path is the dot-separated path to the changed setting. Empty for
	// reload events.
	Path string

	// Type is the type of change.
	Type ChangeType

	// OldValue is the previous value (may be nil).
	OldValue any

	// NewValue is the new value.
	NewValue any

	// Source identifies where the change came from.
	Source string
}

// Observer is called when configuration changes occur.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	path     string
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s)
	}
}

// Notifier delivers configuration change notifications synchronously to
// subscribed observers.
type Notifier struct {
	mu sync.RWMutex

	globalObservers map[uint64]Observer
	pathObservers   map[string]map[uint64]Observer
	nextID          uint64
}

// NewNotifier creates a Notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		globalObservers: make(map[uint64]Observer),
		pathObservers:   make(map[string]map[uint64]Observer),
	}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.globalObservers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// SubscribePath registers an observer for changes to a specific path.
func (n *Notifier) SubscribePath(path string, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	if n.pathObservers[path] == nil {
		n.pathObservers[path] = make(map[uint64]Observer)
	}
	n.pathObservers[path][id] = observer

	return &Subscription{id: id, path: path, notifier: n}
}

// Notify sends a change notification to all relevant observers.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	observers := make([]Observer, 0, len(n.globalObservers))
	for _, o := range n.globalObservers {
		observers = append(observers, o)
	}
	if change.Path != "" {
		for _, o := range n.pathObservers[change.Path] {
			observers = append(observers, o)
		}
	}
	n.mu.RUnlock()

	for _, o := range observers {
		o(change)
	}
}

// NotifyReload is a convenience method for reload events.
func (n *Notifier) NotifyReload(newValue any, source string) {
	n.Notify(Change{Type: ChangeReload, NewValue: newValue, Source: source})
}

func (n *Notifier) unsubscribe(s *Subscription) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if s.path == "" {
		delete(n.globalObservers, s.id)
		return
	}
	if m := n.pathObservers[s.path]; m != nil {
		delete(m, s.id)
		if len(m) == 0 {
			delete(n.pathObservers, s.path)
		}
	}
}
