package config

import "testing"

func TestNotifierGlobalAndPathObservers(t *testing.T) {
	n := NewNotifier()

	var global, scoped []Change
	n.Subscribe(func(c Change) { global = append(global, c) })
	n.SubscribePath("locale", func(c Change) { scoped = append(scoped, c) })

	n.Notify(Change{Path: "locale", Type: ChangeSet, OldValue: "en", NewValue: "de"})
	n.Notify(Change{Path: "log_level", Type: ChangeSet, NewValue: "debug"})

	if len(global) != 2 {
		t.Errorf("global observer got %d changes, want 2", len(global))
	}
	if len(scoped) != 1 {
		t.Fatalf("path observer got %d changes, want 1", len(scoped))
	}
	if scoped[0].NewValue != "de" {
		t.Errorf("path observer change = %+v", scoped[0])
	}
}

func TestNotifierUnsubscribe(t *testing.T) {
	n := NewNotifier()

	count := 0
	sub := n.Subscribe(func(Change) { count++ })
	n.Notify(Change{Path: "locale", Type: ChangeSet})
	sub.Unsubscribe()
	n.Notify(Change{Path: "locale", Type: ChangeSet})

	if count != 1 {
		t.Errorf("observer called %d times, want 1", count)
	}
}

func TestNotifyReload(t *testing.T) {
	n := NewNotifier()

	var got Change
	n.Subscribe(func(c Change) { got = c })
	n.NotifyReload(DefaultSettings(), "watcher")

	if got.Type != ChangeReload {
		t.Errorf("Type = %v, want reload", got.Type)
	}
	if got.Source != "watcher" {
		t.Errorf("Source = %q, want watcher", got.Source)
	}
	if got.Path != "" {
		t.Errorf("Path = %q, want empty for reload", got.Path)
	}
}
