// Package lua lets host configurations script custom key actions. A
// keyboard action of the custom kind names a handler; scripts register
// handlers through the touchkey module and the engine invokes them when
// the action fires.
//
// gopher-lua's LState is not goroutine-safe, so all engine operations
// serialize through one mutex and Lua execution stays single-threaded.
package lua

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/touchkey/internal/logging"
)

// ErrEngineClosed is returned when using a closed engine.
var ErrEngineClosed = errors.New("lua engine is closed")

// ErrUnknownAction is returned when invoking an unregistered handler.
var ErrUnknownAction = errors.New("unknown custom action")

// Engine hosts a sandboxed Lua state and the custom-action handlers
// scripts have registered.
type Engine struct {
	mu       sync.Mutex
	L        *lua.LState
	handlers map[string]*lua.LFunction
	closed   bool
}

// NewEngine creates an engine with a sandboxed state: only the base,
// table, string, and math libraries are open, and the file-loading
// globals are removed.
func NewEngine() *Engine {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	// Scripts must not load arbitrary code from disk.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	e := &Engine{
		L:        L,
		handlers: make(map[string]*lua.LFunction),
	}
	e.installModule()
	return e
}

// installModule registers the touchkey global table with the functions
// scripts use to talk back to the engine.
func (e *Engine) installModule() {
	log := logging.With("component", "plugin.lua")

	module := e.L.NewTable()
	e.L.SetField(module, "register_action", e.L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		fn := L.CheckFunction(2)
		e.handlers[name] = fn
		return 0
	}))
	e.L.SetField(module, "log", e.L.NewFunction(func(L *lua.LState) int {
		log.Info("script", "message", L.CheckString(1))
		return 0
	}))
	e.L.SetGlobal("touchkey", module)
}

// LoadString executes a script from source.
func (e *Engine) LoadString(src string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	if err := e.L.DoString(src); err != nil {
		return fmt.Errorf("running lua script: %w", err)
	}
	return nil
}

// LoadFile executes a script file.
func (e *Engine) LoadFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	if err := e.L.DoFile(path); err != nil {
		return fmt.Errorf("running lua script %s: %w", path, err)
	}
	return nil
}

// HasAction returns true when a handler is registered for the name.
func (e *Engine) HasAction(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.handlers[name]
	return ok
}

// Actions returns the registered handler names.
func (e *Engine) Actions() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.handlers))
	for name := range e.handlers {
		out = append(out, name)
	}
	return out
}

// Invoke calls the named handler with the gesture name as its single
// argument. Handler errors are returned, never propagated as panics.
func (e *Engine) Invoke(name, gesture string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	fn, ok := e.handlers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	if err := e.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, lua.LString(gesture)); err != nil {
		return fmt.Errorf("custom action %s: %w", name, err)
	}
	return nil
}

// Close shuts the engine down. Close is idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.handlers = nil
	e.L.Close()
}
