// Package reactive provides the value and subscription primitives the
// style registry is built on. A Value is either a constant or a window
// onto a Dynamic, a mutable cell that notifies listeners when set.
package reactive

import "sync"

// Subscribable is anything a context can observe for changes. Constants
// report no changes and callers may skip subscribing to them entirely.
type Subscribable interface {
	// AddListener registers f to run after each change. The returned
	// function removes the registration.
	AddListener(f func()) (remove func())
	// IsConstant reports whether the value can never change.
	IsConstant() bool
}

// Observer receives change subscriptions from style lookups. Widgets
// implement this through their build context.
type Observer interface {
	// RedrawWhenChanged requests a repaint when source changes.
	RedrawWhenChanged(source Subscribable)
	// InvalidateWhenChanged requests a relayout when source changes.
	// Relayout implies repaint.
	InvalidateWhenChanged(source Subscribable)
}

// Dynamic is a mutable value that notifies listeners on every Set.
// All methods are safe for concurrent use.
type Dynamic[T any] struct {
	mu        sync.Mutex
	value     T
	listeners map[int]func()
	nextID    int
}

// NewDynamic returns a dynamic holding the initial value.
func NewDynamic[T any](initial T) *Dynamic[T] {
	return &Dynamic[T]{value: initial}
}

// Get returns the current value.
func (d *Dynamic[T]) Get() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Set stores a new value and notifies every listener. Listeners run on
// the calling goroutine, outside the lock.
func (d *Dynamic[T]) Set(value T) {
	d.mu.Lock()
	d.value = value
	notify := make([]func(), 0, len(d.listeners))
	for _, f := range d.listeners {
		notify = append(notify, f)
	}
	d.mu.Unlock()
	for _, f := range notify {
		f()
	}
}

// Map replaces the value by applying f to the current one, then
// notifies listeners.
func (d *Dynamic[T]) Map(f func(T) T) {
	d.mu.Lock()
	d.value = f(d.value)
	notify := make([]func(), 0, len(d.listeners))
	for _, l := range d.listeners {
		notify = append(notify, l)
	}
	d.mu.Unlock()
	for _, l := range notify {
		l()
	}
}

// AddListener implements Subscribable.
func (d *Dynamic[T]) AddListener(f func()) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.listeners == nil {
		d.listeners = make(map[int]func())
	}
	id := d.nextID
	d.nextID++
	d.listeners[id] = f
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners, id)
	}
}

// IsConstant implements Subscribable.
func (d *Dynamic[T]) IsConstant() bool {
	return false
}

// Value is a style value that is either constant or backed by a
// Dynamic. The zero value is a constant zero T.
type Value[T any] struct {
	dynamic  *Dynamic[T]
	constant T
}

// Constant wraps a fixed value.
func Constant[T any](value T) Value[T] {
	return Value[T]{constant: value}
}

// FromDynamic wraps a dynamic cell.
func FromDynamic[T any](dynamic *Dynamic[T]) Value[T] {
	return Value[T]{dynamic: dynamic}
}

// Get returns the current value.
func (v Value[T]) Get() T {
	if v.dynamic != nil {
		return v.dynamic.Get()
	}
	return v.constant
}

// IsDynamic reports whether the value can change.
func (v Value[T]) IsDynamic() bool {
	return v.dynamic != nil
}

// Dynamic returns the backing cell, or nil for constants.
func (v Value[T]) Dynamic() *Dynamic[T] {
	return v.dynamic
}

// AddListener implements Subscribable. Listening to a constant is a
// no-op and the returned remove function does nothing.
func (v Value[T]) AddListener(f func()) func() {
	if v.dynamic != nil {
		return v.dynamic.AddListener(f)
	}
	return func() {}
}

// IsConstant implements Subscribable.
func (v Value[T]) IsConstant() bool {
	return v.dynamic == nil
}

// RedrawWhenChanged subscribes observer for repaint when the value is
// dynamic.
func (v Value[T]) RedrawWhenChanged(observer Observer) {
	if v.dynamic != nil {
		observer.RedrawWhenChanged(v)
	}
}

// InvalidateWhenChanged subscribes observer for relayout when the value
// is dynamic.
func (v Value[T]) InvalidateWhenChanged(observer Observer) {
	if v.dynamic != nil {
		observer.InvalidateWhenChanged(v)
	}
}

// MapValue derives a value by applying f. Mapping a constant yields a
// constant. Mapping a dynamic yields a dynamic that is re-derived on
// every change to the source; the subscription lives as long as the
// source does.
func MapValue[T, U any](v Value[T], f func(T) U) Value[U] {
	if v.dynamic == nil {
		return Constant(f(v.constant))
	}
	source := v.dynamic
	derived := NewDynamic(f(source.Get()))
	source.AddListener(func() {
		derived.Set(f(source.Get()))
	})
	return FromDynamic(derived)
}
