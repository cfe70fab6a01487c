package styles

import (
	"sync/atomic"

	"github.com/ecton/cushy/pkg/reactive"
)

// Styles is a registry of style components keyed by ComponentName.
//
// Copies made with Clone share storage until one side writes, so
// passing a Styles down a widget tree is cheap. The zero value is an
// empty registry. A Styles value is safe for concurrent reads and
// Clones, but not for concurrent mutation.
type Styles struct {
	state *stylesState
}

type stylesState struct {
	components map[ComponentName]reactive.Value[Component]
	// shared is set when more than one Styles may reference this state.
	// The next write copies first. Atomic so sibling handles may Clone
	// concurrently.
	shared atomic.Bool
}

// NewStyles returns an empty registry.
func NewStyles() Styles {
	return Styles{state: &stylesState{components: make(map[ComponentName]reactive.Value[Component])}}
}

// StylesWithCapacity returns an empty registry sized for n components.
func StylesWithCapacity(n int) Styles {
	return Styles{state: &stylesState{components: make(map[ComponentName]reactive.Value[Component], n)}}
}

// StyleEntry pairs a component name with a value for CollectStyles.
type StyleEntry struct {
	Name      ComponentName
	Component Component
}

// CollectStyles builds a registry from entries. Later entries win on
// name collisions.
func CollectStyles(entries ...StyleEntry) Styles {
	s := StylesWithCapacity(len(entries))
	for _, entry := range entries {
		s.InsertNamed(entry.Name, entry.Component)
	}
	return s
}

// Clone returns a registry sharing this one's storage. Writes to either
// copy after this call do not affect the other.
func (s *Styles) Clone() Styles {
	if s.state == nil {
		return NewStyles()
	}
	s.state.shared.Store(true)
	return Styles{state: s.state}
}

// mutable returns the state, copying it first if it may be shared.
func (s *Styles) mutable() *stylesState {
	if s.state == nil {
		s.state = &stylesState{components: make(map[ComponentName]reactive.Value[Component])}
		return s.state
	}
	if s.state.shared.Load() {
		copied := &stylesState{components: make(map[ComponentName]reactive.Value[Component], len(s.state.components))}
		for name, value := range s.state.components {
			copied.components[name] = value
		}
		s.state = copied
	}
	return s.state
}

// Insert stores a constant component under the descriptor's name,
// overwriting any existing entry.
func (s *Styles) Insert(component NamedComponent, value Component) {
	s.InsertNamed(component.ComponentName(), value)
}

// InsertNamed stores a constant component, overwriting any existing
// entry.
func (s *Styles) InsertNamed(name ComponentName, value Component) {
	s.mutable().components[name] = reactive.Constant(value)
}

// InsertValue stores a possibly dynamic component under the
// descriptor's name.
func (s *Styles) InsertValue(component NamedComponent, value reactive.Value[Component]) {
	s.InsertNamedValue(component.ComponentName(), value)
}

// InsertNamedValue stores a possibly dynamic component.
func (s *Styles) InsertNamedValue(name ComponentName, value reactive.Value[Component]) {
	s.mutable().components[name] = value
}

// With returns a clone of the registry with the component stored, for
// chaining when building styles declaratively. The receiver is left
// unchanged.
func (s Styles) With(component NamedComponent, value Component) Styles {
	clone := s.Clone()
	clone.Insert(component, value)
	return clone
}

// GetNamed returns the erased value stored under name. The second
// result is false when nothing is stored.
func (s Styles) GetNamed(name ComponentName) (reactive.Value[Component], bool) {
	if s.state == nil {
		return reactive.Value[Component]{}, false
	}
	value, ok := s.state.components[name]
	return value, ok
}

// Append merges every entry of other into this registry. Entries in
// other win on name collisions.
func (s *Styles) Append(other Styles) {
	if other.state == nil || len(other.state.components) == 0 {
		return
	}
	state := s.mutable()
	for name, value := range other.state.components {
		state.components[name] = value
	}
}

// Len returns the number of stored components.
func (s Styles) Len() int {
	if s.state == nil {
		return 0
	}
	return len(s.state.components)
}

// IsEmpty reports whether no components are stored.
func (s Styles) IsEmpty() bool {
	return s.Len() == 0
}

// VisitComponents calls visit for each stored component until it
// returns false. Iteration order is unspecified.
func (s Styles) VisitComponents(visit func(ComponentName, reactive.Value[Component]) bool) {
	if s.state == nil {
		return
	}
	for name, value := range s.state.components {
		if !visit(name, value) {
			return
		}
	}
}

// InsertDynamic stores a component backed by source: whenever source
// changes, the stored component is rebuilt through ty. The subscription
// lives as long as the source.
func InsertDynamic[T any](s *Styles, name ComponentName, ty ComponentType[T], source *reactive.Dynamic[T]) {
	s.InsertNamedValue(name, reactive.MapValue(reactive.FromDynamic(source), ty.Inject))
}
