// Package styles implements the style registry: a mapping from
// qualified component names to dynamically typed style values, with
// type-safe reads that register reactive invalidation subscriptions.
package styles

import "fmt"

// Name identifies a group or a component within a group.
type Name string

// ComponentName is the registry's key: a group paired with a name
// unique within that group.
type ComponentName struct {
	// Group names the family of components, usually a widget type.
	Group Name
	// Name identifies the component within its group.
	Name Name
}

// NewComponentName returns the key for name within group.
func NewComponentName(group, name Name) ComponentName {
	return ComponentName{Group: group, Name: name}
}

func (n ComponentName) String() string {
	return fmt.Sprintf("%s.%s", n.Group, n.Name)
}

// NamedComponent is anything that knows its registry key. Component
// descriptors implement this alongside their default value.
type NamedComponent interface {
	ComponentName() ComponentName
}
