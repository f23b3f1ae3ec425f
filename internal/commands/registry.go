// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "strings"

// =============================================================================
// PARAMETER DEFINITION
// =============================================================================

// ParamType is the declared wire type of a command parameter.
type ParamType string

const (
	TypeString ParamType = "string"
	TypeInt    ParamType = "int"
	TypeBool   ParamType = "bool"
	TypeList   ParamType = "list"
)

// ParamSpec describes one named parameter of a remote command.
type ParamSpec struct {
	// Name is the parameter name as typed after "--"
	Name string

	// Type determines how the raw string value is coerced before dispatch
	Type ParamType

	// Required parameters must be supplied or dispatch is rejected
	Required bool

	// Post parameters travel in the request body instead of the query string
	Post bool
}

// =============================================================================
// COMMAND DESCRIPTOR
// =============================================================================

// Descriptor is the static metadata record for one remote API command.
// Descriptors are immutable once the registry is built.
type Descriptor struct {
	// Name is the unique command name (e.g., "getScript")
	Name string

	// Description is shown in help and completion
	Description string

	// Category is the name of the category the command belongs to
	Category string

	// Params are the declared parameters, in catalog order
	Params []ParamSpec

	// Example is an illustrative command line
	Example string
}

// Param returns the parameter with the given name, if declared.
func (d *Descriptor) Param(name string) (ParamSpec, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// ParamNames returns the declared parameter names in catalog order.
func (d *Descriptor) ParamNames() []string {
	names := make([]string, len(d.Params))
	for i, p := range d.Params {
		names[i] = p.Name
	}
	return names
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry is the read-only catalog of remote commands and categories.
// It is built once by NewRegistry and never mutated afterwards, so it is
// safe to share across goroutines without locking.
type Registry struct {
	commands   map[string]*Descriptor
	order      []string
	categories []string
	byCategory map[string][]string
}

// NewRegistry builds the registry from the static catalog.
//
// The universal optional "beautify" boolean parameter is appended to every
// descriptor here, exactly once; callers never see a descriptor without it.
func NewRegistry() *Registry {
	r := &Registry{
		commands:   make(map[string]*Descriptor, len(catalog)),
		order:      make([]string, 0, len(catalog)),
		categories: append([]string(nil), categoryOrder...),
		byCategory: make(map[string][]string, len(categoryOrder)),
	}

	for i := range catalog {
		d := catalog[i] // copy; the package-level table stays pristine
		d.Params = append(append([]ParamSpec(nil), d.Params...), ParamSpec{
			Name: "beautify",
			Type: TypeBool,
		})
		r.commands[d.Name] = &d
		r.order = append(r.order, d.Name)
		r.byCategory[d.Category] = append(r.byCategory[d.Category], d.Name)
	}

	return r
}

// Lookup returns the descriptor for name, or nil if unknown.
func (r *Registry) Lookup(name string) *Descriptor {
	return r.commands[name]
}

// AllNames returns every command name in catalog order.
func (r *Registry) AllNames() []string {
	return r.order
}

// Categories returns every category name in catalog order.
func (r *Registry) Categories() []string {
	return r.categories
}

// CommandsInCategory returns the commands belonging to category, in catalog
// insertion order. Unknown categories yield an empty slice.
func (r *Registry) CommandsInCategory(category string) []string {
	return r.byCategory[category]
}

// CategoryOf returns the category of the named command.
func (r *Registry) CategoryOf(name string) (string, bool) {
	d := r.commands[name]
	if d == nil {
		return "", false
	}
	return d.Category, true
}

// Search returns the commands and categories matching keyword by
// case-insensitive substring against names and descriptions. Used by the
// "search" builtin.
func (r *Registry) Search(keyword string) (cmds, cats []string) {
	keyword = strings.ToLower(keyword)
	for _, name := range r.order {
		d := r.commands[name]
		if strings.Contains(strings.ToLower(name), keyword) ||
			strings.Contains(strings.ToLower(d.Description), keyword) {
			cmds = append(cmds, name)
		}
	}
	for _, cat := range r.categories {
		if strings.Contains(strings.ToLower(cat), keyword) {
			cats = append(cats, cat)
		}
	}
	return cmds, cats
}
