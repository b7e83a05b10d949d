package extension

import "strings"

// DotMap is a mapping with dotted-path access into nested DotMaps, used for
// API discovery payloads.
type DotMap map[string]any

// Get resolves a dotted path such as "api.process_data". The bool reports
// whether the full path exists.
func (m DotMap) Get(path string) (any, bool) {
	parts := strings.Split(path, ".")
	var current any = m
	for _, part := range parts {
		node, ok := current.(DotMap)
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Set stores a value at a dotted path, creating intermediate DotMaps as
// needed. A non-map intermediate node is replaced.
func (m DotMap) Set(path string, value any) {
	parts := strings.Split(path, ".")
	node := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := node[part].(DotMap)
		if !ok {
			next = DotMap{}
			node[part] = next
		}
		node = next
	}
	node[parts[len(parts)-1]] = value
}

// Delete removes the value at a dotted path. Missing paths are ignored.
func (m DotMap) Delete(path string) {
	parts := strings.Split(path, ".")
	node := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := node[part].(DotMap)
		if !ok {
			return
		}
		node = next
	}
	delete(node, parts[len(parts)-1])
}

// Descriptor is the static snapshot of an extension's publicly declared
// operations and documentation, returned on demand for discovery by the
// host. It carries no state and no lifecycle.
type Descriptor struct {
	ExtensionName string
	// API maps operation names to callables.
	API DotMap
	// Docs is free-form documentation for the exposed operations.
	Docs string
	// Version of the exposed API, when the extension declares one.
	Version string
}

// ToDotMap renders the descriptor as a discovery payload.
func (d Descriptor) ToDotMap() DotMap {
	m := DotMap{
		"extension_name": d.ExtensionName,
		"api":            d.API,
		"docs":           d.Docs,
	}
	if d.Version != "" {
		m["version"] = d.Version
	}
	return m
}

// API returns the default descriptor: the extension's name, no operations,
// no docs. Extensions exposing a programmatic API override this.
func (b *BaseExtension) API() Descriptor {
	return Descriptor{
		ExtensionName: b.identity.Name(),
		API:           DotMap{},
	}
}
