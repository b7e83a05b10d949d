// Package extension provides the base contract for building MedICS
// extensions: identity derivation, read-only attribute protection, lifecycle
// drivers, host-service accessors, and the declarative API descriptor.
//
// An extension embeds *BaseExtension and implements the remaining Extension
// methods (at minimum Version and Description — omitting either is a compile
// error, the static form of the "abstract method" contract). All lifecycle
// methods and accessors must be called from the host's UI thread; calling
// them concurrently is undefined behavior.
package extension

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/medics-dev/MedICS-Extension-Base/pkg/host"
	"github.com/medics-dev/MedICS-Extension-Base/pkg/ui"
)

// Placeholder values used when construction receives empty names.
const (
	DefaultName   = "extension_name"
	DefaultAuthor = "author_name"
)

// DefaultCategory is the category reported by extensions that do not
// override Category.
const DefaultCategory = "General"

// fallbackLogger receives log lines when no host context is bound or the
// host logger misbehaves. Extension code must never crash the host, so the
// accessors always have somewhere safe to write.
var fallbackLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Extension is the contract a MedICS extension exposes to the host loader.
// The unexported base method seals the interface: only types embedding
// *BaseExtension satisfy it, which is what makes the identity fields
// non-overridable — the loader reads them through the base, never through a
// vtable slot a subclass could shadow.
type Extension interface {
	base() *BaseExtension

	// Name returns the display name.
	Name() string
	// Author returns the author name or organization.
	Author() string
	// Category returns the category used to organize extensions.
	Category() string
	// Version returns the version string, e.g. "1.0.0". No default: every
	// extension must implement it.
	Version() string
	// Description returns a brief description. No default: every extension
	// must implement it.
	Description() string
	// CreateWidget produces the extension's visual surface. The default
	// implementation returns ErrWidgetNotImplemented.
	CreateWidget(parent ui.Widget) (ui.Widget, error)
	// API returns the extension's static API descriptor.
	API() Descriptor
}

// Initializer is an optional hook run by Initialize after the context is
// bound. An error (or panic) from the hook is caught and reported as a
// boolean initialization failure, never propagated.
type Initializer interface {
	OnInitialize(ctx host.Context) error
}

// readOnlyAttrs is the allow-list of attributes protected once the base is
// sealed.
var readOnlyAttrs = map[string]bool{
	"id":             true,
	"extension_name": true,
	"author_name":    true,
}

// BaseExtension carries the shared state and behavior of every extension.
// Embed a pointer to it and override the methods your extension needs.
type BaseExtension struct {
	identity Identity
	sealed   bool

	parent        ui.Widget
	appContext    host.Context
	widget        ui.Widget
	mainAction    ui.Action
	extensionPath string
}

// NewBaseExtension constructs the base with an optional parent widget, a
// display name, and an author name. Empty strings fall back to the
// placeholder values. The identity is derived here, exactly once, and the
// base is sealed before the constructor returns.
func NewBaseExtension(parent ui.Widget, name, author string) *BaseExtension {
	if name == "" {
		name = DefaultName
	}
	if author == "" {
		author = DefaultAuthor
	}
	b := &BaseExtension{
		parent:   parent,
		identity: newIdentity(name, author),
	}
	b.sealed = true
	return b
}

func (b *BaseExtension) base() *BaseExtension { return b }

// Name returns the display name.
func (b *BaseExtension) Name() string { return b.identity.Name() }

// Author returns the author name.
func (b *BaseExtension) Author() string { return b.identity.Author() }

// ID returns the derived identifier.
func (b *BaseExtension) ID() string { return b.identity.ID() }

// Category returns DefaultCategory; override to organize your extension
// elsewhere.
func (b *BaseExtension) Category() string { return DefaultCategory }

// CreateWidget is the default widget factory. Extensions with a UI override
// it; the default reports the missing override as a contract violation.
func (b *BaseExtension) CreateWidget(parent ui.Widget) (ui.Widget, error) {
	return nil, ErrWidgetNotImplemented
}

// Set is the generic settable-attribute path. Writes to the identity
// attributes ("id", "extension_name", "author_name") fail with a
// *ReadOnlyAttributeError once the base is sealed, which is always the case
// after construction; the stored values are untouched. The remaining
// settable attributes are "parent" and "extension_path".
func (b *BaseExtension) Set(attr string, value any) error {
	if b.sealed && readOnlyAttrs[attr] {
		return &ReadOnlyAttributeError{Attr: attr}
	}
	switch attr {
	case "parent":
		w, ok := value.(ui.Widget)
		if !ok && value != nil {
			return &AttributeTypeError{Attr: attr, Value: value}
		}
		b.parent = w
	case "extension_path":
		s, ok := value.(string)
		if !ok {
			return &AttributeTypeError{Attr: attr, Value: value}
		}
		b.extensionPath = s
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}
	return nil
}

// Context returns the bound host context, or nil before initialization.
func (b *BaseExtension) Context() host.Context { return b.appContext }

// Parent returns the parent widget supplied at construction.
func (b *BaseExtension) Parent() ui.Widget { return b.parent }

// Instance returns the created widget, or nil.
func (b *BaseExtension) Instance() ui.Widget { return b.widget }

// HasInstance reports whether a widget has been created.
func (b *BaseExtension) HasInstance() bool { return b.widget != nil }

// SetExtensionPath stores the extension's directory, used for icon lookup.
func (b *BaseExtension) SetExtensionPath(path string) { b.extensionPath = path }

// ExtensionPath returns the extension's directory.
func (b *BaseExtension) ExtensionPath() string { return b.extensionPath }

// iconCandidates are the fixed file names searched by IconPath, in order.
func (b *BaseExtension) iconCandidates() []string {
	name := strings.ToLower(b.identity.Name())
	return []string{
		name + ".png",
		name + ".ico",
		"icon.png",
		"icon.ico",
		"extension.png",
		"extension.ico",
	}
}

// IconPath searches the extension directory, then its icons subdirectory,
// for the candidate icon file names. First match wins; empty when the path
// is unset or nothing matches.
func (b *BaseExtension) IconPath() string {
	if b.extensionPath == "" {
		return ""
	}
	candidates := b.iconCandidates()
	for _, dir := range []string{b.extensionPath, filepath.Join(b.extensionPath, "icons")} {
		for _, name := range candidates {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}
