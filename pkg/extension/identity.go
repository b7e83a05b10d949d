package extension

import "strings"

// Normalize lowercases s, replaces spaces with underscores, then replaces
// every character outside [a-z0-9_.] with an underscore. It is idempotent:
// normalizing an already-normalized string is a no-op.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Identity is the sealed identity of an extension: display name, author,
// and the identifier derived from them. It is computed once at construction
// and never changes; there are no setters, and the loader always reads it
// through IdentityOf rather than any overridable method.
type Identity struct {
	name   string
	author string
	id     string
}

func newIdentity(name, author string) Identity {
	return Identity{
		name:   name,
		author: author,
		id:     Normalize(author) + "." + Normalize(name),
	}
}

// Name returns the display name.
func (i Identity) Name() string { return i.name }

// Author returns the author name.
func (i Identity) Author() string { return i.author }

// ID returns the normalized dot-joined identifier, e.g. "john_doe.my_extension_".
func (i Identity) ID() string { return i.id }

// IdentityOf returns the sealed identity of any extension. Because it reads
// the base directly, a type that shadows Name, Author, or ID cannot change
// what the host observes here.
func IdentityOf(ext Extension) Identity {
	return ext.base().identity
}
