package intern

import (
	"fmt"
	"sort"

	"github.com/brunhild-dev/brunhild/internal/errors"
)

// Handle is an integer surrogate for an interned string. Two handles issued
// by the same Interner are equal iff the underlying strings are equal, so
// string comparison reduces to integer comparison.
type Handle uint16

// None is the handle of the empty string. Empty strings are never stored.
const None Handle = 0

// maxHandles bounds the total handle space.
const maxHandles = 1<<16 - 1

// ErrInvalidHandle is returned by Resolve for a handle that was never
// issued by this interner instance. This is a programming error, not a
// runtime condition.
var ErrInvalidHandle = errors.New("BH001")

// Interner maps strings to small integer handles and back.
//
// The static table of common tag and attribute names is shared by all
// instances and consulted first. Everything else lands in the per-instance
// dynamic table, which grows append-only: a handle, once issued, stays
// valid for the lifetime of the interner and its string never changes.
//
// Access is single-threaded by design. The engine runs on a cooperative,
// DOM-bound host with a single writer per cycle, so the interner carries no
// locks; wrap it yourself if you step outside that model.
type Interner struct {
	dynamic map[string]Handle
	reverse []string
}

// New creates an empty Interner. The static table is available immediately.
func New() *Interner {
	return &Interner{
		dynamic: make(map[string]Handle),
	}
}

// Intern returns the handle for s, issuing a new one on first sight.
// It is idempotent: equal inputs yield equal handles for the lifetime of
// the interner.
func (in *Interner) Intern(s string) Handle {
	if s == "" {
		return None
	}
	if i := sort.SearchStrings(staticTable[:], s); i < len(staticTable) && staticTable[i] == s {
		return Handle(i + 1)
	}
	if h, ok := in.dynamic[s]; ok {
		return h
	}
	next := len(staticTable) + 1 + len(in.reverse)
	if next > maxHandles {
		// Handle space exhaustion means the caller is interning unbounded
		// user data; there is no recovery short of a new interner.
		panic(fmt.Sprintf("intern: handle space exhausted after %d strings", next))
	}
	h := Handle(next)
	in.dynamic[s] = h
	in.reverse = append(in.reverse, s)
	return h
}

// Resolve returns the string for h in O(1). It fails with ErrInvalidHandle
// only for handles this interner never issued.
func (in *Interner) Resolve(h Handle) (string, error) {
	if h == None {
		return "", nil
	}
	if int(h) <= len(staticTable) {
		return staticTable[h-1], nil
	}
	i := int(h) - len(staticTable) - 1
	if i >= len(in.reverse) {
		return "", fmt.Errorf("resolving handle %d: %w", h, ErrInvalidHandle)
	}
	return in.reverse[i], nil
}

// MustResolve is Resolve for handles known to be valid, e.g. handles stored
// in a node tree built through this interner. It panics on an invalid
// handle.
func (in *Interner) MustResolve(h Handle) string {
	s, err := in.Resolve(h)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the total number of resolvable strings, static table included.
func (in *Interner) Len() int {
	return len(staticTable) + len(in.reverse)
}

// Dynamic returns the number of strings interned at runtime.
func (in *Interner) Dynamic() int {
	return len(in.reverse)
}
