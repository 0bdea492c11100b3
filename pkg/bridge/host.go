package bridge

import (
	"github.com/brunhild-dev/brunhild/internal/errors"
)

// ErrMissingTarget is returned by Host implementations when no live
// element carries the identifier a mutation names. A well-behaved patch
// stream never triggers it; seeing it means the host document diverged
// from the committed tree, usually through out-of-band DOM edits.
var ErrMissingTarget = errors.New("BH003")

// Host is the single boundary through which the engine touches a real
// document. Every method names its target by the engine-assigned id
// attribute value ("bh-1", "bh-2", ...) and carries serialized HTML where
// new content is involved.
//
// Implementations live on the far side of an expensive boundary - a
// browser bridge, a wire protocol, a headless document - so the engine
// batches calls and keeps their count low rather than their payloads
// small.
type Host interface {
	// SetOuterHTML replaces the element itself, children and all.
	SetOuterHTML(id, html string) error

	// SetInnerHTML replaces the element's contents, leaving the element
	// and its attributes in place.
	SetInnerHTML(id, html string) error

	// Append inserts html as the element's new last children.
	Append(id, html string) error

	// Prepend inserts html as the element's new first children.
	Prepend(id, html string) error

	// InsertBefore inserts html as the element's immediately preceding
	// siblings.
	InsertBefore(id, html string) error

	// InsertAfter inserts html as the element's immediately following
	// siblings.
	InsertAfter(id, html string) error

	// Remove detaches the element from its parent.
	Remove(id string) error

	// SetAttr sets or overwrites one attribute. An empty value produces a
	// bare boolean-style attribute.
	SetAttr(id, key, val string) error

	// RemoveAttr deletes one attribute; removing an absent key is a no-op.
	RemoveAttr(id, key string) error

	// GetInnerHTML returns the element's current contents as HTML. The
	// engine never calls it during patching; it exists for callers that
	// need to inspect host state, e.g. reading back user-edited content.
	GetInnerHTML(id string) (string, error)
}
