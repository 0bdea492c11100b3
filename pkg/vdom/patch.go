package vdom

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	OpReplaceOuter PatchOp = iota + 1 // Replace element and subtree
	OpReplaceInner                    // Replace element contents
	OpAppend                          // Insert HTML as last child
	OpPrepend                         // Insert HTML as first child
	OpInsertBefore                    // Insert HTML before element
	OpInsertAfter                     // Insert HTML after element
	OpRemove                          // Remove element
	OpSetAttr                         // Set/update attribute
	OpRemoveAttr                      // Remove attribute
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case OpReplaceOuter:
		return "ReplaceOuter"
	case OpReplaceInner:
		return "ReplaceInner"
	case OpAppend:
		return "Append"
	case OpPrepend:
		return "Prepend"
	case OpInsertBefore:
		return "InsertBefore"
	case OpInsertAfter:
		return "InsertAfter"
	case OpRemove:
		return "Remove"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	default:
		return "Unknown"
	}
}

// Patch is one atomic mutation instruction destined for the host DOM.
// It references an element identifier, not a node: by application time the
// engine has already resolved which real element is affected.
type Patch struct {
	Op   PatchOp
	ID   uint64 // target element identifier
	HTML string // serialized subtree, for insertion and replace ops
	Key  string // attribute name, for SetAttr/RemoveAttr
	Val  string // attribute value, for SetAttr
}
