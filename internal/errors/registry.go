package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	"BH001": {
		Category: CategoryIntern,
		Message:  "handle was never issued by this interner",
		Detail:   "Resolve was called with a handle that did not come from Intern on this instance. This is a programming error, not a runtime condition.",
	},
	"BH002": {
		Category: CategoryTree,
		Message:  "the id attribute is reserved for element addressing",
		Detail:   "Element identifiers are assigned internally and rendered as id=\"bh-<n>\". Use a data attribute or class to tag elements instead.",
	},
	"BH003": {
		Category: CategoryPatch,
		Message:  "no live element matches the patch target",
		Detail:   "The host could not locate the element a patch refers to. The next full render cycle re-synchronizes the tree with the real DOM.",
	},
	"BH004": {
		Category: CategoryEvents,
		Message:  "no binding for event dispatch",
		Detail:   "An event arrived for an (event type, selector) pair with no registered handlers. This can happen when dispatch races an unregistration.",
	},
}

// Register adds a custom error template. Existing codes are not overwritten.
func Register(code string, template ErrorTemplate) bool {
	if _, exists := registry[code]; exists {
		return false
	}
	registry[code] = template
	return true
}

// Lookup returns the template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	template, ok := registry[code]
	return template, ok
}
