package intern

// staticTable holds frequently used HTML tag and attribute names, compiled
// in so the hot construction path resolves them without touching the
// dynamic table. Sorted for binary search; handles are index+1.
//
// Sourced from:
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element
// https://developer.mozilla.org/en-US/docs/Web/HTML/Attributes
var staticTable = [...]string{
	"a", "abbr", "accept", "accept-charset", "accesskey", "acronym", "action",
	"address", "align", "allow", "alt", "applet", "area", "article", "aside",
	"async", "audio", "autocapitalize", "autocomplete", "autofocus",
	"autoplay", "b", "background", "base", "basefont", "bdi", "bdo",
	"bgcolor", "bgsound", "big", "blink", "blockquote", "body", "border",
	"br", "buffered", "button", "canvas", "caption", "center", "challenge",
	"charset", "checked", "cite", "class", "code", "codebase", "col",
	"colgroup", "color", "cols", "colspan", "command", "content",
	"contenteditable", "contextmenu", "controls", "coords", "crossorigin",
	"csp", "data", "data-*", "datalist", "datetime", "dd", "decoding",
	"default", "defer", "del", "details", "dfn", "dialog", "dir", "dirname",
	"disabled", "div", "dl", "download", "draggable", "dropzone", "dt",
	"element", "em", "embed", "enctype", "enterkeyhint", "fieldset",
	"figcaption", "figure", "font", "footer", "for", "form", "formaction",
	"formenctype", "formmethod", "formnovalidate", "formtarget", "frame",
	"frameset", "h1", "h2", "h3", "h4", "h5", "h6", "head", "header",
	"headers", "height", "hgroup", "hidden", "high", "hr", "href", "hreflang",
	"html", "http-equiv", "i", "icon", "id", "iframe", "image", "img",
	"importance", "input", "inputmode", "ins", "integrity", "intrinsicsize",
	"isindex", "ismap", "itemprop", "kbd", "keygen", "keytype", "kind",
	"label", "lang", "language", "legend", "li", "link", "list", "listing",
	"loading", "loop", "low", "main", "manifest", "map", "mark", "marquee",
	"max", "maxlength", "media", "menu", "menuitem", "meta", "meter",
	"method", "min", "minlength", "multicol", "multiple", "muted", "name",
	"nav", "nextid", "nobr", "noembed", "noframes", "noscript", "novalidate",
	"object", "ol", "open", "optgroup", "optimum", "option", "output", "p",
	"param", "pattern", "picture", "ping", "placeholder", "plaintext",
	"poster", "pre", "preload", "progress", "q", "radiogroup", "rb",
	"readonly", "referrerpolicy", "rel", "required", "reversed", "rows",
	"rowspan", "rp", "rt", "rtc", "ruby", "s", "samp", "sandbox", "scope",
	"scoped", "script", "section", "select", "selected", "shadow", "shape",
	"size", "sizes", "slot", "small", "source", "spacer", "span",
	"spellcheck", "src", "srcdoc", "srclang", "srcset", "start", "step",
	"strike", "strong", "style", "sub", "summary", "sup", "tabindex", "table",
	"target", "tbody", "td", "template", "textarea", "tfoot", "th", "thead",
	"time", "title", "tr", "track", "translate", "tt", "type", "u", "ul",
	"usemap", "value", "var", "video", "wbr", "width", "wrap", "xmp",
}
