package el

func Class(value string) Attr       { return Attr{Key: "class", Value: value} }
func Style(value string) Attr       { return Attr{Key: "style", Value: value} }
func Title(value string) Attr       { return Attr{Key: "title", Value: value} }
func Name(value string) Attr        { return Attr{Key: "name", Value: value} }
func Value(value string) Attr       { return Attr{Key: "value", Value: value} }
func Type(value string) Attr        { return Attr{Key: "type", Value: value} }
func Href(value string) Attr        { return Attr{Key: "href", Value: value} }
func Src(value string) Attr         { return Attr{Key: "src", Value: value} }
func Alt(value string) Attr         { return Attr{Key: "alt", Value: value} }
func Placeholder(value string) Attr { return Attr{Key: "placeholder", Value: value} }
func For(value string) Attr         { return Attr{Key: "for", Value: value} }
func Role(value string) Attr        { return Attr{Key: "role", Value: value} }

// Valueless boolean attributes.
func Disabled() Attr { return Attr{Key: "disabled"} }
func Checked() Attr  { return Attr{Key: "checked"} }
func Selected() Attr { return Attr{Key: "selected"} }
func Required() Attr { return Attr{Key: "required"} }
func Readonly() Attr { return Attr{Key: "readonly"} }

// Data returns a data-* attribute.
func Data(suffix, value string) Attr {
	return Attr{Key: "data-" + suffix, Value: value}
}
