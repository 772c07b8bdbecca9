// Package style implements the Color/Modifier/Style model: scalar
// foreground/background/underline colors, additive and subtractive
// modifier sets, an optional hyperlink, and opaque extension slots, with an
// associative Patch merge.
package style

import "reflect"

// Style is the tuple (fg?, bg?, ulColor?, add, sub, hyperlink?, extensions).
type Style struct {
	Fg         Color
	Bg         Color
	Underline  Color
	Add        Modifier
	Sub        Modifier
	Hyperlink  string // "" means unset
	Extensions map[string]any
}

// Default is the zero Style: no colors, no modifiers, no hyperlink.
var Default = Style{}

// Patch merges other on top of this style: other's set scalar fields win
// (subject to the Named soft-default rule); modifier sets combine as
// add = (this.add \ other.sub) ∪ other.add, sub = (this.sub \ other.add)
// ∪ other.sub.
func (s Style) Patch(other Style) Style {
	out := Style{
		Fg:        patchColor(s.Fg, other.Fg),
		Bg:        patchColor(s.Bg, other.Bg),
		Underline: patchColor(s.Underline, other.Underline),
		Add:       s.Add.Without(other.Sub).Union(other.Add),
		Sub:       s.Sub.Without(other.Add).Union(other.Sub),
		Hyperlink: s.Hyperlink,
	}
	if other.Hyperlink != "" {
		out.Hyperlink = other.Hyperlink
	}
	if len(s.Extensions) > 0 || len(other.Extensions) > 0 {
		out.Extensions = make(map[string]any, len(s.Extensions)+len(other.Extensions))
		for k, v := range s.Extensions {
			out.Extensions[k] = v
		}
		for k, v := range other.Extensions {
			out.Extensions[k] = v
		}
	}
	return out
}

// patchColor implements the Named soft-default rule: a Named color is
// treated as lower priority than any concrete color supplied by a patching
// style, but a concrete color already in place is never overridden by an
// incoming Named color.
func patchColor(this, other Color) Color {
	if !other.IsSet() {
		return this
	}
	if other.IsNamed() && this.IsSet() && !this.IsNamed() {
		return this
	}
	return other
}

// WithFg returns a copy of s with Fg set.
func (s Style) WithFg(c Color) Style { s.Fg = c; return s }

// WithBg returns a copy of s with Bg set.
func (s Style) WithBg(c Color) Style { s.Bg = c; return s }

// WithUnderlineColor returns a copy of s with Underline set.
func (s Style) WithUnderlineColor(c Color) Style { s.Underline = c; return s }

// WithAdd returns a copy of s with the given modifiers added (and cleared
// from Sub, keeping Add/Sub disjoint).
func (s Style) WithAdd(m Modifier) Style {
	s.Add = s.Add.Union(m)
	s.Sub = s.Sub.Without(m)
	return s
}

// WithSub returns a copy of s with the given modifiers explicitly cleared
// (and removed from Add, keeping Add/Sub disjoint).
func (s Style) WithSub(m Modifier) Style {
	s.Sub = s.Sub.Union(m)
	s.Add = s.Add.Without(m)
	return s
}

// WithHyperlink returns a copy of s with its hyperlink set.
func (s Style) WithHyperlink(url string) Style { s.Hyperlink = url; return s }

// WithExtension returns a copy of s with an opaque key→value slot set.
func (s Style) WithExtension(key string, value any) Style {
	ext := make(map[string]any, len(s.Extensions)+1)
	for k, v := range s.Extensions {
		ext[k] = v
	}
	ext[key] = value
	s.Extensions = ext
	return s
}

// Equal reports whether two styles are identical, including extensions.
// Extension values are compared with reflect.DeepEqual rather than `!=`,
// since an extension slot may hold a non-comparable dynamic type (slice,
// map, func) that would panic under `!=`.
func (s Style) Equal(other Style) bool {
	if s.Fg != other.Fg || s.Bg != other.Bg || s.Underline != other.Underline {
		return false
	}
	if s.Add != other.Add || s.Sub != other.Sub || s.Hyperlink != other.Hyperlink {
		return false
	}
	if len(s.Extensions) != len(other.Extensions) {
		return false
	}
	for k, v := range s.Extensions {
		ov, ok := other.Extensions[k]
		if !ok || !reflect.DeepEqual(ov, v) {
			return false
		}
	}
	return true
}
