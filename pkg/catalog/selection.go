package catalog

import "strings"

// Selection is one builder configuration.
type Selection struct {
	Text  string
	Color string
	Font  string
	Size  string
}

// DefaultSelection is the configuration the builder opens with.
func DefaultSelection() Selection {
	return Selection{
		Text:  DefaultText,
		Color: DefaultColor,
		Font:  DefaultFont,
		Size:  DefaultSize,
	}
}

// Normalize clamps the text and replaces unknown or empty option keys with
// the builder defaults. Blank text falls back to DefaultText.
func (s Selection) Normalize() Selection {
	s.Text = Clamp(strings.TrimSpace(s.Text))
	if s.Text == "" {
		s.Text = DefaultText
	}
	if _, ok := ColorByKey(s.Color); !ok {
		s.Color = DefaultColor
	}
	if _, ok := FontByKey(s.Font); !ok {
		s.Font = DefaultFont
	}
	if _, ok := SizeByKey(s.Size); !ok {
		s.Size = DefaultSize
	}
	return s
}

// Price is the listed price of the selected size.
func (s Selection) Price() float64 {
	return PriceFor(s.Size)
}
