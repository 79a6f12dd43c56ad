// Package catalog holds the sign builder's fixed option sets and the
// size to price table.
//
// Prices here are what the builder shows and what the quote form submits.
// The relay never recomputes them; they are display-only.
package catalog

import (
	"slices"
	"unicode/utf8"
)

// MaxTextLength is the longest sign text the builder accepts, in runes.
const MaxTextLength = 25

// FallbackPrice is quoted when the size is not in the table.
const FallbackPrice = 249

// Builder defaults.
const (
	DefaultText  = "Dream Big"
	DefaultColor = "pink"
	DefaultFont  = "cursive"
	DefaultSize  = "lg"
)

type Color struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Hex   string `json:"hex"`
}

type Font struct {
	Key    string `json:"key"`
	Family string `json:"family"`
}

type Size struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Width string  `json:"width"`
	Price float64 `json:"price"`
}

var colors = []Color{
	{Key: "pink", Label: "Electric Pink", Hex: "#FF3EA5"},
	{Key: "cyan", Label: "Cyan", Hex: "#18D7FF"},
	{Key: "amber", Label: "Warm Amber", Hex: "#FFC32B"},
	{Key: "purple", Label: "Purple", Hex: "#A855F7"},
	{Key: "green", Label: "Green", Hex: "#00FF7F"},
	{Key: "ice", Label: "Ice White", Hex: "#E9F7FF"},
}

var fonts = []Font{
	{Key: "cursive", Family: "Pacifico"},
	{Key: "script", Family: "Great Vibes"},
	{Key: "dancing", Family: "Dancing Script"},
	{Key: "satisfy", Family: "Satisfy"},
}

var sizes = []Size{
	{Key: "sm", Label: "Small", Width: "30-40cm", Price: 149},
	{Key: "md", Label: "Medium", Width: "50-70cm", Price: 249},
	{Key: "lg", Label: "Large", Width: "80-100cm", Price: 349},
	{Key: "xl", Label: "Extra Large", Width: "110-130cm", Price: 499},
}

// Colors returns a copy of the color options in display order.
func Colors() []Color { return slices.Clone(colors) }

// Fonts returns a copy of the font options in display order.
func Fonts() []Font { return slices.Clone(fonts) }

// Sizes returns a copy of the size options, smallest first.
func Sizes() []Size { return slices.Clone(sizes) }

func ColorByKey(key string) (Color, bool) { return find(colors, key, func(c Color) string { return c.Key }) }

func FontByKey(key string) (Font, bool) { return find(fonts, key, func(f Font) string { return f.Key }) }

func SizeByKey(key string) (Size, bool) { return find(sizes, key, func(s Size) string { return s.Key }) }

// PriceFor returns the listed price for a size key, or FallbackPrice.
func PriceFor(size string) float64 {
	if s, ok := SizeByKey(size); ok {
		return s.Price
	}
	return FallbackPrice
}

// Clamp cuts text to MaxTextLength runes.
func Clamp(text string) string {
	if utf8.RuneCountInString(text) <= MaxTextLength {
		return text
	}
	return string([]rune(text)[:MaxTextLength])
}

func find[T any](items []T, key string, keyOf func(T) string) (T, bool) {
	i := slices.IndexFunc(items, func(item T) bool { return keyOf(item) == key })
	if i < 0 {
		var zero T
		return zero, false
	}
	return items[i], true
}
