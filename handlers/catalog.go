package handlers

import (
	"net/http"

	"github.com/neonova/storefront"
	"github.com/neonova/storefront/middlewares"
	"github.com/neonova/storefront/pkg/catalog"
	"github.com/neonova/storefront/pkg/i18n"
)

// CatalogPath serves the builder options.
const CatalogPath = "/api/builder/options"

// CatalogResponse is the builder option set in the visitor's language.
type CatalogResponse struct {
	Language      string          `json:"language"`
	Colors        []catalog.Color `json:"colors"`
	Fonts         []catalog.Font  `json:"fonts"`
	Sizes         []SizeOption    `json:"sizes"`
	Defaults      Defaults        `json:"defaults"`
	MaxTextLength int             `json:"maxTextLength"`
}

// SizeOption is a catalog size with its price formatted for display.
type SizeOption struct {
	catalog.Size
	DisplayPrice string `json:"displayPrice"`
}

// Defaults is the selection the builder opens with.
type Defaults struct {
	Text  string  `json:"text"`
	Color string  `json:"color"`
	Font  string  `json:"font"`
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// Catalog serves the read-only builder catalog.
type Catalog struct{}

// NewCatalog returns the catalog handler.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Routes registers GET /api/builder/options.
func (h *Catalog) Routes(r storefront.Router) {
	r.GET(CatalogPath, h.options)
}

func (h *Catalog) options(c storefront.Context) error {
	tr := middlewares.GetTranslator(c)
	label := func(key, fallback string) string {
		if tr == nil {
			return fallback
		}
		return tr.TOr(key, fallback)
	}

	colors := catalog.Colors()
	for i := range colors {
		colors[i].Label = label("builder.colors."+colors[i].Key, colors[i].Label)
	}

	sizes := make([]SizeOption, 0, len(catalog.Sizes()))
	for _, s := range catalog.Sizes() {
		s.Label = label("builder.sizes."+s.Key, s.Label)
		sizes = append(sizes, SizeOption{Size: s, DisplayPrice: c.FormatCurrency(s.Price)})
	}

	def := catalog.DefaultSelection()
	lang := c.Language()
	if lang == "" {
		lang = i18n.DefaultLang
	}

	c.SetHeader("Cache-Control", "public, max-age=300")
	return c.JSON(http.StatusOK, CatalogResponse{
		Language: lang,
		Colors:   colors,
		Fonts:    catalog.Fonts(),
		Sizes:    sizes,
		Defaults: Defaults{
			Text:  def.Text,
			Color: def.Color,
			Font:  def.Font,
			Size:  def.Size,
			Price: def.Price(),
		},
		MaxTextLength: catalog.MaxTextLength,
	})
}
