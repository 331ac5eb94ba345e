package uri

import (
	"strings"

	"github.com/rafaelleal24/eshop/internal/adapters/config"
)

// Placeholder is the host stored in catalog picture references.
const Placeholder = "http://catalogbaseurltobereplaced"

type Composer struct {
	baseURL string
}

func NewComposer(cfg config.CatalogConfig) *Composer {
	return &Composer{baseURL: strings.TrimSuffix(cfg.BaseURL, "/")}
}

// ComposePicURI swaps the placeholder host for the configured base url.
// References without the placeholder are returned as they are.
func (c *Composer) ComposePicURI(uriTemplate string) string {
	return strings.Replace(uriTemplate, Placeholder, c.baseURL, 1)
}
