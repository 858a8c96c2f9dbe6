package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Catalog maps a claim type to the claim options the wizard offers for it.
type Catalog struct {
	ClaimTypes []CatalogEntry `yaml:"claimTypes"`
}

type CatalogEntry struct {
	Type    string   `yaml:"type"`
	Options []string `yaml:"options"`
}

// defaultCatalogYAML is used when CLAIM_TYPE_CATALOG does not point at a file.
const defaultCatalogYAML = `
claimTypes:
  - type: life
    options: [hospitalization, critical-illness, disability, death]
  - type: vehicle
    options: [accident, theft, third-party, natural-disaster]
`

// LoadCatalog reads the claim-type catalog from path, falling back to the
// built-in defaults when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	raw := []byte(defaultCatalogYAML)
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read claim type catalog: %w", err)
		}
		raw = b
	}

	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to parse claim type catalog: %w", err)
	}
	if len(c.ClaimTypes) == 0 {
		return nil, fmt.Errorf("claim type catalog is empty")
	}
	return &c, nil
}

// OptionsFor returns the claim options configured for a claim type.
func (c *Catalog) OptionsFor(claimType string) ([]string, bool) {
	for _, e := range c.ClaimTypes {
		if e.Type == claimType {
			return e.Options, true
		}
	}
	return nil, false
}
