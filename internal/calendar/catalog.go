// Package calendar generates a month of outfit suggestions from a static
// catalog and merges in user-saved overrides. Generation is a pure function
// of (year, month, catalog, random source); persistence of overrides lives in
// the storage layer.
package calendar

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"fitfx-backend-go/internal/models"
)

// Occasion labels produced by the generator. Saved overrides may carry other
// values ("Other", a custom label); these constants cover only what the
// weekday rule emits.
const (
	OccasionProfessional = "Professional"
	OccasionParty        = "Party"
	OccasionCasual       = "Casual"
)

// Style labels produced by the generator. Overrides may also carry "Fusion"
// or "Other".
const (
	StyleAmerican = "American"
	StyleIndian   = "Indian"
)

// Catalog holds the static outfit rows, bucketed by lowercase occasion and
// style keys ("professional" -> "american" -> rows).
type Catalog map[string]map[string][]models.Outfit

// Bucket returns the rows for an (occasion, style) pair. A missing bucket is
// an empty slice, never an error.
func (c Catalog) Bucket(occasion, style string) []models.Outfit {
	styles, ok := c[occasion]
	if !ok {
		return nil
	}
	return styles[style]
}

//go:embed catalog.json
var catalogJSON []byte

// LoadCatalog parses a catalog from JSON.
func LoadCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse outfit catalog: %w", err)
	}
	return c, nil
}

// DefaultCatalog returns the catalog shipped with the binary. The embedded
// asset is validated at test time, so a parse failure here is a build defect.
func DefaultCatalog() Catalog {
	c, err := LoadCatalog(catalogJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded outfit catalog is invalid: %v", err))
	}
	return c
}
