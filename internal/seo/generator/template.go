// Package generator turns input records into validated Page entities
// using registered content templates. All state lives in a caller-owned
// Session so independent runs and tests never share registries.
package generator

import (
	"github.com/aadarsh214/seogen/internal/seo/dataset"
	"github.com/aadarsh214/seogen/internal/seo/page"
)

// ContentFunc synthesizes the content blob for one record. The engine
// treats the result as opaque text; only the validation thresholds look
// inside it.
type ContentFunc func(dataset.Record) string

// MetadataFunc synthesizes per-record metadata overrides.
type MetadataFunc func(dataset.Record) *page.Overrides

// Template declares a named content pattern with its intent, schema type
// and minimum quality thresholds. Templates are not validated at
// registration time; thresholds apply at synthesis time.
type Template struct {
	ID               string
	Name             string
	Intent           page.Intent
	SchemaType       page.SchemaType
	MinWordCount     int
	MinFAQCount      int
	RequiredSections []string
	Content          ContentFunc
	Metadata         MetadataFunc
}
