// Package errors provides classified errors for the SEO generation
// pipeline. Every failure carries a category (what subsystem), a severity
// (how bad) and an optional structured context map, so the CLI layer can
// map errors to exit codes and log fields without string matching.
//
// Validation failures additionally carry the list of violated quality
// rules, aggregated per page, so one error names everything wrong with a
// record instead of failing rule by rule.
package errors
