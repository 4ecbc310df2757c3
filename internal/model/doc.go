// Package model defines the core data structures for password analysis.
// It contains the analysis result, charset profile, finding, and strength
// types shared across the analyzer, report, and database packages.
package model
