// Package model defines the core data types shared across the outliner
// library: text fragments with font and position metadata, heading levels,
// and the Outline structure returned for each processed document.
package model
