// Package entity defines the HTTP entities rendered by the formatting pipeline:
// headers, cookies and decoded form parameters.
// Entity names are fixed at construction time; only value-bearing fields are mutable.
package entity
