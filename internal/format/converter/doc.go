// Package converter turns HTTP entities into single display lines.
// Default converters render entities as-is, sanitizing converters redact
// sensitive values by name before delegating to the defaults.
package converter
