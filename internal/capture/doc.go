// Package capture converts net/http messages into formatters.
// Headers are sorted, cookies are split off the header list and bodies are decoded and classified.
package capture
