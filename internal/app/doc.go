// Package app implements the httpfmt commands: rendering raw HTTP message files,
// fetching URLs through the logging transport and managing the configuration file.
package app
