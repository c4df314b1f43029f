// Package utils provides helper functions shared by the sinks, the config loader and the CLI:
// safe integer conversion, portable file names and line-list files.
package utils
