// Package sink provides the destinations HTTP log records are emitted to:
// the process logger, an in-memory recorder, a directory of Markdown files and a MongoDB collection.
package sink
