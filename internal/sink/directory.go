package sink

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/oshokin/httpfmt/internal/constants"
	"github.com/oshokin/httpfmt/internal/emitter"
	"github.com/oshokin/httpfmt/internal/utils"
)

const (
	sequenceWidth = 6
	nameSeparator = "-"
	payloadSuffix = ".payload"
)

// Directory writes every record to its own file under a directory.
// Files are named by a sequence number and the exchange id, so the directory listing keeps emission order.
// Text records become Markdown files. Binary records become a payload file plus a Markdown caption file.
type Directory struct {
	path string

	mu       sync.Mutex
	sequence int
}

// NewDirectory creates the directory if needed and returns a sink writing into it.
// Numbering continues after the highest sequence already present in the directory.
func NewDirectory(path string) (*Directory, error) {
	if err := os.MkdirAll(path, constants.DefaultFolderPermissions); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	var last int

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if sequence, ok := sequenceOf(entry.Name()); ok && sequence > last {
			last = sequence
		}
	}

	return &Directory{path: path, sequence: last}, nil
}

// Path returns the directory the sink writes to.
func (d *Directory) Path() string {
	return d.path
}

// EmitText writes text to a new Markdown file.
func (d *Directory) EmitText(ctx context.Context, text string, level zapcore.Level, timestamp time.Time) error {
	name := d.nextName(ctx)

	return d.writeFile(name+constants.ExtensionMarkdown, []byte(recordHeader(level, timestamp)+text))
}

// EmitBinary writes payload to a ".payload" file with an extension matching mimeType.
// A non-empty caption is written next to it as a Markdown file.
func (d *Directory) EmitBinary(
	ctx context.Context,
	caption string,
	payload []byte,
	mimeType string,
	level zapcore.Level,
	timestamp time.Time,
) error {
	name := d.nextName(ctx)

	if caption != "" {
		err := d.writeFile(name+constants.ExtensionMarkdown, []byte(recordHeader(level, timestamp)+caption))
		if err != nil {
			return err
		}
	}

	return d.writeFile(name+payloadSuffix+extensionOf(mimeType), payload)
}

func (d *Directory) nextName(ctx context.Context) string {
	d.mu.Lock()
	d.sequence++
	sequence := d.sequence
	d.mu.Unlock()

	name := fmt.Sprintf("%0*d", sequenceWidth, sequence)
	if id := emitter.ExchangeID(ctx); id != "" {
		name += nameSeparator + utils.SanitizeFilename(id)
	}

	return name
}

func (d *Directory) writeFile(name string, content []byte) error {
	path := filepath.Join(d.path, name)
	if err := os.WriteFile(path, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write record file: %w", err)
	}

	return nil
}

func recordHeader(level zapcore.Level, timestamp time.Time) string {
	return "<!-- level: " + level.String() +
		", time: " + timestamp.UTC().Format(time.RFC3339Nano) +
		" -->\n"
}

// extensionOf returns the first registered extension of mimeType, or ".bin".
func extensionOf(mimeType string) string {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return constants.ExtensionBin
	}

	extensions, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(extensions) == 0 {
		return constants.ExtensionBin
	}

	return extensions[0]
}

// sequenceOf parses the sequence number at the start of a record file name.
func sequenceOf(name string) (int, bool) {
	if len(name) < sequenceWidth {
		return 0, false
	}

	sequence, err := strconv.Atoi(name[:sequenceWidth])
	if err != nil {
		return 0, false
	}

	return sequence, true
}

var _ emitter.Sink = (*Directory)(nil)
