package pattern

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile saves s to path in the format named by its extension: ".svg",
// ".png", or ".uri" for the base64 data URI.
func WriteFile(s *Static, path string) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".svg", ".png", ".uri":
	default:
		return fmt.Errorf("pattern: unsupported export type %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch ext {
	case ".svg":
		_, err = f.Write(s.SVG())
	case ".png":
		err = s.PNG(f)
	case ".uri":
		_, err = fmt.Fprintln(f, s.DataURI())
	}
	if err != nil {
		return fmt.Errorf("pattern: write %s: %w", path, err)
	}
	return nil
}
