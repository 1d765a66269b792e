// Package fs writes extracted menus to the local filesystem.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/teamfood"
)

// DefaultFileName is the name of the menu file when no path is configured.
const DefaultFileName = "TeamFood Speiseplan.txt"

// SourceMarker is the first line of every menu file.
const SourceMarker = "teamfood"

// FormatMenuFile renders a menu in the line-oriented file format: the source
// marker, then for every day a weekday line followed by one
// "description;;side dish;food type;price" line per meal.
func FormatMenuFile(menu *teamfood.Menu) string {
	var b strings.Builder
	b.WriteString(SourceMarker)
	b.WriteString("\n")
	for _, w := range menu.Weeks {
		for _, d := range w.Days {
			b.WriteString(d.Weekday.String())
			b.WriteString("\n")
			for _, item := range d.Items {
				fmt.Fprintf(&b, "%s;;%s;%s;%s\n",
					item.Description, item.SideDish, item.Type, item.Price.StringFixed(2))
			}
		}
	}
	return b.String()
}

// Ensure Writer implements teamfood.MenuWriter at compile time.
var _ teamfood.MenuWriter = (*Writer)(nil)

// Writer writes a menu to a single file, replacing any previous version.
type Writer struct {
	path string
}

// NewWriter creates a new Writer for the file at path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the file the writer replaces.
func (w *Writer) Path() string {
	return w.path
}

// WriteMenu writes the menu to a temporary file next to the target and
// renames it over the target, so readers never see a partial file.
func (w *Writer) WriteMenu(ctx context.Context, menu *teamfood.Menu) error {
	if menu == nil {
		return teamfood.Errorf(teamfood.EINVALID, "menu required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(FormatMenuFile(menu)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write menu: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write menu: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", w.path, err)
	}
	return nil
}
