// Package tablefile loads delimited text files into csvviewer models.
package tablefile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fvbommel/sortorder"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-csvviewer"
	"github.com/domonda/go-csvviewer/csvtable"
)

var (
	// ErrNotFound is returned for files that do not exist
	// or are directories.
	ErrNotFound = errors.New("table file not found")

	// ErrInvalidName is returned for names that would
	// leave the root directory or address hidden files.
	ErrInvalidName = errors.New("invalid table file name")
)

// Resolve returns the file with name directly within root.
func Resolve(root fs.File, name string) (fs.File, error) {
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	file := root.Join(name)
	if !file.Exists() || file.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return file, nil
}

// Extensions are the lower case file name extensions
// of the files returned by List.
var Extensions = []string{".csv", ".tsv", ".tab", ".txt"}

// List returns the names of the non hidden table files
// directly within root in natural sort order.
func List(ctx context.Context, root fs.File) ([]string, error) {
	var names []string
	err := root.ListDirContext(ctx, func(file fs.File) error {
		name := file.Name()
		if strings.HasPrefix(name, ".") || file.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(name))
		for _, e := range Extensions {
			if ext == e {
				names = append(names, name)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Sort(sortorder.Natural(names))
	return names, nil
}

// Options control how Load interprets a file.
type Options struct {
	// Delimiter separates fields. If empty,
	// it is derived from the file name extension.
	Delimiter string

	// Detect sniffs the delimiter from the file content
	// and takes precedence over Delimiter.
	Detect bool
}

// Load reads file and returns a TableModel holding its content.
// The caller owns the returned model and has to dispose it.
func Load(ctx context.Context, file fs.FileReader, opts Options) (*csvviewer.TableModel, error) {
	if !file.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, file.Name())
	}
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file.Name(), err)
	}

	delimiter := opts.Delimiter
	switch {
	case opts.Detect:
		format, err := csvtable.DetectFormat(data, csvtable.NewDefaultFormatDetectionConfig())
		if err != nil {
			return nil, fmt.Errorf("detecting format of %s: %w", file.Name(), err)
		}
		delimiter = format.Separator
	case delimiter == "":
		delimiter = csvviewer.DelimiterForFileName(file.Name())
	}
	return csvviewer.NewTableModel(string(data), delimiter), nil
}
