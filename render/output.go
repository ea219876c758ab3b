package render

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const defaultName = "maze"

var (
	ErrInvalidDirectory = errors.New("invalid directory name")

	knownExts = []string{".png", ".bmp", ".tif", ".tiff", ".jpg", ".jpeg"}
)

// ResolveOutputPath decides where an image is written.
//
//	""               -> <cwd>/maze.<ext>
//	"some/dir"       -> some/dir/maze.<ext> when the directory exists
//	"missing/dir/"   -> ErrInvalidDirectory
//	"name.png"       -> <cwd>/name.<ext>
//	"some/dir/name"  -> some/dir/name.<ext>
func ResolveOutputPath(output, cwd string, f Format) (string, error) {
	if output == "" {
		return filepath.Join(cwd, defaultName+f.Ext()), nil
	}

	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, defaultName+f.Ext()), nil
	}

	if strings.HasSuffix(output, "/") || strings.HasSuffix(output, string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidDirectory, output)
	}

	dir, name := filepath.Split(output)
	name = stripImageExt(name)
	if dir == "" {
		dir = cwd
	}
	return filepath.Join(dir, name+f.Ext()), nil
}

func stripImageExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	for _, known := range knownExts {
		if ext == known {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// Save encodes g into a new file at path.
func Save(path string, g *maze.Grid, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(file)
	if err := Encode(w, g, f); err != nil {
		return err
	}
	return w.Flush()
}
