// Package requirements loads a project's plain-text dependency list.
//
// The file holds one dependency specifier per line. The editable
// self-install line ("-e .") marks the project itself rather than an
// external dependency and is dropped. Everything else is returned verbatim,
// in file order, without its line terminator.
package requirements

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/arthur-debert/stash/pkg/types"
)

// EditableMarker is the line requesting an editable install of the project.
const EditableMarker = "-e ."

// DefaultFile is the conventional name of the dependency list.
const DefaultFile = "requirements.txt"

// Load reads path and returns its dependency lines with the editable
// marker removed. Filesystem errors are returned unmodified.
func Load(fs types.FS, path string) ([]string, error) {
	return LoadWithMarker(fs, path, EditableMarker)
}

// LoadWithMarker is Load with a caller-chosen marker line.
func LoadWithMarker(fs types.FS, path, marker string) ([]string, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines, err := readLines(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return Filter(lines, marker), nil
}

// Parse reads lines from r and removes the editable marker.
func Parse(r io.Reader) ([]string, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	return Filter(lines, EditableMarker), nil
}

// Filter returns lines without any entry equal to marker, preserving order.
// An empty marker disables filtering.
func Filter(lines []string, marker string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if marker != "" && line == marker {
			continue
		}
		out = append(out, line)
	}
	return out
}

// readLines splits r into lines. A final line without a terminator is kept;
// a terminator at end of input does not produce an extra empty line.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
