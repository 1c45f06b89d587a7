package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed presets.txt
var FS embed.FS

// ReadLines returns the trimmed lines of r, skipping blanks and lines that
// start with '#'.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// PresetLines returns the non-comment lines of the embedded preset table.
func PresetLines() ([]string, error) {
	return readLines("presets.txt")
}
