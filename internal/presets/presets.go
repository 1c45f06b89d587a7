// internal/presets/presets.go
//
// Named board sizes ("tiny", "medium", ...) the HTTP layer accepts in place
// of a raw cell count.
//
// Initialization behavior (Init):
//   1. If PRESETS_FILE is set, load the table from that file.
//   2. Otherwise fall back to the embedded assets/presets.txt.
//
// Line format: "<name> <cells> <density>", '#' starts a comment.
// Lines whose cell count is not a perfect square or exceeds maxCells, or
// whose density falls outside [0, 1), are skipped with a warning.
// Names are lowercased.
// Initialization is run once (sync.Once).

package presets

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/minesweeper/assets"
	"github.com/robalobadob/minesweeper/internal/board"
)

// Preset is a named board configuration.
type Preset struct {
	Name    string  `json:"name"`
	Cells   int     `json:"cells"`
	Side    int     `json:"side"`
	Density float64 `json:"density"`
	Bombs   int     `json:"bombs"`
}

// maxCells bounds preset boards; larger tables are almost certainly typos.
const maxCells = 1_000_000

var (
	initOnce   sync.Once
	table      map[string]Preset
	initialErr error
)

// Init loads the preset table exactly once.
// Returns an error if no usable preset was found.
func Init() error {
	initOnce.Do(func() {
		var lines []string
		var err error
		if path := os.Getenv("PRESETS_FILE"); path != "" {
			lines, err = readPresetFile(path)
		} else {
			lines, err = assets.PresetLines()
		}
		if err != nil {
			initialErr = err
			return
		}
		table = parse(lines)
		if len(table) == 0 {
			initialErr = errors.New("presets: table is empty")
		}
	})
	return initialErr
}

// readPresetFile loads non-comment lines from a file on disk.
func readPresetFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// parse turns raw lines into a lookup table, dropping invalid entries.
func parse(lines []string) map[string]Preset {
	out := make(map[string]Preset, len(lines))
	for _, line := range lines {
		p, err := parseLine(line)
		if err != nil {
			log.Warn().Err(err).Str("line", line).Msg("skipping preset")
			continue
		}
		out[p.Name] = p
	}
	return out
}

func parseLine(line string) (Preset, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Preset{}, fmt.Errorf("want 3 fields, got %d", len(fields))
	}
	cells, err := strconv.Atoi(fields[1])
	if err != nil {
		return Preset{}, fmt.Errorf("cells: %w", err)
	}
	density, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Preset{}, fmt.Errorf("density: %w", err)
	}
	if cells > maxCells {
		return Preset{}, fmt.Errorf("cells: %d exceeds %d", cells, maxCells)
	}
	// same rules as board.New, without allocating the grid
	side, bombs, err := board.Validate(cells, density)
	if err != nil {
		return Preset{}, err
	}
	return Preset{
		Name:    strings.ToLower(fields[0]),
		Cells:   cells,
		Side:    side,
		Density: density,
		Bombs:   bombs,
	}, nil
}

// Lookup returns the preset with the given name (case-insensitive).
func Lookup(name string) (Preset, bool) {
	p, ok := table[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// All returns every preset ordered by cell count, then name.
func All() []Preset {
	out := make([]Preset, 0, len(table))
	for _, p := range table {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cells != out[j].Cells {
			return out[i].Cells < out[j].Cells
		}
		return out[i].Name < out[j].Name
	})
	return out
}
