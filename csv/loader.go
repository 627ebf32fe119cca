// Package csv loads the cleaned metro rent dataset from a delimited file
// using encoding/csv.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/mrmovin/relochat"
	"golang.org/x/sync/singleflight"
)

// DefaultFilename is the expected name of the cleaned dataset file.
const DefaultFilename = "metro_rents.csv"

// EnvPath is the environment variable that overrides path resolution.
const EnvPath = "RELOCHAT_DATA"

// Ensure Loader implements relochat.DatasetLoader at compile time.
var _ relochat.DatasetLoader = (*Loader)(nil)

// Loader loads and memoizes the rent dataset. The dataset is read once, on
// first Load, and cached for the process lifetime; concurrent first callers
// are deduplicated so the file is only parsed once. Load errors are cached
// too and not retried.
type Loader struct {
	// Path is an explicit dataset path. When empty, candidate paths are
	// tried in order: $RELOCHAT_DATA, the working directory, then a data/
	// subdirectory.
	Path string

	group singleflight.Group

	mu     sync.Mutex
	loaded bool
	ds     *relochat.Dataset
	err    error
}

// NewLoader creates a Loader. path may be empty to use candidate paths.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Load returns the cached dataset, reading and parsing the backing file on
// first call.
func (l *Loader) Load(ctx context.Context) (*relochat.Dataset, error) {
	l.mu.Lock()
	if l.loaded {
		ds, err := l.ds, l.err
		l.mu.Unlock()
		return ds, err
	}
	l.mu.Unlock()

	v, err, _ := l.group.Do("dataset", func() (any, error) {
		return l.read(ctx)
	})

	l.mu.Lock()
	if !l.loaded {
		l.loaded = true
		l.err = err
		if v != nil {
			l.ds = v.(*relochat.Dataset)
		}
	}
	ds, err := l.ds, l.err
	l.mu.Unlock()
	return ds, err
}

func (l *Loader) read(ctx context.Context) (*relochat.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := l.resolvePath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// resolvePath picks the first candidate path that exists.
func (l *Loader) resolvePath() (string, error) {
	var candidates []string
	if l.Path != "" {
		candidates = []string{l.Path}
	} else {
		if env := os.Getenv(EnvPath); env != "" {
			candidates = append(candidates, env)
		}
		candidates = append(candidates, DefaultFilename, filepath.Join("data", DefaultFilename))
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", relochat.Errorf(relochat.ENOTFOUND,
		"Rent dataset not found. Place %s next to the binary or set %s.", DefaultFilename, EnvPath)
}

// yearColumnRe matches legacy annual average headers like "2022_Avg_Rent".
var yearColumnRe = regexp.MustCompile(`^(\d{4})_Avg_Rent$`)

// column kinds resolved from headers.
type columnKind int

const (
	colSkip columnKind = iota
	colName
	colState
	colYear
	colCurrentRent
)

type column struct {
	kind columnKind
	year int
}

// Parse reads the dataset from r. Known legacy headers are renamed to
// canonical fields ("City" → name, "StateName" → state), every column whose
// header contains "Rent" is coerced to a number (unparseable values become
// nil), rows without a current rent are dropped, and growth fields are
// derived before the dataset is returned.
func Parse(r io.Reader) (*relochat.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset headers: %w", err)
	}

	columns := make([]column, len(headers))
	years := map[int]bool{}
	for i, h := range headers {
		columns[i] = classifyColumn(strings.TrimSpace(h))
		if columns[i].kind == colYear {
			years[columns[i].year] = true
		}
	}

	var metros []*relochat.Metro
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed rows are skipped, not fatal.
			continue
		}

		m := &relochat.Metro{AvgRent: make(map[int]*float64, len(years))}
		for i, val := range row {
			if i >= len(columns) {
				break
			}
			val = strings.TrimSpace(val)
			switch columns[i].kind {
			case colName:
				m.Name = val
			case colState:
				m.State = strings.ToUpper(val)
			case colYear:
				m.AvgRent[columns[i].year] = parseRent(val)
			case colCurrentRent:
				m.CurrentRent = parseRent(val)
			}
		}

		// Rows without a name or any recent value are unusable.
		if m.Name == "" || m.CurrentRent == nil {
			continue
		}
		metros = append(metros, m)
	}

	metros = relochat.AugmentGrowth(metros)

	return &relochat.Dataset{
		Metros: metros,
		States: stateCodes(metros),
		Years:  sortedYears(years),
	}, nil
}

func classifyColumn(header string) column {
	switch header {
	case "City", "RegionName":
		return column{kind: colName}
	case "StateName", "State":
		return column{kind: colState}
	case "Current_Rent":
		return column{kind: colCurrentRent}
	}
	if m := yearColumnRe.FindStringSubmatch(header); m != nil {
		year, _ := strconv.Atoi(m[1])
		return column{kind: colYear, year: year}
	}
	return column{kind: colSkip}
}

// parseRent coerces a cell to a number. Currency symbols and thousands
// separators are tolerated; anything unparseable becomes nil.
func parseRent(val string) *float64 {
	val = strings.ReplaceAll(val, "$", "")
	val = strings.ReplaceAll(val, ",", "")
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil
	}
	return &f
}

func stateCodes(metros []*relochat.Metro) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range metros {
		s := strings.ToUpper(strings.TrimSpace(m.State))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func sortedYears(years map[int]bool) []int {
	out := make([]int, 0, len(years))
	for y := range years {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}
