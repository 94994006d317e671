package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadFile reads a star catalog CSV with the columns id,name,ra_deg,dec_deg,mag
// (header row required, column order free). Rows whose numeric fields fail to
// parse are dropped rather than failing the load; bad data quality is
// tolerated, a missing or unreadable file is not.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return parseEntries(f)
}

func parseEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "name", "ra_deg", "dec_deg", "mag"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("catalog header missing column %q", required)
		}
	}

	var entries []Entry
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}

		e, ok := parseEntry(rec, col)
		if !ok {
			continue // unparseable row, data-quality tolerance
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func parseEntry(rec []string, col map[string]int) (Entry, bool) {
	field := func(name string) string {
		i := col[name]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	id, err := strconv.Atoi(field("id"))
	if err != nil {
		return Entry{}, false
	}
	ra, err := strconv.ParseFloat(field("ra_deg"), 64)
	if err != nil {
		return Entry{}, false
	}
	dec, err := strconv.ParseFloat(field("dec_deg"), 64)
	if err != nil {
		return Entry{}, false
	}
	mag, err := strconv.ParseFloat(field("mag"), 64)
	if err != nil {
		return Entry{}, false
	}

	return Entry{ID: id, Name: field("name"), RADeg: ra, DecDeg: dec, Mag: mag}, true
}
