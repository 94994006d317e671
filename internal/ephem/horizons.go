package ephem

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chandrasekarnarayana/night-sky/internal/astro"
)

const (
	// HorizonsAPIURL is the JPL Horizons JSON API endpoint.
	HorizonsAPIURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

	// tableStep is the sampling interval of the downloaded tables. Fine
	// enough that linear interpolation stays well below a tenth of a
	// degree even for the Moon.
	tableStep = 10 * time.Minute

	// tablePad extends the table past the rise/set search window so every
	// query the engine issues lands inside the downloaded span.
	tablePad = 13 * time.Hour
)

// horizonsCommand maps body names to Horizons COMMAND identifiers.
var horizonsCommand = map[string]string{
	"sun":     "10",
	"moon":    "301",
	"mercury": "199",
	"venus":   "299",
	"mars":    "499",
	"jupiter": "599",
	"saturn":  "699",
}

// tableSample is one row of a downloaded ephemeris table.
type tableSample struct {
	t  time.Time
	eq astro.Equatorial
}

// HorizonsSource answers position queries from downloaded, disk-cached JPL
// Horizons observer tables. It is immutable once opened.
type HorizonsSource struct {
	tables map[string][]tableSample
	start  time.Time
	end    time.Time
}

// OpenHorizons downloads (or reuses cached) ephemeris tables for all tracked
// bodies covering instant ± the rise/set search window, and returns a source
// over them. baseURL overrides the Horizons endpoint when non-empty. Any
// failure aborts the whole open; the caller falls back to the builtin source.
func OpenHorizons(ctx context.Context, fetcher *Fetcher, baseURL string, instant time.Time) (*HorizonsSource, error) {
	if baseURL == "" {
		baseURL = HorizonsAPIURL
	}
	start := instant.UTC().Add(-tablePad).Truncate(time.Hour)
	end := instant.UTC().Add(tablePad).Truncate(time.Hour).Add(time.Hour)

	src := &HorizonsSource{
		tables: make(map[string][]tableSample, len(Bodies)),
		start:  start,
		end:    end,
	}

	for _, body := range Bodies {
		path, err := fetcher.FetchOrCache(ctx, tableURL(baseURL, body, start, end))
		if err != nil {
			return nil, err
		}
		samples, err := loadTable(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s table: %v", ErrFetchFailed, body, err)
		}
		src.tables[body] = samples
	}

	return src, nil
}

// Name implements Source.
func (s *HorizonsSource) Name() string {
	return "horizons"
}

// Position implements Source. Positions between table rows are linearly
// interpolated, with RA unwrapped across the 360/0 seam.
func (s *HorizonsSource) Position(body string, t time.Time) (astro.Equatorial, error) {
	samples, ok := s.tables[body]
	if !ok {
		return astro.Equatorial{}, fmt.Errorf("%w: %q", ErrUnknownBody, body)
	}

	t = t.UTC()
	if t.Before(samples[0].t) || t.After(samples[len(samples)-1].t) {
		return astro.Equatorial{}, fmt.Errorf("time %s outside %s table span", t.Format(time.RFC3339), body)
	}

	// Find the bracketing pair.
	hi := 1
	for hi < len(samples)-1 && samples[hi].t.Before(t) {
		hi++
	}
	lo := hi - 1

	span := samples[hi].t.Sub(samples[lo].t)
	if span <= 0 {
		return samples[lo].eq, nil
	}
	frac := float64(t.Sub(samples[lo].t)) / float64(span)

	ra0 := samples[lo].eq.RADeg
	ra1 := samples[hi].eq.RADeg
	// Unwrap RA so interpolation takes the short way around.
	if ra1-ra0 > 180 {
		ra1 -= 360
	} else if ra0-ra1 > 180 {
		ra1 += 360
	}

	ra := ra0 + (ra1-ra0)*frac
	for ra < 0 {
		ra += 360
	}
	for ra >= 360 {
		ra -= 360
	}

	return astro.Equatorial{
		RADeg:  ra,
		DecDeg: samples[lo].eq.DecDeg + (samples[hi].eq.DecDeg-samples[lo].eq.DecDeg)*frac,
	}, nil
}

// Available implements Source.
func (s *HorizonsSource) Available(body string) bool {
	samples, ok := s.tables[body]
	return ok && len(samples) > 0
}

// Covers reports whether the table span contains the instant.
func (s *HorizonsSource) Covers(t time.Time) bool {
	t = t.UTC()
	return !t.Before(s.start) && !t.After(s.end)
}

// tableURL builds the Horizons API request for one body's RA/Dec table.
// Values must be single-quoted per the API's parameter conventions.
func tableURL(baseURL, body string, start, end time.Time) string {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("COMMAND", fmt.Sprintf("'%s'", horizonsCommand[body]))
	params.Set("OBJ_DATA", "NO")
	params.Set("MAKE_EPHEM", "YES")
	params.Set("EPHEM_TYPE", "OBSERVER")
	params.Set("CENTER", "'500@399'") // geocentric
	params.Set("START_TIME", fmt.Sprintf("'%s'", start.Format("2006-01-02 15:04")))
	params.Set("STOP_TIME", fmt.Sprintf("'%s'", end.Format("2006-01-02 15:04")))
	params.Set("STEP_SIZE", fmt.Sprintf("'%dm'", int(tableStep.Minutes())))
	params.Set("QUANTITIES", "'1'") // astrometric RA/Dec

	return baseURL + "?" + params.Encode()
}

// horizonsResponse represents the JSON API response envelope. The ephemeris
// itself is a text blob in Result.
type horizonsResponse struct {
	Result string `json:"result"`
}

// loadTable parses a cached Horizons response file into time-ordered samples.
func loadTable(path string) ([]tableSample, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var resp horizonsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("parse JSON envelope: %w", err)
	}

	samples, err := parseTable(resp.Result)
	if err != nil {
		return nil, err
	}
	if len(samples) < 2 {
		return nil, fmt.Errorf("table has %d rows, need at least 2", len(samples))
	}
	return samples, nil
}

// parseTable extracts samples from the data section between the $$SOE and
// $$EOE markers of a Horizons text result.
func parseTable(result string) ([]tableSample, error) {
	soe := strings.Index(result, "$$SOE")
	eoe := strings.Index(result, "$$EOE")
	if soe == -1 || eoe == -1 || soe >= eoe {
		return nil, fmt.Errorf("could not find ephemeris data markers")
	}

	var samples []tableSample
	for _, line := range strings.Split(result[soe+5:eoe], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s, err := parseTableLine(line)
		if err != nil {
			continue // skip unparseable lines
		}
		samples = append(samples, s)
	}

	return samples, nil
}

// parseTableLine parses a single data line. Format for QUANTITIES='1':
//
//	2024-Jan-01 00:00 *   281.33174 -23.05620
//
// Fields: date, time, optional flag fields, RA, Dec. The two trailing
// numeric fields are the coordinates in degrees.
func parseTableLine(line string) (tableSample, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return tableSample{}, fmt.Errorf("insufficient fields: %d", len(fields))
	}

	t, err := time.Parse("2006-Jan-02 15:04", fields[0]+" "+fields[1])
	if err != nil {
		return tableSample{}, err
	}

	var ra, dec float64
	numeric := 0
	for i := 2; i < len(fields); i++ {
		val, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			continue
		}
		numeric++
		if numeric == 1 {
			ra = val
		} else if numeric == 2 {
			dec = val
			break
		}
	}
	if numeric < 2 {
		return tableSample{}, fmt.Errorf("could not find RA/Dec values")
	}

	return tableSample{
		t:  t.UTC(),
		eq: astro.Equatorial{RADeg: ra, DecDeg: dec},
	}, nil
}
