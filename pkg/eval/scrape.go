package eval

import (
	"regexp"
	"strconv"
	"strings"
)

// Scraper recovers literal values from raw source fragments that the
// upstream parser kept alongside error-recovery nodes. It is deliberately
// separate from the structural cascade so it can be swapped out or
// disabled (a nil Scraper on the Evaluator turns all text fallbacks off).
type Scraper struct {
	number *regexp.Regexp
	triple *regexp.Regexp
}

// NewScraper returns a Scraper with the default patterns.
func NewScraper() *Scraper {
	return &Scraper{
		number: regexp.MustCompile(`-?\d+(?:\.\d+)?`),
		triple: regexp.MustCompile(`\[\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)`),
	}
}

// Number scans text for the first numeric token.
func (s *Scraper) Number(text string) (float64, bool) {
	m := s.number.FindString(text)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Triple scans text for a bracketed comma-separated 3-tuple.
func (s *Scraper) Triple(text string) ([3]float64, bool) {
	m := s.triple.FindStringSubmatch(text)
	if m == nil {
		return [3]float64{}, false
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return [3]float64{}, false
		}
		out[i] = v
	}
	return out, true
}

// Unwrapped strips grouping punctuation from text and parses the remainder
// as a float. Used for parenthesized fragments whose body was lost.
func (s *Scraper) Unwrapped(text string) (float64, bool) {
	stripped := strings.TrimSpace(strings.Trim(text, " \t\r\n()[]"))
	if stripped == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
