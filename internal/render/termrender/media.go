package termrender

import (
	"regexp"
	"strconv"
	"strings"
)

var featurePattern = regexp.MustCompile(`^\(\s*(min|max)-(width|height)\s*:\s*([0-9.]+)(px|em|rem)?\s*\)$`)

// mediaMatches evaluates a media query against a viewport measured in CSS
// pixels. Only width/height range features joined by "and" are understood;
// anything else never matches.
func mediaMatches(query string, viewportWidth, viewportHeight int) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return false
	}

	for _, part := range strings.Split(query, " and ") {
		part = strings.TrimSpace(part)
		switch part {
		case "all", "screen":
			continue
		}

		m := featurePattern.FindStringSubmatch(part)
		if m == nil {
			return false
		}

		limit, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return false
		}
		if m[4] == "em" || m[4] == "rem" {
			limit *= remPixels
		}

		actual := viewportWidth
		if m[2] == "height" {
			actual = viewportHeight
		}
		if actual <= 0 {
			return false
		}

		if m[1] == "max" && float64(actual) > limit {
			return false
		}
		if m[1] == "min" && float64(actual) < limit {
			return false
		}
	}
	return true
}
