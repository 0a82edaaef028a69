package finder

import (
	"datefinder/dateparse"
	"strings"
)

// preProcess rejects candidates made of bare numbers that are unlikely to be a date: any two
// numbers, or three numbers when none of them could be the year
func (e *Engine) preProcess(candidate string) bool {
	parts := strings.Fields(strings.TrimSpace(candidate))

	switch len(parts) {
	case 2:
		if isBareInt(parts[0]) && isBareInt(parts[1]) {
			return false
		}
	case 3:
		if strings.Contains(candidate, "'") {
			return true
		}
		hasYear := false
		for _, part := range parts {
			value, ok := parseBareInt(part)
			if !ok {
				return true
			}
			if value >= e.minYear && value <= e.maxYear {
				hasYear = true
			}
		}
		if !hasYear {
			return false
		}
	}
	return true
}

func (e *Engine) postProcess(date dateparse.Date) bool {
	return date.Year >= e.minYear && date.Year <= e.maxYear
}
