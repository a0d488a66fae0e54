package schedule

import (
	"strconv"
	"strings"
)

// ToMinutes converts "HH:MM" into minutes since midnight.
// Malformed input yields 0 so it simply sorts first.
func ToMinutes(s string) int {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	return h*60 + m
}

// NormalizeTime pads "8:5" style times to "08:05". Input without exactly one
// colon is returned unchanged.
func NormalizeTime(s string) string {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return s
	}
	return pad2(strings.TrimSpace(parts[0])) + ":" + pad2(strings.TrimSpace(parts[1]))
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
