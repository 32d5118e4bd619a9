package dnd5e

import (
	"regexp"
	"strconv"
	"strings"
)

// Regex for dice notation: "2d6", "2d6+3", "2d6-1"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// ParseDice parses dice notation into count, sides, and modifier.
// Accepts "NdS", "NdS+M", "NdS-M", or a bare integer (returned as
// count=0, sides=0, modifier=value). Malformed input returns all zeros
// rather than an error; callers treat the zero triple as unparseable.
func ParseDice(expr string) (count, sides, modifier int32) {
	expr = strings.TrimSpace(strings.ToLower(expr))
	if expr == "" {
		return 0, 0, 0
	}

	if matches := diceNotationRegex.FindStringSubmatch(expr); matches != nil {
		c, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, 0, 0
		}
		s, err := strconv.Atoi(matches[2])
		if err != nil {
			return 0, 0, 0
		}
		m := 0
		if matches[3] != "" {
			m, err = strconv.Atoi(matches[3])
			if err != nil {
				return 0, 0, 0
			}
		}
		return int32(c), int32(s), int32(m)
	}

	// Bare integer: a flat damage value with no dice
	if flat, err := strconv.Atoi(expr); err == nil {
		return 0, 0, int32(flat)
	}

	return 0, 0, 0
}

// AverageDamage returns the expected value of a dice expression:
// count * (sides+1)/2 + modifier
func AverageDamage(count, sides, modifier int32) float64 {
	return float64(count)*float64(sides+1)/2 + float64(modifier)
}

// averageDamageFromNotation parses and averages in one step, returning
// 0 for unparseable input
func averageDamageFromNotation(expr string) float64 {
	count, sides, modifier := ParseDice(expr)
	return AverageDamage(count, sides, modifier)
}
