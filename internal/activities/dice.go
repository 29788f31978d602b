package activities

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// dicePattern matches "3d6", "3d6 + 2", "3d6+2"
	dicePattern = regexp.MustCompile(`(\d+)d(\d+)(?:\s*\+\s*(\d+))?`)

	// damagePattern matches "3d6 fire damage" style phrases in free text
	damagePattern = regexp.MustCompile(`(\d+d\d+(?:\s*\+\s*\d+)?)\s+(\w+)\s+damage`)
)

// formula renders a dice tuple the way the platform writes formulas
func formula(diceCount, diceValue, fixedValue int) string {
	switch {
	case diceCount > 0 && fixedValue > 0:
		return fmt.Sprintf("%dd%d + %d", diceCount, diceValue, fixedValue)
	case diceCount > 0:
		return fmt.Sprintf("%dd%d", diceCount, diceValue)
	case fixedValue > 0:
		return fmt.Sprintf("%d", fixedValue)
	default:
		return ""
	}
}

// firstDice returns the first dice formula found in free text, or ""
func firstDice(text string) string {
	m := dicePattern.FindString(text)
	return strings.TrimSpace(m)
}

// firstDamagePhrase scans free text for "<dice> <word> damage" and
// returns the formula and the damage word, or ("", "")
func firstDamagePhrase(text string) (string, string) {
	m := damagePattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return "", ""
	}
	return strings.TrimSpace(m[1]), m[2]
}
