package employee

import (
	"fmt"
	"strings"
)

// GenerateEmployeeID builds the human-readable badge id: the "odoo" prefix,
// up to two lowercase characters from each name, the joining year and a
// three-digit zero-padded serial. Names shorter than two characters
// contribute what they have; nothing is padded.
func GenerateEmployeeID(firstName, lastName string, yearOfJoining, serial int) string {
	return fmt.Sprintf("odoo%s%s%d%03d", namePart(firstName), namePart(lastName), yearOfJoining, serial)
}

func namePart(name string) string {
	runes := []rune(strings.ToLower(strings.TrimSpace(name)))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}
