package utils

import "strings"

func FormatBoolean(yesno bool, yes string, no string) string {
	if yesno {
		return yes
	}
	return no
}

// Lines splits a body on "\n", trims a trailing "\r" from each line and
// drops blank lines.
func Lines(body string) []string {
	lines := Map(strings.Split(body, "\n"), func(line string) string {
		return strings.TrimSuffix(line, "\r")
	})
	return Filter(lines, func(line string) bool {
		return line != ""
	})
}
