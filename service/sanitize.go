package service

import "regexp"

// Characters Easy accepts in consumer-supplied free text: Latin-adjacent
// letter ranges, ASCII letters and digits, and a fixed punctuation set.
var disallowedCharacters = regexp.MustCompile("[^\\x{00A1}-\\x{00AC}\\x{00AE}-\\x{00FF}\\x{0100}-\\x{017F}\\x{0180}-\\x{024F}" +
	"\\x{0250}-\\x{02AF}\\x{02B0}-\\x{02FF}\\x{0300}-\\x{036F}" +
	"A-Za-z0-9!#$%()*+,\\-./:;=?@\\[\\]^_`{}~ ]+")

const sanitizeMaxLength = 128

// Sanitize truncates a consumer-supplied string to 128 characters and strips
// everything outside the allowed character set. Truncation happens first;
// filtering may shorten the result further but never re-extends it.
func Sanitize(s string) string {
	runes := []rune(s)
	if len(runes) > sanitizeMaxLength {
		runes = runes[:sanitizeMaxLength]
	}
	return disallowedCharacters.ReplaceAllString(string(runes), "")
}
