package biblio

import "strings"

// readingSpaces are stripped from phonetic readings so that sorting on
// title_kana is not disturbed by word breaks.
var readingSpaces = strings.NewReplacer(" ", "", "　", "")

// NormalizeReading removes half-width and full-width spaces.
func NormalizeReading(s string) string {
	return readingSpaces.Replace(s)
}
