package shared

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	idRandomLength = 9
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// SubmissionID builds a submission identifier of the form
// <PREFIX>-<epoch millis>-<9 random base36 characters>. The random suffix makes
// collisions unlikely, not impossible; stored records are never deduplicated on it.
func SubmissionID(prefix string) string {
	var sb strings.Builder

	sb.WriteString(prefix)
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	sb.WriteByte('-')

	for range idRandomLength {
		sb.WriteByte(base36Alphabet[rand.IntN(len(base36Alphabet))])
	}

	return sb.String()
}

// BuildCacheKey joins key segments with the cache namespace separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// FirstNonEmpty returns the first non-blank value, or the last one when all are blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	if len(values) == 0 {
		return ""
	}

	return values[len(values)-1]
}

// DigitCount reports how many decimal digits the string contains, ignoring
// separators and formatting characters.
func DigitCount(s string) int {
	count := 0

	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}

	return count
}
