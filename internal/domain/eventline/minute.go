package eventline

import (
	"strconv"
	"strings"
)

var minuteMarkerReplacer = strings.NewReplacer("’", "", "`", "", "'", "", "min", "")

// ExtractMinute parses a minute token such as "45", "45'", "90+2" or
// "12min". Stoppage-time tokens ("45+2") sum both halves. Returns 0 when the
// token is not a minute; a match minute is always positive.
func ExtractMinute(token string) int {
	t := strings.TrimSpace(token)
	if t == "" {
		return 0
	}

	t = minuteMarkerReplacer.Replace(t)
	if base, add, ok := strings.Cut(t, "+"); ok {
		return atoiOr(base, 0) + atoiOr(add, 0)
	}

	return atoiOr(t, 0)
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
