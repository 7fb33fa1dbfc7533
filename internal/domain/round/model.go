package round

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Round is one ordered league stage ("J1".."J26"). Number is optional on
// legacy rows and inferred from the name when possible.
type Round struct {
	ID     int64
	Number *int
	Name   string
	Date   *time.Time
}

var (
	journeePattern = regexp.MustCompile(`(?i)j(?:ourn[ée]e)?\s*(\d{1,3})`)
	barePattern    = regexp.MustCompile(`\b(\d{1,3})\b`)
)

// InferNumberFromName recovers a round number from names like "J1",
// "Journée 12" or "Journee 3". Returns 0 when nothing usable is found.
func InferNumberFromName(name string) int {
	s := strings.TrimSpace(name)
	if s == "" {
		return 0
	}
	if m := journeePattern.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	if m := barePattern.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 0
}
