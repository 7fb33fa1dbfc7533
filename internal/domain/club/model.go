package club

import (
	"fmt"
	"strings"
)

// Club is a real football club competing in the league.
type Club struct {
	ID        int64
	Name      string
	ShortName string
	City      string
	Stadium   string
	LogoURL   string
	Coach     string
	President string
}

func (c Club) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("club name is required")
	}
	return nil
}
