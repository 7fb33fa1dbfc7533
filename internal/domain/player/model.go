package player

import (
	"strconv"
	"strings"
)

// Player is an athlete registered with a club. ClubID is nullable: a player
// can be transiently unaffiliated during creation, and club deletion keeps
// the player for historical events.
type Player struct {
	ID        int64
	ClubID    *int64
	FirstName string
	LastName  string
	Number    *int
	Position  string
	PhotoURL  string
}

// FullName joins the name parts, falling back to the shirt number so a
// number-only auto-created player still displays something.
func (p Player) FullName() string {
	name := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
	if name != "" {
		return name
	}
	if p.Number != nil {
		return "#" + strconv.Itoa(*p.Number)
	}
	return ""
}
