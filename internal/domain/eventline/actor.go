package eventline

import (
	"strconv"
	"strings"
)

// ActorKind tells how a free-text token identifies a player.
type ActorKind string

const (
	ActorByNumber ActorKind = "number"
	ActorByID     ActorKind = "id"
	ActorByName   ActorKind = "name"
)

// ActorRef is an identity hint extracted from admin-entered text. It is
// resolved against the player directory later; parsing never touches storage.
type ActorRef struct {
	Kind   ActorKind
	Number int
	ID     int64
	Name   string
}

// ParseActorToken classifies one trimmed token:
//
//	"id:42"    -> reference by record id
//	"#23"      -> reference by shirt number
//	"23"       -> reference by shirt number (bare digits default to number)
//	"John Doe" -> reference by name
//
// The id:/# prefixes win over the bare-digit rule. An empty token, or a
// prefixed token without digits, yields no reference.
func ParseActorToken(text string) (ActorRef, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return ActorRef{}, false
	}

	if len(s) >= 3 && strings.EqualFold(s[:3], "id:") {
		n, err := strconv.ParseInt(strings.TrimSpace(s[3:]), 10, 64)
		if err != nil {
			return ActorRef{}, false
		}
		return ActorRef{Kind: ActorByID, ID: n}, true
	}

	if strings.HasPrefix(s, "#") {
		n, err := strconv.Atoi(strings.TrimSpace(s[1:]))
		if err != nil {
			return ActorRef{}, false
		}
		return ActorRef{Kind: ActorByNumber, Number: n}, true
	}

	if isDigits(s) {
		n, _ := strconv.Atoi(s)
		return ActorRef{Kind: ActorByNumber, Number: n}, true
	}

	return ActorRef{Kind: ActorByName, Name: s}, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
