package eventline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCardLine_CodeAndWordAreEquivalent(t *testing.T) {
	t.Parallel()

	letter, ok := ParseCardLine("Diallo 52' R")
	require.True(t, ok)
	word, ok := ParseCardLine("Diallo 52' Red")
	require.True(t, ok)

	assert.Equal(t, letter, word)
	assert.Equal(t, 52, letter.Minute)
	assert.Equal(t, CardRed, letter.Color)
	require.NotNil(t, letter.Player)
	assert.Equal(t, "Diallo", letter.Player.Name)
}

func TestParseCardLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		minute int
		color  CardColor
		player ActorRef
	}{
		{name: "name minute letter", line: "John Doe 17' Y", minute: 17, color: CardYellow, player: ActorRef{Kind: ActorByName, Name: "John Doe"}},
		{name: "number minute red", line: "23 52' R", minute: 52, color: CardRed, player: ActorRef{Kind: ActorByNumber, Number: 23}},
		{name: "stoppage time", line: "#5 90+2 Y", minute: 92, color: CardYellow, player: ActorRef{Kind: ActorByNumber, Number: 5}},
		{name: "french color word", line: "Bangoura 74' rouge", minute: 74, color: CardRed, player: ActorRef{Kind: ActorByName, Name: "Bangoura"}},
		{name: "minute without color defaults yellow", line: "id:42 12'", minute: 12, color: CardYellow, player: ActorRef{Kind: ActorByID, ID: 42}},
		{name: "no minute no color", line: "Keita", minute: 0, color: CardYellow, player: ActorRef{Kind: ActorByName, Name: "Keita"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			event, ok := ParseCardLine(tc.line)
			require.True(t, ok)
			assert.Equal(t, tc.minute, event.Minute)
			assert.Equal(t, tc.color, event.Color)
			require.NotNil(t, event.Player)
			assert.Equal(t, tc.player, *event.Player)
		})
	}
}

func TestParseCardLine_ColorWordAloneIsActorText(t *testing.T) {
	t.Parallel()

	// Without a minute in front, the trailing token is not consumed as a
	// color; the whole line stays actor text.
	event, ok := ParseCardLine("Doe R")
	require.True(t, ok)
	assert.Equal(t, 0, event.Minute)
	assert.Equal(t, CardYellow, event.Color)
	require.NotNil(t, event.Player)
	assert.Equal(t, "Doe R", event.Player.Name)
}

func TestParseCardLine_NotAnEvent(t *testing.T) {
	t.Parallel()

	_, ok := ParseCardLine("")
	assert.False(t, ok)

	// Minute consumed, nothing left to identify a player.
	_, ok = ParseCardLine("52'")
	assert.False(t, ok)
}

func TestNormalizeCardColor(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"Y", "y", "yellow", "JAUNE", "", "junk"} {
		assert.Equal(t, CardYellow, NormalizeCardColor(raw), "raw=%q", raw)
	}
	for _, raw := range []string{"R", "r", "red", "Rouge"} {
		assert.Equal(t, CardRed, NormalizeCardColor(raw), "raw=%q", raw)
	}
}
