package eventline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoalLine_PenaltyInStoppageTime(t *testing.T) {
	t.Parallel()

	event, ok := ParseGoalLine("#9 45+2' (pen)")
	require.True(t, ok)

	assert.Equal(t, 47, event.Minute)
	require.NotNil(t, event.Scorer)
	assert.Equal(t, ActorByNumber, event.Scorer.Kind)
	assert.Equal(t, 9, event.Scorer.Number)
	assert.True(t, event.IsPenalty)
	assert.False(t, event.IsOwnGoal)
	assert.Nil(t, event.Assist)
}

func TestParseGoalLine_OwnGoalTrailingTag(t *testing.T) {
	t.Parallel()

	event, ok := ParseGoalLine("Traoré 37' csc")
	require.True(t, ok)

	assert.Equal(t, 37, event.Minute)
	require.NotNil(t, event.Scorer)
	assert.Equal(t, ActorByName, event.Scorer.Kind)
	assert.Equal(t, "Traoré", event.Scorer.Name)
	assert.True(t, event.IsOwnGoal)
	assert.False(t, event.IsPenalty)
}

func TestParseGoalLine_AssistReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		assist ActorRef
	}{
		{name: "assist by name", line: "John Doe 12' (Assist Name)", assist: ActorRef{Kind: ActorByName, Name: "Assist Name"}},
		{name: "assist by bare number", line: "23 45' (10)", assist: ActorRef{Kind: ActorByNumber, Number: 10}},
		{name: "assist by record id", line: "#9 67' (id:42)", assist: ActorRef{Kind: ActorByID, ID: 42}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			event, ok := ParseGoalLine(tc.line)
			require.True(t, ok)
			require.NotNil(t, event.Assist)
			assert.Equal(t, tc.assist, *event.Assist)
			assert.False(t, event.IsPenalty)
			assert.False(t, event.IsOwnGoal)
		})
	}
}

func TestParseGoalLine_ParenthesizedTagIsNotAnAssist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line    string
		penalty bool
		ownGoal bool
	}{
		{line: "id:42 45+2 (pen)", penalty: true},
		{line: "#7 12' (P.)", penalty: true},
		{line: "#7 12' (pk)", penalty: true},
		{line: "Camara 81' (og)", ownGoal: true},
		{line: "Camara 81' (own goal)", ownGoal: true},
		{line: "Camara 81' (csc)", ownGoal: true},
	}

	for _, tc := range tests {
		event, ok := ParseGoalLine(tc.line)
		require.True(t, ok, "line=%q", tc.line)
		assert.Nil(t, event.Assist, "line=%q", tc.line)
		assert.Equal(t, tc.penalty, event.IsPenalty, "line=%q", tc.line)
		assert.Equal(t, tc.ownGoal, event.IsOwnGoal, "line=%q", tc.line)
	}
}

func TestParseGoalLine_TrailingTagsStripPunctuation(t *testing.T) {
	t.Parallel()

	event, ok := ParseGoalLine("#9 67' [pen]")
	require.True(t, ok)
	assert.True(t, event.IsPenalty)

	event, ok = ParseGoalLine("Sylla 90+3 og,")
	require.True(t, ok)
	assert.True(t, event.IsOwnGoal)
	assert.Equal(t, 93, event.Minute)
}

func TestParseGoalLine_NoMinuteKeepsWholeLineAsActor(t *testing.T) {
	t.Parallel()

	event, ok := ParseGoalLine("John Doe")
	require.True(t, ok)
	assert.Equal(t, 0, event.Minute)
	require.NotNil(t, event.Scorer)
	assert.Equal(t, "John Doe", event.Scorer.Name)
}

func TestParseGoalLine_EmptyActorStillStructured(t *testing.T) {
	t.Parallel()

	// The line reduces to a minute with no actor text; the event survives
	// parsing and resolution drops it later.
	event, ok := ParseGoalLine("45'")
	require.True(t, ok)
	assert.Equal(t, 45, event.Minute)
	assert.Nil(t, event.Scorer)
}

func TestParseGoalLine_BlankLine(t *testing.T) {
	t.Parallel()

	_, ok := ParseGoalLine("")
	assert.False(t, ok)

	_, ok = ParseGoalLine("   ")
	assert.False(t, ok)
}
