package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptionShotgunCompletion(t *testing.T) {
	d := ParseDescription("(Shotgun) P.Mahomes pass short right to T.Kelce for 12 yards (D.White).", "pass")

	require.True(t, d.OffensiveFormation.Valid)
	assert.Equal(t, "shotgun", d.OffensiveFormation.String)

	require.True(t, d.IsCompletePass.Valid)
	assert.True(t, d.IsCompletePass.Bool)

	require.True(t, d.PassTarget.Valid)
	assert.Equal(t, "T.Kelce", d.PassTarget.String)

	require.True(t, d.PassDefender.Valid)
	assert.Equal(t, "D.White", d.PassDefender.String)

	assert.Equal(t, "short", d.PassLength.String)
	assert.Equal(t, "right", d.PassLocation.String)

	require.True(t, d.YardsGained.Valid)
	assert.Equal(t, int32(12), d.YardsGained.Int32)

	assert.False(t, d.IsSack.Valid)
	assert.False(t, d.IsInterception.Valid)
}

func TestParseDescriptionSack(t *testing.T) {
	d := ParseDescription("P.Mahomes sacked at KC 35 for -7 yards (M.Judon).", "pass")

	require.True(t, d.IsSack.Valid)
	assert.True(t, d.IsSack.Bool)

	require.True(t, d.SackYards.Valid)
	assert.Equal(t, int32(7), d.SackYards.Int32)

	require.True(t, d.YardsGained.Valid)
	assert.Equal(t, int32(-7), d.YardsGained.Int32)
}

func TestParseDescriptionIncompletePass(t *testing.T) {
	d := ParseDescription("J.Allen pass incomplete deep left to S.Diggs.", "pass")

	require.True(t, d.IsCompletePass.Valid)
	assert.False(t, d.IsCompletePass.Bool)
	assert.Equal(t, "deep", d.PassLength.String)
	assert.Equal(t, "left", d.PassLocation.String)
	assert.Equal(t, "S.Diggs", d.PassTarget.String)
	assert.False(t, d.YardsGained.Valid)
}

func TestParseDescriptionInterception(t *testing.T) {
	d := ParseDescription("J.Burrow pass deep middle intercepted by M.Fitzpatrick at PIT 20.", "pass")

	require.True(t, d.IsInterception.Valid)
	assert.True(t, d.IsInterception.Bool)

	require.True(t, d.IsTurnover.Valid)
	assert.True(t, d.IsTurnover.Bool)

	require.True(t, d.IsCompletePass.Valid)
	assert.False(t, d.IsCompletePass.Bool)
}

func TestParseDescriptionRunGap(t *testing.T) {
	tests := []struct {
		name        string
		description string
		playType    string
		gap         string
		direction   string
	}{
		{"left tackle", "D.Henry rush left tackle for 4 yards.", "rush", "left tackle", "left"},
		{"up the middle", "D.Henry rush up the middle for 2 yards.", "rush", "middle", "middle"},
		{"right end", "J.Taylor rush right end for 9 yards.", "rush", "right end", "right"},
		{"sweep", "C.McCaffrey swept left for 11 yards.", "rush", "left end", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDescription(tt.description, tt.playType)
			require.True(t, d.RunGap.Valid)
			assert.Equal(t, tt.gap, d.RunGap.String)
			if tt.direction != "" {
				require.True(t, d.RunDirection.Valid)
				assert.Equal(t, tt.direction, d.RunDirection.String)
			}
		})
	}
}

func TestParseDescriptionRunGapSkippedOnPassWording(t *testing.T) {
	d := ParseDescription("T.Hill pass short left to R.Rice pushed right end for 5 yards.", "pass")
	assert.False(t, d.RunGap.Valid)
}

func TestParseDescriptionNoGain(t *testing.T) {
	d := ParseDescription("N.Harris rush up the middle for no gain.", "rush")
	require.True(t, d.YardsGained.Valid)
	assert.Equal(t, int32(0), d.YardsGained.Int32)
}

func TestParseDescriptionTouchdownSplit(t *testing.T) {
	pass := ParseDescription("P.Mahomes pass deep right to T.Hill for 44 yards, TOUCHDOWN.", "pass")
	require.True(t, pass.IsTouchdownPass.Valid)
	assert.True(t, pass.IsTouchdownPass.Bool)
	assert.False(t, pass.IsTouchdownRun.Valid)

	run := ParseDescription("D.Henry rush right guard for 3 yards, TOUCHDOWN.", "rush")
	require.True(t, run.IsTouchdownRun.Valid)
	assert.True(t, run.IsTouchdownRun.Bool)
	assert.False(t, run.IsTouchdownPass.Valid)
}

func TestParseDescriptionFumble(t *testing.T) {
	d := ParseDescription("J.Jacobs rush left guard for 3 yards. FUMBLES (T.Watt), recovered by PIT-M.Fitzpatrick.", "rush")

	require.True(t, d.IsFumble.Valid)
	assert.True(t, d.IsFumble.Bool)

	require.True(t, d.FumbleRecoveredBy.Valid)
	assert.Equal(t, "PIT-M.Fitzpatrick", d.FumbleRecoveredBy.String)

	require.True(t, d.FumbleForcedBy.Valid)
	assert.Equal(t, "T.Watt", d.FumbleForcedBy.String)

	require.True(t, d.IsTurnover.Valid)
	assert.True(t, d.IsTurnover.Bool)
}

func TestParseDescriptionFirstDown(t *testing.T) {
	d := ParseDescription("K.Walker rush right tackle for 12 yards for a first down.", "rush")
	require.True(t, d.IsFirstDown.Valid)
	assert.True(t, d.IsFirstDown.Bool)
}

func TestParseDescriptionPenalty(t *testing.T) {
	d := ParseDescription("PENALTY on NE-T.Brown, Holding, 10 yards, enforced at NE 25 - No Play.", "no_play")

	require.True(t, d.IsPenaltyOnPlay.Valid)
	assert.True(t, d.IsPenaltyOnPlay.Bool)

	require.True(t, d.PenaltyType.Valid)
	assert.Equal(t, "Holding", d.PenaltyType.String)

	assert.Equal(t, "NE", d.PenaltyTeam.String)
	assert.Equal(t, "T.Brown", d.PenaltyPlayer.String)

	require.True(t, d.PenaltyYards.Valid)
	assert.Equal(t, int32(10), d.PenaltyYards.Int32)

	require.True(t, d.PenaltyNoPlay.Valid)
	assert.True(t, d.PenaltyNoPlay.Bool)
	assert.False(t, d.PenaltyDeclined.Valid)
}

func TestParseDescriptionPenaltyTypeTitleCased(t *testing.T) {
	d := ParseDescription("PENALTY on KC-C.Jones, Roughing the Passer, 15 yards.", "no_play")
	require.True(t, d.PenaltyType.Valid)
	assert.Equal(t, "Roughing The Passer", d.PenaltyType.String)
}

func TestParseDescriptionFieldGoal(t *testing.T) {
	tests := []struct {
		name        string
		description string
		distance    int32
		result      string
	}{
		{"good", "H.Butker 52 yard field goal is GOOD, Center-J.Winchester.", 52, "GOOD"},
		{"no good", "J.Tucker 61 yard field goal is No Good, Wide Right.", 61, "NO GOOD"},
		{"blocked", "G.Zuerlein 48 yard field goal is BLOCKED (C.Jones).", 48, "BLOCKED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDescription(tt.description, "field_goal")
			require.True(t, d.IsFieldGoal.Valid)
			assert.True(t, d.IsFieldGoal.Bool)
			require.True(t, d.FieldGoalDistance.Valid)
			assert.Equal(t, tt.distance, d.FieldGoalDistance.Int32)
			require.True(t, d.FieldGoalResult.Valid)
			assert.Equal(t, tt.result, d.FieldGoalResult.String)
		})
	}
}

func TestParseDescriptionPunt(t *testing.T) {
	d := ParseDescription("T.Townsend punts 54 yards to BUF 12, Center-J.Winchester, fair catch by K.Hamlin.", "punt")

	require.True(t, d.IsPunt.Valid)
	assert.True(t, d.IsPunt.Bool)
	require.True(t, d.PuntDistance.Valid)
	assert.Equal(t, int32(54), d.PuntDistance.Int32)
	assert.False(t, d.IsFieldGoal.Valid)
}

func TestParseDescriptionPuntRequiresPlural(t *testing.T) {
	d := ParseDescription("Punt formation, direct snap to the up man.", "punt")
	assert.False(t, d.IsPunt.Valid)
}

func TestParseDescriptionKickoff(t *testing.T) {
	d := ParseDescription("H.Butker kicks 65 yards from KC 35 to the end zone, Touchback. Kickoff.", "kickoff")

	require.True(t, d.IsKickoff.Valid)
	assert.True(t, d.IsKickoff.Bool)
	require.True(t, d.IsTouchback.Valid)
	assert.True(t, d.IsTouchback.Bool)
}

func TestParseDescriptionScramble(t *testing.T) {
	d := ParseDescription("J.Hurts pass attempt turns into scramble right for 8 yards.", "pass")
	require.True(t, d.QuarterbackScramble.Valid)
	assert.True(t, d.QuarterbackScramble.Bool)
}

func TestParseDescriptionEmptyInput(t *testing.T) {
	d := ParseDescription("", "pass")
	assert.Equal(t, Description{}, d)
}

func TestParseDescriptionDeterministic(t *testing.T) {
	desc := "(Shotgun) P.Mahomes pass short right to T.Kelce for 12 yards (D.White)."
	first := ParseDescription(desc, "pass")
	second := ParseDescription(desc, "pass")
	assert.Equal(t, first, second)
}
