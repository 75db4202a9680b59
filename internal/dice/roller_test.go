package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marbleisles/livia-bot/internal/dice"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single d20 roll",
			setupRolls: []int{15},
			count:      1,
			sides:      20,
			bonus:      0,
			wantTotal:  15,
			wantRolls:  []int{15},
		},
		{
			name:       "d20 with bonus",
			setupRolls: []int{12},
			count:      1,
			sides:      20,
			bonus:      3,
			wantTotal:  15,
			wantRolls:  []int{12},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      6,
			bonus:      0,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			bonus:      0,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := dice.NewMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}

func TestMockRoller_CritAndFumble(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{20, 1, 10})

	crit, err := roller.Roll(1, 20, 0)
	require.NoError(t, err)
	assert.True(t, crit.IsCrit)
	assert.False(t, crit.IsFumble)

	fumble, err := roller.Roll(1, 20, 0)
	require.NoError(t, err)
	assert.True(t, fumble.IsFumble)
	assert.False(t, fumble.IsCrit)

	plain, err := roller.Roll(1, 20, 0)
	require.NoError(t, err)
	assert.False(t, plain.IsCrit)
	assert.False(t, plain.IsFumble)
}

func TestRandomRoller_Roll(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 100; i++ {
		result, err := roller.Roll(1, 20, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Rolls[0], 1)
		assert.LessOrEqual(t, result.Rolls[0], 20)
		assert.Equal(t, result.Rolls[0], result.Total)
	}
}

func TestRandomRoller_InvalidInput(t *testing.T) {
	roller := dice.NewRandomRoller()

	_, err := roller.Roll(0, 20, 0)
	assert.Error(t, err)

	_, err = roller.Roll(1, 0, 0)
	assert.Error(t, err)
}
