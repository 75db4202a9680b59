package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marbleisles/livia-bot/internal/entities"
	liviaerr "github.com/marbleisles/livia-bot/internal/errors"
	"github.com/marbleisles/livia-bot/internal/rulebook"
)

func TestDeriveAttributes_StatSpread(t *testing.T) {
	stats, err := rulebook.DeriveAttributes(entities.StatMind, entities.StatBody, entities.OriginNoble, "")
	require.NoError(t, err)

	assert.Equal(t, 5, stats[entities.StatMind])
	assert.Equal(t, 3, stats[entities.StatBody])
	assert.Equal(t, 1, stats[entities.StatSoul])
}

func TestDeriveAttributes_AllValidCombos(t *testing.T) {
	stats := entities.Stats()
	for _, primary := range stats {
		for _, secondary := range stats {
			if primary == secondary {
				continue
			}
			derived, err := rulebook.DeriveAttributes(primary, secondary, entities.OriginCitizen, "")
			require.NoError(t, err, "primary=%s secondary=%s", primary, secondary)
			assert.Equal(t, 5, derived[primary])
			assert.Equal(t, 3, derived[secondary])
		}
	}
}

func TestDeriveAttributes_SamePrimaryAndSecondary(t *testing.T) {
	_, err := rulebook.DeriveAttributes(entities.StatSoul, entities.StatSoul, entities.OriginNoble, "")
	require.Error(t, err)
	assert.Equal(t, liviaerr.CodeInvalidAttributeSelection, liviaerr.GetCode(err))
}

func TestDeriveAttributes_UnknownOrigin(t *testing.T) {
	_, err := rulebook.DeriveAttributes(entities.StatMind, entities.StatBody, entities.Origin("pirate"), "")
	require.Error(t, err)
	assert.Equal(t, liviaerr.CodeInvalidOriginChoice, liviaerr.GetCode(err))
}

func TestDeriveAttributes_StreetratWeaponRules(t *testing.T) {
	tests := []struct {
		name    string
		origin  entities.Origin
		weapon  entities.WeaponChoice
		wantErr bool
	}{
		{name: "streetrat with pistol", origin: entities.OriginStreetrat, weapon: entities.WeaponPistol},
		{name: "streetrat with dagger", origin: entities.OriginStreetrat, weapon: entities.WeaponDagger},
		{name: "streetrat without weapon", origin: entities.OriginStreetrat, weapon: "", wantErr: true},
		{name: "noble with weapon", origin: entities.OriginNoble, weapon: entities.WeaponPistol, wantErr: true},
		{name: "country without weapon", origin: entities.OriginCountry, weapon: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rulebook.DeriveAttributes(entities.StatBody, entities.StatSoul, tt.origin, tt.weapon)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, liviaerr.CodeInvalidOriginChoice, liviaerr.GetCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMaxPoolsFor(t *testing.T) {
	stats, err := rulebook.DeriveAttributes(entities.StatMind, entities.StatBody, entities.OriginNoble, "")
	require.NoError(t, err)

	pools := rulebook.MaxPoolsFor(stats)

	// Sanity tracks Mind, Health tracks Body, Spirit tracks Soul, all at stat × 2
	assert.Equal(t, entities.Pool{Current: 10, Max: 10}, pools.Sanity)
	assert.Equal(t, entities.Pool{Current: 6, Max: 6}, pools.Health)
	assert.Equal(t, entities.Pool{Current: 2, Max: 2}, pools.Spirit)
}
