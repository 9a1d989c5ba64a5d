package risk

import (
	"testing"

	"finwatch/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiersAreDisjointAndNonEmpty(t *testing.T) {
	seen := map[string]Tier{}
	for _, tier := range []Tier{TierLow, TierMedium, TierHigh} {
		list := Countries(tier)
		require.GreaterOrEqual(t, len(list), 10, "tier %s too small", tier)
		for _, c := range list {
			prev, dup := seen[c]
			require.False(t, dup, "country %s in both %s and %s", c, prev, tier)
			seen[c] = tier
		}
	}
}

func TestTierOf(t *testing.T) {
	tests := []struct {
		country string
		want    Tier
		known   bool
	}{
		{"USA", TierLow, true},
		{"Brazil", TierMedium, true},
		{"North Korea", TierHigh, true},
		{"Atlantis", TierLow, false},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			got, ok := TierOf(tt.country)
			assert.Equal(t, tt.known, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAmountProfiles(t *testing.T) {
	for _, txType := range models.TransactionTypes {
		p, ok := AmountProfiles[txType]
		require.True(t, ok, "missing profile for %s", txType)

		t.Run(txType, func(t *testing.T) {
			// High ranges sit strictly above Normal ranges.
			assert.Greater(t, p.HighMin, p.NormalMin)
			assert.Greater(t, p.HighMax, p.NormalMax)
			assert.GreaterOrEqual(t, p.HighMin, p.NormalMax)

			// The scoring threshold is the top of the normal range, so the
			// generator and the scorer agree on what counts as large.
			assert.Equal(t, p.NormalMax, p.Threshold)

			lo, hi := p.Range(models.RiskHigh)
			assert.Equal(t, p.HighMin, lo)
			assert.Equal(t, p.HighMax, hi)
			lo, hi = p.Range(models.RiskNormal)
			assert.Equal(t, p.NormalMin, lo)
			assert.Equal(t, p.NormalMax, hi)
		})
	}
}
