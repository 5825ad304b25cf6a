package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopDriversAndPainPointsPicksPerBank(t *testing.T) {
	summary := []ThemeSummary{
		{Bank: "KOKO", Theme: "UX_UI", N: 40, DriverScore: 3.0, PainScore: 0.1},
		{Bank: "KOKO", Theme: "ACCESS_AUTH", N: 30, DriverScore: 1.0, PainScore: 2.5},
		{Bank: "KOKO", Theme: "TXN_RELIABILITY", N: 25, DriverScore: 0.5, PainScore: 1.8},
		{Bank: "MOMO", Theme: "SUPPORT_SERVICE", N: 20, DriverScore: 2.0, PainScore: 0.9},
	}

	drivers, pains := TopDriversAndPainPoints(summary, 2)

	require.Len(t, drivers, 3)
	assert.Equal(t, "UX_UI", drivers[0].Theme)
	assert.Equal(t, "ACCESS_AUTH", drivers[1].Theme)
	assert.Equal(t, "MOMO", drivers[2].Bank)
	assert.Equal(t, KindDriver, drivers[0].Kind)

	require.Len(t, pains, 3)
	assert.Equal(t, "ACCESS_AUTH", pains[0].Theme)
	assert.Equal(t, "TXN_RELIABILITY", pains[1].Theme)
	assert.Equal(t, KindPainPoint, pains[0].Kind)
}

func TestTopDriversAndPainPointsAxesAreIndependent(t *testing.T) {
	// A single theme tops both axes at once.
	summary := []ThemeSummary{
		{Bank: "KOKO", Theme: "TXN_RELIABILITY", N: 50, DriverScore: 2.0, PainScore: 2.0},
		{Bank: "KOKO", Theme: "UX_UI", N: 20, DriverScore: 1.0, PainScore: 1.0},
	}

	drivers, pains := TopDriversAndPainPoints(summary, 1)

	require.Len(t, drivers, 1)
	require.Len(t, pains, 1)
	assert.Equal(t, "TXN_RELIABILITY", drivers[0].Theme)
	assert.Equal(t, "TXN_RELIABILITY", pains[0].Theme)
}

func TestTopDriversAndPainPointsFewerThanK(t *testing.T) {
	summary := []ThemeSummary{
		{Bank: "KOKO", Theme: "UX_UI", N: 20, DriverScore: 1.0, PainScore: 0.5},
	}

	drivers, pains := TopDriversAndPainPoints(summary, 3)

	assert.Len(t, drivers, 1)
	assert.Len(t, pains, 1)
}

func TestTopDriversAndPainPointsEmptyInput(t *testing.T) {
	drivers, pains := TopDriversAndPainPoints(nil, 3)

	assert.Empty(t, drivers)
	assert.Empty(t, pains)
}
