package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/shared/daterange"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, in, out time.Time) daterange.DateRange {
	t.Helper()
	dr, err := daterange.New(in, out)
	require.NoError(t, err)
	return dr
}

func TestMapOccupancy_SpanExpansion(t *testing.T) {
	res := Reservation{
		ID:         "res-1",
		PropertyID: "prop-1",
		Range:      mustRange(t, day(2025, time.June, 10), day(2025, time.June, 13)),
	}

	occ := MapOccupancy([]Reservation{res})

	require.Len(t, occ["2025-06-10"], 1)
	assert.Equal(t, RoleCheckin, occ["2025-06-10"][0].Role)
	require.Len(t, occ["2025-06-11"], 1)
	assert.Equal(t, RoleStay, occ["2025-06-11"][0].Role)
	require.Len(t, occ["2025-06-12"], 1)
	assert.Equal(t, RoleStay, occ["2025-06-12"][0].Role)
	require.Len(t, occ["2025-06-13"], 1)
	assert.Equal(t, RoleCheckout, occ["2025-06-13"][0].Role)

	assert.Empty(t, occ["2025-06-09"])
	assert.Empty(t, occ["2025-06-14"])
}

func TestMapOccupancy_SingleNight(t *testing.T) {
	res := Reservation{
		ID:    "res-2",
		Range: mustRange(t, day(2025, time.June, 10), day(2025, time.June, 11)),
	}

	occ := MapOccupancy([]Reservation{res})

	require.Len(t, occ["2025-06-10"], 1)
	assert.Equal(t, RoleCheckin, occ["2025-06-10"][0].Role)
	require.Len(t, occ["2025-06-11"], 1)
	assert.Equal(t, RoleCheckout, occ["2025-06-11"][0].Role)
}

func TestMapOccupancy_BackToBackTurnoverStacks(t *testing.T) {
	first := Reservation{
		ID:    "res-3",
		Range: mustRange(t, day(2025, time.June, 10), day(2025, time.June, 12)),
	}
	second := Reservation{
		ID:    "res-4",
		Range: mustRange(t, day(2025, time.June, 12), day(2025, time.June, 14)),
	}

	occ := MapOccupancy([]Reservation{first, second})

	markers := occ["2025-06-12"]
	require.Len(t, markers, 2)
	roles := []Role{markers[0].Role, markers[1].Role}
	assert.Contains(t, roles, RoleCheckout)
	assert.Contains(t, roles, RoleCheckin)
}

func TestOccupancyMapBlocks(t *testing.T) {
	res := Reservation{
		ID:    "res-5",
		Range: mustRange(t, day(2025, time.June, 10), day(2025, time.June, 12)),
	}

	occ := MapOccupancy([]Reservation{res})

	assert.True(t, occ.Blocks("2025-06-10"), "checkin blocks")
	assert.True(t, occ.Blocks("2025-06-11"), "stay blocks")
	assert.False(t, occ.Blocks("2025-06-12"), "bare checkout can be relet")
	assert.False(t, occ.Blocks("2025-06-20"), "untouched date")
}
