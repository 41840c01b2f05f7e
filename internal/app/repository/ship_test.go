package repository

import (
	"testing"
	"time"

	"ship_telemetry/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateShipDefaultWeight(t *testing.T) {
	rep := newTestRepo(t)

	ship, err := rep.CreateShip("Sand Dredger 01", "123456789", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultShipWeight, ship.Weight)

	heavy, err := rep.CreateShip("Cargo Carrier 02", "987654321", 2000)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, heavy.Weight)
}

func TestCreateShipDuplicateMMSIConflicts(t *testing.T) {
	rep := newTestRepo(t)

	_, err := rep.CreateShip("Sand Dredger 01", "123456789", 5000)
	require.NoError(t, err)

	// different name and weight do not matter, the MMSI is the key
	_, err = rep.CreateShip("Another Name", "123456789", 700)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGetOrCreateShip(t *testing.T) {
	rep := newTestRepo(t)

	created, err := rep.GetOrCreateShip("555000111")
	require.NoError(t, err)
	assert.Equal(t, "Ship 555000111", created.Name)
	assert.Equal(t, DefaultShipWeight, created.Weight)

	again, err := rep.GetOrCreateShip("555000111")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	ships, err := rep.GetAllShips(0, 100)
	require.NoError(t, err)
	assert.Len(t, ships, 1)
}

func TestGetAllShipsPagination(t *testing.T) {
	rep := newTestRepo(t)

	mmsis := []string{"100000001", "100000002", "100000003", "100000004"}
	for _, m := range mmsis {
		_, err := rep.CreateShip("Ship "+m, m, 1000)
		require.NoError(t, err)
	}

	page, err := rep.GetAllShips(1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "100000002", page[0].MMSI)
	assert.Equal(t, "100000003", page[1].MMSI)
}

func TestUpdateShipWeight(t *testing.T) {
	rep := newTestRepo(t)

	ship, err := rep.CreateShip("Patrol Boat 03", "456123789", 1000)
	require.NoError(t, err)

	require.NoError(t, rep.UpdateShipWeight(ship.ID, 500))

	reread, err := rep.GetShipByMMSI("456123789")
	require.NoError(t, err)
	assert.Equal(t, 500.0, reread.Weight)
}

func TestGetShipsOverview(t *testing.T) {
	rep := newTestRepo(t)

	quiet, err := rep.CreateShip("Quiet Ship", "111111111", 1000)
	require.NoError(t, err)
	active, err := rep.CreateShip("Active Ship", "222222222", 1000)
	require.NoError(t, err)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		point := &ds.Telemetry{Timestamp: base.Add(time.Duration(i) * time.Hour), Speed: float64(i)}
		require.NoError(t, rep.CreateTelemetry(point, active.ID))
	}

	overview, err := rep.GetShipsOverview()
	require.NoError(t, err)
	require.Len(t, overview, 2)

	byMMSI := map[string]ShipOverview{}
	for _, entry := range overview {
		byMMSI[entry.MMSI] = entry
	}

	assert.Nil(t, byMMSI["111111111"].LastTelemetry)
	assert.Equal(t, quiet.Name, byMMSI["111111111"].Name)

	last := byMMSI["222222222"].LastTelemetry
	require.NotNil(t, last)
	assert.True(t, last.Timestamp.Equal(base.Add(2*time.Hour)))
	assert.Equal(t, 2.0, last.Speed)
}
