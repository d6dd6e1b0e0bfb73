package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, now time.Time) (*Service, *Store) {
	t.Helper()
	store := NewStore(t.TempDir())
	svc := NewService(store)
	svc.now = func() time.Time { return now }
	return svc, store
}

func TestCheckInCreatesTodayRecord(t *testing.T) {
	now := time.Date(2026, time.January, 7, 8, 58, 0, 0, time.UTC)
	svc, store := newTestService(t, now)

	record, err := svc.CheckIn("odooalli2024001")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-07", record.Date)
	assert.Equal(t, "08:58", record.CheckIn)
	assert.Equal(t, StatusPresent, record.Status)
	assert.Empty(t, record.CheckOut)
	assert.Nil(t, record.HoursWorked)

	stored, err := store.FindForDay("odooalli2024001", "2026-01-07")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, record.ID, stored.ID)
}

func TestCheckInTwiceReplacesRecord(t *testing.T) {
	now := time.Date(2026, time.January, 7, 9, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, now)

	_, err := svc.CheckIn("odooalli2024001")
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(30 * time.Minute) }
	_, err = svc.CheckIn("odooalli2024001")
	require.NoError(t, err)

	records, err := store.ListByEmployee("odooalli2024001")
	require.NoError(t, err)
	require.Len(t, records, 1, "second check-in must replace, not duplicate")
	assert.Equal(t, "09:30", records[0].CheckIn)
}

func TestCheckOutComputesHours(t *testing.T) {
	now := time.Date(2026, time.January, 7, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	_, err := svc.CheckIn("odooalli2024001")
	require.NoError(t, err)

	svc.now = func() time.Time {
		return time.Date(2026, time.January, 7, 17, 30, 0, 0, time.UTC)
	}
	record, err := svc.CheckOut("odooalli2024001")
	require.NoError(t, err)
	assert.Equal(t, "17:30", record.CheckOut)
	require.NotNil(t, record.HoursWorked)
	assert.Equal(t, 8.5, *record.HoursWorked)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	now := time.Date(2026, time.January, 7, 17, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	_, err := svc.CheckOut("odooalli2024001")
	assert.ErrorIs(t, err, ErrNotCheckedIn)
}

func TestSetAttendanceIdempotent(t *testing.T) {
	svc, store := newTestService(t, time.Now())

	require.NoError(t, svc.SetAttendance("odooalli2024001", "2026-01-07", true))
	require.NoError(t, svc.SetAttendance("odooalli2024001", "2026-01-07", true))

	records, err := store.ListByDate("2026-01-07")
	require.NoError(t, err)
	require.Len(t, records, 1, "marking present twice must leave exactly one record")
	assert.Equal(t, DefaultCheckIn, records[0].CheckIn)
	assert.Equal(t, DefaultCheckOut, records[0].CheckOut)
	require.NotNil(t, records[0].HoursWorked)
	assert.Equal(t, DefaultHours, *records[0].HoursWorked)
}

func TestSetAttendancePreservesRealCheckIn(t *testing.T) {
	now := time.Date(2026, time.January, 7, 7, 45, 0, 0, time.UTC)
	svc, store := newTestService(t, now)

	_, err := svc.CheckIn("odooalli2024001")
	require.NoError(t, err)

	// Marking an already-present day must not overwrite the real clock-in.
	require.NoError(t, svc.SetAttendance("odooalli2024001", "2026-01-07", true))

	stored, err := store.FindForDay("odooalli2024001", "2026-01-07")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "07:45", stored.CheckIn)
}

func TestSetAttendanceAbsentDeletes(t *testing.T) {
	svc, store := newTestService(t, time.Now())

	require.NoError(t, svc.SetAttendance("odooalli2024001", "2026-01-07", true))
	require.NoError(t, svc.SetAttendance("odooalli2024001", "2026-01-07", false))

	stored, err := store.FindForDay("odooalli2024001", "2026-01-07")
	require.NoError(t, err)
	assert.Nil(t, stored)

	// Marking absent with no record is a no-op, not an error.
	require.NoError(t, svc.SetAttendance("odooalli2024001", "2026-01-07", false))
}

func TestSetAttendanceRejectsBadDate(t *testing.T) {
	svc, _ := newTestService(t, time.Now())
	assert.Error(t, svc.SetAttendance("odooalli2024001", "07/01/2026", true))
}
