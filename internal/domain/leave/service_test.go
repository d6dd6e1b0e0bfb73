package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *Store) {
	t.Helper()
	store := NewStore(t.TempDir())
	svc := NewService(store)
	svc.now = func() time.Time {
		return time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc, store
}

func submitPayload() SubmitPayload {
	return SubmitPayload{
		LeaveType: TypeCasual,
		StartDate: "2026-01-15",
		EndDate:   "2026-01-17",
		Reason:    "personal work",
	}
}

func TestSubmitStartsPending(t *testing.T) {
	svc, store := newTestService(t)

	request, err := svc.Submit("odoosasm2024002", "Sarah Smith", submitPayload())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, request.Status)
	assert.Equal(t, "2026-01-10", request.AppliedOn)
	assert.Equal(t, "Sarah Smith", request.EmployeeName)
	assert.NotEmpty(t, request.ID)

	all, err := store.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestSubmitSameDayRangeAllowed(t *testing.T) {
	svc, _ := newTestService(t)

	payload := submitPayload()
	payload.EndDate = payload.StartDate
	_, err := svc.Submit("odoosasm2024002", "Sarah Smith", payload)
	assert.NoError(t, err)
}

func TestSubmitRejectsInvertedRange(t *testing.T) {
	svc, _ := newTestService(t)

	payload := submitPayload()
	payload.StartDate = "2026-01-17"
	payload.EndDate = "2026-01-15"
	_, err := svc.Submit("odoosasm2024002", "Sarah Smith", payload)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := newTestService(t)

	payload := submitPayload()
	payload.LeaveType = "sabbatical"
	_, err := svc.Submit("odoosasm2024002", "Sarah Smith", payload)
	require.Error(t, err)

	payload = submitPayload()
	payload.Reason = ""
	_, err = svc.Submit("odoosasm2024002", "Sarah Smith", payload)
	require.Error(t, err)
}

func TestSetStatusOverwrites(t *testing.T) {
	svc, store := newTestService(t)

	request, err := svc.Submit("odoosasm2024002", "Sarah Smith", submitPayload())
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(request.ID, StatusApproved))

	all, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, all[0].Status)

	// Re-deciding an already-decided request is a plain overwrite.
	require.NoError(t, svc.SetStatus(request.ID, StatusRejected))
	all, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, all[0].Status)
}

func TestSetStatusUnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	assert.NoError(t, svc.SetStatus("missing", StatusApproved))
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t)
	assert.ErrorIs(t, svc.SetStatus("any", "cancelled"), ErrInvalidStatus)
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Submit("odoosasm2024002", "Sarah Smith", submitPayload())
	require.NoError(t, err)

	svc.now = func() time.Time {
		return time.Date(2026, time.January, 12, 12, 0, 0, 0, time.UTC)
	}
	second, err := svc.Submit("odooalli2024001", "Al Li", submitPayload())
	require.NoError(t, err)

	all, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	mine, err := svc.ListByEmployee("odoosasm2024002")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)
}
