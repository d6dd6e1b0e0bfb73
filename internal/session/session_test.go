package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayflow/internal/domain/employee"
)

func newTestGate(t *testing.T) (*Gate, *employee.Service, string) {
	t.Helper()
	dataDir := t.TempDir()
	users := employee.NewStore(dataDir)
	gate := NewGate(dataDir, users)
	svc := employee.NewService(users, gate)
	return gate, svc, dataDir
}

func register(t *testing.T, svc *employee.Service, role employee.Role) string {
	t.Helper()
	employeeID, err := svc.Signup(employee.SignupPayload{
		FirstName:     "John",
		LastName:      "Doe",
		Email:         "john@dayflow.local",
		Password:      "admin123",
		Role:          role,
		YearOfJoining: 2024,
	})
	require.NoError(t, err)
	return employeeID
}

func TestLoginSuccess(t *testing.T) {
	gate, svc, _ := newTestGate(t)
	employeeID := register(t, svc, employee.RoleAdmin)

	signedIn, err := gate.Login("john@dayflow.local", "admin123")
	require.NoError(t, err)
	require.NotNil(t, signedIn)
	assert.Equal(t, employeeID, signedIn.EmployeeID)
	assert.Equal(t, employeeID, gate.CurrentEmployeeID())
	assert.True(t, gate.IsAdmin())
}

func TestLoginWrongPassword(t *testing.T) {
	gate, svc, _ := newTestGate(t)
	register(t, svc, employee.RoleEmployee)

	signedIn, err := gate.Login("john@dayflow.local", "wrong")
	require.NoError(t, err)
	assert.Nil(t, signedIn)
	assert.Empty(t, gate.CurrentEmployeeID())
}

func TestLoginUnknownEmail(t *testing.T) {
	gate, _, _ := newTestGate(t)

	signedIn, err := gate.Login("nobody@dayflow.local", "admin123")
	require.NoError(t, err)
	assert.Nil(t, signedIn)
}

func TestSessionPersistsAcrossGates(t *testing.T) {
	gate, svc, dataDir := newTestGate(t)
	employeeID := register(t, svc, employee.RoleEmployee)

	_, err := gate.Login("john@dayflow.local", "admin123")
	require.NoError(t, err)

	// A fresh gate over the same data directory sees the session, the
	// way a new process over the same storage would.
	reopened := NewGate(dataDir, employee.NewStore(dataDir))
	assert.Equal(t, employeeID, reopened.CurrentEmployeeID())
	assert.False(t, reopened.IsAdmin())
}

func TestLogoutClearsSession(t *testing.T) {
	gate, svc, _ := newTestGate(t)
	register(t, svc, employee.RoleAdmin)

	_, err := gate.Login("john@dayflow.local", "admin123")
	require.NoError(t, err)

	require.NoError(t, gate.Logout())
	current, err := gate.Current()
	require.NoError(t, err)
	assert.Nil(t, current)
	assert.False(t, gate.IsAdmin())

	require.NoError(t, gate.Logout()) // logging out twice is harmless
}

func TestProfileUpdateRefreshesCachedUser(t *testing.T) {
	gate, svc, _ := newTestGate(t)
	employeeID := register(t, svc, employee.RoleEmployee)

	_, err := gate.Login("john@dayflow.local", "admin123")
	require.NoError(t, err)

	department := "Engineering"
	require.NoError(t, svc.UpdateProfile(employeeID, employee.ProfileUpdate{Department: &department}))

	current, err := gate.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Engineering", current.Department)
}
