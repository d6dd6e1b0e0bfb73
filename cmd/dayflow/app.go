package main

import (
	"errors"

	"dayflow/internal/domain/attendance"
	"dayflow/internal/domain/employee"
	"dayflow/internal/domain/leave"
	"dayflow/internal/domain/reports"
	"dayflow/internal/platform/config"
	"dayflow/internal/session"
)

// app wires the stores and services once per process; commands receive it
// by reference rather than reaching for globals.
type app struct {
	cfg        config.Config
	gate       *session.Gate
	employees  *employee.Service
	attendance *attendance.Service
	leaves     *leave.Service
	reports    *reports.Service
}

func newApp(cfg config.Config) *app {
	empStore := employee.NewStore(cfg.DataDir)
	attStore := attendance.NewStore(cfg.DataDir)
	leaveStore := leave.NewStore(cfg.DataDir)

	gate := session.NewGate(cfg.DataDir, empStore)

	return &app{
		cfg:        cfg,
		gate:       gate,
		employees:  employee.NewService(empStore, gate),
		attendance: attendance.NewService(attStore),
		leaves:     leave.NewService(leaveStore),
		reports:    reports.NewService(empStore, attStore, leaveStore),
	}
}

func (a *app) requireUser() (*employee.Employee, error) {
	current, err := a.gate.Current()
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errors.New("not signed in; run `dayflow login` first")
	}
	return current, nil
}

func (a *app) requireAdmin() error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	if !a.gate.IsAdmin() {
		return errors.New("admin role required")
	}
	return nil
}
