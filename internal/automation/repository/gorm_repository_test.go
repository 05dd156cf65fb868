package repository

import (
	"errors"
	"path/filepath"
	"testing"

	"leadflow-backend/internal/automation/domain"
	propertydomain "leadflow-backend/internal/property/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testRepo(t *testing.T) (AutomationRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&propertydomain.Property{},
		&domain.AutomationEvent{},
		&domain.AutomationStats{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormAutomationRepository(db), db
}

func seedProperty(t *testing.T, db *gorm.DB, id, agentID string) {
	t.Helper()
	p := &propertydomain.Property{ID: id, AgentID: agentID, Address: "1 Elm St", IsActive: true, Status: "active"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed property: %v", err)
	}
}

func TestAppendEventTourInvariant(t *testing.T) {
	repo, _ := testRepo(t)

	date := "2024-01-01T10:00:00"
	tests := []struct {
		name    string
		event   domain.AutomationEvent
		wantErr bool
	}{
		{
			name:  "email sent row",
			event: domain.AutomationEvent{PropertyID: "p1", ProspectEmail: "p@y.com"},
		},
		{
			name: "complete tour row",
			event: domain.AutomationEvent{
				PropertyID:    "p1",
				TourScheduled: true,
				AppointmentID: "42",
				TourDate:      &date,
			},
		},
		{
			name:    "tour row without appointment id",
			event:   domain.AutomationEvent{PropertyID: "p1", TourScheduled: true, TourDate: &date},
			wantErr: true,
		},
		{
			name:    "tour row without tour date",
			event:   domain.AutomationEvent{PropertyID: "p1", TourScheduled: true, AppointmentID: "42"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.AppendEvent(&tt.event)
			if tt.wantErr {
				if !errors.Is(err, ErrIncompleteTourEvent) {
					t.Errorf("err = %v, want ErrIncompleteTourEvent", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpsertStatsKeepsOneRowPerAgent(t *testing.T) {
	repo, db := testRepo(t)

	if err := repo.UpsertStats(&domain.AutomationStats{AgentID: "agent-a", EmailsSent: 1}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.UpsertStats(&domain.AutomationStats{AgentID: "agent-a", EmailsSent: 5, ToursScheduled: 2, ResponseRate: 40}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count int64
	if err := db.Model(&domain.AutomationStats{}).Where("agent_id = ?", "agent-a").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("stats rows = %d, want exactly 1 per agent", count)
	}

	stats, err := repo.FindStatsByAgentID("agent-a")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stats.EmailsSent != 5 || stats.ToursScheduled != 2 {
		t.Errorf("stats = %+v, want overwritten values", stats)
	}
}

func TestCountEventsOwnershipFilter(t *testing.T) {
	repo, db := testRepo(t)
	seedProperty(t, db, "p-a", "agent-a")
	seedProperty(t, db, "p-b", "agent-b")

	date := "2024-01-01T10:00:00"
	events := []domain.AutomationEvent{
		{PropertyID: "p-a", ProspectEmail: "1@x.com"},
		{PropertyID: "p-a", ProspectEmail: "2@x.com"},
		{PropertyID: "p-a", TourScheduled: true, AppointmentID: "1", TourDate: &date},
		{PropertyID: "p-b", ProspectEmail: "3@x.com"},
	}
	for i := range events {
		if err := repo.AppendEvent(&events[i]); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	emails, err := repo.CountEvents("agent-a", false)
	if err != nil {
		t.Fatalf("count emails: %v", err)
	}
	if emails != 2 {
		t.Errorf("emails = %d, want 2", emails)
	}

	tours, err := repo.CountEvents("agent-a", true)
	if err != nil {
		t.Fatalf("count tours: %v", err)
	}
	if tours != 1 {
		t.Errorf("tours = %d, want 1", tours)
	}
}

func TestRefreshStatsComputesRate(t *testing.T) {
	repo, db := testRepo(t)
	seedProperty(t, db, "p-a", "agent-a")

	date := "2024-01-01T10:00:00"
	events := []domain.AutomationEvent{
		{PropertyID: "p-a", ProspectEmail: "1@x.com"},
		{PropertyID: "p-a", ProspectEmail: "2@x.com"},
		{PropertyID: "p-a", TourScheduled: true, AppointmentID: "1", TourDate: &date},
	}
	for i := range events {
		if err := repo.AppendEvent(&events[i]); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.RefreshStats("agent-a")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if stats.EmailsSent != 2 || stats.ToursScheduled != 1 {
		t.Errorf("counters = %d/%d, want 2/1", stats.EmailsSent, stats.ToursScheduled)
	}
	if stats.ResponseRate != 50.0 {
		t.Errorf("response_rate = %v, want 50.0", stats.ResponseRate)
	}
}
