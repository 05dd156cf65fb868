package repository

import (
	"path/filepath"
	"testing"

	"leadflow-backend/internal/property/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testRepo(t *testing.T) PropertyRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Property{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormPropertyRepository(db)
}

func TestFindByExternalScheduleID(t *testing.T) {
	repo := testRepo(t)

	p := &domain.Property{AgentID: "agent-a", Address: "123 Main St", Unit: "2B", ExternalScheduleID: "ABC123"}
	if err := repo.Create(p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByExternalScheduleID("ABC123")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got == nil {
		t.Fatal("expected a property")
	}
	if got.ID != p.ID {
		t.Errorf("id = %q, want %q", got.ID, p.ID)
	}
	if got.AgentID != "agent-a" {
		t.Errorf("agent_id = %q, want agent-a", got.AgentID)
	}
}

func TestFindByExternalScheduleIDMiss(t *testing.T) {
	repo := testRepo(t)

	p := &domain.Property{AgentID: "agent-a", Address: "123 Main St", ExternalScheduleID: "ABC123"}
	if err := repo.Create(p); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Exact match only: prefixes and different ids do not resolve.
	for _, ext := range []string{"ABC", "ABC1234", "XYZ"} {
		got, err := repo.FindByExternalScheduleID(ext)
		if err != nil {
			t.Fatalf("resolve %q: %v", ext, err)
		}
		if got != nil {
			t.Errorf("resolve %q = %v, want nil", ext, got)
		}
	}
}

func TestCountActiveByAgentID(t *testing.T) {
	repo := testRepo(t)

	active := &domain.Property{AgentID: "agent-a", Address: "1 Elm St"}
	if err := repo.Create(active); err != nil {
		t.Fatalf("create: %v", err)
	}
	inactive := &domain.Property{AgentID: "agent-a", Address: "2 Elm St"}
	if err := repo.Create(inactive); err != nil {
		t.Fatalf("create: %v", err)
	}
	inactive.IsActive = false
	inactive.Status = "rented"
	if err := repo.Update(inactive); err != nil {
		t.Fatalf("update: %v", err)
	}

	count, err := repo.CountActiveByAgentID("agent-a")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("active count = %d, want 1", count)
	}

	total, err := repo.CountByAgentID("agent-a")
	if err != nil {
		t.Fatalf("count total: %v", err)
	}
	if total != 2 {
		t.Errorf("total count = %d, want 2", total)
	}
}
