package usecase

import (
	"errors"
	"path/filepath"
	"testing"

	"leadflow-backend/internal/inquiry/domain"
	"leadflow-backend/internal/inquiry/dto"
	"leadflow-backend/internal/inquiry/repository"
	propertydomain "leadflow-backend/internal/property/domain"
	propertyrepo "leadflow-backend/internal/property/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testInquiryUsecase(t *testing.T) (InquiryUsecase, propertyrepo.PropertyRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Inquiry{}, &propertydomain.Property{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	propRepo := propertyrepo.NewGormPropertyRepository(db)
	return NewInquiryUsecase(repository.NewGormInquiryRepository(db), propRepo), propRepo
}

func seedProperty(t *testing.T, repo propertyrepo.PropertyRepository, agentID, address string) *propertydomain.Property {
	t.Helper()
	p := &propertydomain.Property{AgentID: agentID, Address: address}
	if err := repo.Create(p); err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return p
}

func TestCreateInquiryWithOwnedProperty(t *testing.T) {
	uc, propRepo := testInquiryUsecase(t)
	prop := seedProperty(t, propRepo, "agent-1", "12 Main St")

	inquiry, err := uc.CreateInquiry("agent-1", &dto.InquiryRequest{
		PropertyID:    prop.ID,
		ProspectName:  "Sam Park",
		ProspectEmail: "sam@x.com",
		Source:        "zillow",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inquiry.Status != "new" {
		t.Errorf("status = %q, want new", inquiry.Status)
	}
	if inquiry.PropertyID != prop.ID {
		t.Errorf("property id = %q, want %q", inquiry.PropertyID, prop.ID)
	}
}

func TestCreateInquiryRejectsForeignProperty(t *testing.T) {
	uc, propRepo := testInquiryUsecase(t)
	prop := seedProperty(t, propRepo, "agent-2", "99 Elm St")

	_, err := uc.CreateInquiry("agent-1", &dto.InquiryRequest{
		PropertyID:    prop.ID,
		ProspectName:  "Sam Park",
		ProspectEmail: "sam@x.com",
	})
	if !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("err = %v, want ErrUnknownProperty", err)
	}
}

func TestListInquiriesJoinsPropertyAddress(t *testing.T) {
	uc, propRepo := testInquiryUsecase(t)
	prop := seedProperty(t, propRepo, "agent-1", "12 Main St")

	if _, err := uc.CreateInquiry("agent-1", &dto.InquiryRequest{
		PropertyID:    prop.ID,
		ProspectName:  "Sam Park",
		ProspectEmail: "sam@x.com",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// No property attached; still listed, with empty address.
	if _, err := uc.CreateInquiry("agent-1", &dto.InquiryRequest{
		ProspectName:  "Lee Chan",
		ProspectEmail: "lee@x.com",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := uc.ListInquiries("agent-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d inquiries, want 2", len(list))
	}

	byName := map[string]string{}
	for _, inq := range list {
		byName[inq.ProspectName] = inq.PropertyAddress
	}
	if byName["Sam Park"] != "12 Main St" {
		t.Errorf("Sam Park address = %q, want 12 Main St", byName["Sam Park"])
	}
	if byName["Lee Chan"] != "" {
		t.Errorf("Lee Chan address = %q, want empty", byName["Lee Chan"])
	}
}

func TestUpdateStatusScopedToOwner(t *testing.T) {
	uc, _ := testInquiryUsecase(t)

	inquiry, err := uc.CreateInquiry("agent-1", &dto.InquiryRequest{
		ProspectName:  "Sam Park",
		ProspectEmail: "sam@x.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := uc.UpdateStatus("agent-2", inquiry.ID, "contacted"); !errors.Is(err, ErrInquiryNotFound) {
		t.Fatalf("err = %v, want ErrInquiryNotFound for another agent", err)
	}

	updated, err := uc.UpdateStatus("agent-1", inquiry.ID, "contacted")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != "contacted" {
		t.Errorf("status = %q, want contacted", updated.Status)
	}
}
