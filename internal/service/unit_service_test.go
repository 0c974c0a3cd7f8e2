package service

import (
	"errors"
	"testing"

	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/testutil"
)

func newUnitFixture() (*UnitService, *testutil.MockUnitRepository) {
	unitRepo := testutil.NewMockUnitRepository()
	propertyRepo := testutil.NewMockPropertyRepository()
	propertyRepo.AddProperty(&domain.Property{ID: 1, OwnerID: 1, Name: "Lakeview"})
	return NewUnitService(unitRepo, propertyRepo), unitRepo
}

func TestCreateUnit_Success(t *testing.T) {
	unitService, _ := newUnitFixture()

	unit, err := unitService.CreateUnit(1, CreateUnitInput{PropertyID: 1, Label: " G-1 "})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if unit.Label != "G-1" {
		t.Errorf("Expected trimmed label, got %q", unit.Label)
	}
	if unit.PropertyID != 1 {
		t.Errorf("Expected property ID 1, got %d", unit.PropertyID)
	}
}

func TestCreateUnit_EmptyLabel(t *testing.T) {
	unitService, _ := newUnitFixture()

	_, err := unitService.CreateUnit(1, CreateUnitInput{PropertyID: 1, Label: "  "})
	if !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestCreateUnit_PropertyNotFound(t *testing.T) {
	unitService, _ := newUnitFixture()

	_, err := unitService.CreateUnit(1, CreateUnitInput{PropertyID: 99, Label: "G-1"})
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Errorf("Expected ErrPropertyNotFound, got %v", err)
	}
}

func TestUpdateUnit(t *testing.T) {
	unitService, unitRepo := newUnitFixture()
	unitRepo.AddUnit(&domain.Unit{ID: 1, OwnerID: 1, PropertyID: 1, Label: "G-1"})

	notes := "repainted"
	updated, err := unitService.UpdateUnit(1, 1, "G-1A", &notes)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Label != "G-1A" {
		t.Errorf("Expected updated label, got %q", updated.Label)
	}
	if updated.Notes == nil || *updated.Notes != notes {
		t.Errorf("Expected notes recorded, got %v", updated.Notes)
	}
}

func TestListUnits_PropertyNotFound(t *testing.T) {
	unitService, _ := newUnitFixture()

	_, err := unitService.ListUnits(1, 99)
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Errorf("Expected ErrPropertyNotFound, got %v", err)
	}
}
