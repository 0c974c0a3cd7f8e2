package service

import (
	"errors"
	"testing"

	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/testutil"
)

func TestCreateExpenseType(t *testing.T) {
	expenseTypeService := NewExpenseTypeService(testutil.NewMockExpenseTypeRepository())

	created, err := expenseTypeService.CreateExpenseType(1, "  Rent  ", true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if created.Name != "Rent" {
		t.Errorf("Expected trimmed name, got %q", created.Name)
	}
	if !created.PayableInAdvance {
		t.Error("Expected the advance flag set")
	}
}

func TestCreateExpenseType_EmptyName(t *testing.T) {
	expenseTypeService := NewExpenseTypeService(testutil.NewMockExpenseTypeRepository())

	_, err := expenseTypeService.CreateExpenseType(1, "   ", false)
	if !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestUpdateExpenseType_TogglesAdvanceFlag(t *testing.T) {
	repo := testutil.NewMockExpenseTypeRepository()
	repo.AddExpenseType(&domain.ExpenseType{ID: 1, OwnerID: 1, Name: "Water", PayableInAdvance: true})
	expenseTypeService := NewExpenseTypeService(repo)

	updated, err := expenseTypeService.UpdateExpenseType(1, 1, "Water", false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.PayableInAdvance {
		t.Error("Expected the advance flag cleared")
	}
}

func TestUpdateExpenseType_NotFound(t *testing.T) {
	expenseTypeService := NewExpenseTypeService(testutil.NewMockExpenseTypeRepository())

	_, err := expenseTypeService.UpdateExpenseType(1, 99, "Water", false)
	if !errors.Is(err, domain.ErrExpenseTypeNotFound) {
		t.Errorf("Expected ErrExpenseTypeNotFound, got %v", err)
	}
}

func TestExpenseTypes_ScopedToOwner(t *testing.T) {
	repo := testutil.NewMockExpenseTypeRepository()
	repo.AddExpenseType(&domain.ExpenseType{ID: 1, OwnerID: 1, Name: "Rent"})
	repo.AddExpenseType(&domain.ExpenseType{ID: 2, OwnerID: 2, Name: "Power"})
	expenseTypeService := NewExpenseTypeService(repo)

	types, err := expenseTypeService.ListExpenseTypes(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(types) != 1 || types[0].Name != "Rent" {
		t.Errorf("Expected only owner 1's catalog, got %+v", types)
	}

	if _, err := expenseTypeService.GetExpenseType(1, 2); !errors.Is(err, domain.ErrExpenseTypeNotFound) {
		t.Errorf("Expected ErrExpenseTypeNotFound for another owner's entry, got %v", err)
	}
}
