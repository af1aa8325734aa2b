package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven/mocks"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driving"
)

type warehouseFixture struct {
	warehouseStore *mocks.MockWarehouseStore
	linkStore      *mocks.MockBranchWarehouseStore
}

func newWarehouseFixture() (*warehouseFixture, driving.WarehouseService) {
	f := &warehouseFixture{
		warehouseStore: mocks.NewMockWarehouseStore(),
		linkStore:      mocks.NewMockBranchWarehouseStore(),
	}
	svc := NewWarehouseService(f.warehouseStore, f.linkStore)
	return f, svc
}

func TestWarehouseCreate_CompanyRole(t *testing.T) {
	f, svc := newWarehouseFixture()

	owner := actor("user-1", "company-1", membership(domain.RoleCompanyOwner, ""))

	warehouse, err := svc.Create(context.Background(), owner, "Central")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warehouse.CompanyID != "company-1" {
		t.Errorf("expected warehouse in company-1, got %s", warehouse.CompanyID)
	}
	if !warehouse.IsActive {
		t.Error("expected new warehouse to be active")
	}
	if len(f.warehouseStore.Warehouses) != 1 {
		t.Errorf("expected 1 stored warehouse, got %d", len(f.warehouseStore.Warehouses))
	}
}

func TestWarehouseCreate_BranchRoleRejected(t *testing.T) {
	_, svc := newWarehouseFixture()

	admin := actor("user-1", "company-1", membership(domain.RoleBranchAdmin, "branch-1"))

	if _, err := svc.Create(context.Background(), admin, "Central"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for branch role, got %v", err)
	}
}

func TestWarehouseCreate_InvalidInput(t *testing.T) {
	_, svc := newWarehouseFixture()

	owner := actor("user-1", "company-1", membership(domain.RoleCompanyOwner, ""))
	if _, err := svc.Create(context.Background(), owner, ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty name, got %v", err)
	}

	noCompany := actor("user-1", "", membership(domain.RoleCompanyOwner, ""))
	if _, err := svc.Create(context.Background(), noCompany, "Central"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for missing company, got %v", err)
	}
}

func TestAssociateBranch_Success(t *testing.T) {
	f, svc := newWarehouseFixture()

	admin := actor("user-1", "company-1", membership(domain.RoleBranchAdmin, "branch-1"))

	link, err := svc.AssociateBranch(context.Background(), admin, "wh-1", "branch-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.WarehouseID != "wh-1" || link.BranchID != "branch-1" {
		t.Errorf("unexpected link: %+v", link)
	}
	if len(f.linkStore.Links) != 1 {
		t.Errorf("expected 1 stored link, got %d", len(f.linkStore.Links))
	}
}

func TestAssociateBranch_OtherBranchRejected(t *testing.T) {
	_, svc := newWarehouseFixture()

	admin := actor("user-1", "company-1", membership(domain.RoleBranchAdmin, "branch-1"))

	if _, err := svc.AssociateBranch(context.Background(), admin, "wh-1", "branch-2"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for other branch, got %v", err)
	}
}

func TestAssociateBranch_Duplicate(t *testing.T) {
	_, svc := newWarehouseFixture()

	owner := actor("user-1", "company-1", membership(domain.RoleCompanyOwner, ""))
	ctx := context.Background()

	if _, err := svc.AssociateBranch(ctx, owner, "wh-1", "branch-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.AssociateBranch(ctx, owner, "wh-1", "branch-1"); !errors.Is(err, domain.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func seedWarehouses(f *warehouseFixture) {
	ctx := context.Background()
	now := time.Now()
	f.warehouseStore.Create(ctx, &domain.Warehouse{ID: "wh-1", Name: "Central", CompanyID: "company-1", IsActive: true, CreatedAt: now})
	f.warehouseStore.Create(ctx, &domain.Warehouse{ID: "wh-2", Name: "North", CompanyID: "company-1", IsActive: true, CreatedAt: now})
	f.warehouseStore.AddLink(domain.BranchWarehouse{WarehouseID: "wh-1", BranchID: "branch-1", IsActive: true})
	f.warehouseStore.AddLink(domain.BranchWarehouse{WarehouseID: "wh-2", BranchID: "branch-2", IsActive: true})
}

func TestWarehouseList_CompanyRoleSeesAll(t *testing.T) {
	f, svc := newWarehouseFixture()
	seedWarehouses(f)

	owner := actor("user-1", "company-1", membership(domain.RoleCompanyAdmin, ""))

	warehouses, err := svc.List(context.Background(), owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warehouses) != 2 {
		t.Errorf("expected 2 warehouses, got %d", len(warehouses))
	}
}

func TestWarehouseList_BranchRoleSeesOwnBranch(t *testing.T) {
	f, svc := newWarehouseFixture()
	seedWarehouses(f)

	dispatcher := actor("user-1", "company-1", membership(domain.RoleStockDispatcher, "branch-1"))

	warehouses, err := svc.List(context.Background(), dispatcher)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warehouses) != 1 || warehouses[0].ID != "wh-1" {
		t.Errorf("expected only wh-1, got %+v", warehouses)
	}
}

func TestWarehouseList_BranchRoleWithoutBranchIDs(t *testing.T) {
	f, svc := newWarehouseFixture()
	seedWarehouses(f)

	// Branch-scoped role but no branch ids recorded: empty result, not an error
	odd := actor("user-1", "company-1", membership(domain.RoleBranchOwner, ""))

	warehouses, err := svc.List(context.Background(), odd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warehouses) != 0 {
		t.Errorf("expected empty result, got %+v", warehouses)
	}
}

func TestWarehouseList_SellerRejected(t *testing.T) {
	f, svc := newWarehouseFixture()
	seedWarehouses(f)

	seller := actor("user-1", "company-1", membership(domain.RoleSeller, "branch-1"))

	if _, err := svc.List(context.Background(), seller); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for seller, got %v", err)
	}
}
