package identity

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryDirectoryLookup(t *testing.T) {
	directory := NewMemoryDirectory(SeedDemo()...)
	ctx := context.Background()

	id, err := directory.FindByPhone(ctx, "9876543301")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if id.Role != RoleWorker {
		t.Fatalf("expected worker, got %s", id.Role)
	}

	if _, err := directory.FindByPhone(ctx, "0000000000"); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}

func TestSeedDemoCoversEveryRole(t *testing.T) {
	seen := map[Role]bool{}
	for _, id := range SeedDemo() {
		if err := id.Validate(); err != nil {
			t.Fatalf("seed identity %s invalid: %v", id.Phone, err)
		}
		seen[id.Role] = true
	}
	for _, role := range []Role{RoleCustomer, RoleContractor, RoleWorker, RoleShopkeeper, RoleDriver, RoleAdmin} {
		if !seen[role] {
			t.Fatalf("seed data missing role %s", role)
		}
	}
}

func TestValidateRejectsIncompleteRecords(t *testing.T) {
	noRole := Identity{Phone: "9876543301", Name: "Arjun Pawar"}
	if err := noRole.Validate(); !errors.Is(err, ErrMissingRole) {
		t.Fatalf("expected ErrMissingRole, got %v", err)
	}

	badRole := Identity{Phone: "9876543301", Role: Role("superuser")}
	if err := badRole.Validate(); !errors.Is(err, ErrMissingRole) {
		t.Fatalf("expected ErrMissingRole for unknown role, got %v", err)
	}

	noPhone := Identity{Role: RoleCustomer}
	if err := noPhone.Validate(); !errors.Is(err, ErrMissingPhone) {
		t.Fatalf("expected ErrMissingPhone, got %v", err)
	}
}
