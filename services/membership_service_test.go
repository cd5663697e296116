package services

import (
	"context"
	"errors"
	"testing"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/pkg"
	"github.com/akinalp/perkmanager/ws"
)

func TestMembershipCreate(t *testing.T) {
	repo := newFakeMembershipRepo()
	hub := &fakePublisher{}
	svc := NewMembershipService(repo, hub)

	membership, err := svc.Create(context.Background(), &models.CreateMembershipRequest{Name: "  Visa  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if membership.Name != "Visa" {
		t.Errorf("name = %q, want trimmed %q", membership.Name, "Visa")
	}
	if membership.ID == 0 {
		t.Error("expected assigned id")
	}
	if len(hub.events) != 1 || hub.events[0].Op != ws.OpMembershipCreate {
		t.Fatalf("expected one %s broadcast, got %+v", ws.OpMembershipCreate, hub.events)
	}
}

func TestMembershipCreateEmptyName(t *testing.T) {
	svc := NewMembershipService(newFakeMembershipRepo(), &fakePublisher{})

	for _, name := range []string{"", "   "} {
		if _, err := svc.Create(context.Background(), &models.CreateMembershipRequest{Name: name}); !errors.Is(err, pkg.ErrBadRequest) {
			t.Errorf("name %q: err = %v, want ErrBadRequest", name, err)
		}
	}
}

func TestMembershipCreateDuplicateName(t *testing.T) {
	repo := newFakeMembershipRepo()
	hub := &fakePublisher{}
	svc := NewMembershipService(repo, hub)

	if _, err := svc.Create(context.Background(), &models.CreateMembershipRequest{Name: "Visa"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	hub.events = nil

	// Benzersizlik case-insensitive'dir.
	if _, err := svc.Create(context.Background(), &models.CreateMembershipRequest{Name: "vIsA"}); !errors.Is(err, pkg.ErrAlreadyExists) {
		t.Errorf("err = %v, want ErrAlreadyExists", err)
	}
	if len(hub.events) != 0 {
		t.Error("failed create must not broadcast")
	}
}

func TestMembershipList(t *testing.T) {
	repo := newFakeMembershipRepo()
	svc := NewMembershipService(repo, &fakePublisher{})

	for _, name := range []string{"Costco", "visa", "CAA"} {
		if _, err := svc.Create(context.Background(), &models.CreateMembershipRequest{Name: name}); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	memberships, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(memberships) != 3 {
		t.Fatalf("len = %d, want 3", len(memberships))
	}
	// İsme göre alfabetik, case-insensitive.
	want := []string{"CAA", "Costco", "visa"}
	for i, m := range memberships {
		if m.Name != want[i] {
			t.Errorf("memberships[%d] = %q, want %q", i, m.Name, want[i])
		}
	}
}
