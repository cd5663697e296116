package services

import (
	"context"
	"errors"
	"testing"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/pkg"
	"github.com/akinalp/perkmanager/repository"
	"github.com/akinalp/perkmanager/ws"
)

func newPerkServiceForTest(t *testing.T) (PerkService, *fakePerkRepo, *fakeMembershipRepo, *fakePublisher) {
	t.Helper()
	perkRepo := newFakePerkRepo()
	membershipRepo := newFakeMembershipRepo()
	hub := &fakePublisher{}
	return NewPerkService(perkRepo, membershipRepo, hub), perkRepo, membershipRepo, hub
}

func seedMembership(t *testing.T, repo *fakeMembershipRepo, name string) int64 {
	t.Helper()
	m := &models.Membership{Name: name}
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("seed membership %q: %v", name, err)
	}
	return m.ID
}

func intPtr(n int) *int { return &n }

func TestPerkListSortKeyResolution(t *testing.T) {
	tests := []struct {
		name       string
		sortBy     string
		direction  string
		wantColumn string
		wantDesc   bool
		wantNoSort bool
	}{
		{name: "title asc", sortBy: "title", wantColumn: repository.PerkSortTitle},
		{name: "case insensitive key", sortBy: "Title", wantColumn: repository.PerkSortTitle},
		{name: "membership maps to name column", sortBy: "membership", wantColumn: repository.PerkSortMembership},
		{name: "membership dotted alias", sortBy: "membership.name", wantColumn: repository.PerkSortMembership},
		{name: "desc direction", sortBy: "upvotes", direction: "desc", wantColumn: repository.PerkSortUpvotes, wantDesc: true},
		{name: "direction case insensitive", sortBy: "upvotes", direction: "DESC", wantColumn: repository.PerkSortUpvotes, wantDesc: true},
		{name: "unknown key means no sort", sortBy: "bogus", wantNoSort: true},
		{name: "empty key means no sort", sortBy: "", wantNoSort: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, perkRepo, _, _ := newPerkServiceForTest(t)

			_, err := svc.List(context.Background(), PerkQuery{SortBy: tt.sortBy, Direction: tt.direction})
			if err != nil {
				t.Fatalf("List: %v", err)
			}

			if tt.wantNoSort {
				if perkRepo.lastOpts.Sort != nil {
					t.Fatalf("expected no store sort, got %+v", perkRepo.lastOpts.Sort)
				}
				return
			}
			if perkRepo.lastOpts.Sort == nil {
				t.Fatal("expected a store sort, got nil")
			}
			if perkRepo.lastOpts.Sort.Column != tt.wantColumn {
				t.Errorf("column = %q, want %q", perkRepo.lastOpts.Sort.Column, tt.wantColumn)
			}
			if perkRepo.lastOpts.Sort.Desc != tt.wantDesc {
				t.Errorf("desc = %v, want %v", perkRepo.lastOpts.Sort.Desc, tt.wantDesc)
			}
		})
	}
}

func TestPerkListScoreSortInMemory(t *testing.T) {
	svc, perkRepo, membershipRepo, _ := newPerkServiceForTest(t)
	mid := seedMembership(t, membershipRepo, "Visa")

	scores := []struct {
		title    string
		up, down int
	}{
		{"mid", 5, 2},  // score 3
		{"low", 1, 4},  // score -3
		{"high", 9, 1}, // score 8
	}
	for _, s := range scores {
		_, err := svc.Create(context.Background(), &models.CreatePerkRequest{
			Title:        s.title,
			MembershipID: mid,
			Upvotes:      intPtr(s.up),
			Downvotes:    intPtr(s.down),
		})
		if err != nil {
			t.Fatalf("Create %q: %v", s.title, err)
		}
	}

	asc, err := svc.List(context.Background(), PerkQuery{SortBy: "score"})
	if err != nil {
		t.Fatalf("List score asc: %v", err)
	}
	// Score store'a gönderilmez — in-memory sıralanır.
	if perkRepo.lastOpts.Sort != nil {
		t.Fatalf("score sort should not reach the store, got %+v", perkRepo.lastOpts.Sort)
	}
	if got := titles(asc); got[0] != "low" || got[1] != "mid" || got[2] != "high" {
		t.Errorf("asc order = %v, want [low mid high]", got)
	}

	desc, err := svc.List(context.Background(), PerkQuery{SortBy: "score", Direction: "desc"})
	if err != nil {
		t.Fatalf("List score desc: %v", err)
	}
	if got := titles(desc); got[0] != "high" || got[1] != "mid" || got[2] != "low" {
		t.Errorf("desc order = %v, want [high mid low]", got)
	}
}

func titles(perks []models.Perk) []string {
	out := make([]string, len(perks))
	for i, p := range perks {
		out[i] = p.Title
	}
	return out
}

func TestPerkCreateDefaultsAndBroadcast(t *testing.T) {
	svc, _, membershipRepo, hub := newPerkServiceForTest(t)
	mid := seedMembership(t, membershipRepo, "Costco")

	submittedID := int64(999)
	perk, err := svc.Create(context.Background(), &models.CreatePerkRequest{
		ID:           &submittedID,
		Title:        "  Cheap food court  ",
		Description:  " best deal ",
		Product:      " Food court ",
		MembershipID: mid,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if perk.ID == submittedID {
		t.Error("client-submitted id must be ignored")
	}
	if perk.Title != "Cheap food court" {
		t.Errorf("title = %q, want trimmed", perk.Title)
	}
	if perk.Description != "best deal" || perk.Product != "Food court" {
		t.Errorf("description/product not trimmed: %q / %q", perk.Description, perk.Product)
	}
	if perk.Upvotes != 0 || perk.Downvotes != 0 || perk.Score != 0 {
		t.Errorf("missing counters must default to zero, got %d/%d/%d", perk.Upvotes, perk.Downvotes, perk.Score)
	}
	if perk.Membership.Name != "Costco" {
		t.Errorf("membership name = %q, want Costco", perk.Membership.Name)
	}

	if len(hub.events) != 1 || hub.events[0].Op != ws.OpPerkCreate {
		t.Fatalf("expected one %s broadcast, got %+v", ws.OpPerkCreate, hub.events)
	}
}

func TestPerkCreateExpiryRules(t *testing.T) {
	svc, _, membershipRepo, _ := newPerkServiceForTest(t)
	mid := seedMembership(t, membershipRepo, "Visa")

	past := models.Date{Time: models.Today().AddDate(0, 0, -1)}
	_, err := svc.Create(context.Background(), &models.CreatePerkRequest{
		Title:        "expired offer",
		MembershipID: mid,
		ExpiryDate:   &past,
	})
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Errorf("past expiry: err = %v, want ErrBadRequest", err)
	}

	today := models.Today()
	perk, err := svc.Create(context.Background(), &models.CreatePerkRequest{
		Title:        "last day offer",
		MembershipID: mid,
		ExpiryDate:   &today,
	})
	if err != nil {
		t.Fatalf("today expiry must be accepted: %v", err)
	}
	if perk.ExpiryDate == nil || !perk.ExpiryDate.Equal(today.Time) {
		t.Errorf("expiry = %v, want %v", perk.ExpiryDate, today)
	}
}

func TestPerkCreateUnknownMembership(t *testing.T) {
	svc, _, _, hub := newPerkServiceForTest(t)

	_, err := svc.Create(context.Background(), &models.CreatePerkRequest{
		Title:        "orphan perk",
		MembershipID: 42,
	})
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Errorf("err = %v, want ErrBadRequest", err)
	}
	if len(hub.events) != 0 {
		t.Error("failed create must not broadcast")
	}
}

func TestPerkVote(t *testing.T) {
	svc, _, membershipRepo, hub := newPerkServiceForTest(t)
	mid := seedMembership(t, membershipRepo, "CAA")

	perk, err := svc.Create(context.Background(), &models.CreatePerkRequest{
		Title:        "roadside assistance",
		MembershipID: mid,
		Upvotes:      intPtr(2),
		Downvotes:    intPtr(1),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	hub.events = nil

	voted, err := svc.Upvote(context.Background(), perk.ID)
	if err != nil {
		t.Fatalf("Upvote: %v", err)
	}
	if voted.Upvotes != 3 || voted.Score != 2 {
		t.Errorf("after upvote: upvotes=%d score=%d, want 3/2", voted.Upvotes, voted.Score)
	}

	voted, err = svc.Downvote(context.Background(), perk.ID)
	if err != nil {
		t.Fatalf("Downvote: %v", err)
	}
	if voted.Downvotes != 2 || voted.Score != 1 {
		t.Errorf("after downvote: downvotes=%d score=%d, want 2/1", voted.Downvotes, voted.Score)
	}

	if len(hub.events) != 2 {
		t.Fatalf("expected 2 vote broadcasts, got %d", len(hub.events))
	}
	for _, e := range hub.events {
		if e.Op != ws.OpPerkVote {
			t.Errorf("op = %q, want %q", e.Op, ws.OpPerkVote)
		}
	}
}

func TestPerkVoteNotFound(t *testing.T) {
	svc, _, _, _ := newPerkServiceForTest(t)

	if _, err := svc.Upvote(context.Background(), 123); !errors.Is(err, pkg.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
