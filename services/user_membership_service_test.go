package services

import (
	"context"
	"errors"
	"testing"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/pkg"
)

func newUserMembershipServiceForTest(t *testing.T) (UserMembershipService, *fakeUserRepo, *fakeMembershipRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	membershipRepo := newFakeMembershipRepo()
	umRepo := newFakeUserMembershipRepo(membershipRepo)
	return NewUserMembershipService(userRepo, membershipRepo, umRepo), userRepo, membershipRepo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", PasswordHash: "hash"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return user
}

func TestReplaceMemberships(t *testing.T) {
	svc, userRepo, membershipRepo := newUserMembershipServiceForTest(t)
	user := seedUser(t, userRepo, "alice")
	visa := seedMembership(t, membershipRepo, "Visa")
	costco := seedMembership(t, membershipRepo, "Costco")

	updated, err := svc.Replace(context.Background(), user.ID, []int64{visa, costco})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(updated.Memberships) != 2 {
		t.Fatalf("memberships len = %d, want 2", len(updated.Memberships))
	}
	if updated.PasswordHash != "" {
		t.Error("password hash must not leak into the response")
	}

	listed, err := svc.ListForUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("listed len = %d, want 2", len(listed))
	}
}

func TestReplaceDropsUnknownIDs(t *testing.T) {
	svc, userRepo, membershipRepo := newUserMembershipServiceForTest(t)
	user := seedUser(t, userRepo, "alice")
	visa := seedMembership(t, membershipRepo, "Visa")

	// Bilinmeyen id'ler sessizce atlanır — hata değildir.
	updated, err := svc.Replace(context.Background(), user.ID, []int64{visa, 999, 1000})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(updated.Memberships) != 1 || updated.Memberships[0].Name != "Visa" {
		t.Errorf("memberships = %+v, want only Visa", updated.Memberships)
	}
}

func TestReplaceEmptyClearsSet(t *testing.T) {
	svc, userRepo, membershipRepo := newUserMembershipServiceForTest(t)
	user := seedUser(t, userRepo, "alice")
	visa := seedMembership(t, membershipRepo, "Visa")

	if _, err := svc.Replace(context.Background(), user.ID, []int64{visa}); err != nil {
		t.Fatalf("initial Replace: %v", err)
	}

	updated, err := svc.Replace(context.Background(), user.ID, nil)
	if err != nil {
		t.Fatalf("clearing Replace: %v", err)
	}
	if len(updated.Memberships) != 0 {
		t.Errorf("memberships = %+v, want empty", updated.Memberships)
	}
}

func TestReplaceUnknownUser(t *testing.T) {
	svc, _, membershipRepo := newUserMembershipServiceForTest(t)
	visa := seedMembership(t, membershipRepo, "Visa")

	if _, err := svc.Replace(context.Background(), 42, []int64{visa}); !errors.Is(err, pkg.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
