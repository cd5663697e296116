package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/pkg"
	"github.com/akinalp/perkmanager/repository"
	"github.com/akinalp/perkmanager/ws"
)

// In-memory fake'ler — service testleri repository interface'lerinin
// SQLite implementasyonlarına bağımlı olmadan çalışır.

type fakePublisher struct {
	events []ws.Event
}

func (f *fakePublisher) BroadcastToAll(event ws.Event) {
	f.events = append(f.events, event)
}

type fakePerkRepo struct {
	perks    map[int64]*models.Perk
	nextID   int64
	lastOpts repository.PerkListOptions
}

func newFakePerkRepo() *fakePerkRepo {
	return &fakePerkRepo{perks: make(map[int64]*models.Perk)}
}

func (f *fakePerkRepo) Create(ctx context.Context, perk *models.Perk) error {
	f.nextID++
	perk.ID = f.nextID
	perk.Score = perk.Upvotes - perk.Downvotes
	perk.CreatedAt = time.Now()
	stored := *perk
	f.perks[perk.ID] = &stored
	return nil
}

func (f *fakePerkRepo) GetByID(ctx context.Context, id int64) (*models.Perk, error) {
	p, ok := f.perks[id]
	if !ok {
		return nil, fmt.Errorf("%w: perk %d", pkg.ErrNotFound, id)
	}
	copied := *p
	return &copied, nil
}

func (f *fakePerkRepo) List(ctx context.Context, opts repository.PerkListOptions) ([]models.Perk, error) {
	f.lastOpts = opts
	ids := make([]int64, 0, len(f.perks))
	for id := range f.perks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	perks := []models.Perk{}
	for _, id := range ids {
		p := *f.perks[id]
		if opts.Search != "" {
			needle := strings.ToLower(opts.Search)
			if !strings.Contains(strings.ToLower(p.Title), needle) &&
				!strings.Contains(strings.ToLower(p.Product), needle) {
				continue
			}
		}
		perks = append(perks, p)
	}
	return perks, nil
}

func (f *fakePerkRepo) IncrementVote(ctx context.Context, id int64, kind models.VoteKind) error {
	p, ok := f.perks[id]
	if !ok {
		return fmt.Errorf("%w: perk %d", pkg.ErrNotFound, id)
	}
	switch kind {
	case models.VoteUp:
		p.Upvotes++
	case models.VoteDown:
		p.Downvotes++
	default:
		return fmt.Errorf("%w: unknown vote kind %q", pkg.ErrBadRequest, kind)
	}
	p.Score = p.Upvotes - p.Downvotes
	return nil
}

func (f *fakePerkRepo) Count(ctx context.Context) (int, error) {
	return len(f.perks), nil
}

type fakeMembershipRepo struct {
	memberships map[int64]models.Membership
	nextID      int64
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{memberships: make(map[int64]models.Membership)}
}

func (f *fakeMembershipRepo) Create(ctx context.Context, membership *models.Membership) error {
	for _, m := range f.memberships {
		if strings.EqualFold(m.Name, membership.Name) {
			return fmt.Errorf("%w: membership name already exists", pkg.ErrAlreadyExists)
		}
	}
	f.nextID++
	membership.ID = f.nextID
	membership.CreatedAt = time.Now()
	f.memberships[membership.ID] = *membership
	return nil
}

func (f *fakeMembershipRepo) GetByID(ctx context.Context, id int64) (*models.Membership, error) {
	m, ok := f.memberships[id]
	if !ok {
		return nil, fmt.Errorf("%w: membership %d", pkg.ErrNotFound, id)
	}
	return &m, nil
}

func (f *fakeMembershipRepo) GetByIDs(ctx context.Context, ids []int64) ([]models.Membership, error) {
	result := []models.Membership{}
	seen := map[int64]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if m, ok := f.memberships[id]; ok {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result, nil
}

func (f *fakeMembershipRepo) GetAll(ctx context.Context) ([]models.Membership, error) {
	result := []models.Membership{}
	for _, m := range f.memberships {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result, nil
}

func (f *fakeMembershipRepo) Count(ctx context.Context) (int, error) {
	return len(f.memberships), nil
}

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return fmt.Errorf("%w: username already taken", pkg.ErrAlreadyExists)
		}
		if strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("%w: email already in use", pkg.ErrAlreadyExists)
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", pkg.ErrNotFound, id)
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: user %q", pkg.ErrNotFound, username)
}

func (f *fakeUserRepo) Count(ctx context.Context) (int, error) {
	return len(f.users), nil
}

type fakeSessionRepo struct {
	sessions map[string]*models.Session
	nextID   int64
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *models.Session) error {
	f.nextID++
	session.ID = f.nextID
	session.CreatedAt = time.Now()
	stored := *session
	f.sessions[session.Token] = &stored
	return nil
}

func (f *fakeSessionRepo) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, fmt.Errorf("%w: session", pkg.ErrNotFound)
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionRepo) DeleteByID(ctx context.Context, id int64) error {
	for token, s := range f.sessions {
		if s.ID == id {
			delete(f.sessions, token)
			return nil
		}
	}
	return nil
}

func (f *fakeSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(ctx context.Context) error {
	now := time.Now()
	for token, s := range f.sessions {
		if s.ExpiresAt.Before(now) {
			delete(f.sessions, token)
		}
	}
	return nil
}

type fakeUserMembershipRepo struct {
	sets        map[int64][]int64
	memberships *fakeMembershipRepo
}

func newFakeUserMembershipRepo(memberships *fakeMembershipRepo) *fakeUserMembershipRepo {
	return &fakeUserMembershipRepo{
		sets:        make(map[int64][]int64),
		memberships: memberships,
	}
}

func (f *fakeUserMembershipRepo) ListForUser(ctx context.Context, userID int64) ([]models.Membership, error) {
	return f.memberships.GetByIDs(ctx, f.sets[userID])
}

func (f *fakeUserMembershipRepo) ReplaceForUser(ctx context.Context, userID int64, membershipIDs []int64) error {
	f.sets[userID] = append([]int64{}, membershipIDs...)
	return nil
}
