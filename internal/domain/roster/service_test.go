package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pranay7979/BrainyCheck/internal/domain/identity"
	"github.com/pranay7979/BrainyCheck/internal/domain/scans"
	"github.com/pranay7979/BrainyCheck/internal/platform/auth"
)

type mockDirectory struct {
	users map[uuid.UUID]*identity.UserProfile
	err   error
}

func newMockDirectory() *mockDirectory {
	return &mockDirectory{users: make(map[uuid.UUID]*identity.UserProfile)}
}

func (m *mockDirectory) add(name string, role auth.Role) uuid.UUID {
	id := uuid.New()
	m.users[id] = &identity.UserProfile{ID: id, Name: name, Email: id.String() + "@example.com", Role: role}
	return id
}

func (m *mockDirectory) ListUsers(_ context.Context) ([]*identity.UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*identity.UserProfile
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockDirectory) UpdateUser(_ context.Context, id uuid.UUID, in identity.UpdateInput) (*identity.UserProfile, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, identity.ErrNotFound
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	cp := *u
	return &cp, nil
}

func (m *mockDirectory) DeleteUser(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return identity.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type mockFeed struct {
	events []*scans.ScanEvent
	err    error
}

func (m *mockFeed) ListScans(_ context.Context) ([]*scans.ScanEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func (m *mockFeed) upload(by uuid.UUID) {
	m.events = append(m.events, &scans.ScanEvent{ID: uuid.New(), UploadedBy: by})
}

func TestLoadPartitionIsTotalAndDisjoint(t *testing.T) {
	dir := newMockDirectory()
	dir.add("Dr. A", auth.RoleDoctor)
	dir.add("Dr. B", auth.RoleDoctor)
	dir.add("Rekha", auth.RoleReceptionist)
	dir.add("Pranay", auth.RoleUser)
	dir.add("Root", auth.RoleAdmin)
	dir.add("Ghost", "banned") // unrecognized role

	svc := NewService(dir, &mockFeed{})
	r, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	got := len(r.Doctors) + len(r.Receptionists) + len(r.General)
	if got != len(dir.users) {
		t.Errorf("partition covers %d of %d users", got, len(dir.users))
	}
	if len(r.Doctors) != 2 {
		t.Errorf("doctors = %d, want 2", len(r.Doctors))
	}
	if len(r.Receptionists) != 1 {
		t.Errorf("receptionists = %d, want 1", len(r.Receptionists))
	}
	// admin, plain user and the unrecognized role all land in general
	if len(r.General) != 3 {
		t.Errorf("general = %d, want 3", len(r.General))
	}

	seen := make(map[uuid.UUID]bool)
	for _, d := range r.Doctors {
		seen[d.ID] = true
	}
	for _, u := range r.Receptionists {
		if seen[u.ID] {
			t.Errorf("user %s in two buckets", u.ID)
		}
		seen[u.ID] = true
	}
	for _, u := range r.General {
		if seen[u.ID] {
			t.Errorf("user %s in two buckets", u.ID)
		}
	}
}

func TestLoadScanCounts(t *testing.T) {
	dir := newMockDirectory()
	busy := dir.add("Dr. Busy", auth.RoleDoctor)
	idle := dir.add("Dr. Idle", auth.RoleDoctor)
	user := dir.add("Pranay", auth.RoleUser)

	feed := &mockFeed{}
	feed.upload(busy)
	feed.upload(busy)
	feed.upload(user)            // non-doctor upload counts toward total only
	feed.upload(uuid.Nil)        // missing uploader skipped entirely
	feed.upload(uuid.New())      // uploader no longer on file

	svc := NewService(dir, feed)
	r, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	counts := make(map[uuid.UUID]int)
	sum := 0
	for _, d := range r.Doctors {
		counts[d.ID] = d.ScanCount
		sum += d.ScanCount
	}
	if counts[busy] != 2 {
		t.Errorf("busy count = %d, want 2", counts[busy])
	}
	if counts[idle] != 0 {
		t.Errorf("idle count = %d, want 0", counts[idle])
	}
	if sum > len(feed.events) {
		t.Errorf("doctor counts sum %d exceeds %d events", sum, len(feed.events))
	}
	if r.TotalScans != 5 {
		t.Errorf("total = %d, want 5", r.TotalScans)
	}
}

func TestLoadAbortsOnAnyReadError(t *testing.T) {
	readErr := errors.New("backend down")

	svc := NewService(&mockDirectory{err: readErr, users: map[uuid.UUID]*identity.UserProfile{}}, &mockFeed{})
	if _, err := svc.Load(context.Background()); !errors.Is(err, readErr) {
		t.Errorf("users error: got %v", err)
	}

	svc = NewService(newMockDirectory(), &mockFeed{err: readErr})
	if _, err := svc.Load(context.Background()); !errors.Is(err, readErr) {
		t.Errorf("scans error: got %v", err)
	}
}

func TestLoadDefaultsBlankNames(t *testing.T) {
	dir := newMockDirectory()
	dir.add("", auth.RoleDoctor)
	dir.add("", auth.RoleUser)

	svc := NewService(dir, &mockFeed{})
	r, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(r.Doctors) != 1 || r.Doctors[0].Name != UnknownDoctorName {
		t.Errorf("doctor name default missing: %+v", r.Doctors)
	}
	if len(r.General) != 1 || r.General[0].Name != UnknownUserName {
		t.Errorf("user name default missing: %+v", r.General)
	}
}

func TestLoadEmptyBucketsAreNonNil(t *testing.T) {
	svc := NewService(newMockDirectory(), &mockFeed{})
	r, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.Doctors == nil || r.Receptionists == nil || r.General == nil {
		t.Error("empty buckets must serialize as [], not null")
	}
}
