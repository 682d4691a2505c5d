package roster

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pranay7979/BrainyCheck/internal/domain/identity"
	"github.com/pranay7979/BrainyCheck/internal/domain/scans"
	"github.com/pranay7979/BrainyCheck/internal/platform/auth"
)

// Directory is the slice of the user registry the aggregator needs.
// Satisfied by *identity.Service.
type Directory interface {
	ListUsers(ctx context.Context) ([]*identity.UserProfile, error)
	UpdateUser(ctx context.Context, id uuid.UUID, in identity.UpdateInput) (*identity.UserProfile, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// ScanFeed is the slice of the scan history the aggregator needs.
// Satisfied by *scans.Service.
type ScanFeed interface {
	ListScans(ctx context.Context) ([]*scans.ScanEvent, error)
}

type Service struct {
	users Directory
	feed  ScanFeed
}

func NewService(users Directory, feed ScanFeed) *Service {
	return &Service{users: users, feed: feed}
}

// Load builds the admin aggregate. The two reads run concurrently; if either
// fails the whole load fails with that error — there is no partial roster.
func (s *Service) Load(ctx context.Context) (*Roster, error) {
	var (
		users  []*identity.UserProfile
		events []*scans.ScanEvent
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.ListUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.feed.ListScans(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return build(users, events), nil
}

// UpdateUser edits an account by storage id. Callers re-run Load afterwards
// to pick up the change.
func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, in identity.UpdateInput) (*identity.UserProfile, error) {
	return s.users.UpdateUser(ctx, id, in)
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.users.DeleteUser(ctx, id)
}

func build(users []*identity.UserProfile, events []*scans.ScanEvent) *Roster {
	counts := make(map[uuid.UUID]int, len(users))
	for _, e := range events {
		if e.UploadedBy == uuid.Nil {
			continue
		}
		counts[e.UploadedBy]++
	}

	r := &Roster{
		Doctors:       []*DoctorEntry{},
		Receptionists: []*identity.UserProfile{},
		General:       []*identity.UserProfile{},
		TotalScans:    len(events),
	}
	for _, u := range users {
		switch u.Role {
		case auth.RoleDoctor:
			if u.Name == "" {
				u.Name = UnknownDoctorName
			}
			r.Doctors = append(r.Doctors, &DoctorEntry{UserProfile: u, ScanCount: counts[u.ID]})
		case auth.RoleReceptionist:
			if u.Name == "" {
				u.Name = UnknownUserName
			}
			r.Receptionists = append(r.Receptionists, u)
		default:
			if u.Name == "" {
				u.Name = UnknownUserName
			}
			r.General = append(r.General, u)
		}
	}
	return r
}
