package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"
	"fuelstation-backend/internal/store"
)

// ErrDuplicateName is returned when a branch or attendant name is taken.
var ErrDuplicateName = errors.New("name already in use")

// Service manages the reference data: branches and their attendants.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Branches(ctx context.Context) ([]models.Branch, error) {
	branches, err := s.repo.ListBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	return branches, nil
}

func (s *Service) Branch(ctx context.Context, id uint) (models.Branch, error) {
	b, err := s.repo.GetBranch(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Branch{}, &reconcile.ResolutionError{Kind: reconcile.KindBranch, Token: fmt.Sprint(id)}
	}
	if err != nil {
		return models.Branch{}, fmt.Errorf("get branch: %w", err)
	}
	return b, nil
}

type BranchInput struct {
	Name     string
	Location string
}

func (s *Service) CreateBranch(ctx context.Context, in BranchInput, actor audit.Actor) (models.Branch, error) {
	name := strings.Join(strings.Fields(in.Name), " ")
	if name == "" {
		return models.Branch{}, &reconcile.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	branches, err := s.repo.ListBranches(ctx)
	if err != nil {
		return models.Branch{}, fmt.Errorf("list branches: %w", err)
	}
	for _, b := range branches {
		if reconcile.NormalizeName(b.Name) == reconcile.NormalizeName(name) {
			return models.Branch{}, fmt.Errorf("branch %q: %w", name, ErrDuplicateName)
		}
	}

	b := models.Branch{Name: name, Location: strings.TrimSpace(in.Location)}
	if err := s.repo.CreateBranch(ctx, &b); err != nil {
		return models.Branch{}, fmt.Errorf("create branch: %w", err)
	}
	s.writeAudit(ctx, audit.LogOptions{
		Actor:       actor,
		BranchID:    audit.BranchRef(b.ID),
		EntityType:  "branch",
		EntityID:    b.ID,
		Action:      models.AuditActionCreate,
		Description: "created branch " + b.Name,
		After:       b,
	})
	return b, nil
}

// UpdateBranch renames or relocates a branch. Empty fields are left alone.
func (s *Service) UpdateBranch(ctx context.Context, id uint, in BranchInput, actor audit.Actor) (models.Branch, error) {
	b, err := s.Branch(ctx, id)
	if err != nil {
		return models.Branch{}, err
	}
	before := b
	if name := strings.Join(strings.Fields(in.Name), " "); name != "" {
		b.Name = name
	}
	if loc := strings.TrimSpace(in.Location); loc != "" {
		b.Location = loc
	}
	if err := s.repo.UpdateBranch(ctx, &b); err != nil {
		return models.Branch{}, fmt.Errorf("update branch: %w", err)
	}
	s.writeAudit(ctx, audit.LogOptions{
		Actor:       actor,
		BranchID:    audit.BranchRef(b.ID),
		EntityType:  "branch",
		EntityID:    b.ID,
		Action:      models.AuditActionUpdate,
		Description: "updated branch " + b.Name,
		Before:      before,
		After:       b,
	})
	return b, nil
}

func (s *Service) Attendants(ctx context.Context, branchID uint) ([]models.Attendant, error) {
	if _, err := s.Branch(ctx, branchID); err != nil {
		return nil, err
	}
	list, err := s.repo.ListAttendants(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("list attendants: %w", err)
	}
	return list, nil
}

// CreateAttendant adds a named attendant to a branch. Names are compared the
// same way imports and cash reports compare them.
func (s *Service) CreateAttendant(ctx context.Context, branchID uint, name string, actor audit.Actor) (models.Attendant, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return models.Attendant{}, &reconcile.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	existing, err := s.Attendants(ctx, branchID)
	if err != nil {
		return models.Attendant{}, err
	}
	if ref := reconcile.ResolveAttendant(existing, branchID, name); ref.IsResolved() {
		return models.Attendant{}, fmt.Errorf("attendant %q: %w", name, ErrDuplicateName)
	}

	a := models.Attendant{BranchID: branchID, Name: name}
	if err := s.repo.CreateAttendant(ctx, &a); err != nil {
		return models.Attendant{}, fmt.Errorf("create attendant: %w", err)
	}
	s.writeAudit(ctx, audit.LogOptions{
		Actor:       actor,
		BranchID:    audit.BranchRef(branchID),
		EntityType:  "attendant",
		EntityID:    a.ID,
		Action:      models.AuditActionCreate,
		Description: "added attendant " + a.Name,
		After:       a,
	})
	return a, nil
}

func (s *Service) writeAudit(ctx context.Context, opts audit.LogOptions) {
	if err := audit.WriteLog(ctx, s.repo, opts); err != nil {
		config.LogError(config.GetLogger(), "admin", "writeAudit", opts.Description, opts.EntityType, err)
	}
}
