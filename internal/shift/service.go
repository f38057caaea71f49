package shift

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"
	"fuelstation-backend/internal/store"
)

type Service struct {
	repo   Repository
	prices PriceLookup
}

func NewService(repo Repository, prices PriceLookup) *Service {
	return &Service{repo: repo, prices: prices}
}

type OpenInput struct {
	BranchID  uint
	ShiftDate time.Time
	ShiftTime models.ShiftTime
}

// Open returns the OPEN shift for the slot, creating it when there is none.
// Several OPEN shifts may exist for a branch, but never two for one slot.
func (s *Service) Open(ctx context.Context, in OpenInput, actor audit.Actor) (models.Shift, bool, error) {
	if in.ShiftDate.IsZero() {
		return models.Shift{}, false, &reconcile.ValidationError{Field: "shift_date", Reason: "is required"}
	}
	if !in.ShiftTime.Valid() {
		return models.Shift{}, false, &reconcile.ValidationError{Field: "shift_time", Reason: fmt.Sprintf("must be %s or %s", models.ShiftMorning, models.ShiftEvening)}
	}
	if _, err := s.repo.GetBranch(ctx, in.BranchID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Shift{}, false, &reconcile.ResolutionError{Kind: reconcile.KindBranch, Token: fmt.Sprint(in.BranchID)}
		}
		return models.Shift{}, false, fmt.Errorf("get branch: %w", err)
	}

	existing, err := s.repo.FindOpenShift(ctx, in.BranchID, in.ShiftDate, in.ShiftTime)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Shift{}, false, fmt.Errorf("find open shift: %w", err)
	}

	sh := models.Shift{
		BranchID:  in.BranchID,
		ShiftDate: in.ShiftDate,
		ShiftTime: in.ShiftTime,
		Status:    models.ShiftOpen,
	}
	if err := s.repo.CreateShift(ctx, &sh); err != nil {
		// A concurrent open for the same slot wins the unique index.
		if winner, ferr := s.repo.FindOpenShift(ctx, in.BranchID, in.ShiftDate, in.ShiftTime); ferr == nil {
			return winner, false, nil
		}
		return models.Shift{}, false, fmt.Errorf("create shift: %w", err)
	}
	s.writeAudit(ctx, audit.LogOptions{
		Actor:       actor,
		BranchID:    audit.BranchRef(sh.BranchID),
		EntityType:  "shift",
		EntityID:    sh.ID,
		Action:      models.AuditActionCreate,
		Description: fmt.Sprintf("opened %s shift on %s", sh.ShiftTime, sh.ShiftDate.Format("2006-01-02")),
		After:       sh,
	})
	return sh, true, nil
}

// Close moves an OPEN shift to CLOSED.
func (s *Service) Close(ctx context.Context, id uint, actor audit.Actor) (models.Shift, error) {
	sh, err := s.repo.GetShift(ctx, id)
	if err != nil {
		return models.Shift{}, fmt.Errorf("get shift: %w", err)
	}
	if sh.Status != models.ShiftOpen {
		return sh, fmt.Errorf("%w: shift %d is already %s", reconcile.ErrInvalidTransition, id, sh.Status)
	}

	before := sh
	sh.Status = models.ShiftClosed
	if err := s.repo.SaveShift(ctx, &sh); err != nil {
		return models.Shift{}, fmt.Errorf("close shift: %w", err)
	}
	s.writeAudit(ctx, audit.LogOptions{
		Actor:       actor,
		BranchID:    audit.BranchRef(sh.BranchID),
		EntityType:  "shift",
		EntityID:    sh.ID,
		Action:      models.AuditActionClose,
		Description: "closed shift",
		Before:      before,
		After:       sh,
	})
	return sh, nil
}

// SignOff records the general manager's sign-off on a CLOSED shift.
func (s *Service) SignOff(ctx context.Context, id uint, actor audit.Actor) (models.Shift, error) {
	sh, err := s.repo.GetShift(ctx, id)
	if err != nil {
		return models.Shift{}, fmt.Errorf("get shift: %w", err)
	}
	if sh.Status != models.ShiftClosed {
		return sh, fmt.Errorf("%w: shift %d must be closed before sign-off", reconcile.ErrInvalidTransition, id)
	}
	if sh.GMSignedOff {
		return sh, fmt.Errorf("%w: shift %d is already signed off", reconcile.ErrInvalidTransition, id)
	}

	sh.GMSignedOff = true
	if err := s.repo.SaveShift(ctx, &sh); err != nil {
		return models.Shift{}, fmt.Errorf("sign off shift: %w", err)
	}
	s.writeAudit(ctx, audit.LogOptions{
		Actor:       actor,
		BranchID:    audit.BranchRef(sh.BranchID),
		EntityType:  "shift",
		EntityID:    sh.ID,
		Action:      models.AuditActionSignOff,
		Description: "GM sign-off",
		After:       sh,
	})
	return sh, nil
}

// Active resolves the OPEN shift for a slot. Without a date and time it
// falls back to the most recently dated OPEN shift of the branch.
func (s *Service) Active(ctx context.Context, branchID uint, date time.Time, t models.ShiftTime) (models.Shift, error) {
	var (
		sh  models.Shift
		err error
	)
	if !date.IsZero() && t != "" {
		if !t.Valid() {
			return models.Shift{}, &reconcile.ValidationError{Field: "shift_time", Reason: fmt.Sprintf("unknown shift time %q", t)}
		}
		sh, err = s.repo.FindOpenShift(ctx, branchID, date, t)
	} else {
		sh, err = s.repo.LatestOpenShift(ctx, branchID)
	}
	if errors.Is(err, store.ErrNotFound) {
		return models.Shift{}, &reconcile.ResolutionError{Kind: reconcile.KindShift, Token: fmt.Sprintf("branch %d open shift", branchID)}
	}
	if err != nil {
		return models.Shift{}, fmt.Errorf("find active shift: %w", err)
	}
	return sh, nil
}

type EntryInput struct {
	ShiftID         uint
	AttendantName   string
	CreateAttendant bool
	PumpProduct     string
	OpeningMeter    float64
	ClosingMeter    float64
	PricePerLiter   float64
	CashRemitted    float64
	POSRemitted     float64
}

// RecordEntry stores one meter reading with its computed expected amount
// and variance. An unknown attendant name is an error unless the caller
// explicitly asks for the attendant to be created.
func (s *Service) RecordEntry(ctx context.Context, in EntryInput, actor audit.Actor) (models.ShiftData, error) {
	sh, err := s.repo.GetShift(ctx, in.ShiftID)
	if err != nil {
		return models.ShiftData{}, fmt.Errorf("get shift: %w", err)
	}
	if sh.Status != models.ShiftOpen {
		return models.ShiftData{}, fmt.Errorf("%w: shift %d is closed", reconcile.ErrInvalidTransition, sh.ID)
	}

	price := in.PricePerLiter
	if price == 0 && s.prices != nil {
		if p, ok := s.prices.PriceFor(in.PumpProduct); ok {
			price = p
		}
	}
	if price == 0 {
		return models.ShiftData{}, &reconcile.ValidationError{Field: "price_per_liter", Reason: fmt.Sprintf("no price given and none configured for %q", in.PumpProduct)}
	}

	res, err := reconcile.ComputeVariance(reconcile.MeterInput{
		OpeningMeter:  in.OpeningMeter,
		ClosingMeter:  in.ClosingMeter,
		PricePerLiter: price,
		CashRemitted:  in.CashRemitted,
		POSRemitted:   in.POSRemitted,
	})
	if err != nil {
		return models.ShiftData{}, err
	}

	att, isNew, err := s.resolveAttendant(ctx, sh.BranchID, in.AttendantName, in.CreateAttendant)
	if err != nil {
		return models.ShiftData{}, err
	}

	rec := models.ShiftData{
		ShiftID:        sh.ID,
		PumpProduct:    strings.TrimSpace(in.PumpProduct),
		OpeningMeter:   in.OpeningMeter,
		ClosingMeter:   in.ClosingMeter,
		PricePerLiter:  price,
		ExpectedAmount: res.ExpectedAmount,
		CashRemitted:   in.CashRemitted,
		POSRemitted:    in.POSRemitted,
		Variance:       res.Variance,
	}
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if isNew {
			if err := tx.CreateAttendant(ctx, &att); err != nil {
				return fmt.Errorf("create attendant: %w", err)
			}
		}
		rec.AttendantID = att.ID
		if err := tx.CreateShiftData(ctx, &rec); err != nil {
			return fmt.Errorf("create shift data: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.ShiftData{}, err
	}
	rec.Attendant = att

	s.writeAudit(ctx, audit.LogOptions{
		Actor:       actor,
		BranchID:    audit.BranchRef(sh.BranchID),
		EntityType:  "shift_data",
		EntityID:    rec.ID,
		Action:      models.AuditActionCreate,
		Description: fmt.Sprintf("%s on %s: variance %.2f", att.Name, rec.PumpProduct, rec.Variance),
		After:       rec,
	})
	return rec, nil
}

// resolveAttendant finds the named attendant of the branch. With create set,
// an unknown name yields an unsaved attendant and isNew.
func (s *Service) resolveAttendant(ctx context.Context, branchID uint, name string, create bool) (att models.Attendant, isNew bool, err error) {
	if strings.TrimSpace(name) == "" {
		return models.Attendant{}, false, &reconcile.ValidationError{Field: "attendant_name", Reason: "is required"}
	}
	attendants, err := s.repo.ListAttendants(ctx, branchID)
	if err != nil {
		return models.Attendant{}, false, fmt.Errorf("list attendants: %w", err)
	}
	ref := reconcile.ResolveAttendant(attendants, branchID, name)
	if ref.IsResolved() {
		for _, a := range attendants {
			if a.ID == ref.ID {
				return a, false, nil
			}
		}
	}
	if !create {
		return models.Attendant{}, false, &reconcile.ResolutionError{Kind: reconcile.KindAttendant, Token: ref.RawName}
	}
	return models.Attendant{BranchID: branchID, Name: strings.Join(strings.Fields(name), " ")}, true, nil
}

// Records lists the shift-data rows of a shift.
func (s *Service) Records(ctx context.Context, shiftID uint) ([]models.ShiftData, error) {
	if _, err := s.repo.GetShift(ctx, shiftID); err != nil {
		return nil, fmt.Errorf("get shift: %w", err)
	}
	records, err := s.repo.ListShiftDataByShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("list shift data: %w", err)
	}
	return records, nil
}

// writeAudit never fails the operation it records.
func (s *Service) writeAudit(ctx context.Context, opts audit.LogOptions) {
	if err := audit.WriteLog(ctx, s.repo, opts); err != nil {
		config.LogError(config.GetLogger(), "shift", "writeAudit", opts.Description, opts.EntityType, err)
	}
}
