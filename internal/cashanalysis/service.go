package cashanalysis

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
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type SubmitInput struct {
	BranchID        uint
	AttendantName   string
	PumpNumber      string
	ProductType     string
	Denominations   map[int]int
	ExpensesClaimed float64
	POSClaimed      float64
	ShiftDate       time.Time
	ShiftTime       models.ShiftTime
}

// Submit stores a physical cash count. TotalCash is always derived from the
// note counts.
func (s *Service) Submit(ctx context.Context, in SubmitInput, actor audit.Actor) (models.CashAnalysisReport, error) {
	name := strings.Join(strings.Fields(in.AttendantName), " ")
	switch {
	case name == "":
		return models.CashAnalysisReport{}, &reconcile.ValidationError{Field: "attendant_name", Reason: "is required"}
	case in.ShiftDate.IsZero():
		return models.CashAnalysisReport{}, &reconcile.ValidationError{Field: "shift_date", Reason: "is required"}
	case !in.ShiftTime.Valid():
		return models.CashAnalysisReport{}, &reconcile.ValidationError{Field: "shift_time", Reason: fmt.Sprintf("unknown shift time %q", in.ShiftTime)}
	case in.ExpensesClaimed < 0:
		return models.CashAnalysisReport{}, &reconcile.ValidationError{Field: "expenses_claimed", Reason: "must not be negative"}
	case in.POSClaimed < 0:
		return models.CashAnalysisReport{}, &reconcile.ValidationError{Field: "pos_claimed", Reason: "must not be negative"}
	}

	total, err := reconcile.TotalizeCash(in.Denominations)
	if err != nil {
		return models.CashAnalysisReport{}, err
	}

	if _, err := s.repo.GetBranch(ctx, in.BranchID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.CashAnalysisReport{}, &reconcile.ResolutionError{Kind: reconcile.KindBranch, Token: fmt.Sprint(in.BranchID)}
		}
		return models.CashAnalysisReport{}, fmt.Errorf("get branch: %w", err)
	}

	report := models.CashAnalysisReport{
		BranchID:        in.BranchID,
		AttendantName:   name,
		PumpNumber:      strings.TrimSpace(in.PumpNumber),
		ProductType:     strings.ToUpper(strings.TrimSpace(in.ProductType)),
		Denominations:   knownOnly(in.Denominations),
		TotalCash:       float64(total.Total),
		ExpensesClaimed: in.ExpensesClaimed,
		POSClaimed:      in.POSClaimed,
		ShiftDate:       in.ShiftDate,
		ShiftTime:       in.ShiftTime,
	}
	if err := s.repo.CreateCashReport(ctx, &report); err != nil {
		return models.CashAnalysisReport{}, fmt.Errorf("create cash report: %w", err)
	}

	if err := audit.WriteLog(ctx, s.repo, audit.LogOptions{
		Actor:       actor,
		BranchID:    audit.BranchRef(report.BranchID),
		EntityType:  "cash_analysis",
		EntityID:    report.ID,
		Action:      models.AuditActionCreate,
		Description: fmt.Sprintf("cash count for %s: %.0f", report.AttendantName, report.TotalCash),
		After:       report,
	}); err != nil {
		config.LogError(config.GetLogger(), "cashanalysis", "Submit", "audit", report.ID, err)
	}
	return report, nil
}

func knownOnly(counts map[int]int) models.Denominations {
	out := make(models.Denominations, len(reconcile.Denominations))
	for _, d := range reconcile.Denominations {
		if n, ok := counts[d]; ok {
			out[d] = n
		}
	}
	return out
}

type Query struct {
	BranchID  uint
	ShiftDate time.Time
	ShiftTime models.ShiftTime
	Strict    bool
}

type Summary struct {
	Matched       int `json:"matched"`
	Mismatched    int `json:"mismatched"`
	Indeterminate int `json:"indeterminate"`
}

type Result struct {
	Strict  bool                    `json:"strict"`
	Reports []reconcile.ReportMatch `json:"reports"`
	Summary Summary                 `json:"summary"`
}

// Reconcile matches every cash count of the branch (optionally narrowed to
// one date and shift time) against the ledger. Any read failure aborts the
// whole run.
func (s *Service) Reconcile(ctx context.Context, q Query) (Result, error) {
	reports, err := s.repo.ListCashReports(ctx, q.BranchID, q.ShiftDate, q.ShiftTime)
	if err != nil {
		return Result{}, &reconcile.AggregationError{Op: "list cash reports", Err: err}
	}
	shifts, err := s.repo.ListShifts(ctx, q.BranchID)
	if err != nil {
		return Result{}, &reconcile.AggregationError{Op: "list shifts", Err: err}
	}
	ids := make([]uint, 0, len(shifts))
	for _, sh := range shifts {
		ids = append(ids, sh.ID)
	}
	records, err := s.repo.ListShiftDataByShifts(ctx, ids)
	if err != nil {
		return Result{}, &reconcile.AggregationError{Op: "list shift data", Err: err}
	}

	res := Result{Strict: q.Strict, Reports: make([]reconcile.ReportMatch, 0, len(reports))}
	for _, r := range reports {
		m := reconcile.ReconcileReport(r, shifts, records, q.Strict)
		switch m.Status {
		case reconcile.StatusMatched:
			res.Summary.Matched++
		case reconcile.StatusMismatch:
			res.Summary.Mismatched++
		default:
			res.Summary.Indeterminate++
		}
		res.Reports = append(res.Reports, m)
	}
	return res, nil
}
