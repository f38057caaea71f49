package dashboard

import (
	"context"
	"fmt"
	"time"

	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"

	"github.com/shopspring/decimal"
)

// Service reads a snapshot of the ledger and hands it to the reconcile
// engine. Nothing is cached between calls.
type Service struct {
	repo   Repository
	engine reconcile.Engine
	loc    *time.Location
	now    func() time.Time
}

func NewService(repo Repository, policy reconcile.ExpensePolicy, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{repo: repo, engine: reconcile.Engine{Policy: policy}, loc: loc, now: time.Now}
}

// WithClock replaces the time source used for the trend window.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type Overview struct {
	Policy      reconcile.ExpensePolicy        `json:"expense_policy"`
	GeneratedAt time.Time                      `json:"generated_at"`
	Branches    []reconcile.BranchAggregateRow `json:"branches"`
	Totals      reconcile.GlobalTotals         `json:"totals"`
}

// Overview builds the live branch matrix. branchID narrows it to one branch;
// zero means every branch.
func (s *Service) Overview(ctx context.Context, branchID uint) (Overview, error) {
	branches, err := s.repo.ListBranches(ctx)
	if err != nil {
		return Overview{}, &reconcile.AggregationError{Op: "list branches", Err: err}
	}
	if branchID != 0 {
		branches = onlyBranch(branches, branchID)
		if len(branches) == 0 {
			return Overview{}, &reconcile.ResolutionError{Kind: reconcile.KindBranch, Token: fmt.Sprint(branchID)}
		}
	}

	shifts, err := s.repo.ListShifts(ctx, branchID)
	if err != nil {
		return Overview{}, &reconcile.AggregationError{Op: "list shifts", Err: err}
	}
	records, err := s.repo.ListShiftDataByShifts(ctx, shiftIDs(shifts))
	if err != nil {
		return Overview{}, &reconcile.AggregationError{Op: "list shift data", Err: err}
	}
	expenses, err := s.repo.ListExpensesByShiftDataIDs(ctx, recordIDs(records))
	if err != nil {
		return Overview{}, &reconcile.AggregationError{Op: "list expenses", Err: err}
	}

	rows := s.engine.Overview(branches, shifts, records, expenses)
	return Overview{
		Policy:      s.policy(),
		GeneratedAt: s.now().In(s.loc),
		Branches:    rows,
		Totals:      reconcile.SummarizeGlobal(rows),
	}, nil
}

func (s *Service) policy() reconcile.ExpensePolicy {
	if s.engine.Policy == "" {
		return reconcile.PolicyInformational
	}
	return s.engine.Policy
}

type TrendTotals struct {
	Variance float64 `json:"variance"`
	Claimed  float64 `json:"claimed"`
	Actual   float64 `json:"actual"`
}

type Trend struct {
	BranchID    uint                   `json:"branch_id,omitempty"`
	Days        int                    `json:"days"`
	From        string                 `json:"from"`
	To          string                 `json:"to"`
	Points      []reconcile.TrendPoint `json:"points"`
	GrandTotals TrendTotals            `json:"grand_totals"`
}

// Trend returns daily variance over the trailing days, today included.
// Claimed is an estimate, see reconcile.TrendPoint.
func (s *Service) Trend(ctx context.Context, days int, branchID uint) (Trend, error) {
	if days <= 0 {
		return Trend{}, &reconcile.ValidationError{Field: "days", Reason: fmt.Sprintf("must be positive, got %d", days)}
	}
	now := s.now().In(s.loc)
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(days - 1))

	shifts, err := s.repo.ListShiftsSince(ctx, branchID, start)
	if err != nil {
		return Trend{}, &reconcile.AggregationError{Op: "list shifts", Err: err}
	}
	records, err := s.repo.ListShiftDataByShifts(ctx, shiftIDs(shifts))
	if err != nil {
		return Trend{}, &reconcile.AggregationError{Op: "list shift data", Err: err}
	}

	points, err := reconcile.ComputeTrend(records, shifts, days, now)
	if err != nil {
		return Trend{}, err
	}

	var variance, claimed, actual decimal.Decimal
	for _, p := range points {
		variance = variance.Add(decimal.NewFromFloat(p.Variance))
		claimed = claimed.Add(decimal.NewFromFloat(p.Claimed))
		actual = actual.Add(decimal.NewFromFloat(p.Actual))
	}

	return Trend{
		BranchID: branchID,
		Days:     days,
		From:     start.Format("2006-01-02"),
		To:       end.Format("2006-01-02"),
		Points:   points,
		GrandTotals: TrendTotals{
			Variance: variance.InexactFloat64(),
			Claimed:  claimed.InexactFloat64(),
			Actual:   actual.InexactFloat64(),
		},
	}, nil
}

func onlyBranch(branches []models.Branch, id uint) []models.Branch {
	for _, b := range branches {
		if b.ID == id {
			return []models.Branch{b}
		}
	}
	return nil
}

func shiftIDs(shifts []models.Shift) []uint {
	ids := make([]uint, 0, len(shifts))
	for _, s := range shifts {
		ids = append(ids, s.ID)
	}
	return ids
}

func recordIDs(records []models.ShiftData) []uint {
	ids := make([]uint, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}
