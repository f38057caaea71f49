package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"
	"fuelstation-backend/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNoRowsInserted fails an apply that wrote nothing at all.
var ErrNoRowsInserted = errors.New("no valid rows inserted")

type Service struct {
	repo   Repository
	prices PriceLookup
	newID  func() string
}

func NewService(repo Repository, prices PriceLookup) *Service {
	return &Service{repo: repo, prices: prices, newID: uuid.NewString}
}

type Preview struct {
	Sheets []SheetSummary `json:"sheets"`
	Result
}

// Preview parses wb and resolves it against the current branches and
// attendants. It writes nothing.
func (s *Service) Preview(ctx context.Context, wb Workbook, opts Options) (Preview, error) {
	batch, err := Extract(wb, opts)
	if err != nil {
		return Preview{}, &reconcile.ValidationError{Field: "file", Reason: err.Error()}
	}
	batch.FillPrices(s.prices)

	branches, err := s.repo.ListBranches(ctx)
	if err != nil {
		return Preview{}, fmt.Errorf("list branches: %w", err)
	}
	attendants, err := s.repo.ListAttendants(ctx, 0)
	if err != nil {
		return Preview{}, fmt.Errorf("list attendants: %w", err)
	}

	res := NormalizeImportRows(batch, branches, attendants)
	config.GetLogger().WithFields(logrus.Fields{
		"module":    "importer",
		"records":   len(res.ShiftRecords),
		"cash":      len(res.CashEntries),
		"skipped":   res.Skipped,
		"proposals": len(res.Proposals),
	}).Info("import previewed")
	return Preview{Sheets: batch.Sheets, Result: res}, nil
}

type ApplyOptions struct {
	// ConfirmNewAttendants creates the proposed attendants. Without it their
	// rows are skipped.
	ConfirmNewAttendants bool
}

type GroupOutcome struct {
	BranchID    uint             `json:"branch_id"`
	ShiftDate   string           `json:"shift_date"`
	ShiftTime   models.ShiftTime `json:"shift_time"`
	ShiftID     uint             `json:"shift_id,omitempty"`
	Records     int              `json:"records"`
	CashReports int              `json:"cash_reports"`
	Error       string           `json:"error,omitempty"`
}

type Report struct {
	BatchID           string         `json:"batch_id"`
	Inserted          int            `json:"inserted"`
	CashInserted      int            `json:"cash_inserted"`
	Skipped           int            `json:"skipped"`
	AttendantsCreated int            `json:"attendants_created"`
	Groups            []GroupOutcome `json:"groups"`
	Problems          []Problem      `json:"problems"`
}

type groupKey struct {
	branchID uint
	date     string
	time     models.ShiftTime
}

type group struct {
	key     groupKey
	date    time.Time
	records []ShiftRecord
	cash    []CashEntry
}

func groupResult(res Result) []*group {
	var groups []*group
	index := make(map[groupKey]*group)
	get := func(branchID uint, date time.Time, t models.ShiftTime) *group {
		k := groupKey{branchID: branchID, date: date.Format("2006-01-02"), time: t}
		g, ok := index[k]
		if !ok {
			g = &group{key: k, date: date}
			index[k] = g
			groups = append(groups, g)
		}
		return g
	}
	for _, r := range res.ShiftRecords {
		g := get(r.BranchID, r.ShiftDate, r.ShiftTime)
		g.records = append(g.records, r)
	}
	for _, c := range res.CashEntries {
		g := get(c.BranchID, c.ShiftDate, c.ShiftTime)
		g.cash = append(g.cash, c)
	}
	return groups
}

// Apply writes a normalized result. Groups are processed one after another,
// each in its own transaction: a failing group is rolled back and reported
// while groups before it stay committed. Every written row carries the batch
// id, and the batch gets one audit entry.
func (s *Service) Apply(ctx context.Context, res Result, opts ApplyOptions, actor audit.Actor) (Report, error) {
	rep := Report{
		BatchID:  s.newID(),
		Skipped:  res.Skipped,
		Groups:   []GroupOutcome{},
		Problems: append([]Problem{}, res.Problems...),
	}
	created := make(map[string]uint)
	failed := 0

	for _, g := range groupResult(res) {
		records := g.records
		if !opts.ConfirmNewAttendants {
			records = records[:0:0]
			for _, r := range g.records {
				if r.Attendant.IsResolved() {
					records = append(records, r)
					continue
				}
				rep.Skipped++
				rep.Problems = append(rep.Problems, Problem{
					Sheet:  r.Sheet,
					Line:   r.Line,
					Reason: fmt.Sprintf("attendant %q is not known in branch %d; confirm new attendants to create it", r.Attendant.RawName, r.BranchID),
				})
			}
		}
		if len(records) == 0 && len(g.cash) == 0 {
			continue
		}

		out := GroupOutcome{BranchID: g.key.branchID, ShiftDate: g.key.date, ShiftTime: g.key.time}
		fresh := make(map[string]uint)
		err := s.repo.Transaction(ctx, func(tx Repository) error {
			sh, err := openShift(ctx, tx, g)
			if err != nil {
				return err
			}
			out.ShiftID = sh.ID

			for _, r := range records {
				attendantID, err := attendantFor(ctx, tx, r, created, fresh)
				if err != nil {
					return err
				}
				row := models.ShiftData{
					ShiftID:        sh.ID,
					AttendantID:    attendantID,
					PumpProduct:    r.PumpProduct,
					OpeningMeter:   r.OpeningMeter,
					ClosingMeter:   r.ClosingMeter,
					PricePerLiter:  r.PricePerLiter,
					ExpectedAmount: r.ExpectedAmount,
					CashRemitted:   r.CashRemitted,
					POSRemitted:    r.POSRemitted,
					Variance:       r.Variance,
					ImportBatchID:  rep.BatchID,
				}
				if err := tx.CreateShiftData(ctx, &row); err != nil {
					return fmt.Errorf("line %d: create shift data: %w", r.Line, err)
				}
				if r.Expenses > 0 {
					desc := r.ExpenseNote
					if desc == "" {
						desc = "imported expense"
					}
					exp := models.Expense{
						ShiftDataID:   row.ID,
						Description:   desc,
						Amount:        r.Expenses,
						Status:        models.ExpensePending,
						ImportBatchID: rep.BatchID,
					}
					if err := tx.CreateExpense(ctx, &exp); err != nil {
						return fmt.Errorf("line %d: create expense: %w", r.Line, err)
					}
				}
			}

			for _, c := range g.cash {
				report := models.CashAnalysisReport{
					BranchID:        c.BranchID,
					AttendantName:   c.AttendantName,
					PumpNumber:      c.PumpNumber,
					ProductType:     c.ProductType,
					Denominations:   c.Denominations,
					TotalCash:       c.TotalCash,
					ExpensesClaimed: c.ExpensesClaimed,
					POSClaimed:      c.POSClaimed,
					ShiftDate:       c.ShiftDate,
					ShiftTime:       c.ShiftTime,
					ImportBatchID:   rep.BatchID,
				}
				if err := tx.CreateCashReport(ctx, &report); err != nil {
					return fmt.Errorf("column %s: create cash report: %w", c.Column, err)
				}
			}
			return nil
		})
		if err != nil {
			failed++
			out.ShiftID = 0
			out.Error = err.Error()
			rep.Groups = append(rep.Groups, out)
			config.LogError(config.GetLogger(), "importer", "Apply", rep.BatchID, out, err)
			continue
		}

		for k, id := range fresh {
			created[k] = id
		}
		out.Records = len(records)
		out.CashReports = len(g.cash)
		rep.AttendantsCreated += len(fresh)
		rep.Inserted += len(records)
		rep.CashInserted += len(g.cash)
		rep.Groups = append(rep.Groups, out)
	}

	if rep.Inserted+rep.CashInserted == 0 {
		return rep, fmt.Errorf("%w: 0 of %d rows inserted, %d skipped, %d groups failed",
			ErrNoRowsInserted, len(res.ShiftRecords)+len(res.CashEntries), rep.Skipped, failed)
	}

	if err := audit.WriteLog(ctx, s.repo, audit.LogOptions{
		Actor:       actor,
		EntityType:  "import_batch",
		EntityRef:   rep.BatchID,
		Action:      models.AuditActionImport,
		Description: fmt.Sprintf("imported %d records and %d cash reports, skipped %d", rep.Inserted, rep.CashInserted, rep.Skipped),
		After:       rep,
	}); err != nil {
		config.LogError(config.GetLogger(), "importer", "Apply", "audit", rep.BatchID, err)
	}

	config.GetLogger().WithFields(logrus.Fields{
		"module":   "importer",
		"batch":    rep.BatchID,
		"inserted": rep.Inserted,
		"cash":     rep.CashInserted,
		"skipped":  rep.Skipped,
		"failed":   failed,
	}).Info("import applied")
	return rep, nil
}

func openShift(ctx context.Context, tx Repository, g *group) (models.Shift, error) {
	sh, err := tx.FindOpenShift(ctx, g.key.branchID, g.date, g.key.time)
	if err == nil {
		return sh, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Shift{}, fmt.Errorf("find open shift: %w", err)
	}
	sh = models.Shift{
		BranchID:  g.key.branchID,
		ShiftDate: g.date,
		ShiftTime: g.key.time,
		Status:    models.ShiftOpen,
	}
	if err := tx.CreateShift(ctx, &sh); err != nil {
		return models.Shift{}, fmt.Errorf("create shift: %w", err)
	}
	return sh, nil
}

// attendantFor returns the attendant id of r, creating the attendant the
// first time an unresolved name is seen. created holds attendants from groups
// already committed; fresh collects the ones made in the current group.
func attendantFor(ctx context.Context, tx Repository, r ShiftRecord, created, fresh map[string]uint) (uint, error) {
	if r.Attendant.IsResolved() {
		return r.Attendant.ID, nil
	}
	key := proposalKey(r.BranchID, r.Attendant.RawName)
	if id, ok := created[key]; ok {
		return id, nil
	}
	if id, ok := fresh[key]; ok {
		return id, nil
	}
	a := models.Attendant{BranchID: r.BranchID, Name: r.Attendant.RawName}
	if err := tx.CreateAttendant(ctx, &a); err != nil {
		return 0, fmt.Errorf("create attendant %q: %w", a.Name, err)
	}
	fresh[key] = a.ID
	return a.ID, nil
}
