package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type SubmitInput struct {
	ShiftDataID uint
	Description string
	Amount      float64
	ReceiptURL  string
}

// Submit records a PENDING expense against a shift-data row.
func (s *Service) Submit(ctx context.Context, in SubmitInput, actor audit.Actor) (models.Expense, error) {
	e := models.Expense{
		ShiftDataID: in.ShiftDataID,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		ReceiptURL:  strings.TrimSpace(in.ReceiptURL),
		Status:      models.ExpensePending,
	}
	if err := reconcile.ValidateExpense(e); err != nil {
		return models.Expense{}, err
	}

	rec, err := s.repo.GetShiftData(ctx, in.ShiftDataID)
	if err != nil {
		return models.Expense{}, fmt.Errorf("get shift data: %w", err)
	}
	sh, err := s.repo.GetShift(ctx, rec.ShiftID)
	if err != nil {
		return models.Expense{}, fmt.Errorf("get shift: %w", err)
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateExpense(ctx, &e); err != nil {
			return fmt.Errorf("create expense: %w", err)
		}
		return audit.WriteLog(ctx, tx, audit.LogOptions{
			Actor:       actor,
			BranchID:    audit.BranchRef(sh.BranchID),
			EntityType:  "expense",
			EntityID:    e.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("expense %.2f: %s", e.Amount, e.Description),
			After:       e,
		})
	})
	if err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

// Decide applies a manager's approve or reject decision. The owning row's
// ExpensesTotal is reset to the sum of its approved expenses in the same
// transaction; its stored Variance is left as recorded.
func (s *Service) Decide(ctx context.Context, id uint, action reconcile.ExpenseAction, actor audit.Actor) (models.Expense, error) {
	var out models.Expense
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		e, err := tx.GetExpense(ctx, id)
		if err != nil {
			return fmt.Errorf("get expense: %w", err)
		}
		before := e

		next, err := reconcile.Transition(e.Status, action)
		if err != nil {
			return fmt.Errorf("expense %d: %w", id, err)
		}
		now := s.now()
		decidedBy := actor.UserID
		e.Status = next
		e.DecidedBy = &decidedBy
		e.DecidedAt = &now
		if err := tx.SaveExpense(ctx, &e); err != nil {
			return fmt.Errorf("save expense: %w", err)
		}

		siblings, err := tx.ListExpensesByShiftData(ctx, e.ShiftDataID)
		if err != nil {
			return fmt.Errorf("list expenses: %w", err)
		}
		total := reconcile.ApprovedTotal(withCurrent(siblings, e), e.ShiftDataID)
		if err := tx.SetExpensesTotal(ctx, e.ShiftDataID, total); err != nil {
			return fmt.Errorf("update expenses total: %w", err)
		}

		auditAction := models.AuditActionApprove
		if next == models.ExpenseRejected {
			auditAction = models.AuditActionReject
		}
		if err := audit.WriteLog(ctx, tx, audit.LogOptions{
			Actor:       actor,
			EntityType:  "expense",
			EntityID:    e.ID,
			Action:      auditAction,
			Description: fmt.Sprintf("expense %.2f %s", e.Amount, strings.ToLower(string(next))),
			Before:      before,
			After:       e,
		}); err != nil {
			return err
		}
		out = e
		return nil
	})
	if err != nil {
		return models.Expense{}, err
	}
	return out, nil
}

// withCurrent replaces the stored copy of e in list, since a read inside the
// transaction may not reflect the update yet on every driver.
func withCurrent(list []models.Expense, e models.Expense) []models.Expense {
	out := make([]models.Expense, 0, len(list)+1)
	found := false
	for _, x := range list {
		if x.ID == e.ID {
			out = append(out, e)
			found = true
			continue
		}
		out = append(out, x)
	}
	if !found {
		out = append(out, e)
	}
	return out
}

// PendingExpense is a row of the "action required" view.
type PendingExpense struct {
	models.Expense
	ShiftID       uint   `json:"shift_id"`
	AttendantName string `json:"attendant_name"`
	PumpProduct   string `json:"pump_product"`
}

// Pending lists every PENDING expense with the attendant it belongs to,
// oldest first. Decided expenses are history and never listed here.
func (s *Service) Pending(ctx context.Context) ([]PendingExpense, error) {
	expenses, err := s.repo.ListExpensesByStatus(ctx, models.ExpensePending)
	if err != nil {
		return nil, fmt.Errorf("list pending expenses: %w", err)
	}

	records := make(map[uint]models.ShiftData)
	out := make([]PendingExpense, 0, len(expenses))
	for _, e := range expenses {
		rec, ok := records[e.ShiftDataID]
		if !ok {
			rec, err = s.repo.GetShiftData(ctx, e.ShiftDataID)
			if err != nil {
				return nil, fmt.Errorf("get shift data %d: %w", e.ShiftDataID, err)
			}
			records[e.ShiftDataID] = rec
		}
		out = append(out, PendingExpense{
			Expense:       e,
			ShiftID:       rec.ShiftID,
			AttendantName: rec.Attendant.Name,
			PumpProduct:   rec.PumpProduct,
		})
	}
	return out, nil
}
