package reconcile

import (
	"fmt"
	"strings"

	"fuelstation-backend/internal/models"

	"github.com/shopspring/decimal"
)

type ExpenseAction string

const (
	ActionApprove ExpenseAction = "approve"
	ActionReject  ExpenseAction = "reject"
)

// Transition applies a manager decision to an expense status. Only PENDING
// expenses can be decided; APPROVED and REJECTED are terminal.
func Transition(current models.ExpenseStatus, action ExpenseAction) (models.ExpenseStatus, error) {
	if current != models.ExpensePending {
		return current, fmt.Errorf("%w: expense is %s", ErrInvalidTransition, current)
	}
	switch action {
	case ActionApprove:
		return models.ExpenseApproved, nil
	case ActionReject:
		return models.ExpenseRejected, nil
	default:
		return current, fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, action)
	}
}

// ExpensePolicy decides whether approved expenses count toward what an
// attendant remitted.
type ExpensePolicy string

const (
	// PolicyInformational keeps approved expenses out of every variance.
	PolicyInformational ExpensePolicy = "informational"
	// PolicyOffset adds approved expenses to the remitted side of the
	// effective variance. The persisted variance is still never rewritten.
	PolicyOffset ExpensePolicy = "offset"
)

func ParseExpensePolicy(s string) (ExpensePolicy, error) {
	switch ExpensePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyInformational:
		return PolicyInformational, nil
	case PolicyOffset:
		return PolicyOffset, nil
	default:
		return "", invalid("expense_policy", "must be %q or %q, got %q", PolicyInformational, PolicyOffset, s)
	}
}

// EffectiveVariance is the variance shown to managers under policy.
func EffectiveVariance(variance, approvedExpenses float64, policy ExpensePolicy) float64 {
	if policy != PolicyOffset {
		return variance
	}
	return dec(variance).Add(dec(approvedExpenses)).InexactFloat64()
}

// ApprovedTotal sums the approved expenses attached to shiftDataID. It is
// the value stored in ShiftData.ExpensesTotal after every decision.
func ApprovedTotal(expenses []models.Expense, shiftDataID uint) float64 {
	sum := decimal.Zero
	for _, e := range expenses {
		if e.ShiftDataID == shiftDataID && e.Status == models.ExpenseApproved {
			sum = sum.Add(dec(e.Amount))
		}
	}
	return sum.InexactFloat64()
}

// ValidateExpense checks a new expense before it is stored.
func ValidateExpense(e models.Expense) error {
	if e.ShiftDataID == 0 {
		return invalid("shift_data_id", "is required")
	}
	if strings.TrimSpace(e.Description) == "" {
		return invalid("description", "is required")
	}
	if !(e.Amount > 0) {
		return invalid("amount", "must be greater than zero, got %v", e.Amount)
	}
	return nil
}
