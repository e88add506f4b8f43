package ledger

import (
	"fmt"
	"gestao_obras/internal/domain/entities"
	"strings"
)

var (
	ErrInvalidExpenseType = fmt.Errorf("%w: expense type must be capex or opex", entities.ErrValidation)
	ErrCapexRequiresAsset = fmt.Errorf("%w: capex expenses must be linked to an asset", entities.ErrValidation)
	ErrProjectLocked      = fmt.Errorf("%w: project no longer accepts expense changes", entities.ErrPermission)
)

// lockedStatuses freeze a project's expenses.
var lockedStatuses = map[entities.ProjectStatus]struct{}{
	entities.ProjectStatusAprovado:    {},
	entities.ProjectStatusEmAndamento: {},
	entities.ProjectStatusConcluido:   {},
	entities.ProjectStatusRejeitado:   {},
}

// IsLocked reports whether expenses of a project in status can no longer change.
func IsLocked(status entities.ProjectStatus) bool {
	_, ok := lockedStatuses[status]
	return ok
}

// CheckWritable returns ErrProjectLocked for a locked project.
func CheckWritable(p entities.Project) error {
	if IsLocked(p.Status) {
		return fmt.Errorf("%w: %s is %s", ErrProjectLocked, p.Code, p.Status)
	}
	return nil
}

// Classify enforces the capex/opex destination rules on e.
//
// capex goes to an asset and never to an accounting account; opex is the
// reverse, with the account optional. Whichever field does not apply to the
// type is cleared, so changing the type drops the stale link.
func Classify(e entities.Expense) (entities.Expense, error) {
	switch e.Type {
	case entities.ExpenseTypeCapex:
		e.AccountingAccount = nil
		e.AssetID = trimmedOrNil(e.AssetID)
		if e.AssetID == nil {
			return entities.Expense{}, ErrCapexRequiresAsset
		}
	case entities.ExpenseTypeOpex:
		e.AssetID = nil
		e.AccountingAccount = trimmedOrNil(e.AccountingAccount)
	default:
		return entities.Expense{}, fmt.Errorf("%w: %q", ErrInvalidExpenseType, e.Type)
	}
	e.BudgetID = trimmedOrNil(e.BudgetID)
	return e, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
