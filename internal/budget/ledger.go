package budget

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

// Ledger tracks premium analysis spend against a monthly limit.
// The limit only gates future premium calls; a charge is never refused.
// State is process-local and starts from zero on restart.
type Ledger struct {
	mu          sync.Mutex
	spent       decimal.Decimal
	limit       decimal.Decimal
	calls       int
	periodStart time.Time
	now         func() time.Time
}

// NewLedger creates new ledger with the given monthly limit
func NewLedger(limit decimal.Decimal) *Ledger {
	return NewLedgerWithClock(limit, time.Now)
}

// NewLedgerWithClock creates new ledger reading time from now
func NewLedgerWithClock(limit decimal.Decimal, now func() time.Time) *Ledger {
	return &Ledger{
		limit:       limit,
		periodStart: monthStart(now()),
		now:         now,
	}
}

// Remaining returns limit minus spend for the current period
func (l *Ledger) Remaining() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollover()
	return l.limit.Sub(l.spent)
}

// Charge records a premium call cost
func (l *Ledger) Charge(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("charge amount must not be negative: %s", amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollover()
	l.spent = l.spent.Add(amount)
	l.calls++

	if !l.spent.LessThan(l.limit) {
		logger.Warn("premium analysis budget exhausted",
			zap.String("spent", l.spent.String()),
			zap.String("limit", l.limit.String()),
			zap.Time("period_start", l.periodStart),
		)
	}

	return nil
}

// State returns a snapshot of the current period
func (l *Ledger) State() models.BudgetState {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollover()
	return models.BudgetState{
		Spent:       l.spent,
		Limit:       l.limit,
		Remaining:   l.limit.Sub(l.spent),
		PeriodStart: l.periodStart,
		Calls:       l.calls,
	}
}

// rollover resets counters when a new calendar month (UTC) starts. Caller holds mu.
func (l *Ledger) rollover() {
	current := monthStart(l.now())
	if !current.After(l.periodStart) {
		return
	}

	logger.Info("budget period rolled over",
		zap.Time("previous_period", l.periodStart),
		zap.String("previous_spent", l.spent.String()),
		zap.Int("previous_calls", l.calls),
	)

	l.spent = decimal.Zero
	l.calls = 0
	l.periodStart = current
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
