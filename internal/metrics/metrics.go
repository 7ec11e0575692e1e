// Package metrics computes derived values from raw transaction and category
// snapshots. Every function here is pure and total: empty input yields
// all-zero output, never an error.
package metrics

import "github.com/balaji-matta18/spendbuddy/internal/api"

// BudgetSummary is the per-category budget-vs-spend view.
type BudgetSummary struct {
	Category   string
	Spent      float64
	Budget     float64
	Remaining  float64
	OverBudget bool
}

// Stats holds the aggregate totals for one period. TotalBalance equals
// Savings; the backend treats the two as the same number.
type Stats struct {
	TotalBalance float64
	Income       float64
	Expenses     float64
	Savings      float64
}

// Deltas holds period-over-period percentage changes for each stat.
type Deltas struct {
	Balance  float64
	Income   float64
	Expenses float64
	Savings  float64
}

// BudgetStrategy resolves the budget amount for a category given its spend.
// Two strategies exist because the backend only recently started storing
// budget amounts; older clients simulated them.
type BudgetStrategy func(category string, spent float64) float64

// BackendBudget resolves budgets from /budget/all rows; categories without a
// row get zero.
func BackendBudget(budgets []api.Budget) BudgetStrategy {
	byName := make(map[string]float64, len(budgets))
	for _, b := range budgets {
		byName[b.Category] = b.BudgetAmount
	}
	return func(category string, _ float64) float64 {
		return byName[category]
	}
}

// SimulatedBudget is the legacy heuristic: 120% of current spend, or a flat
// 1000 when the category has no spend yet.
func SimulatedBudget(_ string, spent float64) float64 {
	if spent > 0 {
		return spent * 1.2
	}
	return 1000
}

// SpentByCategory sums absolute expense amounts per category name. The match
// is exact and case-sensitive; income rows never count. Matching on name
// rather than id is a compatibility shim: the backend does not expose
// category ids on expense rows.
func SpentByCategory(txs []api.Expense) map[string]float64 {
	spent := make(map[string]float64)
	for _, tx := range txs {
		if tx.Type != api.TypeExpense {
			continue
		}
		spent[tx.Category] += abs(tx.Amount)
	}
	return spent
}

// BudgetSummaries computes one summary per category. Transactions whose
// category matches no row are excluded here but still count in Stats.
func BudgetSummaries(categories []api.Category, txs []api.Expense, budget BudgetStrategy) []BudgetSummary {
	spent := SpentByCategory(txs)

	out := make([]BudgetSummary, 0, len(categories))
	for _, cat := range categories {
		s := spent[cat.Name]
		b := budget(cat.Name, s)
		out = append(out, BudgetSummary{
			Category:   cat.Name,
			Spent:      s,
			Budget:     b,
			Remaining:  b - s,
			OverBudget: s > b,
		})
	}
	return out
}

// PercentUsed returns spent/budget in the 0.0-1.0 range. A zero budget reads
// as 0% so displays stay finite; OverBudget on the summary still flags any
// spend against it.
func PercentUsed(spent, budget float64) float64 {
	if budget == 0 {
		return 0
	}
	return spent / budget
}

// ComputeStats aggregates a period's transactions into totals.
func ComputeStats(txs []api.Expense) Stats {
	var s Stats
	for _, tx := range txs {
		switch tx.Type {
		case api.TypeIncome:
			s.Income += tx.Amount
		case api.TypeExpense:
			s.Expenses += abs(tx.Amount)
		}
	}
	s.Savings = s.Income - s.Expenses
	s.TotalBalance = s.Savings
	return s
}

// ComputeDeltas returns the percentage change from prev to cur per stat.
// A zero previous value yields a zero delta rather than a non-finite one.
func ComputeDeltas(cur, prev Stats) Deltas {
	return Deltas{
		Balance:  pctChange(cur.TotalBalance, prev.TotalBalance),
		Income:   pctChange(cur.Income, prev.Income),
		Expenses: pctChange(cur.Expenses, prev.Expenses),
		Savings:  pctChange(cur.Savings, prev.Savings),
	}
}

// RolloverDue reports whether the budgets screen should offer a rollover:
// on the period start day, or whenever the current month has no budgets but
// the previous month does.
func RolloverDue(monthStartDay, dayOfMonth, currentCount, prevCount int) bool {
	if dayOfMonth == monthStartDay {
		return true
	}
	return currentCount == 0 && prevCount > 0
}

func pctChange(cur, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return (cur - prev) / abs(prev) * 100
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
