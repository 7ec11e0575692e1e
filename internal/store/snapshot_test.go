package store

import (
	"path/filepath"
	"testing"

	"github.com/balaji-matta18/spendbuddy/internal/api"
)

func openTestSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	snap, err := Open(filepath.Join(t.TempDir(), "snapshot.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = snap.Close() })
	return snap
}

func TestSnapshot_ExpensesRoundTrip(t *testing.T) {
	snap := openTestSnapshot(t)

	in := []api.Expense{
		{ID: 2, Title: "Groceries", Amount: -450, Category: "Food", PaymentType: "UPI", Type: "expense", Date: "2026-08-10"},
		{ID: 1, Title: "Salary", Amount: 50000, Category: "Income", Type: "income", Date: "2026-08-01"},
	}
	if err := snap.SaveExpenses(in); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}

	out, err := snap.LoadExpenses()
	if err != nil {
		t.Fatalf("LoadExpenses: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d expenses, want 2", len(out))
	}
	if out[0].Title != "Groceries" {
		t.Errorf("first row = %q, want most recent date first", out[0].Title)
	}
	if out[1].Amount != 50000 {
		t.Errorf("salary amount = %.2f, want 50000", out[1].Amount)
	}
}

func TestSnapshot_SaveReplacesPriorRows(t *testing.T) {
	snap := openTestSnapshot(t)

	first := []api.Expense{{ID: 1, Title: "Old", Amount: 10, Type: "expense", Date: "2026-07-01"}}
	if err := snap.SaveExpenses(first); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}
	second := []api.Expense{{ID: 2, Title: "New", Amount: 20, Type: "expense", Date: "2026-08-01"}}
	if err := snap.SaveExpenses(second); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}

	out, err := snap.LoadExpenses()
	if err != nil {
		t.Fatalf("LoadExpenses: %v", err)
	}
	if len(out) != 1 || out[0].Title != "New" {
		t.Fatalf("got %+v, want only the second batch", out)
	}
}

func TestSnapshot_CategoriesAndBudgetsRoundTrip(t *testing.T) {
	snap := openTestSnapshot(t)

	cats := []api.Category{{ID: 1, Name: "Food", Description: "Groceries and dining"}}
	if err := snap.SaveCategories(cats); err != nil {
		t.Fatalf("SaveCategories: %v", err)
	}
	budgets := []api.Budget{{ID: 1, Category: "Food", BudgetAmount: 5000, Month: "2026-08"}}
	if err := snap.SaveBudgets(budgets); err != nil {
		t.Fatalf("SaveBudgets: %v", err)
	}

	gotCats, err := snap.LoadCategories()
	if err != nil {
		t.Fatalf("LoadCategories: %v", err)
	}
	if len(gotCats) != 1 || gotCats[0].Name != "Food" {
		t.Fatalf("categories = %+v, want Food", gotCats)
	}

	gotBudgets, err := snap.LoadBudgets()
	if err != nil {
		t.Fatalf("LoadBudgets: %v", err)
	}
	if len(gotBudgets) != 1 || gotBudgets[0].BudgetAmount != 5000 {
		t.Fatalf("budgets = %+v, want Food at 5000", gotBudgets)
	}
}

func TestSnapshot_FetchedAtStampedOnSave(t *testing.T) {
	snap := openTestSnapshot(t)

	if _, ok := snap.FetchedAt("expenses"); ok {
		t.Fatal("FetchedAt reported a stamp before any save")
	}
	if err := snap.SaveExpenses(nil); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}
	if _, ok := snap.FetchedAt("expenses"); !ok {
		t.Fatal("FetchedAt missing after save")
	}
}
