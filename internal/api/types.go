package api

// Transaction kinds as the backend reports them.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// AuthResponse is returned by the signin and signup endpoints.
// Token may be empty on signup when the backend requires a manual login.
type AuthResponse struct {
	ID            int64    `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Roles         []string `json:"roles"`
	Token         string   `json:"token"`
	MonthStartDay int      `json:"monthStartDay,omitempty"`
}

// Profile is the user profile from /user/me.
type Profile struct {
	ID            int64    `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Roles         []string `json:"roles"`
	MonthStartDay int      `json:"monthStartDay,omitempty"`
}

// Expense is a single transaction (income or expense).
// Category, Subcategory, and PaymentType are backend-owned names; dates are
// ISO "2006-01-02" strings.
type Expense struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
	PaymentType string  `json:"paymentType,omitempty"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
}

// Category is a spending category.
type Category struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Budget is a per-category budget for a month.
type Budget struct {
	ID           int64   `json:"id,omitempty"`
	Category     string  `json:"category"`
	BudgetAmount float64 `json:"budgetAmount"`
	Month        string  `json:"month,omitempty"` // "2006-01"
}

// BudgetSummaryItem is one row of /budget/summary: actual spend per category.
type BudgetSummaryItem struct {
	Category string  `json:"category"`
	Spent    float64 `json:"spent"`
}

// Subcategory belongs to a budget category.
type Subcategory struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	BudgetID int64  `json:"budgetId,omitempty"`
}

// PaymentType is a payment method (cash, card, UPI, ...).
type PaymentType struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// DashboardStats is the pre-aggregated stats payload from /dashboard/stats.
type DashboardStats struct {
	TotalBalance     float64 `json:"totalBalance"`
	Expenses         float64 `json:"expenses"`
	AvgDailySpending float64 `json:"avgDailySpending"`
	Savings          float64 `json:"savings"`
	BalanceChange    string  `json:"balanceChange,omitempty"`
	ExpensesChange   string  `json:"expensesChange,omitempty"`
	SpendingsChange  string  `json:"spendingsChange,omitempty"`
	SavingsChange    string  `json:"savingsChange,omitempty"`
}

// ReportPoint is one labeled value from the report endpoints.
type ReportPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ExpenseFilter selects expenses on the /expense endpoint.
// Zero fields are omitted from the query.
type ExpenseFilter struct {
	BudgetID      int64
	SubcategoryID int64
	PaymentType   string
	StartDate     string
	EndDate       string
}
