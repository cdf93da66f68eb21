package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hostelhub/internal/models"
)

type ExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense models.Expense) error {
	const query = `
		INSERT INTO expenses (id, category, amount, notes, spent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		expense.ID,
		expense.Category,
		expense.Amount,
		expense.Notes,
		expense.SpentAt,
	)
	return err
}

func (r *ExpenseRepository) TotalsByCategory(ctx context.Context, startDate, endDate string) ([]models.CategoryTotal, error) {
	const query = `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE ($1 = '' OR spent_at >= $1::date)
		  AND ($2 = '' OR spent_at < $2::date + INTERVAL '1 day')
		GROUP BY category
		ORDER BY category
	`

	rows, err := r.pool.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.CategoryTotal
	for rows.Next() {
		var total models.CategoryTotal
		if err := rows.Scan(&total.Category, &total.Total); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}
