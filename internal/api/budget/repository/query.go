package budgetRepository

const (
	queryCreateBudget = `
		INSERT INTO budgets (
			id,
			user_id,
			category_id,
			amount,
			period,
			start_date,
			end_date,
			is_active,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:category_id,
			:amount,
			:period,
			:start_date,
			:end_date,
			:is_active,
			:created_at,
			:updated_at
		)
	`

	queryGetBudgetByID = `
		SELECT
			id,
			user_id,
			category_id,
			amount,
			period,
			start_date,
			end_date,
			is_active,
			created_at,
			updated_at
		FROM budgets
		WHERE id = :id AND user_id = :user_id
	`

	queryGetBudgetsByUserID = `
		SELECT
			id,
			user_id,
			category_id,
			amount,
			period,
			start_date,
			end_date,
			is_active,
			created_at,
			updated_at
		FROM budgets
		WHERE user_id = :user_id AND is_active = TRUE
		ORDER BY created_at DESC
	`

	queryUpdateBudget = `
		UPDATE budgets
		SET
			amount = :amount,
			period = :period,
			start_date = :start_date,
			end_date = :end_date,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteBudget = `
		DELETE FROM budgets
		WHERE id = :id AND user_id = :user_id
	`

	queryGetExpenseAmounts = `
		SELECT amount
		FROM transactions
		WHERE
			user_id = :user_id
			AND category_id = :category_id
			AND type = 'expense'
			AND date >= :start_date
			AND date <= :end_date
	`
)
