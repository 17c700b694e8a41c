package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			user_id,
			account_id,
			category_id,
			type,
			amount,
			date,
			description,
			notes,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:account_id,
			:category_id,
			:type,
			:amount,
			:date,
			:description,
			:notes,
			:created_at,
			:updated_at
		)
	`

	queryGetTransactionByID = `
		SELECT
			id,
			user_id,
			account_id,
			category_id,
			type,
			amount,
			date,
			description,
			notes,
			created_at,
			updated_at
		FROM transactions
		WHERE id = :id AND user_id = :user_id
	`

	queryGetTransactionsFmt = `
		SELECT
			id,
			user_id,
			account_id,
			category_id,
			type,
			amount,
			date,
			description,
			notes,
			created_at,
			updated_at
		FROM transactions
		WHERE %s
		ORDER BY date DESC
		LIMIT :limit OFFSET :offset
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			account_id = :account_id,
			category_id = :category_id,
			amount = :amount,
			date = :date,
			description = :description,
			notes = :notes,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id AND user_id = :user_id
	`

	queryGetAccountForUpdate = `
		SELECT
			id,
			user_id,
			name,
			type,
			balance,
			currency,
			color,
			icon,
			is_active,
			created_at,
			updated_at
		FROM accounts
		WHERE id = :id AND user_id = :user_id
		FOR UPDATE
	`

	queryUpdateAccountBalance = `
		UPDATE accounts
		SET balance = :balance, updated_at = :updated_at
		WHERE id = :id
	`

	queryGetCategoryByID = `
		SELECT
			id,
			user_id,
			name,
			type,
			icon,
			color,
			is_system,
			created_at
		FROM categories
		WHERE id = :id
	`
)
