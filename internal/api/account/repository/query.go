package accountRepository

const (
	queryCreateAccount = `
		INSERT INTO accounts (
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
		) VALUES (
			:id,
			:user_id,
			:name,
			:type,
			:balance,
			:currency,
			:color,
			:icon,
			:is_active,
			:created_at,
			:updated_at
		)
	`

	queryGetAccountByID = `
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
	`

	queryGetAccountsByUserID = `
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
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryGetActiveAccountsByUserID = `
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
		WHERE user_id = :user_id AND is_active = TRUE
		ORDER BY created_at DESC
	`

	queryUpdateAccount = `
		UPDATE accounts
		SET
			name = :name,
			type = :type,
			color = :color,
			icon = :icon,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteAccount = `
		DELETE FROM accounts
		WHERE id = :id AND user_id = :user_id
	`
)
