package goalRepository

const (
	queryCreateGoal = `
		INSERT INTO goals (
			id,
			user_id,
			name,
			target_amount,
			current_amount,
			deadline,
			icon,
			color,
			is_completed,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:target_amount,
			:current_amount,
			:deadline,
			:icon,
			:color,
			:is_completed,
			:created_at,
			:updated_at
		)
	`

	queryGetGoalByID = `
		SELECT
			id,
			user_id,
			name,
			target_amount,
			current_amount,
			deadline,
			icon,
			color,
			is_completed,
			created_at,
			updated_at
		FROM goals
		WHERE id = :id AND user_id = :user_id
	`

	queryGetGoalForUpdate = `
		SELECT
			id,
			user_id,
			name,
			target_amount,
			current_amount,
			deadline,
			icon,
			color,
			is_completed,
			created_at,
			updated_at
		FROM goals
		WHERE id = :id AND user_id = :user_id
		FOR UPDATE
	`

	queryGetGoalsByUserID = `
		SELECT
			id,
			user_id,
			name,
			target_amount,
			current_amount,
			deadline,
			icon,
			color,
			is_completed,
			created_at,
			updated_at
		FROM goals
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryUpdateGoal = `
		UPDATE goals
		SET
			name = :name,
			target_amount = :target_amount,
			current_amount = :current_amount,
			deadline = :deadline,
			icon = :icon,
			color = :color,
			is_completed = :is_completed,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteGoal = `
		DELETE FROM goals
		WHERE id = :id AND user_id = :user_id
	`
)
