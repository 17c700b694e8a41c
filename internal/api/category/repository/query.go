package categoryRepository

const (
	queryCreateCategory = `
		INSERT INTO categories (
			id,
			user_id,
			name,
			type,
			icon,
			color,
			is_system,
			created_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:type,
			:icon,
			:color,
			:is_system,
			:created_at
		)
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

	queryGetCategories = `
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
		WHERE is_system = TRUE OR user_id = :user_id
		ORDER BY is_system DESC, name ASC
	`

	queryGetCategoriesByType = `
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
		WHERE (is_system = TRUE OR user_id = :user_id) AND type = :type
		ORDER BY is_system DESC, name ASC
	`

	queryUpdateCategory = `
		UPDATE categories
		SET
			name = :name,
			icon = :icon,
			color = :color
		WHERE id = :id AND user_id = :user_id AND is_system = FALSE
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id AND user_id = :user_id AND is_system = FALSE
	`

	queryCountTransactionsByCategory = `
		SELECT COUNT(*)
		FROM transactions
		WHERE category_id = :category_id
	`
)
