package goal

type CreateGoalRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	TargetAmount string `json:"target_amount" validate:"required"`
	Deadline     string `json:"deadline"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
}

type UpdateGoalRequest struct {
	ID           string `json:"id" validate:"required"`
	UserID       string `json:"user_id" validate:"required"`
	Name         string `json:"name"`
	TargetAmount string `json:"target_amount"`
	Deadline     string `json:"deadline"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
}

type AddMoneyRequest struct {
	ID     string `json:"id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

type GoalResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	TargetAmount  string `json:"target_amount"`
	CurrentAmount string `json:"current_amount"`
	Deadline      string `json:"deadline,omitempty"`
	Icon          string `json:"icon,omitempty"`
	Color         string `json:"color,omitempty"`
	IsCompleted   bool   `json:"is_completed"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
