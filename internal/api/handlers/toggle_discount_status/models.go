package toggle_discount_status

// ToggleRequest HTTP request model
type ToggleRequest struct {
	Enabled *bool `json:"enabled"` // Указатель, чтобы отличить false от отсутствия поля
}
