package order_status_changed

import "time"

// orderStatusEvent сообщение админки о смене статуса заказа.
// Статус в событии только подсказка, источник истины хранилище заказов.
type orderStatusEvent struct {
	OrderID   string     `json:"order_id" validate:"required,max=64"`
	Status    string     `json:"status" validate:"required"`
	ChangedAt *time.Time `json:"changed_at,omitempty"`
}
