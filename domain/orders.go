package domain

import "time"

const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

type Order struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference   string    `gorm:"column:reference;type:text" json:"reference"`
	BuyerID     uint      `gorm:"column:buyer_id" json:"buyer_id"`
	ProductID   uint64    `gorm:"column:product_id" json:"product_id"`
	Quantity    int       `gorm:"column:quantity" json:"quantity"`
	PriceEach   float64   `gorm:"column:price_each;type:numeric" json:"price_each"`
	Subtotal    float64   `gorm:"column:subtotal;type:numeric" json:"subtotal"`
	OrderStatus string    `gorm:"column:order_status;type:text" json:"order_status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
