// Package backoffice is the storage layer behind the mock storefront API:
// gorm models, a repository, and a dev seed.
package backoffice

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a registered account. PasswordHash holds an argon2id string.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Phone        string    `gorm:"column:phone"`
	Role         string    `gorm:"column:role;not null;default:customer"`
	Address      string    `gorm:"column:address"`
	Pincode      string    `gorm:"column:pincode"`
	Photo        string    `gorm:"column:photo"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Product is one catalog entry.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	CategoryID  int64           `gorm:"column:category_id;index"`
	Name        string          `gorm:"column:name;not null"`
	Description string          `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric"`
	Image       string          `gorm:"column:image"`
	Weight      string          `gorm:"column:weight"`
	Unit        string          `gorm:"column:unit"`
	Stock       int             `gorm:"column:stock"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

// CartItem is one user/product pair; quantity never drops below one.
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;index;not null"`
	ProductID int64     `gorm:"column:product_id;not null"`
	Quantity  int       `gorm:"column:quantity;not null;default:1"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Product Product `gorm:"foreignKey:ProductID"`
}

// WishlistItem is one saved product.
type WishlistItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;index;not null"`
	ProductID int64     `gorm:"column:product_id;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	Product Product `gorm:"foreignKey:ProductID"`
}

// Order is one placed order with its denormalized total.
type Order struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	UserID      int64           `gorm:"column:user_id;index;not null"`
	OrderNumber string          `gorm:"column:order_number;not null;uniqueIndex"`
	Total       decimal.Decimal `gorm:"column:total;type:numeric"`
	Status      string          `gorm:"column:status;not null;default:placed"`
	Address     string          `gorm:"column:address"`
	Pincode     string          `gorm:"column:pincode"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem is one purchased line, price captured at purchase time.
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"column:order_id;index;not null"`
	ProductID int64           `gorm:"column:product_id;not null"`
	Name      string          `gorm:"column:name"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric"`
	Quantity  int             `gorm:"column:quantity;not null"`
}

// ContactMessage is one submitted contact form.
type ContactMessage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email;not null"`
	Phone     string    `gorm:"column:phone"`
	Subject   string    `gorm:"column:subject"`
	Message   string    `gorm:"column:message;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
