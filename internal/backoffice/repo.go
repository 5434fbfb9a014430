package backoffice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a uniqueness rule is violated, e.g. a second
// signup with the same email or a product added to a cart twice.
var ErrDuplicate = errors.New("record already exists")

// Repository is the storefront data access surface the controllers use.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new account; ErrDuplicate when the email is taken.
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return r.db.WithContext(ctx).Create(user).Error
}

// FindUserByEmail looks up an account for login.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByID looks up an account by primary key.
func (r *Repository) FindUserByID(ctx context.Context, id int64) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserFields applies the submitted non-empty profile fields and returns
// the refreshed record.
func (r *Repository) UpdateUserFields(ctx context.Context, id int64, fields map[string]any) (*User, error) {
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.FindUserByID(ctx, id)
}

// ListUsers returns every account, newest first.
func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

// ListProducts returns catalog entries filtered by category or by a substring
// match on name and description. Empty filters list everything.
func (r *Repository) ListProducts(ctx context.Context, categoryID int64, search string) ([]Product, error) {
	query := r.db.WithContext(ctx).Model(&Product{})
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	} else if search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", needle, needle)
	}
	var products []Product
	err := query.Order("id ASC").Find(&products).Error
	return products, err
}

// AddCartItem inserts a cart line; ErrDuplicate when the product is already
// in the user's cart.
func (r *Repository) AddCartItem(ctx context.Context, userID, productID int64, qty int) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	if qty < 1 {
		qty = 1
	}
	return r.db.WithContext(ctx).Create(&CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	}).Error
}

// ListCartItems returns the user's cart with product rows preloaded.
func (r *Repository) ListCartItems(ctx context.Context, userID int64) ([]CartItem, error) {
	var items []CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// AdjustCartQuantity shifts a cart line by delta, never below one.
func (r *Repository) AdjustCartQuantity(ctx context.Context, userID, productID int64, delta int) error {
	var item CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	item.Quantity += delta
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	return r.db.WithContext(ctx).Save(&item).Error
}

// RemoveCartItem deletes one cart line by its cart identity, scoped to the
// user so one account cannot delete another's line.
func (r *Repository) RemoveCartItem(ctx context.Context, userID, cartID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&CartItem{}, cartID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearCart removes every cart line for the user, used after placing an order.
func (r *Repository) ClearCart(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&CartItem{}).Error
}

// AddWishlistItem saves a product; ErrDuplicate when already saved.
func (r *Repository) AddWishlistItem(ctx context.Context, userID, productID int64) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return r.db.WithContext(ctx).Create(&WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}).Error
}

// ListWishlistItems returns the user's saved products, product rows preloaded.
func (r *Repository) ListWishlistItems(ctx context.Context, userID int64) ([]WishlistItem, error) {
	var items []WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// RemoveWishlistItem deletes one saved product by its wishlist identity.
func (r *Repository) RemoveWishlistItem(ctx context.Context, userID, wishlistID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&WishlistItem{}, wishlistID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PlaceOrder inserts the order with its lines and empties the cart, all in
// one transaction.
func (r *Repository) PlaceOrder(ctx context.Context, order *Order) error {
	if order.OrderNumber == "" {
		order.OrderNumber = newOrderNumber()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", order.UserID).Delete(&CartItem{}).Error
	})
}

// ListOrders returns the user's order history, newest first.
func (r *Repository) ListOrders(ctx context.Context, userID int64) ([]Order, error) {
	var orders []Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// FindOrder returns one order with its lines, scoped to the owning user.
func (r *Repository) FindOrder(ctx context.Context, userID, orderID int64) (*Order, error) {
	var order Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateContactMessage stores a submitted contact form.
func (r *Repository) CreateContactMessage(ctx context.Context, msg *ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// ListContactMessages returns every contact message, newest first.
func (r *Repository) ListContactMessages(ctx context.Context) ([]ContactMessage, error) {
	var messages []ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func newOrderNumber() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("GR-%s-%s", time.Now().UTC().Format("20060102"), short)
}
