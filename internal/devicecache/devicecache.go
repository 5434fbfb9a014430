// Package devicecache persists the signed-in user's identity on device so the
// app can resume a session and edit the profile without an in-memory login.
package devicecache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/grocerly/appcore/pkg/config"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/logger"
	"github.com/grocerly/appcore/pkg/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// cachedProfile is the single-row profile snapshot. The fixed primary key
// keeps the table at most one row: saving a new user overwrites the old one.
type cachedProfile struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Phone     string    `gorm:"column:phone"`
	Role      string    `gorm:"column:role"`
	Address   string    `gorm:"column:address"`
	Pincode   string    `gorm:"column:pincode"`
	Photo     string    `gorm:"column:photo"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (cachedProfile) TableName() string { return "cached_profile" }

const profileRowID = 1

// Cache wraps the on-device sqlite store.
type Cache struct {
	conn *gorm.DB
	logg *logger.Logger
}

// New opens (or creates) the device database at the configured path and
// migrates the profile table.
func New(cfg config.DeviceCacheConfig, logg *logger.Logger) (*Cache, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("device cache path is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening device cache: %w", err)
	}
	if err := conn.AutoMigrate(&cachedProfile{}); err != nil {
		return nil, fmt.Errorf("migrating device cache: %w", err)
	}

	return &Cache{conn: conn, logg: logg}, nil
}

// SaveUser overwrites the cached profile with the given user. The auth token
// is deliberately not persisted.
func (c *Cache) SaveUser(ctx context.Context, user types.User) error {
	row := cachedProfile{
		ID:      profileRowID,
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Phone:   user.Phone,
		Role:    user.Role,
		Address: user.Address,
		Pincode: user.Pincode,
		Photo:   user.Photo,
	}
	if err := c.conn.WithContext(ctx).Save(&row).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not save profile to device cache")
	}
	return nil
}

// CachedUserID returns the persisted user id, zero when nothing is cached.
func (c *Cache) CachedUserID(ctx context.Context) (int64, error) {
	var row cachedProfile
	err := c.conn.WithContext(ctx).First(&row, profileRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not read device cache")
	}
	return row.UserID, nil
}

// CachedUser returns the full persisted profile, nil when nothing is cached.
func (c *Cache) CachedUser(ctx context.Context) (*types.User, error) {
	var row cachedProfile
	err := c.conn.WithContext(ctx).First(&row, profileRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not read device cache")
	}
	return &types.User{
		ID:      row.UserID,
		Name:    row.Name,
		Email:   row.Email,
		Phone:   row.Phone,
		Role:    row.Role,
		Address: row.Address,
		Pincode: row.Pincode,
		Photo:   row.Photo,
	}, nil
}

// Clear wipes the cached profile. Missing rows are not an error.
func (c *Cache) Clear(ctx context.Context) error {
	if err := c.conn.WithContext(ctx).Delete(&cachedProfile{}, profileRowID).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not clear device cache")
	}
	return nil
}

// Close releases the sqlite handle.
func (c *Cache) Close() error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
