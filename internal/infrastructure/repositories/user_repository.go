package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:255"`
	Surname      string    `gorm:"size:255"`
	Age          int
	Email        string    `gorm:"index;size:255"`
	PasswordHash string    `gorm:"column:password;size:255"`
	Image        string    `gorm:"size:255"`
	OTP          string    `gorm:"column:otp;size:5"`
	IsActive     bool      `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Todos        []DBTodo `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Activate implements domain.UserRepository. Activation and code clearing
// happen in a single UPDATE so the two can never be observed separately.
func (r *UserRepositoryImpl) Activate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": true, "otp": ""})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete implements domain.UserRepository. Todos are removed in the same
// transaction so the cascade holds even when the engine does not enforce
// foreign keys.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&DBTodo{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&DBUser{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Surname:      user.Surname,
		Age:          user.Age,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Image:        user.Image,
		OTP:          user.OTP,
		IsActive:     user.IsActive,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Surname:      dbUser.Surname,
		Age:          dbUser.Age,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Image:        dbUser.Image,
		OTP:          dbUser.OTP,
		IsActive:     dbUser.IsActive,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
