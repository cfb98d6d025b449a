package repository

import (
	"pointtrail/internal/models"

	"gorm.io/gorm"
)

const (
	searchResultCap  = 50
	directoryListCap = 1000
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByHandle(handle string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("handle = ?", handle).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Search returns users whose handle contains the query, case-insensitively,
// capped at 50 results. Used only by the admin viewer.
func (r *UserRepository) Search(query string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("LOWER(handle) LIKE LOWER(?)", "%"+query+"%").
		Order("handle ASC").
		Limit(searchResultCap).
		Find(&users).Error
	return users, err
}

// Directory returns users ordered by handle for the admin dropdown, capped.
func (r *UserRepository) Directory() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("handle ASC").Limit(directoryListCap).Find(&users).Error
	return users, err
}

// AddPoints adjusts a user's running point total by delta (may be negative).
func (r *UserRepository) AddPoints(userID uint, delta int) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", delta)).Error
}
