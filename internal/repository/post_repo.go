package repository

import (
	"pointtrail/internal/models"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// GetByID resolves a post to its author and type for vote-received and
// best-answer attribution.
func (r *PostRepository) GetByID(id uint) (*models.Post, error) {
	var p models.Post
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Create(p *models.Post) error {
	return r.db.Create(p).Error
}
