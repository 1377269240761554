package repository

import (
	"link-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkRepository handles database operations for links
type LinkRepository struct {
	db *gorm.DB
}

// Ensure LinkRepository implements LinkRepositoryInterface
var _ LinkRepositoryInterface = (*LinkRepository)(nil)

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// GetByOwner retrieves all links owned by the given owner UUID in insertion order
func (r *LinkRepository) GetByOwner(owner uuid.UUID) ([]models.Link, error) {
	var links []models.Link
	if err := r.db.Where("owner = ?", owner).Order("created_at ASC, id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// GetByIDAndOwner retrieves a single link by ID, scoped to its owner.
// Returns gorm.ErrRecordNotFound when no matching row exists; callers decide
// how an absent record surfaces.
func (r *LinkRepository) GetByIDAndOwner(id, owner uuid.UUID) (*models.Link, error) {
	var link models.Link
	if err := r.db.Where("id = ? AND owner = ?", id, owner).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// Create inserts a new link
func (r *LinkRepository) Create(link *models.Link) error {
	return r.db.Create(link).Error
}

// UpdateByIDAndOwner applies the given column updates to the link matching
// both id and owner, and reports how many rows matched. Zero matched rows is
// not an error here.
func (r *LinkRepository) UpdateByIDAndOwner(id, owner uuid.UUID, updates map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Link{}).Where("id = ? AND owner = ?", id, owner).Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
