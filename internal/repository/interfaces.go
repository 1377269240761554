package repository

import (
	"link-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LinkRepositoryInterface defines the interface for link repository operations.
// Every method is scoped by owner so cross-owner access never reaches the engine.
type LinkRepositoryInterface interface {
	GetByOwner(owner uuid.UUID) ([]models.Link, error)
	GetByIDAndOwner(id, owner uuid.UUID) (*models.Link, error)
	Create(link *models.Link) error
	UpdateByIDAndOwner(id, owner uuid.UUID, updates map[string]interface{}) (int64, error)
}
