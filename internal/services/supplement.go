package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrilog/nutrilog-backend/internal/logger"
	"github.com/nutrilog/nutrilog-backend/internal/normalization"
	"github.com/nutrilog/nutrilog-backend/internal/repos"
	"github.com/nutrilog/nutrilog-backend/internal/requestdata"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

type SupplementService interface {
	CreateSupplement(ctx context.Context, supplement *types.Supplement) (*types.Supplement, error)
	ListSupplements(ctx context.Context) ([]*types.Supplement, error)
	GetSupplement(ctx context.Context, id uuid.UUID) (*types.Supplement, error)
	UpdateSupplement(ctx context.Context, supplement *types.Supplement) (*types.Supplement, error)
	DeleteSupplement(ctx context.Context, id uuid.UUID) error
}

type supplementService struct {
	db             *gorm.DB
	log            *logger.Logger
	supplementRepo repos.SupplementRepo
}

func NewSupplementService(db *gorm.DB, log *logger.Logger, supplementRepo repos.SupplementRepo) SupplementService {
	return &supplementService{db: db, log: log.With("service", "SupplementService"), supplementRepo: supplementRepo}
}

func currentUserID(ctx context.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("No authenticated user in context")
	}
	return rd.UserID, nil
}

func (ss *supplementService) CreateSupplement(ctx context.Context, supplement *types.Supplement) (*types.Supplement, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	supplement.Name = normalization.TrimInputString(supplement.Name)
	if supplement.Name == "" {
		return nil, fmt.Errorf("A supplement name is required")
	}
	supplement.ID = uuid.New()
	supplement.UserID = userID
	if _, err := ss.supplementRepo.Create(ctx, nil, []*types.Supplement{supplement}); err != nil {
		return nil, fmt.Errorf("Failed to create supplement: %w", err)
	}
	return supplement, nil
}

func (ss *supplementService) ListSupplements(ctx context.Context) ([]*types.Supplement, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	supplements, err := ss.supplementRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to list supplements: %w", err)
	}
	return supplements, nil
}

// getOwned loads a supplement and enforces that it belongs to the caller.
func (ss *supplementService) getOwned(ctx context.Context, id uuid.UUID) (*types.Supplement, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	supplements, err := ss.supplementRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("Failed to load supplement: %w", err)
	}
	if len(supplements) == 0 || supplements[0].UserID != userID {
		return nil, fmt.Errorf("Supplement not found")
	}
	return supplements[0], nil
}

func (ss *supplementService) GetSupplement(ctx context.Context, id uuid.UUID) (*types.Supplement, error) {
	return ss.getOwned(ctx, id)
}

func (ss *supplementService) UpdateSupplement(ctx context.Context, supplement *types.Supplement) (*types.Supplement, error) {
	existing, err := ss.getOwned(ctx, supplement.ID)
	if err != nil {
		return nil, err
	}
	if name := normalization.TrimInputString(supplement.Name); name != "" {
		existing.Name = name
	}
	existing.Brand = supplement.Brand
	existing.DefaultDosage = supplement.DefaultDosage
	existing.Notes = supplement.Notes
	if err := ss.supplementRepo.Update(ctx, nil, existing); err != nil {
		return nil, fmt.Errorf("Failed to update supplement: %w", err)
	}
	return existing, nil
}

func (ss *supplementService) DeleteSupplement(ctx context.Context, id uuid.UUID) error {
	if _, err := ss.getOwned(ctx, id); err != nil {
		return err
	}
	if err := ss.supplementRepo.DeleteByIDs(ctx, nil, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("Failed to delete supplement: %w", err)
	}
	return nil
}
