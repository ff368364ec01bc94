package services

import (
	"context"
	"errors"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
)

type WishlistService struct {
	Repo *repository.WishlistRepository
}

func NewWishlistService(r *repository.WishlistRepository) *WishlistService {
	return &WishlistService{Repo: r}
}

func (s *WishlistService) List(ctx context.Context, customerID int64) ([]model.WishlistItem, error) {
	items, err := s.Repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.WishlistItem{}
	}
	return items, nil
}

// Toggle flips the liked flag and returns the new value.
func (s *WishlistService) Toggle(ctx context.Context, customerID, productID int64) (int, error) {
	if customerID <= 0 || productID <= 0 {
		return 0, errors.New("customerId and productId are required")
	}
	return s.Repo.Toggle(ctx, customerID, productID)
}
