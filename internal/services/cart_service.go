package services

import (
	"context"
	"errors"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
)

type CartService struct {
	Repo        *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(r *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{Repo: r, ProductRepo: pr}
}

// Add upserts a cart line; a repeated add merges by summing quantity.
func (s *CartService) Add(ctx context.Context, customerID, productID int64, qty int) error {
	if customerID <= 0 || productID <= 0 {
		return errors.New("customerId and productId are required")
	}
	if qty <= 0 {
		return errors.New("quantity must be greater than zero")
	}
	if _, err := s.ProductRepo.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.Repo.AddOrIncrement(ctx, customerID, productID, qty)
}

// SetQuantity sets the absolute quantity for an existing line.
func (s *CartService) SetQuantity(ctx context.Context, customerID, productID int64, qty int) error {
	if customerID <= 0 || productID <= 0 {
		return errors.New("customerId and productId are required")
	}
	if qty <= 0 {
		return errors.New("quantity must be greater than zero")
	}
	return s.Repo.SetQuantity(ctx, customerID, productID, qty)
}

func (s *CartService) Remove(ctx context.Context, customerID, productID int64) error {
	return s.Repo.Remove(ctx, customerID, productID)
}

func (s *CartService) Get(ctx context.Context, customerID int64) ([]model.CartItem, error) {
	items, err := s.Repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items, nil
}
