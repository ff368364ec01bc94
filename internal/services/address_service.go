package services

import (
	"context"
	"errors"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
)

type AddressService struct {
	Repo *repository.AddressRepository
}

func NewAddressService(r *repository.AddressRepository) *AddressService {
	return &AddressService{Repo: r}
}

func (s *AddressService) Create(ctx context.Context, a *model.Address) (int64, error) {
	if a.CustomerID <= 0 || a.Street == "" || a.City == "" || a.State == "" || a.PostalCode == "" || a.Country == "" {
		return 0, errors.New("street, city, state, postal code and country are required")
	}
	return s.Repo.Create(ctx, a)
}

func (s *AddressService) List(ctx context.Context, customerID int64) ([]model.Address, error) {
	list, err := s.Repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Address{}
	}
	return list, nil
}
