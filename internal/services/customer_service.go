package services

import (
	"context"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
)

type CustomerService struct {
	Repo *repository.CustomerRepository
}

func NewCustomerService(r *repository.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: r}
}

func (s *CustomerService) Profile(ctx context.Context, customerID int64) (*model.Customer, error) {
	return s.Repo.GetByID(ctx, customerID)
}

// List returns all customers for the admin panel.
func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.Repo.List(ctx)
}
