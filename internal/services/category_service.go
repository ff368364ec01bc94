package services

import (
	"context"
	"errors"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(r *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: r}
}

func (s *CategoryService) Create(ctx context.Context, name string, description *string) (int64, error) {
	if name == "" {
		return 0, errors.New("Category name is required")
	}
	return s.Repo.Create(ctx, name, description)
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string, description *string) error {
	if name == "" {
		return errors.New("Category name is required")
	}
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repo.Update(ctx, id, name, description)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.Repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	return s.Repo.GetByID(ctx, id)
}
