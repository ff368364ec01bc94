package services

import (
	"context"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"

	"github.com/google/uuid"
)

const (
	maxImageSize        = 5 * 1024 * 1024
	maxAdditionalImages = 5
)

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

type ProductService struct {
	Repo     *repository.ProductRepository
	ImageDir string // on-disk directory for uploaded images
	ImageURL string // public URL prefix for stored image paths
}

func NewProductService(r *repository.ProductRepository, imageDir, imageURL string) *ProductService {
	return &ProductService{Repo: r, ImageDir: imageDir, ImageURL: imageURL}
}

// SaveImage stores one uploaded image on disk and returns its relative URL
// path ("/productImages/<name>").
func (s *ProductService) SaveImage(fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxImageSize {
		return "", errors.New("Only image files up to 5MB are allowed")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return "", errors.New("Only image files are allowed")
	}

	if err := os.MkdirAll(s.ImageDir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.ImageDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/productImages/" + name, nil
}

func (s *ProductService) removeImageFile(urlPath string) {
	rel := strings.TrimPrefix(urlPath, s.ImageURL)
	rel = strings.TrimPrefix(rel, "/productImages/")
	if rel == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.ImageDir, rel)); err != nil && !os.IsNotExist(err) {
		log.Println("error deleting image file:", err)
	}
}

func (s *ProductService) absolutize(p *model.Product) {
	if p.ThumbnailURL != nil && strings.HasPrefix(*p.ThumbnailURL, "/") {
		abs := s.ImageURL + *p.ThumbnailURL
		p.ThumbnailURL = &abs
	}
	for i, img := range p.AdditionalImages {
		if strings.HasPrefix(img, "/") {
			p.AdditionalImages[i] = s.ImageURL + img
		}
	}
}

type CreateProductInput struct {
	Name          string
	Description   *string
	Price         float64
	StockQuantity int
	CategoryID    int64
	AdminID       int64
	Quantity      float64
	UomID         int64
	Thumbnail     *multipart.FileHeader
	Images        []*multipart.FileHeader
}

func (s *ProductService) Create(ctx context.Context, in *CreateProductInput) (int64, error) {
	if in.Name == "" || in.Price <= 0 || in.StockQuantity < 0 || in.CategoryID == 0 || in.Quantity <= 0 || in.UomID == 0 {
		return 0, errors.New("Missing required fields")
	}
	if len(in.Images) > maxAdditionalImages {
		return 0, errors.New("At most 5 additional images are allowed")
	}

	p := &model.Product{
		Name:             in.Name,
		Description:      in.Description,
		Price:            in.Price,
		StockQuantity:    in.StockQuantity,
		CategoryID:       in.CategoryID,
		AdminID:          in.AdminID,
		Quantity:         in.Quantity,
		UomID:            in.UomID,
		AdditionalImages: []string{},
	}

	if in.Thumbnail != nil {
		url, err := s.SaveImage(in.Thumbnail)
		if err != nil {
			return 0, err
		}
		p.ThumbnailURL = &url
	}
	for _, fh := range in.Images {
		url, err := s.SaveImage(fh)
		if err != nil {
			return 0, err
		}
		p.AdditionalImages = append(p.AdditionalImages, url)
	}

	return s.Repo.Create(ctx, p)
}

type UpdateProductInput struct {
	Name           *string
	Description    *string
	Price          *float64
	StockQuantity  *int
	CategoryID     *int64
	Quantity       *float64
	UomID          *int64
	RetainedImages []string // relative or absolute URLs the client kept
	Thumbnail      *multipart.FileHeader
	Images         []*multipart.FileHeader
}

// Update merges the partial input into the stored product. Additional images
// not listed in RetainedImages are removed from disk; new uploads are
// appended after the retained set.
func (s *ProductService) Update(ctx context.Context, id int64, in *UpdateProductInput) error {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if in.Name != nil && *in.Name != "" {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.StockQuantity != nil {
		p.StockQuantity = *in.StockQuantity
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.UomID != nil {
		p.UomID = *in.UomID
	}

	retained := make([]string, 0, len(in.RetainedImages))
	retainedSet := make(map[string]bool)
	for _, img := range in.RetainedImages {
		rel := strings.TrimPrefix(img, s.ImageURL)
		retained = append(retained, rel)
		retainedSet[rel] = true
	}
	for _, img := range p.AdditionalImages {
		rel := strings.TrimPrefix(img, s.ImageURL)
		if !retainedSet[rel] {
			s.removeImageFile(rel)
		}
	}
	p.AdditionalImages = retained

	if len(in.Images) > maxAdditionalImages {
		return errors.New("At most 5 additional images are allowed")
	}
	for _, fh := range in.Images {
		url, err := s.SaveImage(fh)
		if err != nil {
			return err
		}
		p.AdditionalImages = append(p.AdditionalImages, url)
	}

	if in.Thumbnail != nil {
		url, err := s.SaveImage(in.Thumbnail)
		if err != nil {
			return err
		}
		if p.ThumbnailURL != nil {
			s.removeImageFile(*p.ThumbnailURL)
		}
		p.ThumbnailURL = &url
	} else if p.ThumbnailURL != nil {
		rel := strings.TrimPrefix(*p.ThumbnailURL, s.ImageURL)
		p.ThumbnailURL = &rel
	}

	return s.Repo.Update(ctx, p)
}

// Delete removes the product row and its image files.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ThumbnailURL != nil {
		s.removeImageFile(*p.ThumbnailURL)
	}
	for _, img := range p.AdditionalImages {
		s.removeImageFile(img)
	}
	return s.Repo.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		s.absolutize(&list[i])
	}
	return list, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.absolutize(p)
	return p, nil
}

func (s *ProductService) ListUoms(ctx context.Context) ([]model.Uom, error) {
	return s.Repo.ListUoms(ctx)
}
