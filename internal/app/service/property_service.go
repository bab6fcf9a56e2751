package service

import (
	"context"
	"errors"
	"realestate_crud/internal/common"
	"realestate_crud/internal/domain/model"
	"realestate_crud/internal/domain/repository"
)

type PropertyService struct {
	propertyRepo repository.PropertyRepository
}

func NewPropertyService(propertyRepo repository.PropertyRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

type PropertyDetails struct {
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	Size        float64 `json:"size"`
	Description string  `json:"description"`
}

// GetAll returns the 0-indexed page in persistence-default order.
func (s *PropertyService) GetAll(ctx context.Context, page, size int) (model.PropertyPage, error) {
	return s.Search(ctx, repository.PropertyFilter{}, page, size)
}

// Search applies the optional filters, then paginates. An empty filter is
// equivalent to GetAll.
func (s *PropertyService) Search(ctx context.Context, filter repository.PropertyFilter, page, size int) (model.PropertyPage, error) {
	properties, total, err := s.propertyRepo.List(ctx, filter, size, page*size)
	if err != nil {
		return model.PropertyPage{}, err
	}
	return model.NewPropertyPage(properties, total, page, size), nil
}

// GetByID returns (nil, nil) when the id is absent; absence is not an
// error for reads.
func (s *PropertyService) GetByID(ctx context.Context, id int64) (*model.Property, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Create persists a new record. The store assigns the id; any
// caller-supplied id is overwritten.
func (s *PropertyService) Create(ctx context.Context, details PropertyDetails) (*model.Property, error) {
	p := &model.Property{
		Address:     details.Address,
		Price:       details.Price,
		Size:        details.Size,
		Description: details.Description,
	}
	if err := s.propertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces all four mutable fields of the record; partial updates
// are not supported.
func (s *PropertyService) Update(ctx context.Context, id int64, details PropertyDetails) (*model.Property, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrPropertyNotFound
		}
		return nil, err
	}

	p.Address = details.Address
	p.Price = details.Price
	p.Size = details.Size
	p.Description = details.Description

	if err := s.propertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes by id; a missing id is a no-op.
func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	return s.propertyRepo.Delete(ctx, id)
}
