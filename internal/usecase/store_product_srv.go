package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StoreProductService interface {
	ListProducts(ctx context.Context, actor Actor, storeID string) ([]response.StoreProductResponse, error)
	CreateProduct(ctx context.Context, actor Actor, storeID string, req *request.CreateStoreProductRequest) (*response.StoreProductResponse, error)
	UpdateProduct(ctx context.Context, actor Actor, productID string, req *request.UpdateStoreProductRequest) (*response.StoreProductResponse, error)
	DeleteProduct(ctx context.Context, actor Actor, productID string) error
}

type storeProductService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStoreProductService(repo *repository.Repository, log *zap.Logger) StoreProductService {
	return &storeProductService{
		repo: repo,
		log:  log.With(zap.String("service", "store_product")),
	}
}

func (s *storeProductService) findStore(ctx context.Context, storeID string) (*entity.VipStoreWithLocation, error) {
	id, err := uuid.Parse(storeID)
	if err != nil {
		return nil, notFound("المتجر غير موجود")
	}

	store, err := s.repo.VipStore.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find store %s: %w", id, err)
	}
	if store == nil {
		return nil, notFound("المتجر غير موجود")
	}
	return store, nil
}

// findOwnedProduct loads a product and checks the caller owns its store.
func (s *storeProductService) findOwnedProduct(ctx context.Context, actor Actor, productID string) (*entity.StoreProduct, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, notFound("المنتج غير موجود")
	}

	product, err := s.repo.StoreProduct.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	if product == nil {
		return nil, notFound("المنتج غير موجود")
	}

	store, err := s.repo.VipStore.FindByID(ctx, product.StoreID)
	if err != nil {
		return nil, fmt.Errorf("find store %s: %w", product.StoreID, err)
	}
	if store == nil || !actor.Owns(store.UserID) {
		return nil, newError(ErrForbidden, "لا تملك صلاحية تعديل هذا المنتج")
	}

	return product, nil
}

func (s *storeProductService) ListProducts(ctx context.Context, actor Actor, storeID string) ([]response.StoreProductResponse, error) {
	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !store.IsApproved && !actor.Owns(store.UserID) {
		return nil, notFound("المتجر غير موجود")
	}

	products, err := s.repo.StoreProduct.FindByStore(ctx, store.ID)
	if err != nil {
		return nil, fmt.Errorf("list products of %s: %w", store.ID, err)
	}

	out := make([]response.StoreProductResponse, len(products))
	for i, product := range products {
		out[i] = response.StoreProductToResponse(product)
	}
	return out, nil
}

func (s *storeProductService) CreateProduct(ctx context.Context, actor Actor, storeID string, req *request.CreateStoreProductRequest) (*response.StoreProductResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(store.UserID) {
		return nil, newError(ErrForbidden, "لا تملك صلاحية إضافة منتجات لهذا المتجر")
	}
	if !store.IsApproved {
		return nil, newError(ErrForbidden, "المتجر بانتظار التفعيل")
	}

	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = store.Country.Currency
	}

	now := time.Now()
	product := &entity.StoreProduct{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StoreID:     store.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Currency:    currency,
		Images:      req.Images,
		IsActive:    true,
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	if err := s.repo.StoreProduct.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Store product created",
		zap.String("product_id", product.ID.String()),
		zap.String("store_id", store.ID.String()))

	resp := response.StoreProductToResponse(product)
	return &resp, nil
}

func (s *storeProductService) UpdateProduct(ctx context.Context, actor Actor, productID string, req *request.UpdateStoreProductRequest) (*response.StoreProductResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	product, err := s.findOwnedProduct(ctx, actor, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Currency != nil {
		product.Currency = strings.TrimSpace(*req.Currency)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.StoreProduct.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, notFound("المنتج غير موجود")
		}
		return nil, fmt.Errorf("update product %s: %w", product.ID, err)
	}

	resp := response.StoreProductToResponse(product)
	return &resp, nil
}

func (s *storeProductService) DeleteProduct(ctx context.Context, actor Actor, productID string) error {
	product, err := s.findOwnedProduct(ctx, actor, productID)
	if err != nil {
		return err
	}

	if err := s.repo.StoreProduct.Delete(ctx, product.ID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return notFound("المنتج غير موجود")
		}
		return fmt.Errorf("delete product %s: %w", product.ID, err)
	}

	s.log.Info("Store product deleted", zap.String("product_id", product.ID.String()))
	return nil
}
