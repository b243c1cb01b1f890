package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"partsHub/domain"
	"partsHub/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id uint64) (*domain.Product, error)
	GetProductsByStore(ctx context.Context, storeID uint) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
	RateProduct(ctx context.Context, id uint64, rating float64) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CompatibilityRuleRequest struct {
	IsUniversalFit bool     `json:"is_universal_fit"`
	Type           string   `json:"type"`
	Makes          []string `json:"makes"`
	Models         []string `json:"models"`
	YearFrom       int      `json:"year_from"`
	YearTo         int      `json:"year_to"`
	Trims          []string `json:"trims"`
	Engines        []string `json:"engines"`
}

type VehicleFitmentRequest struct {
	VehicleTypes []string `json:"vehicle_types"`
	Styles       []string `json:"styles"`
	Categories   []string `json:"categories"`
}

type CreateProductRequest struct {
	ProductName          string                    `json:"product_name" validate:"required"`
	Description          string                    `json:"description"`
	ProductCategory      string                    `json:"product_category" validate:"required"`
	Tags                 []string                  `json:"tags"`
	Price                float64                   `json:"price" validate:"required,gt=0"`
	CompareAtPrice       *float64                  `json:"compare_at_price" validate:"omitempty,gt=0"`
	StoreName            string                    `json:"store_name"`
	VehicleCompatibility *CompatibilityRuleRequest `json:"vehicle_compatibility"`
	VehicleFitment       *VehicleFitmentRequest    `json:"vehicle_fitment"`
}

type UpdateProductRequest struct {
	ProductName          string                    `json:"product_name" validate:"required"`
	Description          string                    `json:"description"`
	ProductCategory      string                    `json:"product_category" validate:"required"`
	Tags                 []string                  `json:"tags"`
	Price                float64                   `json:"price" validate:"required,gt=0"`
	CompareAtPrice       *float64                  `json:"compare_at_price" validate:"omitempty,gt=0"`
	StoreName            string                    `json:"store_name"`
	VehicleCompatibility *CompatibilityRuleRequest `json:"vehicle_compatibility"`
	VehicleFitment       *VehicleFitmentRequest    `json:"vehicle_fitment"`
}

// Rating is a pointer so a legitimate 0 still satisfies required.
type RateProductRequest struct {
	Rating *float64 `json:"rating" validate:"required,gte=0,lte=5"`
}

func compatibilityFromRequest(req *CompatibilityRuleRequest) *domain.CompatibilityRule {
	if req == nil {
		return nil
	}

	rule := &domain.CompatibilityRule{
		IsUniversalFit: req.IsUniversalFit,
		Type:           req.Type,
		Makes:          req.Makes,
		Models:         req.Models,
		Trims:          req.Trims,
		Engines:        req.Engines,
	}
	if req.YearFrom != 0 || req.YearTo != 0 {
		rule.YearRange = &domain.YearRange{From: req.YearFrom, To: req.YearTo}
	}

	return rule
}

func fitmentFromRequest(req *VehicleFitmentRequest) *domain.VehicleFitment {
	if req == nil {
		return nil
	}

	return &domain.VehicleFitment{
		VehicleTypes: req.VehicleTypes,
		Styles:       req.Styles,
		Categories:   req.Categories,
	}
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all products",
		"products": products,
	})
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProductByID(ctx, productId)
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find product by id",
		"product": product,
	})
}

func (h *ProductHandler) GetMyProducts(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetProductsByStore(ctx, userID)
	if err != nil {
		logger.Error("Failed to find store products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get store products",
		"products": products,
	})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req CreateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product := &domain.Product{
		StoreID:              userID,
		StoreName:            req.StoreName,
		ProductName:          req.ProductName,
		Description:          req.Description,
		ProductCategory:      req.ProductCategory,
		Tags:                 req.Tags,
		Price:                req.Price,
		CompareAtPrice:       req.CompareAtPrice,
		VehicleCompatibility: compatibilityFromRequest(req.VehicleCompatibility),
		VehicleFitment:       fitmentFromRequest(req.VehicleFitment),
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	newProduct, err := h.productService.CreateProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to create product", err)
		if err.Error() == "product name is required" ||
			err.Error() == "product category is required" ||
			err.Error() == "price must be greater than 0" ||
			err.Error() == "compare-at price must not be below selling price" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Product successfully created",
		"product": newProduct,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product := &domain.Product{
		ID:                   productId,
		StoreName:            req.StoreName,
		ProductName:          req.ProductName,
		Description:          req.Description,
		ProductCategory:      req.ProductCategory,
		Tags:                 req.Tags,
		Price:                req.Price,
		CompareAtPrice:       req.CompareAtPrice,
		VehicleCompatibility: compatibilityFromRequest(req.VehicleCompatibility),
		VehicleFitment:       fitmentFromRequest(req.VehicleFitment),
	}

	updateProduct, err := h.productService.UpdateProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to update product", err)
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "product ID is required" ||
			err.Error() == "product name is required" ||
			err.Error() == "price must be greater than 0" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update product",
		"product": updateProduct,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.productService.DeleteProduct(ctx, productId)
	if err != nil {
		logger.Error("Failed to delete product", err)
		if err.Error() == "product not found" || err.Error() == "invalid product id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "product successfully deleted",
		"product_id": productId,
	})
}

func (h *ProductHandler) RateProduct(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req RateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.RateProduct(ctx, productId, *req.Rating); err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "rating must be between 0 and 5" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "rating recorded",
		"product_id": productId,
	})
}
