package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

// ProductHandler serves the catalog. Reads are public; writes are gated
// to employees in the router.
type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type productRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Categories  []string `json:"categories"`
	Details     []string `json:"details"`
	Tags        []string `json:"tags"`
	Quantity    int      `json:"quantity"`
	InStock     bool     `json:"in_stock"`
}

func (r productRequest) toInput() ports.ProductInput {
	return ports.ProductInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Categories:  r.Categories,
		Details:     r.Details,
		Tags:        r.Tags,
		Quantity:    r.Quantity,
		InStock:     r.InStock,
	}
}

// List handles GET /products with the `new`, `category` and `tag`
// query filters.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        new       query     bool    false  "Only the newest product"
// @Param        category  query     string  false  "Filter by category"
// @Param        tag       query     string  false  "Filter by tag"
// @Success      200       {array}   domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := ports.ProductFilter{
		Newest:   c.QueryParam("new") != "",
		Category: c.QueryParam("category"),
		Tag:      c.QueryParam("tag"),
	}
	products, err := h.products.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.products.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// ByCategory handles GET /products/category/:category.
func (h *ProductHandler) ByCategory(c echo.Context) error {
	products, err := h.products.List(c.Request().Context(), ports.ProductFilter{
		Category: c.Param("category"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ByTag handles GET /products/tag/:tag.
func (h *ProductHandler) ByTag(c echo.Context) error {
	products, err := h.products.List(c.Request().Context(), ports.ProductFilter{
		Tag: c.Param("tag"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /products.
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	product, err := h.products.Create(c.Request().Context(), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "title, description and price are required"})
		case errors.Is(err, domain.ErrProductExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "product already exists"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	product, err := h.products.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		case errors.Is(err, domain.ErrProductExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "product already exists"})
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.products.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product removed"})
}
