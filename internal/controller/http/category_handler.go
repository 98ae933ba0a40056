package http

import (
	"net/http"

	"pixvault/internal/usecase"
	"pixvault/pkg/apperr"
	"pixvault/pkg/logger"
	"pixvault/pkg/response"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	logger          *logger.Logger
	devMode         bool
}

func NewCategoryHandler(categoryUseCase usecase.CategoryUseCase, logger *logger.Logger, devMode bool) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
		devMode:         devMode,
	}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category body CreateCategoryRequest true "Category payload"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, []apperr.FieldError{{Field: "name", Message: "is required"}})
		return
	}

	category, err := h.categoryUseCase.Create(req.Name, req.Description)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.Created(c, category, "Category created")
}

// ListCategories godoc
// @Summary      List active categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryUseCase.List()
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, categories, "")
}

// GetCategory godoc
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	category, err := h.categoryUseCase.GetByID(id)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, category, "")
}

// GetCategoryByName godoc
// @Summary      Get a category by name
// @Tags         categories
// @Produce      json
// @Param        name path string true "Category name"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /categories/name/{name} [get]
func (h *CategoryHandler) GetCategoryByName(c *gin.Context) {
	category, err := h.categoryUseCase.GetByName(c.Param("name"))
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, category, "")
}

// SearchCategories godoc
// @Summary      Search categories by name or description
// @Tags         categories
// @Produce      json
// @Param        q query string true "Search term"
// @Success      200  {object}  response.Envelope
// @Router       /categories/search [get]
func (h *CategoryHandler) SearchCategories(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		response.FailValidation(c, []apperr.FieldError{{Field: "q", Message: "is required"}})
		return
	}

	categories, err := h.categoryUseCase.Search(term)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, categories, "")
}

// CategoryStats godoc
// @Summary      Aggregate stats over active categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /categories/stats [get]
func (h *CategoryHandler) CategoryStats(c *gin.Context) {
	stats, err := h.categoryUseCase.Stats()
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, stats, "")
}

// UpdateCategory godoc
// @Summary      Partially update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID"
// @Param        category body UpdateCategoryRequest true "Fields to update"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Router       /categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.categoryUseCase.Update(id, req.Name, req.Description)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, category, "Category updated")
}

// DeleteCategory godoc
// @Summary      Delete a category and every image it owns
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	summary, err := h.categoryUseCase.Delete(id)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, summary, "Category deleted")
}
