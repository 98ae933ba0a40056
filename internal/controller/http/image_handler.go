package http

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"pixvault/internal/entity"
	"pixvault/internal/usecase"
	"pixvault/pkg/apperr"
	"pixvault/pkg/logger"
	"pixvault/pkg/response"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	imageUseCase usecase.ImageUseCase
	logger       *logger.Logger
	devMode      bool
}

func NewImageHandler(imageUseCase usecase.ImageUseCase, logger *logger.Logger, devMode bool) *ImageHandler {
	return &ImageHandler{
		imageUseCase: imageUseCase,
		logger:       logger,
		devMode:      devMode,
	}
}

type UploadImageRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Category    string `form:"category" binding:"required"`
	IsFeatured  bool   `form:"featured"`
}

type UploadImageWithCategoryRequest struct {
	Title               string `form:"title" binding:"required"`
	Description         string `form:"description"`
	CategoryName        string `form:"categoryName" binding:"required"`
	CategoryDescription string `form:"categoryDescription"`
	IsFeatured          bool   `form:"featured"`
}

type ListImagesQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=createdAt title viewCount updatedAt"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Category  string `form:"category"`
	Featured  *bool  `form:"featured"`
	Search    string `form:"search"`
}

type UpdateImageRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	IsFeatured  *bool     `json:"featured"`
}

// UploadImage godoc
// @Summary      Upload an image into an existing category
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        title formData string true "Image title"
// @Param        description formData string false "Image description"
// @Param        category formData string true "Category ID"
// @Param        featured formData bool false "Feature this image"
// @Param        tags formData string false "Tags, repeatable or comma-separated"
// @Param        image formData file true "Image file"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /images [post]
func (h *ImageHandler) UploadImage(c *gin.Context) {
	var req UploadImageRequest
	if err := c.ShouldBind(&req); err != nil {
		response.FailValidation(c, []apperr.FieldError{{Field: "form", Message: err.Error()}})
		return
	}
	if !idPattern.MatchString(req.Category) {
		response.FailValidation(c, []apperr.FieldError{{Field: "category", Message: "must be a valid identifier"}})
		return
	}

	data, meta, ok := h.readUpload(c, req.Title, req.Description, req.IsFeatured)
	if !ok {
		return
	}

	image, err := h.imageUseCase.Upload(data, meta, req.Category)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.Created(c, image, "Image uploaded")
}

// UploadImageWithCategory godoc
// @Summary      Create a category and upload an image into it
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        title formData string true "Image title"
// @Param        categoryName formData string true "Name of the category to create"
// @Param        categoryDescription formData string false "Category description"
// @Param        image formData file true "Image file"
// @Success      201  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Router       /images/with-category [post]
func (h *ImageHandler) UploadImageWithCategory(c *gin.Context) {
	var req UploadImageWithCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.FailValidation(c, []apperr.FieldError{{Field: "form", Message: err.Error()}})
		return
	}

	data, meta, ok := h.readUpload(c, req.Title, req.Description, req.IsFeatured)
	if !ok {
		return
	}

	image, category, err := h.imageUseCase.UploadWithNewCategory(data, meta, req.CategoryName, req.CategoryDescription)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.Created(c, gin.H{"image": image, "category": category}, "Image uploaded")
}

// ListImages godoc
// @Summary      List active images with filters and pagination
// @Tags         images
// @Produce      json
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size, capped at 100"
// @Param        sortBy query string false "createdAt, title, viewCount or updatedAt"
// @Param        sortOrder query string false "asc or desc"
// @Param        category query string false "Category ID filter"
// @Param        featured query bool false "Featured filter"
// @Param        search query string false "Search across title, description and tags"
// @Success      200  {object}  response.Envelope
// @Router       /images [get]
func (h *ImageHandler) ListImages(c *gin.Context) {
	opts, ok := h.bindListOptions(c)
	if !ok {
		return
	}

	images, total, page, limit, err := h.imageUseCase.List(opts)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.Paginated(c, images, response.NewPagination(page, limit, total))
}

// GetImage godoc
// @Summary      Get an image by id, counting the read as a view
// @Tags         images
// @Produce      json
// @Param        id path string true "Image ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /images/{id} [get]
func (h *ImageHandler) GetImage(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	image, err := h.imageUseCase.GetByID(id)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, image, "")
}

// HomepageImages godoc
// @Summary      Active categories with their most recent images
// @Tags         images
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /images/homepage [get]
func (h *ImageHandler) HomepageImages(c *gin.Context) {
	homepage, err := h.imageUseCase.GetHomepage()
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, homepage, "")
}

// FeaturedImages godoc
// @Summary      Featured images, newest first
// @Tags         images
// @Produce      json
// @Param        limit query int false "Maximum results"
// @Success      200  {object}  response.Envelope
// @Router       /images/featured [get]
func (h *ImageHandler) FeaturedImages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	images, err := h.imageUseCase.Featured(limit)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, images, "")
}

// ImagesByCategoryName godoc
// @Summary      Active images for a category matched by name
// @Tags         images
// @Produce      json
// @Param        name path string true "Category name"
// @Param        limit query int false "Maximum results"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /images/category/{name} [get]
func (h *ImageHandler) ImagesByCategoryName(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	images, err := h.imageUseCase.GetByCategoryName(c.Param("name"), limit)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, images, "")
}

// SearchImages godoc
// @Summary      Search images across title, description and tags
// @Tags         images
// @Produce      json
// @Param        q query string true "Search term"
// @Success      200  {object}  response.Envelope
// @Router       /images/search [get]
func (h *ImageHandler) SearchImages(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		response.FailValidation(c, []apperr.FieldError{{Field: "q", Message: "is required"}})
		return
	}

	opts, ok := h.bindListOptions(c)
	if !ok {
		return
	}

	images, total, page, limit, err := h.imageUseCase.Search(term, opts)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.Paginated(c, images, response.NewPagination(page, limit, total))
}

// ImageStats godoc
// @Summary      Aggregate stats over active images
// @Tags         images
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /images/stats [get]
func (h *ImageHandler) ImageStats(c *gin.Context) {
	stats, err := h.imageUseCase.Stats()
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, stats, "")
}

// UpdateImage godoc
// @Summary      Partially update an image
// @Tags         images
// @Accept       json
// @Produce      json
// @Param        id path string true "Image ID"
// @Param        image body UpdateImageRequest true "Fields to update"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /images/{id} [patch]
func (h *ImageHandler) UpdateImage(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Category != nil && !idPattern.MatchString(*req.Category) {
		response.FailValidation(c, []apperr.FieldError{{Field: "category", Message: "must be a valid identifier"}})
		return
	}

	image, err := h.imageUseCase.Update(id, usecase.ImageUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.Category,
		Tags:        req.Tags,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, image, "Image updated")
}

// DeleteImage godoc
// @Summary      Delete an image and its remote asset
// @Tags         images
// @Produce      json
// @Param        id path string true "Image ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /images/{id} [delete]
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	summary, err := h.imageUseCase.Delete(id)
	if err != nil {
		respondError(c, h.logger, h.devMode, err)
		return
	}
	response.OK(c, summary, "Image deleted")
}

// readUpload pulls the file payload plus tags out of the multipart form.
func (h *ImageHandler) readUpload(c *gin.Context, title, description string, featured bool) ([]byte, usecase.ImageUploadMeta, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.FailValidation(c, []apperr.FieldError{{Field: "image", Message: "file is required"}})
		return nil, usecase.ImageUploadMeta{}, false
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Failed to read uploaded file")
		return nil, usecase.ImageUploadMeta{}, false
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Failed to read uploaded file")
		return nil, usecase.ImageUploadMeta{}, false
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return data, usecase.ImageUploadMeta{
		Title:        title,
		Description:  description,
		Tags:         parseTags(c.PostFormArray("tags")),
		IsFeatured:   featured,
		OriginalName: fileHeader.Filename,
		ContentType:  contentType,
	}, true
}

// parseTags accepts both repeated fields and comma-separated values.
func parseTags(values []string) []string {
	var tags []string
	for _, value := range values {
		for _, tag := range strings.Split(value, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

func (h *ImageHandler) bindListOptions(c *gin.Context) (entity.ImageListOptions, bool) {
	var query ListImagesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.FailValidation(c, []apperr.FieldError{{Field: "query", Message: err.Error()}})
		return entity.ImageListOptions{}, false
	}
	if query.Category != "" && !idPattern.MatchString(query.Category) {
		response.FailValidation(c, []apperr.FieldError{{Field: "category", Message: "must be a valid identifier"}})
		return entity.ImageListOptions{}, false
	}

	return entity.ImageListOptions{
		Page:       query.Page,
		Limit:      query.Limit,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
		CategoryID: query.Category,
		Featured:   query.Featured,
		Search:     query.Search,
	}, true
}
