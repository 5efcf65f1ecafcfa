package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/catalog"
	"github.com/snnyvrz/bookify/internal/model"
	"github.com/snnyvrz/bookify/internal/validation"
)

type CarouselRequest struct {
	Title        string `form:"title" json:"title" binding:"required"`
	Description  string `form:"description" json:"description" binding:"required"`
	PosterImages string `form:"posterImages" json:"posterImages" binding:"required"`
}

type CarouselItem struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PosterImages []string  `json:"posterImages"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CarouselItemResponse struct {
	Data CarouselItem `json:"data"`
}

type CarouselListResponse struct {
	Data []CarouselItem `json:"data"`
}

func toCarouselItem(it model.CarouselItem) CarouselItem {
	return CarouselItem{
		ID:           it.ID,
		Title:        it.Title,
		Description:  it.Description,
		PosterImages: it.PosterImages,
		CreatedAt:    it.CreatedAt,
	}
}

type CarouselHandler struct {
	svc    *catalog.CarouselService
	logger *slog.Logger
}

func NewCarouselHandler(svc *catalog.CarouselService, logger *slog.Logger) *CarouselHandler {
	return &CarouselHandler{svc: svc, logger: logger}
}

func (h *CarouselHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/carousel", h.ListCarousel)
}

func (h *CarouselHandler) RegisterDashboardRoutes(dashboard *gin.RouterGroup) {
	dashboard.POST("/carousel", h.CreateCarouselItem)
	dashboard.DELETE("/carousel/:id", h.DeleteCarouselItem)
}

// ListCarousel godoc
// @Summary      List carousel items
// @Tags         carousel
// @Produce      json
// @Success      200  {object}  CarouselListResponse
// @Router       /carousel [get]
func (h *CarouselHandler) ListCarousel(c *gin.Context) {
	items := h.svc.List(c.Request.Context())

	data := make([]CarouselItem, 0, len(items))
	for _, it := range items {
		data = append(data, toCarouselItem(it))
	}

	c.JSON(http.StatusOK, CarouselListResponse{Data: data})
}

// CreateCarouselItem godoc
// @Summary      Add a carousel item
// @Tags         dashboard
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        payload  body      CarouselRequest           true  "Item to add"
// @Success      201      {object}  CarouselItemResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /dashboard/carousel [post]
func (h *CarouselHandler) CreateCarouselItem(c *gin.Context) {
	var req CarouselRequest
	if !validation.BindAndValidate(c, &req) {
		return
	}

	item, err := h.svc.Create(c.Request.Context(), catalog.CarouselInput{
		Title:        req.Title,
		Description:  req.Description,
		PosterImages: req.PosterImages,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.logger.InfoContext(c.Request.Context(), "carousel item created", "id", item.ID, "admin", adminName(c))

	c.JSON(http.StatusCreated, CarouselItemResponse{Data: toCarouselItem(*item)})
}

// DeleteCarouselItem godoc
// @Summary      Remove a carousel item
// @Tags         dashboard
// @Param        id   path  string  true  "Carousel item ID (UUID)"
// @Success      204
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Item not found"
// @Router       /dashboard/carousel/{id} [delete]
func (h *CarouselHandler) DeleteCarouselItem(c *gin.Context) {
	id, ok := parseIDParam(c, "INVALID_CAROUSEL_ITEM_ID", "invalid carousel item id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	h.logger.InfoContext(c.Request.Context(), "carousel item deleted", "id", id, "admin", adminName(c))

	c.Status(http.StatusNoContent)
}
