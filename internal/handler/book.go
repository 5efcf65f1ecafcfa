package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/apperr"
	"github.com/snnyvrz/bookify/internal/catalog"
	"github.com/snnyvrz/bookify/internal/validation"
)

type BookHandler struct {
	svc    *catalog.Service
	logger *slog.Logger
}

func NewBookHandler(svc *catalog.Service, logger *slog.Logger) *BookHandler {
	return &BookHandler{svc: svc, logger: logger}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.ListBooks)
	r.GET("/book", h.ListBooks)
	r.GET("/book/:id/view", h.ViewBook)
}

// RegisterDashboardRoutes mounts the admin routes on a group that is
// already behind the auth middleware.
func (h *BookHandler) RegisterDashboardRoutes(dashboard *gin.RouterGroup) {
	dashboard.GET("", h.ListBooks)
	dashboard.POST("/deleteSelected", h.DeleteSelected)

	books := dashboard.Group("/books")
	{
		books.POST("", h.CreateBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// ListBooks godoc
// @Summary      List books
// @Description  Paginated book listing. With distinctItem=genre the body is a GenresResponse instead.
// @Description  totalDocuments counts the whole catalog unless filtered totals are enabled.
// @Tags         books
// @Produce      json
// @Param        search        query     string  false  "Case-insensitive match on title, author, description or genre"
// @Param        bookGenre     query     string  false  "Exact genre filter"
// @Param        filterBy      query     string  false  "Exact genre filter, wins over bookGenre"
// @Param        sortBy        query     string  false  "Sort order" Enums(Most Popular,Latest)
// @Param        page          query     int     false  "Page number" default(1)
// @Param        distinctItem  query     string  false  "Return genre counts instead of books" Enums(genre)
// @Success      200  {object}  ListBooksResponse
// @Router       /book [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	q := catalog.ParseQuery(c.Request.URL.Query())

	res := h.svc.List(c.Request.Context(), q)
	if res != nil && q.DistinctItem == catalog.DistinctGenre {
		c.JSON(http.StatusOK, toGenresResponse(res.Genres))
		return
	}

	c.JSON(http.StatusOK, listing(res))
}

func listing(res *catalog.Result) ListBooksResponse {
	if res == nil {
		return toListBooksResponse(nil)
	}
	return toListBooksResponse(res.Page)
}

// ViewBook godoc
// @Summary      View a book
// @Description  A single book together with a listing page built from the same query string
// @Tags         books
// @Produce      json
// @Param        id    path      string  true   "Book ID (UUID)"
// @Param        page  query     int     false  "Listing page number"
// @Success      200   {object}  BookViewResponse
// @Failure      400   {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404   {object}  validation.ErrorResponse  "Book not found"
// @Router       /book/{id}/view [get]
func (h *BookHandler) ViewBook(c *gin.Context) {
	id, ok := parseIDParam(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	book, err := h.svc.Get(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	q := catalog.ParseQuery(c.Request.URL.Query())
	q.DistinctItem = ""

	c.JSON(http.StatusOK, BookViewResponse{
		Data:    toBook(*book),
		Listing: listing(h.svc.List(ctx, q)),
	})
}

// CreateBook godoc
// @Summary      Upload a book
// @Description  Create a book. author, languages and posterImages are comma-delimited.
// @Tags         dashboard
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        payload  body      BookRequest               true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      401      {object}  validation.ErrorResponse  "Not logged in"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /dashboard/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req BookRequest
	if !validation.BindAndValidate(c, &req) {
		return
	}

	book, err := h.svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.logger.InfoContext(c.Request.Context(), "book created", "id", book.ID, "admin", adminName(c))

	c.JSON(http.StatusCreated, toBookResponse(*book))
}

// UpdateBook godoc
// @Summary      Edit a book
// @Description  Replace every field of a book. Delimited fields are normalized again.
// @Tags         dashboard
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id       path      string                    true  "Book ID (UUID)"
// @Param        payload  body      BookRequest               true  "New field values"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse  "Book not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /dashboard/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	var req BookRequest
	if !validation.BindAndValidate(c, &req) {
		return
	}

	book, err := h.svc.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.logger.InfoContext(c.Request.Context(), "book updated", "id", book.ID, "admin", adminName(c))

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         dashboard
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  BookResponse  "The deleted book"
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /dashboard/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	book, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.logger.InfoContext(c.Request.Context(), "book deleted", "id", book.ID, "admin", adminName(c))

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// DeleteSelected godoc
// @Summary      Delete selected books
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        payload  body      DeleteSelectedRequest  true  "IDs to delete"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  BulkErrorResponse  "Missing or malformed ids"
// @Failure      500      {object}  BulkErrorResponse  "Internal server error"
// @Router       /dashboard/deleteSelected [post]
func (h *BookHandler) DeleteSelected(c *gin.Context) {
	var req DeleteSelectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, BulkErrorResponse{Error: "Invalid request body"})
		return
	}

	if len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, BulkErrorResponse{Error: "No IDs provided"})
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, BulkErrorResponse{Error: fmt.Sprintf("Invalid ID: %q", raw)})
			return
		}
		ids = append(ids, id)
	}

	n, err := h.svc.DeleteMany(c.Request.Context(), ids)
	if err != nil {
		_ = c.Error(err)
		if apperr.StatusOf(err) == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, BulkErrorResponse{Error: "No IDs provided"})
			return
		}
		c.JSON(http.StatusInternalServerError, BulkErrorResponse{Error: "Failed to delete selected books"})
		return
	}

	h.logger.InfoContext(c.Request.Context(), "selected books deleted", "count", n, "admin", adminName(c))
	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("%d books deleted successfully", n),
	})
}
