package handler

import (
	"net/http"

	"github.com/ParthPatil-04/API-demo/internal/repository"
	"github.com/ParthPatil-04/API-demo/internal/validation"
	"github.com/gin-gonic/gin"
)

const bookIDParam = "book_id"

type BookHandler struct {
	repo repository.BookRepository
}

func NewBookHandler(repo repository.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.POST("/", h.CreateBook)
		books.GET("/:"+bookIDParam, h.GetBookByID)
		books.PATCH("/:"+bookIDParam, h.UpdateBook)
		books.DELETE("/:"+bookIDParam, h.DeleteBook)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book. The id is assigned by the store.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to create"
// @Success      200      {object}  BookResponse
// @Failure      422      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  ErrorResponse              "Internal server error"
// @Router       /books/ [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	var missing []validation.FieldError
	if fe, bad := validation.Required("title", "string", req.Title); bad {
		missing = append(missing, fe)
	}
	if fe, bad := validation.Required("author", "string", req.Author); bad {
		missing = append(missing, fe)
	}
	if len(missing) > 0 {
		validation.Abort(c, missing...)
		return
	}

	book := req.toModel()

	if err := h.repo.Create(c.Request.Context(), &book); err != nil {
		writeStoreError(c, "create", 0, err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(book))
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        book_id  path      int  true  "Book ID"
// @Success      200      {object}  BookResponse
// @Failure      404      {object}  ErrorResponse              "Book not found"
// @Failure      422      {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      500      {object}  ErrorResponse              "Internal server error"
// @Router       /books/{book_id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	bookID, ok := validation.ParseIDParam(c, bookIDParam, bookIDParam)
	if !ok {
		return
	}

	book, err := h.repo.FindByID(c.Request.Context(), bookID)
	if err != nil {
		writeStoreError(c, "get", bookID, err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Partially update a book. Only the fields present in the body are written;
// @Description  first_publish_year may be null to clear it.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        book_id  path      int                 true  "Book ID"
// @Param        payload  body      UpdateBookRequest   true  "Fields to update"
// @Success      200      {object}  BookResponse
// @Failure      404      {object}  ErrorResponse              "Book not found"
// @Failure      422      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      500      {object}  ErrorResponse              "Internal server error"
// @Router       /books/{book_id} [patch]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	bookID, ok := validation.ParseIDParam(c, bookIDParam, bookIDParam)
	if !ok {
		return
	}

	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	var nulls []validation.FieldError
	if req.Title.IsNull() {
		nulls = append(nulls, validation.NotNull("title", "string"))
	}
	if req.Author.IsNull() {
		nulls = append(nulls, validation.NotNull("author", "string"))
	}
	if len(nulls) > 0 {
		validation.Abort(c, nulls...)
		return
	}

	book, err := h.repo.Update(c.Request.Context(), bookID, req.toPatch())
	if err != nil {
		writeStoreError(c, "update", bookID, err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        book_id  path      int  true  "Book ID"
// @Success      200      {object}  MessageResponse
// @Failure      404      {object}  ErrorResponse              "Book not found"
// @Failure      422      {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      500      {object}  ErrorResponse              "Internal server error"
// @Router       /books/{book_id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, ok := validation.ParseIDParam(c, bookIDParam, bookIDParam)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), bookID); err != nil {
		writeStoreError(c, "delete", bookID, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Book deleted"})
}
