package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/currency"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/middleware"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
)

// invalidPricePlaceholder is shown when a stored price cannot be formatted.
const invalidPricePlaceholder = "—"

// bookHandler serves the storefront catalog.
type bookHandler struct {
	cfg         *config.Config
	bookService portssvc.BookSvcFacade
	resolver    *currency.Resolver
}

func newBookHandler(cfg *config.Config, bs portssvc.BookSvcFacade, resolver *currency.Resolver) *bookHandler {
	return &bookHandler{cfg: cfg, bookService: bs, resolver: resolver}
}

// registerBookRoutes registers the public storefront catalog routes.
func registerBookRoutes(rg *gin.RouterGroup, cfg *config.Config, bs portssvc.BookSvcFacade, resolver *currency.Resolver) {
	h := newBookHandler(cfg, bs, resolver)

	books := rg.Group("/books")
	{
		books.GET("", h.listBooks)
		books.GET("/:slug", h.getBookBySlug)
	}
}

// registerAdminBookRoutes registers the back-office catalog routes.
func registerAdminBookRoutes(rg *gin.RouterGroup, cfg *config.Config, bs portssvc.BookSvcFacade, resolver *currency.Resolver) {
	h := newBookHandler(cfg, bs, resolver)

	books := rg.Group("/books")
	{
		books.POST("", h.createBook)
		books.GET("", h.listBooksAdmin)
		books.PUT("/:id", h.updateBook)
		books.DELETE("/:id", h.deleteBook)
	}
}

// priceResponseFor formats a price for the resolved currency. Unusable stored
// amounts degrade to a placeholder instead of failing the request.
func priceResponseFor(c *gin.Context, m domain.Money, res currency.Resolved) dto.PriceResponse {
	display, err := currency.Format(m, res)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Price could not be formatted",
			slog.Int64("amount_local", m.AmountLocal),
			slog.Int64("amount_international", m.AmountInternational),
			slog.String("currency_code", res.Currency.CurrencyCode),
		)
		return dto.PriceResponse{
			Formatted:    invalidPricePlaceholder,
			CurrencyCode: res.Currency.CurrencyCode,
		}
	}
	return dto.PriceResponse{
		Value:        display.Value.InexactFloat64(),
		Formatted:    display.Formatted,
		CurrencyCode: res.Currency.CurrencyCode,
	}
}

// listBooks godoc
// @Summary List published books
// @Description Pages the published catalog newest-first. Prices are formatted in the caller's resolved currency. Supports full-text search via q.
// @Tags books
// @Produce json
// @Param q query string false "Full-text search query"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListBooksResponse
// @Failure 400 {object} ErrorResponse
// @Router /books [get]
func (h *bookHandler) listBooks(c *gin.Context) {
	h.listBooksWith(c, false)
}

// listBooksAdmin godoc
// @Summary List all books (admin)
// @Description Pages the full catalog, drafts included.
// @Tags admin-books
// @Produce json
// @Param q query string false "Full-text search query"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListBooksResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/books [get]
func (h *bookHandler) listBooksAdmin(c *gin.Context) {
	h.listBooksWith(c, true)
}

func (h *bookHandler) listBooksWith(c *gin.Context, includeUnpublished bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	books, nextToken, err := h.bookService.ListBooks(c.Request.Context(), req, includeUnpublished)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list books", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list books"})
		return
	}

	res := resolveRequestCurrency(c, h.cfg, h.resolver, "")
	resp := dto.ListBooksResponse{Books: make([]dto.BookResponse, len(books)), NextToken: nextToken}
	for i := range books {
		resp.Books[i] = dto.ToBookResponse(&books[i], priceResponseFor(c, books[i].Price, res))
	}
	c.JSON(http.StatusOK, resp)
}

// getBookBySlug godoc
// @Summary Get a book by slug
// @Description Returns a published title with its price formatted in the caller's resolved currency.
// @Tags books
// @Produce json
// @Param slug path string true "Book slug"
// @Success 200 {object} dto.BookResponse
// @Failure 404 {object} ErrorResponse
// @Router /books/{slug} [get]
func (h *bookHandler) getBookBySlug(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	slug := c.Param("slug")

	session := middleware.SessionFromContext(c.Request.Context())
	book, err := h.bookService.GetBookBySlug(c.Request.Context(), slug, session.IsAdmin())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Book not found"})
			return
		}
		logger.Error("Failed to get book", slog.String("slug", slug), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get book"})
		return
	}

	res := resolveRequestCurrency(c, h.cfg, h.resolver, "")
	c.JSON(http.StatusOK, dto.ToBookResponse(book, priceResponseFor(c, book.Price, res)))
}

// createBook godoc
// @Summary Create a book
// @Description Adds a title to the catalog.
// @Tags admin-books
// @Accept json
// @Produce json
// @Param book body dto.CreateBookRequest true "Book details"
// @Success 201 {object} dto.BookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug already in use"
// @Router /admin/books [post]
func (h *bookHandler) createBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(c)
	book, err := h.bookService.CreateBook(c.Request.Context(), req, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A book with this slug already exists"})
			return
		}
		logger.Error("Failed to create book", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create book"})
		return
	}

	logger.Info("Book created", slog.String("book_id", book.BookID))
	res := resolveRequestCurrency(c, h.cfg, h.resolver, "")
	c.JSON(http.StatusCreated, dto.ToBookResponse(book, priceResponseFor(c, book.Price, res)))
}

// updateBook godoc
// @Summary Update a book
// @Description Applies a partial update to a title.
// @Tags admin-books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param book body dto.UpdateBookRequest true "Fields to update"
// @Success 200 {object} dto.BookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/books/{id} [put]
func (h *bookHandler) updateBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookID := c.Param("id")

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(c)
	book, err := h.bookService.UpdateBook(c.Request.Context(), bookID, req, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Book not found"})
			return
		}
		logger.Error("Failed to update book", slog.String("book_id", bookID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update book"})
		return
	}

	res := resolveRequestCurrency(c, h.cfg, h.resolver, "")
	c.JSON(http.StatusOK, dto.ToBookResponse(book, priceResponseFor(c, book.Price, res)))
}

// deleteBook godoc
// @Summary Delete a book
// @Tags admin-books
// @Produce json
// @Param id path string true "Book ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /admin/books/{id} [delete]
func (h *bookHandler) deleteBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookID := c.Param("id")

	adminID, _ := middleware.GetUserIDFromContext(c)
	if err := h.bookService.DeleteBook(c.Request.Context(), bookID, adminID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Book not found"})
			return
		}
		logger.Error("Failed to delete book", slog.String("book_id", bookID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete book"})
		return
	}

	c.Status(http.StatusNoContent)
}
