package handler

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-reservation/internal/model"
	"github.com/iliyamo/library-reservation/internal/repository"
)

// BookHandler exposes CRUD over the book catalogue.  All routes sit
// behind the JWT middleware; there is no per-book ownership.
type BookHandler struct {
	Books *repository.BookRepo
}

func NewBookHandler(b *repository.BookRepo) *BookHandler { return &BookHandler{Books: b} }

// bookReq is the payload accepted by create and update.
type bookReq struct {
	Title             string `json:"title"`
	Author            string `json:"author"`
	YearOfPublication int    `json:"year_of_publication"`
	Available         bool   `json:"available"`
}

// deletedResp confirms a successful delete.
type deletedResp struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// GetAll handles GET /api/books.
func (h *BookHandler) GetAll(c echo.Context) error {
	books, err := h.Books.List(c.Request().Context())
	if err != nil {
		c.Logger().Warnf("unable to load data (Book::GetAll): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, books)
}

// GetOne handles GET /api/books/:id.
func (h *BookHandler) GetOne(c echo.Context) error {
	book, err := h.Books.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		c.Logger().Warnf("unable to load data (Book::GetOne): %v", err)
		return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
	}
	return c.JSON(http.StatusOK, book)
}

// Create handles POST /api/books.
func (h *BookHandler) Create(c echo.Context) error {
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Author) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/author required"})
	}
	book := model.Book{
		Title:             req.Title,
		Author:            req.Author,
		YearOfPublication: req.YearOfPublication,
		Available:         req.Available,
	}
	if err := h.Books.Create(c.Request().Context(), &book); err != nil {
		if err == repository.ErrTitleExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "title already exists"})
		}
		c.Logger().Warnf("unable to insert data (Book::Create): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "insert failed"})
	}
	return c.JSON(http.StatusOK, book)
}

// Update handles PUT /api/books/:id.  The record is loaded first so the
// response carries the created_at timestamp, then every mutable field is
// overwritten from the payload.
func (h *BookHandler) Update(c echo.Context) error {
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	book, err := h.Books.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		c.Logger().Warnf("unable to load data (Book::Update): %v", err)
		return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
	}
	book.Title = req.Title
	book.Author = req.Author
	book.YearOfPublication = req.YearOfPublication
	book.Available = req.Available
	if err := h.Books.Update(c.Request().Context(), &book); err != nil {
		if err == repository.ErrTitleExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "title already exists"})
		}
		c.Logger().Warnf("unable to update data (Book::Update): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, book)
}

// Delete handles DELETE /api/books/:id.
func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.Books.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			c.Logger().Warnf("unable to delete data (Book::Delete): book not found")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		}
		c.Logger().Warnf("unable to delete data (Book::Delete): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, deletedResp{Status: true, Message: "Record deleted successfully"})
}
