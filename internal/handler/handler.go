package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cloudybookclub/catalog-service/internal/errs"
	"github.com/cloudybookclub/catalog-service/internal/model"
	md "github.com/cloudybookclub/catalog-service/pkg/middleware"
	"github.com/cloudybookclub/catalog-service/pkg/validate"
)

type Handler struct {
	catalogSvc CatalogService
	googleSvc  GoogleBooksService
	log        *zap.Logger
}

func New(catalogSvc CatalogService, googleSvc GoogleBooksService, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		googleSvc:  googleSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.GetBooks)
	api.GET("/books/genres", h.GetBooksByGenre)
	api.GET("/books/authors", h.GetBooksByAuthor)
	api.GET("/books/:bookId", h.GetBook)
	api.POST("/books", h.CreateBook)
	api.DELETE("/books/:bookId", h.DeleteBook)

	api.GET("/users", h.GetUsers)
	api.PATCH("/users/:userId/roles", h.UpdateUserRoles)

	api.GET("/googlebooks/search", h.SearchGoogleBooks)
	api.GET("/googlebooks/:googleBookId", h.GetGoogleBook)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// defaultPageSize caps a list request that names no size. An explicit size=0
// is the caller asking for the whole collection.
const defaultPageSize = 20

func pageParams(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil || page < 0 {
			return 0, 0, errors.New("page is invalid")
		}
	}
	size = defaultPageSize
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil || size < 0 {
			return 0, 0, errors.New("size is invalid")
		}
	}
	return page, size, nil
}

// GetBooks dispatches on the first non-empty filter: author, genre, rating,
// reader. No filter lists everything. All variants share ordering and paging.
func (h *Handler) GetBooks(c echo.Context) error {
	ctx := c.Request().Context()

	page, size, err := pageParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var books model.ListBooks
	switch {
	case c.QueryParam("author") != "":
		books, err = h.catalogSvc.ListBooksByAuthor(ctx, c.QueryParam("author"), page, size)
	case c.QueryParam("genre") != "":
		books, err = h.catalogSvc.ListBooksByGenre(ctx, c.QueryParam("genre"), page, size)
	case c.QueryParam("rating") != "":
		var rating model.Rating
		if rating, err = model.ParseRating(c.QueryParam("rating")); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		books, err = h.catalogSvc.ListBooksByRating(ctx, rating, page, size)
	case c.QueryParam("reader") != "":
		books, err = h.catalogSvc.ListBooksByReader(ctx, c.QueryParam("reader"), page, size)
	default:
		books, err = h.catalogSvc.ListBooks(ctx, page, size)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.catalogSvc.GetBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var book model.Book
	if err := c.Bind(&book); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&book); err != nil {
		return err
	}
	if _, err := model.ParseRating(string(book.Rating)); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.catalogSvc.CreateBook(c.Request().Context(), book)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	if err := h.catalogSvc.DeleteBook(c.Request().Context(), c.Param("bookId")); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetBooksByGenre(c echo.Context) error {
	counts, err := h.catalogSvc.CountBooksByGenre(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *Handler) GetBooksByAuthor(c echo.Context) error {
	counts, err := h.catalogSvc.CountBooksByAuthor(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *Handler) GetUsers(c echo.Context) error {
	serviceID := c.QueryParam("authenticationServiceId")
	provider := c.QueryParam("authProvider")
	if serviceID == "" || provider == "" {
		return echo.NewHTTPError(http.StatusBadRequest,
			errors.New("authenticationServiceId and authProvider are required"))
	}

	users, err := h.catalogSvc.FindUsersByAuthID(c.Request().Context(), serviceID, provider)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) UpdateUserRoles(c echo.Context) error {
	var roles model.ClientRoles
	if err := c.Bind(&roles); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if roles.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("empty userId"))
	}

	updated, err := h.catalogSvc.UpdateUserRoles(c.Request().Context(), roles)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int64{"updated": updated})
}

func (h *Handler) SearchGoogleBooks(c echo.Context) error {
	title := c.QueryParam("title")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrTitle)
	}

	result, err := h.googleSvc.SearchByTitle(c.Request().Context(), title)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetGoogleBook(c echo.Context) error {
	item, err := h.googleSvc.GetByID(c.Request().Context(), c.Param("googleBookId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, item)
}
