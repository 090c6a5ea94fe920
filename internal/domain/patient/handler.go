package patient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/view", h.ViewAll)
	e.GET("/view/:id", h.ViewOne)
	e.GET("/sort", h.Sort)
	e.POST("/create", h.Create)
	e.PUT("/update/:id", h.Update)
	e.DELETE("/delete/:id", h.Delete)
}

func (h *Handler) ViewAll(c echo.Context) error {
	views, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) ViewOne(c echo.Context) error {
	v, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) Sort(c echo.Context) error {
	sortBy := c.QueryParam("sort_by")
	order := c.QueryParam("order")
	if order == "" {
		order = "asc"
	}

	views, err := h.svc.Sorted(c.Request().Context(), sortBy, order)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) Create(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), p); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, "Patient created successfully")
}

func (h *Handler) Update(c echo.Context) error {
	var u Update
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, err := h.svc.Update(c.Request().Context(), c.Param("id"), u); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, "Patient updated successfully")
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, "Patient deleted successfully")
}

// httpError maps domain errors onto HTTP statuses: absent ids are 404,
// duplicate ids and bad sort arguments 400, schema violations 422, and
// anything else (storage failures included) an unhandled 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrInvalidSortField),
		errors.Is(err, ErrInvalidSortOrder):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, validationDetail(verrs))
	}
	return err
}

func validationDetail(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		case "lt":
			msgs = append(msgs, fmt.Sprintf("%s must be less than %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}
