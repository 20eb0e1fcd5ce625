package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

var errInvalidParam = errors.New("invalid path parameter")

type idParam struct {
	Value string `validate:"required,number,max=9"`
}

type dateParam struct {
	Value string `validate:"required,datetime=2006-01-02"`
}

// parseIDParam reads a positive integer identifier from the route. Anything
// that is not plain digits is rejected before it reaches the database.
func (h *BaseHandler) parseIDParam(r *http.Request, name string) (int, error) {
	p := idParam{Value: chi.URLParam(r, name)}
	if err := h.validator.Struct(p); err != nil {
		return 0, errInvalidParam
	}
	id, err := strconv.Atoi(p.Value)
	if err != nil || id <= 0 {
		return 0, errInvalidParam
	}
	return id, nil
}

// parseDateParam reads a calendar date (YYYY-MM-DD) from the route.
func (h *BaseHandler) parseDateParam(r *http.Request, name string) (time.Time, error) {
	p := dateParam{Value: chi.URLParam(r, name)}
	if err := h.validator.Struct(p); err != nil {
		return time.Time{}, errInvalidParam
	}
	day, err := time.Parse(time.DateOnly, p.Value)
	if err != nil {
		return time.Time{}, errInvalidParam
	}
	return day, nil
}
