package handlers

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/skyeanalytics/ipl-dashboard/internal/views"
)

// page serves a view as HTML. Failures render the error panel with a retry link.
func page[T any](h *Handler, title, section string, fn viewFunc, body func(T) templ.Component) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fn(r)
		if err != nil {
			status, message := h.classify(r, err)
			h.renderError(w, r, status, title, section, message)
			return
		}
		v, ok := data.(T)
		if !ok {
			h.logger.Errorw("View returned an unexpected type", "path", r.URL.Path, "type", fmt.Sprintf("%T", data))
			h.renderError(w, r, http.StatusInternalServerError, title, section, "Something went wrong while rendering this page.")
			return
		}
		h.render(w, r, http.StatusOK, views.Layout(views.Page{Title: title, Section: section}, body(v)))
	}
}

// render writes a component through templ's buffered handler, so a failed
// render never sends half a page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				h.logger.Errorw("Failed to render page", "path", r.URL.Path, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, title, section, message string) {
	panel := views.ErrorPanel{
		Status:   status,
		Message:  message,
		RetryURL: r.URL.RequestURI(),
	}
	h.render(w, r, status, views.Layout(views.Page{Title: title, Section: section}, views.Error(panel)))
}
