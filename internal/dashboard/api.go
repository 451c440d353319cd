package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kirbygold/goldsuite/internal/fixtures"
	"github.com/kirbygold/goldsuite/internal/viewstate"
)

// loginRequest is the body of POST /api/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// errorResponse is the body of every JSON error.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, viewstate.ErrEmptyUsername),
		errors.Is(err, viewstate.ErrInvalidCredentials):
		return http.StatusUnprocessableEntity
	case errors.Is(err, viewstate.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, viewstate.ErrUnknownPage),
		errors.Is(err, viewstate.ErrUnknownAction),
		errors.Is(err, viewstate.ErrInvalidValue),
		errors.Is(err, viewstate.ErrInvalidTransition),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

func (d *Dashboard) apiState(w http.ResponseWriter, r *http.Request) {
	d.apiMutate(w, r, func(*viewstate.Controller) error { return nil })
}

func (d *Dashboard) apiLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		d.writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	var view viewstate.View
	var loginErr error
	err := d.sessions.With(w, r, func(c *viewstate.Controller) error {
		loginErr = c.Login(req.Username, req.Password)
		view = c.View()
		return nil
	})
	switch {
	case err != nil:
		d.writeError(w, err)
	case loginErr != nil:
		writeJSON(w, statusFor(loginErr), errorResponse{Error: d.auth.LoginMessage(loginErr)})
	default:
		writeJSON(w, http.StatusOK, view)
	}
}

func (d *Dashboard) apiLogout(w http.ResponseWriter, r *http.Request) {
	d.sessions.Logout(w, r)
	writeJSON(w, http.StatusOK, viewstate.View{Screen: viewstate.ScreenLogin})
}

func (d *Dashboard) apiNav(w http.ResponseWriter, r *http.Request) {
	d.apiMutate(w, r, func(c *viewstate.Controller) error {
		page, err := viewstate.ParsePageID(chi.URLParam(r, "page"))
		if err != nil {
			return err
		}
		return c.Select(page)
	})
}

func (d *Dashboard) apiAction(w http.ResponseWriter, r *http.Request) {
	var a viewstate.Action
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		d.writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	d.apiMutate(w, r, func(c *viewstate.Controller) error {
		return c.Dispatch(a)
	})
}

// apiMutate applies fn and responds with the resulting view.
func (d *Dashboard) apiMutate(w http.ResponseWriter, r *http.Request, fn func(*viewstate.Controller) error) {
	var view viewstate.View
	err := d.sessions.With(w, r, func(c *viewstate.Controller) error {
		if err := fn(c); err != nil {
			return err
		}
		view = c.View()
		return nil
	})
	if err != nil {
		d.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (d *Dashboard) apiNavigation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewstate.NavSections())
}

func (d *Dashboard) apiProducts(w http.ResponseWriter, r *http.Request) {
	t := fixtures.ProductType(r.URL.Query().Get("type"))
	if t == "all" {
		t = ""
	}
	if t != "" && !t.Valid() {
		d.writeError(w, fmt.Errorf("%w: unknown product type %q", errBadRequest, t))
		return
	}

	products, err := d.source.Products(r.Context(), t)
	if err != nil {
		d.writeError(w, err)
		return
	}
	if products == nil {
		products = []fixtures.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (d *Dashboard) apiQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := d.feed.Quotes(r.Context())
	if err != nil {
		d.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (d *Dashboard) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		d.logger.Error().Err(err).Msg("api request failed")
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
