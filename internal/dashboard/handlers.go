package dashboard

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kirbygold/goldsuite/internal/viewstate"
)

func (d *Dashboard) handleIndex(w http.ResponseWriter, r *http.Request) {
	var view viewstate.View
	err := d.sessions.With(w, r, func(c *viewstate.Controller) error {
		view = c.View()
		return nil
	})
	if err != nil {
		d.fail(w, err)
		return
	}
	d.render(w, r, http.StatusOK, view, frame{})
}

func (d *Dashboard) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	var (
		view     viewstate.View
		loginErr error
	)
	err := d.sessions.With(w, r, func(c *viewstate.Controller) error {
		loginErr = c.Login(username, r.FormValue("password"))
		view = c.View()
		return nil
	})
	if err != nil {
		d.fail(w, err)
		return
	}
	if loginErr != nil {
		d.render(w, r, statusFor(loginErr), view, frame{
			Username:   username,
			LoginError: d.auth.LoginMessage(loginErr),
		})
		return
	}
	d.logger.Info().Str("role", string(view.Session.Role)).Msg("login")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (d *Dashboard) handleLogout(w http.ResponseWriter, r *http.Request) {
	d.sessions.Logout(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (d *Dashboard) handleNav(w http.ResponseWriter, r *http.Request) {
	d.mutate(w, r, func(c *viewstate.Controller) error {
		page, err := viewstate.ParsePageID(chi.URLParam(r, "page"))
		if err != nil {
			return err
		}
		return c.Select(page)
	})
}

func (d *Dashboard) handleAction(w http.ResponseWriter, r *http.Request) {
	a := viewstate.Action{Name: r.FormValue("name"), Value: r.FormValue("value")}
	d.mutate(w, r, func(c *viewstate.Controller) error {
		return c.Dispatch(a)
	})
}

// mutate applies fn and redirects back to the current view. Requests without
// a session land on the login screen.
func (d *Dashboard) mutate(w http.ResponseWriter, r *http.Request, fn func(*viewstate.Controller) error) {
	err := d.sessions.With(w, r, fn)
	switch {
	case err == nil, errors.Is(err, viewstate.ErrNotAuthenticated):
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		d.fail(w, err)
	}
}

// fail writes a plain-text error for an HTML route.
func (d *Dashboard) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		d.logger.Error().Err(err).Msg("request failed")
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}
