package viewstate

import "errors"

// ErrNotAuthenticated is returned for page operations without a session.
var ErrNotAuthenticated = errors.New("not authenticated")

// Screen is the top-level surface being shown.
type Screen string

const (
	ScreenLogin Screen = "login"
	ScreenApp   Screen = "app"
)

// View is a snapshot of everything needed to render one frame.
type View struct {
	Screen  Screen    `json:"screen"`
	Session *Session  `json:"session,omitempty"`
	Page    PageID    `json:"page,omitempty"`
	State   PageState `json:"state,omitempty"`
}

// Controller maps (session, current page) to exactly one view. It is not safe
// for concurrent use; callers serialize access per browser.
type Controller struct {
	auth    Authenticator
	session *Session
	current PageID
	state   PageState
}

// NewController returns a controller showing the login screen.
func NewController(auth Authenticator) *Controller {
	return &Controller{auth: auth}
}

// Authenticator returns the login gate used by the controller.
func (c *Controller) Authenticator() Authenticator { return c.auth }

// Login creates a session and resets navigation to the dashboard. On failure
// the controller is left unchanged.
func (c *Controller) Login(username, password string) error {
	sess, err := c.auth.Authenticate(username, password)
	if err != nil {
		return err
	}
	state, err := NewPageState(PageDashboard)
	if err != nil {
		return err
	}
	c.session = sess
	c.current = PageDashboard
	c.state = state
	return nil
}

// Logout destroys the session and all page state.
func (c *Controller) Logout() {
	c.session = nil
	c.current = ""
	c.state = nil
}

// Select makes p the current page. Switching to a different page mounts it
// with fresh state; selecting the current page keeps its state.
func (c *Controller) Select(p PageID) error {
	if c.session == nil {
		return ErrNotAuthenticated
	}
	if p == c.current {
		return nil
	}
	state, err := NewPageState(p)
	if err != nil {
		return err
	}
	c.current = p
	c.state = state
	return nil
}

// Dispatch applies a page-local action to the current page.
func (c *Controller) Dispatch(a Action) error {
	if c.session == nil {
		return ErrNotAuthenticated
	}
	return c.state.Apply(a)
}

// Session returns the active session, or nil on the login screen.
func (c *Controller) Session() *Session { return c.session }

// CurrentPage returns the selected page, or "" on the login screen.
func (c *Controller) CurrentPage() PageID { return c.current }

// State returns the current page's local state, or nil on the login screen.
func (c *Controller) State() PageState { return c.state }

// View returns the frame to render.
func (c *Controller) View() View {
	if c.session == nil {
		return View{Screen: ScreenLogin}
	}
	sess := *c.session
	return View{Screen: ScreenApp, Session: &sess, Page: c.current, State: c.state}
}
