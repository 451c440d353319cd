package viewstate

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the account type inferred at login.
type Role string

const (
	RoleTrader  Role = "trader"
	RoleJeweler Role = "jeweler"
)

// Label returns the short role name shown in the top bar.
func (r Role) Label() string {
	if r == RoleJeweler {
		return "صائغ"
	}
	return "تاجر"
}

// AccountLabel returns the account heading shown in the sidebar footer.
func (r Role) AccountLabel() string {
	if r == RoleJeweler {
		return "حساب الصائغ"
	}
	return "حساب التاجر"
}

// Initials returns the two-letter avatar text for the role.
func (r Role) Initials() string {
	if r == RoleJeweler {
		return "JG"
	}
	return "TG"
}

// Session is the identity of the logged-in user. It is immutable once created.
type Session struct {
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
}

var (
	// ErrEmptyUsername is returned when the username is blank.
	ErrEmptyUsername = errors.New("empty username")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// DefaultPassword is the shared test password accepted for every username.
const DefaultPassword = "12345"

// DefaultJewelerMarkers are the username substrings that select the jeweler role.
var DefaultJewelerMarkers = []string{"صائغ", "صياغ"}

// Authenticator is a toy login gate: any non-empty username with the fixed
// password is accepted. It is not a security boundary.
type Authenticator struct {
	Password       string
	JewelerMarkers []string
}

// NewAuthenticator returns an Authenticator with the default password and markers.
func NewAuthenticator() Authenticator {
	return Authenticator{Password: DefaultPassword, JewelerMarkers: DefaultJewelerMarkers}
}

// Authenticate validates the credentials and returns a new Session.
func (a Authenticator) Authenticate(username, password string) (*Session, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return nil, ErrEmptyUsername
	}
	if password != a.Password {
		return nil, ErrInvalidCredentials
	}
	return &Session{DisplayName: name, Role: a.inferRole(username)}, nil
}

func (a Authenticator) inferRole(username string) Role {
	for _, marker := range a.JewelerMarkers {
		if marker != "" && strings.Contains(username, marker) {
			return RoleJeweler
		}
	}
	return RoleTrader
}

// LoginMessage returns the user-visible text for a login error.
func (a Authenticator) LoginMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyUsername):
		return "يرجى إدخال اسم المستخدم."
	case errors.Is(err, ErrInvalidCredentials):
		return fmt.Sprintf("بيانات غير صحيحة (للاختبار استخدم كلمة المرور %s).", a.Password)
	default:
		return err.Error()
	}
}
