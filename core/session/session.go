package session

import (
	"github.com/google/uuid"

	"github.com/skilllogic/schoolcrm/core"
	"github.com/skilllogic/schoolcrm/core/nav"
)

// User is the demo account fabricated at login. It proves nothing: the demo
// accepts any credentials and the password is never validated.
type User struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Role       nav.Role `json:"role"`
	SchoolID   string   `json:"school_id"`
	SchoolName string   `json:"school_name"`
}

func (u User) IsAdmin() bool   { return u.Role == nav.RoleAdmin }
func (u User) IsTeacher() bool { return u.Role == nav.RoleTeacher }
func (u User) IsStudent() bool { return u.Role == nav.RoleStudent }
func (u User) IsParent() bool  { return u.Role == nav.RoleParent }

// Session tracks the authenticated user and the page being viewed. It is
// created at login and destroyed at logout; nothing about it persists.
type Session struct {
	User        User     `json:"user"`
	CurrentPage nav.View `json:"current_page"`
}

// Login contains the demo login form fields.
type Login struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Role     nav.Role `json:"role" validate:"required,role"`
}

func (l *Login) Validate() error {
	l.Email = core.CleanString(l.Email, true /* lower */)
	return core.Validate.Struct(l)
}

// Open starts a session for the given login, fabricating the user and
// landing on the role's default view. The password is ignored.
func Open(l Login) *Session {
	usr := User{
		ID:         uuid.New().String(),
		Email:      l.Email,
		Name:       demoDisplayName(l.Role),
		Role:       l.Role,
		SchoolID:   core.Conf.SchoolID,
		SchoolName: core.Conf.SchoolName,
	}
	return &Session{
		User:        usr,
		CurrentPage: nav.DefaultView(usr.Role),
	}
}

// Navigate moves the session to the view resolved for pageID; unknown pages
// land on the role's default view.
func (s *Session) Navigate(pageID string) nav.View {
	s.CurrentPage = nav.Resolve(s.User.Role, pageID)
	return s.CurrentPage
}

// Close ends the session.
func (s *Session) Close() {
	*s = Session{}
}

func demoDisplayName(role nav.Role) string {
	switch role {
	case nav.RoleTeacher:
		return "Dr. Sanjay Mehta"
	case nav.RoleStudent:
		return "Arjun Kumar"
	case nav.RoleParent:
		return "Rajesh Kumar"
	default:
		return "Admin User"
	}
}
