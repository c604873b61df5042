package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/skilllogic/schoolcrm/core/nav"
	"github.com/skilllogic/schoolcrm/core/session"
)

type sessionApi struct{}

func registerSessionAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	api := sessionApi{}

	sg := g.Group("/session")

	// un-authed endpoints
	sg.POST("/login", api.login)

	// authed endpoints
	ag := sg.Group("", jwt)
	ag.GET("/menu", api.menu)
	ag.GET("/resolve", api.resolve)
	ag.POST("/logout", api.logout)
}

// Handlers

// login accepts any credentials and fabricates the demo user; only required
// fields are validated.
func (api *sessionApi) login(ctx echo.Context) error {
	var data session.Login
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Login")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sess := session.Open(data)
	token, err := GenerateToken(GetSessionClaims(sess))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:       token,
		User:        sess.User,
		CurrentPage: sess.CurrentPage,
	})
}

// menu returns the session role's navigation menu.
func (api *sessionApi) menu(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	return ctx.JSON(http.StatusOK, nav.Menu(usr.Role))
}

// resolve maps the requested page to the view to render; unknown pages land
// on the role's default view.
func (api *sessionApi) resolve(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	view := nav.Resolve(usr.Role, ctx.QueryParam("page"))
	return ctx.JSON(http.StatusOK, ResolveResponse{View: view})
}

// logout ends the session. The token is stateless, so there is nothing to
// revoke server-side; the client drops it.
func (api *sessionApi) logout(ctx echo.Context) error {
	return ctx.NoContent(http.StatusNoContent)
}

type (
	LoginResponse struct {
		Token       string       `json:"token"`
		User        session.User `json:"user"`
		CurrentPage nav.View     `json:"current_page"`
	}

	ResolveResponse struct {
		View nav.View `json:"view"`
	}
)
