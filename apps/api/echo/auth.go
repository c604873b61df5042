package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/skilllogic/schoolcrm/core"
	"github.com/skilllogic/schoolcrm/core/nav"
	"github.com/skilllogic/schoolcrm/core/session"
)

var (
	// appJWTConfig is the default session token middleware config.
	appJWTConfig = middleware.JWTConfig{
		SigningKey:    []byte(core.Conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "sessionToken",
		Claims:        new(Claims),
	}
)

// Claims carries the fabricated demo user in a signed session token.
// The token keeps the HTTP surface stateless; it proves nothing about
// identity since any credentials are accepted at login.
type Claims struct {
	jwt.StandardClaims
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role,omitempty"`
	SchoolID   string `json:"school_id,omitempty"`
	SchoolName string `json:"school_name,omitempty"`
}

func GetSessionClaims(sess *session.Session) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.AppName,
			Subject:   sess.User.ID,
			Audience:  "SchoolCRM",
			ExpiresAt: now.Add(core.Conf.Server.SessionTokenMaxAge).Unix(),
			IssuedAt:  now.Unix(),
		},
		Email:      sess.User.Email,
		Name:       sess.User.Name,
		Role:       string(sess.User.Role),
		SchoolID:   sess.User.SchoolID,
		SchoolName: sess.User.SchoolName,
	}
}

// GenerateToken generates a signed token string representing the session Claims.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(appJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(appJWTConfig.SigningKey)
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(appJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// getContextUser rebuilds the session user from the token claims.
func getContextUser(ctx echo.Context) (session.User, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return session.User{}, err
	}
	return session.User{
		ID:         claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
		Role:       nav.Role(claims.Role),
		SchoolID:   claims.SchoolID,
		SchoolName: claims.SchoolName,
	}, nil
}

func adminMiddleware() echo.MiddlewareFunc {
	return roleMiddleware(nav.RoleAdmin)
}

// roleMiddleware only lets through users with one of the given roles.
func roleMiddleware(roles ...nav.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, err := getContextUser(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context user")
			}
			for _, role := range roles {
				if usr.Role == role {
					return next(ctx)
				}
			}
			return errHttpForbidden
		}
	}
}
