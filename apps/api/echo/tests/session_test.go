package tests

import (
	"net/http"
	"net/url"
	"testing"

	echoapi "github.com/skilllogic/schoolcrm/apps/api/echo"
	"github.com/skilllogic/schoolcrm/core/nav"
	"github.com/skilllogic/schoolcrm/core/session"
)

func Test_sessionApi_login(t *testing.T) {
	login := func(email, password string, role nav.Role) []byte {
		return marshallObj(t, session.Login{Email: email, Password: password, Role: role})
	}

	tests := []httpTest{
		{
			name: "required fields", body: marshallObj(t, session.Login{}), wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{
				"email":    "this field is required",
				"password": "this field is required",
				"role":     "this field is required",
			}),
		},
		{
			name: "invalid email", body: login("lol", "x", nav.RoleAdmin), wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"email": "email must be a valid email address"}),
		},
		{
			name: "unknown role", body: login("a@b.cd", "x", "principal"), wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"role": "invalid role"}),
		},
		{name: "admin login", body: login("admin@school.edu", "anything", nav.RoleAdmin), wantCode: http.StatusOK},
		{name: "any password works", body: login("who@ever.cd", "lol", nav.RoleStudent), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/session/login", tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode != http.StatusOK {
				checkCodeAndData(t, tt, rec)
				return
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("code = %v, want %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			var resp echoapi.LoginResponse
			decodeBody(t, rec, &resp)
			if resp.Token == "" {
				t.Error("empty token")
			}
			if resp.CurrentPage != "dashboard" {
				t.Errorf("CurrentPage = %v, want dashboard", resp.CurrentPage)
			}
			if resp.User.SchoolID != "DEMO001" {
				t.Errorf("SchoolID = %v, want DEMO001", resp.User.SchoolID)
			}
		})
	}
}

func Test_sessionApi_menu(t *testing.T) {
	tests := []httpTest{
		{name: "auth required", wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)},
		{name: "admin menu", token: getToken(t, nav.RoleAdmin), wantCode: http.StatusOK, wantData: marshallObj(t, nav.Menu(nav.RoleAdmin))},
		{name: "teacher menu", token: getToken(t, nav.RoleTeacher), wantCode: http.StatusOK, wantData: marshallObj(t, nav.Menu(nav.RoleTeacher))},
		{name: "student menu", token: getToken(t, nav.RoleStudent), wantCode: http.StatusOK, wantData: marshallObj(t, nav.Menu(nav.RoleStudent))},
		{name: "parent menu", token: getToken(t, nav.RoleParent), wantCode: http.StatusOK, wantData: marshallObj(t, nav.Menu(nav.RoleParent))},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/v1/session/menu", tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_sessionApi_resolve(t *testing.T) {
	path := func(page string) string {
		if page == "" {
			return "/v1/session/resolve"
		}
		return "/v1/session/resolve?" + url.Values{"page": {page}}.Encode()
	}
	resolved := func(view string) []byte {
		return marshallObj(t, echoapi.ResolveResponse{View: nav.View(view)})
	}

	tests := []httpTest{
		{name: "auth required", path: path("dashboard"), wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)},
		{name: "admin settings", path: path("settings"), token: getToken(t, nav.RoleAdmin), wantCode: http.StatusOK, wantData: resolved("settings")},
		{name: "student results", path: path("results"), token: getToken(t, nav.RoleStudent), wantCode: http.StatusOK, wantData: resolved("results")},
		{name: "unknown page defaults", path: path("nonexistent"), token: getToken(t, nav.RoleAdmin), wantCode: http.StatusOK, wantData: resolved("dashboard")},
		{name: "foreign page defaults", path: path("settings"), token: getToken(t, nav.RoleStudent), wantCode: http.StatusOK, wantData: resolved("dashboard")},
		{name: "no page defaults", path: path(""), token: getToken(t, nav.RoleParent), wantCode: http.StatusOK, wantData: resolved("dashboard")},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_sessionApi_logout(t *testing.T) {
	t.Run("auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/session/logout")
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("code = %v, want %v", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("logout", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/session/logout", getToken(t, nav.RoleAdmin))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("code = %v, want %v", rec.Code, http.StatusNoContent)
		}
	})
}
