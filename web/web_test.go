package web

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"microblog/db"
	"microblog/models"
)

// setupServer builds the full engine against a clean database and
// serves it over httptest.
func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if db.Instance == nil {
		db.Init()
		models.Init()
	}
	for _, model := range []interface{}{
		&models.Comment{}, &models.Follow{}, &models.Post{}, &models.Group{}, &models.User{},
	} {
		if err := db.Instance.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			t.Fatalf("failed to clean up table for %T: %v", model, err)
		}
	}
	srv := httptest.NewServer(BuildRouter())
	t.Cleanup(srv.Close)
	return srv
}

// newClient returns a cookie-holding client that does not follow
// redirects, so tests can assert on Location headers.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// signup registers a user through the form and leaves the session
// cookie in the client's jar.
func signup(t *testing.T, srv *httptest.Server, client *http.Client, username string) *models.User {
	t.Helper()
	resp := postForm(t, srv, client, "/auth/signup/", url.Values{
		"username": {username},
		"name":     {username},
		"password": {"password-1"},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("signup %q: status %d, want 302", username, resp.StatusCode)
	}
	user, err := models.UserByUsername(username)
	if err != nil || user == nil {
		t.Fatalf("signup %q did not create the user: %v", username, err)
	}
	return user
}

func get(t *testing.T, srv *httptest.Server, client *http.Client, path string) *http.Response {
	t.Helper()
	resp, err := client.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func postForm(t *testing.T, srv *httptest.Server, client *http.Client, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.PostForm(srv.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return string(b)
}

func location(t *testing.T, resp *http.Response) string {
	t.Helper()
	resp.Body.Close()
	return resp.Header.Get("Location")
}

func listItems(page string) int {
	return strings.Count(page, "<li>")
}

func contains(page, needle string) bool {
	return strings.Contains(page, needle)
}

func formValues(m map[string]string) url.Values {
	form := url.Values{}
	for k, v := range m {
		form.Set(k, v)
	}
	return form
}

func loginNext(path string) string {
	return "/auth/login/?next=" + url.QueryEscape(path)
}
