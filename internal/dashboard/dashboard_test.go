package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirbygold/goldsuite/internal/db"
	"github.com/kirbygold/goldsuite/internal/fixtures"
	"github.com/kirbygold/goldsuite/internal/progress"
	"github.com/kirbygold/goldsuite/internal/viewstate"
)

var pageTitles = map[viewstate.PageID]string{
	viewstate.PageDashboard:   "لوحة التحكم الرئيسية",
	viewstate.PageLivePrices:  "الأسعار اللحظية",
	viewstate.PageCharts:      "الرسوم البيانية المتقدمة",
	viewstate.PageMetaTrader:  "واجهة تداول شبيهة بـ MetaTrader",
	viewstate.PagePriceLocks:  "إدارة تثبيت الأسعار",
	viewstate.PageMap:         "الخريطة و مواقع المحلات",
	viewstate.PageWallet:      "محفظة Kirby Gold",
	viewstate.PageMarketplace: "سوق المنتجات",
	viewstate.PageDirectory:   "دليل التجار و الصاغة",
	viewstate.PageSettings:    "إعدادات الحساب و النظام",
}

func memorySource(t *testing.T) fixtures.Source {
	t.Helper()
	c, err := fixtures.Default()
	require.NoError(t, err)
	return fixtures.NewMemorySource(c)
}

func sqlSource(t *testing.T) fixtures.Source {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	c, err := fixtures.Default()
	require.NoError(t, err)
	src := fixtures.NewSQLSource(database)
	require.NoError(t, src.Seed(context.Background(), c, progress.Nop{}))
	return src
}

type testClient struct {
	t      *testing.T
	srv    *httptest.Server
	client *http.Client
	dash   *Dashboard
}

func newTestClient(t *testing.T, src fixtures.Source) *testClient {
	t.Helper()
	d, err := New(Options{
		Source:       src,
		Auth:         viewstate.NewAuthenticator(),
		TokenSecret:  []byte("test-secret"),
		FeedInterval: 20 * time.Millisecond,
		Logger:       zerolog.Nop(),
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	d.RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testClient{t: t, srv: srv, client: &http.Client{Jar: jar}, dash: d}
}

func (c *testClient) get(path string) (int, string) {
	c.t.Helper()
	resp, err := c.client.Get(c.srv.URL + path)
	require.NoError(c.t, err)
	return readBody(c.t, resp)
}

func (c *testClient) postForm(path string, form url.Values) (int, string) {
	c.t.Helper()
	resp, err := c.client.PostForm(c.srv.URL+path, form)
	require.NoError(c.t, err)
	return readBody(c.t, resp)
}

func (c *testClient) postJSON(path string, body any) (int, []byte) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := c.client.Post(c.srv.URL+path, "application/json", &buf)
	require.NoError(c.t, err)
	status, s := readBody(c.t, resp)
	return status, []byte(s)
}

func (c *testClient) login(username string) {
	c.t.Helper()
	status, body := c.postForm("/login", url.Values{"username": {username}, "password": {viewstate.DefaultPassword}})
	require.Equal(c.t, http.StatusOK, status)
	require.Contains(c.t, body, pageTitles[viewstate.PageDashboard])
}

func (c *testClient) nav(p viewstate.PageID) string {
	c.t.Helper()
	status, body := c.postForm("/nav/"+string(p), nil)
	require.Equal(c.t, http.StatusOK, status)
	return body
}

func (c *testClient) action(name, value string) string {
	c.t.Helper()
	status, body := c.postForm("/action", url.Values{"name": {name}, "value": {value}})
	require.Equal(c.t, http.StatusOK, status)
	return body
}

func readBody(t *testing.T, resp *http.Response) (int, string) {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestNewRequiresSourceAndSecret(t *testing.T) {
	_, err := New(Options{TokenSecret: []byte("x")})
	assert.Error(t, err)

	_, err = New(Options{Source: memorySource(t)})
	assert.Error(t, err)
}

func TestEveryPageHasTemplate(t *testing.T) {
	for _, p := range viewstate.AllPages() {
		_, ok := pageTemplates[p]
		assert.True(t, ok, "page %s has no template", p)
	}
	assert.Len(t, pageTemplates, len(viewstate.AllPages()))
}

func TestIndexShowsLoginScreen(t *testing.T) {
	c := newTestClient(t, memorySource(t))

	status, body := c.get("/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "تسجيل الدخول للحساب")
	assert.Contains(t, body, viewstate.DefaultPassword)
	assert.NotContains(t, body, `class="page-title"`)
}

func TestLoginFailures(t *testing.T) {
	c := newTestClient(t, memorySource(t))

	status, body := c.postForm("/login", url.Values{"username": {"  "}, "password": {viewstate.DefaultPassword}})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "يرجى إدخال اسم المستخدم.")

	status, body = c.postForm("/login", url.Values{"username": {"خالد"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "بيانات غير صحيحة")
	assert.Contains(t, body, `value="خالد"`)
}

func TestLoginShowsRole(t *testing.T) {
	c := newTestClient(t, memorySource(t))
	c.login("صائغ أحمد")

	_, body := c.get("/")
	assert.Contains(t, body, "حساب الصائغ")
	assert.Contains(t, body, "صائغ أحمد")
}

func TestEveryPageRendersOneTitle(t *testing.T) {
	for name, src := range map[string]func(*testing.T) fixtures.Source{
		"memory": memorySource,
		"sqlite": sqlSource,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, src(t))
			c.login("trader")

			for _, p := range viewstate.AllPages() {
				body := c.nav(p)
				assert.Equal(t, 1, strings.Count(body, `class="page-title"`), "page %s", p)
				assert.Contains(t, body, pageTitles[p], "page %s", p)
				assert.Contains(t, body, `data-page="`+string(p)+`"`, "page %s", p)
			}
		})
	}
}

func TestNavRequiresLogin(t *testing.T) {
	c := newTestClient(t, memorySource(t))

	status, body := c.postForm("/nav/wallet", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "تسجيل الدخول للحساب")
}

func TestNavUnknownPage(t *testing.T) {
	c := newTestClient(t, memorySource(t))
	c.login("trader")

	status, _ := c.postForm("/nav/reports", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestNavigationResetsSelectors(t *testing.T) {
	c := newTestClient(t, memorySource(t))
	c.login("trader")

	c.nav(viewstate.PageLivePrices)
	body := c.action(viewstate.ActionTab, "silver")
	assert.Contains(t, body, `data-tab="silver"`)

	c.nav(viewstate.PageWallet)
	body = c.nav(viewstate.PageLivePrices)
	assert.Contains(t, body, `data-tab="gold"`)
	assert.NotContains(t, body, `data-tab="silver"`)
}

func TestPriceLockFilterKeepsList(t *testing.T) {
	c := newTestClient(t, memorySource(t))
	c.login("trader")
	c.nav(viewstate.PagePriceLocks)

	for _, f := range []string{"all", "pending", "active", "completed"} {
		body := c.action(viewstate.ActionFilter, f)
		assert.Equal(t, 3, strings.Count(body, "lock-row"), "filter %s", f)
	}
}

func TestMarketplaceFilter(t *testing.T) {
	for name, src := range map[string]func(*testing.T) fixtures.Source{
		"memory": memorySource,
		"sqlite": sqlSource,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, src(t))
			c.login("صائغ أحمد")
			body := c.nav(viewstate.PageMarketplace)
			assert.Equal(t, 4, strings.Count(body, "data-product="))
			assert.Contains(t, body, "products-grid")

			body = c.action(viewstate.ActionFilter, "gold")
			assert.Equal(t, 2, strings.Count(body, "data-product="))

			body = c.action(viewstate.ActionView, "list")
			assert.Contains(t, body, "products-list")
			assert.Equal(t, 2, strings.Count(body, "data-product="))
		})
	}
}

func TestUploadWizard(t *testing.T) {
	c := newTestClient(t, memorySource(t))
	c.login("صائغ أحمد")
	body := c.nav(viewstate.PageMarketplace)
	assert.NotContains(t, body, `class="modal-backdrop"`)

	body = c.action(viewstate.ActionUpload, viewstate.UploadOpen)
	assert.Contains(t, body, `data-step="upload"`)

	body = c.action(viewstate.ActionWizard, viewstate.WizardContinue)
	assert.Contains(t, body, `data-step="ai-processing"`)

	body = c.action(viewstate.ActionWizard, viewstate.WizardPreview)
	assert.Contains(t, body, `data-step="preview"`)

	body = c.action(viewstate.ActionWizard, viewstate.WizardBack)
	assert.Contains(t, body, `data-step="upload"`)

	status, _ := c.postForm("/action", url.Values{"name": {viewstate.ActionWizard}, "value": {viewstate.WizardPublish}})
	assert.Equal(t, http.StatusBadRequest, status)

	body = c.action(viewstate.ActionUpload, viewstate.UploadClose)
	assert.NotContains(t, body, `class="modal-backdrop"`)
}

func TestDirectoryKindChangesLabels(t *testing.T) {
	c := newTestClient(t, memorySource(t))
	c.login("trader")

	body := c.nav(viewstate.PageDirectory)
	assert.Contains(t, body, "تجار الجملة الموثوقين")

	body = c.action(viewstate.ActionKind, "jewelers")
	assert.Contains(t, body, "محلات الصياغة والساعات")
	assert.Contains(t, body, "محل ساعات")
}

func TestLogoutDropsController(t *testing.T) {
	c := newTestClient(t, memorySource(t))
	c.login("trader")
	require.Equal(t, 1, c.dash.Sessions().Len())

	status, body := c.postForm("/logout", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "تسجيل الدخول للحساب")

	// The login screen render above created a fresh, anonymous session.
	assert.Equal(t, 1, c.dash.Sessions().Len())
	status, _ = c.postForm("/nav/wallet", nil)
	assert.Equal(t, http.StatusOK, status)
	_, body = c.get("/")
	assert.NotContains(t, body, `class="page-title"`)
}

func TestInvalidCookieStartsFreshSession(t *testing.T) {
	c := newTestClient(t, memorySource(t))

	req, err := http.NewRequest(http.MethodGet, c.srv.URL+"/", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-token"})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	status, body := readBody(t, resp)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "تسجيل الدخول للحساب")

	var issued bool
	for _, ck := range resp.Cookies() {
		if ck.Name == CookieName && ck.Value != "not-a-token" {
			issued = true
		}
	}
	assert.True(t, issued)
}

func TestSessionTokenSignedWithSecret(t *testing.T) {
	s := NewSessions(viewstate.NewAuthenticator(), []byte("a"), time.Hour)
	other := NewSessions(viewstate.NewAuthenticator(), []byte("b"), time.Hour)

	token, err := s.issue("sid-1", time.Now())
	require.NoError(t, err)

	sid, err := s.parse(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", sid)

	_, err = other.parse(token)
	assert.Error(t, err)
}

func TestSessionTokenExpires(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessions(viewstate.NewAuthenticator(), []byte("a"), time.Hour)
	s.now = func() time.Time { return now }

	token, err := s.issue("sid-1", now)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = s.parse(token)
	assert.Error(t, err)
}

func TestAPIFlow(t *testing.T) {
	c := newTestClient(t, memorySource(t))

	status, body := c.postJSON("/api/nav/wallet", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	var errResp errorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.NotEmpty(t, errResp.Error)

	status, body = c.postJSON("/api/login", loginRequest{Username: "trader", Password: "nope"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Contains(t, errResp.Error, viewstate.DefaultPassword)

	status, body = c.postJSON("/api/login", loginRequest{Username: "trader", Password: viewstate.DefaultPassword})
	require.Equal(t, http.StatusOK, status)
	var view map[string]any
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, "app", view["screen"])
	assert.Equal(t, "dashboard", view["page"])

	status, body = c.postJSON("/api/nav/live-prices", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, "live-prices", view["page"])
	assert.Equal(t, map[string]any{"tab": "gold"}, view["state"])

	status, body = c.postJSON("/api/action", viewstate.Action{Name: viewstate.ActionTab, Value: "watches"})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, map[string]any{"tab": "watches"}, view["state"])

	status, _ = c.postJSON("/api/action", viewstate.Action{Name: viewstate.ActionTab, Value: "bronze"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = c.postJSON("/api/action", viewstate.Action{Name: viewstate.ActionView, Value: "grid"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = c.postJSON("/api/nav/reports", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = c.postJSON("/api/logout", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, "login", view["screen"])

	resp, err := c.client.Get(c.srv.URL + "/api/state")
	require.NoError(t, err)
	status, s := readBody(t, resp)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"screen":"login"}`, s)
}

func TestAPIMalformedBody(t *testing.T) {
	c := newTestClient(t, memorySource(t))

	resp, err := c.client.Post(c.srv.URL+"/api/login", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	status, _ := readBody(t, resp)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAPIProducts(t *testing.T) {
	c := newTestClient(t, sqlSource(t))

	tests := []struct {
		query  string
		status int
		count  int
	}{
		{"", http.StatusOK, 4},
		{"?type=all", http.StatusOK, 4},
		{"?type=gold", http.StatusOK, 2},
		{"?type=watch", http.StatusOK, 1},
		{"?type=bronze", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		status, body := c.get("/api/products" + tt.query)
		assert.Equal(t, tt.status, status, tt.query)
		if tt.status != http.StatusOK {
			continue
		}
		var products []fixtures.Product
		require.NoError(t, json.Unmarshal([]byte(body), &products), tt.query)
		assert.Len(t, products, tt.count, tt.query)
	}
}

func TestAPINavigation(t *testing.T) {
	c := newTestClient(t, memorySource(t))

	status, body := c.get("/api/navigation")
	require.Equal(t, http.StatusOK, status)
	var sections []viewstate.NavSection
	require.NoError(t, json.Unmarshal([]byte(body), &sections))

	var n int
	for _, s := range sections {
		n += len(s.Items)
	}
	assert.Equal(t, len(viewstate.AllPages()), n)
}

func TestPriceStream(t *testing.T) {
	c := newTestClient(t, memorySource(t))

	wsURL := "ws" + strings.TrimPrefix(c.srv.URL, "http") + "/ws/prices"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	for i := 0; i < 2; i++ {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg quotesMessage
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "quotes", msg.Type)
		assert.Len(t, msg.Quotes, 9)
		assert.Equal(t, "XAU-24K", msg.Quotes[0].Instrument)
	}

	// The stream never touches view state.
	assert.Equal(t, 0, c.dash.Sessions().Len())
}
