package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tokri-shop/internal/config"
	"github.com/tokri-shop/internal/models"
	"github.com/tokri-shop/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func newStoreTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	if err := models.SeedCatalog(db); err != nil {
		t.Fatalf("seed catalog failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.Session.Secret = "router-test-secret"
	cfg.Session.CookieName = "tokri_session"
	cfg.Session.TTLHours = 1
	cfg.Session.Store = "memory"
	cfg.Security.PasswordMinLength = 8

	return SetupRouter(cfg, provider.NewContainer(cfg))
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request failed: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s http status want 200 got %d", method, path, w.Code)
	}

	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("%s %s unmarshal envelope failed: %v", method, path, err)
	}
	return w, resp
}

func sessionCookies(t *testing.T, w *httptest.ResponseRecorder) []*http.Cookie {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "tokri_session" && cookie.Value != "" {
			return []*http.Cookie{cookie}
		}
	}
	t.Fatalf("session cookie not issued")
	return nil
}

func TestStorefrontFlow(t *testing.T) {
	r := newStoreTestRouter(t)

	// 首页返回完整商品目录，并下发会话 Cookie
	w, resp := doJSON(t, r, http.MethodGet, "/", nil, nil)
	if resp.StatusCode != 0 {
		t.Fatalf("home status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	var home struct {
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(resp.Data, &home); err != nil {
		t.Fatalf("unmarshal home failed: %v", err)
	}
	if len(home.Products) != 4 {
		t.Fatalf("home products want 4 got %d", len(home.Products))
	}
	cookies := sessionCookies(t, w)

	// 未登录加购被拦截并提示跳转登录
	_, resp = doJSON(t, r, http.MethodPost, fmt.Sprintf("/add_to_cart/%d", home.Products[0].ID), nil, cookies)
	if resp.StatusCode != 401 {
		t.Fatalf("anonymous add status_code want 401 got %d", resp.StatusCode)
	}
	var redirect struct {
		Redirect string `json:"redirect"`
	}
	if err := json.Unmarshal(resp.Data, &redirect); err != nil {
		t.Fatalf("unmarshal redirect failed: %v", err)
	}
	if redirect.Redirect != "/signin" {
		t.Fatalf("redirect want /signin got %s", redirect.Redirect)
	}

	// 注册并登录
	_, resp = doJSON(t, r, http.MethodPost, "/signup", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret-pass",
	}, cookies)
	if resp.StatusCode != 0 {
		t.Fatalf("signup status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	_, resp = doJSON(t, r, http.MethodPost, "/signin", map[string]string{
		"email":    "alice@example.com",
		"password": "secret-pass",
	}, cookies)
	if resp.StatusCode != 0 {
		t.Fatalf("signin status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}

	// 同一商品加购两次保持两行
	_, resp = doJSON(t, r, http.MethodPost, fmt.Sprintf("/add_to_cart/%d", home.Products[0].ID), map[string]int{"quantity": 2}, cookies)
	if resp.StatusCode != 0 {
		t.Fatalf("first add status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	_, resp = doJSON(t, r, http.MethodPost, fmt.Sprintf("/add_to_cart/%d", home.Products[0].ID), nil, cookies)
	if resp.StatusCode != 0 {
		t.Fatalf("second add status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}

	var cart struct {
		Items []struct {
			Quantity int `json:"quantity"`
		} `json:"items"`
		Empty bool `json:"empty"`
	}
	_, resp = doJSON(t, r, http.MethodGet, "/cart", nil, cookies)
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("cart items want 2 got %d", len(cart.Items))
	}

	// 退出登录后购物车保留，结算被拦截
	_, resp = doJSON(t, r, http.MethodGet, "/logout", nil, cookies)
	if resp.StatusCode != 0 {
		t.Fatalf("logout status_code want 0 got %d", resp.StatusCode)
	}
	_, resp = doJSON(t, r, http.MethodGet, "/cart", nil, cookies)
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("cart should survive logout, want 2 items got %d", len(cart.Items))
	}
	_, resp = doJSON(t, r, http.MethodPost, "/checkout", map[string]string{
		"address": "1 Main Street",
		"email":   "alice@example.com",
		"phone":   "0123456789",
	}, cookies)
	if resp.StatusCode != 401 {
		t.Fatalf("anonymous checkout status_code want 401 got %d", resp.StatusCode)
	}

	// 重新登录后结算，每行生成一条订单并清空购物车
	_, resp = doJSON(t, r, http.MethodPost, "/signin", map[string]string{
		"email":    "alice@example.com",
		"password": "secret-pass",
	}, cookies)
	if resp.StatusCode != 0 {
		t.Fatalf("re-signin status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	_, resp = doJSON(t, r, http.MethodPost, "/checkout", map[string]string{
		"address": "1 Main Street",
		"email":   "alice@example.com",
		"phone":   "0123456789",
	}, cookies)
	if resp.StatusCode != 0 {
		t.Fatalf("checkout status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	var checkout struct {
		Orders []models.Order `json:"orders"`
	}
	if err := json.Unmarshal(resp.Data, &checkout); err != nil {
		t.Fatalf("unmarshal checkout failed: %v", err)
	}
	if len(checkout.Orders) != 2 {
		t.Fatalf("checkout orders want 2 got %d", len(checkout.Orders))
	}

	_, resp = doJSON(t, r, http.MethodGet, "/cart", nil, cookies)
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if !cart.Empty {
		t.Fatalf("cart should be empty after checkout")
	}

	var orders struct {
		Orders []json.RawMessage `json:"orders"`
	}
	_, resp = doJSON(t, r, http.MethodGet, "/orders", nil, cookies)
	if resp.StatusCode != 0 {
		t.Fatalf("orders status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	if err := json.Unmarshal(resp.Data, &orders); err != nil {
		t.Fatalf("unmarshal orders failed: %v", err)
	}
	if len(orders.Orders) != 2 {
		t.Fatalf("order list want 2 got %d", len(orders.Orders))
	}
}

func TestBuyNowReplacesCartOverHTTP(t *testing.T) {
	r := newStoreTestRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/", nil, nil)
	cookies := sessionCookies(t, w)
	var home struct {
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(resp.Data, &home); err != nil {
		t.Fatalf("unmarshal home failed: %v", err)
	}

	_, resp = doJSON(t, r, http.MethodPost, "/signup", map[string]string{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "secret-pass",
	}, cookies)
	if resp.StatusCode != 0 {
		t.Fatalf("signup status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	_, resp = doJSON(t, r, http.MethodPost, "/signin", map[string]string{
		"email":    "bob@example.com",
		"password": "secret-pass",
	}, cookies)
	if resp.StatusCode != 0 {
		t.Fatalf("signin status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}

	_, resp = doJSON(t, r, http.MethodPost, fmt.Sprintf("/add_to_cart/%d", home.Products[0].ID), nil, cookies)
	if resp.StatusCode != 0 {
		t.Fatalf("add status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	_, resp = doJSON(t, r, http.MethodPost, fmt.Sprintf("/buy_now/%d", home.Products[1].ID), nil, cookies)
	if resp.StatusCode != 0 {
		t.Fatalf("buy now status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	var buyNow struct {
		Redirect string `json:"redirect"`
	}
	if err := json.Unmarshal(resp.Data, &buyNow); err != nil {
		t.Fatalf("unmarshal buy now failed: %v", err)
	}
	if buyNow.Redirect != "/checkout" {
		t.Fatalf("buy now redirect want /checkout got %s", buyNow.Redirect)
	}

	var cart struct {
		Items []struct {
			Product  models.Product `json:"product"`
			Quantity int            `json:"quantity"`
		} `json:"items"`
	}
	_, resp = doJSON(t, r, http.MethodGet, "/cart", nil, cookies)
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("buy now should leave single line, got %d", len(cart.Items))
	}
	if cart.Items[0].Product.ID != home.Products[1].ID {
		t.Fatalf("cart product want %d got %d", home.Products[1].ID, cart.Items[0].Product.ID)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	r := newStoreTestRouter(t)

	_, resp := doJSON(t, r, http.MethodGet, "/product/9999", nil, nil)
	if resp.StatusCode != 404 {
		t.Fatalf("unknown product status_code want 404 got %d", resp.StatusCode)
	}
	_, resp = doJSON(t, r, http.MethodGet, "/product/abc", nil, nil)
	if resp.StatusCode != 404 {
		t.Fatalf("bad product id status_code want 404 got %d", resp.StatusCode)
	}
}
