package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/analytics"
	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/catalog"
	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/order"
	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/session"
)

var testNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (*gin.Engine, *catalog.Store, *order.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products, categories := catalog.Fixtures(testNow)
	catalogStore := catalog.NewStore(products, categories)
	orderStore := order.NewStore(order.Fixtures(testNow))
	reports := analytics.NewService(orderStore, catalogStore).
		WithClock(func() time.Time { return testNow }, time.UTC)

	sessions, err := session.NewManager(
		session.NewFileStore(filepath.Join(t.TempDir(), "session.json")),
		session.Credentials{Phone: "9876543210", Password: "admin123"},
		session.User{UID: "demo-admin-123", PhoneNumber: "9876543210", DisplayName: "Admin User", Role: "admin"},
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	sessions.Load(context.Background())

	return newRouter(catalogStore, orderStore, reports, sessions, zap.NewNop()), catalogStore, orderStore
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestListProducts(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/products", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Items []catalog.Product `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got.Items) != 8 {
		t.Fatalf("len=%d, expected 8 seeded products", len(got.Items))
	}
}

func TestSearchProducts(t *testing.T) {
	r, _, _ := newTestRouter(t)

	// missing q => 400
	{
		w := doJSON(r, http.MethodGet, "/products/search", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing q, got %d", w.Code)
		}
	}

	// too short => 400
	{
		w := doJSON(r, http.MethodGet, "/products/search?q=t", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for short q, got %d", w.Code)
		}
	}

	// valid => 200, category match included
	{
		w := doJSON(r, http.MethodGet, "/products/search?q=fruits", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var got struct {
			Q     string            `json:"q"`
			Items []catalog.Product `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if got.Q != "fruits" || len(got.Items) != 2 {
			t.Fatalf("unexpected result: q=%q items=%d", got.Q, len(got.Items))
		}
	}
}

func TestCreateProduct(t *testing.T) {
	r, _, _ := newTestRouter(t)

	// valid
	{
		w := doJSON(r, http.MethodPost, "/products",
			`{"name":"Coriander","category":"Herbs","price":"15","stock":40,"unit":"bunch"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var p catalog.Product
		if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if p.ID == "" || p.Name != "Coriander" {
			t.Fatalf("unexpected product: %+v", p)
		}
	}

	// missing required fields => 400
	{
		w := doJSON(r, http.MethodPost, "/products", `{"stock":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
		}
	}

	// negative stock => 400 from the store boundary
	{
		w := doJSON(r, http.MethodPost, "/products",
			`{"name":"Bad","category":"Herbs","price":"1","stock":-1,"unit":"kg"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for negative stock, got %d", w.Code)
		}
	}
}

func TestUpdateProduct(t *testing.T) {
	r, products, _ := newTestRouter(t)

	// partial: only stock changes
	{
		w := doJSON(r, http.MethodPut, "/products/1", `{"stock":5}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		got, err := products.Product(context.Background(), "1")
		if err != nil {
			t.Fatalf("refetch: %v", err)
		}
		if got.Stock != 5 || got.Name != "Tomatoes" {
			t.Fatalf("partial update not respected: %+v", got)
		}
	}

	// negative price => 400
	{
		w := doJSON(r, http.MethodPut, "/products/1", `{"price":"-2"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
		}
	}

	// absent id => 404
	{
		w := doJSON(r, http.MethodPut, "/products/nope", `{"stock":5}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
		}
	}
}

func TestDeleteProduct(t *testing.T) {
	r, _, _ := newTestRouter(t)

	{
		w := doJSON(r, http.MethodDelete, "/products/8", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
	}
	{
		w := doJSON(r, http.MethodDelete, "/products/8", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 on second delete, got %d", w.Code)
		}
	}
}

func TestListOrdersSortedDescending(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/orders", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Items []order.Order `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got.Items) != 5 {
		t.Fatalf("len=%d, expected 5 seeded orders", len(got.Items))
	}
	for i := 1; i < len(got.Items); i++ {
		if got.Items[i].CreatedAt.After(got.Items[i-1].CreatedAt) {
			t.Fatalf("orders not sorted by created_at desc at index %d", i)
		}
	}
}

func TestSetOrderStatus(t *testing.T) {
	r, _, orders := newTestRouter(t)

	// existing order => status overwritten, updated_at touched
	{
		w := doJSON(r, http.MethodPut, "/orders/1/status", `{"status":"delivered"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		got, err := orders.Order(context.Background(), "1")
		if err != nil {
			t.Fatalf("refetch: %v", err)
		}
		if got.Status != order.StatusDelivered {
			t.Fatalf("status=%s, expected delivered", got.Status)
		}
	}

	// unknown status => 400
	{
		w := doJSON(r, http.MethodPut, "/orders/2/status", `{"status":"shipped"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
		}
	}

	// absent id => 404
	{
		w := doJSON(r, http.MethodPut, "/orders/nope/status", `{"status":"delivered"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
		}
	}
}

func TestAdvanceOrder(t *testing.T) {
	r, _, _ := newTestRouter(t)

	// pending -> accepted
	{
		w := doJSON(r, http.MethodPost, "/orders/1/advance", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var got order.Order
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if got.Status != order.StatusAccepted {
			t.Fatalf("status=%s, expected accepted", got.Status)
		}
	}

	// delivered order cannot advance => 409
	{
		w := doJSON(r, http.MethodPost, "/orders/5/advance", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d body=%s", w.Code, w.Body.String())
		}
	}
}

func TestAnalyticsEndpoint(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/analytics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var rep analytics.Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	// Seed: 4 orders today, 1 yesterday, nothing out of stock.
	if rep.Orders.Today != 4 || rep.Orders.Yesterday != 1 {
		t.Fatalf("order partition: %+v", rep.Orders)
	}
	if rep.Products.Total != 8 || rep.Products.OutOfStock != 0 {
		t.Fatalf("product counters: %+v", rep.Products)
	}
	if rep.Customers.Total != 5 {
		t.Fatalf("customers=%+v, expected 5 distinct phones", rep.Customers)
	}
}

func TestAuthFlow(t *testing.T) {
	r, _, _ := newTestRouter(t)

	// not signed in
	{
		w := doJSON(r, http.MethodGet, "/auth/me", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 before sign-in, got %d", w.Code)
		}
	}

	// bad password => 401, still signed out
	{
		w := doJSON(r, http.MethodPost, "/auth/login", `{"phone":"9876543210","password":"wrong"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
		}
		if w := doJSON(r, http.MethodGet, "/auth/me", ""); w.Code != http.StatusNotFound {
			t.Fatalf("failed login must not sign in, got %d", w.Code)
		}
	}

	// good credentials => 200 with the fixed admin identity
	{
		w := doJSON(r, http.MethodPost, "/auth/login", `{"phone":"9876543210","password":"admin123"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var u session.User
		if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if u.UID != "demo-admin-123" || u.Role != "admin" {
			t.Fatalf("unexpected identity: %+v", u)
		}
	}

	// me now returns the user; logout clears it
	{
		if w := doJSON(r, http.MethodGet, "/auth/me", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200 after sign-in, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/auth/logout", ""); w.Code != http.StatusNoContent {
			t.Fatalf("logout status=%d", w.Code)
		}
		if w := doJSON(r, http.MethodGet, "/auth/me", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after logout, got %d", w.Code)
		}
	}
}
