package handlers

import (
	"coinwidget/core"
	"coinwidget/prefs"
	"coinwidget/service"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	errs := core.NewErrorLogger(10)
	store := prefs.NewStore(prefs.NewMemoryBackend(), prefs.WithErrorHandler(errs.RecordStoreError))
	service.InitServices(store, errs)
	SetStoreProbe(nil)

	r := gin.New()
	RegisterRoutes(r.Group("/api"))
	return r
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid body %q: %v", method, path, rec.Body.String(), err)
	}
	return rec.Code, env
}

func TestWidgetRoutes_SetupAndGet(t *testing.T) {
	r := newTestRouter(t)

	status, env := do(t, r, http.MethodPut, "/api/widgets/42", `{
		"coin": "BTC", "currency": "USD", "refresh": 30, "exchange": "coinbase",
		"show_label": true, "theme": "Dark", "show_icon": true, "show_decimals": true, "unit": "mBTC"
	}`)
	if status != http.StatusOK || env.Code != CodeOK {
		t.Fatalf("setup: status=%d code=%s data=%s", status, env.Code, env.Data)
	}

	status, env = do(t, r, http.MethodGet, "/api/widgets/42", "")
	if status != http.StatusOK {
		t.Fatalf("get: status=%d", status)
	}
	var view struct {
		ID         int    `json:"id"`
		Coin       string `json:"coin"`
		Layout     string `json:"layout"`
		LabelShown bool   `json:"label_shown"`
		IconShown  bool   `json:"icon_shown"`
		Unit       string `json:"unit"`
		Exchange   string `json:"exchange"`
	}
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.ID != 42 || view.Coin != "BTC" || view.Layout != "widget_layout_dark" || !view.LabelShown || !view.IconShown || view.Unit != "mBTC" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Exchange != string(prefs.DefaultExchange()) {
		t.Fatalf("Exchange = %q, want fallback", view.Exchange)
	}

	status, _ = do(t, r, http.MethodDelete, "/api/widgets/42", "")
	if status != http.StatusOK {
		t.Fatalf("delete: status=%d", status)
	}
	_, env = do(t, r, http.MethodGet, "/api/widgets/42", "")
	_ = json.Unmarshal(env.Data, &view)
	if view.LabelShown || view.Unit != "" || view.Layout != "widget_layout" {
		t.Fatalf("defaults not restored after delete: %+v", view)
	}
}

func TestWidgetRoutes_Validation(t *testing.T) {
	r := newTestRouter(t)

	status, env := do(t, r, http.MethodGet, "/api/widgets/abc", "")
	if status != http.StatusBadRequest || env.Code != CodeInvalidRequest {
		t.Fatalf("bad id: status=%d code=%s", status, env.Code)
	}

	status, env = do(t, r, http.MethodPut, "/api/widgets/1/fields/colour", `{"value":"red"}`)
	if status != http.StatusBadRequest || env.Code != CodeInvalidRequest {
		t.Fatalf("unknown key: status=%d code=%s", status, env.Code)
	}

	status, env = do(t, r, http.MethodPut, "/api/widgets/1", `{"coin":"BTC"}`)
	if status != http.StatusBadRequest || env.Code != CodeInvalidRequest {
		t.Fatalf("incomplete setup: status=%d code=%s", status, env.Code)
	}
}

func TestWidgetRoutes_TemporaryCleanup(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, http.MethodPut, "/api/widgets/5/fields/coin", `{"value":"ETH"}`)
	do(t, r, http.MethodPut, "/api/widgets/5/temporary", `{"temporary":true}`)

	_, env := do(t, r, http.MethodPost, "/api/widgets/5/cleanup", "")
	var res struct {
		Deleted bool `json:"deleted"`
	}
	if err := json.Unmarshal(env.Data, &res); err != nil || !res.Deleted {
		t.Fatalf("cleanup: %s (%v)", env.Data, err)
	}
}

func TestWidgetRoutes_LightTheme(t *testing.T) {
	r := newTestRouter(t)
	do(t, r, http.MethodPut, "/api/widgets/3/fields/theme", `{"value":"DayNight"}`)

	var res struct {
		Light bool `json:"light"`
	}
	_, env := do(t, r, http.MethodGet, "/api/widgets/3/light?night=true", "")
	_ = json.Unmarshal(env.Data, &res)
	if res.Light {
		t.Fatalf("DayNight at night should be dark")
	}
	_, env = do(t, r, http.MethodGet, "/api/widgets/3/light", "")
	_ = json.Unmarshal(env.Data, &res)
	if !res.Light {
		t.Fatalf("DayNight by day should be light")
	}
}

func TestHealthCheck_DegradedStore(t *testing.T) {
	r := newTestRouter(t)
	SetStoreProbe(func(_ context.Context) bool { return false })
	defer SetStoreProbe(nil)

	status, env := do(t, r, http.MethodGet, "/api/health", "")
	if status != http.StatusServiceUnavailable || env.Code != CodeUnavailable {
		t.Fatalf("status=%d code=%s", status, env.Code)
	}
}

func TestWidgetRoutes_NonFiniteTextSizeReadsUnset(t *testing.T) {
	r := newTestRouter(t)

	status, env := do(t, r, http.MethodPut, "/api/widgets/1/fields/portrait_text_size", `{"value":"Inf"}`)
	if status != http.StatusOK || env.Code != CodeOK {
		t.Fatalf("set field: status=%d code=%s", status, env.Code)
	}

	status, env = do(t, r, http.MethodGet, "/api/widgets/1", "")
	if status != http.StatusOK || env.Code != CodeOK {
		t.Fatalf("get: status=%d code=%s", status, env.Code)
	}
	var view struct {
		PortraitTextSize float32 `json:"portrait_text_size"`
	}
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.PortraitTextSize != prefs.TextSizeUnset {
		t.Fatalf("PortraitTextSize = %v, want unset", view.PortraitTextSize)
	}
}
