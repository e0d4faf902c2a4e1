package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"ContactForm_SheetsProject/internal/models"
	"ContactForm_SheetsProject/internal/sheets"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAppender struct {
	mu   sync.Mutex
	got  []models.Submission
	err  error
	conf *models.AppendConfirmation
}

func (f *fakeAppender) AppendRow(_ context.Context, sub models.Submission) (*models.AppendConfirmation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, sub)
	if f.err != nil {
		return nil, f.err
	}
	if f.conf != nil {
		return f.conf, nil
	}
	return &models.AppendConfirmation{SpreadsheetID: "sheet-123", UpdatedRange: "Sheet1!A2:D2", UpdatedRows: 1}, nil
}

func newTestRouter(t *testing.T, gw Appender) *gin.Engine {
	t.Helper()
	r, err := NewRouter(RouterConfig{Gateway: gw})
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	return r
}

func postJSON(r http.Handler, body string) (*httptest.ResponseRecorder, models.SubmitResponse) {
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp models.SubmitResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSubmitAppendsOnce(t *testing.T) {
	gw := &fakeAppender{}
	r := newTestRouter(t, gw)

	w, resp := postJSON(r, `{"name":"Jane Doe","phone":"+1-555-0100","email":"jane@example.com","message":"Hello"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !resp.OK || resp.Result == nil || resp.Result.UpdatedRange != "Sheet1!A2:D2" {
		t.Errorf("unexpected response %+v", resp)
	}
	if len(gw.got) != 1 {
		t.Fatalf("expected exactly one append, got %d", len(gw.got))
	}
	want := models.Submission{Name: "Jane Doe", Email: "jane@example.com", Phone: "+1-555-0100", Message: "Hello"}
	if gw.got[0] != want {
		t.Errorf("appended %+v, want %+v", gw.got[0], want)
	}
}

func TestSubmitPreservesWhitespaceAndEmptyMessage(t *testing.T) {
	gw := &fakeAppender{}
	r := newTestRouter(t, gw)

	w, _ := postJSON(r, `{"name":"  Jane  ","phone":" ","email":"\tjane@example.com","message":""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	want := models.Submission{Name: "  Jane  ", Email: "\tjane@example.com", Phone: " ", Message: ""}
	if gw.got[0] != want {
		t.Errorf("round trip lost data: got %#v, want %#v", gw.got[0], want)
	}
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	cases := map[string]struct {
		body string
		msg  string
	}{
		"name":      {`{"phone":"1","email":"a@b.c"}`, "name is required"},
		"phone":     {`{"name":"a","phone":"","email":"a@b.c"}`, "phone is required"},
		"email":     {`{"name":"a","phone":"1"}`, "email is required"},
		"all":       {`{}`, "name is required, email is required, phone is required"},
		"malformed": {`{"name":`, "invalid request body"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			gw := &fakeAppender{}
			r := newTestRouter(t, gw)

			w, resp := postJSON(r, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if resp.OK || resp.Error == nil || resp.Error.Kind != models.KindValidation {
				t.Fatalf("unexpected response %+v", resp)
			}
			if resp.Error.Message != tc.msg {
				t.Errorf("message = %q, want %q", resp.Error.Message, tc.msg)
			}
			if len(gw.got) != 0 {
				t.Errorf("gateway must not be called on validation failure")
			}
		})
	}
}

func TestSubmitAcceptsFormEncoded(t *testing.T) {
	gw := &fakeAppender{}
	r := newTestRouter(t, gw)

	form := url.Values{"name": {"Jane"}, "email": {"jane@example.com"}, "phone": {"555"}, "message": {"hi there"}}
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(gw.got) != 1 || gw.got[0].Message != "hi there" {
		t.Errorf("appended %+v", gw.got)
	}
}

func TestSubmitMapsGatewayErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		kind   models.ErrorKind
	}{
		{"auth", &sheets.Error{Kind: sheets.KindAuth, Err: errors.New("invalid_grant: secret key material")}, http.StatusBadGateway, models.KindAuth},
		{"not found", &sheets.Error{Kind: sheets.KindNotFound, Status: 404, Err: errors.New("no sheet")}, http.StatusBadGateway, models.KindNotFound},
		{"unavailable", &sheets.Error{Kind: sheets.KindRemoteUnavailable, Status: 429, Err: errors.New("quota")}, http.StatusServiceUnavailable, models.KindRemoteUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError, models.KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, &fakeAppender{err: tc.err})

			w, resp := postJSON(r, `{"name":"a","phone":"1","email":"a@b.c"}`)
			if w.Code != tc.status {
				t.Errorf("status = %d, want %d", w.Code, tc.status)
			}
			if resp.OK || resp.Error == nil || resp.Error.Kind != tc.kind {
				t.Fatalf("unexpected response %+v", resp)
			}
			if strings.Contains(w.Body.String(), "secret key material") {
				t.Error("gateway error details leaked to the client")
			}
		})
	}
}

func TestSubmitTwiceAppendsTwice(t *testing.T) {
	gw := &fakeAppender{}
	r := newTestRouter(t, gw)

	body := `{"name":"Jane Doe","phone":"+1-555-0100","email":"jane@example.com","message":"Hello"}`
	postJSON(r, body)
	postJSON(r, body)
	if len(gw.got) != 2 || gw.got[0] != gw.got[1] {
		t.Errorf("expected two identical appends, got %+v", gw.got)
	}
}

func TestIndexAndHealth(t *testing.T) {
	r := newTestRouter(t, &fakeAppender{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `id="contact-form"`) {
		t.Errorf("GET / status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/form.js", nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET /static/form.js status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("GET /healthz = %d %s", w.Code, w.Body.String())
	}
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	r := newTestRouter(t, &fakeAppender{})

	req := httptest.NewRequest(http.MethodOptions, "/api/submit", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRouterExposesMetricsByRoute(t *testing.T) {
	r, err := NewRouter(RouterConfig{Gateway: &fakeAppender{}, EnableMetrics: true})
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	for _, path := range []string{"/healthz?x=1", "/healthz?x=2", "/?junk=3"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `url="/healthz"`) {
		t.Errorf("expected route label for /healthz in metrics output")
	}
	if strings.Contains(body, "?junk=") || strings.Contains(body, "?x=") {
		t.Errorf("query strings leaked into metric labels")
	}
}
