package form

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"ContactForm_SheetsProject/internal/handler"
	"ContactForm_SheetsProject/internal/models"

	"github.com/gin-gonic/gin"
)

func TestClientPostsJSONOnce(t *testing.T) {
	var (
		mu     sync.Mutex
		posts  int
		header http.Header
		body   []byte
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		posts++
		header = r.Header.Clone()
		body, _ = io.ReadAll(r.Body)
		mu.Unlock()
		if r.Method != http.MethodPost || r.URL.Path != SubmitPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"spreadsheet_id":"sheet-123","updated_range":"Sheet1!A2:D2","updated_rows":1}}`))
	}))
	defer ts.Close()

	f := filled(t)
	conf, err := f.Submit(context.Background(), NewClient(ts.URL+"/", ts.Client()))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if conf.UpdatedRange != "Sheet1!A2:D2" {
		t.Errorf("confirmation = %+v", conf)
	}

	mu.Lock()
	defer mu.Unlock()
	if posts != 1 {
		t.Fatalf("expected exactly 1 POST, got %d", posts)
	}
	if ct := header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if accept := header.Get("Accept"); accept != "application/json" {
		t.Errorf("Accept = %q", accept)
	}
	var got models.Submission
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	want := models.Submission{Name: "Jane Doe", Email: "jane@example.com", Phone: "+1-555-0100", Message: "Hello"}
	if got != want {
		t.Errorf("body = %+v, want %+v", got, want)
	}
	var raw map[string]interface{}
	_ = json.Unmarshal(body, &raw)
	if len(raw) != 4 {
		t.Errorf("body should carry exactly four fields, got %v", raw)
	}
}

func TestClientFailureEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"ok":false,"error":{"kind":"remote_unavailable","message":"try again"}}`))
	}))
	defer ts.Close()

	f := filled(t)
	before := f.Record()
	_, err := f.Submit(context.Background(), NewClient(ts.URL, ts.Client()))

	var serr *SubmitError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SubmitError, got %v", err)
	}
	if serr.Status != http.StatusServiceUnavailable || serr.Kind != models.KindRemoteUnavailable || serr.Message != "try again" {
		t.Errorf("unexpected error %+v", serr)
	}
	if f.Record() != before {
		t.Error("fields must stay intact after a failed submission")
	}
}

func TestClientNonJSONResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, ts.Client()).Submit(context.Background(), models.Submission{Name: "a"})
	var serr *SubmitError
	if !errors.As(err, &serr) || serr.Status != http.StatusBadGateway || serr.Kind != models.KindInternal {
		t.Errorf("unexpected error %v", err)
	}
}

func TestClientTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewClient(url, nil).Submit(context.Background(), models.Submission{Name: "a"})
	var serr *SubmitError
	if !errors.As(err, &serr) || serr.Kind != KindTransport || serr.Err == nil {
		t.Errorf("expected transport SubmitError, got %v", err)
	}
}

type captureAppender struct {
	mu  sync.Mutex
	got []models.Submission
}

func (c *captureAppender) AppendRow(_ context.Context, sub models.Submission) (*models.AppendConfirmation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.got = append(c.got, sub)
	return &models.AppendConfirmation{UpdatedRows: 1}, nil
}

func TestRoundTripThroughEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gw := &captureAppender{}
	router, err := handler.NewRouter(handler.RouterConfig{Gateway: gw})
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(router)
	defer ts.Close()

	f := New()
	_ = f.Set(FieldName, "  Jane  ")
	_ = f.Set(FieldPhone, "\t+1 555 0100 ")
	_ = f.Set(FieldEmail, "jane@example.com")
	_ = f.Set(FieldMessage, "")
	want := f.Record()

	if _, err := f.Submit(context.Background(), NewClient(ts.URL, ts.Client())); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	gw.mu.Lock()
	defer gw.mu.Unlock()
	if len(gw.got) != 1 || gw.got[0] != want {
		t.Errorf("endpoint received %+v, want %+v", gw.got, want)
	}
	if f.Get(FieldName) != "" {
		t.Error("form should be cleared after a successful round trip")
	}
}
