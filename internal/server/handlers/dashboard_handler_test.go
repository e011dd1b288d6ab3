package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/bizdash/internal/domain/models"
	"github.com/mamadbah2/bizdash/internal/latency"
	"github.com/mamadbah2/bizdash/internal/notify"
	"github.com/mamadbah2/bizdash/internal/service/access"
	"github.com/mamadbah2/bizdash/internal/service/reporting"
	"github.com/mamadbah2/bizdash/internal/store"
)

var testNow = time.Date(2025, 5, 21, 12, 0, 0, 0, time.UTC)

type fakeHistory struct {
	business models.Business
	limit    int64
}

func (f *fakeHistory) ListSummarySnapshots(_ context.Context, b models.Business, limit int64) ([]models.SummarySnapshot, error) {
	f.business, f.limit = b, limit
	return []models.SummarySnapshot{{Business: b, CreatedAt: testNow}}, nil
}

func newTestEngine(t *testing.T, opts ...Option) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := access.NewService(store.Seeded(),
		access.WithDelayer(latency.None),
		access.WithIDGenerator(&access.SequenceGenerator{Prefix: "t"}),
	)
	reports := reporting.NewService(svc, nil)
	h := NewDashboardHandler(svc, reports, nil, append([]Option{WithClock(func() time.Time { return testNow })}, opts...)...)

	r := gin.New()
	h.Register(r.Group("/api"))
	return r
}

func do(t *testing.T, engine http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type listBody[T any] struct {
	State         string           `json:"state"`
	Items         []T              `json:"items"`
	Metrics       json.RawMessage  `json:"metrics"`
	Notifications []notify.Outcome `json:"notifications"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return out
}

func TestListTransactions_BusinessFilter(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodGet, "/api/transactions?business=fish", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	body := decode[listBody[models.Transaction]](t, w)
	if body.State != "loaded" || len(body.Items) != 2 {
		t.Fatalf("body = %+v", body)
	}
	for _, tx := range body.Items {
		if tx.Business != models.BusinessFish {
			t.Fatalf("unexpected business %q", tx.Business)
		}
	}

	var metrics struct {
		Net string `json:"net"`
	}
	if err := json.Unmarshal(body.Metrics, &metrics); err != nil || metrics.Net != "280" {
		t.Fatalf("metrics = %s (%v)", body.Metrics, err)
	}

	if w := do(t, engine, http.MethodGet, "/api/transactions?business=cattle", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid business status = %d", w.Code)
	}
}

func TestCreateCustomer(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodPost, "/api/customers", `{"name":"Ada Lovelace","email":"ada@example.com","phone":"555-0199"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	body := decode[listBody[models.Customer]](t, w)
	if len(body.Items) != 5 {
		t.Fatalf("expected refetched list of 5, got %d", len(body.Items))
	}
	created := body.Items[4]
	if created.ID != "t-1" || created.Status != models.CustomerActive || created.TotalOrders != 0 {
		t.Fatalf("created = %+v", created)
	}
	if len(body.Notifications) != 1 || body.Notifications[0].Description != "Customer added successfully" {
		t.Fatalf("notifications = %+v", body.Notifications)
	}
}

func TestCreate_ValidationFailure(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodPost, "/api/suppliers", `{"name":"A","email":"nope","rating":9}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode[errorResponse](t, w)
	for _, field := range []string{"name", "email", "rating", "contactPerson", "phone", "productCategory"} {
		if _, ok := body.Fields[field]; !ok {
			t.Fatalf("missing field error %q in %+v", field, body.Fields)
		}
	}
	if body.Fields["rating"] != "Rating must be between 1 and 5" {
		t.Fatalf("rating message = %q", body.Fields["rating"])
	}
	if len(body.Notifications) != 0 {
		t.Fatalf("validation failures must not notify: %+v", body.Notifications)
	}

	if w := do(t, engine, http.MethodPost, "/api/suppliers", `{not json`); w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body status = %d", w.Code)
	}
}

func TestUpdateTask(t *testing.T) {
	engine := newTestEngine(t)
	form := `{"title":"Prepare Q3 Report","assignee":"Alice Wonderland","dueDate":"2025-07-15T00:00:00Z","status":"Done","priority":"High"}`

	w := do(t, engine, http.MethodPut, "/api/tasks/1", form)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	body := decode[listBody[models.Task]](t, w)
	if body.Items[0].Status != models.TaskDone {
		t.Fatalf("task not updated: %+v", body.Items[0])
	}
	if body.Notifications[0].Description != "Task updated successfully" {
		t.Fatalf("notifications = %+v", body.Notifications)
	}

	if w := do(t, engine, http.MethodPut, "/api/tasks/404", form); w.Code != http.StatusNotFound {
		t.Fatalf("unknown id status = %d", w.Code)
	}
}

func TestDeleteEquipment_IsIdempotent(t *testing.T) {
	engine := newTestEngine(t)

	for i := 0; i < 2; i++ {
		w := do(t, engine, http.MethodDelete, "/api/equipment/eq6", "")
		if w.Code != http.StatusOK {
			t.Fatalf("delete #%d status = %d", i+1, w.Code)
		}
		body := decode[listBody[models.EquipmentItem]](t, w)
		if len(body.Items) != 5 {
			t.Fatalf("expected 5 items, got %d", len(body.Items))
		}
		if body.Notifications[0].Description != "Equipment deleted successfully" {
			t.Fatalf("notifications = %+v", body.Notifications)
		}
	}
}

func TestSummaries(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodGet, "/api/summaries/honey", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode[summaryView](t, w)
	if body.Info.Name != "Honey" || body.Summary.Profit != 8000 {
		t.Fatalf("summary = %+v", body)
	}

	if w := do(t, engine, http.MethodGet, "/api/summaries/cattle", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid business status = %d", w.Code)
	}
	if w := do(t, engine, http.MethodGet, "/api/summaries/honey/history", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("history without store status = %d", w.Code)
	}
}

func TestSummaryHistory(t *testing.T) {
	history := &fakeHistory{}
	engine := newTestEngine(t, WithHistory(history))

	w := do(t, engine, http.MethodGet, "/api/summaries/fish/history?limit=3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if history.business != models.BusinessFish || history.limit != 3 {
		t.Fatalf("history called with %q %d", history.business, history.limit)
	}
}

func TestBusinessDashboard(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodGet, "/api/businesses/weed", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Info         models.BusinessInfo            `json:"info"`
		Summary      models.SummaryData             `json:"summary"`
		Transactions listBody[models.Transaction]   `json:"transactions"`
		Compliance   listBody[models.ComplianceDoc] `json:"compliance"`
		Strains      *listBody[models.Strain]       `json:"strains"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Info.Name != "Legal Weed" || body.Summary.TotalSales != 25000 {
		t.Fatalf("header = %+v %+v", body.Info, body.Summary)
	}
	if len(body.Transactions.Items) != 2 || len(body.Compliance.Items) != 1 {
		t.Fatalf("sections = %d transactions, %d documents", len(body.Transactions.Items), len(body.Compliance.Items))
	}
	if body.Strains == nil || len(body.Strains.Items) != 3 {
		t.Fatal("weed dashboard should include strains")
	}

	w = do(t, engine, http.MethodGet, "/api/businesses/fish", "")
	if strings.Contains(w.Body.String(), `"strains"`) {
		t.Fatal("fish dashboard must not include strains")
	}
}

func TestReports(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodGet, "/api/reports?from=2025-05-01&to=2025-05-31", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Reports []reporting.BusinessReport `json:"reports"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Reports) != 4 || body.Reports[1].Derived.Profit != 1050 {
		t.Fatalf("reports = %+v", body.Reports)
	}

	if w := do(t, engine, http.MethodGet, "/api/reports?from=May", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad date status = %d", w.Code)
	}
}
