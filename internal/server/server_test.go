package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khmercontent/reelkit/internal/angles"
	"github.com/khmercontent/reelkit/internal/generator"
	"github.com/khmercontent/reelkit/internal/models"
	"github.com/khmercontent/reelkit/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeGenerator struct {
	immersion    *models.ImmersionData
	immersionErr error
	scriptText   string
	scriptErr    error
	topics       []string
	topicsErr    error
}

func (f *fakeGenerator) GenerateImmersion(ctx context.Context, client *models.Client) (*models.ImmersionData, error) {
	return f.immersion, f.immersionErr
}

func (f *fakeGenerator) GenerateScript(ctx context.Context, client *models.Client, angle angles.Angle, typology *models.UserTypology, guidance string) (string, error) {
	return f.scriptText, f.scriptErr
}

func (f *fakeGenerator) GenerateSaleScript(ctx context.Context, client *models.Client, angle angles.Angle, typology *models.UserTypology, guidance string) (string, error) {
	return "sale: " + f.scriptText, f.scriptErr
}

func (f *fakeGenerator) GenerateBrandingTopics(ctx context.Context, client *models.Client) ([]string, error) {
	return f.topics, f.topicsErr
}

func (f *fakeGenerator) GenerateBrandingScript(ctx context.Context, topic string, angle *angles.Angle) (string, error) {
	return "branding: " + topic, f.scriptErr
}

// fakeStore keeps everything in maps. Errors can be forced per call site
// with failWith.
type fakeStore struct {
	nextID     int
	clients    map[string]*models.Client
	scripts    map[string]*models.Script
	branding   map[string]*models.BrandingScript
	categories map[string]*models.ExpenseCategory
	expenses   map[string]*models.Expense
	failWith   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clients:    map[string]*models.Client{},
		scripts:    map[string]*models.Script{},
		branding:   map[string]*models.BrandingScript{},
		categories: map[string]*models.ExpenseCategory{},
		expenses:   map[string]*models.Expense{},
	}
}

func (f *fakeStore) id(table string) string {
	f.nextID++
	return fmt.Sprintf("%s:%d", table, f.nextID)
}

func (f *fakeStore) ListClients(userID string) ([]models.Client, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Client
	for _, c := range f.clients {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeStore) GetClient(id string) (*models.Client, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	c, ok := f.clients[id]
	if !ok {
		return nil, &store.QueryError{Collection: "clients", Err: errors.New("not found")}
	}
	copied := *c
	return &copied, nil
}

func (f *fakeStore) CreateClient(client *models.Client) (*models.Client, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	client.ID = f.id("clients")
	f.clients[client.ID] = client
	return client, nil
}

func (f *fakeStore) UpdateClient(id string, updates map[string]interface{}) (*models.Client, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	c, ok := f.clients[id]
	if !ok {
		return nil, &store.WriteError{Collection: "clients", Err: errors.New("not found")}
	}
	if v, ok := updates["product_name"].(string); ok {
		c.ProductName = v
	}
	if v, ok := updates["status"].(string); ok {
		c.Status = v
	}
	return c, nil
}

func (f *fakeStore) SetImmersion(id string, immersion *models.ImmersionData) (*models.Client, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	c, ok := f.clients[id]
	if !ok {
		return nil, &store.WriteError{Collection: "clients", Err: errors.New("not found")}
	}
	c.ImmersionData = immersion
	return c, nil
}

func (f *fakeStore) DeleteClient(id string) error {
	delete(f.clients, id)
	return nil
}

func (f *fakeStore) ListScripts(clientID string) ([]models.Script, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Script
	for _, s := range f.scripts {
		if s.ClientID == clientID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateScript(script *models.Script) (*models.Script, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	script.ID = f.id("scripts")
	f.scripts[script.ID] = script
	return script, nil
}

func (f *fakeStore) UpdateScript(id, content string) (*models.Script, error) {
	s, ok := f.scripts[id]
	if !ok {
		return nil, &store.WriteError{Collection: "scripts", Err: errors.New("not found")}
	}
	s.Content = content
	return s, nil
}

func (f *fakeStore) DeleteScript(id string) error {
	delete(f.scripts, id)
	return nil
}

func (f *fakeStore) ListBrandingScripts(clientID string) ([]models.BrandingScript, error) {
	var out []models.BrandingScript
	for _, s := range f.branding {
		if s.ClientID == clientID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateBrandingScript(script *models.BrandingScript) (*models.BrandingScript, error) {
	script.ID = f.id("branding_scripts")
	f.branding[script.ID] = script
	return script, nil
}

func (f *fakeStore) UpdateBrandingScript(id, content string) (*models.BrandingScript, error) {
	s, ok := f.branding[id]
	if !ok {
		return nil, &store.WriteError{Collection: "branding_scripts", Err: errors.New("not found")}
	}
	s.Content = content
	return s, nil
}

func (f *fakeStore) DeleteBrandingScript(id string) error {
	delete(f.branding, id)
	return nil
}

func (f *fakeStore) ListExpenseCategories(userID string) ([]models.ExpenseCategory, error) {
	var out []models.ExpenseCategory
	for _, c := range f.categories {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateExpenseCategory(category *models.ExpenseCategory) (*models.ExpenseCategory, error) {
	category.ID = f.id("expense_categories")
	f.categories[category.ID] = category
	return category, nil
}

func (f *fakeStore) DeleteExpenseCategory(id string) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeStore) ListExpensesPage(userID string, page int) (*store.ExpensePage, error) {
	all, _ := f.ListAllExpenses(userID)
	start := page * store.ExpensePageSize
	end := start + store.ExpensePageSize
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}
	return &store.ExpensePage{Expenses: all[start:end], Page: page, Total: len(all)}, nil
}

func (f *fakeStore) ListAllExpenses(userID string) ([]models.Expense, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Expense
	for _, e := range f.expenses {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateExpense(expense *models.Expense) (*models.Expense, error) {
	expense.ID = f.id("expenses")
	f.expenses[expense.ID] = expense
	return expense, nil
}

func (f *fakeStore) DeleteExpense(id string) error {
	delete(f.expenses, id)
	return nil
}

func sampleImmersion() *models.ImmersionData {
	typologies := make([]models.UserTypology, 9)
	for i := range typologies {
		typologies[i] = models.UserTypology{
			TypologyName:     fmt.Sprintf("Typology %d", i+1),
			Mindset:          "m",
			CorePain:         "p",
			CoreDesire:       "d",
			BuyingTrigger:    "t",
			BestContentAngle: "a",
			CTAStyle:         "c",
		}
	}
	return &models.ImmersionData{UserTypologies: typologies}
}

type testEnv struct {
	router *gin.Engine
	store  *fakeStore
	gen    *fakeGenerator
}

func newTestEnv() *testEnv {
	st := newFakeStore()
	gen := &fakeGenerator{
		immersion:  sampleImmersion(),
		scriptText: "generated script",
		topics:     []string{"A", "B", "C", "D", "E"},
	}
	srv := New(st, gen, zerolog.Nop())
	return &testEnv{router: srv.Router(), store: st, gen: gen}
}

func (te *testEnv) request(t *testing.T, method, path string, payload interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-1")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	te.router.ServeHTTP(rec, req)
	return rec
}

func (te *testEnv) seedClient(t *testing.T, immersion *models.ImmersionData) *models.Client {
	t.Helper()
	client := &models.Client{
		UserID:          "user-1",
		ProductName:     "Collagen Drink",
		Country:         "Cambodia",
		Price:           "$25",
		Status:          models.StatusActive,
		Problems:        []string{"a", "b", "c"},
		TargetCustomers: "Women 25-40",
		Warranty:        "14 days",
		Promotion:       "B2G1",
		Uniqueness:      "drinkable",
		ImmersionData:   immersion,
	}
	_, err := te.store.CreateClient(client)
	require.NoError(t, err)
	return client
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	te := newTestEnv()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	te.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestUserHeaderRequired(t *testing.T) {
	te := newTestEnv()
	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	rec := httptest.NewRecorder()
	te.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestIDEchoed(t *testing.T) {
	te := newTestEnv()
	rec := te.request(t, http.MethodGet, "/api/clients", nil, map[string]string{"X-Request-ID": "req-42"})
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))

	rec = te.request(t, http.MethodGet, "/api/clients", nil, nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCreateClient(t *testing.T) {
	te := newTestEnv()

	rec := te.request(t, http.MethodPost, "/api/clients", map[string]interface{}{
		"product_name":     "Collagen Drink",
		"country":          "Cambodia",
		"price":            "$25",
		"problems":         []string{"a", "b", "c"},
		"target_customers": "Women 25-40",
		"warranty":         "14 days",
		"promotion":        "B2G1",
		"uniqueness":       "drinkable",
	}, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "Active", body["status"])
	assert.Equal(t, "user-1", body["user_id"])
}

func TestCreateClientValidation(t *testing.T) {
	te := newTestEnv()

	rec := te.request(t, http.MethodPost, "/api/clients", map[string]interface{}{
		"product_name": "Incomplete",
		"problems":     []string{"only one"},
	}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	fields := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "problems")
	assert.Contains(t, fields, "country")

	// Nothing was written.
	assert.Empty(t, te.store.clients)
}

func TestGenerateImmersionEndpoint(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, nil)

	rec := te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/immersion", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	immersion := body["immersion_data"].(map[string]interface{})
	assert.Len(t, immersion["userTypologies"], 9)
}

func TestGenerateImmersionTransportFailure(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, nil)
	te.gen.immersionErr = &generator.TransportError{Op: "generate immersion", Err: errors.New("down")}

	rec := te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/immersion", nil, nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Nil(t, te.store.clients[client.ID].ImmersionData)
}

func TestGenerateImmersionParseFailure(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, nil)
	te.gen.immersionErr = &generator.ParseError{Op: "generate immersion", Err: errors.New("bad json")}

	rec := te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/immersion", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteImmersionKeepsScripts(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, sampleImmersion())
	_, err := te.store.CreateScript(&models.Script{ClientID: client.ID, UserID: "user-1", AngleTitle: "Curiosity", Content: "x"})
	require.NoError(t, err)

	rec := te.request(t, http.MethodDelete, "/api/clients/"+client.ID+"/immersion", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Nil(t, te.store.clients[client.ID].ImmersionData)
	assert.Len(t, te.store.scripts, 1)
}

func TestExportImmersion(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, sampleImmersion())

	rec := te.request(t, http.MethodGet, "/api/clients/"+client.ID+"/immersion/export", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Avatar_Immersion_Collagen_Drink.txt")
	assert.Contains(t, rec.Body.String(), "CUSTOMER AVATAR IMMERSION REPORT")
}

func TestExportImmersionWithoutReport(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, nil)

	rec := te.request(t, http.MethodGet, "/api/clients/"+client.ID+"/immersion/export", nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGenerateScriptEndpoint(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, sampleImmersion())

	rec := te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/scripts/generate", map[string]interface{}{
		"typology": "Typology 1",
		"angle":    "Curiosity",
		"guidance": "mention the promo",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "generated script", body["content"])

	// Generation never writes.
	assert.Empty(t, te.store.scripts)
}

func TestGenerateSaleScriptEndpoint(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, sampleImmersion())

	rec := te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/scripts/generate", map[string]interface{}{
		"typology": "Typology 2",
		"angle":    "Urgency",
		"kind":     "sale",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "sale: generated script", body["content"])
}

func TestGenerateScriptWithoutTypology(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, sampleImmersion())

	rec := te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/scripts/generate", map[string]interface{}{
		"typology": "No Such Typology",
		"angle":    "Curiosity",
	}, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGenerateScriptWithoutImmersion(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, nil)

	rec := te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/scripts/generate", map[string]interface{}{
		"typology": "Typology 1",
		"angle":    "Curiosity",
	}, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSaveAndFilterScripts(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, sampleImmersion())

	rec := te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/scripts", map[string]interface{}{
		"angle_title":   "Curiosity",
		"typology_name": "Typology 1",
		"content":       "the script",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/scripts", map[string]interface{}{
		"angle_title": "Urgency",
		"content":     "other script",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = te.request(t, http.MethodGet, "/api/clients/"+client.ID+"/scripts?angle=Curiosity", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	scripts := body["scripts"].([]interface{})
	require.Len(t, scripts, 1)
	assert.Equal(t, "the script", scripts[0].(map[string]interface{})["content"])
}

func TestSaveScriptUnknownAngle(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, nil)

	rec := te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/scripts", map[string]interface{}{
		"angle_title": "Made Up",
		"content":     "x",
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestContentPlanOrdering(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, nil)
	for i := 0; i < 3; i++ {
		_, err := te.store.CreateScript(&models.Script{ClientID: client.ID, AngleTitle: "Urgency", Content: "x"})
		require.NoError(t, err)
	}
	_, err := te.store.CreateScript(&models.Script{ClientID: client.ID, AngleTitle: "Curiosity", Content: "x"})
	require.NoError(t, err)

	rec := te.request(t, http.MethodGet, "/api/clients/"+client.ID+"/content-plan", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	plan := body["angles"].([]interface{})
	require.Len(t, plan, len(angles.Content))

	first := plan[0].(map[string]interface{})
	assert.Equal(t, "Urgency", first["title"])
	assert.Equal(t, float64(3), first["script_count"])
	second := plan[1].(map[string]interface{})
	assert.Equal(t, "Curiosity", second["title"])
}

func TestBrandingTopics(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, sampleImmersion())

	rec := te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/branding/topics", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Len(t, body["topics"], 5)
}

func TestBrandingScriptGeneration(t *testing.T) {
	te := newTestEnv()
	client := te.seedClient(t, sampleImmersion())

	rec := te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/branding/scripts/generate", map[string]interface{}{
		"topic": "5 mistakes new sellers make",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "branding: 5 mistakes new sellers make", body["content"])

	rec = te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/branding/scripts/generate", map[string]interface{}{
		"topic": "something",
		"angle": "not a branding angle",
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = te.request(t, http.MethodPost, "/api/clients/"+client.ID+"/branding/scripts/generate", map[string]interface{}{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExpenseEndpoints(t *testing.T) {
	te := newTestEnv()

	rec := te.request(t, http.MethodPost, "/api/expense-categories", map[string]interface{}{
		"name":  "Ads",
		"color": "#ff4d4f",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = te.request(t, http.MethodPost, "/api/expenses", map[string]interface{}{
		"amount": 10,
		"type":   "expense",
		"date":   time.Now().Format(time.RFC3339),
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = te.request(t, http.MethodPost, "/api/expenses", map[string]interface{}{
		"amount": 5,
		"type":   "income",
		"date":   time.Now().Format(time.RFC3339),
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = te.request(t, http.MethodGet, "/api/expense-summary", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, 10.0, summary["total_expenses"])
	assert.Equal(t, 5.0, summary["total_income"])
	assert.Equal(t, -5.0, summary["net_balance"])
}

func TestExpenseRejectsNonPositiveAmount(t *testing.T) {
	te := newTestEnv()

	rec := te.request(t, http.MethodPost, "/api/expenses", map[string]interface{}{
		"amount": 0,
		"type":   "expense",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExpenseSummaryBadWindow(t *testing.T) {
	te := newTestEnv()

	rec := te.request(t, http.MethodGet, "/api/expense-summary?window=yearly", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = te.request(t, http.MethodGet, "/api/expense-summary?window=range&from=2026-01-01", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreFailureIsOpaque(t *testing.T) {
	te := newTestEnv()
	te.store.failWith = &store.QueryError{Collection: "clients", Err: errors.New("connection reset")}

	rec := te.request(t, http.MethodGet, "/api/clients", nil, nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "storage failure", body["error"])
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
