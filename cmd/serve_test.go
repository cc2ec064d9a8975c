package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/config"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"https://beamxsolutions.com"},
		},
		Batch: config.BatchConfig{Concurrency: 2, PolishPerSecond: 100},
		Log:   config.LogConfig{Level: "info", Format: "json"},
	}
}

func testAnswers() model.AnswerSet {
	return model.AnswerSet{
		OwnerName:              "Amaka",
		BusinessName:           "Amaka Foods",
		Industry:               "Food & Beverage",
		YearsInBusiness:        "3-5 years",
		CashFlow:               "Breaking even",
		ProfitMargin:           "10-20%",
		CashRunway:             "3-6 months",
		PaymentSpeed:           "1-7 days",
		RepeatCustomerRate:     "50-70% repeat",
		AcquisitionChannel:     "Organic social media",
		PricingPower:           "Most customers would stay",
		FounderDependency:      "Can step away 1 week",
		ProcessDocumentation:   "Some key processes documented",
		InventoryTracking:      "Regular manual/spreadsheet",
		ExpenseAwareness:       "Know roughly",
		ProfitPerProduct:       "Good sense of what's profitable",
		PricingStrategy:        "Match competitors",
		BusinessTrajectory:     "Stable (±5%)",
		RevenueDiversification: "2-3 streams",
		DigitalPayments:        "50-80% digital",
		FormalRegistration:     "Registered, behind on taxes",
		Infrastructure:         "Mostly reliable with backups",
		BankingRelationship:    "Accounts but no credit",
		PrimaryPainPoint:       "Finding new customers",
	}
}

// fakeStore records saved assessments in memory.
type fakeStore struct {
	saved []*model.Assessment
}

func (f *fakeStore) SaveAssessment(_ context.Context, a *model.Assessment) error {
	f.saved = append(f.saved, a)
	return nil
}

func (f *fakeStore) GetAssessment(_ context.Context, id string) (*model.Assessment, error) {
	for _, a := range f.saved {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, eris.Errorf("assessment not found: %s", id)
}

func (f *fakeStore) ListAssessments(_ context.Context, _ store.AssessmentFilter) ([]model.Assessment, error) {
	out := make([]model.Assessment, 0, len(f.saved))
	for _, a := range f.saved {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeStore) Migrate(context.Context) error { return nil }
func (f *fakeStore) Ping(context.Context) error    { return nil }
func (f *fakeStore) Close() error                  { return nil }

func TestServe_Health(t *testing.T) {
	cfg = testConfig()
	router := newRouter(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestServe_PostAssessment(t *testing.T) {
	cfg = testConfig()
	fs := &fakeStore{}
	router := newRouter(nil, fs)

	body, err := json.Marshal(testAnswers())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Assessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 73.4, got.Report.TotalScore)
	assert.Equal(t, model.TierStableFoundation, got.Report.ReadinessTier)
	assert.NotEmpty(t, got.Advisory)
	assert.False(t, got.Polished)

	// Persisted with the same ID the response carries.
	require.Len(t, fs.saved, 1)
	assert.Equal(t, got.ID, fs.saved[0].ID)
}

func TestServe_PostAssessment_InvalidJSON(t *testing.T) {
	cfg = testConfig()
	router := newRouter(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewReader([]byte("{not json"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServe_PostAssessment_OutOfDomainAnswer(t *testing.T) {
	cfg = testConfig()
	router := newRouter(nil, nil)

	answers := testAnswers()
	answers.CashFlow = "not a real option"
	body, err := json.Marshal(answers)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "cashFlow")
}

func TestServe_GetAssessment(t *testing.T) {
	cfg = testConfig()
	fs := &fakeStore{saved: []*model.Assessment{{ID: "abc", Advisory: "text"}}}
	router := newRouter(nil, fs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/assessments/abc", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/assessments/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
