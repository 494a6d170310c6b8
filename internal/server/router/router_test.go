package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/repository/memory"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/server/handlers"
	recordsvc "github.com/Mamlesh18/apex-gaming-cafe/internal/service/records"
	reportingsvc "github.com/Mamlesh18/apex-gaming-cafe/internal/service/reporting"
)

func newTestRouter() *gin.Engine {
	store := memory.NewMemoryStore()
	recordsSvc := recordsvc.NewService(store, []string{"Mamlesh", "Varun", "Venu"}, nil)
	reportingSvc := reportingsvc.NewService(store, nil)

	return New(Handlers{
		Sessions:  handlers.NewSessionHandler(recordsSvc, nil),
		Food:      handlers.NewFoodHandler(recordsSvc, nil),
		Visits:    handlers.NewVisitHandler(recordsSvc, nil),
		Settings:  handlers.NewSettingsHandler(recordsSvc, nil),
		Analytics: handlers.NewAnalyticsHandler(reportingSvc, nil),
	}, nil)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body, operator string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if operator != "" {
		req.Header.Set("X-Operator", operator)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionLifecycle(t *testing.T) {
	engine := newTestRouter()

	payload := `{"date":"2025-03-10","room_type":"private","duration_hours":2,"num_people":3,"price_per_hour":100}`
	rec := doJSON(t, engine, http.MethodPost, "/api/gaming-sessions", payload, "Mamlesh")
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID    string  `json:"id"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 600.0, created.Total, "response echoes the derived total")
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, engine, http.MethodGet, "/api/gaming-sessions?date=2025-03-10", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)

	rec = doJSON(t, engine, http.MethodDelete, "/api/gaming-sessions/"+created.ID, "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/gaming-sessions/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSessionRequiresOperator(t *testing.T) {
	payload := `{"date":"2025-03-10","room_type":"private"}`
	rec := doJSON(t, newTestRouter(), http.MethodPost, "/api/gaming-sessions", payload, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFoodEntryRejectedWithoutItems(t *testing.T) {
	payload := `{"date":"2025-03-10","items":[],"vendor_cost":30}`
	rec := doJSON(t, newTestRouter(), http.MethodPost, "/api/food-entries", payload, "Venu")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsDaily(t *testing.T) {
	engine := newTestRouter()

	session := `{"date":"2025-03-10","room_type":"private","duration_hours":2,"num_people":3,"price_per_hour":100}`
	require.Equal(t, http.StatusCreated, doJSON(t, engine, http.MethodPost, "/api/gaming-sessions", session, "Mamlesh").Code)

	entry := `{"date":"2025-03-10","items":[{"name":"Maggi","price":50},{"name":"Tea","price":20}],"vendor_cost":30}`
	require.Equal(t, http.StatusCreated, doJSON(t, engine, http.MethodPost, "/api/food-entries", entry, "Venu").Code)

	rec := doJSON(t, engine, http.MethodGet, "/api/analytics/daily?date=2025-03-10", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary struct {
		GamingRevenue float64 `json:"gaming_revenue"`
		FoodProfit    float64 `json:"food_profit"`
		TotalProfit   float64 `json:"total_profit"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 600.0, summary.GamingRevenue)
	assert.Equal(t, 40.0, summary.FoodProfit)
	assert.Equal(t, 640.0, summary.TotalProfit)
}

func TestAnalyticsRange(t *testing.T) {
	engine := newTestRouter()

	session := `{"date":"2025-03-11","room_type":"normal","price_per_hour":75}`
	require.Equal(t, http.StatusCreated, doJSON(t, engine, http.MethodPost, "/api/gaming-sessions", session, "Mamlesh").Code)

	rec := doJSON(t, engine, http.MethodGet, "/api/analytics/range?start=2025-03-10&end=2025-03-16", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Summary struct {
			TotalProfit float64 `json:"total_profit"`
		} `json:"summary"`
		DailyData []struct {
			Date string `json:"date"`
		} `json:"daily_data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.DailyData, 7, "one entry per calendar day, gaps filled")
	assert.Equal(t, 75.0, result.Summary.TotalProfit)
}

func TestScheduleWeek(t *testing.T) {
	engine := newTestRouter()

	visit := `{"date":"2025-03-10","user":"Mamlesh","start_time":"11:00","end_time":"17:00"}`
	require.Equal(t, http.StatusCreated, doJSON(t, engine, http.MethodPost, "/api/visits", visit, "Mamlesh").Code)

	rec := doJSON(t, engine, http.MethodGet, "/api/schedule/week?date=2025-03-12", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var grid struct {
		WeekStart string `json:"week_start"`
		Hours     []string
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grid))
	assert.Equal(t, "2025-03-10", grid.WeekStart)
}

func TestSettingsReplace(t *testing.T) {
	engine := newTestRouter()

	rec := doJSON(t, engine, http.MethodGet, "/api/settings", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"private_price":100`)

	payload := `{"private_price":120,"normal_price":80,"durations":[1,2,3]}`
	rec = doJSON(t, engine, http.MethodPut, "/api/settings", payload, "Mamlesh")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/settings", "", "")
	assert.Contains(t, rec.Body.String(), `"private_price":120`)
}

func TestVisitRejectsInvertedInterval(t *testing.T) {
	visit := `{"date":"2025-03-10","user":"Mamlesh","start_time":"17:00","end_time":"11:00"}`
	rec := doJSON(t, newTestRouter(), http.MethodPost, "/api/visits", visit, "Mamlesh")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
