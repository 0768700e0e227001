package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/conversor/internal/domain/models"
	"github.com/guttosm/conversor/internal/provider"
	"github.com/guttosm/conversor/internal/service"
)

type mockQuoteService struct {
	quote   models.Quote
	history []models.RawHistoryPoint
	chart   []models.NormalizedPoint
	recent  []models.Quote
	err     error

	gotFrom, gotTo models.Currency
	gotPeriod      models.Period
	gotAmount      float64
	gotLimit       int
}

func (m *mockQuoteService) record(from, to models.Currency) {
	m.gotFrom, m.gotTo = from, to
}

func (m *mockQuoteService) GetQuote(_ context.Context, from, to models.Currency) (models.Quote, error) {
	m.record(from, to)
	return m.quote, m.err
}

func (m *mockQuoteService) GetHistory(_ context.Context, from, to models.Currency, p models.Period) ([]models.RawHistoryPoint, error) {
	m.record(from, to)
	m.gotPeriod = p
	return m.history, m.err
}

func (m *mockQuoteService) GetChart(_ context.Context, from, to models.Currency, p models.Period) ([]models.NormalizedPoint, error) {
	m.record(from, to)
	m.gotPeriod = p
	return m.chart, m.err
}

func (m *mockQuoteService) Convert(_ context.Context, from, to models.Currency, amount float64) (models.Conversion, error) {
	m.record(from, to)
	m.gotAmount = amount
	if m.err != nil {
		return models.Conversion{}, m.err
	}
	return models.Conversion{From: from, To: to, Amount: amount, Rate: m.quote.Rate, Result: amount * m.quote.Rate}, nil
}

func (m *mockQuoteService) GetPanel(_ context.Context, from, to models.Currency, p models.Period, amount float64) (*service.Panel, error) {
	m.record(from, to)
	m.gotPeriod, m.gotAmount = p, amount
	if m.err != nil {
		return nil, m.err
	}
	return &service.Panel{
		Quote:      m.quote,
		Conversion: models.Conversion{From: from, To: to, Amount: amount, Rate: m.quote.Rate, Result: amount * m.quote.Rate},
		Period:     p,
		Chart:      m.chart,
	}, nil
}

func (m *mockQuoteService) RecentQuotes(_ context.Context, from, to models.Currency, limit int) ([]models.Quote, error) {
	m.record(from, to)
	m.gotLimit = limit
	return m.recent, m.err
}

var _ service.QuoteService = (*mockQuoteService)(nil)

func setupRouterWithMock(s service.QuoteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	r.GET("/cotacao", h.GetQuote)
	r.GET("/historico", h.GetHistory)
	v1 := r.Group("/api/v1")
	v1.GET("/grafico", h.GetChart)
	v1.GET("/conversao", h.Convert)
	v1.GET("/painel", h.GetPanel)
	v1.GET("/cotacao/recentes", h.RecentQuotes)
	v1.GET("/moedas", h.ListCurrencies)
	return r
}

func get(r http.Handler, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestGetQuote_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockQuoteService
		query  string
		status int
		body   string
	}{
		{name: "missing de", svc: &mockQuoteService{}, query: "/cotacao?para=BRL", status: http.StatusBadRequest},
		{name: "missing para", svc: &mockQuoteService{}, query: "/cotacao?de=USD", status: http.StatusBadRequest},
		{name: "unsupported currency", svc: &mockQuoteService{}, query: "/cotacao?de=XYZ&para=BRL", status: http.StatusBadRequest},
		{name: "upstream failure", svc: &mockQuoteService{err: fmt.Errorf("fetch: %w", provider.ErrUpstream)}, query: "/cotacao?de=USD&para=BRL", status: http.StatusBadGateway},
		{name: "unexpected failure", svc: &mockQuoteService{err: errors.New("db down")}, query: "/cotacao?de=USD&para=BRL", status: http.StatusInternalServerError},
		{name: "success lowercase", svc: &mockQuoteService{quote: models.Quote{Bid: "5.4321", Rate: 5.4321}}, query: "/cotacao?de=usd&para=brl", status: http.StatusOK, body: `{"cotacao":"5.4321"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(setupRouterWithMock(tc.svc), tc.query)
			require.Equal(t, tc.status, w.Code, w.Body.String())
			if tc.body != "" {
				assert.JSONEq(t, tc.body, w.Body.String())
				assert.Equal(t, models.Currency("USD"), tc.svc.gotFrom)
				assert.Equal(t, models.Currency("BRL"), tc.svc.gotTo)
			}
		})
	}
}

func TestGetHistory(t *testing.T) {
	svc := &mockQuoteService{history: []models.RawHistoryPoint{{Timestamp: "1700000000", Valor: "5.1"}}}
	r := setupRouterWithMock(svc)

	w := get(r, "/historico?de=USD&para=BRL&periodo=5d")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"dados":[{"timestamp":"1700000000","valor":"5.1"}]}`, w.Body.String())
	assert.Equal(t, models.Period5D, svc.gotPeriod)

	w = get(r, "/historico?de=USD&para=BRL")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.Period1D, svc.gotPeriod)

	w = get(r, "/historico?de=USD&para=BRL&periodo=2W")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHistory_EmptyIsArray(t *testing.T) {
	w := get(setupRouterWithMock(&mockQuoteService{}), "/historico?de=USD&para=BRL&periodo=1M")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"dados":[]}`, w.Body.String())
}

func TestGetHistory_MissingAPIKey(t *testing.T) {
	svc := &mockQuoteService{err: fmt.Errorf("fetch history: %w", provider.ErrMissingAPIKey)}
	w := get(setupRouterWithMock(svc), "/historico?de=USD&para=BRL&periodo=1D")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetChart_PairsAndNull(t *testing.T) {
	svc := &mockQuoteService{chart: []models.NormalizedPoint{
		{Timestamp: 50000, Valor: 2.2},
		{Timestamp: 100000, Valor: math.NaN()},
	}}
	w := get(setupRouterWithMock(svc), "/api/v1/grafico?de=USD&para=BRL&periodo=5D")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"de":"USD","para":"BRL","periodo":"5D","pontos":[[50000,2.2],[100000,null]]}`, w.Body.String())
}

func TestConvert(t *testing.T) {
	svc := &mockQuoteService{quote: models.Quote{Rate: 5}}
	r := setupRouterWithMock(svc)

	w := get(r, "/api/v1/conversao?de=USD&para=BRL&valor=10")
	require.Equal(t, http.StatusOK, w.Code)
	var out models.Conversion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, 50.0, out.Result)

	w = get(r, "/api/v1/conversao?de=USD&para=BRL")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1.0, svc.gotAmount)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/v1/conversao?de=USD&para=BRL&valor=-1").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/v1/conversao?de=USD&para=BRL&valor=abc").Code)
}

func TestConvert_ServiceValidationError(t *testing.T) {
	svc := &mockQuoteService{err: fmt.Errorf("%w: NaN", service.ErrInvalidAmount)}
	w := get(setupRouterWithMock(svc), "/api/v1/conversao?de=USD&para=BRL&valor=1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPanel(t *testing.T) {
	svc := &mockQuoteService{
		quote: models.Quote{Bid: "5.00", Rate: 5},
		chart: []models.NormalizedPoint{{Timestamp: 1000, Valor: 5}},
	}
	h := NewHandler(svc)
	h.now = func() time.Time { return time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC) }
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/painel", h.GetPanel)

	w := get(r, "/api/v1/painel?de=USD&para=BRL&periodo=1M&valor=2")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{
		"cotacao":"5.00",
		"conversao":{"de":"USD","para":"BRL","valor":2,"cotacao":5,"resultado":10},
		"grafico":{"de":"USD","para":"BRL","periodo":"1M","pontos":[[1000,5]]},
		"atualizado":"2025-01-02T12:00:00Z"
	}`, w.Body.String())
}

func TestRecentQuotes(t *testing.T) {
	svc := &mockQuoteService{}
	r := setupRouterWithMock(svc)

	w := get(r, "/api/v1/cotacao/recentes?de=USD&para=BRL")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cotacoes":[]}`, w.Body.String())
	assert.Equal(t, 20, svc.gotLimit)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/v1/cotacao/recentes?de=USD&para=BRL&limite=500").Code)
}

func TestRecentQuotes_LimitBounds(t *testing.T) {
	cases := []struct {
		limite string
		status int
		want   int
	}{
		{"0", http.StatusBadRequest, 0},
		{"-3", http.StatusBadRequest, 0},
		{"1", http.StatusOK, 1},
		{"100", http.StatusOK, 100},
		{"101", http.StatusBadRequest, 0},
	}
	for _, tc := range cases {
		t.Run("limite="+tc.limite, func(t *testing.T) {
			svc := &mockQuoteService{}
			w := get(setupRouterWithMock(svc), "/api/v1/cotacao/recentes?de=USD&para=BRL&limite="+tc.limite)
			require.Equal(t, tc.status, w.Code, w.Body.String())
			assert.Equal(t, tc.want, svc.gotLimit)
		})
	}
}

func TestListCurrencies(t *testing.T) {
	w := get(setupRouterWithMock(&mockQuoteService{}), "/api/v1/moedas")
	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Moedas   []models.CurrencyInfo `json:"moedas"`
		Periodos []string              `json:"periodos"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out.Moedas, 11)
	assert.Equal(t, []string{"1D", "5D", "1M"}, out.Periodos)
}

func TestRespondError_DeadlineIsGatewayTimeout(t *testing.T) {
	svc := &mockQuoteService{err: fmt.Errorf("fetch: %w", context.DeadlineExceeded)}
	w := get(setupRouterWithMock(svc), "/cotacao?de=USD&para=BRL")
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}
