package dto

import (
	"time"

	"github.com/guttosm/conversor/internal/domain/models"
)

// QuoteResponse is the body of GET /cotacao.
type QuoteResponse struct {
	Cotacao string `json:"cotacao" example:"5.4321"`
}

// HistoryResponse is the body of GET /historico.
type HistoryResponse struct {
	Dados []models.RawHistoryPoint `json:"dados"`
}

// ChartResponse is the body of GET /api/v1/grafico. Each point is
// [epochMillis, value]; value is null when it could not be parsed.
type ChartResponse struct {
	De      models.Currency `json:"de" example:"USD"`
	Para    models.Currency `json:"para" example:"BRL"`
	Periodo models.Period   `json:"periodo" example:"5D"`
	Pontos  [][2]any        `json:"pontos" swaggertype:"array,array"`
}

// NewChartResponse converts normalized points into chart pairs.
func NewChartResponse(from, to models.Currency, period models.Period, pts []models.NormalizedPoint) ChartResponse {
	pairs := make([][2]any, 0, len(pts))
	for _, p := range pts {
		pairs = append(pairs, p.Pair())
	}
	return ChartResponse{De: from, Para: to, Periodo: period, Pontos: pairs}
}

// PanelResponse is the body of GET /api/v1/painel.
type PanelResponse struct {
	Cotacao    string            `json:"cotacao" example:"5.4321"`
	Conversao  models.Conversion `json:"conversao"`
	Grafico    ChartResponse     `json:"grafico"`
	Atualizado time.Time         `json:"atualizado"`
}

// CurrenciesResponse is the body of GET /api/v1/moedas.
type CurrenciesResponse struct {
	Moedas   []models.CurrencyInfo `json:"moedas"`
	Periodos []models.Period       `json:"periodos"`
}

// RecentQuotesResponse is the body of GET /api/v1/cotacao/recentes.
type RecentQuotesResponse struct {
	Cotacoes []models.Quote `json:"cotacoes"`
}
