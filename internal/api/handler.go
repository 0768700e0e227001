package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/conversor/internal/domain/dto"
	"github.com/guttosm/conversor/internal/domain/models"
	"github.com/guttosm/conversor/internal/provider"
	"github.com/guttosm/conversor/internal/service"
)

// Handler provides the HTTP handlers of the converter.
//
// Responsibilities:
//   - Bind and validate query parameters (de, para, periodo, valor, limite)
//   - Delegate to the QuoteService
//   - Translate results into response DTOs and errors into status codes
type Handler struct {
	svc service.QuoteService
	now func() time.Time
}

// NewHandler constructs a Handler around svc. It also registers the
// "currency" validation tag used by the query structs.
func NewHandler(svc service.QuoteService) *Handler {
	RegisterValidators()
	return &Handler{svc: svc, now: time.Now}
}

// GetQuote godoc
// @Summary      Current exchange rate
// @Description  Returns the current bid for the de/para pair
// @Tags         cotacao
// @Produce      json
// @Param        de    query     string  true  "Source currency"  example(USD)
// @Param        para  query     string  true  "Target currency"  example(BRL)
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502   {object}  dto.ErrorResponse  "Upstream failure"
// @Failure      500   {object}  dto.ErrorResponse  "Internal Error"
// @Router       /cotacao [get]
// @Router       /api/v1/cotacao [get]
func (h *Handler) GetQuote(c *gin.Context) {
	var q pairQuery
	if !bindQuery(c, &q) {
		return
	}
	from, to := q.pair()

	quote, err := h.svc.GetQuote(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, "failed to fetch quote", err)
		return
	}
	c.JSON(http.StatusOK, dto.QuoteResponse{Cotacao: quote.Bid})
}

// GetHistory godoc
// @Summary      Raw quote history
// @Description  Returns the upstream history for the pair as received (timestamp, valor)
// @Tags         historico
// @Produce      json
// @Param        de       query     string  true   "Source currency"  example(USD)
// @Param        para     query     string  true   "Target currency"  example(BRL)
// @Param        periodo  query     string  false  "1D, 5D or 1M"     default(1D)
// @Success      200      {object}  dto.HistoryResponse
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502      {object}  dto.ErrorResponse  "Upstream failure"
// @Failure      503      {object}  dto.ErrorResponse  "Provider not configured"
// @Router       /historico [get]
// @Router       /api/v1/historico [get]
func (h *Handler) GetHistory(c *gin.Context) {
	var q historyQuery
	if !bindQuery(c, &q) {
		return
	}
	period, err := models.ParsePeriod(q.Periodo)
	if err != nil {
		respondError(c, "invalid periodo", err)
		return
	}
	from, to := q.pair()

	pts, err := h.svc.GetHistory(c.Request.Context(), from, to, period)
	if err != nil {
		respondError(c, "failed to fetch history", err)
		return
	}
	if pts == nil {
		pts = []models.RawHistoryPoint{}
	}
	c.JSON(http.StatusOK, dto.HistoryResponse{Dados: pts})
}

// GetChart godoc
// @Summary      Chart series
// @Description  Returns the history normalized to [epochMillis, value] pairs sorted by time; 1D keeps only the last 24 hours
// @Tags         grafico
// @Produce      json
// @Param        de       query     string  true   "Source currency"  example(USD)
// @Param        para     query     string  true   "Target currency"  example(BRL)
// @Param        periodo  query     string  false  "1D, 5D or 1M"     default(1D)
// @Success      200      {object}  dto.ChartResponse
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502      {object}  dto.ErrorResponse  "Upstream failure"
// @Failure      503      {object}  dto.ErrorResponse  "Provider not configured"
// @Router       /api/v1/grafico [get]
func (h *Handler) GetChart(c *gin.Context) {
	var q historyQuery
	if !bindQuery(c, &q) {
		return
	}
	period, err := models.ParsePeriod(q.Periodo)
	if err != nil {
		respondError(c, "invalid periodo", err)
		return
	}
	from, to := q.pair()

	pts, err := h.svc.GetChart(c.Request.Context(), from, to, period)
	if err != nil {
		respondError(c, "failed to build chart", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewChartResponse(from, to, period, pts))
}

// Convert godoc
// @Summary      Convert an amount
// @Tags         conversao
// @Produce      json
// @Param        de     query     string  true   "Source currency"  example(USD)
// @Param        para   query     string  true   "Target currency"  example(BRL)
// @Param        valor  query     number  false  "Amount"           default(1)
// @Success      200    {object}  models.Conversion
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502    {object}  dto.ErrorResponse  "Upstream failure"
// @Router       /api/v1/conversao [get]
func (h *Handler) Convert(c *gin.Context) {
	var q amountQuery
	if !bindQuery(c, &q) {
		return
	}
	from, to := q.pair()

	conv, err := h.svc.Convert(c.Request.Context(), from, to, q.Valor)
	if err != nil {
		respondError(c, "failed to convert", err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// GetPanel godoc
// @Summary      Converter panel
// @Description  Quote, conversion and chart in one call. A history failure yields an empty chart.
// @Tags         painel
// @Produce      json
// @Param        de       query     string  true   "Source currency"  example(USD)
// @Param        para     query     string  true   "Target currency"  example(BRL)
// @Param        periodo  query     string  false  "1D, 5D or 1M"     default(1D)
// @Param        valor    query     number  false  "Amount"           default(1)
// @Success      200      {object}  dto.PanelResponse
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502      {object}  dto.ErrorResponse  "Upstream failure"
// @Router       /api/v1/painel [get]
func (h *Handler) GetPanel(c *gin.Context) {
	var q panelQuery
	if !bindQuery(c, &q) {
		return
	}
	period, err := models.ParsePeriod(q.Periodo)
	if err != nil {
		respondError(c, "invalid periodo", err)
		return
	}
	from, to := q.pair()

	panel, err := h.svc.GetPanel(c.Request.Context(), from, to, period, q.Valor)
	if err != nil {
		respondError(c, "failed to build panel", err)
		return
	}
	c.JSON(http.StatusOK, dto.PanelResponse{
		Cotacao:    panel.Quote.Bid,
		Conversao:  panel.Conversion,
		Grafico:    dto.NewChartResponse(from, to, panel.Period, panel.Chart),
		Atualizado: h.now().UTC(),
	})
}

// RecentQuotes godoc
// @Summary      Recorded quotes
// @Description  Most recent quote snapshots stored for the pair, newest first
// @Tags         cotacao
// @Produce      json
// @Param        de      query     string  true   "Source currency"  example(USD)
// @Param        para    query     string  true   "Target currency"  example(BRL)
// @Param        limite  query     int     false  "Max rows (1-100)" default(20)
// @Success      200     {object}  dto.RecentQuotesResponse
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/cotacao/recentes [get]
func (h *Handler) RecentQuotes(c *gin.Context) {
	var q recentQuery
	if !bindQuery(c, &q) {
		return
	}
	from, to := q.pair()

	quotes, err := h.svc.RecentQuotes(c.Request.Context(), from, to, q.Limite)
	if err != nil {
		respondError(c, "failed to list quotes", err)
		return
	}
	if quotes == nil {
		quotes = []models.Quote{}
	}
	c.JSON(http.StatusOK, dto.RecentQuotesResponse{Cotacoes: quotes})
}

// ListCurrencies godoc
// @Summary      Supported currencies
// @Tags         moedas
// @Produce      json
// @Success      200  {object}  dto.CurrenciesResponse
// @Router       /api/v1/moedas [get]
func (h *Handler) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CurrenciesResponse{
		Moedas:   models.SupportedCurrencies(),
		Periodos: models.Periods(),
	})
}

// bindQuery binds and validates the query string, answering 400 on failure.
func bindQuery(c *gin.Context, out any) bool {
	if err := c.ShouldBindQuery(out); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid query parameters", err))
		return false
	}
	return true
}

// respondError maps service errors to HTTP status codes. Details are only
// echoed for client errors; 5xx causes go to the request log.
func respondError(c *gin.Context, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidCurrency),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, models.ErrInvalidPeriod):
		status = http.StatusBadRequest
	case errors.Is(err, provider.ErrMissingAPIKey):
		status = http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	case errors.Is(err, provider.ErrUpstream):
		status = http.StatusBadGateway
	}
	_ = c.Error(err)

	details := err
	if status >= http.StatusInternalServerError {
		details = nil
	}
	c.JSON(status, dto.NewErrorResponse(msg, details))
}
