package provider

import (
	"context"
	"fmt"
	"net/url"

	"github.com/guttosm/conversor/internal/domain/models"
)

const twelveDataName = "twelvedata"

// TwelveData serves intraday history from api.twelvedata.com.
type TwelveData struct {
	baseURL string
	apiKey  string
	client  *HTTPClient
}

// NewTwelveData builds a client for baseURL (no trailing slash).
func NewTwelveData(baseURL, apiKey string, client *HTTPClient) *TwelveData {
	return &TwelveData{baseURL: baseURL, apiKey: apiKey, client: client}
}

type twelveDataSeries struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Values  []struct {
		Datetime string `json:"datetime"`
		Close    string `json:"close"`
	} `json:"values"`
}

// TimeSeries returns the last 24 hourly closes for from/to. Timestamps are
// calendar date-times in the exchange's local time.
//
// TwelveData reports errors with HTTP 200 and {"status": "error"}.
func (t *TwelveData) TimeSeries(ctx context.Context, from, to models.Currency) ([]models.RawHistoryPoint, error) {
	if t.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("symbol", from.String()+"/"+to.String())
	q.Set("interval", "1h")
	q.Set("outputsize", "24")
	q.Set("apikey", t.apiKey)
	u := t.baseURL + "/time_series?" + q.Encode()

	var body twelveDataSeries
	if err := t.client.getJSON(ctx, twelveDataName, "time_series", u, &body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("%w: %s time_series: %s", ErrUpstream, twelveDataName, body.Message)
	}

	out := make([]models.RawHistoryPoint, 0, len(body.Values))
	for _, v := range body.Values {
		out = append(out, models.RawHistoryPoint{Timestamp: v.Datetime, Valor: v.Close})
	}
	return out, nil
}
