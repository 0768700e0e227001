package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/guttosm/conversor/internal/domain/models"
)

const awesomeAPIName = "awesomeapi"

// AwesomeAPI serves current quotes and daily history from
// economia.awesomeapi.com.br.
type AwesomeAPI struct {
	baseURL string
	client  *HTTPClient
	now     func() time.Time
}

// NewAwesomeAPI builds a client for baseURL (no trailing slash).
func NewAwesomeAPI(baseURL string, client *HTTPClient) *AwesomeAPI {
	return &AwesomeAPI{baseURL: baseURL, client: client, now: time.Now}
}

type awesomeQuote struct {
	Bid       string `json:"bid"`
	Timestamp string `json:"timestamp"`
}

// Last returns the current bid for from -> to.
//
// GET {base}/json/last/{FROM}-{TO} answers {"FROMTO": {"bid": "..."}}.
func (a *AwesomeAPI) Last(ctx context.Context, from, to models.Currency) (models.Quote, error) {
	u := fmt.Sprintf("%s/json/last/%s-%s", a.baseURL, url.PathEscape(from.String()), url.PathEscape(to.String()))

	var body map[string]awesomeQuote
	if err := a.client.getJSON(ctx, awesomeAPIName, "last", u, &body); err != nil {
		return models.Quote{}, err
	}

	entry, ok := body[from.String()+to.String()]
	if !ok || entry.Bid == "" {
		return models.Quote{}, fmt.Errorf("%w: %s last: pair %s-%s not in response", ErrUpstream, awesomeAPIName, from, to)
	}
	rate, err := strconv.ParseFloat(entry.Bid, 64)
	if err != nil {
		return models.Quote{}, fmt.Errorf("%w: %s last: bad bid %q: %v", ErrUpstream, awesomeAPIName, entry.Bid, err)
	}

	return models.Quote{
		From:      from,
		To:        to,
		Bid:       entry.Bid,
		Rate:      rate,
		Source:    awesomeAPIName,
		FetchedAt: a.now().UTC(),
	}, nil
}

// Daily returns up to days daily closes, newest first as upstream sends
// them. Timestamps are Unix epoch seconds.
//
// GET {base}/json/daily/{FROM}-{TO}/{days}.
func (a *AwesomeAPI) Daily(ctx context.Context, from, to models.Currency, days int) ([]models.RawHistoryPoint, error) {
	if days <= 0 {
		days = models.Period1M.Days()
	}
	u := fmt.Sprintf("%s/json/daily/%s-%s/%d", a.baseURL, url.PathEscape(from.String()), url.PathEscape(to.String()), days)

	var body []awesomeQuote
	if err := a.client.getJSON(ctx, awesomeAPIName, "daily", u, &body); err != nil {
		return nil, err
	}

	out := make([]models.RawHistoryPoint, 0, len(body))
	for _, item := range body {
		out = append(out, models.RawHistoryPoint{Timestamp: item.Timestamp, Valor: item.Bid})
	}
	return out, nil
}
