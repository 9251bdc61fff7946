package forecast

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/inventory-sim/inventory-sim/sim/dataset"
)

// Remote defaults match the pretrained model the service wraps: a context
// window of 32 observations and 100 probabilistic samples per forecast.
const (
	DefaultContextLength = 32
	DefaultNumSamples    = 100
)

// Remote is a resty-backed client for an external forecasting service.
// The service holds the pretrained time-series model; this client only
// ships the trailing context window and reads back point forecasts.
type Remote struct {
	httpClient    *resty.Client
	contextLength int
	numSamples    int
}

// RemoteOption customizes a Remote client.
type RemoteOption func(*Remote)

// WithContextLength overrides the number of trailing observations sent
// with each request.
func WithContextLength(n int) RemoteOption {
	return func(r *Remote) { r.contextLength = n }
}

// WithNumSamples overrides the sample count requested from the service's
// probabilistic model.
func WithNumSamples(n int) RemoteOption {
	return func(r *Remote) { r.numSamples = n }
}

// NewRemote builds a forecasting-service client for the given base URL.
func NewRemote(baseURL string, opts ...RemoteOption) *Remote {
	httpClient := resty.New()
	httpClient.
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)

	r := &Remote{
		httpClient:    httpClient,
		contextLength: DefaultContextLength,
		numSamples:    DefaultNumSamples,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// forecastRequest is the JSON payload posted to the service.
type forecastRequest struct {
	ItemID           string    `json:"item_id"`
	Target           string    `json:"target"`
	Values           []float64 `json:"values"`
	PredictionLength int       `json:"prediction_length"`
	ContextLength    int       `json:"context_length"`
	NumSamples       int       `json:"num_samples"`
}

// forecastResponse mirrors the service's successful response.
type forecastResponse struct {
	Predictions []float64 `json:"predictions"`
}

// apiError represents the service's error payload.
type apiError struct {
	Error string `json:"error"`
}

// Predict posts the trailing context window of the series and returns the
// service's point forecasts.
func (r *Remote) Predict(ctx context.Context, series *dataset.Series, horizon int) ([]float64, error) {
	if err := checkArgs(series, horizon); err != nil {
		return nil, err
	}

	values := series.Values
	if len(values) > r.contextLength {
		values = values[len(values)-r.contextLength:]
	}
	payload := forecastRequest{
		ItemID:           series.ItemID,
		Target:           series.Target,
		Values:           values,
		PredictionLength: horizon,
		ContextLength:    r.contextLength,
		NumSamples:       r.numSamples,
	}

	result := new(forecastResponse)
	errBody := new(apiError)
	resp, err := r.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(result).
		SetError(errBody).
		Post("/forecast")
	if err != nil {
		return nil, fmt.Errorf("forecast service request for item %s: %w", series.ItemID, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("forecast service returned %d for item %s: %s",
			resp.StatusCode(), series.ItemID, errBody.Error)
	}
	if len(result.Predictions) != horizon {
		return nil, fmt.Errorf("forecast service returned %d predictions for item %s, want %d",
			len(result.Predictions), series.ItemID, horizon)
	}
	return result.Predictions, nil
}
