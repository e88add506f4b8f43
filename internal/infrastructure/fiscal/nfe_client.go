package fiscal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// ErrDocumentNotFound is returned when the provider has no NF-e for the key.
var ErrDocumentNotFound = fmt.Errorf("%w: nf-e not found for access key", entities.ErrNotFound)

type nfeResponse struct {
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`
	Date           string  `json:"date"`
	Notes          string  `json:"notes"`
	IsHomologation bool    `json:"is_homologation"`
}

// NFeClient queries an external NF-e lookup service over HTTP:
//
//	GET {baseURL}/nfe/{accessKey}
//
// Failures to reach the service and 5xx answers count against the circuit
// breaker; a 404 does not.
type NFeClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *CircuitBreaker
}

var _ interfaces.INFeProvider = (*NFeClient)(nil)

func NewNFeClient(baseURL, apiKey string, timeout time.Duration, breaker *CircuitBreaker) *NFeClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if breaker == nil {
		breaker = NewCircuitBreaker(DefaultBreakerConfig())
	}
	return &NFeClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
	}
}

func (c *NFeClient) Lookup(ctx context.Context, accessKey string) (entities.NFeData, error) {
	if c.baseURL == "" {
		return entities.NFeData{}, fmt.Errorf("nfe: provider url not configured: %w", entities.ErrIntegration)
	}

	var (
		data     entities.NFeData
		notFound bool
	)
	err := c.breaker.Execute(func() error {
		var err error
		data, notFound, err = c.fetch(ctx, accessKey)
		return err
	})
	if errors.Is(err, ErrCircuitOpen) {
		log.Warn().Str("component", "nfe").Msg("circuit open, skipping provider call")
		return entities.NFeData{}, fmt.Errorf("nfe: %v: %w", err, entities.ErrIntegration)
	}
	if err != nil {
		return entities.NFeData{}, err
	}
	if notFound {
		return entities.NFeData{}, ErrDocumentNotFound
	}
	return data, nil
}

func (c *NFeClient) fetch(ctx context.Context, accessKey string) (entities.NFeData, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/nfe/"+accessKey, nil)
	if err != nil {
		return entities.NFeData{}, false, fmt.Errorf("nfe: create request: %v: %w", err, entities.ErrIntegration)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entities.NFeData{}, false, fmt.Errorf("nfe: provider unreachable: %v: %w", err, entities.ErrIntegration)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entities.NFeData{}, true, nil
	case resp.StatusCode != http.StatusOK:
		return entities.NFeData{}, false, fmt.Errorf("nfe: provider returned %d: %w", resp.StatusCode, entities.ErrIntegration)
	}

	var body nfeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.NFeData{}, false, fmt.Errorf("nfe: decode response: %v: %w", err, entities.ErrIntegration)
	}
	return entities.NFeData{
		Description:    body.Description,
		Amount:         body.Amount,
		Date:           body.Date,
		Notes:          body.Notes,
		IsHomologation: body.IsHomologation,
	}, false, nil
}
