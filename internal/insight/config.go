// ABOUTME: Builds an insight Client from configuration values.
// ABOUTME: Chooses between the REST and SDK transports.
package insight

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Transport names.
const (
	TransportREST  = "rest"
	TransportGenAI = "genai"
)

// Config holds the insight settings resolved by the config package.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Transport  string
	HTTPClient *http.Client
}

// New creates a Client for cfg. Without an API key no transport is built
// and every request reports the missing key.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.APIKey == "" {
		return NewClient("", nil, WithLogger(logger)), nil
	}

	var gen Generator
	switch cfg.Transport {
	case "", TransportREST:
		var doer Doer
		if cfg.HTTPClient != nil {
			doer = cfg.HTTPClient
		}
		gen = NewRESTGenerator(cfg.APIKey, cfg.Model, cfg.BaseURL, doer)
	case TransportGenAI:
		g, err := NewGenAIGenerator(ctx, cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.HTTPClient)
		if err != nil {
			return nil, err
		}
		gen = g
	default:
		return nil, fmt.Errorf("unknown insight transport: %q", cfg.Transport)
	}

	logger.Debug("insight client ready", zap.String("transport", cfg.Transport), zap.String("model", cfg.Model))
	return NewClient(cfg.APIKey, gen, WithLogger(logger)), nil
}
