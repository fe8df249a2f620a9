package llm

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Generator wraps a Provider with call pacing, rate-limit retry and
// empty-result rejection. One cycle makes one Generate call; the pacing
// matters in watch mode where cycles repeat on an interval.
type Generator struct {
	provider   Provider
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
	sleep      func(time.Duration) // injectable for tests
	log        *zap.Logger
}

// GeneratorOptions configures the retry and pacing behavior.
type GeneratorOptions struct {
	// MaxRetries bounds attempts on rate limiting
	MaxRetries int

	// Backoff is the base of the linear backoff (base * attempt number)
	Backoff time.Duration

	// Pace is the minimum spacing between calls; zero disables pacing
	Pace time.Duration
}

// NewGenerator creates a generator over the given provider.
func NewGenerator(provider Provider, opts GeneratorOptions, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	backoff := opts.Backoff
	if backoff <= 0 {
		backoff = 60 * time.Second
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.Pace > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.Pace), 1)
	}
	return &Generator{
		provider:   provider,
		limiter:    limiter,
		maxRetries: maxRetries,
		backoff:    backoff,
		sleep:      time.Sleep,
		log:        log.With(zap.String("component", "generator")),
	}
}

// ProviderName returns the underlying provider's name.
func (g *Generator) ProviderName() string {
	return g.provider.Name()
}

// Available reports whether the underlying provider is reachable and
// properly configured.
func (g *Generator) Available(ctx context.Context) bool {
	return g.provider.IsAvailable(ctx)
}

// Generate runs one paced generation call, retrying rate-limited attempts
// with linearly increasing backoff. Backoff blocks the calling goroutine;
// there is no concurrent work to yield to. A response with no usable text
// is ErrEmptyResult.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		resp, err := g.provider.Generate(ctx, req)
		if err == nil {
			if strings.TrimSpace(resp.Text) == "" {
				return nil, ErrEmptyResult
			}
			return resp, nil
		}
		lastErr = err
		if !IsRateLimit(err) || attempt == g.maxRetries {
			break
		}
		wait := g.backoff * time.Duration(attempt)
		g.log.Warn("rate limited, backing off",
			zap.Duration("wait", wait),
			zap.Int("attempt", attempt),
			zap.Int("max_retries", g.maxRetries))
		g.sleep(wait)
	}
	return nil, lastErr
}
