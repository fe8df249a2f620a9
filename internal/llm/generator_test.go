package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// MockProvider implements the Provider interface for testing
type MockProvider struct {
	name      string
	available bool
	responses []*GenerateResponse
	errs      []error
	calls     int
}

func (m *MockProvider) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *MockProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	i := m.calls
	m.calls++
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	if i < len(m.responses) {
		return m.responses[i], nil
	}
	return &GenerateResponse{Text: "briefing text", Model: "mock-model"}, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return m.available
}

func TestGenerator_Success(t *testing.T) {
	provider := &MockProvider{
		responses: []*GenerateResponse{{Text: "### briefing", Model: "m"}},
	}
	gen := NewGenerator(provider, GeneratorOptions{}, nil)

	resp, err := gen.Generate(context.Background(), GenerateRequest{Prompt: "go"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Text != "### briefing" {
		t.Errorf("Unexpected text: %q", resp.Text)
	}
	if provider.calls != 1 {
		t.Errorf("Expected 1 call, got %d", provider.calls)
	}
}

func TestGenerator_EmptyResult(t *testing.T) {
	provider := &MockProvider{
		responses: []*GenerateResponse{{Text: "   \n "}},
	}
	gen := NewGenerator(provider, GeneratorOptions{}, nil)

	_, err := gen.Generate(context.Background(), GenerateRequest{})
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("Expected ErrEmptyResult, got %v", err)
	}
}

func TestGenerator_RetriesRateLimitWithLinearBackoff(t *testing.T) {
	provider := &MockProvider{
		errs: []error{
			&RateLimitError{Provider: "mock", Message: "slow down"},
			&RateLimitError{Provider: "mock", Message: "slow down"},
			nil,
		},
		responses: []*GenerateResponse{nil, nil, {Text: "third time lucky"}},
	}
	gen := NewGenerator(provider, GeneratorOptions{MaxRetries: 3, Backoff: time.Minute}, nil)

	var slept []time.Duration
	gen.sleep = func(d time.Duration) { slept = append(slept, d) }

	resp, err := gen.Generate(context.Background(), GenerateRequest{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Text != "third time lucky" {
		t.Errorf("Unexpected text: %q", resp.Text)
	}
	if len(slept) != 2 || slept[0] != time.Minute || slept[1] != 2*time.Minute {
		t.Errorf("Expected linear backoff 1m, 2m, got %v", slept)
	}
}

func TestGenerator_RetryBudgetExhausted(t *testing.T) {
	rl := &RateLimitError{Provider: "mock", Message: "still limited"}
	provider := &MockProvider{errs: []error{rl, rl, rl}}
	gen := NewGenerator(provider, GeneratorOptions{MaxRetries: 3, Backoff: time.Second}, nil)

	var sleeps int
	gen.sleep = func(time.Duration) { sleeps++ }

	_, err := gen.Generate(context.Background(), GenerateRequest{})
	if !IsRateLimit(err) {
		t.Errorf("Expected last rate limit error propagated, got %v", err)
	}
	if provider.calls != 3 {
		t.Errorf("Expected 3 attempts, got %d", provider.calls)
	}
	if sleeps != 2 {
		t.Errorf("Expected no sleep after the final attempt, got %d sleeps", sleeps)
	}
}

func TestGenerator_NonRateLimitErrorNotRetried(t *testing.T) {
	provider := &MockProvider{errs: []error{errors.New("boom")}}
	gen := NewGenerator(provider, GeneratorOptions{MaxRetries: 3}, nil)

	var sleeps int
	gen.sleep = func(time.Duration) { sleeps++ }

	_, err := gen.Generate(context.Background(), GenerateRequest{})
	if err == nil || err.Error() != "boom" {
		t.Errorf("Expected immediate propagation, got %v", err)
	}
	if provider.calls != 1 || sleeps != 0 {
		t.Errorf("Expected single attempt without backoff, got %d calls, %d sleeps", provider.calls, sleeps)
	}
}

func TestGenerator_Available(t *testing.T) {
	gen := NewGenerator(&MockProvider{available: true}, GeneratorOptions{}, nil)
	if !gen.Available(context.Background()) {
		t.Error("Expected availability to delegate to the provider")
	}
}
