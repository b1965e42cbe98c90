package synth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/castforge/podcast-engine/internal/audio"
	"github.com/castforge/podcast-engine/internal/config"
	"github.com/castforge/podcast-engine/internal/observability"
	"github.com/castforge/podcast-engine/internal/provider"
	"github.com/castforge/podcast-engine/internal/resilience"
)

// ExhaustedError indicates the provider returned no usable result for every
// allowed attempt of one turn.
type ExhaustedError struct {
	Speaker  string
	Turn     int
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no audio candidates for %s (turn %d) after %d attempts", e.Speaker, e.Turn, e.Attempts)
}

// TurnRequest scopes one turn's synthesis work
type TurnRequest struct {
	Speaker     string
	TurnIndex   int
	StylePrompt string
	Text        string
	VoiceID     string
}

// Synthesizer issues per-turn synthesis requests with bounded
// exponential-backoff retry and decodes provider payloads into audio buffers.
type Synthesizer struct {
	client      provider.Client
	maxRetries  int
	defaultRate int
	backoff     resilience.BackoffConfig
	breaker     *resilience.CircuitBreaker
	logger      zerolog.Logger

	mu  sync.Mutex
	rng *rand.Rand

	// sleep is swapped out in tests
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a synthesizer from config
func New(client provider.Client, cfg *config.Config, logger zerolog.Logger) *Synthesizer {
	breaker := resilience.NewCircuitBreaker(
		"speech-provider",
		cfg.BreakerMaxFailures,
		time.Duration(cfg.BreakerResetTimeout)*time.Second,
	)
	return &Synthesizer{
		client:      client,
		maxRetries:  cfg.SynthMaxRetries,
		defaultRate: cfg.DefaultSampleRate,
		backoff: resilience.BackoffConfig{
			Base: time.Duration(cfg.SynthBaseBackoff) * time.Millisecond,
			Max:  time.Duration(cfg.SynthMaxBackoff) * time.Millisecond,
		},
		breaker: breaker,
		logger:  logger,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:   resilience.Sleep,
	}
}

// Synthesize generates and decodes audio for one turn. Attempts that yield no
// candidate (or a transient transport failure) are retried with
// min(maxDelay, baseDelay*2^k) backoff plus up to 10% jitter; decoding
// failures are fatal immediately.
func (s *Synthesizer) Synthesize(ctx context.Context, req TurnRequest) (*audio.Buffer, error) {
	preq := provider.Request{
		StylePrompt: req.StylePrompt,
		Text:        req.Text,
		VoiceID:     req.VoiceID,
	}

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		s.logger.Debug().
			Str("speaker", req.Speaker).
			Int("turn", req.TurnIndex).
			Int("attempt", attempt+1).
			Int("max_attempts", s.maxRetries).
			Msg("synthesis attempt")

		var resp *provider.Response
		err := s.breaker.Call(func() error {
			var callErr error
			resp, callErr = s.client.GenerateSpeech(ctx, preq)
			return callErr
		})
		observability.UpdateCircuitBreakerState("speech-provider", int(s.breaker.GetState()))
		if err != nil {
			observability.IncrementCircuitBreakerFailures("speech-provider")
		}

		switch {
		case err == nil && len(resp.Candidates) > 0:
			cand := resp.Candidates[0]
			buf, decErr := audio.DecodeWithDefaultRate(cand.Payload, cand.Encoding, s.defaultRate)
			if decErr != nil {
				// Malformed payloads are a decoding failure, never retried
				return nil, decErr
			}
			return buf, nil

		case err == nil:
			s.logger.Warn().
				Str("speaker", req.Speaker).
				Int("turn", req.TurnIndex).
				Int("attempt", attempt+1).
				Msg("no candidates in provider response")

		case s.retryable(err):
			s.logger.Warn().
				Err(err).
				Str("speaker", req.Speaker).
				Int("turn", req.TurnIndex).
				Int("attempt", attempt+1).
				Msg("transient synthesis failure")

		default:
			return nil, fmt.Errorf("synthesis call failed for %s (turn %d): %w", req.Speaker, req.TurnIndex, err)
		}

		if attempt < s.maxRetries-1 {
			observability.IncrementSynthesisRetries()
			delay := s.jitteredBackoff(attempt)
			s.logger.Debug().Dur("delay", delay).Msg("backing off before retry")
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return nil, sleepErr
			}
		}
	}

	return nil, &ExhaustedError{
		Speaker:  req.Speaker,
		Turn:     req.TurnIndex,
		Attempts: s.maxRetries,
	}
}

func (s *Synthesizer) retryable(err error) bool {
	return errors.Is(err, resilience.ErrCircuitOpen) ||
		resilience.IsRetryable(err) ||
		resilience.IsRetryableNetworkError(err)
}

func (s *Synthesizer) jitteredBackoff(attempt int) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backoff.Jittered(attempt, s.rng)
}
