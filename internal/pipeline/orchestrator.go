package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"path"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/castforge/podcast-engine/internal/audio"
	"github.com/castforge/podcast-engine/internal/config"
	"github.com/castforge/podcast-engine/internal/observability"
	"github.com/castforge/podcast-engine/internal/persona"
	"github.com/castforge/podcast-engine/internal/synth"
	"github.com/castforge/podcast-engine/internal/transcript"
)

// GenerateRequest is a full transcript-to-audio batch request
type GenerateRequest struct {
	Transcript    string                          `json:"transcript"`
	VoiceMappings map[string]persona.VoiceMapping `json:"voiceMappings"`
}

// SegmentRequest regenerates audio for a single utterance
type SegmentRequest struct {
	Speaker     string               `json:"speaker"`
	Text        string               `json:"text"`
	VoiceConfig persona.VoiceMapping `json:"voiceConfig"`
}

// Orchestrator drives transcript-to-audio runs. Turns are processed
// sequentially in transcript order so progress events are strictly ordered;
// distinct runs share nothing but the store's directory tree.
type Orchestrator struct {
	synthesizer *synth.Synthesizer
	store       *Store
	cfg         *config.Config
	logger      zerolog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewOrchestrator wires a synthesis pipeline over the given store
func NewOrchestrator(synthesizer *synth.Synthesizer, store *Store, cfg *config.Config, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		synthesizer: synthesizer,
		store:       store,
		cfg:         cfg,
		logger:      logger,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate runs the full pipeline for a transcript and streams events on the
// returned channel. The channel is closed after the terminal event, or as
// soon as cancellation is observed; segments already persisted for completed
// turns are left on disk.
func (o *Orchestrator) Generate(ctx context.Context, req GenerateRequest) <-chan Event {
	out := make(chan Event, 1)

	go func() {
		defer close(out)

		runID := o.newRunID()
		logger := o.logger.With().Str("run_id", runID).Logger()
		metrics := observability.NewRunMetrics(runID)
		metrics.RecordRunStart()

		emit := func(ev Event) bool {
			select {
			case out <- ev:
				return true
			case <-ctx.Done():
				return false
			}
		}

		fail := func(speaker string, current, total int, err error) {
			logger.Error().Err(err).Str("speaker", speaker).Msg("run failed")
			metrics.RecordError("synthesis", "pipeline")
			metrics.RecordRunEnd("error")
			emit(Event{
				Type:     EventError,
				Stage:    StageSegmentFailed,
				Speaker:  speaker,
				Error:    err.Error(),
				Progress: progressAt(current, total),
			})
		}

		turns, err := transcript.Segment(req.Transcript)
		if err != nil {
			logger.Error().Err(err).Msg("transcript rejected")
			metrics.RecordError("transcript", "pipeline")
			metrics.RecordRunEnd("error")
			emit(Event{
				Type:  EventError,
				Stage: StageGenerationFailed,
				Error: err.Error(),
			})
			return
		}

		total := len(turns)
		logger.Info().Int("turns", total).Msg("starting audio generation run")

		var buffers []*audio.Buffer
		var refs []SegmentRef

		for _, turn := range turns {
			current := turn.Index + 1

			resolved, err := persona.Resolve(turn.Speaker, req.VoiceMappings)
			if err != nil {
				fail(turn.Speaker, current, total, err)
				return
			}

			if !emit(Event{
				Type:     EventProgress,
				Stage:    StageGenerating,
				Message:  fmt.Sprintf("Generating audio for %s", turn.Speaker),
				Speaker:  turn.Speaker,
				Progress: progressAt(current, total),
			}) {
				metrics.RecordRunEnd("cancelled")
				return
			}

			metrics.RecordSynthesisStart()
			buf, err := o.synthesizer.Synthesize(ctx, synth.TurnRequest{
				Speaker:     turn.Speaker,
				TurnIndex:   turn.Index,
				StylePrompt: resolved.StylePrompt,
				Text:        turn.Text,
				VoiceID:     resolved.VoiceID,
			})
			metrics.RecordSynthesisEnd(err == nil)
			if err != nil {
				fail(turn.Speaker, current, total, err)
				return
			}

			normalized := audio.Normalize(buf, o.cfg.NormalizeTargetDBFS)

			rel, nbytes, err := o.store.SaveSegment(runID, turn.Speaker, normalized)
			if err != nil {
				fail(turn.Speaker, current, total, err)
				return
			}
			metrics.RecordSegmentPersisted(nbytes)

			duration := normalized.Seconds()
			urlPath := path.Join(o.cfg.AudioURLPrefix, rel)

			logger.Info().
				Str("speaker", turn.Speaker).
				Str("path", rel).
				Float64("duration_sec", duration).
				Msg("segment persisted")

			if !emit(Event{
				Type:        EventSegmentComplete,
				Stage:       StageSegmentGenerated,
				Speaker:     turn.Speaker,
				SegmentPath: urlPath,
				Duration:    &duration,
				Progress:    progressAt(current, total),
			}) {
				metrics.RecordRunEnd("cancelled")
				return
			}

			buffers = append(buffers, normalized)
			refs = append(refs, SegmentRef{Speaker: turn.Speaker, Path: urlPath, Duration: &duration})
		}

		finalPath, err := o.assembleTrack(runID, buffers, refs)
		if err != nil {
			fail("", total, total, err)
			return
		}

		metrics.RecordRunEnd("success")
		logger.Info().Str("final_path", finalPath).Msg("run complete")

		emit(Event{
			Type:      EventComplete,
			Stage:     StageGenerationComplete,
			Message:   "Audio generation complete",
			Segments:  refs,
			FinalPath: finalPath,
			Progress:  progressAt(total, total),
		})
	}()

	return out
}

// GenerateSegment synthesizes one utterance outside of a batch run
func (o *Orchestrator) GenerateSegment(ctx context.Context, req SegmentRequest) <-chan Event {
	out := make(chan Event, 1)

	go func() {
		defer close(out)

		runID := o.newRunID()
		logger := o.logger.With().Str("run_id", runID).Logger()
		metrics := observability.NewRunMetrics(runID)
		metrics.RecordRunStart()

		emit := func(ev Event) bool {
			select {
			case out <- ev:
				return true
			case <-ctx.Done():
				return false
			}
		}

		fail := func(err error) {
			logger.Error().Err(err).Str("speaker", req.Speaker).Msg("segment generation failed")
			metrics.RecordError("synthesis", "pipeline")
			metrics.RecordRunEnd("error")
			emit(Event{
				Type:     EventError,
				Stage:    StageSegmentFailed,
				Speaker:  req.Speaker,
				Error:    err.Error(),
				Progress: progressAt(0, 1),
			})
		}

		if !emit(Event{
			Type:     EventProgress,
			Stage:    StageGenerating,
			Message:  fmt.Sprintf("Generating audio for %s", req.Speaker),
			Speaker:  req.Speaker,
			Progress: progressAt(0, 1),
		}) {
			metrics.RecordRunEnd("cancelled")
			return
		}

		voice := req.VoiceConfig.Voice
		if voice == "" {
			voice = persona.DefaultVoice
		}

		metrics.RecordSynthesisStart()
		buf, err := o.synthesizer.Synthesize(ctx, synth.TurnRequest{
			Speaker:     req.Speaker,
			StylePrompt: persona.RenderStylePrompt(req.VoiceConfig.Config),
			Text:        req.Text,
			VoiceID:     voice,
		})
		metrics.RecordSynthesisEnd(err == nil)
		if err != nil {
			fail(err)
			return
		}

		if !emit(Event{
			Type:     EventProgress,
			Stage:    StageProcessing,
			Message:  fmt.Sprintf("Processing audio for %s", req.Speaker),
			Speaker:  req.Speaker,
			Progress: &Progress{Current: 0, Total: 1, Percentage: 50},
		}) {
			metrics.RecordRunEnd("cancelled")
			return
		}

		normalized := audio.Normalize(buf, o.cfg.NormalizeTargetDBFS)

		rel, nbytes, err := o.store.SaveSegment(runID, req.Speaker, normalized)
		if err != nil {
			fail(err)
			return
		}
		metrics.RecordSegmentPersisted(nbytes)

		duration := normalized.Seconds()
		urlPath := path.Join(o.cfg.AudioURLPrefix, rel)

		if !emit(Event{
			Type:        EventSegmentComplete,
			Stage:       StageSegmentGenerated,
			Speaker:     req.Speaker,
			SegmentPath: urlPath,
			Duration:    &duration,
			Progress:    progressAt(1, 1),
		}) {
			metrics.RecordRunEnd("cancelled")
			return
		}

		metrics.RecordRunEnd("success")

		emit(Event{
			Type:      EventComplete,
			Stage:     StageGenerationComplete,
			Message:   "Audio generation complete",
			FinalPath: urlPath,
			Segments:  []SegmentRef{{Speaker: req.Speaker, Path: urlPath, Duration: &duration}},
			Progress:  progressAt(1, 1),
		})
	}()

	return out
}

// assembleTrack joins the run's segments into one episode file. A single
// segment skips assembly and reuses its own URL.
func (o *Orchestrator) assembleTrack(runID string, buffers []*audio.Buffer, refs []SegmentRef) (string, error) {
	if len(buffers) == 0 {
		return "", audio.ErrEmptyAssembly
	}
	if len(buffers) == 1 {
		return refs[0].Path, nil
	}

	track, err := audio.Assemble(
		buffers,
		time.Duration(o.cfg.SilenceMs)*time.Millisecond,
		time.Duration(o.cfg.CrossfadeMs)*time.Millisecond,
	)
	if err != nil {
		return "", err
	}

	rel, _, err := o.store.SaveTrack(runID, track)
	if err != nil {
		return "", err
	}
	return path.Join(o.cfg.AudioURLPrefix, rel), nil
}

func (o *Orchestrator) newRunID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return NewRunID(o.rng, DefaultAdjectives, DefaultNouns, time.Now())
}
