package scanner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"autoasr/internal/media/wav"
	"autoasr/internal/scanlog"
	"autoasr/internal/services"
	"autoasr/internal/subtitle"
	"autoasr/internal/vad"
)

// Mode tags how an item's transcript was produced, or that it was not.
type Mode int

const (
	ModeFailed Mode = iota
	ModeSegmented
	ModeWholeFile
)

func (m Mode) String() string {
	switch m {
	case ModeSegmented:
		return "segmented"
	case ModeWholeFile:
		return "whole-file"
	default:
		return "failed"
	}
}

// Outcome is the result of processing one item.
type Outcome struct {
	Item       Item
	Mode       Mode
	Transcript string
	Segments   int
	Err        error
}

// Detail is the short free-text column written to the journal.
func (o Outcome) Detail() string {
	if o.Err != nil {
		return o.Err.Error()
	}
	if o.Mode == ModeSegmented {
		return fmt.Sprintf("%d segments", o.Segments)
	}
	return ""
}

// processItem drives one item through the two-stage pipeline: segmented
// transcription first when enabled, whole-file transcription otherwise or
// as fallback. Failures are confined to the item.
func (s *Scanner) processItem(ctx context.Context, log *scanlog.Logger, item Item) Outcome {
	name := item.DisplayName()
	log.Info(fmt.Sprintf("processing %s", name))

	audio, err := s.materialize(ctx, item)
	if err != nil {
		log.Error(fmt.Sprintf("failed to materialize audio for %s: %v", name, err))
		return Outcome{Item: item, Mode: ModeFailed, Err: err}
	}
	defer audio.Release()

	if s.cfg.VAD.Enabled {
		doc, segErr := s.processSegmented(ctx, log, item, audio)
		if segErr == nil {
			return s.writeTranscript(log, item, doc, ModeSegmented)
		}
		switch {
		case errors.Is(segErr, services.ErrNoSpeech):
			log.Info(fmt.Sprintf("no usable speech found in %s; transcribing whole file", name))
		case errors.Is(segErr, services.ErrItem):
			log.Error(fmt.Sprintf("all segments of %s failed or were empty; transcribing whole file", name))
		default:
			log.Info(fmt.Sprintf("segmentation unavailable for %s (%v); transcribing whole file", name, segErr))
		}
	}

	doc, err := s.processWholeFile(ctx, log, item, audio)
	if err != nil {
		log.Error(fmt.Sprintf("failed to transcribe %s: %v", name, err))
		return Outcome{Item: item, Mode: ModeFailed, Err: err}
	}
	return s.writeTranscript(log, item, doc, ModeWholeFile)
}

func (s *Scanner) writeTranscript(log *scanlog.Logger, item Item, doc *subtitle.Document, mode Mode) Outcome {
	path := item.TranscriptPath()
	if err := doc.WriteFile(path); err != nil {
		err = services.Wrap(services.ErrItem, "scanner", "write",
			fmt.Sprintf("write transcript for %s", item.DisplayName()), err)
		log.Error(err.Error())
		return Outcome{Item: item, Mode: ModeFailed, Err: err}
	}
	log.Success(fmt.Sprintf("wrote %s (%d entries, %s)", path, doc.Len(), mode))
	return Outcome{Item: item, Mode: mode, Transcript: path, Segments: doc.Len()}
}

// processSegmented runs detection over a mono 16 kHz resample of the
// materialized audio and transcribes each timeline segment from the
// original input. Per-segment failures are logged and skipped; the item
// only fails here when no segment yields text.
func (s *Scanner) processSegmented(ctx context.Context, log *scanlog.Logger, item Item, audio Materialized) (*subtitle.Document, error) {
	classifier, err := s.newClassifier()
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "vad", "classifier", "initialize classifier", err)
	}

	analysis := analysisAudioPath(audio.Path)
	defer os.Remove(analysis)
	if err := s.transcoder.ResampleForAnalysis(ctx, audio.Path, -1, analysis); err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "vad", "resample",
			fmt.Sprintf("resample %s for analysis", audio.Path), err)
	}
	samples, err := wav.ReadMono16(analysis)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "vad", "decode",
			fmt.Sprintf("decode analysis audio for %s", item.DisplayName()), err)
	}

	cfg := vad.ConfigFromSettings(s.cfg.VAD.Threshold, s.cfg.VAD.MinSegmentSeconds)
	speech := vad.Detect(samples, cfg, classifier)
	if len(speech) == 0 {
		return nil, services.Wrap(services.ErrNoSpeech, "vad", "detect",
			fmt.Sprintf("no speech above threshold %.2f", cfg.Threshold), nil)
	}
	total := float64(len(samples)) / float64(vad.SampleRate)
	timeline := vad.ExpandWithGaps(speech, total)
	log.Info(fmt.Sprintf("%s: %d speech segments across %.1fs", item.DisplayName(), len(speech), total))

	doc := &subtitle.Document{}
	for i, segment := range timeline {
		s.transcribeSegment(ctx, log, item, segment, i+1, doc)
	}
	if doc.Len() == 0 {
		return nil, services.Wrap(services.ErrItem, "scanner", "segments",
			"every segment failed or returned empty text", nil)
	}
	return doc, nil
}

// transcribeSegment exports one clip from the original input, transcribes
// it, and appends any non-empty text to doc. The clip is removed afterwards
// regardless of outcome.
func (s *Scanner) transcribeSegment(ctx context.Context, log *scanlog.Logger, item Item, segment vad.Segment, index int, doc *subtitle.Document) {
	name := item.DisplayName()
	clip := segmentClipPath(item, index)
	duration := math.Max(segment.Duration(), MinExportDuration)
	if err := s.transcoder.ExportClip(ctx, item.Path, item.Track, segment.Start, duration, clip); err != nil {
		log.Error(fmt.Sprintf("segment %d of %s: clip export failed: %v", index, name, err))
		return
	}
	defer os.Remove(clip)

	text, err := s.client.Transcribe(ctx, clip)
	if err != nil {
		log.Error(fmt.Sprintf("segment %d of %s: transcription failed: %v", index, name, err))
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		log.Info(fmt.Sprintf("segment %d of %s (%s): no text returned", index, name, segment.Kind))
		return
	}
	doc.Append(segment.Start, segment.End, text)
}

// processWholeFile submits the full materialized audio in one request. The
// single entry's span comes from the prober when it answers, otherwise from
// a character-count estimate.
func (s *Scanner) processWholeFile(ctx context.Context, log *scanlog.Logger, item Item, audio Materialized) (*subtitle.Document, error) {
	text, err := s.client.Transcribe(ctx, audio.Path)
	if err != nil {
		return nil, services.Wrap(services.ErrItem, "scanner", "whole-file",
			fmt.Sprintf("transcribe %s", item.DisplayName()), err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, services.Wrap(services.ErrItem, "scanner", "whole-file",
			"transcription returned no text", nil)
	}

	duration, err := s.prober.Duration(ctx, audio.Path)
	if err != nil || duration <= 0 {
		duration = math.Max(float64(utf8.RuneCountInString(text))/15.0, 5.0)
		log.Info(fmt.Sprintf("estimated %.1fs duration for %s from transcript length", duration, item.DisplayName()))
	} else {
		duration = math.Max(duration, 0.5)
	}

	doc := &subtitle.Document{}
	doc.Append(0, duration, text)
	return doc, nil
}
