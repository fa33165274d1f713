package scanner

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"autoasr/internal/config"
	"autoasr/internal/journal"
	"autoasr/internal/logging"
	"autoasr/internal/media/ffmpeg"
	"autoasr/internal/media/ffprobe"
	"autoasr/internal/scanlog"
	"autoasr/internal/services"
	"autoasr/internal/transcribe"
	"autoasr/internal/vad"
)

// Transcoder abstracts the ffmpeg invocations the pipeline performs.
type Transcoder interface {
	ExtractTrack(ctx context.Context, source string, streamIndex int, dest string) error
	ResampleForAnalysis(ctx context.Context, source string, streamIndex int, dest string) error
	ExportClip(ctx context.Context, source string, streamIndex int, startSec, durationSec float64, dest string) error
}

// Prober abstracts the ffprobe queries the pipeline performs.
type Prober interface {
	AudioStreamIndexes(ctx context.Context, path string) ([]int, error)
	Duration(ctx context.Context, path string) (float64, error)
}

// Journal receives one record per processed item. Optional.
type Journal interface {
	Append(ctx context.Context, record journal.Record) error
}

// Options configures a Scanner. Config is required; every collaborator left
// nil is replaced with the production implementation built from Config.
type Options struct {
	Config        *config.Config
	Logger        *slog.Logger
	Stream        *scanlog.Stream
	Client        transcribe.Client
	Prober        Prober
	Transcoder    Transcoder
	Journal       Journal
	NewClassifier func() (vad.Classifier, error)
}

// Scanner walks a media directory and transcribes every (file, track) pair
// that has no transcript yet. Items are processed strictly sequentially.
type Scanner struct {
	cfg           *config.Config
	logger        *slog.Logger
	stream        *scanlog.Stream
	client        transcribe.Client
	prober        Prober
	transcoder    Transcoder
	journal       Journal
	newClassifier func() (vad.Classifier, error)
}

// New assembles a Scanner, filling in production collaborators for any left
// unset in opts.
func New(opts Options) (*Scanner, error) {
	if opts.Config == nil {
		return nil, errors.New("scanner: config is required")
	}
	s := &Scanner{
		cfg:           opts.Config,
		logger:        opts.Logger,
		stream:        opts.Stream,
		client:        opts.Client,
		prober:        opts.Prober,
		transcoder:    opts.Transcoder,
		journal:       opts.Journal,
		newClassifier: opts.NewClassifier,
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.client == nil {
		client, err := transcribe.New(opts.Config.Transcription)
		if err != nil {
			return nil, err
		}
		s.client = client
	}
	if s.prober == nil {
		s.prober = NewProber(opts.Config.FFprobeBinary())
	}
	if s.transcoder == nil {
		s.transcoder = ffmpeg.New(opts.Config.FFmpegBinary())
	}
	if s.newClassifier == nil {
		s.newClassifier = func() (vad.Classifier, error) {
			return vad.NewEnergyClassifier()
		}
	}
	return s, nil
}

// Scan runs one full pass over the configured media directory. The returned
// report carries every log entry and per-item outcome; fatal setup problems
// (blank credential, missing directory, concurrent scan) abort before any
// item is processed.
func (s *Scanner) Scan(ctx context.Context) (*Report, error) {
	scanID := uuid.NewString()
	log := scanlog.NewLogger(s.stream, logging.NewComponentLogger(s.logger, "scanner").With(
		logging.String(logging.FieldScanID, scanID)))

	fail := func(err error) (*Report, error) {
		log.Error(err.Error())
		log.Finish()
		return nil, err
	}

	if strings.TrimSpace(s.cfg.Transcription.APIKey) == "" {
		return fail(services.Wrap(services.ErrFatal, "scanner", "scan",
			"transcription api_key is not configured", nil))
	}
	root := s.cfg.Paths.MediaDir
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fail(services.Wrap(services.ErrFatal, "scanner", "scan",
			fmt.Sprintf("media directory %q does not exist", root), err))
	}

	lock := flock.New(scanLockPath(root))
	locked, err := lock.TryLock()
	if err != nil {
		return fail(services.Wrap(services.ErrFatal, "scanner", "scan", "acquire scan lock", err))
	}
	if !locked {
		return fail(services.Wrap(services.ErrFatal, "scanner", "scan",
			fmt.Sprintf("another scan of %q is already running", root), nil))
	}
	defer func() {
		_ = lock.Unlock()
	}()

	report := &Report{ScanID: scanID, Root: root}
	log.Info(fmt.Sprintf("scanning %s", root))

	items, err := s.discover(ctx, root, log)
	if err != nil {
		return fail(err)
	}

	for _, item := range items {
		outcome := s.processItem(ctx, log, item)
		report.Outcomes = append(report.Outcomes, outcome)
		s.record(ctx, scanID, outcome)
	}

	log.Info(fmt.Sprintf("scan complete: %d succeeded, %d failed", report.SucceededCount(), report.FailedCount()))
	report.Entries = log.Finish()
	return report, nil
}

// Pending lists the items a scan would process, without processing any.
// Skip-decision log entries go to the component logger only.
func (s *Scanner) Pending(ctx context.Context) ([]Item, error) {
	root := s.cfg.Paths.MediaDir
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, services.Wrap(services.ErrFatal, "scanner", "pending",
			fmt.Sprintf("media directory %q does not exist", root), err)
	}
	log := scanlog.NewLogger(nil, logging.NewComponentLogger(s.logger, "scanner"))
	return s.discover(ctx, root, log)
}

func (s *Scanner) record(ctx context.Context, scanID string, outcome Outcome) {
	if s.journal == nil {
		return
	}
	err := s.journal.Append(ctx, journal.Record{
		ScanID: scanID,
		Path:   outcome.Item.Path,
		Track:  outcome.Item.Track,
		Mode:   outcome.Mode.String(),
		Detail: outcome.Detail(),
	})
	if err != nil {
		s.logger.Warn("journal append failed", logging.Error(err))
	}
}

// scanLockPath keys the single-scan lock on the root directory so scans of
// unrelated trees do not exclude each other.
func scanLockPath(root string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(root)))
	return filepath.Join(os.TempDir(), fmt.Sprintf("autoasr-%x.lock", sum[:8]))
}

type mediaProber struct {
	binary string
}

// NewProber returns the ffprobe-backed Prober used in production.
func NewProber(binary string) Prober {
	return mediaProber{binary: binary}
}

func (p mediaProber) AudioStreamIndexes(ctx context.Context, path string) ([]int, error) {
	result, err := ffprobe.Inspect(ctx, p.binary, path)
	if err != nil {
		return nil, err
	}
	return result.AudioStreamIndexes(), nil
}

func (p mediaProber) Duration(ctx context.Context, path string) (float64, error) {
	result, err := ffprobe.Inspect(ctx, p.binary, path)
	if err != nil {
		return 0, err
	}
	return result.DurationSeconds()
}
