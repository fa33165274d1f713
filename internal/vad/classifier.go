package vad

import (
	"errors"
	"math"
)

// Classifier scores one fixed-size chunk with a speech probability in [0, 1].
// Implementations may carry internal state; a classifier instance is scoped
// to a single detection pass and must not be shared across streams.
type Classifier interface {
	Predict(chunk []int16) float64
}

const (
	// floorRise controls how quickly the tracked noise floor follows rising
	// energy; the floor drops immediately on quieter chunks.
	floorRise = 0.02
	// snrKnee is the energy-over-floor ratio mapped to probability 0.5.
	snrKnee = 3.0
	// silenceRMS is the normalized energy below which a chunk is always
	// scored as silence.
	silenceRMS = 1e-4
)

// EnergyClassifier scores chunks by short-term energy against an adaptive
// noise floor. It is the default classifier when no model-backed
// implementation is injected.
type EnergyClassifier struct {
	floor       float64
	initialized bool
}

// NewEnergyClassifier constructs a fresh classifier for one detection pass.
func NewEnergyClassifier() (*EnergyClassifier, error) {
	return &EnergyClassifier{}, nil
}

// Predict scores a single chunk. Chunks must hold exactly ChunkSize samples.
func (c *EnergyClassifier) Predict(chunk []int16) float64 {
	if len(chunk) != ChunkSize {
		return 0
	}

	var sum float64
	for _, sample := range chunk {
		normalized := float64(sample) / math.MaxInt16
		sum += normalized * normalized
	}
	rms := math.Sqrt(sum / float64(len(chunk)))

	if !c.initialized {
		c.floor = rms
		c.initialized = true
	} else if rms < c.floor {
		c.floor = rms
	} else {
		c.floor += (rms - c.floor) * floorRise
	}

	if rms < silenceRMS {
		return 0
	}

	ratio := rms / (c.floor + silenceRMS)
	if ratio <= 1 {
		return 0
	}
	excess := ratio - 1
	return excess / (excess + snrKnee)
}

// ErrClassifierUnavailable reports that no classifier could be constructed;
// callers fall back to whole-file transcription.
var ErrClassifierUnavailable = errors.New("speech classifier unavailable")
