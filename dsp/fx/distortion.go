package fx

import (
	"fmt"

	"github.com/iaaaanb/Keyboard/dsp/core"
)

const (
	defaultDistortionDrive = 2.0

	minDistortionDrive = 0.01
	maxDistortionDrive = 20.0
)

// DistortionOption mutates distortion construction parameters.
type DistortionOption func(*distortionConfig) error

type distortionConfig struct {
	drive float64
}

func defaultDistortionConfig() distortionConfig {
	return distortionConfig{
		drive: defaultDistortionDrive,
	}
}

// WithDrive sets the distortion drive. Larger values clip harder; the
// output magnitude is always bounded by 1/drive.
func WithDrive(drive float64) DistortionOption {
	return func(cfg *distortionConfig) error {
		if drive < minDistortionDrive || drive > maxDistortionDrive || !core.IsFinite(drive) {
			return fmt.Errorf("distortion drive must be in [%g, %g]: %f",
				minDistortionDrive, maxDistortionDrive, drive)
		}
		cfg.drive = drive
		return nil
	}
}

// Distortion soft-clips the buffer with tanh(drive*x)/drive. The
// rescaling bounds the output magnitude by 1/drive.
type Distortion struct {
	drive float64
}

// NewDistortion creates a soft-clip distortion with practical defaults
// and optional overrides.
func NewDistortion(opts ...DistortionOption) (*Distortion, error) {
	cfg := defaultDistortionConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Distortion{drive: cfg.drive}, nil
}

// Apply soft-clips buf in place.
func (d *Distortion) Apply(buf []float64) error {
	for i, x := range buf {
		buf[i] = mathTanh(d.drive*x) / d.drive
	}
	return nil
}

// Drive returns the distortion drive.
func (d *Distortion) Drive() float64 { return d.drive }
