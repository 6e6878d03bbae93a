// Package logging builds the zap logger used by hasher. Logs always go to
// stderr so that stdout carries nothing but digests.
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// New returns a development logger at debug level when verbose is set, and a
// production logger that only reports warnings and above otherwise.
func New(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.Sampling = nil
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return logger, nil
}
