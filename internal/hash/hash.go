package hash

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"hasher/internal/input"
)

// Config holds configuration for a hashing run.
type Config struct {
	Algorithm string
	Source    input.LineSource
	Stdout    io.Writer
	Logger    *zap.Logger
}

// Option configures a Config.
type Option func(*Config)

func WithAlgorithm(name string) Option       { return func(c *Config) { c.Algorithm = name } }
func WithSource(src input.LineSource) Option { return func(c *Config) { c.Source = src } }
func WithStdout(w io.Writer) Option          { return func(c *Config) { c.Stdout = w } }
func WithLogger(logger *zap.Logger) Option   { return func(c *Config) { c.Logger = logger } }

// Digest hashes data with a in a single update.
func Digest(a Algorithm, data []byte) []byte {
	h := a.New()
	h.Write(data)
	return h.Sum(nil)
}

// Print writes the lowercase hex digest of line to w with no separators and
// no trailing newline.
func Print(w io.Writer, a Algorithm, line string) error {
	_, err := io.WriteString(w, hex.EncodeToString(Digest(a, []byte(line))))
	return err
}

// Run hashes every line of the configured source and writes the digests back
// to back, followed by a single newline.
func Run(opts ...Option) error {
	cfg := &Config{Stdout: os.Stdout, Logger: zap.NewNop()}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.Source == nil {
		cfg.Source = input.NewLines(os.Stdin)
	}

	algo, known := Lookup(cfg.Algorithm)
	cfg.Logger.Debug("resolved algorithm",
		zap.String("requested", cfg.Algorithm),
		zap.Stringer("algorithm", algo),
		zap.Bool("fallback", !known),
	)

	count := 0
	for {
		line, ok, err := cfg.Source.Next()
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
		if !ok {
			break
		}
		if err := Print(cfg.Stdout, algo, line); err != nil {
			return errors.Wrapf(err, "writing %s digest", algo)
		}
		count++
	}

	if _, err := io.WriteString(cfg.Stdout, "\n"); err != nil {
		return errors.Wrap(err, "writing output")
	}
	cfg.Logger.Debug("done", zap.Int("lines", count))
	return nil
}
