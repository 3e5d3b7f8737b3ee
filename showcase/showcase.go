package showcase

import (
	"fmt"
	"io"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfixedbuf/fixedbuf"
	"github.com/sgostarter/libfixedbuf/point"
)

func Banner(options ...Option) string {
	opts := optionNew(options...)

	return fmt.Sprintf("Lambda functions can have %s!", opts.subject)
}

// Fill stores (xs[i],ys[i]) at index i.
func Fill(buf *fixedbuf.Buffer, xs, ys []int) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: xs %d, ys %d", ErrCoordinatesLength, len(xs), len(ys))
	}

	for idx := range xs {
		if err := buf.Set(idx, point.New(xs[idx], ys[idx])); err != nil {
			return err
		}
	}

	return nil
}

// Render writes one "Coordinates: (X,Y)" line per slot.
func Render(w io.Writer, buf *fixedbuf.Buffer) (err error) {
	buf.Range(func(_ int, p point.Point2d) bool {
		_, err = fmt.Fprintf(w, "Coordinates: %s\n", p)

		return err == nil
	})

	return
}

func Run(cfg *Config, w io.Writer, logger l.Wrapper) error {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "showcase"))

	if cfg == nil {
		cfg = DefaultConfig()
	}

	if _, err := fmt.Fprintf(w, "%s\nFeature 1: %s\n", cfg.Greeting, Banner(WithSubject(cfg.Subject))); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("write banner failed")

		return err
	}

	xs, ys, err := Coordinates(cfg)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.IntField("xs", len(cfg.Xs)), l.IntField("ys", len(cfg.Ys))).
			Error("invalid coordinates")

		return err
	}

	var buf fixedbuf.Buffer

	if err = Fill(&buf, xs, ys); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("fill buffer failed")

		return err
	}

	logger.WithFields(l.IntField("length", buf.Length())).Debug("buffer filled")

	if err = Render(w, &buf); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("render failed")

		return err
	}

	return nil
}
