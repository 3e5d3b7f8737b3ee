package showcase

import (
	"fmt"
	"math"
	"os"

	"github.com/sgostarter/libfixedbuf/fixedbuf"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Greeting string        `yaml:"greeting,omitempty"`
	Subject  string        `yaml:"subject,omitempty"`
	Xs       []interface{} `yaml:"xs,omitempty"`
	Ys       []interface{} `yaml:"ys,omitempty"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		Greeting: "Hello, World!",
		Xs:       make([]interface{}, 0, fixedbuf.Length),
		Ys:       make([]interface{}, 0, fixedbuf.Length),
	}

	for idx := 0; idx < fixedbuf.Length; idx++ {
		cfg.Xs = append(cfg.Xs, idx)
		cfg.Ys = append(cfg.Ys, idx*idx)
	}

	return cfg
}

// LoadConfig reads a yaml config. Keys absent from the file keep their
// DefaultConfig values; an empty file name yields DefaultConfig.
func LoadConfig(file string) (*Config, error) {
	cfg := DefaultConfig()

	if file == "" {
		return cfg, nil
	}

	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var fileCfg Config

	err = yaml.Unmarshal(d, &fileCfg)
	if err != nil {
		return nil, err
	}

	if fileCfg.Greeting != "" {
		cfg.Greeting = fileCfg.Greeting
	}

	if fileCfg.Subject != "" {
		cfg.Subject = fileCfg.Subject
	}

	if len(fileCfg.Xs) > 0 {
		cfg.Xs = fileCfg.Xs
	}

	if len(fileCfg.Ys) > 0 {
		cfg.Ys = fileCfg.Ys
	}

	return cfg, nil
}

// Coordinates converts the configured sequences to ints. Both must hold
// exactly fixedbuf.Length values.
func Coordinates(cfg *Config) (xs, ys []int, err error) {
	if len(cfg.Xs) != fixedbuf.Length || len(cfg.Ys) != fixedbuf.Length {
		err = fmt.Errorf("%w: xs %d, ys %d, want %d", ErrCoordinatesLength, len(cfg.Xs), len(cfg.Ys), fixedbuf.Length)

		return
	}

	xs, err = toInts("xs", cfg.Xs)
	if err != nil {
		return
	}

	ys, err = toInts("ys", cfg.Ys)

	return
}

func toInts(name string, vs []interface{}) ([]int, error) {
	ns := make([]int, 0, len(vs))

	for idx, v := range vs {
		if f, ok := floatValue(v); ok && (math.IsInf(f, 0) || f != math.Trunc(f)) {
			return nil, fmt.Errorf("%w: %s[%d]: %v is not an integer", ErrBadCoordinate, name, idx, v)
		}

		n, err := cast.ToIntE(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", ErrBadCoordinate, name, idx, err)
		}

		ns = append(ns, n)
	}

	return ns, nil
}

// floatValue reports float inputs, which cast would truncate.
func floatValue(v interface{}) (float64, bool) {
	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	}

	return 0, false
}
