package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfixedbuf/showcase"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run reports every failure on stderr; -v only adds console logging.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		configFile string
		verbose    bool
	)

	fs := flag.NewFlagSet("coordinates", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configFile, "config", "", "yaml config file")
	fs.BoolVar(&verbose, "v", false, "log to console")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var logger l.Wrapper

	if verbose {
		logger = l.NewConsoleLoggerWrapper()
	} else {
		logger = l.NewNopLoggerWrapper()
	}

	cfg, err := showcase.LoadConfig(configFile)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("config", configFile)).Error("load config failed")
		fmt.Fprintf(stderr, "coordinates: load config %q: %v\n", configFile, err)

		return 1
	}

	if err = showcase.Run(cfg, stdout, logger); err != nil {
		fmt.Fprintf(stderr, "coordinates: %v\n", err)

		return 1
	}

	return 0
}
