// Command svg2polylines converts the paths of an SVG document into
// polylines and prints them as JSON.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/term"

	"github.com/mindera-gaming/svg2polylines/internal/preview"
	"github.com/mindera-gaming/svg2polylines/svg"
)

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

var (
	tolerance   = flag.Float64("tolerance", svg.DefaultTolerance, "Maximum deviation between curves and polylines")
	simplify    = flag.Float64("simplify", 0, "Simplification epsilon, 0 disables it")
	workers     = flag.Int("workers", runtime.NumCPU(), "Number of path elements flattened concurrently")
	destination = flag.String("out", pipeName, "Destination of the JSON output")
	previewPath = flag.String("preview", "", "Write a PNG preview of the polylines to this file")
	verbose     = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <path/to/file.svg|->\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	svg.SetLogger(logger)

	if err := run(flag.Arg(0), logger); err != nil {
		logger.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func run(source string, logger *slog.Logger) error {
	data, err := readSource(source)
	if err != nil {
		return err
	}

	lines, err := svg.Parse(data,
		svg.WithTolerance(*tolerance),
		svg.WithSimplify(*simplify),
		svg.WithWorkers(*workers),
	)
	if err != nil {
		var docErr svg.DocumentError
		if errors.As(err, &docErr) {
			return err
		}
		// malformed elements were skipped, the rest is still valid
		logger.Warn("some path elements were skipped", "error", err)
	}

	points := 0
	for _, l := range lines {
		points += len(l)
	}
	logger.Info("converted", "polylines", len(lines), "points", points)

	if err := writeOutput(*destination, lines); err != nil {
		return err
	}

	if *previewPath != "" {
		f, err := os.Create(*previewPath)
		if err != nil {
			return fmt.Errorf("unable to create preview file: %w", err)
		}
		writeErr := preview.WritePNG(f, lines, preview.DefaultOptions())
		closeErr := f.Close()
		if err := errors.Join(writeErr, closeErr); err != nil {
			return fmt.Errorf("unable to write preview: %w", err)
		}
	}

	return nil
}

// readSource reads the whole document from a file or stdin
func readSource(source string) ([]byte, error) {
	if source == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, fmt.Errorf("`-` should be used with a pipe for stdin")
		}
		return io.ReadAll(os.Stdin)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("unable to read the source file: %w", err)
	}

	return data, nil
}

// writeOutput writes the JSON to a file or stdout, indented when a person
// is likely to read it
func writeOutput(destination string, lines []svg.Polyline) error {
	if destination == pipeName {
		return svg.WriteJSON(os.Stdout, lines, term.IsTerminal(int(os.Stdout.Fd())))
	}

	f, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	writeErr := svg.WriteJSON(f, lines, true)
	closeErr := f.Close()
	if writeErr != nil {
		return writeErr
	}

	return closeErr
}
