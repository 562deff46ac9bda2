// Package main overlays a logo onto raw NV12 video files.
//
// Frames are read back to back from the input, one packed NV12 picture per
// frame, and written to the output in the same layout. A raw file can be
// produced with ffmpeg:
//
//	ffmpeg -i input.mp4 -f rawvideo -pix_fmt nv12 input.nv12
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/insertlogo/av/video"
	"github.com/opd-ai/insertlogo/internal/cli"
	"github.com/opd-ai/insertlogo/transport"
)

// CLI configuration
type CLIConfig struct {
	input      string
	output     string
	width      int
	height     int
	maxFrames  int
	configs    cli.StringList
	properties cli.PropertyList
	logLevel   string
	logFormat  string
	help       bool
}

// parseCLIFlags parses command-line flags and returns the configuration.
func parseCLIFlags() *CLIConfig {
	config := &CLIConfig{}

	// Input and output
	flag.StringVar(&config.input, "in", "", "Raw NV12 input file (- for stdin)")
	flag.StringVar(&config.output, "out", "", "Raw NV12 output file (- for stdout)")
	flag.IntVar(&config.width, "width", 0, "Frame width in pixels")
	flag.IntVar(&config.height, "height", 0, "Frame height in pixels")
	flag.IntVar(&config.maxFrames, "frames", 0, "Stop after this many frames (0 for all)")

	// Overlay configuration
	flag.Var(&config.configs, "config", "YAML overlay options file; repeat to stack overlays")
	flag.Var(&config.properties, "set", "Overlay property as name=value; repeatable")

	// Logging configuration
	flag.StringVar(&config.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&config.logFormat, "log-format", "text", "Log format (text, json)")

	// Help
	flag.BoolVar(&config.help, "help", false, "Show help message")

	flag.Parse()
	return config
}

// printUsage prints the usage information.
func printUsage() {
	fmt.Println("NV12 Logo Overlay")
	fmt.Println("=================")
	fmt.Println()
	fmt.Println("Burns a PNG logo into raw NV12 frames, optionally scrolling or rotating it.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s -in input.nv12 -out output.nv12 -width W -height H [options]\n", os.Args[0])
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	cli.PrintProperties(os.Stdout)
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  # Static logo in the top right corner\n")
	fmt.Printf("  %s -in in.nv12 -out out.nv12 -width 1920 -height 1080 -set logo-file=brand.png\n", os.Args[0])
	fmt.Println()
	fmt.Printf("  # Semi-transparent logo scrolling right to left\n")
	fmt.Printf("  %s -in in.nv12 -out out.nv12 -width 1280 -height 720 -set scrolling=rtl -set alpha=60\n", os.Args[0])
	fmt.Println()
	fmt.Printf("  # Options from a file, failing on any invalid value\n")
	fmt.Printf("  %s -in in.nv12 -out out.nv12 -width 640 -height 480 -config overlay.yaml -set strict-mode=true\n", os.Args[0])
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(config *CLIConfig) error {
	if config.input == "" {
		return fmt.Errorf("input file is required")
	}

	if config.output == "" {
		return fmt.Errorf("output file is required")
	}

	if config.width <= 0 || config.height <= 0 {
		return fmt.Errorf("frame size must be positive, got %dx%d", config.width, config.height)
	}

	if config.maxFrames < 0 {
		return fmt.Errorf("frame limit cannot be negative")
	}

	return nil
}

// setupSignalHandling sets up graceful shutdown on interrupt signals.
func setupSignalHandling(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		sig := <-sigChan
		fmt.Fprintf(os.Stderr, "\n🛑 Received signal %v, stopping after the current frame...\n", sig)
		cancel()
	}()
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// run copies frames from r to w through the effect chain.
func run(ctx context.Context, r io.Reader, w io.Writer, layout transport.Layout, chain video.Effect, maxFrames int, log *logrus.Entry) (int, error) {
	data := make([]byte, layout.Size)
	frame, err := layout.Frame(data)
	if err != nil {
		return 0, err
	}

	count := 0
	for maxFrames == 0 || count < maxFrames {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		if _, err := io.ReadFull(r, data); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				log.WithFields(logrus.Fields{
					"function": "run",
					"frame":    count,
				}).Warn("Trailing partial frame ignored")
				break
			}
			return count, fmt.Errorf("failed to read frame %d: %w", count, err)
		}

		if err := chain.Apply(frame); err != nil {
			return count, err
		}

		if _, err := w.Write(data); err != nil {
			return count, fmt.Errorf("failed to write frame %d: %w", count, err)
		}
		count++
	}

	return count, nil
}

// main is the entry point for the file overlay tool.
func main() {
	cliConfig := parseCLIFlags()

	if cliConfig.help {
		printUsage()
		os.Exit(0)
	}

	if err := validateCLIConfig(cliConfig); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Use -help for usage information.\n")
		os.Exit(1)
	}

	// Logs go to stderr so -out - can stream frames to stdout.
	logger, err := cli.NewLogger(os.Stderr, cliConfig.logLevel, cliConfig.logFormat)
	if err != nil {
		cli.Exit("Configuration error: %v", err)
	}

	filters, err := cli.BuildFilters(cliConfig.configs, cliConfig.properties, logger)
	if err != nil {
		cli.Exit("Failed to configure overlay: %v", err)
	}
	chain := video.NewEffectChain()
	for _, f := range filters {
		chain.AddEffect(f)
	}

	in, err := openInput(cliConfig.input)
	if err != nil {
		cli.Exit("Failed to open input: %v", err)
	}
	defer in.Close()

	out, err := openOutput(cliConfig.output)
	if err != nil {
		cli.Exit("Failed to open output: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel)

	log := logger.WithFields(logrus.Fields{
		"input":  cliConfig.input,
		"output": cliConfig.output,
		"chain":  chain.GetName(),
	})

	layout := transport.PackedLayout(cliConfig.width, cliConfig.height)
	writer := bufio.NewWriterSize(out, layout.Size)
	frames, runErr := run(ctx, bufio.NewReader(in), writer, layout, chain, cliConfig.maxFrames, log)
	if err := writer.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to flush output: %w", err)
	}
	if err := out.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to close output: %w", err)
	}

	log.WithFields(logrus.Fields{
		"function": "main",
		"frames":   frames,
	}).Info("Overlay finished")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		cli.Exit("Overlay failed after %d frames: %v", frames, runErr)
	}
}
