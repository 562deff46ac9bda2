// Package main overlays a logo onto a live GStreamer pipeline.
//
// The pipeline is given in gst-launch syntax and must contain an element,
// named with -element, whose src pad carries NV12 video. Every buffer leaving
// that element is overlaid in place.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/insertlogo/internal/cli"
	"github.com/opd-ai/insertlogo/transport"
)

const defaultPipeline = "videotestsrc num-buffers=600 ! video/x-raw,format=NV12,width=1280,height=720,framerate=30/1 ! " +
	"identity name=logo ! videoconvert ! autovideosink"

// CLI configuration
type CLIConfig struct {
	pipeline   string
	element    string
	config     string
	properties cli.PropertyList
	logLevel   string
	logFormat  string
	help       bool
}

// parseCLIFlags parses command-line flags and returns the configuration.
func parseCLIFlags() *CLIConfig {
	config := &CLIConfig{}

	// Pipeline configuration
	flag.StringVar(&config.pipeline, "pipeline", defaultPipeline, "Pipeline description in gst-launch syntax")
	flag.StringVar(&config.element, "element", "logo", "Name of the element whose output is overlaid")

	// Overlay configuration
	flag.StringVar(&config.config, "config", "", "YAML overlay options file")
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
	fmt.Println("NV12 Logo Overlay for GStreamer")
	fmt.Println("===============================")
	fmt.Println()
	fmt.Println("Runs a pipeline and burns a PNG logo into the output of one of its elements.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s [options]\n", os.Args[0])
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	cli.PrintProperties(os.Stdout)
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  # Rotating logo on a test pattern\n")
	fmt.Printf("  %s -set logo-file=brand.png -set rotation=clockwise -set speed=fast\n", os.Args[0])
	fmt.Println()
	fmt.Printf("  # Overlay a file and encode the result\n")
	fmt.Printf("  %s -pipeline \"filesrc location=in.mp4 ! decodebin ! videoconvert ! video/x-raw,format=NV12 ! identity name=logo ! videoconvert ! x264enc ! mp4mux ! filesink location=out.mp4\"\n", os.Args[0])
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(config *CLIConfig) error {
	if strings.TrimSpace(config.pipeline) == "" {
		return fmt.Errorf("pipeline description cannot be empty")
	}

	if config.element == "" {
		return fmt.Errorf("element name cannot be empty")
	}

	if !strings.Contains(config.pipeline, "name="+config.element) {
		return fmt.Errorf("pipeline has no element named %q", config.element)
	}

	return nil
}

// setupSignalHandling sets up graceful shutdown on interrupt signals.
func setupSignalHandling(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		sig := <-sigChan
		fmt.Fprintf(os.Stderr, "\n🛑 Received signal %v, stopping pipeline...\n", sig)
		cancel()
	}()
}

// main is the entry point for the pipeline overlay tool.
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

	logger, err := cli.NewLogger(os.Stderr, cliConfig.logLevel, cliConfig.logFormat)
	if err != nil {
		cli.Exit("Configuration error: %v", err)
	}

	var files []string
	if cliConfig.config != "" {
		files = append(files, cliConfig.config)
	}
	filters, err := cli.BuildFilters(files, cliConfig.properties, logger)
	if err != nil {
		cli.Exit("Failed to configure overlay: %v", err)
	}
	filter := filters[0]

	host, err := transport.NewHost(cliConfig.pipeline, cliConfig.element, filter, logger)
	if err != nil {
		cli.Exit("Failed to create pipeline: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel)

	runErr := host.Run(ctx)

	logger.WithFields(logrus.Fields{
		"function": "main",
		"overlay":  filter.GetName(),
		"frames":   host.Frames(),
	}).Info("Pipeline finished")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		cli.Exit("Overlay failed: %v", runErr)
	}
}
