// Package cli holds the flag plumbing shared by the insertlogo commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/insertlogo"
	"github.com/opd-ai/insertlogo/config"
)

// ErrMalformedProperty is returned for a -set value without '='.
var ErrMalformedProperty = errors.New("property must be given as name=value")

// Property is one name=value pair from the command line.
type Property struct {
	Name  string
	Value string
}

// PropertyList implements flag.Value for a repeatable -set flag.
type PropertyList []Property

// String implements flag.Value.
func (p *PropertyList) String() string {
	parts := make([]string, 0, len(*p))
	for _, prop := range *p {
		parts = append(parts, prop.Name+"="+prop.Value)
	}
	return strings.Join(parts, " ")
}

// Set implements flag.Value.
func (p *PropertyList) Set(raw string) error {
	name, value, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("%w: %q", ErrMalformedProperty, raw)
	}
	*p = append(*p, Property{Name: name, Value: value})
	return nil
}

// StringList implements flag.Value for repeatable string flags.
type StringList []string

// String implements flag.Value.
func (s *StringList) String() string {
	return strings.Join(*s, ",")
}

// Set implements flag.Value.
func (s *StringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// NewLogger returns a logger writing to w at the named level. format is
// "text" or "json".
func NewLogger(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q: must be text or json", format)
	}

	return logger, nil
}

// BuildFilters creates one filter per options file, or a single filter
// with default options when there are none. Command line properties are
// applied to every filter after its file.
func BuildFilters(files []string, props PropertyList, logger *logrus.Logger) ([]*insertlogo.Filter, error) {
	if len(files) == 0 {
		files = []string{""}
	}

	filters := make([]*insertlogo.Filter, 0, len(files))
	for _, path := range files {
		opts := config.NewOptions()
		if path != "" {
			loaded, err := config.LoadFile(path)
			if err != nil {
				return nil, err
			}
			opts = loaded
		}

		f := insertlogo.New(opts, insertlogo.WithLogger(logger))
		for _, prop := range props {
			if err := f.SetPropertyString(prop.Name, prop.Value); err != nil {
				return nil, fmt.Errorf("property %s: %w", prop.Name, err)
			}
		}
		filters = append(filters, f)
	}

	return filters, nil
}

// PrintProperties writes the property table for usage output.
func PrintProperties(w io.Writer) {
	fmt.Fprintln(w, "Properties (-set name=value):")
	for _, p := range insertlogo.Properties() {
		fmt.Fprintf(w, "  %-12s %s (default: %s)\n", p.Name, p.Description, p.Default)
	}
}

// Exit prints a configuration error and exits with status 1.
func Exit(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "❌ "+format+"\n", args...)
	os.Exit(1)
}
