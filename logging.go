package insertlogo

import (
	"github.com/sirupsen/logrus"
)

// quietLogger returns a logger sharing base's output, hooks and formatter
// that only emits warnings and errors.
func quietLogger(base *logrus.Logger) *logrus.Logger {
	level := base.GetLevel()
	if level > logrus.WarnLevel {
		level = logrus.WarnLevel
	}

	return &logrus.Logger{
		Out:          base.Out,
		Hooks:        base.Hooks,
		Formatter:    base.Formatter,
		ReportCaller: base.ReportCaller,
		Level:        level,
		ExitFunc:     base.ExitFunc,
	}
}

// instanceEntry builds the per-instance log entry.
func (f *Filter) instanceEntry(silent bool) *logrus.Entry {
	logger := f.logger
	if silent {
		logger = quietLogger(f.logger)
	}
	return logger.WithFields(logrus.Fields{
		"package":  "insertlogo",
		"instance": f.id.String(),
	})
}
