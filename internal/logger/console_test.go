package logger

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "warn")

	l.Tracef("trace message")
	l.Debugf("debug message")
	l.Infof("info message")
	l.Warnf("warn message")
	l.Errorf("error message")

	out := buf.String()
	assert.NotContains(t, out, "trace message")
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestDefaultLevelIsInfo(t *testing.T) {
	for _, level := range []string{"", "loud", "INFO"} {
		var buf bytes.Buffer
		l := NewConsoleLogger(&buf, level)

		l.Debugf("hidden")
		l.Infof("shown")

		assert.NotContains(t, buf.String(), "hidden", "level %q", level)
		assert.Contains(t, buf.String(), "shown", "level %q", level)
	}
}

func TestMessageFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "info")

	l.Infof("scored %d/%d", 85, 100)

	assert.Regexp(t, regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[INFO\] scored 85/100\n$`), buf.String())
}

func TestNilWriterDiscards(t *testing.T) {
	l := NewConsoleLogger(nil, "info")
	// Must not panic.
	l.Infof("dropped")
}
