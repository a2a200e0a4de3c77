package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomFormatterLine(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&CustomFormatter{SystemName: "portfolio-service"})

	l.WithField("status", 404).WithField("method", "GET").Warn("Event ID: ROUTE_NOT_FOUND, Description: no route")

	line := buf.String()
	assert.Contains(t, line, "Event Source: portfolio-service, ")
	assert.Contains(t, line, "Event Type: WARNING, ")
	assert.Contains(t, line, "Message: Event ID: ROUTE_NOT_FOUND, Description: no route")
	// fields are emitted in key order
	assert.Contains(t, line, ", method: GET, status: 404")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestConfigureLevelAndFile(t *testing.T) {
	l := logrus.New()
	file := filepath.Join(t.TempDir(), "logs", "service.log")

	configure(l, Options{SystemName: "svc", Level: "debug", File: file})
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.True(t, l.ReportCaller)

	configure(l, Options{SystemName: "svc", Level: "nonsense"})
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	f, ok := l.Formatter.(*CustomFormatter)
	require.True(t, ok)
	assert.Equal(t, "svc", f.SystemName)
}
