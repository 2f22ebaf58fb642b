package logging

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	prev := Level(minLevel.Load())
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		SetLevel(prev)
	})
	return &buf
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestNewLogger_UnknownRequestID(t *testing.T) {
	buf := captureLog(t)
	NewLogger(context.Background()).LogInfof("parse", "nodes=%d", 3)

	assert.Contains(t, buf.String(), "[info] request_id=unknown operation=parse nodes=3")
}

func TestLogger_LevelFiltering(t *testing.T) {
	buf := captureLog(t)
	SetLevel(LevelWarn)

	l := NewLogger(WithRequestID(context.Background(), "rid"))
	l.LogInfof("parse", "nodes=%d", 3)
	l.LogDebugf("parse", "noise")
	assert.Empty(t, buf.String())

	l.LogWarnf("parse", "slow=%t", true)
	l.LogError("parse", errors.New("boom"))
	assert.Contains(t, buf.String(), "[warn] request_id=rid operation=parse slow=true")
	assert.Contains(t, buf.String(), "[error] request_id=rid operation=parse error=boom")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
}
