package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturedGormLogger(level logger.LogLevel) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &gormSlogLogger{
		logger:        base,
		level:         level,
		slowThreshold: gormSlowThreshold,
	}, buf
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_Trace_SlowQueryWarns(t *testing.T) {
	gl, buf := newCapturedGormLogger(logger.Warn)

	begin := time.Now().Add(-2 * gormSlowThreshold)
	gl.Trace(context.Background(), begin, sqlFn("SELECT * FROM alertas", 10), nil)

	out := buf.String()
	assert.Contains(t, out, "slow query")
	assert.Contains(t, out, "SELECT * FROM alertas")
}

func TestGormSlogLogger_Trace_FastQuerySilentAtWarn(t *testing.T) {
	gl, buf := newCapturedGormLogger(logger.Warn)

	gl.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), nil)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_Trace_RecordNotFoundIsFiltered(t *testing.T) {
	gl, buf := newCapturedGormLogger(logger.Error)

	gl.Trace(context.Background(), time.Now(), sqlFn("SELECT * FROM pulseras", 0), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_Trace_ErrorLogged(t *testing.T) {
	gl, buf := newCapturedGormLogger(logger.Error)

	gl.Trace(context.Background(), time.Now(), sqlFn("INSERT INTO alertas", 0), errors.New("connection reset"))

	out := buf.String()
	assert.Contains(t, out, "query failed")
	assert.Contains(t, out, "connection reset")
}
