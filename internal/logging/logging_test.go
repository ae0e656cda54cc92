package logging

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	gofuzz "github.com/google/gofuzz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPlainOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, Options{Name: "oset", NoColor: true})
	logger.Info("read set", zap.Int("count", 3))
	logger.Debug("hidden")

	assert.Equal(t, "INFO  oset read set { \"count\": 3 }\n", buf.String())
}

func TestVerbose(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, Options{Verbose: true, NoColor: true})
	logger.Debug("shown")

	assert.Equal(t, "DEBUG shown\n", buf.String())
}

func TestColoredOutput(t *testing.T) {
	testCases := []struct {
		testName string
		log      func(*zap.Logger)
		want     string
	}{
		{"info", func(l *zap.Logger) { l.Info("x") }, "\x1b[32mINFO \x1b[0m"},
		{"warn", func(l *zap.Logger) { l.Warn("x") }, "\x1b[33mWARN \x1b[0m"},
		{"error", func(l *zap.Logger) { l.Error("x") }, "\x1b[31mERROR\x1b[0m"},
		{"debug", func(l *zap.Logger) { l.Debug("x") }, "\x1b[34mDEBUG\x1b[0m"},
		{"message", func(l *zap.Logger) { l.Info("hello") }, "\x1b[97mhello\x1b[0m"},
		{"key", func(l *zap.Logger) { l.Info("x", zap.Int("count", 3)) }, "\x1b[34;1m\"count\"\x1b[0m: 3"},
		{"string value", func(l *zap.Logger) { l.Info("x", zap.String("op", "union")) }, "\x1b[32m\"union\"\x1b[0m"},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			var buf bytes.Buffer
			tc.log(New(&buf, Options{Verbose: true}))
			assert.Contains(t, buf.String(), tc.want)
		})
	}
}

func TestEncodeEntry(t *testing.T) {
	testCases := []struct {
		testName string
		entry    zapcore.Entry
		fields   []zapcore.Field
		want     string
	}{
		{
			testName: "message only",
			entry:    zapcore.Entry{Level: zapcore.InfoLevel, LoggerName: "main", Message: "hello world"},
			want:     "INFO  main hello world\n",
		},
		{
			testName: "escaped message",
			entry:    zapcore.Entry{Level: zapcore.WarnLevel, Message: "line one\nline \"two\""},
			want:     "WARN  line one\\nline \\\"two\\\"\n",
		},
		{
			testName: "fields",
			entry:    zapcore.Entry{Level: zapcore.InfoLevel, LoggerName: "main", Message: "hello"},
			fields: []zapcore.Field{
				zap.Bool("ok", true),
				zap.Float64("ratio", 1.5),
				zap.Duration("took", time.Second),
				zap.Strings("hosts", []string{"a", "b"}),
				zap.Uint("n", 7),
				zap.Namespace("ctx"),
				zap.String("k", "v"),
			},
			want: "INFO  main hello { \"ok\": true, \"ratio\": 1.5, \"took\": \"1s\", \"hosts\": [\"a\", \"b\"], \"n\": 7, \"ctx\": {\"k\": \"v\"} }\n",
		},
		{
			testName: "error",
			entry:    zapcore.Entry{Level: zapcore.ErrorLevel, Message: "failed"},
			fields:   []zapcore.Field{zap.Error(errors.New("boom"))},
			want:     "ERROR failed { \"error\": \"boom\" }\n",
		},
		{
			testName: "reflected",
			entry:    zapcore.Entry{Level: zapcore.DebugLevel, Message: "value"},
			fields:   []zapcore.Field{zap.Reflect("v", struct{ A int }{1})},
			want:     "DEBUG value { \"v\": {\"A\":1} }\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			enc := newCLIEncoder(zap.NewDevelopmentEncoderConfig(), false)

			out, err := enc.EncodeEntry(tc.entry, tc.fields)
			require.NoError(t, err)
			defer out.Free()

			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestWithKeepsContext(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, Options{NoColor: true}).With(zap.String("op", "union"))
	logger.Info("done", zap.Int("count", 2))
	logger.Info("again")

	assert.Equal(t, "INFO  done { \"op\": \"union\", \"count\": 2 }\nINFO  again { \"op\": \"union\" }\n", buf.String())
}

func TestConcurrentLogging(t *testing.T) {
	const n = 500

	corpus := make([]string, n)
	f := gofuzz.New()
	for i := range corpus {
		f.Fuzz(&corpus[i])
	}

	var buf bytes.Buffer
	logger := New(&buf, Options{NoColor: true})

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, msg := range corpus {
				logger.Info(msg, zap.String("msg", msg))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 2*n, strings.Count(buf.String(), "\n"))
}
