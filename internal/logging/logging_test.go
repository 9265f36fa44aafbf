package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(t *testing.T) (*logrus.Logger, *bytes.Buffer) {
	t.Helper()
	logger, err := SetupLogging("debug")
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestSetupLogging_Level(t *testing.T) {
	logger, err := SetupLogging("warn")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.Level)

	_, err = SetupLogging("loud")
	assert.Error(t, err)
}

func TestSetupLogging_LevelKey(t *testing.T) {
	logger, buf := newBufferedLogger(t)

	logger.Info("hello")

	entry := lastLine(t, buf)
	assert.Equal(t, "info", entry["loglevel"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, buf := newBufferedLogger(t)
	logData := NewLogData(logger)

	logData.AddData("transactionCount", 3)
	logData.AddTiming("listTransactionsMs")()
	stop := logData.AddToExistingTiming("listTransactionsMs")
	stop()
	logData.Log().Info("done")

	entry := lastLine(t, buf)
	assert.EqualValues(t, 3, entry["transactionCount"])
	assert.Contains(t, entry, "listTransactionsMs")
}

func TestGetLogData(t *testing.T) {
	logger, _ := newBufferedLogger(t)
	logData := NewLogData(logger)

	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))

	assert.NotNil(t, GetLogData(context.Background()))
}

func TestLoggingWrapper_FreshLogDataPerRequest(t *testing.T) {
	logger, buf := newBufferedLogger(t)

	calls := 0
	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		calls++
		if calls == 1 {
			logData.AddData("first", true)
		}
		assert.Same(t, logData, GetLogData(req.Context()))
		w.WriteHeader(http.StatusOK)
		return nil
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))

	entry := lastLine(t, buf)
	assert.Equal(t, "Handler.Status.Complete", entry["msg"])
	assert.NotContains(t, entry, "first")
}

func TestLoggingWrapper_Error(t *testing.T) {
	logger, buf := newBufferedLogger(t)

	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/status", nil))

	entry := lastLine(t, buf)
	assert.Equal(t, "Handler.Status.Error", entry["msg"])
	assert.Equal(t, "error", entry["loglevel"])
}

func TestMiddleware_AttachesLogData(t *testing.T) {
	logger, buf := newBufferedLogger(t)

	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(logger))

	type output struct {
		Body struct {
			OK bool `json:"ok"`
		}
	}
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*output, error) {
		GetLogData(ctx).AddData("pinged", true)
		out := &output{}
		out.Body.OK = true
		return out, nil
	})

	resp := api.Get("/ping")
	assert.Equal(t, http.StatusOK, resp.Code)

	entry := lastLine(t, buf)
	assert.Equal(t, "Handler.ping.Complete", entry["msg"])
	assert.Equal(t, true, entry["pinged"])
	assert.Equal(t, "/ping", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
}
