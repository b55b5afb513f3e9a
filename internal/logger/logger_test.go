package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter("info", "json", &buf)
	t.Cleanup(func() { Initialize("info", "text") })

	BookingTransition(7, "PENDING", "ACCEPTED", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Booking status changed", entry["msg"])
	assert.Equal(t, "emprius", entry["app"])
	assert.Equal(t, "ACCEPTED", entry["to"])
	assert.EqualValues(t, 7, entry["booking_id"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter("warn", "text", &buf)
	t.Cleanup(func() { Initialize("info", "text") })

	Info("hidden")
	DatabaseResult("UPDATE", 0, nil)
	assert.Empty(t, buf.String())

	ExternalServiceResult("sendgrid", "send", errors.New("boom"))
	assert.Contains(t, buf.String(), "External service call failed")
	assert.Contains(t, buf.String(), "boom")
}
