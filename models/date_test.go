package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-03-02")
	require.NoError(t, err)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-02"`, string(out))

	var back Date
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, d.String(), back.String())
}

func TestDateUnmarshalRejectsOtherLayouts(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"02-03-2026"`), &d))
}

func TestDateScanTruncatesTime(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 3, 2, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03-02", d.String())
}

func TestDateScanString(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2026-03-02"))
	assert.Equal(t, "2026-03-02", d.String())

	require.NoError(t, d.Scan([]byte("2026-12-31")))
	assert.Equal(t, "2026-12-31", d.String())
}
