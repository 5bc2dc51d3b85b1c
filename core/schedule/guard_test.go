package schedule

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckContentShortBody(t *testing.T) {
	body := []byte(`<html><head><title>Request unsuccessful</title></head><body></body></html>`)
	err := CheckContent(body)
	require.Error(t, err)

	var perr *ProtectionError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, len(body), perr.Size)
	assert.Equal(t, "Request unsuccessful", perr.Title)
}

func TestCheckContentMissingSentinel(t *testing.T) {
	body := []byte("<html><body>" + strings.Repeat("challenge ", 200) + "</body></html>")
	require.Greater(t, len(body), minPlausibleBytes)

	var perr *ProtectionError
	require.True(t, errors.As(CheckContent(body), &perr))
}

func TestCheckContentPlausible(t *testing.T) {
	body := []byte("<html><body><script>DisconSchedule.fact = {}</script>" +
		strings.Repeat("<p>padding</p>", 100) + "</body></html>")
	require.Greater(t, len(body), minPlausibleBytes)
	assert.NoError(t, CheckContent(body))
}
