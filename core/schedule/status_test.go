package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"yes", "light_on"},
		{"no", "light_off"},
		{"first", "off_first_30min"},
		{"second", "off_second_30min"},
		{"maybe", "possible_outage"},
		{"maybe_x", "possible_outage"},
		{"x_maybe", "possible_outage"},
		{"unknown_code", "unknown_code"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeStatus(tc.code), "code %q", tc.code)
	}
}
