package exporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1234567.5, "1234567.50"},
		{66.08695, "66.09"},
		{-50000, "-50000.00"},
		{-0.001, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFloat(tt.in))
		})
	}
}

func TestFormatIntAndDate(t *testing.T) {
	assert.Equal(t, "2021", formatInt(2021))
	assert.Equal(t, "2022-03-03", formatDate(time.Date(2022, 3, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", formatDate(time.Time{}))
}
