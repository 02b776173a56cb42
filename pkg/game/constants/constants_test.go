package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearSample(t *testing.T) {
	tests := []struct {
		planes int
		want   string
	}{
		{planes: -1, want: ""},
		{planes: 0, want: ""},
		{planes: 1, want: SampleClearSingle},
		{planes: 2, want: SampleClearDouble},
		{planes: 3, want: SampleClearTriple},
		{planes: 4, want: SampleClearQuad},
		{planes: 5, want: SampleClearMany},
		{planes: 12, want: SampleClearMany},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClearSample(tt.planes), "%d planes", tt.planes)
	}
}
