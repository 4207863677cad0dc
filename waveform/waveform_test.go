package waveform

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPeaks(t *testing.T) {
	testCases := []struct {
		name    string
		samples []int
		width   int
		want    []Peak
	}{
		{
			name:    "two samples per column",
			samples: []int{1, -1, 5, 3, -7, 2},
			width:   3,
			want:    []Peak{{-1, 1}, {3, 5}, {-7, 2}},
		},
		{
			name:    "remainder is dropped",
			samples: []int{1, 2, 3, 4, 5},
			width:   2,
			want:    []Peak{{1, 2}, {3, 4}},
		},
		{
			name:    "fewer samples than columns",
			samples: []int{4, -4},
			width:   10,
			want:    []Peak{{4, 4}, {-4, -4}},
		},
		{
			name:    "empty",
			samples: nil,
			width:   10,
			want:    nil,
		},
		{
			name:    "zero width",
			samples: []int{1},
			width:   0,
			want:    nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Peaks(tc.samples, tc.width))
		})
	}
}

func TestScale(t *testing.T) {
	require.Equal(t, 64, scale(32767, 64))
	require.Equal(t, 64, scale(-32768, 64))
	require.Equal(t, 32, scale(16384, 64))
	require.Equal(t, 16, scale(-8192, 64))
	require.Equal(t, 0, scale(0, 64))
}

func TestSeconds(t *testing.T) {
	require.Equal(t, "0s", seconds(0))
	require.Equal(t, "1.5s", seconds(1500*time.Millisecond))
	require.Equal(t, "0.001s", seconds(1400*time.Microsecond))
}

func TestRenderMono(t *testing.T) {
	r := New(nil)
	r.Width = 4
	r.Height = 40

	img, err := r.Render([]int{32767, -32768, 0, 0, 0, 0, 0, 0}, nil, time.Second)
	require.NoError(t, err)
	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 40, img.Bounds().Dy())

	// axis
	require.Equal(t, color.RGBAModel.Convert(r.Ink), img.At(3, 20))
	// the first column spans the whole lane
	require.Equal(t, color.RGBAModel.Convert(r.Wave), img.At(0, 1))
	require.Equal(t, color.RGBAModel.Convert(r.Wave), img.At(0, 39))
	// silent columns keep the background above the axis
	require.Equal(t, color.RGBAModel.Convert(r.Background), img.At(3, 10))
}

func TestDrawStereo(t *testing.T) {
	var buf bytes.Buffer

	left := make([]int, 1000)
	right := make([]int, 1000)

	for i := range left {
		left[i] = (i%100)*600 - 30000
		right[i] = -left[i]
	}

	err := New(&buf).Draw(left, right, 2*time.Second)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	require.Equal(t, DefaultWidth, cfg.Width)
	require.Equal(t, 2*DefaultHeight, cfg.Height)
}

func TestDrawErrors(t *testing.T) {
	err := New(nil).Draw([]int{1}, nil, time.Second)
	require.ErrorIs(t, err, errNilWriter)

	r := New(&bytes.Buffer{})
	r.Width = 0

	err = r.Draw([]int{1}, nil, time.Second)
	require.ErrorIs(t, err, errBadGeometry)
}
