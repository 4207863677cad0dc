// Package waveform renders signed 16-bit channels as a PNG overview image.
//
// A Renderer satisfies wave.WaveformSink, so a parsed file can be drawn with
// file.DrawWaveform(waveform.New(w)).
package waveform

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 200

	maxPositive = 32767.0
	maxNegative = 32768.0
)

var (
	errNilWriter   = errors.New("waveform: nil writer")
	errBadGeometry = errors.New("waveform: width and height must be positive")
)

// Peak is the sample range covered by one pixel column.
type Peak struct {
	Min int
	Max int
}

// Peaks splits samples into consecutive runs of len(samples)/width samples
// (at least one) and returns the extremes of every complete run, never more
// than width of them.
func Peaks(samples []int, width int) []Peak {
	if width <= 0 || len(samples) == 0 {
		return nil
	}

	per := max(len(samples)/width, 1)
	n := min(len(samples)/per, width)

	peaks := make([]Peak, n)
	for i := range peaks {
		run := samples[i*per : (i+1)*per]

		p := Peak{Min: run[0], Max: run[0]}
		for _, v := range run[1:] {
			p.Min = min(p.Min, v)
			p.Max = max(p.Max, v)
		}

		peaks[i] = p
	}

	return peaks
}

// scale maps a 16-bit sample magnitude onto extent pixels.
func scale(v int, extent int) int {
	switch {
	case v > 0:
		return int(float64(v) / (maxPositive / float64(extent)))
	case v < 0:
		return int(math.Abs(float64(v)) / (maxNegative / float64(extent)))
	default:
		return 0
	}
}

// Renderer draws one lane per channel and encodes the image as PNG.
type Renderer struct {
	w io.Writer

	// Width is the image width; Height is the height of a single lane.
	Width  int
	Height int

	Background color.Color
	Wave       color.Color
	Ink        color.Color
}

// New returns a Renderer writing PNG images to w.
func New(w io.Writer) *Renderer {
	return &Renderer{
		w:          w,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: color.White,
		Wave:       color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
		Ink:        color.Black,
	}
}

// Draw renders left (and right, when not empty) and writes the PNG.
func (r *Renderer) Draw(left, right []int, dur time.Duration) error {
	img, err := r.Render(left, right, dur)
	if err != nil {
		return err
	}

	if r.w == nil {
		return errNilWriter
	}

	err = png.Encode(r.w, img)
	if err != nil {
		return fmt.Errorf("waveform: failed to encode png: %w", err)
	}

	return nil
}

// Render returns the waveform image without encoding it.
func (r *Renderer) Render(left, right []int, dur time.Duration) (*image.RGBA, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, errBadGeometry
	}

	lanes := 1
	if len(right) > 0 {
		lanes = 2
	}

	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height*lanes))
	fill(img, img.Bounds(), r.Background)

	if lanes == 1 {
		r.drawLane(img, img.Bounds(), left, "[ Mono ]", dur)

		return img, nil
	}

	r.drawLane(img, image.Rect(0, 0, r.Width, r.Height), left, "[ L ]", dur)
	r.drawLane(img, image.Rect(0, r.Height, r.Width, 2*r.Height), right, "[ R ]", dur)

	return img, nil
}

func (r *Renderer) drawLane(img *image.RGBA, lane image.Rectangle, samples []int, label string, dur time.Duration) {
	half := lane.Dy() / 2
	center := lane.Min.Y + half

	for x, p := range Peaks(samples, lane.Dx()) {
		top := scale(p.Max, half)
		bottom := scale(p.Min, half+1)

		if top+bottom == 0 {
			continue
		}

		fill(img, image.Rect(lane.Min.X+x, center-top, lane.Min.X+x+1, center+bottom), r.Wave)
	}

	// axes
	fill(img, image.Rect(lane.Min.X, center, lane.Max.X, center+1), r.Ink)
	midX := lane.Min.X + lane.Dx()/2
	fill(img, image.Rect(midX, lane.Min.Y, midX+1, lane.Max.Y), r.Ink)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.Ink),
		Face: basicfont.Face7x13,
	}

	baseline := lane.Max.Y - 5

	r.text(d, label, lane.Min.X+5, lane.Min.Y+15)
	r.text(d, "0s", lane.Min.X+3, baseline)

	mid := seconds(dur / 2)
	r.text(d, mid, midX-d.MeasureString(mid).Round()/2, baseline)

	end := seconds(dur)
	r.text(d, end, lane.Max.X-d.MeasureString(end).Round()-3, baseline)
}

func (r *Renderer) text(d *font.Drawer, s string, x, y int) {
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}

// seconds formats dur in seconds, rounded to the millisecond.
func seconds(dur time.Duration) string {
	secs := math.Round(dur.Seconds()*1000) / 1000

	return strconv.FormatFloat(secs, 'f', -1, 64) + "s"
}

func fill(img draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}
