// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package scene

import (
	"fmt"
	"image/color"
	"io"
	"unicode/utf8"

	svg "github.com/ajstarks/svgo/float"
)

const (
	backgroundStyle = "fill:rgb(0,0,0)"

	// Rough sans-serif metrics, there is no font to measure against.
	glyphWidth = 0.6
	capHeight  = 0.7
)

type svgCanvas struct {
	s *svg.SVG
}

func (c svgCanvas) FillCircle(x, y, r float64, clr color.Color) {
	c.s.Circle(x, y, r, "fill:"+rgb(clr))
}

func (c svgCanvas) Line(x0, y0, x1, y1, width float64, clr color.Color) {
	c.s.Line(x0, y0, x1, y1, fmt.Sprintf("stroke:%s;stroke-width:%g", rgb(clr), width))
}

func (c svgCanvas) Text(s string, x, y, size float64, clr color.Color) {
	c.s.Text(x, y, s, fmt.Sprintf("fill:%s;font-size:%gpx;font-family:sans-serif", rgb(clr), size))
}

func (c svgCanvas) MeasureText(s string, size float64) (float64, float64) {
	return glyphWidth * size * float64(utf8.RuneCountInString(s)), capHeight * size
}

// WriteSVG renders one frame of sc on a black width x height background.
func WriteSVG(w io.Writer, sc *Scene, width, height float64) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, backgroundStyle)
	sc.Draw(svgCanvas{s: canvas})
	canvas.End()
}

func rgb(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}
