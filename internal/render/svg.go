package render

import (
	"fmt"
	"strings"
)

// SVGSurface renders draw operations into an SVG document. It is the native
// render backend: snapshot export and tests use it in place of a browser
// canvas.
type SVGSurface struct {
	width  float64
	height float64
	body   strings.Builder
}

// NewSVGSurface creates an SVG surface of the given pixel dimensions.
func NewSVGSurface(width, height float64) *SVGSurface {
	return &SVGSurface{width: width, height: height}
}

func (s *SVGSurface) Clear(fill string) {
	// A full-surface rect rather than a background attribute, so the output
	// mirrors the canvas redraw (clear is just the bottom paint layer).
	fmt.Fprintf(&s.body, `<rect x="0" y="0" width="%s" height="%s" fill="%s"/>`,
		num(s.width), num(s.height), fill)
	s.body.WriteByte('\n')
}

func (s *SVGSurface) FillRect(x, y, w, h float64, fill string) {
	fmt.Fprintf(&s.body, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
		num(x), num(y), num(w), num(h), fill)
	s.body.WriteByte('\n')
}

func (s *SVGSurface) StrokeRect(x, y, w, h float64, stroke string, width float64) {
	fmt.Fprintf(&s.body, `<rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
		num(x), num(y), num(w), num(h), stroke, num(width))
	s.body.WriteByte('\n')
}

func (s *SVGSurface) FillCircle(cx, cy, r float64, fill string) {
	fmt.Fprintf(&s.body, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
		num(cx), num(cy), num(r), fill)
	s.body.WriteByte('\n')
}

func (s *SVGSurface) Segment(x1, y1, x2, y2 float64, stroke string, width float64) {
	fmt.Fprintf(&s.body, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`,
		num(x1), num(y1), num(x2), num(y2), stroke, num(width))
	s.body.WriteByte('\n')
}

// Document returns the complete SVG document.
func (s *SVGSurface) Document() string {
	var out strings.Builder
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(s.width), num(s.height), num(s.width), num(s.height))
	out.WriteByte('\n')
	out.WriteString(s.body.String())
	out.WriteString("</svg>\n")
	return out.String()
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
