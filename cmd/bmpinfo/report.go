package main

import (
	"fmt"

	"github.com/knetic/govaluate"
	"gopkg.in/yaml.v2"

	"github.com/fumiama/ubmp"
)

type header struct {
	Size   uint32 `yaml:"size"`
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	BPP    uint16 `yaml:"bpp"`
	Method string `yaml:"method"`
	Code   uint32 `yaml:"code"`
	Colors uint32 `yaml:"colors"`
}

// report is what bmpinfo prints for one file.
type report struct {
	File    string   `yaml:"file"`
	Size    uint32   `yaml:"size"`
	Offset  uint32   `yaml:"offset"`
	End     uint32   `yaml:"end"`
	Header  header   `yaml:"header"`
	Pixels  int      `yaml:"pixels"`
	Samples []string `yaml:"samples,omitempty"`
}

// newReport summarizes bm, listing at most samples pixels.
func newReport(name string, bm *ubmp.Bitmap, samples int) *report {
	h := bm.Header
	r := &report{
		File:   name,
		Size:   bm.Size,
		Offset: bm.Offset,
		End:    bm.End(),
		Header: header{
			Size:   h.Size,
			Width:  h.PixWidth,
			Height: h.PixHeight,
			BPP:    h.BPP,
			Method: h.Method.String(),
			Code:   h.Method.Code(),
			Colors: h.Colors,
		},
		Pixels: len(bm.Pixels),
	}
	if samples < 0 {
		samples = 0
	}
	if samples > len(bm.Pixels) {
		samples = len(bm.Pixels)
	}
	for _, p := range bm.Pixels[:samples] {
		r.Samples = append(r.Samples, p.String())
	}
	return r
}

func (r *report) marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

// parameters exposes the numeric report fields to expressions. govaluate
// works on float64.
func (r *report) parameters() map[string]interface{} {
	return map[string]interface{}{
		"size":        float64(r.Size),
		"offset":      float64(r.Offset),
		"end":         float64(r.End),
		"header_size": float64(r.Header.Size),
		"width":       float64(r.Header.Width),
		"height":      float64(r.Header.Height),
		"bpp":         float64(r.Header.BPP),
		"method":      float64(r.Header.Code),
		"method_name": r.Header.Method,
		"colors":      float64(r.Header.Colors),
		"pixels":      float64(r.Pixels),
	}
}

// expectation is a boolean expression checked against every report.
type expectation struct {
	src  string
	expr *govaluate.EvaluableExpression
}

func newExpectation(src string) (*expectation, error) {
	expr, err := govaluate.NewEvaluableExpression(src)
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", src, err)
	}
	return &expectation{src: src, expr: expr}, nil
}

// check returns an error if the expression does not evaluate to true.
func (e *expectation) check(r *report) error {
	v, err := e.expr.Evaluate(r.parameters())
	if err != nil {
		return fmt.Errorf("%s: evaluating %q: %w", r.File, e.src, err)
	}
	ok, isBool := v.(bool)
	if !isBool {
		return fmt.Errorf("%s: %q evaluated to %v, not a boolean", r.File, e.src, v)
	}
	if !ok {
		return fmt.Errorf("%s: expectation %q does not hold", r.File, e.src)
	}
	return nil
}
