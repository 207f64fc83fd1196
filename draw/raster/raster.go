// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software drawing backend rendering into an
*image.RGBA.

A Rasterizer records the drawing of a frame and renders it with
Render. Drawing into clip passes is rendered in the order it was
recorded; each overlay pass and the passes under it are rendered
afterwards, in the order the overlays were opened.
*/
package raster

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"gioui.org/retained/draw"
	"gioui.org/retained/geom"
	"gioui.org/retained/internal/log"
)

// Rasterizer is a draw.Draw recording a frame for Render.
type Rasterizer struct {
	images *draw.Images
	passes []pass
	// layers holds the operations of the window, followed by those of
	// each overlay.
	layers [][]operation
	vr     vector.Rasterizer
}

type pass struct {
	layer int
	// clip is the visible area in window coordinates.
	clip image.Rectangle
	// off translates pass coordinates to window coordinates.
	off geom.Offset
}

type opKind uint8

const (
	opRect opKind = iota
	opFrame
	opText
	opImage
)

type operation struct {
	kind  opKind
	pass  draw.PassId
	r     geom.Rect
	inner geom.Rect
	c     color.NRGBA
	text  string
	face  font.Face
	img   draw.ImageId
}

var _ draw.Draw = (*Rasterizer)(nil)

// New returns a rasterizer drawing images from images, which may be
// nil.
func New(images *draw.Images) *Rasterizer {
	r := new(Rasterizer)
	r.images = images
	r.Begin(geom.Rect{})
	return r
}

// Begin discards the recorded frame and starts a new one whose root
// pass covers bounds.
func (r *Rasterizer) Begin(bounds geom.Rect) {
	r.passes = append(r.passes[:0], pass{clip: toImage(bounds)})
	if len(r.layers) == 0 {
		r.layers = append(r.layers, nil)
	}
	for i := range r.layers {
		r.layers[i] = r.layers[i][:0]
	}
	r.layers = r.layers[:1]
}

func (r *Rasterizer) NewPass(parent draw.PassId, rect geom.Rect, offset geom.Offset, kind draw.PassType) draw.PassId {
	p := r.passes[parent]
	wr := toImage(rect.Add(p.off))
	np := pass{
		layer: p.layer,
		off:   p.off.Add(offset),
	}
	switch kind {
	case draw.PassClip:
		np.clip = wr.Intersect(p.clip)
	case draw.PassOverlay:
		// Overlays escape the clip of their parent but not the window.
		np.clip = wr.Intersect(r.passes[0].clip)
		np.layer = len(r.layers)
		r.layers = append(r.layers, nil)
	}
	r.passes = append(r.passes, np)
	return draw.PassId(len(r.passes) - 1)
}

func (r *Rasterizer) ClipRect(id draw.PassId) geom.Rect {
	p := r.passes[id]
	return fromImage(p.clip).Add(p.off.Neg())
}

func (r *Rasterizer) Rect(id draw.PassId, rect geom.Rect, c color.NRGBA) {
	r.record(operation{kind: opRect, pass: id, r: rect, c: c})
}

func (r *Rasterizer) Frame(id draw.PassId, outer, inner geom.Rect, c color.NRGBA) {
	r.record(operation{kind: opFrame, pass: id, r: outer, inner: inner, c: c})
}

func (r *Rasterizer) Text(id draw.PassId, pos geom.Coord, text string, face font.Face, c color.NRGBA) {
	r.record(operation{kind: opText, pass: id, r: geom.Rect{Pos: pos}, text: text, face: face, c: c})
}

func (r *Rasterizer) Image(id draw.PassId, img draw.ImageId, rect geom.Rect) {
	r.record(operation{kind: opImage, pass: id, r: rect, img: img})
}

func (r *Rasterizer) record(op operation) {
	l := r.passes[op.pass].layer
	r.layers[l] = append(r.layers[l], op)
}

// Render draws the recorded frame into dst, over its current content.
func (r *Rasterizer) Render(dst *image.RGBA) {
	for _, ops := range r.layers {
		for _, op := range ops {
			r.render(dst, op)
		}
	}
}

func (r *Rasterizer) render(dst *image.RGBA, op operation) {
	p := r.passes[op.pass]
	clip := p.clip.Intersect(dst.Bounds())
	rect := toImage(op.r.Add(p.off))
	switch op.kind {
	case opRect:
		b := rect.Intersect(clip)
		if b.Empty() {
			return
		}
		xdraw.Draw(dst, b, image.NewUniform(op.c), image.Point{}, xdraw.Over)
	case opFrame:
		outer := rect.Intersect(clip)
		if outer.Empty() {
			return
		}
		inner := toImage(op.inner.Add(p.off)).Intersect(outer)
		r.fillFrame(dst, outer, inner, op.c)
	case opText:
		if op.face == nil || clip.Empty() {
			return
		}
		d := font.Drawer{
			Dst:  dst.SubImage(clip).(*image.RGBA),
			Src:  image.NewUniform(op.c),
			Face: op.face,
			Dot:  fixed.P(rect.Min.X, rect.Min.Y).Add(fixed.Point26_6{Y: op.face.Metrics().Ascent}),
		}
		d.DrawString(op.text)
	case opImage:
		if r.images == nil {
			return
		}
		src, ok := r.images.Get(op.img)
		if !ok {
			log.Warn("raster: unknown image", "id", op.img)
			return
		}
		if rect.Intersect(clip).Empty() {
			return
		}
		sub := dst.SubImage(clip).(*image.RGBA)
		xdraw.ApproxBiLinear.Scale(sub, rect, src, src.Bounds(), xdraw.Over, nil)
	}
}

// fillFrame fills outer minus inner. The inner path winds opposite to
// the outer so that the two cancel.
func (r *Rasterizer) fillFrame(dst *image.RGBA, outer, inner image.Rectangle, c color.NRGBA) {
	vr := &r.vr
	vr.Reset(outer.Dx(), outer.Dy())
	vr.DrawOp = xdraw.Over
	o := outer.Sub(outer.Min)
	vr.MoveTo(float32(o.Min.X), float32(o.Min.Y))
	vr.LineTo(float32(o.Max.X), float32(o.Min.Y))
	vr.LineTo(float32(o.Max.X), float32(o.Max.Y))
	vr.LineTo(float32(o.Min.X), float32(o.Max.Y))
	vr.ClosePath()
	if !inner.Empty() {
		in := inner.Sub(outer.Min)
		vr.MoveTo(float32(in.Min.X), float32(in.Min.Y))
		vr.LineTo(float32(in.Min.X), float32(in.Max.Y))
		vr.LineTo(float32(in.Max.X), float32(in.Max.Y))
		vr.LineTo(float32(in.Max.X), float32(in.Min.Y))
		vr.ClosePath()
	}
	vr.Draw(dst, outer, image.NewUniform(c), image.Point{})
}

func toImage(r geom.Rect) image.Rectangle {
	return image.Rect(r.Pos.X, r.Pos.Y, r.Pos.X+r.Size.W, r.Pos.Y+r.Size.H)
}

func fromImage(r image.Rectangle) geom.Rect {
	return geom.R(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}
