// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softpipe

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gogpu/softpipe/geom"
	"github.com/gogpu/softpipe/internal/parallel"
	"github.com/gogpu/softpipe/math3"
)

// Pipeline constants.
const (
	// DefaultSupersample is the per-axis ratio between the internal
	// framebuffer and the display target.
	DefaultSupersample = 2

	// DefaultDepthScale converts eye-space depth to quantized integer
	// depth: quantized = int32(depth * scale). Depths closer together
	// than 1/scale may tie.
	DefaultDepthScale = 10000

	// NeutralGray is the base color used for fragments with no texture
	// when debug coloring is off.
	NeutralGray = 0.7

	// lightIntensity scales the Lambertian term before it multiplies the
	// fragment's base color.
	lightIntensity = 1.0

	// numStripes is the size of the striped lock table guarding fragment
	// commits. Must be a power of two.
	numStripes = 256
)

// depthFar is the depth buffer clear value; any rendered depth beats it.
const depthFar = math.MaxInt32

// Options configures a RenderContext.
type Options struct {
	// Width and Height are the display dimensions of the presentation
	// target, in pixels. Required.
	Width, Height int

	// Supersample is the per-axis supersampling factor.
	// 0 means DefaultSupersample.
	Supersample int

	// DepthScale is the eye-space depth quantization factor.
	// 0 means DefaultDepthScale.
	DepthScale float64

	// DebugBarycentric shades untextured fragments with their barycentric
	// weights as RGB, visualizing interpolation.
	DebugBarycentric bool

	// Workers is the worker goroutine count. 0 means GOMAXPROCS.
	Workers int
}

// Errors returned by RenderContext methods.
var (
	ErrClosed     = errors.New("softpipe: render context is closed")
	ErrNilTarget  = errors.New("softpipe: nil target")
	ErrTargetSize = errors.New("softpipe: target size does not match context")
	ErrDimensions = errors.New("softpipe: invalid dimensions")
)

// TransformedVertex is the vertex stage's output record: one per input
// vertex, rebuilt every frame.
type TransformedVertex struct {
	// Screen holds the viewport-mapped position: X,Y in supersampled
	// pixel coordinates after perspective divide, Z a neutral placeholder
	// (depth is recomputed from eye space during rasterization), W the
	// clip-space w before the divide.
	Screen math3.Vec4

	// Eye and Normal are the eye-space position and unit normal.
	Eye    math3.Vec3
	Normal math3.Vec3

	// Color is the base surface color carried into interpolation.
	Color [3]float64

	// UV is the texture coordinate in [0,1]; valid only when Tex != nil.
	UV math3.Vec2

	// Tex is the bound texture, or nil when the geometry has no texture
	// or no texture coordinate stream.
	Tex *geom.Texture
}

// Triangle is one assembled primitive: three transformed vertex copies and
// a frame-contiguous id. Produced by assembly, consumed by rasterization.
type Triangle struct {
	V  [3]TransformedVertex
	ID int
}

// Fragment is the resolved per-pixel surface data for the triangle that
// currently owns the pixel's minimum depth.
type Fragment struct {
	// Color is the resolved base color (texture sample, debug weights, or
	// interpolated vertex color).
	Color [3]float64

	// Eye and Normal are barycentric-interpolated eye-space position and
	// unit normal.
	Eye    math3.Vec3
	Normal math3.Vec3

	// TexX, TexY are the interpolated texture coordinates scaled into
	// texel units of Tex; meaningful only when Tex != nil.
	TexX, TexY float64

	// Tex is the texture the color was sampled from, or nil.
	Tex *geom.Texture
}

// RenderContext owns every buffer the pipeline touches: the depth buffer,
// fragment buffer, supersampled color framebuffer, and the per-frame
// transformed-vertex and triangle working arrays. It holds no ambient
// state; all stages receive it explicitly.
//
// A RenderContext renders frames for exactly one geom.Store. The store must
// not change after the context is created.
//
// Thread safety: RenderFrame must not be called concurrently with itself or
// Close. The internal stages parallelize across the context's worker pool.
type RenderContext struct {
	width, height int // display dimensions
	ss            int // supersample factor per axis
	ssW, ssH      int // supersampled framebuffer dimensions
	depthScale    float64
	debugBary     bool

	store *geom.Store
	pool  *parallel.WorkerPool

	// Per-pixel buffers, ssW*ssH each; color holds 3 floats per pixel.
	depth []atomic.Int32
	frags []Fragment
	color []float64

	// Working arrays: verts is scratch for the geometry currently in the
	// vertex stage; tris is the shared, globally indexed triangle array
	// with one disjoint region per geometry at triBase[geometry].
	verts   []TransformedVertex
	tris    []Triangle
	triBase []int

	// locks stripes the fragment commit so concurrent winners never tear
	// a fragment; visibility itself is decided by the atomic depth cell.
	locks [numStripes]sync.Mutex

	// skippedPrims counts primitives of unsupported topology encountered
	// during assembly, across all frames.
	skippedPrims atomic.Int64

	closed bool
}

// NewRenderContext allocates all per-frame buffers for the given store and
// options. Buffer sizes derive from Width x Height x Supersample²; any
// invalid dimension is an error, the pipeline has no degraded mode.
func NewRenderContext(store *geom.Store, opts Options) (*RenderContext, error) {
	if store == nil {
		return nil, errors.New("softpipe: nil geometry store")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, opts.Width, opts.Height)
	}
	ss := opts.Supersample
	if ss == 0 {
		ss = DefaultSupersample
	}
	if ss < 1 {
		return nil, fmt.Errorf("%w: supersample %d", ErrDimensions, ss)
	}
	depthScale := opts.DepthScale
	if depthScale == 0 {
		depthScale = DefaultDepthScale
	}
	if depthScale < 0 {
		return nil, fmt.Errorf("%w: depth scale %v", ErrDimensions, depthScale)
	}

	c := &RenderContext{
		width:      opts.Width,
		height:     opts.Height,
		ss:         ss,
		ssW:        opts.Width * ss,
		ssH:        opts.Height * ss,
		depthScale: depthScale,
		debugBary:  opts.DebugBarycentric,
		store:      store,
		pool:       parallel.NewWorkerPool(opts.Workers),
	}

	pixels := c.ssW * c.ssH
	c.depth = make([]atomic.Int32, pixels)
	c.frags = make([]Fragment, pixels)
	c.color = make([]float64, pixels*3)

	c.verts = make([]TransformedVertex, store.MaxVertexCount())
	c.tris = make([]Triangle, store.TriangleTotal())
	c.triBase = make([]int, store.Len())
	base := 0
	for i := 0; i < store.Len(); i++ {
		g, err := store.Geometry(geom.GeometryID(i))
		if err != nil {
			c.pool.Close()
			return nil, err
		}
		c.triBase[i] = base
		base += g.TriangleCount()
	}

	return c, nil
}

// Width returns the display width in pixels.
func (c *RenderContext) Width() int { return c.width }

// Height returns the display height in pixels.
func (c *RenderContext) Height() int { return c.height }

// Supersample returns the per-axis supersampling factor.
func (c *RenderContext) Supersample() int { return c.ss }

// SkippedPrimitives returns the number of non-triangle primitives assembly
// has skipped since the context was created.
func (c *RenderContext) SkippedPrimitives() int64 { return c.skippedPrims.Load() }

// Close releases all buffers and stops the worker pool. It is idempotent
// and safe to call on a nil or never-initialized context.
func (c *RenderContext) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true
	if c.pool != nil {
		c.pool.Close()
	}
	c.depth = nil
	c.frags = nil
	c.color = nil
	c.verts = nil
	c.tris = nil
	c.triBase = nil
	return nil
}

// clear resets the depth buffer to the far value and zeroes the fragment
// and color buffers, in parallel across pixels.
func (c *RenderContext) clear() {
	c.pool.RangeGroups(len(c.depth), 4096, func(start, end int) {
		for i := start; i < end; i++ {
			c.depth[i].Store(depthFar)
			c.frags[i] = Fragment{}
		}
		for i := start * 3; i < end*3; i++ {
			c.color[i] = 0
		}
	})
}
