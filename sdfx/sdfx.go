// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sdfx converts geom primitives to signed distance functions of the
// github.com/deadsy/sdfx CAD library and meshes them back into geom points.
package sdfx

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/gogpu/geom"
)

// DefaultMeshCells is the marching cubes resolution used by Mesh when cells
// is not positive.
const DefaultMeshCells = 100

// Triangle is a mesh face.
type Triangle [3]geom.Point3D[float64]

// Normal returns the unit normal of the face.
func (t Triangle) Normal() geom.Vector3D[float64] {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Normalize()
}

// Vec converts a vector to an sdfx vector.
func Vec(v geom.Vector3D[float64]) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// PointVec converts a point to the sdfx vector of its position.
func PointVec(p geom.Point3D[float64]) v3.Vec {
	return v3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Vector converts an sdfx vector to a geom vector.
func Vector(v v3.Vec) geom.Vector3D[float64] {
	return geom.V3(v.X, v.Y, v.Z)
}

// Point converts an sdfx vector to the point it locates.
func Point(v v3.Vec) geom.Point3D[float64] {
	return geom.Pt3(v.X, v.Y, v.Z)
}

// Sphere returns the solid ball bounded by s. sdfx rejects a zero radius.
func Sphere(s geom.Sphere[float64]) (sdf.SDF3, error) {
	ball, err := sdf.Sphere3D(s.R)
	if err != nil {
		return nil, fmt.Errorf("sdfx: sphere %v: %w", s, err)
	}
	geom.Logger().Debug("sdfx: sphere", "center", s.C, "radius", s.R)
	return sdf.Transform3D(ball, sdf.Translate3d(PointVec(s.C))), nil
}

// Cut keeps the part of solid on the side of pl that its normal points to.
func Cut(solid sdf.SDF3, pl geom.Plane[float64]) sdf.SDF3 {
	geom.Logger().Debug("sdfx: cut", "plane", pl)
	return sdf.Cut3D(solid, PointVec(pl.P), Vec(pl.Normal()))
}

// Translate moves solid by v.
func Translate(solid sdf.SDF3, v geom.Vector3D[float64]) sdf.SDF3 {
	return sdf.Transform3D(solid, sdf.Translate3d(Vec(v)))
}

// Distance evaluates the signed distance of solid at p: negative inside,
// positive outside.
func Distance(solid sdf.SDF3, p geom.Point3D[float64]) float64 {
	return solid.Evaluate(PointVec(p))
}

// Bounds returns the minimum and maximum corners of the bounding box of
// solid.
func Bounds(solid sdf.SDF3) (lo, hi geom.Point3D[float64]) {
	bb := solid.BoundingBox()
	return Point(bb.Min), Point(bb.Max)
}

// Mesh tessellates solid with uniform marching cubes of the given
// resolution along the longest bounding box axis.
func Mesh(solid sdf.SDF3, cells int) []Triangle {
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	faces := render.ToTriangles(solid, render.NewMarchingCubesUniform(cells))
	out := make([]Triangle, len(faces))
	for i, f := range faces {
		out[i] = Triangle{Point(f[0]), Point(f[1]), Point(f[2])}
	}
	geom.Logger().Debug("sdfx: mesh", "cells", cells, "triangles", len(out))
	return out
}
