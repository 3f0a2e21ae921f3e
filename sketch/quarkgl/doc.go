// Package quarkgl is a small software renderer for point clouds and polylines.
//
// Pipeline (fixed):
//
//	World → View → Projection → Clipping → Rasterization → Target.
//
// The renderer draws into a caller-provided Target and does not allocate in
// the draw path once its depth buffer is sized. Planar sketches skip the
// camera entirely and map field coordinates to pixels through a Canvas.
package quarkgl
