// Package raster renders a heartbutton.Button without a window, using the
// gg software rasterizer. It backs headless snapshots and pixel tests.
//
//	b := heartbutton.New(heartbutton.WithChecked(true))
//	err := raster.SavePNG("heart.png", b, 124, 124, heartbutton.Color{R: 1, G: 1, B: 1, A: 1})
package raster
