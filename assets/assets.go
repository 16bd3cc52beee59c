// Package assets embeds the default globe shaders.
package assets

import (
	_ "embed"
)

var (
	//go:embed shaders/globe/globe.vert
	GlobeVertexShader string

	//go:embed shaders/globe/globe.frag
	GlobeFragmentShader string
)
