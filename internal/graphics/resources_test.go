package graphics_test

import (
	"image"
	"testing"

	"globe/internal/geometry"
	"globe/internal/graphics"
	"globe/internal/graphics/graphicstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereResourcesUpload(t *testing.T) {
	dev := graphicstest.NewDevice()
	res, err := graphics.NewSphereResources(dev, geometry.NewDefaultSphere())
	require.NoError(t, err)

	wantSizes := []int32{3, 3, 2}
	wantFloats := []int{153 * 3, 153 * 3, 153 * 2}
	for i, s := range res.Streams {
		assert.Equal(t, uint32(i), s.Slot)
		assert.Equal(t, wantSizes[i], s.Size)
		assert.NotZero(t, s.Buffer)
		assert.Equal(t, wantFloats[i], dev.Uploads[s.Buffer])
	}
	assert.NotZero(t, res.Indices)
	assert.Equal(t, int32(768), res.IndexCount)
	assert.Equal(t, 768, dev.Uploads[res.Indices])
	assert.NotZero(t, res.Texture)
	assert.Equal(t, graphics.TextureEmpty, res.TextureState())

	// buffers are created and written exactly once each, texture left empty
	assert.Len(t, dev.Find("CreateBuffer"), 4)
	assert.Len(t, dev.Find("UploadVertexData"), 3)
	assert.Len(t, dev.Find("UploadIndexData"), 1)
	assert.Empty(t, dev.Find("UploadTexture"))
}

func TestSphereResourcesBufferFailureIsFatal(t *testing.T) {
	dev := graphicstest.NewDevice()
	dev.FailBufferAfter = 2

	res, err := graphics.NewSphereResources(dev, geometry.NewDefaultSphere())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, graphics.ErrResource)
	assert.Equal(t, 0, dev.Live["buffer"], "partially created buffers must be released")
}

func TestSphereResourcesTextureFailureIsFatal(t *testing.T) {
	dev := graphicstest.NewDevice()
	dev.FailTexture = true

	res, err := graphics.NewSphereResources(dev, geometry.NewDefaultSphere())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, graphics.ErrResource)
	assert.Equal(t, 0, dev.Live["buffer"])
}

func TestUploadTextureOnce(t *testing.T) {
	dev := graphicstest.NewDevice()
	res, err := graphics.NewSphereResources(dev, geometry.NewDefaultSphere())
	require.NoError(t, err)

	assert.False(t, res.UploadTexture(nil))
	assert.Equal(t, graphics.TextureEmpty, res.TextureState())

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	assert.True(t, res.UploadTexture(img))
	assert.Equal(t, graphics.TextureLoaded, res.TextureState())
	assert.Same(t, img, dev.Textures[res.Texture])

	assert.False(t, res.UploadTexture(image.NewRGBA(image.Rect(0, 0, 1, 1))))
	assert.Len(t, dev.Find("UploadTexture"), 1)
}

func TestResourcesRelease(t *testing.T) {
	dev := graphicstest.NewDevice()
	res, err := graphics.NewSphereResources(dev, geometry.NewDefaultSphere())
	require.NoError(t, err)

	res.Release()
	assert.Equal(t, 0, dev.Live["buffer"])
	assert.Equal(t, 0, dev.Live["texture"])

	// second release is a no-op
	res.Release()
	assert.Equal(t, 0, dev.Live["buffer"])
}
