package graphics

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UploadRGBA creates a 2D texture from an RGBA image.
// Filtering is nearest so cell edges stay sharp.
func UploadRGBA(img *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	texImage(img)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// UpdateRGBA replaces the contents of an existing texture.
func UpdateRGBA(texture uint32, img *image.RGBA) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
	texImage(img)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func texImage(img *image.RGBA) {
	size := img.Rect.Size()
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
}
