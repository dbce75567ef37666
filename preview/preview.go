/*
Package preview implements the fixed-size preview raster stored in the art
catalog and the per-directory manifests.

A preview is 64 by 40 pixels, one palette index byte per pixel, followed by
a 256 entry palette of 8-bit RGB triples, 3328 bytes in total. Source
images of any other size are scaled with nearest neighbor sampling and
images with more than 256 colors are quantized first.
*/
package preview

const (
	// Width and Height of every preview raster in pixels
	Width  = 64
	Height = 40

	numPixels    = Width * Height
	paletteBytes = 256 * 3

	// Size is the encoded size of a preview in bytes
	Size = numPixels + paletteBytes
)
