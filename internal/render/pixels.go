package render

import "image/color"

// ScaledBinaryRGBA expands binary cell data (0/1) into RGBA pixels in buf,
// magnifying each cell into a scale x scale block of a single solid color.
// buf must hold 4*(w*scale)*(h*scale) bytes; cells must hold w*h entries.
func ScaledBinaryRGBA(buf []byte, cells []uint8, w, h, scale int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	stride := w * scale
	for py := 0; py < h*scale; py++ {
		rowBase := py / scale * w
		for px := 0; px < stride; px++ {
			base := (py*stride + px) * 4
			if cells[rowBase+px/scale] != 0 {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
