package lcd

import (
	"github.com/thelolagemann/gomeboy-core/pkg/bits"
)

// Controller is the LCD control register (types.LCDC). Only the
// enable bit affects timing, the remaining bits are kept for the
// rasterizer.
//
//	Bit 7 - LCD Enable                     (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Controller struct {
	Enabled                  bool
	WindowTileMapAddress     uint16
	WindowEnabled            bool
	TileDataAddress          uint16
	BackgroundTileMapAddress uint16
	SpriteSize               uint8
	SpriteEnabled            bool
	BackgroundEnabled        bool

	raw uint8
}

// Write decodes the value into the controller.
func (c *Controller) Write(value uint8) {
	c.raw = value
	c.Enabled = bits.Test(value, 7)
	c.WindowTileMapAddress = 0x9800
	if bits.Test(value, 6) {
		c.WindowTileMapAddress = 0x9C00
	}
	c.WindowEnabled = bits.Test(value, 5)
	c.TileDataAddress = 0x8800
	if bits.Test(value, 4) {
		c.TileDataAddress = 0x8000
	}
	c.BackgroundTileMapAddress = 0x9800
	if bits.Test(value, 3) {
		c.BackgroundTileMapAddress = 0x9C00
	}
	c.SpriteSize = 8
	if bits.Test(value, 2) {
		c.SpriteSize = 16
	}
	c.SpriteEnabled = bits.Test(value, 1)
	c.BackgroundEnabled = bits.Test(value, 0)
}

// Read returns the last value written.
func (c *Controller) Read() uint8 {
	return c.raw
}
