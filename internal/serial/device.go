package serial

import (
	"io"

	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Device is a device that can be attached to the Controller. A
// transfer swaps a whole byte with it.
type Device interface {
	Exchange(out uint8) (in uint8)
}

// nullDevice acts as if nothing is plugged into the port, so every
// transfer reads back 0xFF.
type nullDevice struct{}

// Exchange discards the byte and returns 0xFF.
func (nullDevice) Exchange(uint8) uint8 { return 0xFF }

// WriterDevice forwards every byte sent by the machine to an
// io.Writer, and reads back 0xFF. Test ROMs commonly report their
// results this way. Delivery is best effort: a failed write is logged
// to Log, if set, and the transfer still completes.
type WriterDevice struct {
	W   io.Writer
	Log log.Logger
}

// Exchange writes out to the underlying writer.
func (d WriterDevice) Exchange(out uint8) uint8 {
	if _, err := d.W.Write([]byte{out}); err != nil && d.Log != nil {
		d.Log.Errorf("serial: writing 0x%02X: %v", out, err)
	}
	return 0xFF
}
