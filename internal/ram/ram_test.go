package ram

import "testing"

func TestRAM(t *testing.T) {
	r := NewRAM(0x7F)
	if r.Size() != 0x7F {
		t.Errorf("expected size 0x7F, got 0x%02X", r.Size())
	}
	r.Write(0x7E, 0x42)
	if r.Read(0x7E) != 0x42 {
		t.Errorf("expected 0x42, got 0x%02X", r.Read(0x7E))
	}
	r.Reset()
	if r.Read(0x7E) != 0 {
		t.Errorf("expected reset to zero the RAM, got 0x%02X", r.Read(0x7E))
	}
}
