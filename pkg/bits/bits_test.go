package bits

import "testing"

func TestToByte(t *testing.T) {
	for v := -1024; v < 1024; v++ {
		want := uint8(((v % 256) + 256) % 256)
		if got := ToByte(v); got != want {
			t.Errorf("ToByte(%d): expected 0x%02X, got 0x%02X", v, want, got)
		}
	}
}

func TestToWord(t *testing.T) {
	for _, v := range []int{0, 1, 0xFFFF, 0x10000, 0x1_2345, -1, -0x10001, 1 << 20} {
		want := uint16(((v % 65536) + 65536) % 65536)
		if got := ToWord(v); got != want {
			t.Errorf("ToWord(%d): expected 0x%04X, got 0x%04X", v, want, got)
		}
	}
}

func TestHalfCarry(t *testing.T) {
	tests := []struct {
		name string
		a, b uint8
		sub  bool
		want bool
	}{
		{"add 0x3E+0x22", 0x3E, 0x22, false, true},
		{"add 0x3D+0x22", 0x3D, 0x22, false, false},
		{"sub 0x0B-0x0F", 0x0B, 0x0F, true, true},
		{"sub 0x0B-0x09", 0x0B, 0x09, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			if tt.sub {
				got = HalfCarrySub(tt.a, tt.b, false)
			} else {
				got = HalfCarryAdd(tt.a, tt.b, false)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCarry(t *testing.T) {
	if !CarryAdd(0xFF, 0x01, false) {
		t.Errorf("expected 0xFF+0x01 to carry")
	}
	if CarryAdd(0xFE, 0x01, false) {
		t.Errorf("expected 0xFE+0x01 not to carry")
	}
	if !CarryAdd(0xFE, 0x01, true) {
		t.Errorf("expected 0xFE+0x01+1 to carry")
	}
	if !CarrySub(0x00, 0x01, false) {
		t.Errorf("expected 0x00-0x01 to borrow")
	}
	if CarrySub(0x01, 0x01, false) {
		t.Errorf("expected 0x01-0x01 not to borrow")
	}
	if !CarryAdd16(0xFFFF, 0x0001) {
		t.Errorf("expected 0xFFFF+0x0001 to carry")
	}
	if !HalfCarryAdd16(0x0FFF, 0x0001) {
		t.Errorf("expected 0x0FFF+0x0001 to half carry")
	}
}

func TestSignExtend(t *testing.T) {
	if SignExtend(0x7F) != 127 {
		t.Errorf("expected 127, got %d", SignExtend(0x7F))
	}
	if SignExtend(0x80) != -128 {
		t.Errorf("expected -128, got %d", SignExtend(0x80))
	}
	if SignExtend(0xFE) != -2 {
		t.Errorf("expected -2, got %d", SignExtend(0xFE))
	}
}

func TestSetReset(t *testing.T) {
	v := Set(0, 3)
	if !Test(v, 3) || Val(v, 3) != 1 {
		t.Errorf("expected bit 3 to be set, got 0b%08b", v)
	}
	if Reset(v, 3) != 0 {
		t.Errorf("expected bit 3 to be reset, got 0b%08b", Reset(v, 3))
	}
}
