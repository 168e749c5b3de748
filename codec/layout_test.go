package codec

import "testing"

func TestLayouts(t *testing.T) {
	all := Layouts()
	if len(all) != 8 {
		t.Fatalf("Layouts() returned %d layouts, want 8", len(all))
	}

	expected := []LayoutName{Int8, UInt8, Int16, UInt16, Int32, UInt32, Float32, Float64}
	for i, name := range expected {
		if all[i].Name() != name {
			t.Errorf("Layouts()[%d] = %s, want %s", i, all[i].Name(), name)
		}
	}
}

func TestLayoutMetadata(t *testing.T) {
	for _, l := range Layouts() {
		if l.Description() == "" {
			t.Errorf("%s has no description", l.Name())
		}
		if len(l.Example()) != l.BitWidth() {
			t.Errorf("%s example has %d bits, want %d", l.Name(), len(l.Example()), l.BitWidth())
		}
		if _, err := Decode(l.Example(), l); err != nil {
			t.Errorf("%s example does not decode: %v", l.Name(), err)
		}
	}
}

func TestIntegerRanges(t *testing.T) {
	tests := []struct {
		name     LayoutName
		min, max int64
	}{
		{Int8, -128, 127},
		{UInt8, 0, 255},
		{Int16, -32768, 32767},
		{UInt16, 0, 65535},
		{Int32, -2147483648, 2147483647},
		{UInt32, 0, 4294967295},
	}

	for _, tt := range tests {
		l := MustLayout(tt.name).(*IntegerLayout)
		if l.Min() != tt.min || l.Max() != tt.max {
			t.Errorf("%s range = [%d, %d], want [%d, %d]", tt.name, l.Min(), l.Max(), tt.min, tt.max)
		}
	}
}

func TestFloatFieldWidths(t *testing.T) {
	f32 := MustLayout(Float32).(*FloatLayout)
	if f32.ExponentBits() != 8 || f32.MantissaBits() != 23 {
		t.Errorf("Float32 fields = %d/%d, want 8/23", f32.ExponentBits(), f32.MantissaBits())
	}

	f64 := MustLayout(Float64).(*FloatLayout)
	if f64.ExponentBits() != 11 || f64.MantissaBits() != 52 {
		t.Errorf("Float64 fields = %d/%d, want 11/52", f64.ExponentBits(), f64.MantissaBits())
	}
}

func TestLayoutByName(t *testing.T) {
	if l, ok := LayoutByName("Float32"); !ok || l.Name() != Float32 {
		t.Error("LayoutByName(Float32) failed")
	}
	if _, ok := LayoutByName("Int64"); ok {
		t.Error("LayoutByName accepted an unsupported layout")
	}
}

func TestMustLayout_PanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLayout did not panic on unknown name")
		}
	}()
	MustLayout("Int64")
}
