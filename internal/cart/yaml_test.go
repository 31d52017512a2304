package cart

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeBankRoundTrips(t *testing.T) {
	b := NewBank()
	b.Carts[0].Name = "FACTORY"
	p, _ := b.Patch(0, 0)
	p.Name = "LEAD"
	p.Line1Wave1 = 2

	var buf bytes.Buffer
	if err := EncodeBank(&buf, b); err != nil {
		t.Fatal(err)
	}

	decoded, err := DecodeBank(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Carts[0].Name != "FACTORY" {
		t.Errorf("Carts[0].Name = %q, want FACTORY", decoded.Carts[0].Name)
	}
	dp, err := decoded.Patch(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if dp.Name != "LEAD" || dp.Line1Wave1 != 2 {
		t.Errorf("decoded patch = %+v, want Name=LEAD Line1Wave1=2", dp)
	}
}

func TestDecodeBankValidatesOutOfRangeParams(t *testing.T) {
	yamlDoc := `
carts:
  - name: BAD
    patches:
      - name: BAD
        line1_wave1: 999
`
	decoded, err := DecodeBank(strings.NewReader(yamlDoc))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Carts[0].Patches[0].Line1Wave1 >= NumWaveVals {
		t.Errorf("Line1Wave1 = %d, expected clamp below %d", decoded.Carts[0].Patches[0].Line1Wave1, NumWaveVals)
	}
}
