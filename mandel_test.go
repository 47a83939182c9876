package mandel

import (
	"errors"
	"flag"
	"math"
	"math/cmplx"
	"testing"
)

func TestRegionValidate(t *testing.T) {
	tests := []struct {
		name   string
		region Region
		ok     bool
	}{
		{"unit", Region{complex(-1, 1), complex(1, -1)}, true},
		{"landmark", SeahorseValley, true},
		{"flipped re", Region{complex(1, 1), complex(-1, -1)}, false},
		{"flipped im", Region{complex(-1, -1), complex(1, 1)}, false},
		{"zero width", Region{complex(0, 1), complex(0, -1)}, false},
		{"zero height", Region{complex(-1, 0), complex(1, 0)}, false},
		{"nan", Region{complex(math.NaN(), 1), complex(1, -1)}, false},
		{"inf", Region{complex(-1, 1), cmplx.Inf()}, false},
	}
	for _, tt := range tests {
		err := tt.region.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: Validate() = %v, want nil", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrDegenerateRegion) {
			t.Errorf("%s: Validate() = %v, want ErrDegenerateRegion", tt.name, err)
		}
	}
}

func TestLandmarksValid(t *testing.T) {
	for name, r := range Landmarks {
		if err := r.Validate(); err != nil {
			t.Errorf("landmark %s: %v", name, err)
		}
	}
	if _, err := Landmark("Seahorse"); err != nil {
		t.Errorf("Landmark(Seahorse) = %v", err)
	}
	if _, err := Landmark("atlantis"); err == nil {
		t.Error("Landmark(atlantis) succeeded")
	}
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("-1.16+0.29i:-1.14+0.275i")
	if err != nil {
		t.Fatal(err)
	}
	if r != AntennaField {
		t.Errorf("ParseRegion = %s, want %s", r, AntennaField)
	}

	back, err := ParseRegion(SpiralMinibrot.String())
	if err != nil {
		t.Fatal(err)
	}
	if back != SpiralMinibrot {
		t.Errorf("round trip = %s, want %s", back, SpiralMinibrot)
	}

	for _, s := range []string{"", "1+1i", "x:1-1i", "-1+1i:y", "1+1i:-1-1i"} {
		if _, err := ParseRegion(s); err == nil {
			t.Errorf("ParseRegion(%q) succeeded", s)
		}
	}
}

func TestRegionFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	r := WholeSet
	fs.Var(&r, "region", "")

	if err := fs.Parse([]string{"-region", "dragon"}); err != nil {
		t.Fatal(err)
	}
	if r != ValleyOfTheDragon {
		t.Errorf("landmark flag = %s, want %s", r, ValleyOfTheDragon)
	}
	if err := fs.Parse([]string{"-region", "(-2+1i):(1-1i)"}); err != nil {
		t.Fatal(err)
	}
	if want := (Region{complex(-2, 1), complex(1, -1)}); r != want {
		t.Errorf("region flag = %s, want %s", r, want)
	}
}

func TestRegionPanZoom(t *testing.T) {
	r := Region{complex(-2, 1), complex(2, -1)}

	p := r.Pan(0.25, -0.5)
	if want := (Region{complex(-1, 0), complex(3, -2)}); p != want {
		t.Errorf("Pan = %s, want %s", p, want)
	}

	z := r.Zoom(2)
	if want := (Region{complex(-1, 0.5), complex(1, -0.5)}); z != want {
		t.Errorf("Zoom(2) = %s, want %s", z, want)
	}
	if z.Center() != r.Center() {
		t.Errorf("Zoom moved the center to %v", z.Center())
	}
}

func TestRegionFields(t *testing.T) {
	r := AntennaField
	n := 10
	fields := r.Fields(n)
	if len(fields) != n*n {
		t.Fatalf("got %d fields, want %d", len(fields), n*n)
	}

	for i, f := range fields {
		if f.Row != i/n || f.Col != i%n {
			t.Errorf("field %d at (%d,%d), want row-major order", i, f.Row, f.Col)
		}
		if err := f.Region.Validate(); err != nil {
			t.Errorf("field %d_%d: %v", f.Row, f.Col, err)
		}
		if f.Col > 0 {
			left := fields[i-1].Region
			if real(left.LowerRight) != real(f.Region.UpperLeft) {
				t.Errorf("field %d_%d does not touch its left neighbour", f.Row, f.Col)
			}
		}
		if f.Row > 0 {
			up := fields[i-n].Region
			if imag(up.LowerRight) != imag(f.Region.UpperLeft) {
				t.Errorf("field %d_%d does not touch its upper neighbour", f.Row, f.Col)
			}
		}
	}

	if fields[0].Region.UpperLeft != r.UpperLeft {
		t.Errorf("first field starts at %v, want %v", fields[0].Region.UpperLeft, r.UpperLeft)
	}
	if last := fields[len(fields)-1].Region.LowerRight; last != r.LowerRight {
		t.Errorf("last field ends at %v, want %v", last, r.LowerRight)
	}
}

func TestFieldsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Fields(0) did not panic")
		}
	}()
	WholeSet.Fields(0)
}

func TestFieldFilename(t *testing.T) {
	if got, want := FieldFilename(3, 12), "field_003_012_0.png"; got != want {
		t.Errorf("FieldFilename = %q, want %q", got, want)
	}
}
