// internal/util/util_test.go
package util

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "exports", "report.md")
	data := []byte("test payload")

	if err := WriteFile(path, data); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("unexpected file contents: got %q want %q", got, data)
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "no truncation", in: "hello", max: 10, want: "hello"},
		{name: "ascii truncation", in: "helloworld", max: 5, want: "hello…"},
		{name: "multibyte truncation", in: "こんにちは世界", max: 4, want: "こんにち…"},
		{name: "zero width", in: "features.0.conv", max: 0, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateRunes(tt.in, tt.max); got != tt.want {
				t.Fatalf("TruncateRunes(%q,%d)=%q want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	t.Parallel()

	input := "line1\nSecondLine"
	want := "line1\nSecon…"

	if got := TruncateToWidth(input, 5); got != want {
		t.Fatalf("TruncateToWidth result mismatch\nwant:\n%s\n\ngot:\n%s", want, got)
	}
	if got := TruncateToWidth(input, 0); got != input {
		t.Fatalf("expected non-positive width to be a no-op, got %q", got)
	}
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	if got := Min(3, 7); got != 3 {
		t.Fatalf("Min(3,7)=%d want 3", got)
	}
	if got := Min(9, -1); got != -1 {
		t.Fatalf("Min(9,-1)=%d want -1", got)
	}
	if got := Max(3, 7); got != 7 {
		t.Fatalf("Max(3,7)=%d want 7", got)
	}
	if got := Max(9, -1); got != 9 {
		t.Fatalf("Max(9,-1)=%d want 9", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, want int }{{-3, 0}, {0, 0}, {4, 4}, {9, 5}}
	for _, tc := range cases {
		if got := Clamp(tc.v, 0, 5); got != tc.want {
			t.Fatalf("Clamp(%d, 0, 5) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestFraction(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"low end", 1, 1, 5, 0},
		{"high end", 5, 1, 5, 1},
		{"middle", 3, 1, 5, 0.5},
		{"below range", -2, 1, 5, 0},
		{"empty range", 7, 7, 7, 0.5},
		{"full float range low", -math.MaxFloat64, -math.MaxFloat64, math.MaxFloat64, 0},
		{"full float range high", math.MaxFloat64, -math.MaxFloat64, math.MaxFloat64, 1},
		{"full float range zero", 0, -math.MaxFloat64, math.MaxFloat64, 0.5},
	}
	for _, tc := range cases {
		if got := Fraction(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("%s: Fraction(%g, %g, %g) = %g, want %g", tc.name, tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
	if got := Fraction(math.NaN(), 0, 1); got != 0.5 {
		t.Fatalf("expected NaN input to map to 0.5, got %g", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 4, 0.25); got != 1 {
		t.Fatalf("Lerp(0, 4, 0.25) = %g, want 1", got)
	}
	lo, hi := -math.MaxFloat64, math.MaxFloat64
	for i := 0; i <= 10; i++ {
		got := Lerp(lo, hi, float64(i)/10)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("Lerp over the full float range gave %g at step %d", got, i)
		}
	}
	if Lerp(lo, hi, 0) != lo || Lerp(lo, hi, 1) != hi {
		t.Fatalf("expected Lerp to hit both ends exactly")
	}
}
