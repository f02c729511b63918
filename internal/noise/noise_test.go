package noise

import (
	"errors"
	"math"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		size    int
		wantErr error
	}{
		{"unknown kind", Kind("pink"), 16, ErrUnknownKind},
		{"zero size", Zero, 0, nil},
		{"negative size", Gaussian, -4, nil},
		{"odd signed", Signed, 9, ErrOddSignedNoise},
		{"even signed ok", Signed, 16, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.kind, tt.size, 1)
			switch {
			case tt.name == "even signed ok":
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			default:
				if err == nil {
					t.Error("expected error, got nil")
				}
			}
		})
	}
}

func TestZero(t *testing.T) {
	g, err := New(Zero, 16, 99)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, v := range g.Slice() {
		if v != 0 {
			t.Fatal("zero noise produced non-zero value")
		}
	}
}

func TestSigned_ExactZeroSum(t *testing.T) {
	g, err := New(Signed, 64, 7)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for trial := 0; trial < 10; trial++ {
		s := g.Slice()
		sum := 0.0
		minus, plus := 0, 0
		for _, v := range s {
			sum += v
			switch v {
			case -1:
				minus++
			case 1:
				plus++
			default:
				t.Fatalf("signed noise produced value %f", v)
			}
		}
		if sum != 0 {
			t.Errorf("trial %d: sum = %f, want exactly 0", trial, sum)
		}
		if minus != 32 || plus != 32 {
			t.Errorf("trial %d: counts %d/%d, want 32/32", trial, minus, plus)
		}
	}
}

func TestGaussian_SeedReproducible(t *testing.T) {
	a, _ := New(Gaussian, 256, 12345)
	b, _ := New(Gaussian, 256, 12345)

	sa, sb := a.Slice(), b.Slice()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("same seed diverged at index %d: %v vs %v", i, sa[i], sb[i])
		}
	}

	// the stream continues deterministically across slices
	sa2, sb2 := a.Slice(), b.Slice()
	for i := range sa2 {
		if sa2[i] != sb2[i] {
			t.Fatalf("second slice diverged at index %d", i)
		}
	}
}

func TestGaussian_RoughlyZeroMean(t *testing.T) {
	g, _ := New(Gaussian, 10000, 42)
	s := g.Slice()
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	if math.Abs(sum/float64(len(s))) > 0.05 {
		t.Errorf("gaussian sample mean = %f, expected near 0", sum/float64(len(s)))
	}
}

func TestSeries(t *testing.T) {
	g, _ := New(Signed, 4, 3)
	series := g.Series(5)
	if len(series) != 5 {
		t.Fatalf("expected 5 slices, got %d", len(series))
	}
	for i, s := range series {
		if len(s) != 4 {
			t.Errorf("slice %d has length %d, want 4", i, len(s))
		}
	}

	// regenerating with the same seed reproduces the whole series
	g2, _ := New(Signed, 4, 3)
	series2 := g2.Series(5)
	for i := range series {
		for j := range series[i] {
			if series[i][j] != series2[i][j] {
				t.Fatalf("series diverged at slice %d cell %d", i, j)
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"zero", Zero, false},
		{"signed", Signed, false},
		{"gaussian", Gaussian, false},
		{"", Zero, false},
		{"uniform", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKind(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
