package SysInfo

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestSizeOf(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0 B"},
		{1, "1.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1024 * 1024, "1.0 MiB"},
		{8 * 1024 * 1024 * 1024, "8.0 GiB"},
		{math.Pow(1024, 8), "1.0YiB"},
		{3 * math.Pow(1024, 8), "3.0YiB"},
		{-2048, "-2.0 KiB"},
	}
	for _, tc := range cases {
		if got := SizeOf(tc.in); got != tc.want {
			t.Fatalf("SizeOf(%v) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestSizeOfMagnitudeBelowStep(t *testing.T) {
	for _, n := range []float64{1, 999, 4096, 5e6, 7.3e9, 1e13, 2e18, 9e21, 5e24} {
		got := strings.Replace(SizeOf(n), "YiB", " YiB", 1)
		fields := strings.Fields(got)
		if len(fields) != 2 {
			t.Fatalf("SizeOf(%v) = %q; want number and unit", n, got)
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			t.Fatalf("SizeOf(%v) = %q: %v", n, got, err)
		}
		if fields[1] != "YiB" && v >= 1024 {
			t.Fatalf("SizeOf(%v) = %q; magnitude should have stepped to the next unit", n, got)
		}
	}
}
