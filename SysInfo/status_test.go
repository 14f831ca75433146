package SysInfo

import (
	"encoding/json"
	"testing"
)

func TestPercentJSON(t *testing.T) {
	cases := []struct {
		in   Percent
		want string
	}{
		{75, "75.0"},
		{100, "100.0"},
		{0, "0.0"},
		{66.7, "66.7"},
		{0.1, "0.1"},
	}
	for _, tc := range cases {
		got, err := json.Marshal(tc.in)
		if err != nil {
			t.Fatalf("Marshal(%v) error: %v", tc.in, err)
		}
		if string(got) != tc.want {
			t.Fatalf("Marshal(%v) = %s; want %s", tc.in, got, tc.want)
		}
	}
}

func TestMemoryInfoJSON(t *testing.T) {
	got, err := json.Marshal(&MemoryInfo{Total: "7.7 GiB", Avail: "1.9 GiB", PercentUsed: 75})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"total":"7.7 GiB","avail":"1.9 GiB","percent_used":75.0}`
	if string(got) != want {
		t.Fatalf("Marshal = %s; want %s", got, want)
	}

	var back MemoryInfo
	if err := json.Unmarshal(got, &back); err != nil {
		t.Fatal(err)
	}
	if back.PercentUsed != 75 {
		t.Fatalf("percent_used = %v; want 75", back.PercentUsed)
	}
}
