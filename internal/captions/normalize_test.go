package captions

import (
	"fmt"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12:34:56.789", "12:34:56"},
		{"00:00:01.000", "00:00:01"},
		{"1:2", "01:02"},
		{"01:02.500", "01:02"},
		{"1:2:3", "01:02:03"},
		{"garbage", "garbage"},
		{"1:2:3:4", "1:2:3:4"},
		{"", ""},
		{"12", "12"},
		{"aa:bb", "aa:bb"},
		{"1:x:3", "1:x:3"},
		{"100:00:00", "100:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeFixedWidth(t *testing.T) {
	for h := 0; h < 24; h += 7 {
		for m := 0; m < 60; m += 13 {
			for s := 0; s < 60; s += 17 {
				three := Normalize(fmt.Sprintf("%d:%d:%d.%d", h, m, s, 42))
				if len(three) != 8 {
					t.Errorf("Normalize 3-component gave %q (len %d)", three, len(three))
				}
				two := Normalize(fmt.Sprintf("%d:%d", m, s))
				if len(two) != 5 {
					t.Errorf("Normalize 2-component gave %q (len %d)", two, len(two))
				}
			}
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"12:34:56.789", "1:2", "garbage", "1:2:3:4"} {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestNormalizeCues(t *testing.T) {
	cues := []Cue{
		{Start: "00:00:01.000", End: "00:00:03.500", Text: "Hello"},
		{Start: "00:04.250", End: "bad", Text: "World"},
	}
	NormalizeCues(cues)

	want := []Cue{
		{Start: "00:00:01", End: "00:00:03", Text: "Hello"},
		{Start: "00:04", End: "bad", Text: "World"},
	}
	for i := range want {
		if cues[i] != want[i] {
			t.Errorf("cue %d = %+v, want %+v", i, cues[i], want[i])
		}
	}
}
