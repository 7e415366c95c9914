package colorutil

import (
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    color.RGBA
		wantErr bool
	}{
		{name: "named", spec: "yellow", want: Yellow},
		{name: "named uppercase", spec: "Blue", want: Blue},
		{name: "named padded", spec: "  black ", want: Black},
		{name: "hex rgb", spec: "#ffcc00", want: color.RGBA{R: 255, G: 204, B: 0, A: 255}},
		{name: "hex rgba", spec: "#ffcc0080", want: color.RGBA{R: 255, G: 204, B: 0, A: 128}},
		{name: "unknown name", spec: "mauve-ish", wantErr: true},
		{name: "short hex", spec: "#fff", wantErr: true},
		{name: "bad hex digits", spec: "#zzzzzz", wantErr: true},
		{name: "empty", spec: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestRandomOutlineOpaque(t *testing.T) {
	for i := 0; i < 20; i++ {
		c := RandomOutline()
		if c.A != 255 {
			t.Fatalf("RandomOutline() alpha = %d, want 255", c.A)
		}
	}
}
