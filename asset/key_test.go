package asset

import "testing"

func TestKeyCanonicalization(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
		want string
	}{
		{KindImage, "Hero", "image:hero"},
		{KindImage, "hero", "image:hero"},
		{KindImage, "HERO", "image:hero"},
		{KindAudio, "Theme", "audio:theme"},
		{KindFont, "$default", "font:$default"},
		{KindFont, "Mono-8x12", "font:mono-8x12"},
	}

	for _, tt := range tests {
		if got := Key(tt.kind, tt.name); got != tt.want {
			t.Errorf("Key(%v, %q) = %q, want %q", tt.kind, tt.name, got, tt.want)
		}
	}
}

func TestKeyCaseVariantsCollapse(t *testing.T) {
	variants := []string{"Hero", "hero", "HERO", "hErO"}
	want := Key(KindImage, "hero")
	for _, name := range variants {
		if got := Key(KindImage, name); got != want {
			t.Errorf("Key(KindImage, %q) = %q, want %q", name, got, want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"image", KindImage, false},
		{"Image", KindImage, false},
		{"AUDIO", KindAudio, false},
		{"font", KindFont, false},
		{"shader", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKind(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKind(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindImage.String() != "image" || KindAudio.String() != "audio" || KindFont.String() != "font" {
		t.Errorf("kind names changed: %s %s %s", KindImage, KindAudio, KindFont)
	}
}
