package validators

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Manicure Express", "manicure-express"},
		{"  La Mejor   Manicurista ", "la-mejor-manicurista"},
		{"Ana123", "ana123"},
		{"tatuajes&cia", "tatuajes-cia"},
		{"---", "perfil"},
		{"", "perfil"},
		{"ñandú", "and"},
	}

	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
