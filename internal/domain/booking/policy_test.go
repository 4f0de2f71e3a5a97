package booking

import "testing"

func TestCanCreateService(t *testing.T) {
	cases := []struct {
		count int64
		want  bool
	}{
		{0, true},
		{1, true},
		{2, false}, // tope del plan gratuito
		{3, false},
	}

	for _, c := range cases {
		if got := CanCreateService(c.count); got != c.want {
			t.Errorf("CanCreateService(%d) = %v, want %v", c.count, got, c.want)
		}
	}
}
