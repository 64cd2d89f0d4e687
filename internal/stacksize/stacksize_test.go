package stacksize

import "testing"

func TestH(t *testing.T) {
	tests := map[string]struct {
		k    int
		want int
	}{
		"zero":       {0, 1},
		"one":        {1, 1},
		"two":        {2, 2},
		"three":      {3, 2},
		"four":       {4, 3},
		"large even": {100, 51},
		"large odd":  {101, 51},
	}
	for name, test := range tests {
		if got := H(test.k); got != test.want {
			t.Errorf("%s: H(%d) = %d, want %d", name, test.k, got, test.want)
		}
	}
}
