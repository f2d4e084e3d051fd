package journal

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		delta Money
		want  GainLossState
	}{
		{"positive", M(0.01, "USD"), Gain},
		{"negative", M(-0.01, "USD"), Loss},
		{"zero", M(0, "USD"), Flat},
		{"large gain", M(123456.78, "USD"), Gain},
		{"large loss", M(-123456.78, "USD"), Loss},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.delta); got != tc.want {
				t.Errorf("classify(%s) = %s, want %s", tc.delta, got, tc.want)
			}
		})
	}
}
