package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		brand string
		want  string
	}{
		{
			name:  "simple lowercase",
			brand: "acme",
			want:  "acme",
		},
		{
			name:  "spaces become hyphens",
			brand: "Acme Corp",
			want:  "acme-corp",
		},
		{
			name:  "punctuation stripped",
			brand: "A&W! Root Beer",
			want:  "aw-root-beer",
		},
		{
			name:  "whitespace runs collapse",
			brand: "  Big   Brand  ",
			want:  "big-brand",
		},
		{
			name:  "digits survive",
			brand: "7-Eleven",
			want:  "7-eleven",
		},
		{
			name:  "empty input",
			brand: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.brand))
		})
	}
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{name: "under a thousand", v: 950, want: "950"},
		{name: "thousands", v: 1234, want: "1.2K"},
		{name: "millions", v: 1200000, want: "1.2M"},
		{name: "billions", v: 2500000000, want: "2.5B"},
		{name: "trailing zero trimmed", v: 2000, want: "2K"},
		{name: "negative", v: -1500, want: "-1.5K"},
		{name: "zero", v: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Abbreviate(tt.v))
		})
	}
}

func TestAbbreviateMetricNil(t *testing.T) {
	assert.Equal(t, NotAvailable, AbbreviateMetric(nil))

	v := 42.0
	assert.Equal(t, "42", AbbreviateMetric(&v))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, NotAvailable, Currency(nil))

	v := 3400000.0
	assert.Equal(t, "$3.4M", Currency(&v))
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "seconds only", seconds: 45, want: "45s"},
		{name: "minutes and seconds", seconds: 204, want: "3m 24s"},
		{name: "hours and minutes", seconds: 3720, want: "1h 2m"},
		{name: "zero", seconds: 0, want: "0s"},
		{name: "negative", seconds: -5, want: NotAvailable},
		{name: "rounds fractions", seconds: 59.6, want: "1m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.seconds))
		})
	}
}

func TestGrowth(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   float64
		wantOK bool
	}{
		{name: "upward", series: []float64{100, 150}, want: 50, wantOK: true},
		{name: "downward", series: []float64{200, 100}, want: -50, wantOK: true},
		{name: "flat", series: []float64{80, 80}, want: 0, wantOK: true},
		{name: "too short", series: []float64{100}, wantOK: false},
		{name: "empty", series: nil, wantOK: false},
		{name: "first element zero", series: []float64{0, 100}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Growth(tt.series)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestGrowthLabel(t *testing.T) {
	assert.Equal(t, "+50.0%", GrowthLabel([]float64{100, 150}))
	assert.Equal(t, "-25.0%", GrowthLabel([]float64{100, 75}))
	assert.Equal(t, "0.0%", GrowthLabel([]float64{10, 10}))
	assert.Equal(t, NotAvailable, GrowthLabel([]float64{100}))
}
