package settings

import (
	"reflect"
	"testing"
)

func TestParseRouteList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "only separators", input: " , ,", want: []string{}},
		{name: "single", input: "322", want: []string{"322"}},
		{name: "trims and keeps order", input: "322, m13 ,  express 1", want: []string{"322", "m13", "express 1"}},
		{name: "drops blanks between", input: "1,,4", want: []string{"1", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRouteList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRouteList(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}
