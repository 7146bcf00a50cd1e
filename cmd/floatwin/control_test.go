package main

import (
	"reflect"
	"testing"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    map[string]interface{}
		wantErr bool
	}{
		{
			name: "numbers and booleans",
			args: []string{"row=1", "col=0", "autosize=true"},
			want: map[string]interface{}{"row": 1.0, "col": 0.0, "autosize": true},
		},
		{
			name: "lengths stay strings",
			args: []string{"top=10%", "left=calc(50% - 20px)"},
			want: map[string]interface{}{"top": "10%", "left": "calc(50% - 20px)"},
		},
		{
			name: "value may contain equals",
			args: []string{"policy=a=b"},
			want: map[string]interface{}{"policy": "a=b"},
		},
		{name: "missing value", args: []string{"row"}, wantErr: true},
		{name: "missing key", args: []string{"=1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseParams(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseParams() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortedMethodsIncludesPing(t *testing.T) {
	names := sortedMethods()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("methods not sorted: %v", names)
		}
	}
	found := false
	for _, n := range names {
		if n == "ping" {
			found = true
		}
	}
	if !found {
		t.Errorf("ping missing from %v", names)
	}
}
