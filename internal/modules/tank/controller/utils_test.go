package controller

import (
	"net/http/httptest"
	"testing"
)

func Test_parseTankID(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{value: "7", want: 7},
		{value: "0", want: 0},
		{value: "-3", want: -3},
		{value: "", wantErr: true},
		{value: "abc", wantErr: true},
		{value: "1.5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.SetPathValue("tank_id", tt.value)
			got, err := parseTankID(r)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTankID(%q) err = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseTankID(%q) = %d; want %d", tt.value, got, tt.want)
			}
		})
	}
}

func Test_parsePeriodQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/caixa/1/media?periodo=week", nil)
	if got := parsePeriodQuery(r); got != "week" {
		t.Errorf("parsePeriodQuery = %q; want week", got)
	}
	r = httptest.NewRequest("GET", "/caixa/1/media", nil)
	if got := parsePeriodQuery(r); got != "" {
		t.Errorf("parsePeriodQuery = %q; want empty", got)
	}
}
