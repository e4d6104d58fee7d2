package main

import "testing"

func TestCheckHistoryLimit(t *testing.T) {
	tests := []struct {
		limit   int
		wantErr bool
	}{
		{limit: 1},
		{limit: 10},
		{limit: 100},
		{limit: 0, wantErr: true},
		{limit: -5, wantErr: true},
	}

	for _, tt := range tests {
		err := checkHistoryLimit(tt.limit)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkHistoryLimit(%d) error = %v, wantErr %v", tt.limit, err, tt.wantErr)
		}
	}
}
