package pagination

import "testing"

func TestWindowDefaults(t *testing.T) {
	tests := []struct {
		name       string
		in         Window
		wantLimit  int
		wantOffset int
	}{
		{"empty", Window{}, DefaultLimit, 0},
		{"kept", Window{Limit: 10, Offset: 20}, 10, 20},
		{"capped", Window{Limit: 500}, MaxLimit, 0},
		{"negative_offset", Window{Limit: 5, Offset: -3}, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.in
			w.Defaults()
			if w.Limit != tt.wantLimit || w.Offset != tt.wantOffset {
				t.Errorf("got limit=%d offset=%d, want limit=%d offset=%d", w.Limit, w.Offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestNewListResponse(t *testing.T) {
	resp := NewListResponse[int](nil, Window{Limit: 50})
	if resp.Data == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if resp.Count != 0 || resp.Limit != 50 {
		t.Errorf("unexpected response %+v", resp)
	}
}
