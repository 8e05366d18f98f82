package pagination

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		in          PaginationParams
		wantPage    int
		wantPerPage int
	}{
		{"defaults applied", PaginationParams{}, 1, 15},
		{"negative page", PaginationParams{Page: -3, PerPage: 10}, 1, 10},
		{"per page capped", PaginationParams{Page: 2, PerPage: 500}, 2, 100},
		{"valid untouched", PaginationParams{Page: 4, PerPage: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Validate()
			if tt.in.Page != tt.wantPage || tt.in.PerPage != tt.wantPerPage {
				t.Errorf("got page=%d perPage=%d, want page=%d perPage=%d",
					tt.in.Page, tt.in.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := PaginationParams{Page: 3, PerPage: 20}
	if got := p.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 15, 31)

	if p.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext {
		t.Error("HasNext = false, want true")
	}
	if !p.HasPrev {
		t.Error("HasPrev = false, want true")
	}

	last := NewPagination(3, 15, 31)
	if last.HasNext {
		t.Error("last page HasNext = true, want false")
	}
}
