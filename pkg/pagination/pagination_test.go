package pagination

import "testing"

func TestValidateClampsParams(t *testing.T) {
	cases := []struct {
		in          PaginationParams
		page, limit int
	}{
		{PaginationParams{Page: 0, PerPage: 0}, 1, 50},
		{PaginationParams{Page: -3, PerPage: 10}, 1, 10},
		{PaginationParams{Page: 2, PerPage: 999}, 2, 200},
	}
	for _, tc := range cases {
		p := tc.in
		p.Validate()
		if p.Page != tc.page || p.PerPage != tc.limit {
			t.Fatalf("Validate(%+v) = %+v, want page %d per_page %d", tc.in, p, tc.page, tc.limit)
		}
	}
}

func TestOffset(t *testing.T) {
	p := PaginationParams{Page: 3, PerPage: 20}
	if got := p.Offset(); got != 40 {
		t.Fatalf("Offset() = %d, want 40", got)
	}
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 10, 35)

	if pag.TotalPages != 4 {
		t.Fatalf("TotalPages = %d, want 4", pag.TotalPages)
	}
	if !pag.HasNext || !pag.HasPrev {
		t.Fatalf("page 2 of 4 should have next and prev: %+v", pag)
	}
}

func TestNewPaginationEmpty(t *testing.T) {
	pag := NewPagination(1, 10, 0)

	if pag.TotalPages != 1 {
		t.Fatalf("TotalPages = %d, want 1 for empty result", pag.TotalPages)
	}
	if pag.HasNext || pag.HasPrev {
		t.Fatalf("empty result should have no next/prev: %+v", pag)
	}
}

func TestNewPaginatedResultNilItems(t *testing.T) {
	result := NewPaginatedResult[int](nil, NewPagination(1, 10, 0))
	if result.Items == nil {
		t.Fatal("nil items should serialize as an empty list, not null")
	}
}
