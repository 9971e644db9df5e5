package model

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name           string
		totalCount     int
		requestedPage  int
		wantPage       int
		wantTotalPages int
		wantOffset     int
	}{
		{
			name:           "first page of a full feed",
			totalCount:     25,
			requestedPage:  1,
			wantPage:       1,
			wantTotalPages: 3,
			wantOffset:     0,
		},
		{
			name:           "last partial page",
			totalCount:     25,
			requestedPage:  3,
			wantPage:       3,
			wantTotalPages: 3,
			wantOffset:     20,
		},
		{
			name:           "page past the end clamps to the last page",
			totalCount:     25,
			requestedPage:  4,
			wantPage:       3,
			wantTotalPages: 3,
			wantOffset:     20,
		},
		{
			name:           "page far past the end clamps to the last page",
			totalCount:     25,
			requestedPage:  9999,
			wantPage:       3,
			wantTotalPages: 3,
			wantOffset:     20,
		},
		{
			name:           "zero page clamps to the first page",
			totalCount:     25,
			requestedPage:  0,
			wantPage:       1,
			wantTotalPages: 3,
			wantOffset:     0,
		},
		{
			name:           "negative page clamps to the first page",
			totalCount:     25,
			requestedPage:  -5,
			wantPage:       1,
			wantTotalPages: 3,
			wantOffset:     0,
		},
		{
			name:           "empty feed still has one page",
			totalCount:     0,
			requestedPage:  1,
			wantPage:       1,
			wantTotalPages: 1,
			wantOffset:     0,
		},
		{
			name:           "empty feed clamps any requested page to one",
			totalCount:     0,
			requestedPage:  7,
			wantPage:       1,
			wantTotalPages: 1,
			wantOffset:     0,
		},
		{
			name:           "exact multiple of the page size has no partial page",
			totalCount:     20,
			requestedPage:  2,
			wantPage:       2,
			wantTotalPages: 2,
			wantOffset:     10,
		},
		{
			name:           "single item",
			totalCount:     1,
			requestedPage:  1,
			wantPage:       1,
			wantTotalPages: 1,
			wantOffset:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, totalPages, offset := Paginate(tt.totalCount, tt.requestedPage, FeedPageSize)

			if page != tt.wantPage {
				t.Errorf("page = %d, want %d", page, tt.wantPage)
			}
			if totalPages != tt.wantTotalPages {
				t.Errorf("totalPages = %d, want %d", totalPages, tt.wantTotalPages)
			}
			if offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", offset, tt.wantOffset)
			}
		})
	}
}

func TestPaginateDefaultsPageSize(t *testing.T) {
	// A non-positive page size falls back to the standard feed page size
	// instead of dividing by zero.
	page, totalPages, offset := Paginate(25, 2, 0)

	if page != 2 {
		t.Errorf("page = %d, want 2", page)
	}
	if totalPages != 3 {
		t.Errorf("totalPages = %d, want 3", totalPages)
	}
	if offset != FeedPageSize {
		t.Errorf("offset = %d, want %d", offset, FeedPageSize)
	}
}
