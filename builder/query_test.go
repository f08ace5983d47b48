package builder

import "testing"

func TestCalculatePagination(t *testing.T) {
	cases := []struct {
		name                string
		page, limit         string
		wantPage, wantLimit int
	}{
		{"defaults", "", "", 1, 10},
		{"explicit", "2", "5", 2, 5},
		{"zero page falls back", "0", "5", 1, 5},
		{"negative limit falls back", "3", "-1", 3, 10},
		{"garbage falls back", "two", "ten", 1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := CalculatePagination(tc.page, tc.limit)
			if page != tc.wantPage || limit != tc.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d", page, limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}

func TestNormalizeSortOrder(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"desc", "DESC"},
		{"asc", "ASC"},
		{"", "ASC"},
		{"DESC", "ASC"},
		{"random", "ASC"},
	}
	for _, tc := range cases {
		if got := NormalizeSortOrder(tc.in); got != tc.want {
			t.Errorf("NormalizeSortOrder(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
