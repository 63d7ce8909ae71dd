package shared_test

import (
	"testing"

	"tm30/shared"
	"tm30/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact pages", total: 30, limit: 10, expected: 3},
		{name: "partial last page", total: 31, limit: 10, expected: 4},
		{name: "single page", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"hotel"},
			expected: "hotel",
		},
		{
			name:     "multiple parts",
			parts:    []string{"submission", "list", "Phunaya Old Town"},
			expected: "submission:list:Phunaya Old Town",
		},
		{
			name:     "empty parts keep their separators",
			parts:    []string{"submission", "list", "Phunaya Old Town", "", ""},
			expected: "submission:list:Phunaya Old Town::",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFilterByRoom(t *testing.T) {
	group := shared.FilterByRoom("P256", "101", "hotel_id", "room_number", "hotel_room_keys")

	if group.Operator != dto.FilterGroupOperatorAnd {
		t.Errorf("expected AND operator, got %q", group.Operator)
	}
	if len(group.Filters) != 2 {
		t.Fatalf("expected 2 filters, got %d", len(group.Filters))
	}

	hotelFilter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[0])
	}
	if hotelFilter.Field != "hotel_id" || hotelFilter.Value != "P256" {
		t.Errorf("unexpected hotel filter: %+v", hotelFilter)
	}

	roomFilter, ok := group.Filters[1].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[1])
	}
	if roomFilter.Field != "room_number" || roomFilter.Value != "101" {
		t.Errorf("unexpected room filter: %+v", roomFilter)
	}
}

func TestFilterByField(t *testing.T) {
	group := shared.FilterByField("PENDING", "status", "tm30_submissions")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[0])
	}
	if filter.Field != "status" || filter.Value != "PENDING" || filter.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", filter)
	}
}
