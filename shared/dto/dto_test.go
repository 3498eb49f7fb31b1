package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/Lucasteinmann/Aarebooking/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "booking_date",
				Operator: dto.FilterOperatorEq,
				Value:    "2024-06-01",
				Table:    "bookings",
			},
			wantWhere: "bookings.booking_date = :booking_date",
			wantArgs:  map[string]any{"booking_date": "2024-06-01"},
		},
		{
			name: "in with slice",
			filter: dto.Filter{
				Field:    "boat_id",
				Operator: dto.FilterOperatorIn,
				Value:    []string{"sup", "kanu"},
				Table:    "boats",
			},
			wantWhere: "boats.boat_id IN (:boat_id_0, :boat_id_1) ",
			wantArgs:  map[string]any{"boat_id_0": "sup", "boat_id_1": "kanu"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "name",
				Operator: "between",
				Value:    "x",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}
			for k, v := range tt.wantArgs {
				if args[k] != v {
					t.Errorf("expected arg %s=%v, got %v", k, v, args[k])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "booking_date", Operator: dto.FilterOperatorEq, Value: "2024-06-01"},
			dto.Filter{Field: "item_id", Operator: dto.FilterOperatorEq, Value: "sup"},
		},
	}

	where, args := group.GetWhereClause()

	want := "(booking_date = :booking_date AND item_id = :item_id)"
	if where != want {
		t.Errorf("expected where %q, got %q", want, where)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, _ := group.GetWhereClause()
	if where != "" {
		t.Errorf("expected empty where, got %q", where)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/boats?page=2&limit=5&sort_by=name&sort_dir=asc", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	if q.Page != 2 || q.Limit != 5 {
		t.Errorf("expected page=2 limit=5, got page=%d limit=%d", q.Page, q.Limit)
	}
	if q.SortBy != "name" || q.SortDir != dto.SortDirAsc {
		t.Errorf("expected sort name/ASC, got %s/%s", q.SortBy, q.SortDir)
	}
}

func TestQueryParams_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/boats", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	if q.Page != 1 || q.Limit != 10 {
		t.Errorf("expected defaults page=1 limit=10, got page=%d limit=%d", q.Page, q.Limit)
	}
}
