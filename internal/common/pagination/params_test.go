package pagination_test

import (
	"net/http/httptest"
	"testing"

	"newsdesk/internal/common/pagination"
)

func parse(t *testing.T, rawQuery string) pagination.Params {
	t.Helper()
	r := httptest.NewRequest("GET", "/news?"+rawQuery, nil)
	return pagination.ParseQueryParams(r, pagination.DefaultConfig())
}

func TestParseQueryParams_PageNormalization(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "absent defaults to 1", query: "", want: 1},
		{name: "valid page kept", query: "page=3", want: 3},
		{name: "zero falls back", query: "page=0", want: 1},
		{name: "negative falls back", query: "page=-2", want: 1},
		{name: "non-numeric falls back", query: "page=abc", want: 1},
		{name: "float falls back", query: "page=1.5", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parse(t, tt.query).Page; got != tt.want {
				t.Errorf("Page=%d want %d", got, tt.want)
			}
		})
	}
}

func TestParseQueryParams_LimitNormalization(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "absent defaults to 10", query: "", want: 10},
		{name: "valid limit kept", query: "limit=25", want: 25},
		{name: "zero falls back", query: "limit=0", want: 10},
		{name: "negative falls back", query: "limit=-5", want: 10},
		{name: "non-numeric falls back", query: "limit=ten", want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parse(t, tt.query).Limit; got != tt.want {
				t.Errorf("Limit=%d want %d", got, tt.want)
			}
		})
	}
}

func TestParseQueryParams_OrderNormalization(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		wantAscending bool
	}{
		{name: "absent sorts descending", query: "", wantAscending: false},
		{name: "asc sorts ascending", query: "order=asc", wantAscending: true},
		{name: "ASC sorts ascending", query: "order=ASC", wantAscending: true},
		{name: "Asc sorts ascending", query: "order=Asc", wantAscending: true},
		{name: "desc sorts descending", query: "order=desc", wantAscending: false},
		{name: "garbage sorts descending", query: "order=upwards", wantAscending: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parse(t, tt.query).Ascending; got != tt.wantAscending {
				t.Errorf("Ascending=%v want %v", got, tt.wantAscending)
			}
		})
	}
}

func TestParseQueryParams_TitleFilter(t *testing.T) {
	if got := parse(t, "title=election").Title; got != "election" {
		t.Errorf("Title=%q", got)
	}
	if got := parse(t, "").Title; got != "" {
		t.Errorf("Title=%q want empty", got)
	}
}

func TestParseQueryParams_NeverRejects(t *testing.T) {
	// Normalization has no error path; the worst possible input still yields
	// the defaults.
	p := parse(t, "page=!!!&limit=&order=%20&title=")
	if p.Page != 1 || p.Limit != 10 || p.Ascending {
		t.Errorf("params=%+v", p)
	}
}

func TestParams_Offset(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{2, 5, 5},
		{3, 10, 20},
	}

	for _, tt := range tests {
		p := pagination.Params{Page: tt.page, Limit: tt.limit}
		if got := p.Offset(); got != tt.want {
			t.Errorf("Offset(page=%d, limit=%d)=%d want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg := pagination.LoadFromEnv()
	if cfg.DefaultPage != 1 || cfg.DefaultLimit != 10 {
		t.Errorf("cfg=%+v", cfg)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PAGINATION_DEFAULT_PAGE", "2")
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "50")

	cfg := pagination.LoadFromEnv()
	if cfg.DefaultPage != 2 || cfg.DefaultLimit != 50 {
		t.Errorf("cfg=%+v", cfg)
	}
}
