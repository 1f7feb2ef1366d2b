package solrkit

import "testing"

func TestQueryParams(t *testing.T) {
	q := NewQuery("city:London").
		Rows(20).
		Start(40).
		Fields("id", "city").
		Sort("rank", Desc).
		Sort("id", Asc)

	p := q.params()
	if got := p.Get("q"); got != "city:London" {
		t.Errorf("q = %q", got)
	}
	if got := p.Get("wt"); got != "json" {
		t.Errorf("wt = %q", got)
	}
	if got := p.Get("rows"); got != "20" {
		t.Errorf("rows = %q", got)
	}
	if got := p.Get("start"); got != "40" {
		t.Errorf("start = %q", got)
	}
	if got := p.Get("fl"); got != "id,city" {
		t.Errorf("fl = %q", got)
	}
	if got := p.Get("sort"); got != "rank desc,id asc" {
		t.Errorf("sort = %q", got)
	}
}

func TestQueryParamsDefaults(t *testing.T) {
	p := NewQuery("*:*").params()
	if got := p.Get("q"); got != "*:*" {
		t.Errorf("q = %q", got)
	}
	for _, name := range []string{"rows", "start", "fl", "sort"} {
		if p.Has(name) {
			t.Errorf("%s should be absent by default, got %q", name, p.Get(name))
		}
	}
}
