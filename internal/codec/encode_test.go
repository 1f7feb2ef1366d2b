package codec

import (
	"testing"

	"github.com/kailas-cloud/solrkit/internal/domain"
)

func TestEncodeAdd(t *testing.T) {
	var a, b domain.Document
	a.AddField("id", domain.String("1"))
	a.AddField("city", domain.String("London"))
	b.AddField("id", domain.Int64(2))

	body, err := EncodeAdd([]domain.Document{a, b})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `[{"id":"1","city":"London"},{"id":2}]`
	if string(body) != want {
		t.Errorf("body = %s, want %s", body, want)
	}
}

func TestEncodeAddEmpty(t *testing.T) {
	body, err := EncodeAdd(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(body) != "null" && string(body) != "[]" {
		t.Errorf("body = %s", body)
	}
}

func TestEncodeDelete(t *testing.T) {
	body, err := EncodeDeleteByQuery("city:NY")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got, want := string(body), `{"delete":{"query":"city:NY"}}`; got != want {
		t.Errorf("body = %s, want %s", got, want)
	}

	body, err = EncodeDeleteByID("42")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got, want := string(body), `{"delete":{"id":"42"}}`; got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestEncodeBareCommands(t *testing.T) {
	cases := []struct {
		got  []byte
		want string
	}{
		{EncodeCommit(), `{"commit":{}}`},
		{EncodeRollback(), `{"rollback":{}}`},
		{EncodeOptimize(), `{"optimize":{}}`},
	}
	for _, c := range cases {
		if string(c.got) != c.want {
			t.Errorf("body = %s, want %s", c.got, c.want)
		}
	}
}
