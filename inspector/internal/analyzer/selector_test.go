package analyzer

import (
	"testing"

	"github.com/hazyhaar/inspector/inspector/snapshot"
)

func TestQuerySelector(t *testing.T) {
	b := snapshot.NewBuilder(vw, vh)
	body := b.Body()
	b.Add(body, snapshot.Node{Name: "DIV", IDAttr: "nav", Class: []string{"bar"}, Box: snapshot.At(0, 0, 100, 20)})
	b.Add(body, snapshot.Node{Name: "div", IDAttr: "content", Class: []string{"content", "wrap"}, Box: snapshot.At(0, 20, 100, 20)})
	b.Add(body, snapshot.Node{Name: "section", Attrs: map[string]string{"role": "main"}, Box: snapshot.At(0, 40, 100, 20)})
	b.Add(body, snapshot.Node{Name: "section", IDAttr: "s2", Attrs: map[string]string{"role": "region"}, Box: snapshot.At(0, 60, 100, 20)})
	doc := b.Page()
	all := doc.All()

	tests := []struct {
		sel  string
		want string // id of the first match, else its tag; "" for no match
	}{
		{"div", "nav"},
		{"#content", "content"},
		{".content", "content"},
		{"div.content.wrap", "content"},
		{"div.missing", ""},
		{"[role=main]", "section"},
		{"section[role=region]", "s2"},
		{"[role='region']", "s2"},
		{"#nope", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		el := querySelector(all, tt.sel)
		got := ""
		if el != nil {
			got = el.ID()
			if got == "" {
				got = el.Tag()
			}
		}
		if got != tt.want {
			t.Errorf("querySelector(%q) = %q, want %q", tt.sel, got, tt.want)
		}
	}

	if n := len(querySelectorAll(all, "section")); n != 2 {
		t.Errorf("querySelectorAll(section): got %d, want 2", n)
	}
	if n := len(querySelectorAll(all, "[role]")); n != 2 {
		t.Errorf("querySelectorAll([role]): got %d, want 2", n)
	}
}
