package titles

import (
	"strings"
	"testing"

	"jaytaylor.com/wikilinks/domain"
	"jaytaylor.com/wikilinks/pkg/namespace"
	"jaytaylor.com/wikilinks/seekindex"
)

func TestResolver(t *testing.T) {
	idx := seekindex.SeekIndex{
		600: []domain.IndexEntry{
			{ID: 12, Title: "Anarchism"},
			{ID: 25, Title: "Autism"},
		},
		900: []domain.IndexEntry{
			{ID: 39, Title: "Albedo"},
		},
	}
	r := New(idx)

	if expected, actual := 3, r.Len(); actual != expected {
		t.Errorf("Expected Len()=%v but actual=%v", expected, actual)
	}
	if expected, actual := 3, r.NumIDs(); actual != expected {
		t.Errorf("Expected NumIDs()=%v but actual=%v", expected, actual)
	}

	testCases := []struct {
		title string
		id    uint32
		found bool
	}{
		{"anarchism", 12, true},
		{"autism", 25, true},
		{"albedo", 39, true},
		{"Anarchism", 0, false},
		{"missing", 0, false},
	}
	for i, testCase := range testCases {
		id, found := r.Lookup(testCase.title)
		if found != testCase.found || id != testCase.id {
			t.Errorf("[i=%v] Expected Lookup(%q)=(%v, %v) but actual=(%v, %v)", i, testCase.title, testCase.id, testCase.found, id, found)
		}
	}

	if title, ok := r.Title(39); !ok || title != "Albedo" {
		t.Errorf("Expected Title(39)=Albedo but actual=%q (found=%v)", title, ok)
	}
	if _, ok := r.Title(1); ok {
		t.Errorf("Expected Title(1) to be missing")
	}
}

func TestResolverCollisionSmallestIDWins(t *testing.T) {
	for attempt := 0; attempt < 20; attempt++ {
		idx := seekindex.SeekIndex{
			1: []domain.IndexEntry{{ID: 77, Title: "AIDS"}},
			2: []domain.IndexEntry{{ID: 5, Title: "Aids"}},
			3: []domain.IndexEntry{{ID: 40, Title: "aids"}},
		}
		r := New(idx)
		if id, _ := r.Lookup("aids"); id != 5 {
			t.Fatalf("[attempt=%v] Expected colliding title to resolve to smallest id=5 but actual=%v", attempt, id)
		}
		if title, _ := r.Title(77); title != "AIDS" {
			t.Errorf("[attempt=%v] Expected canonical title to be preserved=%q but actual=%q", attempt, "AIDS", title)
		}
	}
}

func TestResolverExcludesDeniedNamespaces(t *testing.T) {
	idx, err := seekindex.Parse(strings.NewReader("1:1:Category:Foo\n1:2:Foo\n"), namespace.Default())
	if err != nil {
		t.Fatal(err)
	}
	r := New(idx)
	if _, ok := r.Lookup("category:foo"); ok {
		t.Errorf("Expected denied title to be absent from resolver")
	}
	if id, ok := r.Lookup("foo"); !ok || id != 2 {
		t.Errorf("Expected Lookup(foo)=2 but actual=%v (found=%v)", id, ok)
	}
}
