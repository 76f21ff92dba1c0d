package namespace

import (
	"reflect"
	"testing"
)

func TestDefaultDenylist(t *testing.T) {
	d := Default()
	testCases := []struct {
		title    string
		expected bool
	}{
		{"Category:Foo", true},
		{"category:foo", true},
		{"Wikipedia:About", true},
		{"File:Example.jpg", true},
		{"Template:Infobox", true},
		{"Draft:Thing", true},
		{"Portal:Science", true},
		{"Module:Arguments", true},
		{"Anarchism", false},
		{"Star Trek: The Next Generation", false},
		{"", false},
	}
	for i, testCase := range testCases {
		if expected, actual := testCase.expected, d.Match(testCase.title); actual != expected {
			t.Errorf("[i=%v] Expected Match(%q)=%v but actual=%v", i, testCase.title, expected, actual)
		}
	}
}

func TestCustomDenylist(t *testing.T) {
	d := New("Help:", "", "help:")
	if expected, actual := []string{"help:"}, d.Prefixes(); !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected prefixes=%v but actual=%v", expected, actual)
	}
	if !d.Match("Help:Contents") {
		t.Errorf("Expected Help:Contents to match")
	}
	if d.Match("Category:Foo") {
		t.Errorf("Expected Category:Foo not to match a custom policy")
	}

	var empty Denylist
	if empty.Match("Category:Foo") {
		t.Errorf("Expected zero-value Denylist to match nothing")
	}
}
