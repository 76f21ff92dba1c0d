package unique

import (
	"reflect"
	"testing"
)

func TestStrings(t *testing.T) {
	testCases := []struct {
		in  []string
		out []string
	}{
		{
			in:  []string{"a"},
			out: []string{"a"},
		},
		{
			in:  []string{"b", "a", "b"},
			out: []string{"b", "a"},
		},
		{
			in:  []string{"c", "c", "c"},
			out: []string{"c"},
		},
	}
	for i, testCase := range testCases {
		if expected, actual := testCase.out, Strings(testCase.in); !reflect.DeepEqual(actual, expected) {
			t.Errorf("[i=%v] Expected result=%+v but actual=%+v", i, expected, actual)
		}
	}
}

func TestUint64sSorted(t *testing.T) {
	testCases := []struct {
		in  []uint64
		out []uint64
	}{
		{
			in:  nil,
			out: []uint64{},
		},
		{
			in:  []uint64{7},
			out: []uint64{7},
		},
		{
			in:  []uint64{30, 10, 20, 10, 30},
			out: []uint64{10, 20, 30},
		},
		{
			in:  []uint64{5, 5, 5},
			out: []uint64{5},
		},
	}
	for i, testCase := range testCases {
		if expected, actual := testCase.out, Uint64sSorted(testCase.in); !reflect.DeepEqual(actual, expected) {
			t.Errorf("[i=%v] Expected result=%+v but actual=%+v", i, expected, actual)
		}
	}

	in := []uint64{3, 1, 2}
	Uint64sSorted(in)
	if expected, actual := []uint64{3, 1, 2}, in; !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected input to be left untouched=%v but actual=%v", expected, actual)
	}
}
