package main

import (
	"os"
	"path/filepath"
	"testing"

	"jaytaylor.com/wikilinks/db"
	"jaytaylor.com/wikilinks/domain"
)

func TestLookupArticle(t *testing.T) {
	fileName := filepath.Join(os.TempDir(), "TestLookupArticle.bolt")
	os.Remove(fileName)
	defer os.Remove(fileName)

	if err := db.WithClient(db.NewBoltConfig(fileName), func(client *db.Client) error {
		if err := client.ArticleSave(
			&domain.Article{ID: 12, Title: "Anarchism", Links: []uint32{1999}},
			&domain.Article{ID: 1999, Title: "1984", Links: []uint32{}},
		); err != nil {
			return err
		}

		testCases := []struct {
			arg      string
			expected uint32
			err      error
		}{
			{arg: "12", expected: 12},
			{arg: "anarchism", expected: 12},
			// Falls back to a title lookup when no such id exists.
			{arg: "1984", expected: 1999},
			{arg: "1999", expected: 1999},
			{arg: "Nothing", err: db.ErrKeyNotFound},
		}

		for i, testCase := range testCases {
			a, err := lookupArticle(client, testCase.arg)
			if err != testCase.err {
				t.Errorf("[i=%v] Expected err=%v but actual=%v", i, testCase.err, err)
				continue
			}
			if err != nil {
				continue
			}
			if expected, actual := testCase.expected, a.ID; actual != expected {
				t.Errorf("[i=%v] Expected id=%v but actual=%v", i, expected, actual)
			}
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}
}

func TestDataPathArg(t *testing.T) {
	orig := DataPath
	defer func() {
		DataPath = orig
	}()

	dataPathArg(nil)
	if expected, actual := orig, DataPath; actual != expected {
		t.Errorf("Expected DataPath=%v but actual=%v", expected, actual)
	}

	dataPathArg([]string{"/srv/wiki"})
	if expected, actual := "/srv/wiki", DataPath; actual != expected {
		t.Errorf("Expected DataPath=%v but actual=%v", expected, actual)
	}
}
