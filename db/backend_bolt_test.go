package db

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestBoltBackend(t *testing.T) {
	var (
		fileName = filepath.Join(os.TempDir(), "TestBoltBackend.bolt")
		cfg      = NewBoltConfig(fileName)
		be       = NewBoltBackend(cfg)
	)

	os.Remove(fileName)

	if err := be.Open(); err != nil {
		t.Fatal(err)
	}

	defer func() {
		if err := be.Close(); err != nil {
			t.Error(err)
		}
		if err := os.Remove(fileName); err != nil {
			t.Error(err)
		}
	}()

	if _, err := be.Get("test1", []byte("does-not-exist")); err != ErrKeyNotFound {
		t.Errorf("Expected err=%s but actual=%s", ErrKeyNotFound, err)
	}

	if err := be.Put("test1", []byte("hello"), []byte("world")); err != nil {
		t.Error(err)
	}

	v, err := be.Get("test1", []byte("hello"))
	if err != nil {
		t.Error(err)
	}

	if expected, actual := "world", string(v); actual != expected {
		t.Errorf("Retrieved value did not match inserted value, expected=%v but actual=%v", expected, actual)
	}

	if n, err := be.Len("test1"); err != nil {
		t.Error(err)
	} else if expected, actual := 1, n; actual != expected {
		t.Errorf("Expected len=%v but actual=%v", expected, actual)
	}

	if n, err := be.Len("never-created"); err != nil {
		t.Error(err)
	} else if expected, actual := 0, n; actual != expected {
		t.Errorf("Expected len=%v but actual=%v", expected, actual)
	}

	if err := be.Drop("test1"); err != nil {
		t.Error(err)
	}
	if _, err := be.Get("test1", []byte("hello")); err != ErrKeyNotFound {
		t.Errorf("Expected err=%s after drop but actual=%s", ErrKeyNotFound, err)
	}
}

func TestBoltBackendEachRowWithBreak(t *testing.T) {
	var (
		fileName = filepath.Join(os.TempDir(), "TestBoltBackendEachRowWithBreak.bolt")
		be       = NewBoltBackend(NewBoltConfig(fileName))
	)

	os.Remove(fileName)

	if err := be.Open(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := be.Close(); err != nil {
			t.Error(err)
		}
		os.Remove(fileName)
	}()

	if err := be.WithTransaction(TXOptions{}, func(tx Transaction) error {
		for _, k := range []string{"c", "a", "b"} {
			if err := tx.Put("rows", []byte(k), []byte(k+k)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	seen := []string{}
	if err := be.EachRowWithBreak("rows", func(k []byte, v []byte) bool {
		seen = append(seen, string(k))
		return len(seen) < 2
	}); err != nil {
		t.Fatal(err)
	}
	if expected, actual := "[a b]", fmt.Sprint(seen); actual != expected {
		t.Errorf("Expected seen=%v but actual=%v", expected, actual)
	}
}
