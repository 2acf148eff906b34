package normalize

import (
	"reflect"
	"testing"
)

func testDetector() *Detector {
	return NewDetector(map[string][]string{
		"en": {"the", "and", "was", "for"},
		"de": {"der", "und", "das", "ist"},
	})
}

func TestDetectEnglish(t *testing.T) {
	d := testDetector()

	lang := d.Detect([]string{"the", "rocket", "was", "launched", "for", "testing"})
	if lang != "en" {
		t.Errorf("expected en, got %q", lang)
	}
}

func TestDetectGerman(t *testing.T) {
	d := testDetector()

	lang := d.Detect([]string{"der", "start", "ist", "gelungen", "und", "alle", "freuen", "sich"})
	if lang != "de" {
		t.Errorf("expected de, got %q", lang)
	}
}

func TestDetectUnknownBelowMinimum(t *testing.T) {
	d := testDetector()

	lang := d.Detect([]string{"rocket", "launch", "success"})
	if lang != LanguageUnknown {
		t.Errorf("expected unknown, got %q", lang)
	}
}

func TestDetectEmptyInput(t *testing.T) {
	d := testDetector()

	if lang := d.Detect(nil); lang != LanguageUnknown {
		t.Errorf("expected unknown for empty input, got %q", lang)
	}
}

func TestFilterStopwords(t *testing.T) {
	d := testDetector()

	got := d.FilterStopwords("en", []string{"the", "rocket", "was", "fast"})
	want := []string{"rocket", "fast"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterStopwords = %v, want %v", got, want)
	}
}

func TestFilterStopwordsUnknownLanguagePassesThrough(t *testing.T) {
	d := testDetector()

	tokens := []string{"the", "rocket"}
	got := d.FilterStopwords("fr", tokens)
	if !reflect.DeepEqual(got, tokens) {
		t.Errorf("expected pass-through, got %v", got)
	}
}
