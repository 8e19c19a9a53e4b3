package panels

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompleterSuggestRanksMatches(t *testing.T) {
	c := NewCompleter([]string{"Helvetica", "Inter", "Times New Roman", "Courier New"})

	got := c.Suggest("inter", 5)
	if len(got) == 0 || got[0] != "Inter" {
		t.Errorf("Suggest(inter) = %v", got)
	}

	if got := c.Suggest("zzzz", 5); len(got) != 0 {
		t.Errorf("no-match query returned %v", got)
	}
}

func TestCompleterSuggestCaseFolds(t *testing.T) {
	c := NewCompleter([]string{"steelblue", "SlateGray"})
	got := c.Suggest("SLATE", 5)
	if len(got) != 1 || got[0] != "SlateGray" {
		t.Errorf("Suggest = %v", got)
	}
}

func TestCompleterEmptyQueryReturnsLeadingOptions(t *testing.T) {
	c := NewCompleter([]string{"a", "b", "c", "d"})
	if diff := cmp.Diff([]string{"a", "b"}, c.Suggest("", 2)); diff != "" {
		t.Errorf("leading options (-want +got):\n%s", diff)
	}
}

func TestCompleterLimit(t *testing.T) {
	c := NewCompleter([]string{"red", "rebeccapurple", "rosybrown", "royalblue"})
	if got := c.Suggest("r", 2); len(got) != 2 {
		t.Errorf("limit ignored, got %v", got)
	}
	if got := c.Suggest("r", 0); got != nil {
		t.Errorf("zero limit should return nil, got %v", got)
	}
}

func TestCompleterExtendDeduplicates(t *testing.T) {
	c := NewCompleter([]string{"Inter"})
	c.Extend([]string{"inter", "Lato"})
	if len(c.options) != 2 {
		t.Errorf("options = %v", c.options)
	}
}
