package lib

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type ScriptedPrompter struct {
	answers []string
	prompts []string
}

func (sp *ScriptedPrompter) Prompt(text string) (string, error) {
	sp.prompts = append(sp.prompts, text)
	if len(sp.answers) == 0 {
		return "", io.EOF
	}

	answer := sp.answers[0]
	sp.answers = sp.answers[1:]
	return answer, nil
}

func TestLinePrompter(t *testing.T) {
	var out bytes.Buffer
	lp := NewLinePrompter(strings.NewReader("y\r\n42\n"), &out)

	tests := []string{"y", "42"}
	for _, expected := range tests {
		actual, err := lp.Prompt("Question")
		if err != nil {
			t.Fatal(err)
		}

		if actual != expected {
			t.Fatalf("expected %q but got %q", expected, actual)
		}
	}

	if _, err := lp.Prompt("Question"); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF but got %v", err)
	}

	if out.String() != "Question: Question: Question: " {
		t.Fatalf("unexpected prompt output %q", out.String())
	}
}

func TestAsk_RetriesUntilValid(t *testing.T) {
	sp := &ScriptedPrompter{answers: []string{"maybe", "", "Y"}}

	var rejected []error
	v, err := Ask(sp, "Did Alice phase up?", ParseYesNo, func(err error) {
		rejected = append(rejected, err)
	})
	if err != nil {
		t.Fatal(err)
	}

	if !v {
		t.Fatal("expected true")
	}

	if len(rejected) != 2 {
		t.Fatalf("expected 2 rejections but got %v", len(rejected))
	}

	if len(sp.prompts) != 3 {
		t.Fatalf("expected 3 prompts but got %v", len(sp.prompts))
	}

	for _, err := range rejected {
		if !errors.Is(err, ErrYesNo) {
			t.Fatalf("expected %v but got %v", ErrYesNo, err)
		}
	}
}

func TestAsk_PrompterError(t *testing.T) {
	sp := &ScriptedPrompter{answers: []string{"abc"}}

	v, err := Ask(sp, "Enter score for Bob", ParseScore, nil)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF but got %v", err)
	}

	if v != 0 {
		t.Fatalf("expected zero value but got %v", v)
	}
}

func TestParseYesNo(t *testing.T) {
	tests := map[string]struct {
		Input    string
		Expected bool
		Err      bool
	}{
		"y":         {Input: "y", Expected: true},
		"yes":       {Input: "Yes", Expected: true},
		"n":         {Input: "n"},
		"no":        {Input: " NO "},
		"empty":     {Input: "", Err: true},
		"gibberish": {Input: "yep", Err: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			actual, err := ParseYesNo(test.Input)
			if test.Err {
				if err == nil {
					t.Fatalf("expected an error for %q", test.Input)
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if actual != test.Expected {
				t.Fatalf("expected %v but got %v", test.Expected, actual)
			}
		})
	}
}

func TestParseScore(t *testing.T) {
	tests := map[string]struct {
		Input    string
		Expected int
		Err      string
	}{
		"zero":     {Input: "0", Expected: 0},
		"points":   {Input: " 35 ", Expected: 35},
		"negative": {Input: "-5", Err: "'-5' must not be negative"},
		"word":     {Input: "ten", Err: "'ten' is not a number"},
		"empty":    {Input: "", Err: "'' is not a number"},
		"decimal":  {Input: "2.5", Err: "'2.5' is not a number"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			actual, err := ParseScore(test.Input)
			if test.Err != "" {
				if err == nil || err.Error() != test.Err {
					t.Fatalf("expected error %q but got %v", test.Err, err)
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if actual != test.Expected {
				t.Fatalf("expected %v but got %v", test.Expected, actual)
			}
		})
	}
}
