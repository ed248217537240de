package rnaseq

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/guregu/null.v3"
)

type testExperiment struct {
	ind         string
	attributes  map[string]string
	description null.String
}

func (e testExperiment) ExperimentInd() string               { return e.ind }
func (e testExperiment) SampleInd() string                   { return "sample-" + e.ind }
func (e testExperiment) SampleAttributes() map[string]string { return e.attributes }
func (e testExperiment) SampleDescription() null.String      { return e.description }

func TestFromBioExpDefaultTitle(t *testing.T) {
	for _, v := range []struct {
		Exp      testExperiment
		Expected string
	}{
		{testExperiment{"exp1", map[string]string{"RIN": "7", "Ab": "Z22"}, null.String{}}, "exp1+Ab=Z22_RIN=7"},
		{testExperiment{"exp1", map[string]string{"RIN": "7"}, null.StringFrom("ignored")}, "exp1+RIN=7"},
		{testExperiment{"exp1", nil, null.StringFrom("ctrl")}, "exp1+ctrl"},
		{testExperiment{"exp1", map[string]string{}, null.StringFrom("ctrl")}, "exp1+ctrl"},
	} {
		got, err := FromBioExp(v.Exp, nil, DefaultSeparator)
		if err != nil {
			t.Fatalf("%+v: %v", v.Exp, err)
		}
		if got != v.Expected {
			t.Fatalf("Got %q, expected %q", got, v.Expected)
		}
	}
}

func TestFromBioExpNoTitle(t *testing.T) {
	_, err := FromBioExp(testExperiment{"exp1", nil, null.String{}}, nil, DefaultSeparator)
	if !errors.Is(err, ErrNoTitle) {
		t.Fatalf("Expected ErrNoTitle, got %v", err)
	}
}

func TestFromBioExpAttributeTitle(t *testing.T) {
	exp := testExperiment{"exp1", map[string]string{"RIN": "7", "Ab": "Z22"}, null.String{}}

	got, err := FromBioExp(exp, AttributeTitle("Ab"), "__")
	if err != nil {
		t.Fatal(err)
	}
	if got != "exp1__Z22" {
		t.Fatalf("Got %q", got)
	}

	_, err = FromBioExp(exp, AttributeTitle("Treatment"), DefaultSeparator)
	if !errors.Is(err, ErrMissingAttribute) {
		t.Fatalf("Expected ErrMissingAttribute, got %v", err)
	}
	if !strings.Contains(err.Error(), "Treatment") || !strings.Contains(err.Error(), "sample-exp1") {
		t.Fatalf("Error should name the attribute and the sample: %v", err)
	}
}

func TestFromBioExpCustomTitle(t *testing.T) {
	exp := testExperiment{"exp1", map[string]string{"cell": "HeLa"}, null.String{}}
	title := func(exp Experiment) (string, error) {
		return strings.ToUpper(exp.SampleAttributes()["cell"]), nil
	}

	got, err := FromBioExp(exp, title, DefaultSeparator)
	if err != nil {
		t.Fatal(err)
	}
	if got != "exp1+HELA" {
		t.Fatalf("Got %q", got)
	}

	failing := func(Experiment) (string, error) { return "", errors.New("boom") }
	if _, err := FromBioExp(exp, failing, DefaultSeparator); err == nil || err.Error() != "boom" {
		t.Fatalf("Expected the builder error, got %v", err)
	}
}

func TestFromBioExpProhibitedChars(t *testing.T) {
	for _, char := range []string{",", "|", "/", "[", "]"} {
		exp := testExperiment{"exp1", map[string]string{"cond": "a" + char + "b"}, null.String{}}
		_, err := FromBioExp(exp, nil, DefaultSeparator)
		if !errors.Is(err, ErrProhibitedChar) {
			t.Fatalf("%q: expected ErrProhibitedChar, got %v", char, err)
		}
		if !strings.Contains(err.Error(), char) {
			t.Fatalf("%q: error does not name the character: %v", char, err)
		}
	}

	// The separator and experiment index are checked too
	if _, err := FromBioExp(testExperiment{"exp1", nil, null.StringFrom("ctrl")}, nil, "/"); !errors.Is(err, ErrProhibitedChar) {
		t.Fatalf("Expected ErrProhibitedChar for the separator, got %v", err)
	}
	if _, err := FromBioExp(testExperiment{"e[1]", nil, null.StringFrom("ctrl")}, nil, DefaultSeparator); !errors.Is(err, ErrProhibitedChar) {
		t.Fatalf("Expected ErrProhibitedChar for the index, got %v", err)
	}
}

func TestToExpInd(t *testing.T) {
	for _, v := range []struct {
		Descriptor string
		Separator  string
		Expected   string
	}{
		{"exp1+ctrl", "+", "exp1"},
		{"exp1+a+b", "+", "exp1"},
		{"no-separator", "+", "no-separator"},
		{"+ctrl", "+", ""},
		{"", "+", ""},
		{"exp1__Z22", "__", "exp1"},
		{"exp1+ctrl", "", "exp1+ctrl"},
	} {
		if got := ToExpInd(v.Descriptor, v.Separator); got != v.Expected {
			t.Errorf("ToExpInd(%q, %q) = %q, expected %q", v.Descriptor, v.Separator, got, v.Expected)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	exp := testExperiment{"exp42", map[string]string{"RIN": "7"}, null.String{}}
	descriptor, err := FromBioExp(exp, nil, DefaultSeparator)
	if err != nil {
		t.Fatal(err)
	}

	if got := ToExpInd(descriptor, DefaultSeparator); got != exp.ind {
		t.Fatalf("Got %q, expected %q", got, exp.ind)
	}
}
