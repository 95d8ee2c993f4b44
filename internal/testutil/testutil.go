// Package testutil provides shared test helpers for the docsql project.
package testutil

import "testing"

// AssertEqual checks that got == want and reports a descriptive error if not.
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("expected:\n  %v\ngot:\n  %v", want, got)
	}
}

// AssertNoError fails the test if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error but got nil")
	}
}

// StubFormatter is a minimal FieldFormatter for exercising the translator
// without the document dialect's conventions. Output is deliberately marked
// so tests can tell which formatter path produced a fragment.
type StubFormatter struct{}

func (StubFormatter) FieldName(name string) string { return "<" + name + ">" }

func (StubFormatter) Qualify(source, name string) string { return source + "!" + name }

func (StubFormatter) EnumLiteral(text, typeName string) string {
	return "enum(" + typeName + ":" + text + ")"
}
