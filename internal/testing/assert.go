package testing

import (
	"errors"
	"reflect"
	"testing"
)

// AssertSuccess that error did not occur.
func AssertSuccess(t testing.TB, err error) {
	t.Helper()

	if err != nil || !isNil(err) {
		t.Fatalf("expected success, got '%v'", err)
	}
}

// AssertError asserts that err matches target.
func AssertError(t testing.TB, err, target error) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Fatalf("expected error '%v' to match '%v'", err, target)
	}
}

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertSame asserts that two pointers point to the same value.
func AssertSame[T any](t testing.TB, a, b *T) {
	t.Helper()

	if a != b {
		t.Fatalf("expected '%p' to be the same as '%p'", a, b)
	}
}

// AssertNil asserts that a is nil.
func AssertNil(t testing.TB, a interface{}) {
	t.Helper()

	if !isNil(a) {
		t.Fatalf("expected '%v' to be nil", a)
	}
}

func isNil(a interface{}) bool {
	if a == nil {
		return true
	}

	switch reflect.TypeOf(a).Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflect.ValueOf(a).IsNil()
	}

	return false
}
