package num

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := statusErr("Div", StatusDivideByZero)
	if !errors.Is(err, &Error{Status: StatusDivideByZero}) {
		t.Fatal("errors.Is did not match on Status")
	}
	if errors.Is(err, &Error{Status: StatusOverflow}) {
		t.Fatal("errors.Is matched an unrelated Status")
	}
}

func TestErrorMessageIncludesOp(t *testing.T) {
	err := statusErr("Sqrt", StatusNegative)
	if !strings.Contains(err.Error(), "Sqrt") {
		t.Fatalf("error message %q does not include the op name", err.Error())
	}
}
