package testhelpers

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega/types"
	errorspkg "github.com/pkg/errors"
)

// BeErrorType matches when a pointer to the expected error type appears in
// the chain of causes of the actual error, e.g.
// BeErrorType(inventory.ProtocolErr{}).
func BeErrorType(expected interface{}) types.GomegaMatcher {
	return &beErrorTypeMatcher{
		expected: expected,
	}
}

type beErrorTypeMatcher struct {
	expected interface{}
}

func (matcher *beErrorTypeMatcher) Match(actual interface{}) (success bool, err error) {
	if actual == nil {
		return false, nil
	}

	if _, ok := matcher.expected.(error); !ok {
		return false, fmt.Errorf("BeErrorType matcher expects an error")
	}

	actualErr, ok := actual.(error)
	if !ok {
		return false, fmt.Errorf("BeErrorType matcher expects an error")
	}

	expectedType := reflect.PtrTo(reflect.TypeOf(matcher.expected))
	for current := actualErr; current != nil; current = next(current) {
		if reflect.TypeOf(current) == expectedType {
			return true, nil
		}
	}

	return false, nil
}

func next(err error) error {
	if cause := errorspkg.Cause(err); cause != err {
		return cause
	}

	if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
		return unwrapper.Unwrap()
	}

	return nil
}

func (matcher *beErrorTypeMatcher) FailureMessage(actual interface{}) (message string) {
	if actual == nil {
		return "Expected error, got nil"
	}

	actualErr, _ := actual.(error)
	return fmt.Sprintf("Expected error\n\t%s\nto have a cause of type\n\t%s", actualErr.Error(), reflect.TypeOf(matcher.expected))
}

func (matcher *beErrorTypeMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	actualErr, _ := actual.(error)
	return fmt.Sprintf("Expected error\n\t%s\nnot to have a cause of type\n\t%s", actualErr.Error(), reflect.TypeOf(matcher.expected))
}
