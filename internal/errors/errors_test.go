package errors

import (
	stderrors "errors"
	"testing"
)

func TestNewRegisteredCode(t *testing.T) {
	err := New("A040")
	if err.Category != CategoryPublish {
		t.Errorf("Category = %q, want %q", err.Category, CategoryPublish)
	}
	if err.Error() != "A040: Upload failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.DocURL == "" {
		t.Error("registered code should carry a DocURL")
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("A999")
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q, want Unknown error", err.Message)
	}
	if err.Error() != "A999: Unknown error" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "unexpected argument %q", "frobnicate")
	if err.Code != "" {
		t.Errorf("Newf should not assign a code, got %q", err.Code)
	}
	if err.Error() != `unexpected argument "frobnicate"` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := New("A040").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "A040") != nil {
		t.Error("FromError(nil) should return nil")
	}

	cause := stderrors.New("boom")
	err := FromError(cause, "A040")
	if err.Code != "A040" {
		t.Errorf("Code = %q, want A040", err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("FromError should wrap the cause")
	}

	// An AtriumError passes through unchanged.
	again := FromError(err, "A060")
	if again != err {
		t.Error("FromError should return an existing AtriumError as-is")
	}
}

func TestBuilderChaining(t *testing.T) {
	err := New("A060").
		WithDetail("yaml: line 3: mapping values are not allowed").
		WithSuggestion("Check indentation in atrium.yaml")

	if err.Detail == "" || err.Suggestion == "" {
		t.Error("builder methods should set detail and suggestion")
	}
}
