package content

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"invalid argument", InvalidArgumentf("slug is required"), KindInvalidArgument},
		{"not found", NotFoundf("post not found: x"), KindNotFound},
		{"io", IOf(errors.New("permission denied"), "read blog/x.mdx"), KindIO},
		{"parse", Parsef(errors.New("yaml: bad"), "parse blog/x.mdx"), KindParse},
		{"plain error defaults to io", errors.New("boom"), KindIO},
		{"wrapped typed error", fmt.Errorf("outer: %w", NotFoundf("gone")), KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := IOf(cause, "read blog/x.mdx")
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}
