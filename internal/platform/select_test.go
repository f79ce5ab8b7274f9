package platform

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []Platform
	}{
		{
			name:   "empty selects all",
			tokens: nil,
			want:   []Platform{IOS, IOSSimulator, MacOS},
		},
		{
			name:   "single platform",
			tokens: []string{"ios"},
			want:   []Platform{IOS},
		},
		{
			name:   "subset",
			tokens: []string{"ios", "macos"},
			want:   []Platform{IOS, MacOS},
		},
		{
			name:   "duplicates collapse",
			tokens: []string{"macos", "macos", "ios", "macos"},
			want:   []Platform{IOS, MacOS},
		},
		{
			name:   "order normalized",
			tokens: []string{"macos", "ios-sim", "ios"},
			want:   []Platform{IOS, IOSSimulator, MacOS},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.tokens)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Select() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectUnknownToken(t *testing.T) {
	_, err := Select([]string{"ios", "watchos"})
	if !errors.Is(err, ErrUnknownPlatform) {
		t.Fatalf("err = %v, want ErrUnknownPlatform", err)
	}
	if !strings.Contains(err.Error(), "watchos") {
		t.Fatalf("error %q does not name the offending token", err)
	}
}

func TestSelectEmptyToken(t *testing.T) {
	_, err := Select([]string{""})
	if !errors.Is(err, ErrUnknownPlatform) {
		t.Fatalf("err = %v, want ErrUnknownPlatform", err)
	}
}

func TestSelectHelp(t *testing.T) {
	_, err := Select([]string{"help"})
	if !errors.Is(err, ErrHelp) {
		t.Fatalf("err = %v, want ErrHelp", err)
	}
}

func TestSelectHelpWinsOverUnknown(t *testing.T) {
	// Help short-circuits even when other tokens would be rejected.
	_, err := Select([]string{"watchos", "help"})
	if !errors.Is(err, ErrHelp) {
		t.Fatalf("err = %v, want ErrHelp", err)
	}
}

func TestSelectResolvesLikeAll(t *testing.T) {
	fromEmpty, err := Select(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Resolve(All()), Resolve(fromEmpty)); diff != "" {
		t.Fatalf("empty selection resolves differently from All() (-want +got):\n%s", diff)
	}
}
