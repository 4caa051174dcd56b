package validate_test

import (
	"errors"
	"testing"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
	"github.com/Gunvolt24/wb_microservices/pkg/validate"
)

func TestID(t *testing.T) {
	cases := []struct {
		name string
		id   int64
		ok   bool
	}{
		{name: "one is the minimum valid id", id: 1, ok: true},
		{name: "large id", id: 1 << 40, ok: true},
		{name: "zero", id: 0, ok: false},
		{name: "negative", id: -7, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.ID(tc.id)
			if tc.ok {
				if err != nil {
					t.Fatalf("id=%d: unexpected error: %v", tc.id, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("id=%d: expected error", tc.id)
			}
			if !errors.Is(err, domain.ErrInvalidParameters) {
				t.Fatalf("id=%d: expected ErrInvalidParameters, got %v", tc.id, err)
			}
			if got, want := err.Error(), "id can't be null or less than 1"; got != want {
				t.Fatalf("wrong message: got %q, want %q", got, want)
			}
		})
	}
}
