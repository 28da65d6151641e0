package redact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmail_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ascii_local_gt_2", in: "foobar@example.com", want: "fo***@example.com"},
		{name: "ascii_local_len_1", in: "a@ex.com", want: "***@ex.com"},
		{name: "ascii_local_len_2", in: "ab@ex.com", want: "***@ex.com"},
		{name: "no_at", in: "no-at-here", want: "***"},
		{name: "multiple_at", in: "a@b@c", want: "***"},
		{name: "domain_preserved", in: "abc.def+tag@EXAMPLE.org", want: "ab***@EXAMPLE.org"},
		{name: "empty", in: "", want: "***"},
		{name: "unicode_local", in: "юзер@пример.рф", want: "юз***@пример.рф"},
		{name: "empty_local", in: "@domain", want: "***@domain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Email(tt.in))
		})
	}
}

func TestID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", ID("short"))
	require.Equal(t, "12345678", ID("12345678"))
	require.Equal(t, "0b6f1c2d…", ID("0b6f1c2d-8a1e-4f55-9c3e-5d7a0e1b2c3d"))
}

func TestContent(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[REDACTED_CONTENT len=0]", Content(""))
	require.Equal(t, "[REDACTED_CONTENT len=6]", Content("привет"))
}

func TestLiterals(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[REDACTED_TOKEN]", Token())
	require.Equal(t, "[REDACTED_PASSWORD]", Password())
}
