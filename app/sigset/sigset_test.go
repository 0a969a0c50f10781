package sigset

import (
	"syscall"
	"testing"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name   string
		tokens []string
		want   []syscall.Signal
	}{
		{
			name:   "default",
			tokens: nil,
			want:   []syscall.Signal{syscall.SIGINT},
		},
		{
			name:   "empty tokens are skipped",
			tokens: []string{"", "sigterm", ""},
			want:   []syscall.Signal{syscall.SIGTERM},
		},
		{
			name:   "only empty tokens fall back to the default",
			tokens: []string{"", ""},
			want:   []syscall.Signal{syscall.SIGINT},
		},
		{
			name:   "mixed case",
			tokens: []string{"sigint", "SIGTERM", ""},
			want:   []syscall.Signal{syscall.SIGINT, syscall.SIGTERM},
		},
		{
			name:   "duplicates collapse",
			tokens: []string{"SIGHUP", "sighup", "SigHup"},
			want:   []syscall.Signal{syscall.SIGHUP},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			set, err := Parse(testCase.tokens)
			if err != nil {
				t.Fatalf("is = %v, want = nil", err)
			}

			if is, want := len(set), len(testCase.want); is != want {
				t.Fatalf("is = %v, want = %v", is, want)
			}

			for _, sig := range testCase.want {
				if !set.Has(sig) {
					t.Fatalf("missing %s", Name(sig))
				}
			}
		})
	}
}

func TestParse_UnknownName(t *testing.T) {
	for _, token := range []string{"notasignal", "int", "TERM"} {
		if _, err := Parse([]string{token}); err == nil {
			t.Fatalf("is = nil, want = error for %q", token)
		}
	}
}

func TestSet_String(t *testing.T) {
	set, err := Parse([]string{"SIGTERM", "sigint"})
	if err != nil {
		t.Fatal(err)
	}

	if is, want := set.String(), "[SIGINT SIGTERM]"; is != want {
		t.Fatalf("is = %v, want = %v", is, want)
	}
}

func TestSet_Has_NonSyscallSignal(t *testing.T) {
	set, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	if set.Has(fakeSignal{}) {
		t.Fatal("is = true, want = false")
	}
}

type fakeSignal struct{}

func (fakeSignal) String() string { return "fake" }
func (fakeSignal) Signal()        {}

func TestName(t *testing.T) {
	if is, want := Name(syscall.SIGPIPE), "SIGPIPE"; is != want {
		t.Fatalf("is = %v, want = %v", is, want)
	}
}

func TestNum(t *testing.T) {
	if is, want := Num(syscall.SIGKILL), 9; is != want {
		t.Fatalf("is = %v, want = %v", is, want)
	}

	if is, want := Num(fakeSignal{}), -1; is != want {
		t.Fatalf("is = %v, want = %v", is, want)
	}
}
