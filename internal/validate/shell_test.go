package validate

import (
	"errors"
	"reflect"
	"testing"
)

func TestEscapeShellArgument(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain word", "hello", "'hello'"},
		{"embedded space", "two words", "'two words'"},
		{"single quote", "it's", `'it'"'"'s'`},
		{"only a quote", "'", `''"'"''`},
		{"empty string", "", "''"},
		{"metacharacters", "a;b|c", "'a;b|c'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeShellArgument(tt.input); got != tt.expected {
				t.Errorf("EscapeShellArgument(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple", "az keyvault list", []string{"az", "keyvault", "list"}},
		{"collapses repeated whitespace", "az   keyvault \t list", []string{"az", "keyvault", "list"}},
		{"single quoted value with spaces", "az secret set --value 'two words'", []string{"az", "secret", "set", "--value", "two words"}},
		{"double quoted value with spaces", `az secret set --value "two words"`, []string{"az", "secret", "set", "--value", "two words"}},
		{"quoted span glued to unquoted text", "az --value=pre'fix ed'post", []string{"az", "--value=prefix edpost"}},
		{"empty quoted argument", "az secret set --value ''", []string{"az", "secret", "set", "--value", ""}},
		{"empty input", "", nil},
		{"whitespace only", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitArgs(tt.input)
			if err != nil {
				t.Fatalf("SplitArgs(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitArgs(%q) = %#v, want %#v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitArgsUnbalanced(t *testing.T) {
	_, err := SplitArgs("az secret set --value 'oops")
	if !errors.Is(err, ErrUnbalancedQuote) {
		t.Errorf("SplitArgs() error = %v, want %v", err, ErrUnbalancedQuote)
	}
}

// Escaped arguments must survive the full round trip: escape, embed in a
// command string, then split back into an argument vector.
func TestEscapeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"apostrophe", "it's"},
		{"embedded spaces", "my secret value"},
		{"spaces and quotes", `a 'quoted' "mix"`},
		{"metacharacters", "p@ss;w|rd&$(x)"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := "az keyvault secret set --value " + EscapeShellArgument(tt.value)
			args, err := SplitArgs(cmd)
			if err != nil {
				t.Fatalf("SplitArgs() error = %v", err)
			}
			got := args[len(args)-1]
			if got != tt.value {
				t.Errorf("round trip = %q, want %q", got, tt.value)
			}
		})
	}
}
