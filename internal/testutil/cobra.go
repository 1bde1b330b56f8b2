package testutil

import (
	"bytes"
	"slices"
	"testing"

	"github.com/spf13/cobra"
)

// Ptr returns a pointer to the given string. Useful for AssertFlagExists.
func Ptr(s string) *string { return &s }

// AssertFlagExists fails if flag doesn't exist or has wrong properties.
// Pass nil for defValue to skip default check, or pointer to string to check (including empty).
// Pass empty string for valueType or shorthand to skip that check.
func AssertFlagExists(t *testing.T, cmd *cobra.Command, name string, defValue *string, valueType, shorthand string) {
	t.Helper()
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.PersistentFlags().Lookup(name)
	}
	if flag == nil {
		t.Fatalf("expected flag --%s to exist", name)
	}
	if defValue != nil && flag.DefValue != *defValue {
		t.Fatalf("flag --%s: expected default %q, got %q", name, *defValue, flag.DefValue)
	}
	if valueType != "" && flag.Value.Type() != valueType {
		t.Fatalf("flag --%s: expected type %q, got %q", name, valueType, flag.Value.Type())
	}
	if shorthand != "" && flag.Shorthand != shorthand {
		t.Fatalf("flag --%s: expected shorthand %q, got %q", name, shorthand, flag.Shorthand)
	}
}

// AssertAlias fails if cmd does not answer to alias.
func AssertAlias(t *testing.T, cmd *cobra.Command, alias string) {
	t.Helper()
	if !slices.Contains(cmd.Aliases, alias) {
		t.Fatalf("command %q: expected alias %q, got %v", cmd.Name(), alias, cmd.Aliases)
	}
}

// ExecuteCommand runs root with args and returns everything written to its
// output and error streams.
func ExecuteCommand(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
