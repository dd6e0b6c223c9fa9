package cmd

import (
	"testing"
)

func TestCommandTree(t *testing.T) {
	want := []string{"auth", "property", "lead", "book", "dashboard", "admin", "browse", "version"}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestAuthSubcommands(t *testing.T) {
	want := []string{"login", "register", "logout", "status"}

	registered := make(map[string]bool)
	for _, c := range authCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("auth subcommand %q not registered", name)
		}
	}
}

func TestLoginFlagsRequired(t *testing.T) {
	if authLoginCmd.Flags().Lookup("email") == nil {
		t.Error("login is missing the --email flag")
	}
	if authLoginCmd.Flags().Lookup("password") == nil {
		t.Error("login is missing the --password flag")
	}
}

func TestPropertyListFilters(t *testing.T) {
	for _, flag := range []string{"city", "type", "max-price"} {
		if propertyListCmd.Flags().Lookup(flag) == nil {
			t.Errorf("property list is missing the --%s flag", flag)
		}
	}
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	f := authRegisterCmd.Flags().Lookup("role")
	if f == nil {
		t.Fatal("register is missing the --role flag")
	}
	if f.DefValue != "customer" {
		t.Errorf("default role = %q, want customer", f.DefValue)
	}
}
