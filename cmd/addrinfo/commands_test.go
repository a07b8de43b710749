package main

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/KarmaNetwork/addr-hal/stdaddr"
)

func mustAddr4(t *testing.T, s string) stdaddr.Addr4 {
	t.Helper()
	v4, ok := stdaddr.MustParseAddr(s).V4()
	if !ok {
		t.Fatalf("%s did not parse as IPv4", s)
	}
	return v4
}

func mustAddr6(t *testing.T, s string) stdaddr.Addr6 {
	t.Helper()
	v6, ok := stdaddr.MustParseAddr(s).V6()
	if !ok {
		t.Fatalf("%s did not parse as IPv6", s)
	}
	return v6
}

func TestClassify4(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"unspecified", "0.0.0.0", []string{classUnspecified}},
		{"zero net is not global", "0.0.0.1", nil},
		{"loopback", "127.0.0.1", []string{classLoopback}},
		{"private", "10.1.2.3", []string{classPrivate}},
		{"link local", "169.254.0.1", []string{classLinkLocal}},
		{"shared", "100.64.0.1", []string{classShared}},
		{"protocol assignment", "192.0.0.8", []string{classProtocolAssignment}},
		{"protocol assignment exception", "192.0.0.9", []string{classProtocolAssignment, classGlobal}},
		{"benchmarking", "198.19.0.1", []string{classBenchmarking}},
		{"documentation", "192.0.2.1", []string{classDocumentation}},
		{"broadcast", "255.255.255.255", []string{classBroadcast}},
		{"reserved", "240.0.0.1", []string{classReserved}},
		{"multicast is global", "224.0.0.1", []string{classMulticast, classGlobal}},
		{"plain global", "8.8.8.8", []string{classGlobal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify4(mustAddr4(t, tt.input))
			if !slices.Equal(got, tt.want) {
				t.Errorf("classify4(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify6(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"unspecified", "::", []string{classUnspecified}},
		{"loopback", "::1", []string{classLoopback}},
		{"unique local", "fc00::1", []string{classUniqueLocal}},
		{"link local", "fe80::1", []string{classLinkLocal}},
		{"site local stays routable", "fec0::1", []string{classSiteLocal, classUnicastGlobal, classGlobal}},
		{"documentation", "2001:db8::1", []string{classDocumentation}},
		{"mapped", "::ffff:192.0.2.128", []string{classMapped, classUnicastGlobal, classGlobal}},
		{"site scoped multicast", "ff05::1", []string{classMulticast}},
		{"global multicast", "ff0e::1", []string{classMulticast, classGlobal}},
		{"multicast with unassigned scope", "ff0f::1", []string{classMulticast}},
		{"plain global", "2606:4700::1", []string{classUnicastGlobal, classGlobal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify6(mustAddr6(t, tt.input))
			if !slices.Equal(got, tt.want) {
				t.Errorf("classify6(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsMapped(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"mapped unspecified", "::ffff:0.0.0.0", true},
		{"mapped documentation", "::ffff:192.0.2.1", true},
		{"compatible is not mapped", "::192.0.2.1", false},
		{"nat64 prefix is not mapped", "64:ff9b::192.0.2.1", false},
		{"loopback", "::1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isMapped(mustAddr6(t, tt.input)); got != tt.want {
				t.Errorf("isMapped(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyAddr(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		family    string
		canonical string
		scope     string
		classes   []string
	}{
		{"v4 loopback", "127.0.0.1", "v4", "127.0.0.1", "", []string{classLoopback}},
		{"v6 canonicalized", "2001:DB8:0:0:0:0:0:1", "v6", "2001:db8::1", "", []string{classDocumentation}},
		{"scoped multicast", "ff05::1", "v6", "ff05::1", "site-local", []string{classMulticast}},
		{"unassigned scope has no name", "ff0f::1", "v6", "ff0f::1", "", []string{classMulticast}},
		{"mapped keeps v6 family", "::ffff:192.0.2.128", "v6", "::ffff:192.0.2.128", "", []string{classMapped, classUnicastGlobal, classGlobal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := classifyAddr(tt.input, stdaddr.MustParseAddr(tt.input))
			if rep.Input != tt.input {
				t.Errorf("Input = %q, want %q", rep.Input, tt.input)
			}
			if rep.Canonical != tt.canonical {
				t.Errorf("Canonical = %q, want %q", rep.Canonical, tt.canonical)
			}
			if rep.Family != tt.family {
				t.Errorf("Family = %q, want %q", rep.Family, tt.family)
			}
			if rep.Scope != tt.scope {
				t.Errorf("Scope = %q, want %q", rep.Scope, tt.scope)
			}
			if !slices.Equal(rep.Classes, tt.classes) {
				t.Errorf("Classes = %v, want %v", rep.Classes, tt.classes)
			}
		})
	}
}

func TestClassifyInput(t *testing.T) {
	rep, err := classifyInput("198.51.100.7")
	if err != nil {
		t.Fatalf("classifyInput() error = %v", err)
	}
	if rep.Canonical != "198.51.100.7" || rep.Family != "v4" {
		t.Errorf("classifyInput() = %+v", rep)
	}

	if _, err := classifyInput("not-an-address"); err == nil {
		t.Error("classifyInput() accepted garbage input")
	}
}

func TestFormatInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"v4 address", "127.0.0.1", "127.0.0.1", false},
		{"v6 canonicalized", "2001:DB8:0:0:0:0:0:1", "2001:db8::1", false},
		{"v4 socket", "127.0.0.1:8080", "127.0.0.1:8080", false},
		{"v6 socket", "[2001:DB8::1]:443", "[2001:db8::1]:443", false},
		{"hostname", "localhost", "", true},
		{"zoned literal", "fe80::1%eth0", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("formatInput(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("formatInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatReport(t *testing.T) {
	tests := []struct {
		name string
		rep  report
		want string
	}{
		{
			"single class",
			report{Canonical: "10.0.0.1", Family: "v4", Classes: []string{classPrivate}},
			"10.0.0.1 family=v4 classes=private",
		},
		{
			"multiple classes",
			report{Canonical: "224.0.0.1", Family: "v4", Classes: []string{classMulticast, classGlobal}},
			"224.0.0.1 family=v4 classes=multicast,global",
		},
		{
			"no classes",
			report{Canonical: "0.0.0.1", Family: "v4"},
			"0.0.0.1 family=v4 classes=none",
		},
		{
			"with scope",
			report{Canonical: "ff05::1", Family: "v6", Classes: []string{classMulticast}, Scope: "site-local"},
			"ff05::1 family=v6 classes=multicast scope=site-local",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatReport(tt.rep); got != tt.want {
				t.Errorf("formatReport() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortAddrs(t *testing.T) {
	addrs := []stdaddr.Addr{
		stdaddr.MustParseAddr("2001:db8::1"),
		stdaddr.MustParseAddr("10.0.0.1"),
		stdaddr.MustParseAddr("::"),
		stdaddr.MustParseAddr("255.255.255.255"),
		stdaddr.MustParseAddr("10.0.0.0"),
	}

	sortAddrs(addrs)

	want := []string{"10.0.0.0", "10.0.0.1", "255.255.255.255", "::", "2001:db8::1"}
	if len(addrs) != len(want) {
		t.Fatalf("sortAddrs() kept %d addresses, want %d", len(addrs), len(want))
	}
	for i, a := range addrs {
		if a.String() != want[i] {
			t.Errorf("addrs[%d] = %s, want %s", i, a.String(), want[i])
		}
	}
}

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		limit int
		first string
		last  string
		count int
	}{
		{"v4 prefix", "192.0.2.0/30", 16, "192.0.2.0", "192.0.2.3", 4},
		{"v4 prefix at exact limit", "192.0.2.0/30", 4, "192.0.2.0", "192.0.2.3", 4},
		{"v4 from-to", "192.0.2.8-192.0.2.11", 16, "192.0.2.8", "192.0.2.11", 4},
		{"v6 prefix", "2001:db8::/126", 16, "2001:db8::", "2001:db8::3", 4},
		{"v6 from-to", "2001:db8::1-2001:db8::4", 16, "2001:db8::1", "2001:db8::4", 4},
		{"single address prefix", "127.0.0.1/32", 16, "127.0.0.1", "127.0.0.1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addrs, err := expandRange(tt.spec, tt.limit)
			if err != nil {
				t.Fatalf("expandRange(%q, %d) error = %v", tt.spec, tt.limit, err)
			}
			if len(addrs) != tt.count {
				t.Fatalf("expandRange(%q) returned %d addresses, want %d", tt.spec, len(addrs), tt.count)
			}
			if got := addrs[0].String(); got != tt.first {
				t.Errorf("first address = %s, want %s", got, tt.first)
			}
			if got := addrs[len(addrs)-1].String(); got != tt.last {
				t.Errorf("last address = %s, want %s", got, tt.last)
			}
		})
	}
}

func TestExpandRange_OverLimit(t *testing.T) {
	_, err := expandRange("192.0.2.0/24", 10)
	if err == nil {
		t.Fatal("expandRange() expanded past the limit")
	}
	var ue *usageError
	if errors.As(err, &ue) {
		t.Errorf("limit overflow reported as usage error: %v", err)
	}
	if !strings.Contains(err.Error(), "raise --limit") {
		t.Errorf("error %q does not point at --limit", err)
	}
}

func TestExpandRange_BadSpec(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"garbage", "banana"},
		{"bare address", "192.0.2.1"},
		{"oversized prefix length", "192.0.2.0/33"},
		{"reversed range", "192.0.2.9-192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := expandRange(tt.spec, 16)
			if err == nil {
				t.Fatalf("expandRange(%q) accepted a bad spec", tt.spec)
			}
			var ue *usageError
			if !errors.As(err, &ue) {
				t.Errorf("expandRange(%q) error = %v, want usage error", tt.spec, err)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	in := strings.NewReader("  192.0.2.1  \n\n::1\n\t10.0.0.1\n")

	lines, err := readLines(in)
	if err != nil {
		t.Fatalf("readLines() error = %v", err)
	}

	want := []string{"192.0.2.1", "::1", "10.0.0.1"}
	if !slices.Equal(lines, want) {
		t.Errorf("readLines() = %v, want %v", lines, want)
	}
}

func TestCreateCommands(t *testing.T) {
	commands := createCommands()

	wantAliases := map[string]string{
		"classify": "c",
		"format":   "f",
		"sort":     "",
		"range":    "r",
	}
	if len(commands) != len(wantAliases) {
		t.Fatalf("createCommands() returned %d commands, want %d", len(commands), len(wantAliases))
	}
	for _, cmd := range commands {
		alias, ok := wantAliases[cmd.Name]
		if !ok {
			t.Errorf("unexpected command %q", cmd.Name)
			continue
		}
		switch {
		case alias == "" && len(cmd.Aliases) != 0:
			t.Errorf("command %q has aliases %v, want none", cmd.Name, cmd.Aliases)
		case alias != "" && (len(cmd.Aliases) != 1 || cmd.Aliases[0] != alias):
			t.Errorf("command %q has aliases %v, want [%s]", cmd.Name, cmd.Aliases, alias)
		}
		if cmd.Action == nil {
			t.Errorf("command %q has no action", cmd.Name)
		}
	}
}

func TestCreateApp(t *testing.T) {
	app := createApp()

	if app.Name != "addrinfo" {
		t.Errorf("app name = %q, want addrinfo", app.Name)
	}

	flagNames := make(map[string]bool)
	for _, f := range app.Flags {
		for _, n := range f.Names() {
			flagNames[n] = true
		}
	}
	for _, want := range []string{"json", "verbose", "v"} {
		if !flagNames[want] {
			t.Errorf("global flag %q not registered", want)
		}
	}
}

func TestExitError(t *testing.T) {
	err := error(&exitError{code: 1})

	if got := err.Error(); got != "" {
		t.Errorf("exitError.Error() = %q, want empty", got)
	}

	var ee *exitError
	if !errors.As(err, &ee) {
		t.Fatal("errors.As failed to match *exitError")
	}
	if ee.code != 1 {
		t.Errorf("code = %d, want 1", ee.code)
	}
}

func TestUsageError(t *testing.T) {
	err := error(&usageError{msg: "range needs exactly one argument"})

	if got := err.Error(); got != "range needs exactly one argument" {
		t.Errorf("usageError.Error() = %q", got)
	}

	var ue *usageError
	if !errors.As(err, &ue) {
		t.Fatal("errors.As failed to match *usageError")
	}
}
