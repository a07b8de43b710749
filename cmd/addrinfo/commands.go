package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/netip"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
	"go4.org/netipx"

	"github.com/KarmaNetwork/addr-hal/stdaddr"
)

// exitError carries an exit code for cases where all output is already done
// and main only needs to set the process status.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError marks argument problems that map to exit code 2.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

const (
	classUnspecified        = "unspecified"
	classLoopback           = "loopback"
	classPrivate            = "private"
	classLinkLocal          = "link-local"
	classShared             = "shared"
	classProtocolAssignment = "ietf-protocol-assignment"
	classBenchmarking       = "benchmarking"
	classDocumentation      = "documentation"
	classBroadcast          = "broadcast"
	classReserved           = "reserved"
	classMulticast          = "multicast"
	classUniqueLocal        = "unique-local"
	classSiteLocal          = "site-local"
	classMapped             = "ipv4-mapped"
	classUnicastGlobal      = "unicast-global"
	classGlobal             = "global"
)

// report is the per-address output record for both text and JSON modes.
type report struct {
	Input     string   `json:"input"`
	Canonical string   `json:"canonical"`
	Family    string   `json:"family"`
	Classes   []string `json:"classes"`
	Scope     string   `json:"scope,omitempty"`
}

func createCommands() []*cli.Command {
	return []*cli.Command{
		createClassifyCommand(),
		createFormatCommand(),
		createSortCommand(),
		createRangeCommand(),
	}
}

func createClassifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Aliases:   []string{"c"},
		Usage:     "report family, canonical form and classes per address",
		ArgsUsage: "[address...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "summary-out",
				Usage: "write aggregate counts to this file in Prometheus textfile format",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdClassify(ctx, cmd)
		},
	}
}

func createFormatCommand() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Aliases:   []string{"f"},
		Usage:     "re-render addresses or socket addresses in canonical form",
		ArgsUsage: "[address...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdFormat(ctx, cmd)
		},
	}
}

func createSortCommand() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "sort addresses in the core order (all v4 before all v6)",
		ArgsUsage: "[address...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdSort(ctx, cmd)
		},
	}
}

func createRangeCommand() *cli.Command {
	return &cli.Command{
		Name:      "range",
		Aliases:   []string{"r"},
		Usage:     "expand a CIDR prefix or from-to range and classify each address",
		ArgsUsage: "<prefix|from-to>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "maximum number of addresses to expand",
				Value:   defaultRangeLimit,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdRange(ctx, cmd)
		},
	}
}

func cmdClassify(ctx context.Context, cmd *cli.Command) error {
	log := newLogger(cmd)

	inputs, err := readInputs(cmd)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return &usageError{msg: "classify needs addresses as arguments or on stdin"}
	}

	var metrics *summaryMetrics
	summaryPath := cmd.String("summary-out")
	if summaryPath != "" {
		metrics, err = newSummaryMetrics()
		if err != nil {
			return err
		}
	}

	failed := false
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		rep, err := classifyInput(input)
		if err != nil {
			failed = true
			log.Error("classification failed",
				slog.String("input", input),
				slog.String("error", err.Error()))
			continue
		}

		if metrics != nil {
			metrics.recordReport(rep)
		}
		if err := printReport(cmd, rep); err != nil {
			return err
		}
	}

	if metrics != nil {
		if err := metrics.writeTextfile(summaryPath); err != nil {
			return fmt.Errorf("write summary file: %w", err)
		}
		log.Debug("summary written", slog.String("path", summaryPath))
	}

	if failed {
		return &exitError{code: 1}
	}
	return nil
}

func cmdFormat(ctx context.Context, cmd *cli.Command) error {
	log := newLogger(cmd)

	inputs, err := readInputs(cmd)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return &usageError{msg: "format needs addresses as arguments or on stdin"}
	}

	failed := false
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		canonical, err := formatInput(input)
		if err != nil {
			failed = true
			log.Error("format failed",
				slog.String("input", input),
				slog.String("error", err.Error()))
			continue
		}
		fmt.Println(canonical)
	}

	if failed {
		return &exitError{code: 1}
	}
	return nil
}

func cmdSort(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	inputs, err := readInputs(cmd)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return &usageError{msg: "sort needs addresses as arguments or on stdin"}
	}

	addrs := make([]stdaddr.Addr, 0, len(inputs))
	for _, input := range inputs {
		a, err := stdaddr.ParseAddr(input)
		if err != nil {
			return err
		}
		addrs = append(addrs, a)
	}

	sortAddrs(addrs)
	for _, a := range addrs {
		fmt.Println(a.String())
	}
	return nil
}

func cmdRange(ctx context.Context, cmd *cli.Command) error {
	log := newLogger(cmd)

	if cmd.Args().Len() != 1 {
		return &usageError{msg: "range needs exactly one <prefix|from-to> argument"}
	}
	limit := cmd.Int("limit")
	if limit <= 0 {
		return &usageError{msg: "--limit must be positive"}
	}

	addrs, err := expandRange(cmd.Args().First(), limit)
	if err != nil {
		return err
	}
	log.Debug("range expanded",
		slog.String("spec", cmd.Args().First()),
		slog.Int("addresses", len(addrs)))

	for _, a := range addrs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := printReport(cmd, classifyAddr(a.String(), a)); err != nil {
			return err
		}
	}
	return nil
}

// classifyInput parses one input and builds its report.
func classifyInput(input string) (report, error) {
	a, err := stdaddr.ParseAddr(input)
	if err != nil {
		return report{}, err
	}
	return classifyAddr(input, a), nil
}

func classifyAddr(input string, a stdaddr.Addr) report {
	rep := report{Input: input, Canonical: a.String()}
	if v4, ok := a.V4(); ok {
		rep.Family = "v4"
		rep.Classes = classify4(v4)
		return rep
	}
	v6, _ := a.V6()
	rep.Family = "v6"
	rep.Classes = classify6(v6)
	if scope, ok := v6.MulticastScope(); ok {
		rep.Scope = scope.String()
	}
	return rep
}

func classify4(a stdaddr.Addr4) []string {
	var classes []string
	add := func(label string, ok bool) {
		if ok {
			classes = append(classes, label)
		}
	}

	add(classUnspecified, a.IsUnspecified())
	add(classLoopback, a.IsLoopback())
	add(classPrivate, a.IsPrivate())
	add(classLinkLocal, a.IsLinkLocal())
	add(classShared, a.IsShared())
	add(classProtocolAssignment, a.IsIETFProtocolAssignment())
	add(classBenchmarking, a.IsBenchmarking())
	add(classDocumentation, a.IsDocumentation())
	add(classBroadcast, a.IsBroadcast())
	add(classReserved, a.IsReserved())
	add(classMulticast, a.IsMulticast())
	add(classGlobal, a.IsGlobal())
	return classes
}

func classify6(a stdaddr.Addr6) []string {
	var classes []string
	add := func(label string, ok bool) {
		if ok {
			classes = append(classes, label)
		}
	}

	add(classUnspecified, a.IsUnspecified())
	add(classLoopback, a.IsLoopback())
	add(classUniqueLocal, a.IsUniqueLocal())
	add(classLinkLocal, a.IsUnicastLinkLocal())
	add(classSiteLocal, a.IsUnicastSiteLocal())
	add(classDocumentation, a.IsDocumentation())
	add(classMapped, isMapped(a))
	add(classMulticast, a.IsMulticast())
	add(classUnicastGlobal, a.IsUnicastGlobal())
	add(classGlobal, a.IsGlobal())
	return classes
}

// isMapped reports the ::ffff:a.b.c.d form specifically, not the wider
// IPv4-compatible space.
func isMapped(a stdaddr.Addr6) bool {
	s := a.Segments()
	return s[0] == 0 && s[1] == 0 && s[2] == 0 && s[3] == 0 && s[4] == 0 && s[5] == 0xffff
}

// formatInput canonicalizes either an address or an address:port.
func formatInput(input string) (string, error) {
	if a, err := stdaddr.ParseAddr(input); err == nil {
		return a.String(), nil
	}
	sa, err := stdaddr.ParseAddrPort(input)
	if err != nil {
		return "", fmt.Errorf("%q is neither an address nor an address:port", input)
	}
	return sa.String(), nil
}

func sortAddrs(addrs []stdaddr.Addr) {
	slices.SortFunc(addrs, stdaddr.Addr.Compare)
}

// expandRange enumerates a CIDR prefix or a from-to range, refusing to
// expand more than limit addresses.
func expandRange(spec string, limit int) ([]stdaddr.Addr, error) {
	var builder netipx.IPSetBuilder
	if prefix, err := netip.ParsePrefix(spec); err == nil {
		builder.AddPrefix(prefix)
	} else if r, rangeErr := netipx.ParseIPRange(spec); rangeErr == nil {
		builder.AddRange(r)
	} else {
		return nil, &usageError{msg: fmt.Sprintf("%q is neither a CIDR prefix nor a from-to range", spec)}
	}

	set, err := builder.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build address set: %w", err)
	}

	var addrs []stdaddr.Addr
	for _, r := range set.Ranges() {
		to := r.To()
		for a := r.From(); a.IsValid() && a.Compare(to) <= 0; a = a.Next() {
			if len(addrs) >= limit {
				return nil, fmt.Errorf("%q expands to more than %d addresses, raise --limit to expand it", spec, limit)
			}
			addrs = append(addrs, fromNetip(a))
		}
	}
	return addrs, nil
}

func fromNetip(a netip.Addr) stdaddr.Addr {
	if a.Is4() {
		return stdaddr.IPFrom4(stdaddr.From4(a.As4()))
	}
	return stdaddr.IPFrom6(stdaddr.From16(a.As16()))
}

// printReport writes one report in the mode selected by --json.
func printReport(cmd *cli.Command, rep report) error {
	if cmd.Bool("json") {
		return json.NewEncoder(os.Stdout).Encode(rep)
	}
	fmt.Println(formatReport(rep))
	return nil
}

func formatReport(rep report) string {
	var sb strings.Builder
	sb.WriteString(rep.Canonical)
	sb.WriteString(" family=")
	sb.WriteString(rep.Family)
	sb.WriteString(" classes=")
	if len(rep.Classes) == 0 {
		sb.WriteString("none")
	} else {
		sb.WriteString(strings.Join(rep.Classes, ","))
	}
	if rep.Scope != "" {
		sb.WriteString(" scope=")
		sb.WriteString(rep.Scope)
	}
	return sb.String()
}

// readInputs returns the argument list, or stdin lines when there are no
// arguments or the single argument is "-".
func readInputs(cmd *cli.Command) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return readLines(os.Stdin)
	}
	return args, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
