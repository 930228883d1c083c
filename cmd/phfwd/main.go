// Command phfwd builds a phone-number forwarding registry and runs scripts
// and queries against it.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/config"
	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/forward"
)

func newFlags(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("phfwd", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	fs.BoolP("help", "h", false, "Show help message")
	fs.StringP("config", "c", "", "Path to a config file (yaml, json or toml)")
	fs.String("log-level", "info", "Log level: debug, info, warn or error")
	fs.String("log-format", "console", "Log format: console or json")
	fs.Int("max-nodes", 0, "Maximum nodes per trie, 0 for unlimited")
	fs.Int("worklist", 0, "Destruction worklist capacity, 0 for unlimited, negative to disable")
	fs.Int("max-results", 0, "Maximum reverse candidates, 0 for unlimited")
	return fs
}

// env carries what every command needs.
type env struct {
	reg *forward.Registry
	out io.Writer
	in  io.Reader
	log zerolog.Logger
}

// Command represents a CLI command
type Command struct {
	Name        string
	Usage       string
	Description string
	Args        int // exact number of arguments, -1 for "at most one"
	Run         func(e *env, args []string) error
}

// Available commands
var commands = []Command{
	{
		Name:        "run",
		Usage:       "run [file]",
		Description: "Execute a script from file or stdin",
		Args:        -1,
		Run:         runScript,
	},
	{
		Name:        "get",
		Usage:       "get <number>",
		Description: "Rewrite a number with the longest matching rule",
		Args:        1,
		Run:         runGet,
	},
	{
		Name:        "reverse",
		Usage:       "reverse <number>",
		Description: "List every number some rule could rewrite to <number>",
		Args:        1,
		Run:         runReverse,
	},
	{
		Name:        "getreverse",
		Usage:       "getreverse <number>",
		Description: "List the numbers that are actually rewritten to <number>",
		Args:        1,
		Run:         runGetReverse,
	},
	{
		Name:        "rules",
		Usage:       "rules",
		Description: "Print every configured rule",
		Run:         runRules,
	},
	{
		Name:        "dump",
		Usage:       "dump",
		Description: "Print both tries",
		Run:         runDump,
	},
}

func usage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s [flags] <command> [arguments]\n", os.Args[0])
	fmt.Fprintf(w, "\nAvailable commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-22s %s\n", cmd.Usage, cmd.Description)
	}
	fmt.Fprintf(w, "\nGlobal flags:\n")
	fmt.Fprint(w, flags.FlagUsages())
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  \techo '17 > 58 1700 ?' | %s run\n", os.Args[0])
	fmt.Fprintf(w, "  \t%s --config rules.yaml getreverse 5800\n", os.Args[0])
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := newFlags(stderr)
	flags.Usage = func() { usage(stderr, flags) }
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if help, _ := flags.GetBool("help"); help {
		usage(stdout, flags)
		return 0
	}
	if flags.NArg() == 0 {
		usage(stderr, flags)
		return 2
	}

	cmd := lookup(flags.Arg(0))
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", flags.Arg(0))
		usage(stderr, flags)
		return 2
	}
	cmdArgs := flags.Args()[1:]
	if !cmd.accepts(len(cmdArgs)) {
		fmt.Fprintf(stderr, "Usage: %s %s\n", os.Args[0], cmd.Usage)
		return 2
	}

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger := newLogger(cfg, stderr)

	reg := forward.New(forward.WithLogger(logger), forward.WithLimits(cfg.RegistryLimits()))
	for _, r := range cfg.Rules {
		if err := reg.Add(r.From, r.To); err != nil {
			logger.Error().Err(err).Str("from", r.From).Str("to", r.To).Msg("Failed to load rule")
			return 1
		}
	}
	logger.Debug().Int("rules", reg.Len()).Str("state", string(reg.State())).Msg("Registry ready")

	e := &env{reg: reg, out: stdout, in: stdin, log: logger}
	if err := cmd.Run(e, cmdArgs); err != nil {
		logger.Error().Err(err).Str("command", cmd.Name).Msg("Command failed")
		return 1
	}
	return 0
}

func lookup(name string) *Command {
	for i := range commands {
		if commands[i].Name == name {
			return &commands[i]
		}
	}
	return nil
}

func (c *Command) accepts(n int) bool {
	if c.Args < 0 {
		return n <= 1
	}
	return n == c.Args
}

func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	var out io.Writer = w
	if cfg.Log.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(cfg.Level()).With().Timestamp().Logger()
}
