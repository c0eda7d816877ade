// Package cmd The command line tool for running dimstat.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/template"

	"go.uber.org/zap"

	"github.com/go-imsto/dimstat/config"
	"github.com/go-imsto/dimstat/image"
	zlog "github.com/go-imsto/dimstat/log"
	"github.com/go-imsto/dimstat/report"
	"github.com/go-imsto/dimstat/stats"
)

// Command Cribbed from the genius organization of the "go" command.
type Command struct {
	Run                    func(args []string) bool
	UsageLine, Short, Long string
	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet
}

func (cmd *Command) Name() string {
	name := cmd.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

func (cmd *Command) Usage() {
	fmt.Fprintf(os.Stderr, "Usage: dimstat %s\n", cmd.UsageLine)
	fmt.Fprintf(os.Stderr, "Default Usage:\n")
	cmd.Flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "Description:\n")
	fmt.Fprintf(os.Stderr, "  %s\n", strings.TrimSpace(cmd.Long))
	os.Exit(2)
}

// main
var (
	exitStatus = 0
	exitMu     sync.Mutex
)

var commands = []*Command{
	cmdAnalyze,
	cmdStat,
}

func setExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func logger() zlog.Logger {
	return zlog.Get()
}

func newLogger(develop bool) (*zap.Logger, error) {
	if develop {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func Main() {
	flag.Usage = func() { usage(1) }
	flag.Parse()
	args := flag.Args()

	if len(args) < 1 || args[0] == "help" {
		if len(args) == 1 {
			usage(0)
		}
		if len(args) > 1 {
			for _, cmd := range commands {
				if cmd.Name() == args[1] {
					tmpl(os.Stdout, helpTemplate, cmd)
					return
				}
			}
		}
		usage(2)
	}

	cfg, err := config.Load()
	if err != nil {
		errorf("config: %s", err)
		os.Exit(2)
	}
	config.Current = cfg

	zl, err := newLogger(config.InDevelop())
	if err != nil {
		errorf("init logger: %s", err)
		os.Exit(1)
	}
	zl.Debug("logger start")
	atExit(func() { _ = zl.Sync() }) // flushes buffer, if any
	zlog.Set(zl.Sugar())

	tags := map[string]string{"service": "dimstat", "ver": config.Version}
	if err := report.SetupCapture(config.Current.SentryDSN, tags); err != nil {
		logger().Warnw("sentry disabled", "err", err)
	}

	for _, cmd := range commands {
		name := cmd.Name()
		if name == args[0] && cmd.Run != nil {
			cmd.Flag.Usage = func() { cmd.Usage() }
			cmd.Flag.Parse(args[1:])
			args = cmd.Flag.Args()

			if !cmd.Run(args) {
				fmt.Fprintf(os.Stderr, "\n")
				cmd.Flag.Usage()
			}
			exit()
		}
	}

	errorf("unknown command %q\nRun 'dimstat help' for usage.\n", args[0])
	setExitStatus(2)
	exit()
}

// finish settles the exit status of a run. Nothing to process is a clean
// exit, the diagnostic is already printed.
func finish(err error) bool {
	switch {
	case err == nil:
	case errors.Is(err, image.ErrNoInputFiles), errors.Is(err, stats.ErrNoValidImages):
		logger().Infow("nothing to do", "reason", err)
	case errors.Is(err, image.ErrTargetSize):
		errorf("%s", err)
		return false
	default:
		logger().Errorw("run failed", "err", err)
		report.CaptureError(err, map[string]string{"stage": "run"})
		setExitStatus(1)
	}
	return true
}

func errorf(format string, args ...interface{}) {
	// Ensure the user's command prompt starts on the next line.
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

const usageTemplate = `usage: dimstat command [arguments]

The commands are:
{{range .}}
    {{.Name | printf "%-11s"}} {{.Short}}{{end}}

Use "dimstat help [command]" for more information.
`

var helpTemplate = `usage: dimstat {{.UsageLine}}
{{.Long}}
`

func usage(exitCode int) {
	fmt.Fprintln(os.Stderr, "version ", config.Version)
	tmpl(os.Stderr, usageTemplate, commands)
	os.Exit(exitCode)
}

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}

var atExitFuncs []func()

func atExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

func exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(exitStatus)
}
