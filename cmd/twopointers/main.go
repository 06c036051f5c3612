// Command twopointers runs the two-pointer and hash-map problem solvers from
// the command line and cross-checks their strategies with the harness.
//
//	twopointers [-config file] <command> [flags]
//
// Commands:
//
//	triplets    -values -1,0,1,2,-1,-4 [-target 0] [-brute]
//	pairsum     -values 2,7,11,15 -target 9 [-all] [-unsorted]
//	twosum      -values 2,7,11,15 -target 9 [-all] [-trace]
//	container   -values 1,8,6,2,5,4,8,3,7 [-trace] [-render]
//	palindrome  -text "A man, a plan, a canal: Panama"
//	run         [-scenarios file] [-random n] [-trace] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/twopointers/internal/config"
	"github.com/katalvlaran/twopointers/internal/logging"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	fs := flag.NewFlagSet("twopointers", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: twopointers [-config file] <triplets|pairsum|twosum|container|palindrome|run> [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	cli := &app{cfg: cfg, logger: logger, out: os.Stdout}
	err = cli.dispatch(fs.Arg(0), fs.Args()[1:])
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err)
		return 2
	default:
		logger.Error("command failed", zap.String("command", fs.Arg(0)), zap.Error(err))
		return 1
	}
}
