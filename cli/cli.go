// Package cli implements the maze command line: generating maze images,
// running the HTTP API and minting tokens for it.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/logger"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

const usage = `Usage: vinom-maze <command> [flags]

Commands:
  generate   generate a maze image (default when the first argument is a flag)
  serve      run the HTTP API
  token      mint a bearer token for the record routes
  rules      print the maze image rules
  version    print the version

Run 'vinom-maze <command> -h' for the flags of a command.
`

var ErrNoServer = errors.New("serve is not available")

// Env is what a command may touch outside its arguments.
type Env struct {
	Config config.Config
	Stdout io.Writer
	Stderr io.Writer
	Cwd    string       // Base of relative output paths; empty means the process directory
	Serve  func() error // Runs the HTTP API until it fails
}

// Run executes the command named by args and returns the process exit code.
func Run(args []string, env Env) int {
	if len(args) == 0 {
		fmt.Fprint(env.Stderr, usage)
		return 1
	}

	switch args[0] {
	case "-h", "--help", "help":
		fmt.Fprint(env.Stdout, usage)
		return 0
	case "generate":
		return runGenerate(args[1:], env)
	case "serve":
		return runServe(env)
	case "token":
		return runToken(args[1:], env)
	case "rules":
		fmt.Fprintln(env.Stdout, maze.Rules)
		return 0
	case "version":
		fmt.Fprintln(env.Stdout, Version)
		return 0
	}

	if strings.HasPrefix(args[0], "-") {
		return runGenerate(args, env)
	}

	fmt.Fprintf(env.Stderr, "unknown command %q\n\n%s", args[0], usage)
	return 1
}

func runServe(env Env) int {
	if env.Serve == nil {
		return fail(env, ErrNoServer)
	}
	if err := env.Serve(); err != nil {
		return fail(env, fmt.Errorf("serving: %w", err))
	}
	return 0
}

func runToken(args []string, env Env) int {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	subject := fs.String("subject", "", "subject the token is issued for")
	ttl := fs.Duration("ttl", 24*time.Hour, "lifetime of the token")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}

	if *subject == "" {
		return fail(env, token.ErrMissingSubject)
	}
	if env.Config.JWTSecret == "" {
		return fail(env, config.ErrMissingSecret)
	}

	jwt := token.NewJwtService(env.Config.JWTSecret, env.Config.JWTIssuer)
	bearer, err := jwt.Issue(*subject, *ttl)
	if err != nil {
		return fail(env, err)
	}

	fmt.Fprintln(env.Stdout, bearer)
	return 0
}

// fail logs err to the error stream and returns the failure exit code.
func fail(env Env, err error) int {
	l, lerr := logger.New("MAZE", config.ColorCyan, env.Stderr)
	if lerr != nil {
		fmt.Fprintln(env.Stderr, err)
		return 1
	}
	l.Error(err.Error())
	return 1
}

func parseExit(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}
