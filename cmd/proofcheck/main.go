// Command proofcheck runs a named proof-verification fixture and reports
// whether the proof checks out.
//
// Usage:
//
//	proofcheck [flags]
//
// Flags:
//
//	--fixtures  Directory of fixture JSON files (default: testdata/fixtures)
//	--name      Fixture name to run, e.g. "account/success"
//	--list      List the names of every fixture found and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ethproof/verifier/elog"
	"github.com/ethproof/verifier/fixtureset"
)

var log = elog.Default().Module("proofcheck")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) and a writer for normal output so it
// can be tested in isolation.
func run(args []string, stdout io.Writer) int {
	cfg, exit, code := parseFlags(args)
	if exit {
		return code
	}

	fixtures, err := fixtureset.LoadDir(cfg.fixturesDir)
	if err != nil {
		log.Error("failed to load fixtures", "dir", cfg.fixturesDir, "err", err)
		return 1
	}
	log.Info("loaded fixtures", "dir", cfg.fixturesDir, "count", len(fixtures))

	if cfg.list {
		for _, f := range fixtures {
			fmt.Fprintln(stdout, f.Name)
		}
		return 0
	}

	f, err := fixtureset.ByName(fixtures, cfg.name)
	if err != nil {
		log.Error("fixture not found", "name", cfg.name, "err", err)
		return 1
	}

	verifyErr := fixtureset.Run(f)

	if f.WantErr == "" {
		if verifyErr != nil {
			log.Error("verification failed", "fixture", f.Name, "err", verifyErr)
			fmt.Fprintf(stdout, "FAIL: %v\n", verifyErr)
			return 1
		}
		fmt.Fprintln(stdout, "OK")
		return 0
	}

	// The fixture expects a specific verification failure.
	if verifyErr == nil {
		log.Error("expected verification failure but got success", "fixture", f.Name, "want", f.WantErr)
		fmt.Fprintf(stdout, "FAIL: expected error %q, got success\n", f.WantErr)
		return 1
	}
	if verifyErr.Error() != f.WantErr {
		log.Error("verification failed with unexpected error", "fixture", f.Name, "want", f.WantErr, "got", verifyErr)
		fmt.Fprintf(stdout, "FAIL: got error %q, want %q\n", verifyErr, f.WantErr)
		return 1
	}
	fmt.Fprintf(stdout, "OK (%v)\n", verifyErr)
	return 0
}

type config struct {
	fixturesDir string
	name        string
	list        bool
}

// parseFlags parses CLI arguments into a config. Returns the config, whether
// the caller should exit immediately, and the exit code.
func parseFlags(args []string) (config, bool, int) {
	var cfg config
	fs := flag.NewFlagSet("proofcheck", flag.ContinueOnError)
	fs.StringVar(&cfg.fixturesDir, "fixtures", "testdata/fixtures", "directory of fixture JSON files")
	fs.StringVar(&cfg.name, "name", "", "fixture name to run, e.g. account/success")
	fs.BoolVar(&cfg.list, "list", false, "list fixture names and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, true, 2
	}

	if !cfg.list && cfg.name == "" {
		fmt.Fprintln(os.Stderr, "proofcheck: -name is required unless -list is set")
		return cfg, true, 2
	}

	return cfg, false, 0
}
