// Command rangectl normalizes range specs, for example
//
//	rangectl --add 6 --contains 5,9 "1~5,8~10"
//
// prints the canonical form 1~6,8~10 followed by the membership of 5 and 9.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/rangeset/pkg/rangeset"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, specs, err := loadConfig(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer log.Sync()

	specs = append(cfg.Specs, specs...)
	if len(specs) == 0 {
		log.Warn("no range spec given")
		return 0
	}

	var add, remove *rangeset.RangeSet
	if add, err = rangeset.Parse(cfg.Add); err != nil {
		log.Error("invalid --add", zap.Error(err))
		return 1
	}
	if remove, err = rangeset.Parse(cfg.Remove); err != nil {
		log.Error("invalid --remove", zap.Error(err))
		return 1
	}

	status := 0
	for _, spec := range specs {
		set, err := rangeset.Parse(spec)
		if err != nil {
			log.Error("invalid range spec", zap.String("spec", spec), zap.Error(err))
			status = 1
			continue
		}
		set.AddSet(add)
		set.RemoveSet(remove)
		log.Debug("normalized",
			zap.String("spec", spec),
			zap.Stringer("set", set),
			zap.Uint64("size", set.Size()),
			zap.Int("ranges", set.Len()),
		)

		fmt.Fprintln(stdout, set)
		for _, v := range cfg.Contains {
			fmt.Fprintf(stdout, "  %s: %t\n", v, set.Contains(strings.TrimSpace(v)))
		}
		if cfg.Expand {
			fmt.Fprintf(stdout, "  %s\n", expand(set, cfg.Limit))
		}
	}
	return status
}

// expand renders at most limit values of set.
func expand(set *rangeset.RangeSet, limit int) string {
	values := make([]string, 0, min(uint64(max(limit, 0)), set.Size()))
	it := set.Iterate()
	for it.Next() {
		if len(values) == limit {
			values = append(values, "...")
			break
		}
		values = append(values, it.Range().Format(it.Value()))
	}
	return strings.Join(values, ",")
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	encoder := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoder),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Named("rangectl"), nil
}
