// Command bytebuffer-bench times repeated write and read cycles of the
// twelve-array sample payload and optionally compares other codecs.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/quickwritereader/bytebuffer/bench"
	"github.com/quickwritereader/bytebuffer/compare"
	"github.com/quickwritereader/bytebuffer/config"
	"github.com/quickwritereader/bytebuffer/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var configPath string

	flagSet := pflag.NewFlagSet("bytebuffer-bench", pflag.ContinueOnError)
	flagSet.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flagSet.IntP("iterations", "n", 0, "write and read cycles (overrides config)")
	flagSet.Int("capacity", 0, "initial writer capacity in bytes (overrides config)")
	flagSet.Bool("pooled", false, "take writer buffers from the shared pool")
	flagSet.StringSlice("compare", nil, fmt.Sprintf("codecs to compare against, from %v", compare.Names()))
	flagSet.String("log-backend", "", "log backend: zap, logrus or nop")
	flagSet.String("log-level", "", "log level: debug, info, warn or error")
	flagSet.Bool("print", true, "print every decoded array")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(flagSet, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Backend, cfg.Log.Level)
	if err != nil {
		return err
	}
	if z, ok := logger.(logging.Zap); ok {
		defer z.Sync() //nolint:errcheck
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := bench.Run(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if cfg.PrintDecoded {
		fmt.Fprint(stdout, rep.Decoded.Format())
	}
	printReport(stdout, rep)
	return nil
}

// applyFlags copies only the flags set on the command line over cfg.
func applyFlags(flagSet *pflag.FlagSet, cfg *config.Config) error {
	var err error
	flagSet.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "iterations":
			cfg.Iterations, err = flagSet.GetInt("iterations")
		case "capacity":
			cfg.InitialCapacity, err = flagSet.GetInt("capacity")
		case "pooled":
			cfg.Pooled, err = flagSet.GetBool("pooled")
		case "compare":
			cfg.Compare, err = flagSet.GetStringSlice("compare")
		case "log-backend":
			cfg.Log.Backend, err = flagSet.GetString("log-backend")
		case "log-level":
			cfg.Log.Level, err = flagSet.GetString("log-level")
		case "print":
			cfg.PrintDecoded, err = flagSet.GetBool("print")
		}
	})
	return err
}

func printReport(out io.Writer, rep *bench.Report) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "codec\tsize\twrite/op\tread/op\n")
	fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", compare.NameByteBuffer, rep.Size, rep.PerWrite(), rep.PerRead())
	for _, c := range rep.Compare {
		n := time.Duration(rep.Iterations)
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", c.Name, c.Size, c.Encode/n, c.Decode/n)
	}
	tw.Flush()
	fmt.Fprintf(out, "cycles: %d  capacity: %d  pooled: %t  blake3: %s\n",
		rep.Iterations, rep.Capacity, rep.Pooled, rep.Digest)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `bytebuffer-bench packs the sample payload (one jagged array of each
element kind) into a single reused writer, materializes it once, and
decodes it back, reporting per-cycle timings.

Usage:
  bytebuffer-bench [flags]

Flags:
%s`, flagSet.FlagUsages())
}
