// Command dequebench prints how long deque operations take as the deque grows.
package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ngicks/deque/internal/timing"
)

var logger = loggo.GetLogger("dequebench")

func main() {
	cmd, err := newRootCmd(viper.New())
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "dequebench",
		Short: "Time deque operations over growing sizes",
		Long: `dequebench fills deques of increasing size and prints a timing table.

Every flag can also be set by an environment variable prefixed with DEQUEBENCH_,
e.g. DEQUEBENCH_IMPL=linked.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, errors.Trace(err)
	}
	return cmd, nil
}

// bindFlags defines flags on flags and binds them into v,
// so that each can also be set through a DEQUEBENCH_ environment variable.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	flags.String("impl", "all", "deque implementation: "+strings.Join(timing.Backings, "|")+"|all")
	flags.String("op", string(timing.OpAddLast), "timed operation: addlast|addfirst|get")
	flags.IntSlice("sizes", timing.DefaultSizes, "deque sizes to time")
	flags.String("log-level", "WARNING", "loggo level for the root logger")

	if err := v.BindPFlags(flags); err != nil {
		return errors.Annotate(err, "binding flags")
	}
	v.SetEnvPrefix("DEQUEBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// parseSizes accepts sizes either as parsed by the flag or as a comma or space
// separated string coming from DEQUEBENCH_SIZES, optionally in brackets.
func parseSizes(raw any) ([]int, error) {
	if s, ok := raw.(string); ok {
		fields := strings.FieldsFunc(strings.Trim(s, "[]"), func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		sizes, err := cast.ToIntSliceE(fields)
		if err != nil {
			logger.Debugf("parsing sizes %q: %v", s, err)
			return nil, errors.NotValidf("sizes %q", s)
		}
		return sizes, nil
	}
	sizes, err := cast.ToIntSliceE(raw)
	if err != nil {
		logger.Debugf("parsing sizes %v: %v", raw, err)
		return nil, errors.NotValidf("sizes %v", raw)
	}
	return sizes, nil
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	if err := loggo.ConfigureLoggers("<root>=" + v.GetString("log-level")); err != nil {
		return errors.Annotate(err, "configuring loggers")
	}

	op, err := timing.ParseOp(v.GetString("op"))
	if err != nil {
		return errors.Trace(err)
	}

	impls := timing.Backings
	if impl := v.GetString("impl"); impl != "all" {
		impls = []string{impl}
	}

	sizes, err := parseSizes(v.Get("sizes"))
	if err != nil {
		return errors.Trace(err)
	}
	logger.Infof("op = %s, impls = %v, sizes = %v", op, impls, sizes)

	h := timing.New()
	out := cmd.OutOrStdout()
	for _, impl := range impls {
		ctor, err := timing.Backing(impl)
		if err != nil {
			return errors.Trace(err)
		}
		samples, err := h.Run(op, ctor, sizes)
		if err != nil {
			return errors.Annotatef(err, "timing %s", impl)
		}
		fmt.Fprintf(out, "%s / %s\n", impl, op)
		timing.WriteTable(out, samples)
		fmt.Fprintln(out)
	}
	return nil
}
