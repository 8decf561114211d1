package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/objcore/errs"
	"github.com/sarchlab/objcore/hooking"
	"github.com/spf13/cobra"
)

const demoHook = "spot"

type hookHost struct {
	*hooking.HookableBase
}

type labeledListener struct {
	priority int
	label    string
	breaks   bool
}

var hooksCmd = &cobra.Command{
	Use:   "hooks PRIORITY:LABEL...",
	Short: "Show the order in which hook listeners run.",
	Long: "`hooks -- -1:a -5:b 0:c 2:d!` registers one listener per " +
		"argument and dispatches the hook once. A label ending with ! " +
		"breaks the hook. Put -- before negative priorities.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listeners, err := parseListeners(args)
		if err != nil {
			return err
		}

		host := &hookHost{}
		host.HookableBase = hooking.NewHookableBase(host)

		tracer := hooking.NewCountTracer(nil)
		host.AcceptProbe(tracer)
		if verbose {
			host.AcceptProbe(hooking.NewLogProbe(logger))
		}

		labels := make(map[int]labeledListener)
		for _, l := range listeners {
			index := host.OnHook(demoHook, labelFunc(l),
				hooking.WithPriority(l.priority))
			labels[index] = l
		}

		results, b, err := host.Dispatch(demoHook)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range results {
			fmt.Fprintf(out, "%d\t%d\t%v\n",
				r.Index, labels[r.Index].priority, r.Value)
		}

		if b != nil {
			fmt.Fprintf(out, "broken by %d at priority %d: %v\n",
				b.Index, b.Priority, b.Payload)
		}

		fmt.Fprintf(out, "%d listener(s) ran\n", tracer.Count(demoHook))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(hooksCmd)
}

func labelFunc(l labeledListener) hooking.Func {
	return func(any, ...any) (any, error) {
		if l.breaks {
			return nil, hooking.Break(l.label)
		}

		return l.label, nil
	}
}

func parseListeners(args []string) ([]labeledListener, error) {
	listeners := make([]labeledListener, 0, len(args))

	for _, arg := range args {
		priority, label, found := strings.Cut(arg, ":")
		if !found {
			return nil, errs.New(errs.InvalidConfig,
				"listener must be PRIORITY:LABEL").
				With("arg", arg)
		}

		p, err := strconv.Atoi(priority)
		if err != nil {
			return nil, errs.New(errs.InvalidConfig,
				"priority must be an integer").
				With("arg", arg)
		}

		l := labeledListener{priority: p, label: label}
		if strings.HasSuffix(label, "!") {
			l.breaks = true
			l.label = strings.TrimSuffix(label, "!")
		}

		if l.label == "" {
			return nil, errs.New(errs.EmptyName, "label must not be empty").
				With("arg", arg)
		}

		listeners = append(listeners, l)
	}

	return listeners, nil
}
