package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmc/exercises"
	"github.com/katalvlaran/lvmc/montecarlo"
	"github.com/spf13/cobra"
)

// newDrillCmd groups the small warm-up exercises, one subcommand each.
func newDrillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Run one of the warm-up exercises",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "yesno <bool>",
			Short: "Print Yes or No",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := strconv.ParseBool(args[0])
				if err != nil {
					return fmt.Errorf("parsing %q: %w", args[0], err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), exercises.YesNo(b))
				return nil
			},
		},
		&cobra.Command{
			Use:   "negative <int>",
			Short: "Print -|v|",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseInts(args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), exercises.Negative(v[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "sort <int>...",
			Short: "Print the values sorted ascending",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseInts(args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), joinInts(exercises.SortedCopy(v)))
				return nil
			},
		},
		&cobra.Command{
			Use:   "filter [state]",
			Short: "Print the fixture cities in a state (default AZ)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				state := "AZ"
				if len(args) == 1 {
					state = strings.ToUpper(args[0])
				}
				for _, c := range exercises.FilterByState(exercises.ArizonaCities, state) {
					fmt.Fprintln(cmd.OutOrStdout(), c)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "multiply <a> <b>",
			Short: "Print a*b",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseInts(args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), exercises.Multiply(v[0], v[1]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "fizzbuzz <n>",
			Short: "Print FizzBuzz for 1..n",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseInts(args)
				if err != nil {
					return err
				}
				for _, w := range exercises.FizzBuzz(v[0]) {
					fmt.Fprintln(cmd.OutOrStdout(), w)
				}
				return nil
			},
		},
		newRandomDrillCmd(),
		&cobra.Command{
			Use:   "pressure <height>...",
			Short: "Print air pressure in Pa at each height in metres",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				hs := make([]float64, len(args))
				for i, a := range args {
					h, err := strconv.ParseFloat(a, 64)
					if err != nil {
						return fmt.Errorf("parsing height %q: %w", a, err)
					}
					hs[i] = h
				}
				for i, p := range exercises.AirPressureSeries(hs) {
					fmt.Fprintf(cmd.OutOrStdout(), "%g\t%.2f\n", hs[i], p)
				}
				return nil
			},
		},
	)
	return cmd
}

func newRandomDrillCmd() *cobra.Command {
	var (
		seed   int64
		lo, hi int
		count  int
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a coin flip and count integers drawn from [lo, hi)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := montecarlo.NewRand(resolveSeed(seed))
			vals, err := exercises.RandomInts(r, lo, hi, count)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), exercises.YesNo(exercises.RandomBool(r)))
			fmt.Fprintln(cmd.OutOrStdout(), joinInts(vals))
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed; 0 uses the default seed, -1 derives one from the clock")
	cmd.Flags().IntVar(&lo, "lo", 1, "inclusive lower bound")
	cmd.Flags().IntVar(&hi, "hi", 101, "exclusive upper bound")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of integers")
	return cmd
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
