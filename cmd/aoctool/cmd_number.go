package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoclib/digits"
	"github.com/katalvlaran/aoclib/euclid"
)

var errNoSolution = errors.New("no solution")

func parseInts(args []string) ([]int64, error) {
	out := make([]int64, len(args))
	for i, s := range args {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

func (a *app) digitsCmd() *cobra.Command {
	var count bool
	cmd := &cobra.Command{
		Use:   "digits N",
		Short: "Print the decimal digits of N, most significant first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseInts(args)
			if err != nil {
				return err
			}
			if count {
				fmt.Fprintln(cmd.OutOrStdout(), digits.Count(ns[0]))
				return nil
			}
			parts := make([]string, 0, digits.Count(ns[0]))
			for d := range digits.Seq(ns[0]) {
				parts = append(parts, strconv.FormatInt(d, 10))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))

			return nil
		},
	}
	cmd.Flags().BoolVar(&count, "count", false, "print only the number of digits")

	return cmd
}

func (a *app) gcdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd A B [C...]",
		Short: "Greatest common divisor of all arguments",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseInts(args)
			if err != nil {
				return err
			}
			g := ns[0]
			for _, n := range ns[1:] {
				g = euclid.Gcd(g, n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), g)

			return nil
		},
	}
}

func (a *app) lcmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lcm A B [C...]",
		Short: "Least common multiple of all arguments",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseInts(args)
			if err != nil {
				return err
			}
			l := ns[0]
			for _, n := range ns[1:] {
				l = euclid.Lcm(l, n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), l)

			return nil
		},
	}
}

func (a *app) modpowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modpow BASE EXP MOD",
		Short: "BASE^EXP mod MOD without overflow",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseInts(args)
			if err != nil {
				return err
			}
			if ns[2] <= 0 {
				return fmt.Errorf("%w: %d", euclid.ErrNonPositiveModulus, ns[2])
			}
			fmt.Fprintln(cmd.OutOrStdout(), euclid.ModPow(ns[0], ns[1], ns[2]))

			return nil
		},
	}
}

func (a *app) modinvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modinv A N",
		Short: "Multiplicative inverse of A modulo N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseInts(args)
			if err != nil {
				return err
			}
			inv, err := euclid.ModInverse(ns[0], ns[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), inv)

			return nil
		},
	}
}

// parseCongruence reads "r:m" as x ≡ r (mod m).
func parseCongruence(s string) (r, m int64, err error) {
	rs, ms, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("congruence %q: want REM:MOD", s)
	}
	if r, err = strconv.ParseInt(rs, 10, 64); err != nil {
		return 0, 0, fmt.Errorf("congruence %q: %w", s, err)
	}
	if m, err = strconv.ParseInt(ms, 10, 64); err != nil {
		return 0, 0, fmt.Errorf("congruence %q: %w", s, err)
	}

	return r, m, nil
}

// solve runs CRT and reports the solution together with the combined modulus.
func (a *app) solve(rems, mods []int64) (x, lcm int64, err error) {
	x, ok, err := euclid.CRT(rems, mods)
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		a.log.Info("system is inconsistent", zap.Int64s("rems", rems), zap.Int64s("mods", mods))
		return 0, 0, errNoSolution
	}
	lcm = 1
	for _, m := range mods {
		lcm = euclid.Lcm(lcm, m)
	}
	a.log.Debug("crt solved", zap.Int("congruences", len(mods)), zap.Int64("x", x))

	return x, lcm, nil
}

func (a *app) crtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crt REM:MOD [REM:MOD...]",
		Short: "Solve a system of congruences x ≡ REM (mod MOD)",
		Long: `crt prints the smallest non-negative x satisfying every congruence,
followed by the combined modulus. Moduli need not be coprime.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rems := make([]int64, len(args))
			mods := make([]int64, len(args))
			for i, s := range args {
				var err error
				if rems[i], mods[i], err = parseCongruence(s); err != nil {
					return err
				}
			}
			x, lcm, err := a.solve(rems, mods)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d (mod %d)\n", x, lcm)

			return nil
		},
	}
}

// parseSchedule reads "7,13,x,59"; x entries are skipped but keep their offset.
func parseSchedule(s string) (rems, ids []int64, err error) {
	for i, f := range strings.Split(strings.TrimSpace(s), ",") {
		if f == "x" {
			continue
		}
		id, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("bus %d: %w", i, err)
		}
		if id <= 0 {
			return nil, nil, fmt.Errorf("bus %d: id must be positive, got %d", i, id)
		}
		ids = append(ids, id)
		rems = append(rems, euclid.RemEuclid(-int64(i), id))
	}
	if len(ids) == 0 {
		return nil, nil, errors.New("schedule lists no buses")
	}

	return rems, ids, nil
}

func (a *app) busCmd() *cobra.Command {
	var depart int64
	cmd := &cobra.Command{
		Use:   "bus SCHEDULE",
		Short: "Earliest t where bus i departs at t+i, for a schedule like 7,13,x,x,59",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rems, ids, err := parseSchedule(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("depart") {
				best, wait := earliestBus(ids, depart)
				fmt.Fprintf(cmd.OutOrStdout(), "bus %d in %d minutes: %d\n", best, wait, best*wait)
			}
			t, _, err := a.solve(rems, ids)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)

			return nil
		},
	}
	cmd.Flags().Int64Var(&depart, "depart", 0, "also report the first bus leaving at or after this time")

	return cmd
}

// earliestBus returns the bus that leaves first at or after t and how long to wait.
func earliestBus(ids []int64, t int64) (id, wait int64) {
	id, wait = ids[0], euclid.RemEuclid(-t, ids[0])
	for _, b := range ids[1:] {
		if w := euclid.RemEuclid(-t, b); w < wait {
			id, wait = b, w
		}
	}

	return id, wait
}
