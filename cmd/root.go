/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seipan/bst/bst"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "bst [values...]",
		Short: "Build a binary search tree from values and print a traversal",
		Long: `Build an unbalanced binary search tree from the given values and print them
in the requested traversal order. Values are read from stdin when no
arguments are given.`,
		Example:       `bst --order pre-order 5 3 8 3`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindConfig(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args, err = readValues(cmd.InOrStdin())
				if err != nil {
					return errors.WithMessage(err, "read stdin")
				}
			}
			return build(cmd.OutOrStdout(), cfg, args)
		},
	}
	registerFlags(cmd.Flags())
	cmd.AddCommand(newBenchCmd())
	return cmd
}

func readValues(r io.Reader) ([]string, error) {
	var values []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		values = append(values, sc.Text())
	}
	return values, sc.Err()
}

func build(w io.Writer, cfg config, args []string) error {
	switch cfg.Kind {
	case kindInt:
		return render(w, cfg, bst.NewOrdered[int64](), args, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
	case kindFloat:
		return render(w, cfg, bst.NewOrdered[float64](), args, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	case kindString:
		return render(w, cfg, bst.NewOrdered[string](), args, func(s string) (string, error) {
			return s, nil
		})
	case kindAuto:
		// auto keeps the runtime kind lock: the first value decides what the rest must be.
		return render(w, cfg, bst.New[any](nil), args, parseAuto)
	}
	return errors.Errorf("unknown kind %q", cfg.Kind)
}

func parseAuto(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return s, nil
}

func render[T any](w io.Writer, cfg config, tree *bst.Tree[T], args []string, parse func(string) (T, error)) error {
	for _, arg := range args {
		value, err := parse(arg)
		if err != nil {
			return errors.Wrapf(err, "parse %q as %s", arg, cfg.Kind)
		}
		if err := tree.Insert(value); err != nil {
			return errors.WithMessagef(err, "insert %q", arg)
		}
	}

	values := lo.Map(tree.Values(cfg.Order), func(v T, _ int) string {
		return fmt.Sprint(v)
	})
	fmt.Fprintln(w, strings.Join(values, " "))

	head := "-"
	if h, ok := tree.Head(); ok {
		head = fmt.Sprint(h)
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Order", "Size", "Head", "Empty"},
		{cfg.Order.String(), strconv.Itoa(tree.Len()), head, strconv.FormatBool(tree.IsEmpty())},
	}).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)

	if cfg.Debug {
		fmt.Fprintln(w, tree.String())
	}
	return nil
}

func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
