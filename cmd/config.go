package cmd

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/seipan/bst/bst"
)

const (
	envPrefix = "bst"

	cfgKind  = "kind"
	cfgOrder = "order"
	cfgDebug = "debug"

	cfgCount = "count"
	cfgSeed  = "seed"

	kindInt    = "int"
	kindFloat  = "float"
	kindString = "string"
	kindAuto   = "auto"
)

var kinds = []string{kindInt, kindFloat, kindString, kindAuto}

type config struct {
	Kind  string
	Order bst.Order
	Debug bool
}

// orderFlag validates --order while flags are parsed.
type orderFlag struct {
	order bst.Order
}

var _ pflag.Value = (*orderFlag)(nil)

func (f *orderFlag) String() string {
	return f.order.String()
}

func (f *orderFlag) Set(s string) error {
	o, err := bst.ParseOrder(s)
	if err != nil {
		return err
	}
	f.order = o
	return nil
}

func (f *orderFlag) Type() string {
	return "order"
}

// registerFlags registers the tree flags with the provided flag set.
func registerFlags(fs *pflag.FlagSet) {
	fs.String(cfgKind, kindInt, "Element kind: int, float, string or auto")
	fs.Var(&orderFlag{order: bst.InOrder}, cfgOrder, "Traversal order: pre-order, in-order or post-order")
	fs.Bool(cfgDebug, false, "Print the root and its immediate children")
}

// bindConfig makes every flag in fs readable from v, with BST_* environment
// variables filling in flags that were not set on the command line.
func bindConfig(v *viper.Viper, fs *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v.BindPFlags(fs)
}

func loadConfig(v *viper.Viper) (config, error) {
	order, err := bst.ParseOrder(v.GetString(cfgOrder))
	if err != nil {
		return config{}, errors.WithMessage(err, cfgOrder)
	}
	kind := v.GetString(cfgKind)
	if !lo.Contains(kinds, kind) {
		return config{}, errors.Errorf("unknown kind %q, want one of %v", kind, kinds)
	}
	return config{
		Kind:  kind,
		Order: order,
		Debug: v.GetBool(cfgDebug),
	}, nil
}
