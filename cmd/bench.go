package cmd

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seipan/bst/bst"
)

// mapBaseline is the unordered store the tree is measured against.
type mapBaseline struct {
	mp map[int]int
}

func newMapBaseline(size int) *mapBaseline {
	return &mapBaseline{mp: make(map[int]int, size)}
}

func (db *mapBaseline) Set(key int, value int) {
	db.mp[key] = value
}

func (db *mapBaseline) Len() int {
	return len(db.mp)
}

// ordered returns the values sorted by key, which a map can only do by sorting.
func (db *mapBaseline) ordered() []int {
	keys := make([]int, 0, len(db.mp))
	for key := range db.mp {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	values := make([]int, len(keys))
	for i, key := range keys {
		values[i] = db.mp[key]
	}
	return values
}

func newBenchCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:     "bench",
		Short:   "Compare tree insertion and ordered walk against a map baseline",
		Example: `bst bench -N 100000`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindConfig(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if v.GetBool(cfgDebug) {
				pterm.EnableDebugMessages()
			}
			n := v.GetInt(cfgCount)
			if n <= 0 {
				return errors.Errorf("count must be positive, got %d", n)
			}
			// a shuffled permutation keeps the unbalanced tree shallow on average
			keys := rand.New(rand.NewSource(v.GetInt64(cfgSeed))).Perm(n)

			tree := bst.NewOrdered[int]()
			timeTree, err := measure(func() error {
				return SetTree(keys, tree)
			})
			if err != nil {
				return errors.WithMessage(err, "tree insert")
			}
			var sumTree, sumMap int
			walkTree, _ := measure(func() error {
				sumTree = WalkTree(tree)
				return nil
			})

			mdp := newMapBaseline(n)
			timeMap, _ := measure(func() error {
				SetMap(keys, mdp)
				return nil
			})
			walkMap, _ := measure(func() error {
				sumMap = WalkMap(mdp)
				return nil
			})
			if mdp.Len() != tree.Len() || sumMap != sumTree {
				return errors.Errorf("stores disagree: map %d keys (sum %d), tree %d keys (sum %d)",
					mdp.Len(), sumMap, tree.Len(), sumTree)
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
				{"Store", "Keys", "Insert", "Ordered walk"},
				{"bst", fmt.Sprint(tree.Len()), timeTree.String(), walkTree.String()},
				{"map", fmt.Sprint(mdp.Len()), timeMap.String(), walkMap.String()},
			}).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
	cmd.Flags().IntP(cfgCount, "N", 1000, "number of keys to insert")
	cmd.Flags().Int64(cfgSeed, 1, "seed for the key permutation")
	cmd.Flags().Bool(cfgDebug, false, "Print progress debug messages")
	return cmd
}

func SetTree(keys []int, tree *bst.Tree[int]) error {
	pterm.Debug.Printfln("inserting %d keys into the tree", len(keys))
	for _, k := range keys {
		if err := tree.Insert(k); err != nil {
			return err
		}
	}
	return nil
}

func WalkTree(tree *bst.Tree[int]) int {
	pterm.Debug.Printfln("walking %d keys in order", tree.Len())
	sum := 0
	tree.ForEach(func(k int) {
		sum += k
	})
	return sum
}

func SetMap(keys []int, mdp *mapBaseline) {
	pterm.Debug.Printfln("inserting %d keys into the map", len(keys))
	for _, k := range keys {
		mdp.Set(k, k)
	}
}

func WalkMap(mdp *mapBaseline) int {
	sum := 0
	for _, v := range mdp.ordered() {
		sum += v
	}
	return sum
}

func measure(fnc func() error) (time.Duration, error) {
	start := time.Now()
	err := fnc()
	end := time.Now()
	return end.Sub(start), err
}
