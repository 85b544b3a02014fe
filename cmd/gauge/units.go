// Units command manages the stored unit vocabulary.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/gauge/pkg/dimension"
	"github.com/dukaforge/gauge/pkg/unit"
)

var (
	flagUnitScale  float64
	flagUnitDims   string
	flagRemoveKind string
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Manage user-defined units and prefixes",
}

var unitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user-defined units and prefixes",
	Args:  cobra.NoArgs,
	RunE:  runUnitsList,
}

var unitsAddCmd = &cobra.Command{
	Use:   "add <symbol>",
	Short: "Define a unit",
	Long: `Add stores a unit definition: its symbol, its scale to the coherent
reference unit, and its dimensions in canonical form.

Example:
  gauge units add fur --scale 201.168 --dims "L"
  gauge units add gee --scale 9.80665 --dims "L T^-2"
  gauge units add widget --scale 1 --dims "1"`,
	Args: cobra.ExactArgs(1),
	RunE: runUnitsAdd,
}

var unitsAddPrefixCmd = &cobra.Command{
	Use:   "add-prefix <symbol>",
	Short: "Define a prefix",
	Long: `Add-prefix stores a multiplier prefix that composes with any
registered unit.

Example:
  gauge units add-prefix myria --scale 10000`,
	Args: cobra.ExactArgs(1),
	RunE: runUnitsAddPrefix,
}

var unitsRemoveCmd = &cobra.Command{
	Use:   "remove <symbol>",
	Short: "Remove a user-defined unit or prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnitsRemove,
}

func init() {
	unitsAddCmd.Flags().Float64Var(&flagUnitScale, "scale", 1, "scale to the coherent reference unit")
	unitsAddCmd.Flags().StringVar(&flagUnitDims, "dims", "1", `dimensions in canonical form, e.g. "L T^-2"`)
	unitsAddPrefixCmd.Flags().Float64Var(&flagUnitScale, "scale", 1, "multiplier applied to the prefixed unit")
	unitsRemoveCmd.Flags().StringVar(&flagRemoveKind, "kind", "unit", `what to remove: "unit" or "prefix"`)

	unitsCmd.AddCommand(unitsListCmd)
	unitsCmd.AddCommand(unitsAddCmd)
	unitsCmd.AddCommand(unitsAddPrefixCmd)
	unitsCmd.AddCommand(unitsRemoveCmd)
}

func runUnitsList(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	units, err := store.Units()
	if err != nil {
		return fmt.Errorf("listing units: %w", err)
	}
	prefixes, err := store.Prefixes()
	if err != nil {
		return fmt.Errorf("listing prefixes: %w", err)
	}

	if flagJSON {
		type unitJSON struct {
			Symbol string  `json:"symbol"`
			Scale  float64 `json:"scale"`
			Dims   string  `json:"dims"`
		}
		type prefixJSON struct {
			Symbol string  `json:"symbol"`
			Factor float64 `json:"factor"`
		}
		out := struct {
			Units    []unitJSON   `json:"units"`
			Prefixes []prefixJSON `json:"prefixes"`
		}{Units: []unitJSON{}, Prefixes: []prefixJSON{}}
		for _, u := range units {
			out.Units = append(out.Units, unitJSON{Symbol: u.Symbol, Scale: u.Scale, Dims: u.Dims.String()})
		}
		for _, p := range prefixes {
			out.Prefixes = append(out.Prefixes, prefixJSON{Symbol: p.Symbol, Factor: p.Factor})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal listing: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(units) == 0 && len(prefixes) == 0 {
		fmt.Println("no user-defined units or prefixes")
		return nil
	}
	for _, u := range units {
		fmt.Printf("unit    %-8s scale=%g dims=%s\n", u.Symbol, u.Scale, u.Dims)
	}
	for _, p := range prefixes {
		fmt.Printf("prefix  %-8s factor=%g\n", p.Symbol, p.Factor)
	}
	return nil
}

func runUnitsAdd(cmd *cobra.Command, args []string) error {
	symbol := args[0]

	dims, err := dimension.Parse(flagUnitDims)
	if err != nil {
		return fmt.Errorf("parsing --dims: %w", err)
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	// Reject symbols that would collide with the built-in vocabulary
	// before they poison every later table load.
	seed, err := builtinTable()
	if err != nil {
		return fmt.Errorf("building built-in table: %w", err)
	}
	if _, ok := seed.LookupUnit(symbol); ok {
		return fmt.Errorf("unit %q: %w (built-in)", symbol, unit.ErrDuplicateSymbol)
	}

	if err := store.SaveUnit(unit.Unit{Symbol: symbol, Scale: flagUnitScale, Dims: dims}); err != nil {
		return err
	}
	fmt.Printf("defined unit %s (scale=%g dims=%s)\n", symbol, flagUnitScale, dims)
	return nil
}

func runUnitsAddPrefix(cmd *cobra.Command, args []string) error {
	symbol := args[0]

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	seed, err := builtinTable()
	if err != nil {
		return fmt.Errorf("building built-in table: %w", err)
	}
	if _, ok := seed.LookupPrefix(symbol); ok {
		return fmt.Errorf("prefix %q: %w (built-in)", symbol, unit.ErrDuplicateSymbol)
	}

	if err := store.SavePrefix(unit.Prefix{Symbol: symbol, Factor: flagUnitScale}); err != nil {
		return err
	}
	fmt.Printf("defined prefix %s (factor=%g)\n", symbol, flagUnitScale)
	return nil
}

func runUnitsRemove(cmd *cobra.Command, args []string) error {
	symbol := args[0]

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	switch flagRemoveKind {
	case "unit":
		err = store.DeleteUnit(symbol)
	case "prefix":
		err = store.DeletePrefix(symbol)
	default:
		return fmt.Errorf("invalid --kind %q (expected unit or prefix)", flagRemoveKind)
	}
	if err != nil {
		return err
	}
	fmt.Printf("removed %s %s\n", flagRemoveKind, symbol)
	return nil
}
