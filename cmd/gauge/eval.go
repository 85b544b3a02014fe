// Eval command parses a quantity expression and prints it in coherent
// reference units.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/gauge/pkg/unit"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>...",
	Short: "Evaluate a quantity expression",
	Long: `Eval parses a quantity expression and prints the value reduced to
coherent reference units.

Example:
  gauge eval 90 km/h
  gauge eval "2.5 kg·m²·s⁻²"
  gauge eval 3 mol/L`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

// quantityJSON is the --json output shape shared by eval and convert.
type quantityJSON struct {
	Value      float64 `json:"value"`
	Dimensions string  `json:"dimensions"`
	Display    string  `json:"display"`
}

func runEval(cmd *cobra.Command, args []string) error {
	table, store, err := loadVocabulary()
	if err != nil {
		return err
	}
	defer store.Detach()

	expr := strings.Join(args, " ")
	q, err := table.Parse(expr)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", expr, err)
	}

	if flagJSON {
		return printQuantityJSON(q)
	}
	fmt.Println(q)
	return nil
}

func printQuantityJSON(q unit.Quantity) error {
	out, err := json.MarshalIndent(quantityJSON{
		Value:      q.Value(),
		Dimensions: q.Dims().String(),
		Display:    q.String(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal quantity: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
