// Convert command re-expresses a quantity in a target unit.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagConvertTo string

var convertCmd = &cobra.Command{
	Use:   "convert <expression>... --to <unit>",
	Short: "Convert a quantity to another unit",
	Long: `Convert parses a quantity expression and prints its value in the
target unit. The source and target must share the same dimensions.

Example:
  gauge convert 90 km/h --to m/s
  gauge convert 2 d --to h
  gauge convert 2 bar --to hPa`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&flagConvertTo, "to", "", "target unit expression")
	convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	table, store, err := loadVocabulary()
	if err != nil {
		return err
	}
	defer store.Detach()

	expr := strings.Join(args, " ")
	q, err := table.Parse(expr)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", expr, err)
	}

	value, err := q.In(table, flagConvertTo)
	if err != nil {
		return fmt.Errorf("converting %q to %q: %w", expr, flagConvertTo, err)
	}

	if flagJSON {
		out, err := json.MarshalIndent(struct {
			Value float64 `json:"value"`
			Unit  string  `json:"unit"`
		}{Value: value, Unit: flagConvertTo}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal conversion: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%g %s\n", value, flagConvertTo)
	return nil
}
