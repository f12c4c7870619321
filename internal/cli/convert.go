package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/timeconv/internal/domain/entity"
	"github.com/amirhossein-jamali/timeconv/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timeconv/internal/domain/usecase/conversion"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

type convertOptions struct {
	decimals int
	output   string
}

func newConvertCommand(root *rootOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert UNIT VALUE",
		Short: "Convert a quantity into every supported unit",
		Example: `  timeconv convert h 1.5
  timeconv convert --decimals 4 -o json d 3
  timeconv convert ms -- -1500`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var decimals *int
			if cmd.Flags().Changed("decimals") {
				decimals = &opts.decimals
			}
			return runConvert(cmd.Context(), cmd.OutOrStdout(), root, opts.output, args[0], args[1], decimals)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.decimals, "decimals", "d", timedata.DefaultDecimals, "Number of fraction digits in the result")
	flags.StringVarP(&opts.output, "output", "o", outputTable, "Output format: table or json")

	return cmd
}

func runConvert(ctx context.Context, out io.Writer, root *rootOptions, output, unit, rawValue string, decimals *int) error {
	if output != outputTable && output != outputJSON {
		return fmt.Errorf("unsupported output format %q", output)
	}

	quantity, err := entity.ParseQuantity(rawValue)
	if err != nil {
		return err
	}

	cfg, err := root.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// History, caching and metrics only apply to the service
	svc := conversion.NewConversionService(
		nil,
		nil,
		nil,
		timeprovider.NewRealTimeProvider(),
		logger.NewNoopLogger(),
		conversion.Settings{
			DefaultDecimals: cfg.Conversion.DefaultDecimals,
			MaxDecimals:     cfg.Conversion.MaxDecimals,
		},
	)

	result, err := svc.Convert(ctx, usecase.ConversionRequest{
		Unit:     unit,
		Quantity: quantity,
		Decimals: decimals,
	})
	if err != nil {
		return err
	}

	if output == outputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Result)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UNIT\tVALUE")
	for _, u := range timedata.Units() {
		fmt.Fprintf(w, "%s\t%s\n", u, strconv.FormatFloat(result.Result.Get(u), 'f', -1, 64))
	}
	return w.Flush()
}
