// Command import loads the food nutrition workbook into the database
// offline, without starting the API server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"foodapi/config"
	"foodapi/importer"
	"foodapi/logger"
)

func main() {
	cmd := &cli.Command{
		Name:      "import",
		Usage:     "Load food records from an Excel workbook",
		ArgsUsage: "[workbook.xlsx]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "clear",
				Usage: "delete all existing records before importing",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "skip the confirmation prompt for --clear",
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Value: importer.DefaultBatchSize,
				Usage: "rows per committed batch",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	config.LoadEnv()

	path := cmd.Args().First()
	if path == "" {
		path = config.Getenv("FOOD_EXCEL_PATH", "food_nutrition_db.xlsx")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("workbook not found: %s", path)
	}

	if cmd.Bool("clear") && !cmd.Bool("yes") && !confirm("Delete all existing records and re-import? (y/N): ") {
		fmt.Println("import cancelled")
		return nil
	}

	logg, err := logger.New(config.Getenv("GIN_MODE", "debug"))
	if err != nil {
		return err
	}
	defer logg.Sync()

	db, err := config.ConnectDB(logg)
	if err != nil {
		return err
	}

	res, err := importer.Run(ctx, db, logg, importer.Options{
		Path:          path,
		ClearExisting: cmd.Bool("clear"),
		BatchSize:     int(cmd.Int("batch-size")),
	})
	if err != nil {
		return err
	}

	fmt.Printf("imported %d records, %d failures (%.1f%% success)\n",
		res.Success, res.Failure, res.SuccessRate())
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
