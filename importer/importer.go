// Package importer loads nutrition records from the source Excel
// workbook. It is a tolerant batch procedure: a bad row is logged and
// counted, never fatal; only an unreadable workbook or a failed batch
// commit aborts the run.
package importer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"foodapi/config"
	"foodapi/logger"
	"foodapi/repositories"
	"foodapi/schemas"
)

const (
	DefaultBatchSize = 100

	// Rows without a well-formed 4-digit year fall back to this.
	fallbackYear = "2023"
)

// Column labels as they appear in the source workbook's header row.
const (
	colFoodCd       = "식품코드"
	colFoodName     = "식품명"
	colGroupName    = "DB군"
	colResearchYear = "연도"
	colMakerName    = "지역 / 제조사"
	colRefName      = "성분표출처"
	colServingSize  = "1회제공량"
	colCalorie      = "에너지(㎉)"
	colCarbohydrate = "탄수화물(g)"
	colProtein      = "단백질(g)"
	colFat          = "지방(g)"
	colSugars       = "총당류(g)"
	colSodium       = "나트륨(㎎)"
	colCholesterol  = "콜레스테롤(㎎)"
	colSaturated    = "총 포화 지방산(g)"
	colTransFat     = "트랜스 지방산(g)"
)

type Options struct {
	Path          string
	ClearExisting bool
	BatchSize     int
}

type Result struct {
	Success int
	Failure int
}

func (r *Result) Total() int {
	return r.Success + r.Failure
}

func (r *Result) SuccessRate() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Success) / float64(r.Total()) * 100
}

// Run executes the import: ensure schema, optionally clear existing
// records, then create rows in batches with one commit per batch and a
// savepoint per row so a failed row never poisons its batch.
func Run(ctx context.Context, db *gorm.DB, log *logger.Logger, opts Options) (*Result, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	if err := config.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	f, err := excelize.OpenFile(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", opts.Path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read workbook %s: %w", opts.Path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("workbook %s has no header row", opts.Path)
	}
	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}
	data := rows[1:]
	log.Info("read workbook", "path", opts.Path, "rows", len(data))

	if opts.ClearExisting {
		if err := db.WithContext(ctx).Exec("DELETE FROM foods").Error; err != nil {
			return nil, fmt.Errorf("clear existing records: %w", err)
		}
		log.Info("cleared existing records")
	}

	res := &Result{}
	totalBatches := (len(data) + opts.BatchSize - 1) / opts.BatchSize

	for start := 0; start < len(data); start += opts.BatchSize {
		end := start + opts.BatchSize
		if end > len(data) {
			end = len(data)
		}
		batchNum := start/opts.BatchSize + 1
		log.Info("processing batch", "batch", batchNum, "total_batches", totalBatches)

		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for i, row := range data[start:end] {
				rowNum := start + i + 2 // 1-based, header is row 1

				payload := buildPayload(row, cols)
				if payload.FoodCd == "" || payload.FoodName == "" {
					log.Warn("skipping row: missing food code or name", "row", rowNum)
					res.Failure++
					continue
				}
				if err := schemas.ValidateStruct(payload); err != nil {
					log.Warn("skipping row: validation failed", "row", rowNum, "error", err)
					res.Failure++
					continue
				}

				// Savepoint per row: a duplicate code or other insert
				// failure rolls back this row only.
				err := tx.Transaction(func(rowTx *gorm.DB) error {
					_, err := repositories.NewFoodRepository(rowTx, log).Create(ctx, payload)
					return err
				})
				if err != nil {
					log.Warn("skipping row: create failed", "row", rowNum, "error", err)
					res.Failure++
					continue
				}
				res.Success++
			}
			return nil
		})
		if err != nil {
			return res, fmt.Errorf("commit batch %d: %w", batchNum, err)
		}
		log.Info("batch committed", "batch", batchNum, "success", res.Success, "failure", res.Failure)
	}

	log.Info("import finished",
		"success", res.Success,
		"failure", res.Failure,
		"success_rate", fmt.Sprintf("%.1f%%", res.SuccessRate()),
	)
	return res, nil
}

// mapColumns resolves header labels to column indexes. The business key
// and name columns must exist; anything else missing just yields blank or
// zero values.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, label := range header {
		cols[strings.TrimSpace(label)] = i
	}
	for _, required := range []string{colFoodCd, colFoodName} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("workbook is missing required column %q", required)
		}
	}
	return cols, nil
}

func buildPayload(row []string, cols map[string]int) *schemas.FoodCreate {
	year := safeStr(cell(row, cols, colResearchYear))
	if !isYear(year) {
		year = fallbackYear
	}

	return &schemas.FoodCreate{
		FoodCd:              safeStr(cell(row, cols, colFoodCd)),
		GroupName:           safeStr(cell(row, cols, colGroupName)),
		FoodName:            safeStr(cell(row, cols, colFoodName)),
		ResearchYear:        year,
		MakerName:           safeStr(cell(row, cols, colMakerName)),
		RefName:             safeStr(cell(row, cols, colRefName)),
		ServingSize:         safeStr(cell(row, cols, colServingSize)),
		Calorie:             safeFloat(cell(row, cols, colCalorie)),
		Carbohydrate:        safeFloat(cell(row, cols, colCarbohydrate)),
		Protein:             safeFloat(cell(row, cols, colProtein)),
		Fat:                 safeFloat(cell(row, cols, colFat)),
		Sugars:              safeFloat(cell(row, cols, colSugars)),
		Sodium:              safeFloat(cell(row, cols, colSodium)),
		Cholesterol:         safeFloat(cell(row, cols, colCholesterol)),
		SaturatedFattyAcids: safeFloat(cell(row, cols, colSaturated)),
		TransFat:            safeFloat(cell(row, cols, colTransFat)),
	}
}

func cell(row []string, cols map[string]int, label string) string {
	idx, ok := cols[label]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// safeStr normalizes a text cell: trimmed, with the "-" placeholder
// treated as empty.
func safeStr(v string) string {
	v = strings.TrimSpace(v)
	if v == "-" {
		return ""
	}
	return v
}

// safeFloat normalizes a numeric cell: blank, "-" or unparsable values
// become 0.
func safeFloat(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" || v == "-" {
		return ptr(0.0)
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil {
		return ptr(0.0)
	}
	return ptr(f)
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func ptr(f float64) *float64 {
	return &f
}
