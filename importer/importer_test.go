package importer

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"foodapi/logger"
	"foodapi/models"
)

var header = []interface{}{
	colFoodCd, colGroupName, colFoodName, colResearchYear, colMakerName,
	colRefName, colServingSize, colCalorie, colCarbohydrate, colProtein,
	colFat, colSugars, colSodium, colCholesterol, colSaturated, colTransFat,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return db
}

// writeWorkbook saves an xlsx with the fixed header row followed by the
// given data rows and returns its path.
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	path := filepath.Join(t.TempDir(), "food.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func sampleRow(foodCd, foodName string) []interface{} {
	return []interface{}{
		foodCd, "가공식품", foodName, "2023", "테스트제조사",
		"식약처", "100g", 250, 30.5, 8.2, 12, 5.5, 320, 15, 3.1, 0,
	}
}

func countFoods(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Food{}).Count(&n).Error)
	return n
}

func TestRunImportsAllRows(t *testing.T) {
	db := newTestDB(t)
	path := writeWorkbook(t, [][]interface{}{
		sampleRow("D001", "김치찌개"),
		sampleRow("D002", "된장찌개"),
		sampleRow("D003", "순두부찌개"),
	})

	res, err := Run(context.Background(), db, logger.NewNop(), Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Success)
	assert.Equal(t, 0, res.Failure)
	assert.InDelta(t, 100.0, res.SuccessRate(), 0.01)
	assert.EqualValues(t, 3, countFoods(t, db))
}

func TestRunSkipsRowsMissingKeyOrName(t *testing.T) {
	db := newTestDB(t)
	path := writeWorkbook(t, [][]interface{}{
		sampleRow("D001", "김치찌개"),
		sampleRow("", "이름만 있는 식품"),
		sampleRow("D003", ""),
		sampleRow("-", "코드가 대시"),
		sampleRow("D005", "정상 식품"),
	})

	res, err := Run(context.Background(), db, logger.NewNop(), Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Success)
	assert.Equal(t, 3, res.Failure)
	assert.EqualValues(t, 2, countFoods(t, db))
}

func TestRunNormalizesCells(t *testing.T) {
	db := newTestDB(t)
	row := sampleRow("D001", "김치찌개")
	row[3] = "202X" // malformed year falls back
	row[7] = "-"    // dash numeric becomes 0
	row[8] = ""     // blank numeric becomes 0
	row[9] = "n/a"  // unparsable numeric becomes 0
	path := writeWorkbook(t, [][]interface{}{row})

	res, err := Run(context.Background(), db, logger.NewNop(), Options{Path: path})
	require.NoError(t, err)
	require.Equal(t, 1, res.Success)

	var food models.Food
	require.NoError(t, db.First(&food).Error)
	assert.Equal(t, fallbackYear, food.ResearchYear)
	assert.Zero(t, food.Calorie)
	assert.Zero(t, food.Carbohydrate)
	assert.Zero(t, food.Protein)
	assert.Equal(t, 12.0, food.Fat)
}

func TestRunCountsDuplicatesAsFailures(t *testing.T) {
	db := newTestDB(t)
	path := writeWorkbook(t, [][]interface{}{
		sampleRow("D001", "김치찌개"),
		sampleRow("D002", "된장찌개"),
	})

	_, err := Run(context.Background(), db, logger.NewNop(), Options{Path: path})
	require.NoError(t, err)

	// Re-running without the clear flag collides on every row.
	res, err := Run(context.Background(), db, logger.NewNop(), Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Success)
	assert.Equal(t, 2, res.Failure)
	assert.EqualValues(t, 2, countFoods(t, db))
}

func TestRunClearExisting(t *testing.T) {
	db := newTestDB(t)
	first := writeWorkbook(t, [][]interface{}{sampleRow("OLD", "예전 식품")})
	_, err := Run(context.Background(), db, logger.NewNop(), Options{Path: first})
	require.NoError(t, err)

	second := writeWorkbook(t, [][]interface{}{
		sampleRow("D001", "김치찌개"),
		sampleRow("D002", "된장찌개"),
	})
	res, err := Run(context.Background(), db, logger.NewNop(), Options{Path: second, ClearExisting: true})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Success)
	assert.EqualValues(t, 2, countFoods(t, db))

	var old models.Food
	err = db.Where("food_cd = ?", "OLD").First(&old).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRunSmallBatches(t *testing.T) {
	db := newTestDB(t)
	rows := make([][]interface{}, 0, 7)
	for i := 1; i <= 7; i++ {
		rows = append(rows, sampleRow(fmt.Sprintf("D%03d", i), fmt.Sprintf("식품%d", i)))
	}
	path := writeWorkbook(t, rows)

	res, err := Run(context.Background(), db, logger.NewNop(), Options{Path: path, BatchSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Success)
	assert.EqualValues(t, 7, countFoods(t, db))
}

func TestRunUnreadableWorkbook(t *testing.T) {
	db := newTestDB(t)

	_, err := Run(context.Background(), db, logger.NewNop(), Options{
		Path: filepath.Join(t.TempDir(), "missing.xlsx"),
	})
	assert.Error(t, err)
}

func TestRunMissingRequiredColumn(t *testing.T) {
	db := newTestDB(t)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	partial := []interface{}{colGroupName, colFoodName} // no food code column
	require.NoError(t, f.SetSheetRow(sheet, "A1", &partial))
	path := filepath.Join(t.TempDir(), "partial.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err := Run(context.Background(), db, logger.NewNop(), Options{Path: path})
	assert.ErrorContains(t, err, "missing required column")
}
