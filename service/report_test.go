package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_InventoryCSV(t *testing.T) {
	svc := newTestServices(t)
	seedBread(t, svc)

	data, err := svc.Reports.InventoryCSV(context.Background())
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "\xEF\xBB\xBF"))
	assert.Contains(t, content, "食材,每盎司成本")
	assert.Contains(t, content, "Flour,0.13")
	assert.Contains(t, content, "Butter,1.00")
}

func TestReportService_MenuWorkbook(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	seedBread(t, svc)
	_, err := svc.Menu.ComputeMenuNumbers(ctx, "Bread")
	require.NoError(t, err)

	f, err := svc.Reports.MenuWorkbook(ctx)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{MenuSheet, InventorySheet}, f.GetSheetList())

	name, err := f.GetCellValue(MenuSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Bread", name)
	price, err := f.GetCellValue(MenuSheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "5.07", price)

	item, err := f.GetCellValue(InventorySheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Salt", item)
}

func TestAverageCostRatio(t *testing.T) {
	assert.Equal(t, 0.0, averageCostRatio(nil))
	ratio := averageCostRatio([]MenuLine{{FoodCost: dec("3"), MenuPrice: dec("10")}})
	assert.Equal(t, 0.3, ratio)
}
