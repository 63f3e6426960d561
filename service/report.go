package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	// InventorySheet 库存工作表
	InventorySheet = "库存"
	// MenuSheet 菜单工作表
	MenuSheet = "菜单"
)

// ReportService 导出库存与菜单
type ReportService struct {
	inventory *InventoryService
	menu      *MenuService
}

// NewReportService 创建导出服务
func NewReportService(inventory *InventoryService, menu *MenuService) *ReportService {
	return &ReportService{inventory: inventory, menu: menu}
}

// InventoryCSV 库存 CSV（带 BOM，便于 Excel 打开）
func (s *ReportService) InventoryCSV(ctx context.Context) ([]byte, error) {
	lines, err := s.inventory.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	buf.WriteString("\xEF\xBB\xBF")
	writer := csv.NewWriter(buf)

	if err := writer.Write([]string{"食材", "每盎司成本"}); err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := writer.Write([]string{line.Name, line.CostPerOz.StringFixed(2)}); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MenuWorkbook 生成包含库存与菜单两张表的 Excel，调用方负责 Close
func (s *ReportService) MenuWorkbook(ctx context.Context) (*excelize.File, error) {
	inventory, err := s.inventory.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	menu, err := s.menu.ListMenuNumbers(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", MenuSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(InventorySheet); err != nil {
		f.Close()
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	writeHeader := func(sheet string, headers []string) {
		for i, header := range headers {
			cell := fmt.Sprintf("%c1", 'A'+i)
			f.SetCellValue(sheet, cell, header)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
	}

	// 菜单
	f.SetColWidth(MenuSheet, "A", "A", 30)
	f.SetColWidth(MenuSheet, "B", "C", 15)
	writeHeader(MenuSheet, []string{"菜品", "食材成本", "建议售价"})
	for i, line := range menu {
		row := i + 2
		f.SetCellValue(MenuSheet, fmt.Sprintf("A%d", row), line.Name)
		f.SetCellValue(MenuSheet, fmt.Sprintf("B%d", row), line.FoodCost.InexactFloat64())
		f.SetCellValue(MenuSheet, fmt.Sprintf("C%d", row), line.MenuPrice.InexactFloat64())
		f.SetCellStyle(MenuSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), dataStyle)
	}
	summaryRow := len(menu) + 2
	f.SetCellValue(MenuSheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("共 %d 道菜", len(menu)))
	f.SetCellValue(MenuSheet, fmt.Sprintf("B%d", summaryRow), "平均成本率")
	f.SetCellValue(MenuSheet, fmt.Sprintf("C%d", summaryRow), averageCostRatio(menu))
	f.SetCellStyle(MenuSheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow), summaryStyle)

	// 库存
	f.SetColWidth(InventorySheet, "A", "A", 30)
	f.SetColWidth(InventorySheet, "B", "B", 15)
	writeHeader(InventorySheet, []string{"食材", "每盎司成本"})
	for i, line := range inventory {
		row := i + 2
		f.SetCellValue(InventorySheet, fmt.Sprintf("A%d", row), line.Name)
		f.SetCellValue(InventorySheet, fmt.Sprintf("B%d", row), line.CostPerOz.InexactFloat64())
		f.SetCellStyle(InventorySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), dataStyle)
	}

	return f, nil
}

// averageCostRatio 总成本 / 总售价，保留 4 位小数
func averageCostRatio(menu []MenuLine) float64 {
	cost, price := decimal.Zero, decimal.Zero
	for _, line := range menu {
		cost = cost.Add(line.FoodCost)
		price = price.Add(line.MenuPrice)
	}
	if price.IsZero() {
		return 0
	}
	return cost.Div(price).Round(4).InexactFloat64()
}
