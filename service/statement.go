package service

import (
	"fmt"
	"io"

	"moneyflow/models"
	"moneyflow/money"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// StatementSheet 交易流水工作表名
const StatementSheet = "交易流水"

var statementHeaders = []string{"日期", "账户", "类别", "类型", "金额", "金额（格式化）", "描述"}

// WriteStatementXLSX 把交易写成 xlsx 流水：表头、每笔交易一行、末尾收入/支出/结余合计
func WriteStatementXLSX(w io.Writer, txs []models.Transaction, locale money.Locale) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", StatementSheet); err != nil {
		return err
	}
	sheet := StatementSheet

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"667EEA"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    border,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})

	widths := map[string]float64{"A": 12, "B": 20, "C": 16, "D": 8, "E": 14, "F": 18, "G": 40}
	for col, width := range widths {
		f.SetColWidth(sheet, col, col, width)
	}

	for i, header := range statementHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	income, expense := decimal.Zero, decimal.Zero
	for i, t := range txs {
		row := i + 2
		signed := t.SignedAmount()
		if t.Type == models.TransactionTypeIncome {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}

		values := []interface{}{
			t.Date.Format(models.DateLayout),
			accountName(t.Account),
			categoryName(t.Category),
			typeLabel(t.Type),
			signed.InexactFloat64(),
			money.Format(signed, locale),
			t.Description,
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), dataStyle)
	}

	summaryRow := len(txs) + 2
	summary := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"收入合计", income},
		{"支出合计", expense.Neg()},
		{"结余", income.Sub(expense)},
	}
	for i, s := range summary {
		row := summaryRow + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), s.label)
		f.MergeCell(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), s.amount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), money.Format(s.amount, locale))
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), summaryStyle)
	}
	f.SetCellValue(sheet, fmt.Sprintf("G%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(txs)))

	return f.Write(w)
}

func accountName(a *models.Account) string {
	if a == nil {
		return ""
	}
	return a.Name
}

func categoryName(c *models.Category) string {
	if c == nil {
		return ""
	}
	return c.Name
}

func typeLabel(t models.TransactionType) string {
	if t == models.TransactionTypeIncome {
		return "收入"
	}
	return "支出"
}
