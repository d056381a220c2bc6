package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Locale 货币格式参数，由调用方显式传入，不依赖进程级 locale 设置
type Locale struct {
	Name      string
	Symbol    string
	Thousands string
	Decimal   string
	// SymbolSpace 符号与数字之间是否有空格（R$ 1,00 / $1.00）
	SymbolSpace bool
}

var (
	// BRL 巴西雷亚尔：R$ 1.234,56
	BRL = Locale{Name: "pt-BR", Symbol: "R$", Thousands: ".", Decimal: ",", SymbolSpace: true}
	// USD 美元：$1,234.56
	USD = Locale{Name: "en-US", Symbol: "$", Thousands: ",", Decimal: "."}
	// CNY 人民币：¥1,234.56
	CNY = Locale{Name: "zh-CN", Symbol: "¥", Thousands: ",", Decimal: "."}
)

var locales = map[string]Locale{
	BRL.Name: BRL,
	USD.Name: USD,
	CNY.Name: CNY,
}

// LocaleByName 按名称查找，未知名称回退到 fallback
func LocaleByName(name string, fallback Locale) Locale {
	if l, ok := locales[name]; ok {
		return l
	}
	return fallback
}

// Format 按 locale 格式化金额，保留两位小数
func Format(amount decimal.Decimal, l Locale) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(l.Symbol)
	if l.SymbolSpace {
		b.WriteByte(' ')
	}
	b.WriteString(group(intPart, l.Thousands))
	b.WriteString(l.Decimal)
	b.WriteString(fracPart)
	return b.String()
}

func group(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
