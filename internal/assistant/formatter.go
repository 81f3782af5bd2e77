package assistant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arivera-dev/inventario/internal/model"
)

// Fixed replies used by both pipelines. Everything else is computed from the
// result rows, so two identical queries always render identical answers.
const (
	msgNoRows           = "No se encontraron resultados en la base de datos."
	msgProductNotFound  = "No se encontró información sobre ese producto en nuestra base de datos."
	msgDataAccessFailed = "Hubo un error al consultar la base de datos. Por favor, inténtalo de nuevo."
	msgAIApology        = "Hubo un error al procesar tu solicitud. Por favor, inténtalo de nuevo."
)

// SimpleFormat renders rows of the simple product store into a Spanish,
// human-readable reply. Pure function of its inputs.
func SimpleFormat(intent Intent, rows []model.Row) string {
	if len(rows) == 0 {
		return msgNoRows
	}

	switch intent {
	case IntentStockForProduct:
		if len(rows) == 1 {
			name, stock := rows[0].Str("name"), rows[0].Int("stock")
			if stock > 0 {
				return fmt.Sprintf("El %s tiene %d unidades en stock.", name, stock)
			}
			return fmt.Sprintf("El %s está agotado (0 unidades en stock).", name)
		}
		var b strings.Builder
		b.WriteString("Stock de productos encontrados:\n")
		writeStockBullets(&b, rows)
		return b.String()

	case IntentStockAll:
		var b strings.Builder
		b.WriteString("Stock de todos los productos:\n")
		writeStockBullets(&b, rows)
		return b.String()

	case IntentPriceForProduct:
		if len(rows) == 1 {
			return fmt.Sprintf("El precio del %s es $%.2f", rows[0].Str("name"), rows[0].Float("price"))
		}
		var b strings.Builder
		b.WriteString("Precios de productos encontrados:\n")
		writePriceBullets(&b, rows)
		return b.String()

	case IntentPriceAll:
		var b strings.Builder
		b.WriteString("Precios de todos los productos:\n")
		writePriceBullets(&b, rows)
		return b.String()

	case IntentProductsGeneral:
		var b strings.Builder
		b.WriteString("Información de productos:\n")
		for _, row := range rows {
			fmt.Fprintf(&b, "• %s: $%.2f - Stock: %s\n",
				row.Str("name"), row.Float("price"), stockStatus(row.Int("stock")))
		}
		return b.String()

	default:
		return "Información encontrada en la base de datos."
	}
}

func writeStockBullets(b *strings.Builder, rows []model.Row) {
	for _, row := range rows {
		fmt.Fprintf(b, "• %s: %s\n", row.Str("name"), stockStatus(row.Int("stock")))
	}
}

func writePriceBullets(b *strings.Builder, rows []model.Row) {
	for _, row := range rows {
		fmt.Fprintf(b, "• %s: $%.2f\n", row.Str("name"), row.Float("price"))
	}
}

func stockStatus(stock int) string {
	if stock > 0 {
		return fmt.Sprintf("%d unidades", stock)
	}
	return "AGOTADO"
}

// CatalogFormatter renders catalog query results. Display limits and the
// stock thresholds are configuration, not behavior baked into the wording.
type CatalogFormatter struct {
	// LowStockThreshold flags rows counted in the low-stock warning banner.
	LowStockThreshold int
	// CriticalThreshold marks low-stock rows needing urgent replenishment.
	CriticalThreshold int
	// DisplayLimit caps the bullets rendered for long lists.
	DisplayLimit int
	// SampleLimit caps the highlighted rows of the generic overview.
	SampleLimit int
}

// NewCatalogFormatter returns a formatter with the given thresholds and the
// default display caps.
func NewCatalogFormatter(lowStockThreshold, criticalThreshold int) CatalogFormatter {
	return CatalogFormatter{
		LowStockThreshold: lowStockThreshold,
		CriticalThreshold: criticalThreshold,
		DisplayLimit:      10,
		SampleLimit:       5,
	}
}

// Format renders the rows for an intent. question is only used for the
// zero-result message. Summary statistics are computed over the full row set
// before the display cap is applied.
func (f CatalogFormatter) Format(intent Intent, question string, rows []model.Row) string {
	if len(rows) == 0 {
		return fmt.Sprintf("No se encontraron resultados para tu consulta: '%s'. "+
			"Verifica que los productos existan en la base de datos o intenta reformular tu pregunta.", question)
	}

	switch intent {
	case IntentLowStock:
		return f.formatLowStock(rows)
	case IntentExpiringSoon:
		return f.formatExpiring(rows)
	case IntentBySupplier:
		return f.formatGroups(rows, "supplier", "📊", "proveedores", "🏦")
	case IntentByCategory:
		return f.formatGroups(rows, "category", "📦", "categorías", "🏷️")
	case IntentMostExpensive:
		return f.formatMostExpensive(rows)
	default:
		return f.formatOverview(rows)
	}
}

func (f CatalogFormatter) formatLowStock(rows []model.Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚠️ **Se encontraron %d productos con stock bajo:**\n\n", len(rows))

	critical := 0
	for _, row := range rows {
		if row.Int("quantity") <= f.CriticalThreshold {
			critical++
		}
	}

	for _, row := range capRows(rows, f.DisplayLimit) {
		quantity := row.Int("quantity")
		emoji := "🟡"
		if quantity <= f.CriticalThreshold {
			emoji = "🔴"
		}
		fmt.Fprintf(&b, "%s **%s**: %d unidades\n", emoji, row.Str("name"), quantity)
	}

	if critical > 0 {
		fmt.Fprintf(&b, "\n💡 **Recomendación**: %d productos necesitan reposición urgente (≤%d unidades).",
			critical, f.CriticalThreshold)
	}

	return b.String()
}

func (f CatalogFormatter) formatExpiring(rows []model.Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚠️ **Se encontraron %d productos que vencen pronto:**\n\n", len(rows))

	for _, row := range capRows(rows, f.DisplayLimit) {
		emoji := "🟡"
		if row.Int("days_to_expiry") <= 7 {
			emoji = "🔴"
		}
		fmt.Fprintf(&b, "%s **%s**: Vence %s\n", emoji, row.Str("name"), formatDate(row))
	}

	return b.String()
}

func (f CatalogFormatter) formatGroups(rows []model.Row, nameKey, headerEmoji, plural, bulletEmoji string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s **Distribución por %s (%d %s):**\n\n", headerEmoji, plural, len(rows), plural)

	for _, row := range capRows(rows, f.DisplayLimit) {
		fmt.Fprintf(&b, "%s **%s**: %d productos, %d unidades totales\n",
			bulletEmoji, row.Str(nameKey), row.Int("total_products"), row.Int("total_units"))
	}

	return b.String()
}

func (f CatalogFormatter) formatMostExpensive(rows []model.Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💰 **Los %d productos más caros del inventario:**\n\n", len(rows))

	for i, row := range capRows(rows, f.DisplayLimit) {
		fmt.Fprintf(&b, "%d. **%s**: $%.2f (%d unidades) - %s\n",
			i+1, row.Str("name"), row.Float("sale_price"), row.Int("quantity"), row.Str("category"))
	}

	return b.String()
}

func (f CatalogFormatter) formatOverview(rows []model.Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📦 **Se encontraron %d productos en tu inventario:**\n\n", len(rows))

	var totalUnits int64
	var totalValue float64
	lowStock := 0
	for _, row := range rows {
		quantity := row.Int("quantity")
		totalUnits += int64(quantity)
		totalValue += row.Float("sale_price") * float64(quantity)
		if quantity <= f.LowStockThreshold {
			lowStock++
		}
	}

	b.WriteString("📊 **Resumen:**\n")
	fmt.Fprintf(&b, "• Total productos: %d\n", len(rows))
	fmt.Fprintf(&b, "• Total unidades: %s\n", groupThousands(totalUnits))
	fmt.Fprintf(&b, "• Valor estimado inventario: $%s\n\n", formatMoney(totalValue))

	if lowStock > 0 {
		fmt.Fprintf(&b, "⚠️ **Alerta**: %d productos con stock ≤ %d unidades\n\n", lowStock, f.LowStockThreshold)
	}

	b.WriteString("📋 **Algunos productos destacados:**\n")
	for _, row := range capRows(rows, f.SampleLimit) {
		fmt.Fprintf(&b, "• **%s**: %d unidades ($%.2f) - %s\n",
			row.Str("name"), row.Int("quantity"), row.Float("sale_price"), row.Str("category"))
	}

	if len(rows) > f.SampleLimit {
		fmt.Fprintf(&b, "\n... y %d productos más.", len(rows)-f.SampleLimit)
	}

	return b.String()
}

func capRows(rows []model.Row, limit int) []model.Row {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

func formatDate(row model.Row) string {
	if t, ok := row.Time("expiration_date"); ok {
		return t.Format("2006-01-02")
	}
	return "N/A"
}

// groupThousands formats n with comma grouping, e.g. 1234567 -> "1,234,567".
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// formatMoney renders a two-decimal, thousands-grouped currency amount.
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	n, _ := strconv.ParseInt(whole, 10, 64)
	return groupThousands(n) + frac
}
