package export

import (
	"net/url"
	"strings"

	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/pkg/currency"
)

const whatsAppBase = "https://wa.me/?text="

// ShareText mensaje de WhatsApp de una lista: encabezado en negrita con el nombre en
// mayúsculas, fecha de la lista, un renglón por ítem y el total estimado.
func ShareText(l entity.ManualShoppingList, currencyCode string) string {
	var b strings.Builder
	b.WriteString("*GIROCHEF - " + strings.ToUpper(l.Name) + "*\n")
	b.WriteString("Gerado em: " + l.Date.Format("02/01/2006") + "\n\n")
	for i, it := range l.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• *" + it.Name + "*: " + it.Quantity.String() + " " + strings.ToUpper(it.Unit) +
			" (Fornecedor: " + it.Supplier + ")")
	}
	b.WriteString("\n\n*Total Estimado: " + currency.Format(l.TotalCost, currencyCode) + "*")
	return b.String()
}

// ShareURL enlace wa.me con el texto codificado para query string.
func ShareURL(text string) string {
	return whatsAppBase + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
