package report

import (
	"fmt"
	"strings"

	"github.com/jhoicas/restocker-api/internal/application/ports"
	"github.com/jhoicas/restocker-api/internal/domain/entity"
)

// Roles fijos del mensaje system.
const (
	InsightSystemPrompt  = "You are an AI supply chain and inventory optimization expert."
	QuestionSystemPrompt = "You are an AI inventory assistant."
)

// InsightRequest arma la petición de análisis narrativo con la tabla serializada tal cual.
// En modo compare nombra las empresas seleccionadas y pide el análisis por empresa.
func InsightRequest(t entity.InventoryTable, companies []string) ports.ChatRequest {
	var user string
	if t.Variant == entity.VariantCompare {
		user = fmt.Sprintf(`
Compare the inventory of these companies: %s
%s

Give stockout risks, overstock issues,
and restock recommendations for each company.
`, strings.Join(companies, ", "), FormatTable(t))
	} else {
		user = fmt.Sprintf(`
Analyze this inventory data:
%s

Give stockout risks, overstock issues,
and restock recommendations.
`, FormatTable(t))
	}
	return ports.ChatRequest{System: InsightSystemPrompt, User: user}
}

// QuestionRequest arma una petición independiente por pregunta: sin historial,
// siempre con la tabla completa.
func QuestionRequest(t entity.InventoryTable, question string) ports.ChatRequest {
	return ports.ChatRequest{
		System: QuestionSystemPrompt,
		User:   fmt.Sprintf("Inventory Data:\n%s\n\nQuestion:\n%s", FormatTable(t), question),
	}
}
