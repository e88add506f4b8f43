package fiscal

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// homologationPrefix marks access keys issued in the test environment.
const homologationPrefix = "999"

type mockItem struct {
	Quantity    int64
	Description string
	UnitPrice   string
}

var mockItems = []mockItem{
	{20, "Saco de Cimento 50kg", "32.50"},
	{5, "Metro de Areia Média", "110.00"},
	{2, "Milheiro de Tijolo", "850.00"},
	{10, "Vergalhão 3/8", "45.00"},
}

// MockNFeProvider answers lookups locally, for development and demos.
// Keys starting with 999 return a homologation document whose amount is
// derived from the key, so repeated lookups agree.
type MockNFeProvider struct {
	now func() time.Time
}

var _ interfaces.INFeProvider = (*MockNFeProvider)(nil)

func NewMockNFeProvider() *MockNFeProvider {
	return &MockNFeProvider{now: time.Now}
}

func (m *MockNFeProvider) Lookup(_ context.Context, accessKey string) (entities.NFeData, error) {
	today := m.now().UTC().Format("2006-01-02")

	if strings.HasPrefix(accessKey, homologationPrefix) {
		return entities.NFeData{
			Description:    fmt.Sprintf("NF-e de Homologação - Chave: %s...", prefix(accessKey, 10)),
			Amount:         homologationAmount(accessKey),
			Date:           today,
			Notes:          "Este é um documento fiscal emitido em ambiente de homologação (teste) e não possui valor fiscal.",
			IsHomologation: true,
		}, nil
	}

	total := decimal.Zero
	lines := make([]string, 0, len(mockItems))
	for _, it := range mockItems {
		line := decimal.RequireFromString(it.UnitPrice).Mul(decimal.NewFromInt(it.Quantity))
		total = total.Add(line)
		lines = append(lines, fmt.Sprintf("- %dx %s: R$ %s", it.Quantity, it.Description, line.StringFixed(2)))
	}
	amount, _ := total.Round(2).Float64()

	return entities.NFeData{
		Description: fmt.Sprintf("Materiais Diversos - NF %s", documentNumber(accessKey)),
		Amount:      amount,
		Date:        today,
		Notes: "Fornecedor: Depósito Construção LTDA\nCNPJ: 99.999.999/0001-99\n\nItens Inclusos:\n" +
			strings.Join(lines, "\n"),
	}, nil
}

// homologationAmount maps the last three digits of the key to 100..999.
func homologationAmount(accessKey string) float64 {
	if len(accessKey) < 3 {
		return 100
	}
	n, _ := strconv.Atoi(accessKey[len(accessKey)-3:])
	return float64(100 + n%900)
}

// documentNumber is the nNF field of the access key (positions 26-34).
func documentNumber(accessKey string) string {
	if len(accessKey) < 34 {
		return accessKey
	}
	return accessKey[25:34]
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
