package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/finance-calculators/internal/catalog"
)

func sampleDividend() catalog.DividendView {
	return catalog.DividendView{
		InvestmentAmount: "1,000,000원",
		DividendYield:    "4%",
		AnnualDividend:   "40,000원",
		TaxAmount:        "6,160원",
		NetDividend:      "33,840원",
		MonthlyDividend:  "2,820원",
	}
}

func sampleCompound() catalog.CompoundView {
	return catalog.CompoundView{
		Mode:             "basic",
		TotalContributed: "1,000,000원",
		TotalProfit:      "210,000원",
		FinalAmount:      "1,210,000원",
		Rows: []catalog.CompoundRowView{
			{Index: 1, Profit: "100,000원", Total: "1,100,000원", ReturnRate: "10.00%"},
			{Index: 2, Profit: "110,000원", Total: "1,210,000원", ReturnRate: "21.00%"},
		},
	}
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := PrettyFormat(&buf, "배당금 계산기", sampleDividend()); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	if !strings.HasPrefix(output, "--- 배당금 계산기 ---\n") {
		t.Errorf("PrettyFormat missing header, got %q", output)
	}
	if !strings.Contains(output, "| 33,840원") {
		t.Errorf("PrettyFormat missing net dividend")
	}
	if strings.Count(output, "\n") != 7 {
		t.Errorf("expected header plus 6 lines, got %q", output)
	}
}

func TestPrettyFormatTable(t *testing.T) {
	var buf bytes.Buffer
	if err := PrettyFormat(&buf, "복리 계산기", sampleCompound()); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "회차 | 수익 | 잔액 | 누적 수익률") {
		t.Errorf("PrettyFormat missing table header, got %q", output)
	}
	if !strings.Contains(output, "2 | 110,000원 | 1,210,000원 | 21.00%") {
		t.Errorf("PrettyFormat missing table row, got %q", output)
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, sampleDividend()); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 7 {
		t.Fatalf("expected 7 records, got %d", len(records))
	}
	if records[0][0] != "key" {
		t.Errorf("expected header record, got %v", records[0])
	}
	last := records[6]
	if last[0] != "monthly_dividend" || last[2] != "2,820원" {
		t.Errorf("unexpected last record %v", last)
	}
}

func TestCsvFormatTable(t *testing.T) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, sampleCompound()); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	parts := strings.Split(buf.String(), "\n\n")
	if len(parts) != 2 {
		t.Fatalf("expected summary and table sections, got %q", buf.String())
	}
	rows, err := csv.NewReader(strings.NewReader(parts[1])).ReadAll()
	if err != nil {
		t.Fatalf("table section is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("expected header plus 2 rows, got %d", len(rows))
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONFormat(&buf, sampleDividend()); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["net_dividend"] != "33,840원" {
		t.Errorf("net_dividend = %q", decoded["net_dividend"])
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "xml", "", sampleDividend()); err == nil {
		t.Error("expected error for unknown output format")
	}
	if buf.Len() != 0 {
		t.Error("expected no output for unknown format")
	}

	if err := Write(&buf, "pretty", "배당금 계산기", sampleDividend()); err != nil {
		t.Errorf("Write(pretty) error = %v", err)
	}
}
