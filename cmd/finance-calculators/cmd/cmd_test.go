package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/finance-calculators/internal/catalog"
	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/internal/testutil"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand("1.0.0")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	base := []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "--log-level", "error"}
	root.SetArgs(append(args[:1:1], append(base, args[1:]...)...))

	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if out != "finance-calculators version 1.0.0\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("COUPANG_PARTNERS_ID", "42")

	out, err := run(t, "config")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}

	var decoded map[string]map[string]interface{}
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if decoded["server"]["address"] != ":8080" {
		t.Errorf("server.address = %v, expected :8080", decoded["server"]["address"])
	}
	if decoded["server"]["readTimeout"] != "15s" {
		t.Errorf("server.readTimeout = %v, expected 15s", decoded["server"]["readTimeout"])
	}
	if decoded["ads"]["partnerId"] != 42 {
		t.Errorf("ads.partnerId = %v, expected 42", decoded["ads"]["partnerId"])
	}
}

func TestCalcCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantError string
		contains  []string
	}{
		{
			name:     "Dividend pretty",
			args:     []string{"calc", "dividend", "investment_amount=1,000,000", "dividend_yield=4"},
			contains: []string{"--- 배당금 계산기 ---", "33,840원"},
		},
		{
			name:     "Stock csv",
			args:     []string{"calc", "--output-format", "csv", "stock-return", "buy_price=10000", "sell_price=12000", "quantity=10"},
			contains: []string{"key,label,value", "profit_loss", "\"19,691\""},
		},
		{
			name:     "Loan table",
			args:     []string{"calc", "loan-interest", "loan_amount=10000000", "interest_rate=5", "loan_term=1", "repayment_type=equal_pi"},
			contains: []string{"856,075", "회차 | 상환액 | 원금 | 이자 | 잔액"},
		},
		{
			name:      "Validation failure",
			args:      []string{"calc", "stock-return", "buy_price=0", "sell_price=1", "quantity=1"},
			wantError: "입력값을 확인해주세요.",
		},
		{
			name:      "Malformed argument",
			args:      []string{"calc", "dividend", "investment_amount"},
			wantError: "expected field=value",
		},
		{
			name:      "Placeholder calculator",
			args:      []string{"calc", "bmi"},
			wantError: "unknown calculator",
		},
		{
			name:      "Bad output format",
			args:      []string{"calc", "--output-format", "xml", "dividend"},
			wantError: "expected output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantError != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantError) {
					t.Fatalf("expected error containing %q, got %v", tt.wantError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("calc error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCalcCommandJSON(t *testing.T) {
	out, err := run(t, "calc", "--output-format", "json", "net-salary", "annual_salary=5000", "dependents=1")
	if err != nil {
		t.Fatalf("calc error = %v", err)
	}

	var view catalog.SalaryView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if view.NetSalary != "44,853,370" {
		t.Errorf("NetSalary = %s, expected 44,853,370", view.NetSalary)
	}

	field := testutil.FindField(view, "net_salary")
	if field == nil {
		t.Fatal("summary missing net_salary")
	}
	if field.Label != "연 실수령액" || field.Value != view.NetSalary {
		t.Errorf("unexpected net_salary field %+v", *field)
	}
}

func TestParseFields(t *testing.T) {
	values, err := parseFields([]string{"a=1", "b=", "c=x=y", "a=2"})
	if err != nil {
		t.Fatalf("parseFields() error = %v", err)
	}
	if values.Get("a") != "1" || values.Get("c") != "x=y" {
		t.Errorf("unexpected values %v", values)
	}
	if _, ok := values["b"]; !ok {
		t.Error("expected empty field to be present")
	}
	if _, err := parseFields([]string{"=1"}); err == nil {
		t.Error("expected error for empty key")
	}
}

func newTestApp(address string) *app {
	return &app{
		version: "test",
		conf: &config.Configuration{
			Server: config.ServerConfig{
				Address:         address,
				ReadTimeout:     time.Second,
				WriteTimeout:    time.Second,
				ShutdownTimeout: time.Second,
			},
		},
		logger: zap.NewNop(),
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := newTestApp("127.0.0.1:0").serve(ctx); err != nil {
		t.Errorf("serve() error = %v", err)
	}
}

func TestServeReportsListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	defer func() { _ = ln.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = newTestApp(ln.Addr().String()).serve(ctx)
	if err == nil || !strings.Contains(err.Error(), "server failed") {
		t.Errorf("expected listen failure, got %v", err)
	}
}
