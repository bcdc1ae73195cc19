package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunReport_SinIA(t *testing.T) {
	path := writeFile(t, "stock.csv", "Product,Current_Stock,Average_Daily_Sales,Lead_Time_Days\nWidget,100,10,3\nGadget,20,2.5,12\n")
	pdfPath := filepath.Join(t.TempDir(), "out.pdf")
	var out, errOut bytes.Buffer

	err := runReport(context.Background(), &out, &errOut, path, reportFlags{mode: "single", noAI: true, pdfPath: pdfPath, width: 50})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Stockout Risk")
	assert.Contains(t, out.String(), "Productos: 2")
	assert.Contains(t, out.String(), "1. Gadget: pedir 10")
	assert.Contains(t, out.String(), "Stock Gap per Product")
	assert.NotContains(t, out.String(), "AI Insights")

	doc, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestRunReport_CompareConEmpresas(t *testing.T) {
	path := writeFile(t, "empresas.csv", "Company_Name,Product,Current_Stock,Average_Daily_Sales,Lead_Time_Days\n"+
		"Acme,Widget,100,10,3\nGlobex,Widget,20,2.5,12\nInitech,Widget,5,1,1\n")
	var out, errOut bytes.Buffer

	err := runReport(context.Background(), &out, &errOut, path,
		reportFlags{mode: "compare", companies: []string{"Initech"}, noAI: true})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Empresas: Initech")
	assert.NotContains(t, out.String(), "Acme")
}

func TestRunReport_ErrorDeEsquema(t *testing.T) {
	path := writeFile(t, "stock.csv", "Product,Current_Stock\nA,1\n")
	var out, errOut bytes.Buffer

	err := runReport(context.Background(), &out, &errOut, path, reportFlags{noAI: true})

	assert.ErrorContains(t, err, "Average_Daily_Sales")
}

func TestRunReport_SinAPIKey(t *testing.T) {
	for _, k := range []string{"AI_API_KEY", "GROQ_API_KEY"} {
		t.Setenv(k, "")
	}
	path := writeFile(t, "stock.csv", "Product,Current_Stock,Average_Daily_Sales,Lead_Time_Days\nA,1,1,1\n")
	var out, errOut bytes.Buffer

	err := runReport(context.Background(), &out, &errOut, path, reportFlags{})

	assert.Error(t, err)
}
