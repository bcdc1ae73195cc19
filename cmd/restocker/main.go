// Package main implementa la CLI restocker: corre el pipeline del reporte sobre un archivo local.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/restocker-api/internal/application/dto"
	"github.com/jhoicas/restocker-api/internal/application/report"
	"github.com/jhoicas/restocker-api/internal/bootstrap"
	"github.com/jhoicas/restocker-api/internal/infrastructure/terminal"
	"github.com/jhoicas/restocker-api/pkg/config"
	"github.com/jhoicas/restocker-api/pkg/logger"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type reportFlags struct {
	mode      string
	companies []string
	question  string
	noAI      bool
	pdfPath   string
	width     int
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "restocker",
		Short: "Reporte de inventario con análisis de IA",
		Long: `restocker lee un archivo de inventario (.xlsx o .csv), calcula demanda estimada,
brecha de stock y estado por producto, dibuja los gráficos en la terminal y pide
un análisis al proveedor de IA configurado (AI_PROVIDER / AI_API_KEY).`,
		Version:      version,
		SilenceUsage: true,
	}
	root.AddCommand(newReportCmd())
	return root
}

func newReportCmd() *cobra.Command {
	var f reportFlags
	cmd := &cobra.Command{
		Use:   "report FILE",
		Short: "Genera el reporte de un archivo de inventario",
		Long: `Genera el reporte de un archivo de inventario.

Examples:
  # Un solo inventario, sin IA
  restocker report stock.xlsx --no-ai

  # Comparar empresas y exportar PDF
  restocker report empresas.csv --mode compare --companies Acme,Globex --pdf reporte.pdf

  # Pregunta libre
  restocker report stock.csv --question "¿Qué productos reponer esta semana?"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.mode, "mode", "single", "single o compare")
	cmd.Flags().StringSliceVar(&f.companies, "companies", nil, "empresas a comparar (modo compare); por defecto las dos primeras")
	cmd.Flags().StringVar(&f.question, "question", "", "pregunta libre sobre la tabla")
	cmd.Flags().BoolVar(&f.noAI, "no-ai", false, "no llamar al proveedor de IA")
	cmd.Flags().StringVar(&f.pdfPath, "pdf", "", "ruta del PDF a exportar")
	cmd.Flags().IntVar(&f.width, "width", 72, "ancho de los gráficos")
	return cmd
}

func runReport(ctx context.Context, out, errOut io.Writer, path string, f reportFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !f.noAI {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Out: errOut})

	uc, err := bootstrap.NewReportUseCase(cfg, log, bootstrap.Options{DisableAI: f.noAI})
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir %s: %w", path, err)
	}
	defer file.Close()

	rep, err := uc.Upload(ctx, path, file, f.mode)
	if err != nil {
		return err
	}
	if f.companies != nil {
		if rep, err = uc.SelectCompanies(ctx, rep.ID, f.companies); err != nil {
			return err
		}
	}

	table, err := uc.TableText(ctx, rep.ID)
	if err != nil {
		return err
	}
	if len(rep.Selected) > 0 {
		fmt.Fprintf(out, "Empresas: %s\n\n", strings.Join(rep.Selected, ", "))
	}
	fmt.Fprintln(out, table)
	fmt.Fprintln(out)
	printSummary(out, rep)
	fmt.Fprintln(out)
	fmt.Fprintln(out, terminal.Render(rep.Charts, f.width))

	if !f.noAI {
		insight, err := uc.Insight(ctx, rep.ID)
		if err != nil {
			return err
		}
		printInsight(out, "AI Insights", insight)
		if f.question != "" {
			answer, err := uc.Ask(ctx, rep.ID, f.question)
			if err != nil {
				return err
			}
			printInsight(out, answer.Question, &answer.InsightDTO)
		}
	}

	if f.pdfPath != "" {
		doc, _, err := uc.PDF(ctx, rep.ID)
		if err != nil {
			return err
		}
		if err := os.WriteFile(f.pdfPath, doc, 0o644); err != nil {
			return fmt.Errorf("escribir PDF: %w", err)
		}
		fmt.Fprintf(out, "\nPDF: %s\n", f.pdfPath)
	}
	return nil
}

func printSummary(out io.Writer, rep *dto.ReportDTO) {
	s := rep.Summary
	fmt.Fprintf(out, "Productos: %d | Stockout Risk: %d | Overstock: %d | Safe Stock: %d\n",
		s.Rows, s.StockoutRisk, s.Overstock, s.SafeStock)
	fmt.Fprintf(out, "Stock total: %s | Demanda estimada total: %s\n",
		report.FormatNumber(s.TotalCurrentStock), report.FormatNumber(s.TotalEstimatedDemand))
	if len(rep.Restock) == 0 {
		return
	}
	fmt.Fprintln(out, "\nReposición sugerida:")
	for _, r := range rep.Restock {
		name := r.Product
		if r.Company != "" {
			name = r.Company + " / " + r.Product
		}
		fmt.Fprintf(out, "  %d. %s: pedir %s (stock %s, demanda %s)\n", r.Priority, name,
			report.FormatNumber(r.SuggestedOrderQty), report.FormatNumber(r.CurrentStock), report.FormatNumber(r.EstimatedDemand))
	}
}

func printInsight(out io.Writer, title string, in *dto.InsightDTO) {
	fmt.Fprintf(out, "\n== %s ==\n", title)
	if in.Skipped {
		fmt.Fprintln(out, in.Reason)
		return
	}
	fmt.Fprintln(out, in.Text)
}
