package bootstrap_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restocker-api/internal/application/report"
	"github.com/jhoicas/restocker-api/internal/bootstrap"
	"github.com/jhoicas/restocker-api/pkg/config"
	"github.com/jhoicas/restocker-api/pkg/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("AI_API_KEY", "k")
	t.Setenv("STOCK_OVERSTOCK_THRESHOLD", "5")
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestNewReportUseCase_SinIA(t *testing.T) {
	uc, err := bootstrap.NewReportUseCase(testConfig(t), logger.Nop(), bootstrap.Options{DisableAI: true})
	require.NoError(t, err)

	rep, err := uc.Upload(context.Background(), "stock.csv",
		strings.NewReader("Product,Current_Stock,Average_Daily_Sales,Lead_Time_Days\nWidget,40,10,3\n"), "")
	require.NoError(t, err)
	assert.Equal(t, "Overstock", rep.Rows[0].StockStatus, "el umbral viene de la configuración")

	_, err = uc.Insight(context.Background(), rep.ID)
	assert.ErrorIs(t, err, bootstrap.ErrAIDisabled)
	assert.ErrorIs(t, err, report.ErrAI)
}

func TestNewReportUseCase_ConIA(t *testing.T) {
	uc, err := bootstrap.NewReportUseCase(testConfig(t), logger.Nop(), bootstrap.Options{})

	require.NoError(t, err)
	assert.NotNil(t, uc)
}

func TestNewReportUseCase_CodificacionInvalida(t *testing.T) {
	cfg := testConfig(t)
	cfg.Upload.CSVEncoding = "ebcdic"

	_, err := bootstrap.NewReportUseCase(cfg, logger.Nop(), bootstrap.Options{DisableAI: true})

	assert.Error(t, err)
}
