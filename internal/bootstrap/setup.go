package bootstrap

import (
	"go-payroll/internal/config"
	"go-payroll/internal/shared/apperror"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Setup dipanggil di awal setiap binary: load config, pasang logger global,
// dan registrasi validator. Pemanggil wajib memanggil logger.Sync.
func Setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	zap.ReplaceGlobals(logger)

	apperror.Init()
	// amount di JSON dikirim sebagai number
	decimal.MarshalJSONWithoutQuotes = true

	return cfg, logger, nil
}
