package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tdex-network/dynfee/pkg/dynfee"
)

const (
	// FeeKey is the flat base fee, 10^18-scaled
	FeeKey = "FEE"
	// FeeMultiplierKey is the fee_m threshold, the dynamic fee is enabled only
	// if greater than FEE_DENOMINATOR
	FeeMultiplierKey = "FEE_MULTIPLIER"
	// PrecisionKey is the scale used to rescale the product of rate and balance
	PrecisionKey = "PRECISION"
	// FeeDenominatorKey is the scale of fees, its value means 100%
	FeeDenominatorKey = "FEE_DENOMINATOR"
	// DivisionPrecisionKey is the number of decimal places kept by divisions
	DivisionPrecisionKey = "DIVISION_PRECISION"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
)

var vip *viper.Viper

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("DYNFEE")
	vip.AutomaticEnv()

	defaults := dynfee.DefaultParams()
	vip.SetDefault(FeeKey, defaults.Fee.String())
	vip.SetDefault(FeeMultiplierKey, defaults.FeeMultiplier.String())
	vip.SetDefault(PrecisionKey, defaults.Precision.String())
	vip.SetDefault(FeeDenominatorKey, defaults.FeeDenominator.String())
	vip.SetDefault(DivisionPrecisionKey, defaults.DivisionPrecision)
	vip.SetDefault(LogLevelKey, int(log.InfoLevel))

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetDecimal(key string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(GetString(key))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	if err := dynfee.CheckAmount(value); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

// GetFeeParams returns the fee curve constants built from the current config.
func GetFeeParams() (dynfee.Params, error) {
	divisionPrecision := GetInt(DivisionPrecisionKey)
	if divisionPrecision < 0 || divisionPrecision > dynfee.MaxDivisionPrecision {
		return dynfee.Params{}, fmt.Errorf(
			"%w: %s must be in range [0, %d]",
			dynfee.ErrInvalidParams, DivisionPrecisionKey, dynfee.MaxDivisionPrecision,
		)
	}
	params := dynfee.Params{
		DivisionPrecision: int32(divisionPrecision),
	}

	fields := []struct {
		key   string
		value *decimal.Decimal
	}{
		{FeeKey, &params.Fee},
		{FeeMultiplierKey, &params.FeeMultiplier},
		{PrecisionKey, &params.Precision},
		{FeeDenominatorKey, &params.FeeDenominator},
	}
	for _, f := range fields {
		value, err := GetDecimal(f.key)
		if err != nil {
			return dynfee.Params{}, fmt.Errorf("%w: %s", dynfee.ErrInvalidParams, err)
		}
		*f.value = value
	}

	if err := params.Validate(); err != nil {
		return dynfee.Params{}, err
	}
	return params, nil
}

func validate() error {
	level := GetInt(LogLevelKey)
	if level < int(log.PanicLevel) || level > int(log.TraceLevel) {
		return fmt.Errorf("%s must be in range [%d, %d]", LogLevelKey, int(log.PanicLevel), int(log.TraceLevel))
	}

	if _, err := GetFeeParams(); err != nil {
		return err
	}

	return nil
}
