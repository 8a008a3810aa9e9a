package dynfee_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/dynfee/pkg/dynfee"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNormalizedBalance(t *testing.T) {
	t.Parallel()

	params := dynfee.DefaultParams()

	tests := []struct {
		rate    string
		balance string
	}{
		{"0.95", "500000"},
		{"1.05", "1300000"},
		{"1", "1"},
		{"0.000001", "123456789.123"},
		{"3.5", "0.25"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.rate+"x"+tt.balance, func(t *testing.T) {
			t.Parallel()

			rate, balance := d(tt.rate), d(tt.balance)
			xp := params.NormalizedBalance(dynfee.Scale(rate), dynfee.Scale(balance))
			expected := dynfee.Scale(rate.Mul(balance))
			require.True(t, expected.Equal(xp), "expected %s, got %s", expected, xp)
		})
	}
}

func TestDynamicFee(t *testing.T) {
	t.Parallel()

	params := dynfee.DefaultParams()

	t.Run("pool example", func(t *testing.T) {
		t.Parallel()

		xpi := params.NormalizedBalance(
			dynfee.Scale(d("0.95")), dynfee.Scale(d("500000")),
		)
		xpj := params.NormalizedBalance(
			dynfee.Scale(d("1.05")), dynfee.Scale(d("1300000")),
		)
		require.Equal(t, "475000000000000000000000", xpi.String())
		require.Equal(t, "1365000000000000000000000", xpj.String())

		fee, err := params.DynamicFee(xpi, xpj)
		require.NoError(t, err)
		require.Equal(t, "1000000000000000000", fee.String())
		require.Equal(t, "1", params.Unscale(fee).String())
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()

		pairs := [][2]string{
			{"2", "3"},
			{"7", "0.5"},
			{"475000000000000000000000", "1365000000000000000000000"},
			{"-4", "9"},
		}
		for _, pair := range pairs {
			feeIJ, err := params.DynamicFee(d(pair[0]), d(pair[1]))
			require.NoError(t, err)
			feeJI, err := params.DynamicFee(d(pair[1]), d(pair[0]))
			require.NoError(t, err)
			require.True(t, feeIJ.Equal(feeJI), "%s != %s", feeIJ, feeJI)
		}
	})

	t.Run("balanced pool", func(t *testing.T) {
		t.Parallel()

		amplifiedFee := params.FeeMultiplier.Mul(params.Fee).DivRound(
			params.FeeMultiplier.Sub(params.FeeDenominator), params.DivisionPrecision,
		)
		require.Equal(t, "10050251.256281407035175879", amplifiedFee.String())

		for _, v := range []string{"1", "2", "3", "0.5"} {
			xp := d(v)
			fee, err := params.DynamicFee(xp, xp)
			require.NoError(t, err)

			simplified := amplifiedFee.Mul(decimal.NewFromInt(4)).DivRound(
				xp.Mul(xp), params.DivisionPrecision,
			).Add(params.FeeDenominator)
			require.True(t, simplified.Equal(fee), "%s != %s", simplified, fee)
		}
	})

	t.Run("flat fee when dynamic fee is disabled", func(t *testing.T) {
		t.Parallel()

		flat := dynfee.DefaultParams()
		for _, feeM := range []decimal.Decimal{flat.FeeDenominator, decimal.Zero, d("5")} {
			flat.FeeMultiplier = feeM
			require.False(t, flat.IsDynamic())

			for _, xp := range [][2]string{{"1", "2"}, {"0", "0"}, {"1000", "0"}} {
				fee, err := flat.DynamicFee(d(xp[0]), d(xp[1]))
				require.NoError(t, err)
				require.True(t, flat.Fee.Equal(fee))
			}
		}
	})
}

func TestFailingDynamicFee(t *testing.T) {
	t.Parallel()

	params := dynfee.DefaultParams()

	tests := []struct {
		name string
		xpi  decimal.Decimal
		xpj  decimal.Decimal
	}{
		{"zero_xpi", decimal.Zero, d("1365000000000000000000000")},
		{"zero_xpj", d("475000000000000000000000"), decimal.Zero},
		{"zero_both", decimal.Zero, decimal.Zero},
		{
			"zero_balance",
			params.NormalizedBalance(dynfee.Scale(d("0.95")), decimal.Zero),
			d("1"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := params.DynamicFee(tt.xpi, tt.xpj)
			require.ErrorIs(t, err, dynfee.ErrZeroNormalizedBalance)
		})
	}
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, dynfee.DefaultParams().Validate())

	tests := []struct {
		name   string
		modify func(p *dynfee.Params)
	}{
		{"zero_precision", func(p *dynfee.Params) { p.Precision = decimal.Zero }},
		{"zero_fee_denominator", func(p *dynfee.Params) { p.FeeDenominator = decimal.Zero }},
		{"negative_fee", func(p *dynfee.Params) { p.Fee = d("-1") }},
		{"negative_fee_multiplier", func(p *dynfee.Params) { p.FeeMultiplier = d("-1") }},
		{"negative_division_precision", func(p *dynfee.Params) { p.DivisionPrecision = -1 }},
		{"division_precision_too_high", func(p *dynfee.Params) {
			p.DivisionPrecision = dynfee.MaxDivisionPrecision + 1
		}},
		{"fee_out_of_range", func(p *dynfee.Params) { p.Fee = d("1e2000000000") }},
		{"precision_out_of_range", func(p *dynfee.Params) { p.Precision = d("1e-2000000000") }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := dynfee.DefaultParams()
			tt.modify(&params)
			require.ErrorIs(t, params.Validate(), dynfee.ErrInvalidParams)
		})
	}
}

func TestUnscale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		modify   func(p *dynfee.Params)
		amount   string
		expected string
	}{
		{"one", func(p *dynfee.Params) {}, "1000000000000000000", "1"},
		{"base_fee", func(p *dynfee.Params) {}, "10000000", "0.00000000001"},
		{
			"custom_fee_denominator",
			func(p *dynfee.Params) {
				p.FeeDenominator = d("1000000")
				p.FeeMultiplier = d("1000000")
			},
			"10000000",
			"0.00000000001",
		},
		{
			"max_division_precision",
			func(p *dynfee.Params) { p.DivisionPrecision = dynfee.MaxDivisionPrecision },
			"1",
			"0.000000000000000001",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := dynfee.DefaultParams()
			tt.modify(&params)
			require.NoError(t, params.Validate())
			require.Equal(t, tt.expected, params.Unscale(d(tt.amount)).String())
		})
	}

	t.Run("flat fee with custom fee denominator", func(t *testing.T) {
		t.Parallel()

		params := dynfee.DefaultParams()
		params.FeeDenominator = d("1000000")
		params.FeeMultiplier = d("1000000")

		fee, err := params.DynamicFee(d("1"), d("2"))
		require.NoError(t, err)
		require.Equal(t, "0.00000000001", params.Unscale(fee).String())
	})
}

func TestCheckAmount(t *testing.T) {
	t.Parallel()

	valid := []string{"0", "0e2000000000", "1", "-0.95", "1.7e308", "4.9e-324"}
	for _, v := range valid {
		require.NoError(t, dynfee.CheckAmount(d(v)), v)
	}

	invalid := []string{"1e309", "-1e400", "1e-325", "1e2000000000", "1e-2000000000"}
	for _, v := range invalid {
		require.ErrorIs(t, dynfee.CheckAmount(d(v)), dynfee.ErrAmountOutOfRange, v)
	}
}
