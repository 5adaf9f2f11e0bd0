package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"v3pricing/internal/model"
)

func TestTrackedAmountUSD(t *testing.T) {
	bundle := model.Bundle{ID: model.BundleID, EthPriceUSD: dec("2000")}
	token0 := pricedToken(usdc, "0.0005")
	token1 := pricedToken(weth, "1")

	cases := []struct {
		name      string
		whitelist model.AddressSet
		amount0   string
		amount1   string
		want      string
	}{
		{name: "both whitelisted", whitelist: model.NewAddressSet(usdc, weth), amount0: "100", amount1: "0.05", want: "200"},
		{name: "token0 whitelisted", whitelist: model.NewAddressSet(usdc), amount0: "50", amount1: "7", want: "100"},
		{name: "token1 whitelisted", whitelist: model.NewAddressSet(weth), amount0: "50", amount1: "0.05", want: "200"},
		{name: "neither whitelisted", whitelist: model.NewAddressSet(dai), amount0: "100000", amount1: "30", want: "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TrackedAmountUSD(dec(tc.amount0), token0, dec(tc.amount1), token1, bundle, tc.whitelist)
			assert.True(t, got.Equal(dec(tc.want)), "got %s want %s", got, tc.want)
		})
	}
}

func TestTrackedAmountUSDSingleSideDoubles(t *testing.T) {
	bundle := model.Bundle{ID: model.BundleID, EthPriceUSD: dec("4")}
	token0 := pricedToken(usdc, "0.5")
	token1 := pricedToken(uni, "3")

	got := TrackedAmountUSD(dec("50"), token0, dec("999"), token1, bundle, model.NewAddressSet(usdc))
	assert.True(t, got.Equal(dec("200")), "got %s", got)
}

func TestUntrackedAmountUSD(t *testing.T) {
	bundle := model.Bundle{ID: model.BundleID, EthPriceUSD: dec("2000")}
	got := UntrackedAmountUSD(dec("100"), pricedToken(uni, "0.0005"), dec("0.05"), pricedToken(link, "1"), bundle)
	assert.True(t, got.Equal(dec("200")), "got %s", got)
	assert.True(t, PriceUSD(pricedToken(link, "0.01"), bundle).Equal(dec("20")))
}
