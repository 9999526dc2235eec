package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prasetya/academic-datamart/internal/catalog"
)

func TestBuildRevenueSummary_Amounts_Reconcile(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows := buildRevenueSummary(rng)
	require.Len(t, rows, catalog.TotalPrograms()*len(financePeriods))

	for _, row := range rows {
		require.InDelta(t, row.TotalBilled*row.CollectionRate/100, row.TotalPaid, 0.01)
		require.InDelta(t, row.TotalBilled-row.TotalPaid, row.Outstanding, 0.01)
		require.GreaterOrEqual(t, row.CollectionRate, 75.0)
		require.LessOrEqual(t, row.CollectionRate, 95.0)
		require.Equal(t, "SPP", row.RevenueKind)
	}
}

func TestBuildPaymentAnalysis_CashRows_HaveNoInstallments(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	rows := buildPaymentAnalysis(rng)
	require.Len(t, rows, len(catalog.Faculties)*len(paymentMethods)*len(financePeriods))

	for _, row := range rows {
		require.Contains(t, paymentMethods, row.Method)
		if row.Method == "Cash" {
			require.Zero(t, row.InstallmentCount)
		} else {
			require.LessOrEqual(t, row.InstallmentCount, 10)
		}
	}
}

func TestBuildFinancialKPI_NetIncome_EqualsRevenueMinusCost(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	rows := buildFinancialKPI(rng)
	require.Len(t, rows, len(financePeriods)*len(catalog.Faculties))

	for _, row := range rows {
		require.InDelta(t, row.TotalRevenue-row.OperationalCost, row.NetIncome, 0.01)
		require.Less(t, row.OperationalCost, row.TotalRevenue)
		require.Greater(t, row.NetIncome, 0.0)
	}
}
