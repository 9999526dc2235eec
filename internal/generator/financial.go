package generator

import (
	"context"
	"math/rand"

	"github.com/prasetya/academic-datamart/internal/catalog"
	"github.com/prasetya/academic-datamart/internal/datamart"
	"github.com/prasetya/academic-datamart/internal/pkg/logger"
)

// FinancialGenerator populates the keuangan collection: revenue_summary,
// payment_analysis and financial_kpi.
type FinancialGenerator struct {
	store *datamart.Store
	rng   *rand.Rand
}

// NewFinancialGenerator creates the financial domain generator.
func NewFinancialGenerator(store *datamart.Store, rng *rand.Rand) *FinancialGenerator {
	return &FinancialGenerator{store: store, rng: rng}
}

var financePeriods = []string{"2024-1", "2024-2"}

type revenueSummaryRow struct {
	Faculty        string
	Program        string
	Period         string
	TotalBilled    float64
	TotalPaid      float64
	Outstanding    float64
	CollectionRate float64
	StudentCount   int
	RevenueKind    string
	AcademicYear   string
}

var revenueSummaryColumns = []string{
	"periode", "fakultas", "program_studi", "jenis_pendapatan",
	"total_tagihan", "total_terbayar", "total_outstanding",
	"jumlah_mahasiswa", "tingkat_kolektibilitas", "tahun_akademik",
}

func (r revenueSummaryRow) values() []any {
	return []any{
		r.Period, r.Faculty, r.Program, r.RevenueKind,
		r.TotalBilled, r.TotalPaid, r.Outstanding,
		r.StudentCount, r.CollectionRate, r.AcademicYear,
	}
}

// buildRevenueSummary derives paid and outstanding amounts from the billed
// total and collection rate so the three figures always reconcile.
func buildRevenueSummary(rng *rand.Rand) []revenueSummaryRow {
	var rows []revenueSummaryRow
	for _, faculty := range catalog.Faculties {
		for _, program := range catalog.Programs[faculty] {
			for _, period := range financePeriods {
				billed := round2(uniform(rng, 500_000_000, 2_000_000_000))
				rate := round2(uniform(rng, 75, 95))
				paid := round2(billed * rate / 100)

				rows = append(rows, revenueSummaryRow{
					Faculty:        faculty,
					Program:        program,
					Period:         period,
					TotalBilled:    billed,
					TotalPaid:      paid,
					Outstanding:    round2(billed - paid),
					CollectionRate: rate,
					StudentCount:   between(rng, 50, 200),
					RevenueKind:    "SPP",
					AcademicYear:   AcademicYear,
				})
			}
		}
	}
	return rows
}

// GenerateRevenueSummary synthesizes and appends per-program revenue
// summaries.
func (g *FinancialGenerator) GenerateRevenueSummary(ctx context.Context) error {
	logger.Info().Msg("Generating revenue summary records")

	rows := buildRevenueSummary(g.rng)
	added, err := g.store.Append(ctx, "revenue_summary", revenueSummaryColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added revenue summary records")
	return nil
}

type paymentAnalysisRow struct {
	Faculty          string
	Method           string
	Period           string
	TransactionCount int
	TotalAmount      float64
	AvgPaymentDays   int
	LateRate         float64
	InstallmentCount int
	AcademicYear     string
}

var paymentAnalysisColumns = []string{
	"periode", "fakultas", "metode_pembayaran", "jumlah_transaksi",
	"total_nominal", "rata_rata_waktu_bayar", "tingkat_keterlambatan",
	"jumlah_cicilan", "tahun_akademik",
}

func (r paymentAnalysisRow) values() []any {
	return []any{
		r.Period, r.Faculty, r.Method, r.TransactionCount,
		r.TotalAmount, r.AvgPaymentDays, r.LateRate,
		r.InstallmentCount, r.AcademicYear,
	}
}

var paymentMethods = []string{
	"Transfer Bank", "Virtual Account", "Kartu Kredit", "E-wallet", "Cash",
}

func buildPaymentAnalysis(rng *rand.Rand) []paymentAnalysisRow {
	var rows []paymentAnalysisRow
	for _, faculty := range catalog.Faculties {
		for _, method := range paymentMethods {
			for _, period := range financePeriods {
				rows = append(rows, paymentAnalysisRow{
					Faculty:          faculty,
					Method:           method,
					Period:           period,
					TransactionCount: between(rng, 50, 500),
					TotalAmount:      round2(uniform(rng, 100_000_000, 1_000_000_000)),
					AvgPaymentDays:   between(rng, 1, 30),
					LateRate:         round2(uniform(rng, 5, 25)),
					InstallmentCount: installments(rng, method),
					AcademicYear:     AcademicYear,
				})
			}
		}
	}
	return rows
}

// installments is only meaningful for methods that support staged payment.
func installments(rng *rand.Rand, method string) int {
	if method == "Cash" {
		return 0
	}
	return between(rng, 0, 10)
}

// GeneratePaymentAnalysis synthesizes and appends payment behavior records
// per faculty and method.
func (g *FinancialGenerator) GeneratePaymentAnalysis(ctx context.Context) error {
	logger.Info().Msg("Generating payment analysis records")

	rows := buildPaymentAnalysis(g.rng)
	added, err := g.store.Append(ctx, "payment_analysis", paymentAnalysisColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added payment analysis records")
	return nil
}

type financialKPIRow struct {
	Period            string
	Faculty           string
	TotalRevenue      float64
	OperationalCost   float64
	NetIncome         float64
	CollectionRate    float64
	BadDebtRate       float64
	AvgPaymentDays    int
	ScholarshipBudget float64
	AcademicYear      string
}

var financialKPIColumns = []string{
	"periode", "fakultas", "total_revenue", "collection_rate",
	"bad_debt_ratio", "average_payment_time", "scholarship_disbursed",
	"operational_cost", "net_income", "tahun_akademik",
}

func (r financialKPIRow) values() []any {
	return []any{
		r.Period, r.Faculty, r.TotalRevenue, r.CollectionRate,
		r.BadDebtRate, r.AvgPaymentDays, r.ScholarshipBudget,
		r.OperationalCost, r.NetIncome, r.AcademicYear,
	}
}

// buildFinancialKPI keeps operational cost below 80% of revenue so net
// income stays positive.
func buildFinancialKPI(rng *rand.Rand) []financialKPIRow {
	var rows []financialKPIRow
	for _, period := range financePeriods {
		for _, faculty := range catalog.Faculties {
			revenue := round2(uniform(rng, 1_000_000_000, 5_000_000_000))
			cost := round2(uniform(rng, 800_000_000, revenue*0.8))

			rows = append(rows, financialKPIRow{
				Period:            period,
				Faculty:           faculty,
				TotalRevenue:      revenue,
				OperationalCost:   cost,
				NetIncome:         round2(revenue - cost),
				CollectionRate:    round2(uniform(rng, 80, 95)),
				BadDebtRate:       round2(uniform(rng, 2, 8)),
				AvgPaymentDays:    between(rng, 15, 45),
				ScholarshipBudget: round2(uniform(rng, 50_000_000, 300_000_000)),
				AcademicYear:      AcademicYear,
			})
		}
	}
	return rows
}

// GenerateFinancialKPI synthesizes and appends per-faculty KPI records.
func (g *FinancialGenerator) GenerateFinancialKPI(ctx context.Context) error {
	logger.Info().Msg("Generating financial KPI records")

	rows := buildFinancialKPI(g.rng)
	added, err := g.store.Append(ctx, "financial_kpi", financialKPIColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added financial KPI records")
	return nil
}

// GenerateAll populates all three financial tables.
func (g *FinancialGenerator) GenerateAll(ctx context.Context) error {
	if err := g.GenerateRevenueSummary(ctx); err != nil {
		return err
	}
	if err := g.GeneratePaymentAnalysis(ctx); err != nil {
		return err
	}
	return g.GenerateFinancialKPI(ctx)
}
