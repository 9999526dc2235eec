package trainer

// Keuangan is the training corpus for financial queries.
var Keuangan = Domain{
	Collection: "keuangan_collection",
	SchemaName: "financial_schema",
	DocName:    "financial_documentation",
	DDL: []string{
		`-- Revenue Summary
CREATE TABLE datamart.revenue_summary
(
    id                     SERIAL PRIMARY KEY,
    periode                VARCHAR(20) NOT NULL,
    fakultas               VARCHAR(100),
    program_studi          VARCHAR(100),
    jenis_pendapatan       VARCHAR(50),
    total_tagihan          DECIMAL(15, 2),
    total_terbayar         DECIMAL(15, 2),
    total_outstanding      DECIMAL(15, 2),
    jumlah_mahasiswa       INTEGER,
    tingkat_kolektibilitas DECIMAL(5, 2),
    tahun_akademik         VARCHAR(20)
);
-- Contains revenue summary by faculty and program including collection rates`,
		`-- Payment Analysis
CREATE TABLE datamart.payment_analysis
(
    id                    SERIAL PRIMARY KEY,
    periode               VARCHAR(20) NOT NULL,
    fakultas              VARCHAR(100),
    metode_pembayaran     VARCHAR(50),
    jumlah_transaksi      INTEGER,
    total_nominal         DECIMAL(15, 2),
    rata_rata_waktu_bayar INTEGER,
    tingkat_keterlambatan DECIMAL(5, 2),
    jumlah_cicilan        INTEGER DEFAULT 0,
    tahun_akademik        VARCHAR(20)
);
-- Contains payment method analysis and collection patterns`,
		`-- Financial KPI
CREATE TABLE datamart.financial_kpi
(
    id                    SERIAL PRIMARY KEY,
    periode               VARCHAR(20) NOT NULL,
    fakultas              VARCHAR(100),
    total_revenue         DECIMAL(15, 2),
    collection_rate       DECIMAL(5, 2),
    bad_debt_ratio        DECIMAL(5, 2),
    average_payment_time  INTEGER,
    scholarship_disbursed DECIMAL(15, 2),
    operational_cost      DECIMAL(15, 2),
    net_income            DECIMAL(15, 2),
    tahun_akademik        VARCHAR(20)
);
-- Contains financial key performance indicators and metrics`,
	},
	Documentation: []string{
		`Indonesian Financial Terms:
- Pendapatan = Revenue
- Tagihan = Billing/Invoice
- Terbayar = Paid Amount
- Outstanding = Outstanding Balance
- Kolektibilitas = Collection Rate
- SPP = Tuition Fee (Sumbangan Pembinaan Pendidikan)
- Cicilan = Installment
- Beasiswa = Scholarship
- Biaya Operasional = Operational Cost`,
		`Financial Business Rules:
- Collection rate: percentage of billed amount collected
- Bad debt ratio: percentage of uncollectable debt
- Payment methods: Transfer Bank, Virtual Account, Kartu Kredit, E-wallet
- Average payment time: days from billing to payment
- Outstanding: total_tagihan - total_terbayar
- Tingkat keterlambatan: percentage of late payments
- All amounts in Indonesian Rupiah (IDR)`,
		`Financial Datamart Structure:
- revenue_summary: Revenue data by faculty and program
- payment_analysis: Payment method and timing analysis
- financial_kpi: Key financial performance indicators
- All amounts in Indonesian Rupiah (IDR)
- Use SUM for totals, AVG for rates and percentages
- Data is denormalized for fast query performance`,
	},
	Questions: []QuestionSQL{
		{
			Question: "Total pendapatan per fakultas",
			SQL:      "SELECT fakultas, SUM(total_terbayar) as total_pendapatan, SUM(total_tagihan) as total_tagihan, ROUND(SUM(total_terbayar) * 100.0 / SUM(total_tagihan), 2) as tingkat_koleksi FROM datamart.revenue_summary GROUP BY fakultas ORDER BY total_pendapatan DESC;",
		},
		{
			Question: "Metode pembayaran paling populer",
			SQL:      "SELECT metode_pembayaran, SUM(jumlah_transaksi) as total_transaksi, SUM(total_nominal) as total_nominal FROM datamart.payment_analysis GROUP BY metode_pembayaran ORDER BY total_transaksi DESC;",
		},
		{
			Question: "Tingkat kolektibilitas per program studi",
			SQL:      "SELECT program_studi, fakultas, ROUND(AVG(tingkat_kolektibilitas), 2) as rata_kolektibilitas FROM datamart.revenue_summary GROUP BY program_studi, fakultas ORDER BY rata_kolektibilitas DESC;",
		},
		{
			Question: "Outstanding pembayaran terbesar",
			SQL:      "SELECT fakultas, program_studi, SUM(total_outstanding) as total_piutang FROM datamart.revenue_summary GROUP BY fakultas, program_studi ORDER BY total_piutang DESC;",
		},
		{
			Question: "KPI keuangan universitas",
			SQL:      "SELECT periode, SUM(total_revenue) as total_revenue, ROUND(AVG(collection_rate), 2) as avg_collection_rate, ROUND(AVG(bad_debt_ratio), 2) as avg_bad_debt FROM datamart.financial_kpi GROUP BY periode ORDER BY periode DESC;",
		},
		{
			Question: "Perbandingan pendapatan per periode",
			SQL:      "SELECT rs.periode, SUM(rs.total_terbayar) as pendapatan, SUM(rs.total_outstanding) as piutang, COUNT(DISTINCT rs.fakultas) as jumlah_fakultas FROM datamart.revenue_summary rs GROUP BY rs.periode ORDER BY rs.periode;",
		},
		{
			Question: "Fakultas dengan tingkat keterlambatan pembayaran tertinggi",
			SQL:      "SELECT fakultas, ROUND(AVG(tingkat_keterlambatan), 2) as rata_keterlambatan, SUM(jumlah_transaksi) as total_transaksi FROM datamart.payment_analysis GROUP BY fakultas ORDER BY rata_keterlambatan DESC;",
		},
		{
			Question: "Rata-rata waktu pembayaran per metode",
			SQL:      "SELECT metode_pembayaran, ROUND(AVG(rata_rata_waktu_bayar), 2) as rata_waktu_bayar, SUM(jumlah_transaksi) as total_transaksi FROM datamart.payment_analysis GROUP BY metode_pembayaran ORDER BY rata_waktu_bayar ASC;",
		},
		{
			Question: "Profitabilitas per fakultas",
			SQL:      "SELECT fakultas, SUM(total_revenue) as revenue, SUM(operational_cost) as cost, SUM(net_income) as profit, ROUND(SUM(net_income) * 100.0 / SUM(total_revenue), 2) as profit_margin FROM datamart.financial_kpi GROUP BY fakultas ORDER BY profit DESC;",
		},
		{
			Question: "Total beasiswa yang disalurkan",
			SQL:      "SELECT periode, fakultas, SUM(scholarship_disbursed) as total_beasiswa, COUNT(*) as jumlah_record FROM datamart.financial_kpi GROUP BY periode, fakultas ORDER BY total_beasiswa DESC;",
		},
	},
}
