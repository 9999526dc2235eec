package trainer

// Institusi is the training corpus for faculty and institution-level
// queries.
var Institusi = Domain{
	Collection: "institusi_collection",
	SchemaName: "institutional_schema",
	DocName:    "institutional_documentation",
	DDL: []string{
		`-- Faculty Statistics
CREATE TABLE datamart.faculty_statistics
(
    id                       SERIAL PRIMARY KEY,
    fakultas                 VARCHAR(100) NOT NULL,
    dekan                    VARCHAR(100),
    tahun_berdiri            INTEGER,
    jumlah_program_studi     INTEGER,
    jumlah_dosen             INTEGER,
    jumlah_mahasiswa_aktif   INTEGER,
    jumlah_lulusan_tahun_ini INTEGER,
    rata_rata_ipk_fakultas   DECIMAL(3, 2),
    tingkat_kehadiran_rata   DECIMAL(5, 2),
    akreditasi_fakultas      VARCHAR(20),
    ranking_nasional         INTEGER,
    tahun_akademik           VARCHAR(20)
);
-- Contains faculty-level statistics including student counts, lecturer counts, GPA averages`,
		`-- University Performance
CREATE TABLE datamart.university_performance
(
    id                         SERIAL PRIMARY KEY,
    periode                    VARCHAR(20) NOT NULL,
    total_mahasiswa            INTEGER,
    total_dosen                INTEGER,
    total_program_studi        INTEGER,
    total_fakultas             INTEGER,
    rata_rata_ipk_universitas  DECIMAL(3, 2),
    tingkat_kelulusan          DECIMAL(5, 2),
    tingkat_drop_out           DECIMAL(5, 2),
    student_lecturer_ratio     DECIMAL(5, 2),
    tingkat_kepuasan_mahasiswa DECIMAL(5, 2),
    akreditasi_institusi       VARCHAR(20),
    tahun_akademik             VARCHAR(20)
);
-- Contains university-wide performance metrics and KPIs`,
		`-- Accreditation Status
CREATE TABLE datamart.accreditation_status
(
    id                  SERIAL PRIMARY KEY,
    unit_name           VARCHAR(100) NOT NULL,
    unit_type           VARCHAR(20),
    fakultas            VARCHAR(100),
    akreditasi_current  VARCHAR(20),
    tanggal_akreditasi  DATE,
    masa_berlaku        DATE,
    akreditasi_previous VARCHAR(20),
    status_renewal      VARCHAR(30),
    target_akreditasi   VARCHAR(20),
    progress_percentage DECIMAL(5, 2),
    tahun_akademik      VARCHAR(20)
);
-- Contains accreditation status and progress for programs, faculties, and institution`,
	},
	Documentation: []string{
		`Indonesian Institutional Terms:
- Fakultas = Faculty
- Dekan = Dean
- Akreditasi = Accreditation
- Institusi = Institution
- Ranking = Ranking/Rating
- Tingkat Kelulusan = Graduation Rate
- Tingkat Drop Out = Dropout Rate
- Kepuasan Mahasiswa = Student Satisfaction
- Program Studi = Study Program
- Performa = Performance`,
		`Institutional Business Rules:
- Akreditasi levels: 'A', 'B', 'C', 'Unggul', 'Baik Sekali', 'Baik'
- Unit types: 'Program Studi', 'Fakultas', 'Institusi'
- Status renewal: 'On Track', 'Needs Attention', 'In Progress'
- Student-lecturer ratio: ideal range 15-25 students per lecturer
- Accreditation validity: typically 5 years
- Progress percentage: 0-100% completion towards renewal`,
		`Institutional Datamart Structure:
- faculty_statistics: Complete faculty metrics without joins
- university_performance: University-wide KPIs and trends
- accreditation_status: Accreditation tracking and progress
- All tables designed for direct queries without complex joins
- Use aggregations and date calculations for analysis
- Data is denormalized for optimal performance`,
	},
	Questions: []QuestionSQL{
		{
			Question: "Statistik per fakultas",
			SQL:      "SELECT fakultas, jumlah_program_studi, jumlah_dosen, jumlah_mahasiswa_aktif, rata_rata_ipk_fakultas, akreditasi_fakultas FROM datamart.faculty_statistics ORDER BY jumlah_mahasiswa_aktif DESC;",
		},
		{
			Question: "Fakultas dengan IPK tertinggi",
			SQL:      "SELECT fakultas, rata_rata_ipk_fakultas, jumlah_mahasiswa_aktif FROM datamart.faculty_statistics ORDER BY rata_rata_ipk_fakultas DESC LIMIT 5;",
		},
		{
			Question: "Rasio dosen mahasiswa per fakultas",
			SQL:      "SELECT fakultas, jumlah_dosen, jumlah_mahasiswa_aktif, ROUND(jumlah_mahasiswa_aktif::decimal / jumlah_dosen, 2) as rasio_mahasiswa_dosen FROM datamart.faculty_statistics ORDER BY rasio_mahasiswa_dosen DESC;",
		},
		{
			Question: "Performa universitas secara keseluruhan",
			SQL:      "SELECT periode, total_mahasiswa, total_dosen, rata_rata_ipk_universitas, tingkat_kelulusan, tingkat_drop_out, student_lecturer_ratio FROM datamart.university_performance ORDER BY periode DESC LIMIT 1;",
		},
		{
			Question: "Status akreditasi program studi",
			SQL:      "SELECT unit_name, fakultas, akreditasi_current, tanggal_akreditasi, masa_berlaku, status_renewal FROM datamart.accreditation_status WHERE unit_type = 'Program Studi' ORDER BY masa_berlaku ASC;",
		},
		{
			Question: "Program studi yang perlu renewal akreditasi",
			SQL:      "SELECT unit_name, fakultas, akreditasi_current, masa_berlaku, EXTRACT(DAYS FROM masa_berlaku - CURRENT_DATE) as hari_tersisa FROM datamart.accreditation_status WHERE unit_type = 'Program Studi' AND masa_berlaku <= CURRENT_DATE + INTERVAL '1 year' ORDER BY masa_berlaku ASC;",
		},
		{
			Question: "Progress akreditasi institusi",
			SQL:      "SELECT unit_name, akreditasi_current, target_akreditasi, progress_percentage, status_renewal FROM datamart.accreditation_status WHERE unit_type = 'Institusi';",
		},
		{
			Question: "Fakultas dengan akreditasi terbaik",
			SQL:      "SELECT fakultas, akreditasi_fakultas, jumlah_program_studi, rata_rata_ipk_fakultas FROM datamart.faculty_statistics WHERE akreditasi_fakultas IN ('A', 'Unggul') ORDER BY akreditasi_fakultas, rata_rata_ipk_fakultas DESC;",
		},
		{
			Question: "Trend performa universitas",
			SQL:      "SELECT periode, total_mahasiswa, total_dosen, rata_rata_ipk_universitas, tingkat_kelulusan, tingkat_kepuasan_mahasiswa FROM datamart.university_performance ORDER BY periode;",
		},
		{
			Question: "Distribusi akreditasi program studi",
			SQL:      "SELECT akreditasi_current, COUNT(*) as jumlah_prodi, ROUND(COUNT(*) * 100.0 / SUM(COUNT(*)) OVER(), 2) as persentase FROM datamart.accreditation_status WHERE unit_type = 'Program Studi' GROUP BY akreditasi_current ORDER BY jumlah_prodi DESC;",
		},
		{
			Question: "Fakultas dengan lulusan terbanyak",
			SQL:      "SELECT fakultas, jumlah_lulusan_tahun_ini, jumlah_mahasiswa_aktif, ROUND(jumlah_lulusan_tahun_ini * 100.0 / jumlah_mahasiswa_aktif, 2) as tingkat_kelulusan_fakultas FROM datamart.faculty_statistics ORDER BY jumlah_lulusan_tahun_ini DESC;",
		},
		{
			Question: "Status renewal akreditasi per fakultas",
			SQL:      "SELECT a.fakultas, COUNT(*) as total_unit, SUM(CASE WHEN a.status_renewal = 'On Track' THEN 1 ELSE 0 END) as on_track, SUM(CASE WHEN a.status_renewal = 'Needs Attention' THEN 1 ELSE 0 END) as needs_attention, ROUND(AVG(a.progress_percentage), 2) as rata_progress FROM datamart.accreditation_status a WHERE a.unit_type = 'Program Studi' GROUP BY a.fakultas ORDER BY rata_progress DESC;",
		},
	},
}
