package generator

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/prasetya/academic-datamart/internal/catalog"
	"github.com/prasetya/academic-datamart/internal/datamart"
	"github.com/prasetya/academic-datamart/internal/pkg/logger"
)

// AcademicGenerator populates the akademik collection: course_performance,
// grade_distribution and academic_trends.
type AcademicGenerator struct {
	store *datamart.Store
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewAcademicGenerator creates the academic domain generator.
func NewAcademicGenerator(store *datamart.Store, rng *rand.Rand) *AcademicGenerator {
	return &AcademicGenerator{store: store, rng: rng, faker: newFaker(rng)}
}

type coursePerformanceRow struct {
	Code          string
	Name          string
	Faculty       string
	Program       string
	Credits       int
	Semester      int
	Kind          string
	Lecturer      string
	Enrollment    int
	AverageGrade  float64
	PassRate      float64
	AverageAttend float64
	AcademicYear  string
}

var coursePerformanceColumns = []string{
	"kode_matkul", "nama_matkul", "fakultas", "program_studi", "sks",
	"semester", "jenis_matkul", "dosen_pengampu", "jumlah_peserta",
	"rata_rata_nilai", "tingkat_kelulusan", "rata_rata_kehadiran",
	"tahun_akademik",
}

func (r coursePerformanceRow) values() []any {
	return []any{
		r.Code, r.Name, r.Faculty, r.Program, r.Credits,
		r.Semester, r.Kind, r.Lecturer, r.Enrollment,
		r.AverageGrade, r.PassRate, r.AverageAttend,
		r.AcademicYear,
	}
}

func buildCoursePerformance(rng *rand.Rand, faker *gofakeit.Faker, count int) []coursePerformanceRow {
	rows := make([]coursePerformanceRow, 0, count)
	for i := 0; i < count; i++ {
		faculty := catalog.RandomFaculty(rng)
		program := catalog.RandomProgram(rng, faculty)

		rows = append(rows, coursePerformanceRow{
			Code:          courseCode(rng),
			Name:          catalog.RandomCourse(rng, program),
			Faculty:       faculty,
			Program:       program,
			Credits:       pick(rng, []int{2, 3, 4}),
			Semester:      between(rng, 1, 8),
			Kind:          pick(rng, []string{"Wajib", "Pilihan"}),
			Lecturer:      faker.Name(),
			Enrollment:    between(rng, 15, 50),
			AverageGrade:  round2(uniform(rng, 65, 85)),
			PassRate:      round2(uniform(rng, 80, 100)),
			AverageAttend: round2(uniform(rng, 75, 95)),
			AcademicYear:  AcademicYear,
		})
	}
	return rows
}

// GenerateCoursePerformance synthesizes and appends course performance
// records.
func (g *AcademicGenerator) GenerateCoursePerformance(ctx context.Context, count int) error {
	logger.Info().Int("count", count).Msg("Generating course performance records")

	rows := buildCoursePerformance(g.rng, g.faker, count)
	added, err := g.store.Append(ctx, "course_performance", coursePerformanceColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added course performance records")
	return nil
}

// fabricateCourseRefs builds a same-shaped parent set used when
// course_performance cannot be read back.
func fabricateCourseRefs(rng *rand.Rand, count int) []datamart.CourseRef {
	refs := make([]datamart.CourseRef, 0, count)
	for i := 0; i < count; i++ {
		faculty := catalog.RandomFaculty(rng)
		program := catalog.RandomProgram(rng, faculty)
		refs = append(refs, datamart.CourseRef{
			Code:       fmt.Sprintf("MK%d", 1000+i),
			Name:       catalog.RandomCourse(rng, program),
			Faculty:    faculty,
			Program:    program,
			Enrollment: between(rng, 15, 50),
		})
	}
	return refs
}

type gradeDistributionRow struct {
	Code         string
	Name         string
	Faculty      string
	Program      string
	Lecturer     string
	CountA       int
	CountAB      int
	CountB       int
	CountBC      int
	CountC       int
	CountD       int
	CountE       int
	Total        int
	Semester     string
	AcademicYear string
}

var gradeDistributionColumns = []string{
	"kode_matkul", "nama_matkul", "fakultas", "program_studi",
	"dosen_pengampu", "jumlah_a", "jumlah_ab", "jumlah_b", "jumlah_bc",
	"jumlah_c", "jumlah_d", "jumlah_e", "total_mahasiswa", "semester",
	"tahun_akademik",
}

func (r gradeDistributionRow) values() []any {
	return []any{
		r.Code, r.Name, r.Faculty, r.Program,
		r.Lecturer, r.CountA, r.CountAB, r.CountB, r.CountBC,
		r.CountC, r.CountD, r.CountE, r.Total, r.Semester,
		r.AcademicYear,
	}
}

// splitGrades draws six buckets as independent sub-ranges of the enrollment
// and forces the lowest bucket to absorb the remainder so the seven buckets
// sum exactly to the total; the final bucket is clamped at zero so drawing
// past the total never yields a negative count.
func splitGrades(rng *rand.Rand, total int) (a, ab, b, bc, c, d, e int) {
	a = rng.Intn(int(float64(total)*0.15) + 1)
	ab = rng.Intn(int(float64(total)*0.20) + 1)
	b = rng.Intn(int(float64(total)*0.25) + 1)
	bc = rng.Intn(int(float64(total)*0.20) + 1)
	c = rng.Intn(int(float64(total)*0.15) + 1)
	d = rng.Intn(int(float64(total)*0.05) + 1)

	assigned := a + ab + b + bc + c + d
	e = total - assigned
	if e < 0 {
		e = 0
	}
	return a, ab, b, bc, c, d, e
}

func buildGradeDistribution(rng *rand.Rand, faker *gofakeit.Faker, courses []datamart.CourseRef, count int) []gradeDistributionRow {
	rows := make([]gradeDistributionRow, 0, count)
	for i := 0; i < count; i++ {
		course := courses[i%len(courses)]
		a, ab, b, bc, c, d, e := splitGrades(rng, course.Enrollment)

		rows = append(rows, gradeDistributionRow{
			Code:         course.Code,
			Name:         course.Name,
			Faculty:      course.Faculty,
			Program:      course.Program,
			Lecturer:     faker.Name(),
			CountA:       a,
			CountAB:      ab,
			CountB:       b,
			CountBC:      bc,
			CountC:       c,
			CountD:       d,
			CountE:       e,
			Total:        course.Enrollment,
			Semester:     pick(rng, []string{"Ganjil", "Genap"}),
			AcademicYear: AcademicYear,
		})
	}
	return rows
}

// GenerateGradeDistribution synthesizes and appends grade distribution
// records, linking to persisted courses when the table is readable.
func (g *AcademicGenerator) GenerateGradeDistribution(ctx context.Context, count int) error {
	logger.Info().Int("count", count).Msg("Generating grade distribution records")

	courses, ok := g.store.SampleCourses(ctx, 100)
	if !ok || len(courses) == 0 {
		courses = fabricateCourseRefs(g.rng, 100)
	}

	rows := buildGradeDistribution(g.rng, g.faker, courses, count)
	added, err := g.store.Append(ctx, "grade_distribution", gradeDistributionColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added grade distribution records")
	return nil
}

type academicTrendRow struct {
	Period       string
	Faculty      string
	Program      string
	Metric       string
	Value        float64
	Unit         string
	ChangePct    float64
	Category     string
	Description  string
	AcademicYear string
}

var academicTrendColumns = []string{
	"periode", "fakultas", "program_studi", "metrik", "nilai", "satuan",
	"persentase_perubahan", "kategori", "deskripsi", "tahun_akademik",
}

func (r academicTrendRow) values() []any {
	return []any{
		r.Period, r.Faculty, r.Program, r.Metric, r.Value, r.Unit,
		r.ChangePct, r.Category, r.Description, r.AcademicYear,
	}
}

var trendPeriods = []string{"2023-1", "2023-2", "2024-1", "2024-2"}

var trendMetrics = []string{
	"IPK Rata-rata", "Tingkat Kelulusan", "Tingkat Kehadiran",
	"Jumlah Mahasiswa Baru", "Dropout Rate",
}

// buildAcademicTrends emits three randomly chosen metrics per faculty,
// program and period combination.
func buildAcademicTrends(rng *rand.Rand) []academicTrendRow {
	var rows []academicTrendRow
	for _, faculty := range catalog.Faculties {
		for _, program := range catalog.Programs[faculty] {
			for _, period := range trendPeriods {
				for _, idx := range rng.Perm(len(trendMetrics))[:3] {
					metric := trendMetrics[idx]

					var value float64
					var unit string
					switch metric {
					case "IPK Rata-rata":
						value = round2(uniform(rng, 2.8, 3.8))
						unit = "Skala 4.0"
					case "Tingkat Kelulusan", "Tingkat Kehadiran":
						value = round2(uniform(rng, 75, 95))
						unit = "Persen"
					case "Jumlah Mahasiswa Baru":
						value = float64(between(rng, 50, 200))
						unit = "Orang"
					default: // Dropout Rate
						value = round2(uniform(rng, 2, 8))
						unit = "Persen"
					}

					rows = append(rows, academicTrendRow{
						Period:       period,
						Faculty:      faculty,
						Program:      program,
						Metric:       metric,
						Value:        value,
						Unit:         unit,
						ChangePct:    round2(uniform(rng, -10, 15)),
						Category:     pick(rng, []string{"Akademik", "Operasional", "Keuangan"}),
						Description:  fmt.Sprintf("Trend %s untuk %s periode %s", metric, program, period),
						AcademicYear: AcademicYear,
					})
				}
			}
		}
	}
	return rows
}

// GenerateAcademicTrends synthesizes and appends trend metrics per faculty,
// program and period.
func (g *AcademicGenerator) GenerateAcademicTrends(ctx context.Context) error {
	logger.Info().Msg("Generating academic trends records")

	rows := buildAcademicTrends(g.rng)
	added, err := g.store.Append(ctx, "academic_trends", academicTrendColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added academic trends records")
	return nil
}

// GenerateAll populates all three academic tables, parents first.
func (g *AcademicGenerator) GenerateAll(ctx context.Context) error {
	if err := g.GenerateCoursePerformance(ctx, 200); err != nil {
		return err
	}
	if err := g.GenerateGradeDistribution(ctx, 150); err != nil {
		return err
	}
	return g.GenerateAcademicTrends(ctx)
}
