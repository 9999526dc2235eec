package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/prasetya/academic-datamart/internal/catalog"
	"github.com/prasetya/academic-datamart/internal/datamart"
	"github.com/prasetya/academic-datamart/internal/pkg/logger"
)

// InstitutionalGenerator populates the institusi collection. Unlike the
// other domains, faculty_statistics is updated in place from live counts
// over the student and lecturer tables rather than appended.
type InstitutionalGenerator struct {
	store *datamart.Store
	rng   *rand.Rand
}

// NewInstitutionalGenerator creates the institutional domain generator.
func NewInstitutionalGenerator(store *datamart.Store, rng *rand.Rand) *InstitutionalGenerator {
	return &InstitutionalGenerator{store: store, rng: rng}
}

// facultyCounts aggregates live figures for one faculty. Each figure falls
// back to a plausible random value when the source table cannot be read, so
// statistics refresh still completes on a partially populated datamart.
func (g *InstitutionalGenerator) facultyCounts(ctx context.Context, faculty string) (students, lecturers int64, avgGPA float64) {
	students, err := g.store.CountWhere(ctx, "student_performance", squirrel.Eq{
		"fakultas":         faculty,
		"status_mahasiswa": "Aktif",
	})
	if err != nil {
		logger.Warn().Err(err).Str("faculty", faculty).Msg("Falling back to random student count")
		students = int64(between(g.rng, 100, 300))
	}

	lecturers, err = g.store.CountWhere(ctx, "lecturer_profile", squirrel.Eq{
		"fakultas":     faculty,
		"status_aktif": true,
	})
	if err != nil {
		logger.Warn().Err(err).Str("faculty", faculty).Msg("Falling back to random lecturer count")
		lecturers = int64(between(g.rng, 20, 60))
	}

	avgGPA, ok, err := g.store.AvgWhere(ctx, "student_performance", "ipk", squirrel.Eq{
		"fakultas": faculty,
	})
	if err != nil || !ok {
		if err != nil {
			logger.Warn().Err(err).Str("faculty", faculty).Msg("Falling back to random average GPA")
		}
		avgGPA = uniform(g.rng, 3.0, 3.6)
	}

	return students, lecturers, avgGPA
}

// UpdateFacultyStatistics refreshes the per-faculty statistics rows from
// live counts. A faculty whose update fails is logged and skipped so the
// remaining faculties still refresh.
func (g *InstitutionalGenerator) UpdateFacultyStatistics(ctx context.Context) error {
	logger.Info().Msg("Updating faculty statistics from live counts")

	updated := 0
	for _, faculty := range catalog.Faculties {
		students, lecturers, avgGPA := g.facultyCounts(ctx, faculty)

		graduates := int64(0)
		if students > 0 {
			lo := students * 10 / 100
			hi := students * 30 / 100
			if hi <= lo {
				graduates = lo
			} else {
				graduates = lo + g.rng.Int63n(hi-lo+1)
			}
		}

		err := g.store.Update(ctx, "faculty_statistics", map[string]any{
			"jumlah_mahasiswa_aktif":   students,
			"jumlah_dosen":             lecturers,
			"jumlah_program_studi":     catalog.ProgramCount(faculty),
			"rata_rata_ipk_fakultas":   round2(avgGPA),
			"jumlah_lulusan_tahun_ini": graduates,
			"tingkat_kehadiran_rata":   round2(uniform(g.rng, 80, 95)),
			"tahun_akademik":           AcademicYear,
		}, squirrel.Eq{"fakultas": faculty})
		if err != nil {
			logger.Warn().Err(err).Str("faculty", faculty).Msg("Skipping faculty statistics update")
			continue
		}
		updated++
	}

	logger.Info().Int("updated", updated).Msg("Updated faculty statistics")
	return nil
}

type universityPerformanceRow struct {
	Period         string
	TotalStudents  int64
	TotalLecturers int64
	TotalPrograms  int
	TotalFaculties int
	AverageGPA     float64
	GraduationRate float64
	DropoutRate    float64
	StudentRatio   float64
	Satisfaction   float64
	Accreditation  string
	AcademicYear   string
}

var universityPerformanceColumns = []string{
	"periode", "total_mahasiswa", "total_dosen", "total_program_studi",
	"total_fakultas", "rata_rata_ipk_universitas", "tingkat_kelulusan",
	"tingkat_drop_out", "student_lecturer_ratio",
	"tingkat_kepuasan_mahasiswa", "akreditasi_institusi", "tahun_akademik",
}

func (r universityPerformanceRow) values() []any {
	return []any{
		r.Period, r.TotalStudents, r.TotalLecturers, r.TotalPrograms,
		r.TotalFaculties, r.AverageGPA, r.GraduationRate,
		r.DropoutRate, r.StudentRatio,
		r.Satisfaction, r.Accreditation, r.AcademicYear,
	}
}

// universityTotals aggregates university-wide figures with random fallbacks
// mirroring facultyCounts.
func (g *InstitutionalGenerator) universityTotals(ctx context.Context) (students, lecturers int64, avgGPA float64) {
	students, err := g.store.Count(ctx, "student_performance")
	if err != nil {
		logger.Warn().Err(err).Msg("Falling back to random university student total")
		students = int64(between(g.rng, 3000, 5000))
	}

	lecturers, err = g.store.Count(ctx, "lecturer_profile")
	if err != nil {
		logger.Warn().Err(err).Msg("Falling back to random university lecturer total")
		lecturers = int64(between(g.rng, 200, 400))
	}

	avgGPA, ok, err := g.store.AvgWhere(ctx, "student_performance", "ipk", squirrel.Eq{})
	if err != nil || !ok {
		if err != nil {
			logger.Warn().Err(err).Msg("Falling back to random university average GPA")
		}
		avgGPA = uniform(g.rng, 3.0, 3.8)
	}

	return students, lecturers, avgGPA
}

// GenerateUniversityPerformance appends one university-wide record per
// reporting period.
func (g *InstitutionalGenerator) GenerateUniversityPerformance(ctx context.Context) error {
	logger.Info().Msg("Generating university performance records")

	students, lecturers, avgGPA := g.universityTotals(ctx)

	divisor := lecturers
	if divisor < 1 {
		divisor = 1
	}

	rows := make([]universityPerformanceRow, 0, 2)
	for _, period := range []string{"2023/2024", "2024/2025"} {
		rows = append(rows, universityPerformanceRow{
			Period:         period,
			TotalStudents:  students,
			TotalLecturers: lecturers,
			TotalPrograms:  catalog.TotalPrograms(),
			TotalFaculties: len(catalog.Faculties),
			AverageGPA:     round2(avgGPA),
			GraduationRate: round2(uniform(g.rng, 85, 95)),
			DropoutRate:    round2(uniform(g.rng, 3, 8)),
			StudentRatio:   round2(float64(students) / float64(divisor)),
			Satisfaction:   round2(uniform(g.rng, 75, 90)),
			Accreditation:  "B",
			AcademicYear:   AcademicYear,
		})
	}

	added, err := g.store.Append(ctx, "university_performance", universityPerformanceColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added university performance records")
	return nil
}

type accreditationRow struct {
	Unit         string
	UnitKind     string
	Faculty      string
	Current      string
	AssessedAt   time.Time
	ValidUntil   time.Time
	Previous     string
	Renewal      string
	TargetNext   string
	Progress     float64
	AcademicYear string
}

var accreditationColumns = []string{
	"unit_name", "unit_type", "fakultas", "akreditasi_current",
	"tanggal_akreditasi", "masa_berlaku", "akreditasi_previous",
	"status_renewal", "target_akreditasi", "progress_percentage",
	"tahun_akademik",
}

func (r accreditationRow) values() []any {
	return []any{
		r.Unit, r.UnitKind, r.Faculty, r.Current,
		r.AssessedAt, r.ValidUntil, r.Previous,
		r.Renewal, r.TargetNext, r.Progress,
		r.AcademicYear,
	}
}

// BAN-PT grades: the older A/B/C scale and the newer Unggul/Baik Sekali/Baik
// scale coexist while units migrate between instruments.
var (
	programGrades   = []string{"A", "B", "C", "Unggul", "Baik Sekali"}
	programPrevious = []string{"B", "C", "Baik"}
	programRenewals = []string{"On Track", "Needs Attention", "In Progress"}
	programTargets  = []string{"A", "Unggul"}

	facultyGrades   = []string{"A", "B", "Unggul", "Baik Sekali"}
	facultyRenewals = []string{"On Track", "In Progress"}
)

func (g *InstitutionalGenerator) accreditationDates(now time.Time) (assessed, validUntil time.Time) {
	assessed = now.AddDate(0, 0, -between(g.rng, 365, 1095))
	validUntil = now.AddDate(0, 0, between(g.rng, 365, 1825))
	return assessed, validUntil
}

func (g *InstitutionalGenerator) buildAccreditation(now time.Time) []accreditationRow {
	var rows []accreditationRow

	for _, faculty := range catalog.Faculties {
		for _, program := range catalog.Programs[faculty] {
			assessed, validUntil := g.accreditationDates(now)
			rows = append(rows, accreditationRow{
				Unit:         program,
				UnitKind:     "Program Studi",
				Faculty:      faculty,
				Current:      pick(g.rng, programGrades),
				AssessedAt:   assessed,
				ValidUntil:   validUntil,
				Previous:     pick(g.rng, programPrevious),
				Renewal:      pick(g.rng, programRenewals),
				TargetNext:   pick(g.rng, programTargets),
				Progress:     round2(uniform(g.rng, 60, 95)),
				AcademicYear: AcademicYear,
			})
		}
	}

	for _, faculty := range catalog.Faculties {
		assessed, validUntil := g.accreditationDates(now)
		rows = append(rows, accreditationRow{
			Unit:         faculty,
			UnitKind:     "Fakultas",
			Faculty:      faculty,
			Current:      pick(g.rng, facultyGrades),
			AssessedAt:   assessed,
			ValidUntil:   validUntil,
			Previous:     "B",
			Renewal:      pick(g.rng, facultyRenewals),
			TargetNext:   "A",
			Progress:     round2(uniform(g.rng, 70, 90)),
			AcademicYear: AcademicYear,
		})
	}

	rows = append(rows, accreditationRow{
		Unit:         "Universitas Indonesia Raya",
		UnitKind:     "Institusi",
		Faculty:      "All",
		Current:      "B",
		AssessedAt:   now.AddDate(0, 0, -730),
		ValidUntil:   now.AddDate(0, 0, 1095),
		Previous:     "C",
		Renewal:      "In Progress",
		TargetNext:   "A",
		Progress:     75.5,
		AcademicYear: AcademicYear,
	})

	return rows
}

// GenerateAccreditationStatus appends one record per program, per faculty
// and one institution-wide record.
func (g *InstitutionalGenerator) GenerateAccreditationStatus(ctx context.Context) error {
	logger.Info().Msg("Generating accreditation status records")

	rows := g.buildAccreditation(time.Now())
	added, err := g.store.Append(ctx, "accreditation_status", accreditationColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added accreditation status records")
	return nil
}

// GenerateAll refreshes faculty statistics and populates the remaining
// institutional tables.
func (g *InstitutionalGenerator) GenerateAll(ctx context.Context) error {
	if err := g.UpdateFacultyStatistics(ctx); err != nil {
		return err
	}
	if err := g.GenerateUniversityPerformance(ctx); err != nil {
		return err
	}
	return g.GenerateAccreditationStatus(ctx)
}
