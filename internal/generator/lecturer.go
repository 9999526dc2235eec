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

// LecturerGenerator populates the dosen collection: lecturer_profile,
// lecturer_teaching and lecturer_activity.
type LecturerGenerator struct {
	store *datamart.Store
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewLecturerGenerator creates the lecturer domain generator.
func NewLecturerGenerator(store *datamart.Store, rng *rand.Rand) *LecturerGenerator {
	return &LecturerGenerator{store: store, rng: rng, faker: newFaker(rng)}
}

type lecturerProfileRow struct {
	NIP            string
	Name           string
	Gender         string
	Faculty        string
	Program        string
	Education      string
	FunctionalRank string
	CivilGrade     string
	CourseCount    int
	AdviseeCount   int
	CreditLoad     int
	Active         bool
	AcademicYear   string
}

var lecturerProfileColumns = []string{
	"nip", "nama_dosen", "jenis_kelamin", "fakultas", "program_studi",
	"pendidikan_terakhir", "jabatan_fungsional", "golongan",
	"total_mata_kuliah", "total_mahasiswa_bimbingan", "beban_sks",
	"status_aktif", "tahun_akademik",
}

func (r lecturerProfileRow) values() []any {
	return []any{
		r.NIP, r.Name, r.Gender, r.Faculty, r.Program,
		r.Education, r.FunctionalRank, r.CivilGrade,
		r.CourseCount, r.AdviseeCount, r.CreditLoad,
		r.Active, r.AcademicYear,
	}
}

func buildLecturerProfiles(rng *rand.Rand, faker *gofakeit.Faker, count int) []lecturerProfileRow {
	rows := make([]lecturerProfileRow, 0, count)
	for i := 0; i < count; i++ {
		faculty := catalog.RandomFaculty(rng)

		rows = append(rows, lecturerProfileRow{
			NIP:            fmt.Sprintf("NIP%d%d%d%03d", between(rng, 1970, 1999), between(rng, 10, 12), between(rng, 10, 28), i+1),
			Name:           faker.Name(),
			Gender:         pick(rng, []string{"Laki-laki", "Perempuan"}),
			Faculty:        faculty,
			Program:        catalog.RandomProgram(rng, faculty),
			Education:      pick(rng, []string{"S2", "S3"}),
			FunctionalRank: pick(rng, []string{"Asisten Ahli", "Lektor", "Lektor Kepala", "Guru Besar"}),
			CivilGrade:     pick(rng, []string{"III/a", "III/b", "III/c", "III/d", "IV/a", "IV/b"}),
			CourseCount:    between(rng, 2, 6),
			AdviseeCount:   between(rng, 5, 20),
			CreditLoad:     between(rng, 12, 24),
			Active:         true,
			AcademicYear:   AcademicYear,
		})
	}
	return rows
}

// GenerateLecturerProfiles synthesizes and appends lecturer profiles.
func (g *LecturerGenerator) GenerateLecturerProfiles(ctx context.Context, count int) error {
	logger.Info().Int("count", count).Msg("Generating lecturer profiles")

	rows := buildLecturerProfiles(g.rng, g.faker, count)
	added, err := g.store.Append(ctx, "lecturer_profile", lecturerProfileColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added lecturer profiles")
	return nil
}

// fabricateLecturerRefs builds a same-shaped parent set used when
// lecturer_profile cannot be read back.
func fabricateLecturerRefs(rng *rand.Rand, faker *gofakeit.Faker, count int) []datamart.LecturerRef {
	refs := make([]datamart.LecturerRef, 0, count)
	for i := 0; i < count; i++ {
		refs = append(refs, datamart.LecturerRef{
			NIP:     fmt.Sprintf("NIP%d%02d%02d%03d", 1970+i/10, (i%12)+1, (i%28)+1, i+1),
			Name:    faker.Name(),
			Faculty: catalog.RandomFaculty(rng),
			Program: catalog.RandomProgram(rng, catalog.RandomFaculty(rng)),
		})
	}
	return refs
}

type lecturerTeachingRow struct {
	NIP           string
	Name          string
	Faculty       string
	Course        string
	CourseCode    string
	Class         string
	StudentCount  int
	AverageGrade  float64
	AverageAttend float64
	PassRate      float64
	Semester      string
	AcademicYear  string
}

var lecturerTeachingColumns = []string{
	"nip", "nama_dosen", "fakultas", "mata_kuliah", "kode_matkul", "kelas",
	"jumlah_mahasiswa", "rata_rata_nilai", "rata_rata_kehadiran",
	"tingkat_kelulusan", "semester", "tahun_akademik",
}

func (r lecturerTeachingRow) values() []any {
	return []any{
		r.NIP, r.Name, r.Faculty, r.Course, r.CourseCode, r.Class,
		r.StudentCount, r.AverageGrade, r.AverageAttend,
		r.PassRate, r.Semester, r.AcademicYear,
	}
}

func buildLecturerTeaching(rng *rand.Rand, lecturers []datamart.LecturerRef, count int) []lecturerTeachingRow {
	rows := make([]lecturerTeachingRow, 0, count)
	for i := 0; i < count; i++ {
		lecturer := lecturers[i%len(lecturers)]

		rows = append(rows, lecturerTeachingRow{
			NIP:           lecturer.NIP,
			Name:          lecturer.Name,
			Faculty:       lecturer.Faculty,
			Course:        catalog.RandomCourse(rng, lecturer.Program),
			CourseCode:    courseCode(rng),
			Class:         pick(rng, []string{"A", "B", "C"}),
			StudentCount:  between(rng, 15, 45),
			AverageGrade:  round2(uniform(rng, 65, 85)),
			AverageAttend: round2(uniform(rng, 75, 95)),
			PassRate:      round2(uniform(rng, 80, 100)),
			Semester:      pick(rng, []string{"Ganjil", "Genap"}),
			AcademicYear:  AcademicYear,
		})
	}
	return rows
}

// GenerateLecturerTeaching synthesizes and appends teaching records, linking
// to persisted lecturer profiles when the table is readable.
func (g *LecturerGenerator) GenerateLecturerTeaching(ctx context.Context, count int) error {
	logger.Info().Int("count", count).Msg("Generating teaching records")

	lecturers, ok := g.store.SampleLecturers(ctx, 50)
	if !ok || len(lecturers) == 0 {
		lecturers = fabricateLecturerRefs(g.rng, g.faker, 50)
	}

	rows := buildLecturerTeaching(g.rng, lecturers, count)
	added, err := g.store.Append(ctx, "lecturer_teaching", lecturerTeachingColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added teaching records")
	return nil
}

type lecturerActivityRow struct {
	NIP              string
	Name             string
	Faculty          string
	ResearchCount    int
	PublicationCount int
	ServiceCount     int
	ResearchFunding  float64
	TrainingCount    int
	CertCount        int
	AcademicYear     string
}

var lecturerActivityColumns = []string{
	"nip", "nama_dosen", "fakultas", "jumlah_penelitian", "jumlah_publikasi",
	"jumlah_pengabdian", "total_dana_penelitian", "pelatihan_diikuti",
	"sertifikasi_dimiliki", "tahun_akademik",
}

func (r lecturerActivityRow) values() []any {
	return []any{
		r.NIP, r.Name, r.Faculty, r.ResearchCount, r.PublicationCount,
		r.ServiceCount, r.ResearchFunding, r.TrainingCount,
		r.CertCount, r.AcademicYear,
	}
}

// buildLecturerActivity emits one activity row per lecturer reference.
func buildLecturerActivity(rng *rand.Rand, lecturers []datamart.LecturerRef) []lecturerActivityRow {
	rows := make([]lecturerActivityRow, 0, len(lecturers))
	for _, lecturer := range lecturers {
		rows = append(rows, lecturerActivityRow{
			NIP:              lecturer.NIP,
			Name:             lecturer.Name,
			Faculty:          lecturer.Faculty,
			ResearchCount:    between(rng, 0, 5),
			PublicationCount: between(rng, 0, 8),
			ServiceCount:     between(rng, 1, 4),
			ResearchFunding:  float64(between(rng, 0, 500000000)),
			TrainingCount:    between(rng, 1, 6),
			CertCount:        between(rng, 0, 3),
			AcademicYear:     AcademicYear,
		})
	}
	return rows
}

// GenerateLecturerActivity synthesizes one activity record per lecturer
// profile, fabricating the profile set when the table is unreadable.
func (g *LecturerGenerator) GenerateLecturerActivity(ctx context.Context, fallbackCount int) error {
	logger.Info().Msg("Generating activity records")

	lecturers, ok := g.store.SampleLecturers(ctx, 0)
	if !ok || len(lecturers) == 0 {
		lecturers = fabricateLecturerRefs(g.rng, g.faker, fallbackCount)
	}

	rows := buildLecturerActivity(g.rng, lecturers)
	added, err := g.store.Append(ctx, "lecturer_activity", lecturerActivityColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added activity records")
	return nil
}

// GenerateAll populates all three lecturer tables, parents first.
func (g *LecturerGenerator) GenerateAll(ctx context.Context) error {
	if err := g.GenerateLecturerProfiles(ctx, 150); err != nil {
		return err
	}
	if err := g.GenerateLecturerTeaching(ctx, 300); err != nil {
		return err
	}
	return g.GenerateLecturerActivity(ctx, 150)
}
