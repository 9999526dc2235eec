package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/prasetya/academic-datamart/internal/catalog"
	"github.com/prasetya/academic-datamart/internal/datamart"
	"github.com/prasetya/academic-datamart/internal/pkg/logger"
)

// StudentGenerator populates the mahasiswa collection: student_performance,
// student_attendance and student_finance.
type StudentGenerator struct {
	store *datamart.Store
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewStudentGenerator creates the student domain generator.
func NewStudentGenerator(store *datamart.Store, rng *rand.Rand) *StudentGenerator {
	return &StudentGenerator{store: store, rng: rng, faker: newFaker(rng)}
}

var studentStatuses = []string{"Aktif", "Aktif", "Aktif", "Cuti", "Lulus"}

type studentPerformanceRow struct {
	NIM            string
	Name           string
	Gender         string
	Faculty        string
	Program        string
	Cohort         int
	ActiveSemester int
	GPA            float64
	TotalCredits   int
	PassedCredits  int
	Status         string
	AcademicYear   string
}

var studentPerformanceColumns = []string{
	"nim", "nama_mahasiswa", "jenis_kelamin", "fakultas", "program_studi",
	"angkatan", "semester_aktif", "ipk", "total_sks", "sks_lulus",
	"status_mahasiswa", "tahun_akademik",
}

func (r studentPerformanceRow) values() []any {
	return []any{
		r.NIM, r.Name, r.Gender, r.Faculty, r.Program,
		r.Cohort, r.ActiveSemester, r.GPA, r.TotalCredits, r.PassedCredits,
		r.Status, r.AcademicYear,
	}
}

func buildStudentPerformance(rng *rand.Rand, faker *gofakeit.Faker, count int) []studentPerformanceRow {
	rows := make([]studentPerformanceRow, 0, count)
	for i := 0; i < count; i++ {
		faculty := catalog.RandomFaculty(rng)
		program := catalog.RandomProgram(rng, faculty)
		cohort := between(rng, 2020, 2024)

		rows = append(rows, studentPerformanceRow{
			NIM:            fmt.Sprintf("%d%d%04d", cohort, between(rng, 10, 99), i+1),
			Name:           faker.Name(),
			Gender:         pick(rng, []string{"Laki-laki", "Perempuan"}),
			Faculty:        faculty,
			Program:        program,
			Cohort:         cohort,
			ActiveSemester: between(rng, 1, 8),
			GPA:            round2(uniform(rng, 2.0, 4.0)),
			TotalCredits:   between(rng, 120, 160),
			PassedCredits:  between(rng, 80, 150),
			Status:         pick(rng, studentStatuses),
			AcademicYear:   AcademicYear,
		})
	}
	return rows
}

// GenerateStudentPerformance synthesizes and appends student performance
// records.
func (g *StudentGenerator) GenerateStudentPerformance(ctx context.Context, count int) error {
	logger.Info().Int("count", count).Msg("Generating student performance records")

	rows := buildStudentPerformance(g.rng, g.faker, count)
	added, err := g.store.Append(ctx, "student_performance", studentPerformanceColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added student performance records")
	return nil
}

// fabricateStudentRefs builds a same-shaped in-memory parent set used when
// student_performance cannot be read back.
func fabricateStudentRefs(rng *rand.Rand, faker *gofakeit.Faker, count int) []datamart.StudentRef {
	refs := make([]datamart.StudentRef, 0, count)
	for i := 0; i < count; i++ {
		faculty := catalog.RandomFaculty(rng)
		refs = append(refs, datamart.StudentRef{
			NIM:     fmt.Sprintf("202%d%02d001", i/50, (i%50)+1),
			Name:    faker.Name(),
			Faculty: faculty,
			Program: catalog.RandomProgram(rng, catalog.RandomFaculty(rng)),
		})
	}
	return refs
}

type studentAttendanceRow struct {
	NIM           string
	Name          string
	Faculty       string
	Program       string
	Course        string
	CourseCode    string
	Semester      int
	TotalMeetings int
	Present       int
	Excused       int
	Absent        int
	Percentage    float64
	AcademicYear  string
}

var studentAttendanceColumns = []string{
	"nim", "nama_mahasiswa", "fakultas", "program_studi", "mata_kuliah",
	"kode_matkul", "semester", "total_pertemuan", "hadir", "izin", "alpha",
	"persentase_kehadiran", "tahun_akademik",
}

func (r studentAttendanceRow) values() []any {
	return []any{
		r.NIM, r.Name, r.Faculty, r.Program, r.Course,
		r.CourseCode, r.Semester, r.TotalMeetings, r.Present, r.Excused, r.Absent,
		r.Percentage, r.AcademicYear,
	}
}

func buildStudentAttendance(rng *rand.Rand, students []datamart.StudentRef, count int) []studentAttendanceRow {
	rows := make([]studentAttendanceRow, 0, count)
	for i := 0; i < count; i++ {
		student := students[i%len(students)]

		present := between(rng, 8, 14)
		excused := between(rng, 0, 3)
		absent := TotalMeetings - present - excused
		percentage := round2(float64(present) / TotalMeetings * 100)

		rows = append(rows, studentAttendanceRow{
			NIM:           student.NIM,
			Name:          student.Name,
			Faculty:       student.Faculty,
			Program:       student.Program,
			Course:        catalog.RandomCourse(rng, student.Program),
			CourseCode:    courseCode(rng),
			Semester:      between(rng, 1, 8),
			TotalMeetings: TotalMeetings,
			Present:       present,
			Excused:       excused,
			Absent:        absent,
			Percentage:    percentage,
			AcademicYear:  AcademicYear,
		})
	}
	return rows
}

// GenerateStudentAttendance synthesizes and appends attendance records,
// linking to persisted students when the table is readable.
func (g *StudentGenerator) GenerateStudentAttendance(ctx context.Context, count int) error {
	logger.Info().Int("count", count).Msg("Generating attendance records")

	students, ok := g.store.SampleStudents(ctx, 200)
	if !ok || len(students) == 0 {
		students = fabricateStudentRefs(g.rng, g.faker, 200)
	}

	rows := buildStudentAttendance(g.rng, students, count)
	added, err := g.store.Append(ctx, "student_attendance", studentAttendanceColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added attendance records")
	return nil
}

var paymentStatuses = []string{"Lunas", "Lunas", "Belum Lunas", "Menunggak"}

var studentPaymentMethods = []string{"Transfer Bank", "Virtual Account", "Kartu Kredit", "E-wallet"}

type studentFinanceRow struct {
	NIM           string
	Name          string
	Faculty       string
	Program       string
	Semester      string
	AcademicYear  string
	Billed        float64
	Paid          float64
	Outstanding   float64
	PaymentStatus string
	PaymentDate   *time.Time
	PaymentMethod string
}

var studentFinanceColumns = []string{
	"nim", "nama_mahasiswa", "fakultas", "program_studi", "semester",
	"tahun_akademik", "jumlah_tagihan", "jumlah_dibayar", "sisa_tagihan",
	"status_pembayaran", "tanggal_bayar", "metode_pembayaran",
}

func (r studentFinanceRow) values() []any {
	return []any{
		r.NIM, r.Name, r.Faculty, r.Program, r.Semester,
		r.AcademicYear, r.Billed, r.Paid, r.Outstanding,
		r.PaymentStatus, r.PaymentDate, r.PaymentMethod,
	}
}

func buildStudentFinance(rng *rand.Rand, faker *gofakeit.Faker, students []datamart.StudentRef, count int) []studentFinanceRow {
	rows := make([]studentFinanceRow, 0, count)
	for i := 0; i < count; i++ {
		student := students[i%len(students)]
		billed := pick(rng, []float64{3500000, 4000000, 4500000, 5000000})
		status := pick(rng, paymentStatuses)

		var paid float64
		var paymentDate *time.Time
		switch status {
		case "Lunas":
			paid = billed
			date := faker.DateRange(time.Now().AddDate(0, -6, 0), time.Now())
			paymentDate = &date
		case "Belum Lunas":
			paid = round2(billed * uniform(rng, 0.3, 0.8))
		default: // Menunggak
			paid = 0
		}

		rows = append(rows, studentFinanceRow{
			NIM:           student.NIM,
			Name:          student.Name,
			Faculty:       student.Faculty,
			Program:       student.Program,
			Semester:      pick(rng, []string{"Ganjil", "Genap"}),
			AcademicYear:  AcademicYear,
			Billed:        billed,
			Paid:          paid,
			Outstanding:   round2(billed - paid),
			PaymentStatus: status,
			PaymentDate:   paymentDate,
			PaymentMethod: pick(rng, studentPaymentMethods),
		})
	}
	return rows
}

// GenerateStudentFinance synthesizes and appends finance records.
func (g *StudentGenerator) GenerateStudentFinance(ctx context.Context, count int) error {
	logger.Info().Int("count", count).Msg("Generating finance records")

	students, ok := g.store.SampleStudents(ctx, 200)
	if !ok || len(students) == 0 {
		students = fabricateStudentRefs(g.rng, g.faker, 200)
	}

	rows := buildStudentFinance(g.rng, g.faker, students, count)
	added, err := g.store.Append(ctx, "student_finance", studentFinanceColumns, toValueRows(rows))
	if err != nil {
		return err
	}

	logger.Info().Int64("added", added).Msg("Added finance records")
	return nil
}

// GenerateAll populates all three student tables, parents first.
func (g *StudentGenerator) GenerateAll(ctx context.Context) error {
	if err := g.GenerateStudentPerformance(ctx, 500); err != nil {
		return err
	}
	if err := g.GenerateStudentAttendance(ctx, 800); err != nil {
		return err
	}
	return g.GenerateStudentFinance(ctx, 400)
}
