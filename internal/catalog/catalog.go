// Package catalog holds the static organizational reference data every
// synthesizer and trainer shares, so fabricated rows stay mutually
// consistent in naming.
package catalog

import "math/rand"

// Faculties lists every faculty in generation order.
var Faculties = []string{
	"Fakultas Teknik",
	"Fakultas Ekonomi dan Bisnis",
	"Fakultas Ilmu Komputer",
	"Fakultas Kedokteran",
	"Fakultas Hukum",
}

// Programs maps each faculty to its study programs.
var Programs = map[string][]string{
	"Fakultas Teknik": {
		"Teknik Informatika", "Teknik Elektro", "Teknik Sipil", "Teknik Mesin", "Teknik Industri",
	},
	"Fakultas Ekonomi dan Bisnis": {
		"Manajemen", "Akuntansi", "Ekonomi Pembangunan", "Bisnis Digital",
	},
	"Fakultas Ilmu Komputer": {
		"Sistem Informasi", "Ilmu Komputer", "Teknologi Informasi",
	},
	"Fakultas Kedokteran": {
		"Pendidikan Dokter", "Keperawatan",
	},
	"Fakultas Hukum": {
		"Ilmu Hukum", "Hukum Bisnis",
	},
}

// DefaultProgram keys the course list used for programs without a dedicated
// curriculum entry.
const DefaultProgram = "Default"

// Courses maps study programs to their course names. Programs missing here
// fall back to the DefaultProgram list.
var Courses = map[string][]string{
	"Teknik Informatika": {
		"Algoritma dan Pemrograman", "Struktur Data", "Basis Data", "Jaringan Komputer",
		"Rekayasa Perangkat Lunak", "Sistem Operasi", "Pemrograman Web", "Kecerdasan Buatan",
	},
	"Teknik Elektro": {
		"Rangkaian Listrik", "Elektronika Dasar", "Sistem Kontrol", "Mikroprosessor",
		"Sistem Tenaga Listrik", "Elektronika Daya", "Komunikasi Data", "Sistem Embedded",
	},
	"Manajemen": {
		"Manajemen Keuangan", "Pemasaran", "Manajemen SDM", "Manajemen Operasi",
		"Kewirausahaan", "Manajemen Strategis", "Perilaku Organisasi", "Manajemen Risiko",
	},
	"Akuntansi": {
		"Akuntansi Dasar", "Akuntansi Keuangan", "Akuntansi Biaya", "Auditing",
		"Perpajakan", "Sistem Informasi Akuntansi", "Akuntansi Manajemen", "Analisis Laporan Keuangan",
	},
	"Sistem Informasi": {
		"Analisis Sistem", "Perancangan Sistem", "Pemrograman Web", "Mobile Programming",
		"Data Mining", "E-Business", "Manajemen Proyek TI", "Keamanan Sistem Informasi",
	},
	DefaultProgram: {
		"Matematika Dasar", "Bahasa Indonesia", "Bahasa Inggris", "Pancasila",
		"Kewarganegaraan", "Agama", "Statistika", "Fisika Dasar",
	},
}

// RandomFaculty picks a faculty uniformly.
func RandomFaculty(rng *rand.Rand) string {
	return Faculties[rng.Intn(len(Faculties))]
}

// RandomProgram picks a study program of the given faculty uniformly.
func RandomProgram(rng *rand.Rand, faculty string) string {
	programs := Programs[faculty]
	return programs[rng.Intn(len(programs))]
}

// RandomCourse picks a course of the given program, falling back to the
// default curriculum for programs without one of their own.
func RandomCourse(rng *rand.Rand, program string) string {
	courses, ok := Courses[program]
	if !ok {
		courses = Courses[DefaultProgram]
	}
	return courses[rng.Intn(len(courses))]
}

// ProgramCount returns the number of study programs in a faculty.
func ProgramCount(faculty string) int {
	return len(Programs[faculty])
}

// TotalPrograms returns the number of study programs across all faculties.
func TotalPrograms() int {
	total := 0
	for _, faculty := range Faculties {
		total += len(Programs[faculty])
	}
	return total
}
