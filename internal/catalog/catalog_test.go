package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTotalPrograms_CountsAllFaculties(t *testing.T) {
	require.Equal(t, 16, TotalPrograms())
}

func TestProgramCount_PerFaculty(t *testing.T) {
	require.Equal(t, 5, ProgramCount("Fakultas Teknik"))
	require.Equal(t, 4, ProgramCount("Fakultas Ekonomi dan Bisnis"))
	require.Equal(t, 3, ProgramCount("Fakultas Ilmu Komputer"))
	require.Equal(t, 2, ProgramCount("Fakultas Kedokteran"))
	require.Equal(t, 2, ProgramCount("Fakultas Hukum"))
}

func TestRandomProgram_BelongsToFaculty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		faculty := RandomFaculty(rng)
		program := RandomProgram(rng, faculty)
		require.Contains(t, Programs[faculty], program)
	}
}

func TestRandomCourse_KnownProgram_UsesItsCurriculum(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		course := RandomCourse(rng, "Teknik Informatika")
		require.Contains(t, Courses["Teknik Informatika"], course)
	}
}

func TestRandomCourse_UnknownProgram_FallsBackToDefault(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		course := RandomCourse(rng, "Ilmu Hukum")
		require.Contains(t, Courses[DefaultProgram], course)
	}
}
