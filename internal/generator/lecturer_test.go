package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildLecturerProfiles_Rows_StayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows := buildLecturerProfiles(rng, newFaker(rng), 100)
	require.Len(t, rows, 100)

	for _, row := range rows {
		require.Contains(t, []string{"S2", "S3"}, row.Education)
		require.Contains(t, []string{"Asisten Ahli", "Lektor", "Lektor Kepala", "Guru Besar"}, row.FunctionalRank)
		require.GreaterOrEqual(t, row.CreditLoad, 12)
		require.LessOrEqual(t, row.CreditLoad, 24)
		require.True(t, row.Active)
	}
}

func TestBuildLecturerTeaching_ReusesLecturerIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	lecturers := fabricateLecturerRefs(rng, newFaker(rng), 10)
	rows := buildLecturerTeaching(rng, lecturers, 40)
	require.Len(t, rows, 40)

	for i, row := range rows {
		lecturer := lecturers[i%len(lecturers)]
		require.Equal(t, lecturer.NIP, row.NIP)
		require.Equal(t, lecturer.Name, row.Name)
		require.Equal(t, lecturer.Faculty, row.Faculty)
		require.GreaterOrEqual(t, row.PassRate, 80.0)
		require.LessOrEqual(t, row.PassRate, 100.0)
	}
}

func TestBuildLecturerActivity_OneRowPerLecturer(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	lecturers := fabricateLecturerRefs(rng, newFaker(rng), 25)
	rows := buildLecturerActivity(rng, lecturers)
	require.Len(t, rows, len(lecturers))

	for i, row := range rows {
		require.Equal(t, lecturers[i].NIP, row.NIP)
		require.GreaterOrEqual(t, row.ResearchFunding, 0.0)
		require.LessOrEqual(t, row.PublicationCount, 8)
	}
}
