package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStudentPerformance_Rows_StayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows := buildStudentPerformance(rng, newFaker(rng), 200)
	require.Len(t, rows, 200)

	for _, row := range rows {
		require.GreaterOrEqual(t, row.GPA, 2.0)
		require.LessOrEqual(t, row.GPA, 4.0)
		require.GreaterOrEqual(t, row.Cohort, 2020)
		require.LessOrEqual(t, row.Cohort, 2024)
		require.Contains(t, []string{"Aktif", "Cuti", "Lulus"}, row.Status)
		require.NotEmpty(t, row.NIM)
		require.Equal(t, AcademicYear, row.AcademicYear)
	}
}

func TestBuildStudentAttendance_Counts_SumToTotalMeetings(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	students := fabricateStudentRefs(rng, newFaker(rng), 20)
	rows := buildStudentAttendance(rng, students, 300)
	require.Len(t, rows, 300)

	for _, row := range rows {
		require.Equal(t, TotalMeetings, row.TotalMeetings)
		require.Equal(t, row.TotalMeetings, row.Present+row.Excused+row.Absent)
		require.InDelta(t, float64(row.Present)/TotalMeetings*100, row.Percentage, 0.01)
	}
}

func TestBuildStudentFinance_Amounts_ReconcilePerStatus(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	faker := newFaker(rng)
	students := fabricateStudentRefs(rng, faker, 20)
	rows := buildStudentFinance(rng, faker, students, 300)
	require.Len(t, rows, 300)

	for _, row := range rows {
		require.InDelta(t, row.Billed-row.Paid, row.Outstanding, 0.01)

		switch row.PaymentStatus {
		case "Lunas":
			require.Equal(t, row.Billed, row.Paid)
			require.NotNil(t, row.PaymentDate)
		case "Belum Lunas":
			require.Greater(t, row.Paid, 0.0)
			require.Less(t, row.Paid, row.Billed)
			require.Nil(t, row.PaymentDate)
		case "Menunggak":
			require.Zero(t, row.Paid)
			require.Nil(t, row.PaymentDate)
		default:
			t.Fatalf("unexpected payment status %q", row.PaymentStatus)
		}
	}
}

func TestFabricateStudentRefs_ProducesRequestedCount(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	refs := fabricateStudentRefs(rng, newFaker(rng), 75)
	require.Len(t, refs, 75)

	for _, ref := range refs {
		require.NotEmpty(t, ref.NIM)
		require.NotEmpty(t, ref.Name)
		require.NotEmpty(t, ref.Faculty)
		require.NotEmpty(t, ref.Program)
	}
}
