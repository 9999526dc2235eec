package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prasetya/academic-datamart/internal/catalog"
)

func TestBuildCoursePerformance_Rows_StayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows := buildCoursePerformance(rng, newFaker(rng), 100)
	require.Len(t, rows, 100)

	for _, row := range rows {
		require.Contains(t, []int{2, 3, 4}, row.Credits)
		require.GreaterOrEqual(t, row.Semester, 1)
		require.LessOrEqual(t, row.Semester, 8)
		require.Contains(t, []string{"Wajib", "Pilihan"}, row.Kind)
		require.GreaterOrEqual(t, row.Enrollment, 15)
		require.LessOrEqual(t, row.Enrollment, 50)
	}
}

func TestSplitGrades_Buckets_SumToTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		total := between(rng, 15, 50)
		a, ab, b, bc, c, d, e := splitGrades(rng, total)

		for _, bucket := range []int{a, ab, b, bc, c, d, e} {
			require.GreaterOrEqual(t, bucket, 0)
		}
		if assigned := a + ab + b + bc + c + d; assigned <= total {
			require.Equal(t, total, assigned+e)
		} else {
			require.Zero(t, e)
		}
	}
}

func TestBuildGradeDistribution_UsesCourseEnrollmentAsTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	courses := fabricateCourseRefs(rng, 10)
	rows := buildGradeDistribution(rng, newFaker(rng), courses, 40)
	require.Len(t, rows, 40)

	for i, row := range rows {
		require.Equal(t, courses[i%len(courses)].Code, row.Code)
		require.Equal(t, courses[i%len(courses)].Enrollment, row.Total)
	}
}

func TestBuildAcademicTrends_EmitsThreeMetricsPerCombination(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	rows := buildAcademicTrends(rng)
	require.Len(t, rows, catalog.TotalPrograms()*len(trendPeriods)*3)

	for _, row := range rows {
		require.Contains(t, trendMetrics, row.Metric)
		switch row.Metric {
		case "IPK Rata-rata":
			require.Equal(t, "Skala 4.0", row.Unit)
		case "Jumlah Mahasiswa Baru":
			require.Equal(t, "Orang", row.Unit)
		default:
			require.Equal(t, "Persen", row.Unit)
		}
	}
}
