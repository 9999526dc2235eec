package generator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prasetya/academic-datamart/internal/catalog"
)

func TestBuildAccreditation_CoversProgramsFacultiesAndInstitution(t *testing.T) {
	g := &InstitutionalGenerator{rng: rand.New(rand.NewSource(1))}
	rows := g.buildAccreditation(time.Now())
	require.Len(t, rows, catalog.TotalPrograms()+len(catalog.Faculties)+1)

	kinds := map[string]int{}
	for _, row := range rows {
		kinds[row.UnitKind]++
	}
	require.Equal(t, catalog.TotalPrograms(), kinds["Program Studi"])
	require.Equal(t, len(catalog.Faculties), kinds["Fakultas"])
	require.Equal(t, 1, kinds["Institusi"])
}

func TestBuildAccreditation_InstitutionRow_HasFixedValues(t *testing.T) {
	g := &InstitutionalGenerator{rng: rand.New(rand.NewSource(2))}
	rows := g.buildAccreditation(time.Now())

	last := rows[len(rows)-1]
	require.Equal(t, "Universitas Indonesia Raya", last.Unit)
	require.Equal(t, "Institusi", last.UnitKind)
	require.Equal(t, "All", last.Faculty)
	require.Equal(t, "B", last.Current)
	require.Equal(t, "C", last.Previous)
	require.Equal(t, "In Progress", last.Renewal)
	require.Equal(t, "A", last.TargetNext)
	require.Equal(t, 75.5, last.Progress)
}

func TestAccreditationDates_StraddleNow(t *testing.T) {
	g := &InstitutionalGenerator{rng: rand.New(rand.NewSource(3))}
	now := time.Now()
	for i := 0; i < 50; i++ {
		assessed, validUntil := g.accreditationDates(now)
		require.True(t, assessed.Before(now))
		require.True(t, validUntil.After(now))
	}
}
