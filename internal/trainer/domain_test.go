package trainer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomains_CoverAllFiveCollectionsInOrder(t *testing.T) {
	require.Len(t, Domains, 5)

	var collections []string
	for _, domain := range Domains {
		collections = append(collections, domain.Collection)
	}
	require.Equal(t, []string{
		"mahasiswa_collection",
		"dosen_collection",
		"akademik_collection",
		"keuangan_collection",
		"institusi_collection",
	}, collections)
}

func TestDomains_EachCarriesFullCorpus(t *testing.T) {
	for _, domain := range Domains {
		require.Len(t, domain.DDL, 3, domain.Collection)
		require.Len(t, domain.Documentation, 3, domain.Collection)
		require.GreaterOrEqual(t, len(domain.Questions), 10, domain.Collection)
		require.NotEmpty(t, domain.SchemaName, domain.Collection)
		require.NotEmpty(t, domain.DocName, domain.Collection)

		for _, pair := range domain.Questions {
			require.NotEmpty(t, pair.Question, domain.Collection)
			require.Contains(t, pair.SQL, "datamart.", domain.Collection)
		}
	}
}

func TestPointID_SameContent_SameID(t *testing.T) {
	a := pointID("Schema: student_schema\nCREATE TABLE ...")
	b := pointID("Schema: student_schema\nCREATE TABLE ...")
	require.Equal(t, a, b)
}

func TestPointID_DifferentContent_DifferentID(t *testing.T) {
	a := pointID("Question: Berapa jumlah mahasiswa aktif?")
	b := pointID("Question: Berapa jumlah dosen aktif?")
	require.NotEqual(t, a, b)
}
