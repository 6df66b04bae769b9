package listview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID   int
	Name string
	City string
}

func rowFields(r row) []string {
	return []string{r.Name, r.City}
}

func sampleRows() []row {
	return []row{
		{1, "Merkez Arsa", "Ankara"},
		{2, "Sahil Konut", "İzmir"},
		{3, "Bağ Evi", "Ankara"},
		{4, "Depo", "İstanbul"},
	}
}

func TestFilter_EmptyTermReturnsAll(t *testing.T) {
	items := sampleRows()

	filtered := Filter(items, "", rowFields)

	assert.Equal(t, items, filtered)
}

// Filtre sonucu her zaman girişin alt kümesidir ve terimi içermeyen öğe kalmaz
func TestFilter_SubsetAndCaseInsensitive(t *testing.T) {
	items := sampleRows()

	filtered := Filter(items, "ankara", rowFields)

	assert.Len(t, filtered, 2)
	for _, r := range filtered {
		assert.Contains(t, items, r)
		assert.True(t, strings.Contains(strings.ToLower(r.City), "ankara"))
	}
}

func TestFilter_NoMatch(t *testing.T) {
	filtered := Filter(sampleRows(), "bulunamaz", rowFields)

	assert.Empty(t, filtered)
}

// Sayfaların sırayla birleşimi girişi yeniden üretir; son sayfa hariç her
// sayfa tam boyuttadır
func TestPaginate_Reconstruction(t *testing.T) {
	items := sampleRows()

	pages := Paginate(items, 3)

	assert.Len(t, pages, 2)
	assert.Len(t, pages[0], 3)
	assert.Len(t, pages[1], 1)

	var rebuilt []row
	for _, page := range pages {
		rebuilt = append(rebuilt, page...)
	}
	assert.Equal(t, items, rebuilt)
}

func TestPage_OutOfRange(t *testing.T) {
	items := sampleRows()

	assert.Empty(t, Page(items, -1, 3))
	assert.Empty(t, Page(items, 5, 3))
	assert.Len(t, Page(items, 1, 3), 1)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestSelection_ToggleAndSetAll(t *testing.T) {
	sel := NewSelection()

	sel.Toggle(3, true)
	sel.Toggle(1, true)
	assert.True(t, sel.Has(3))
	assert.Equal(t, 2, sel.Count())

	// Seçimi kaldırma
	sel.Toggle(3, false)
	assert.False(t, sel.Has(3))

	// Tümünü seç; id'ler artan sırada döner
	sel.SetAll([]int{5, 2, 9}, true)
	assert.Equal(t, []int{1, 2, 5, 9}, sel.IDs())

	sel.Clear()
	assert.Equal(t, 0, sel.Count())
}
