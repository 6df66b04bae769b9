// Package listview liste görünümlerinin ortak davranışını taşır:
// bellek içi koleksiyon üzerinde arama, sayfalama ve satır seçimi.
// Her görünüm koleksiyonu bir kez çeker, gerisi lokaldir.
package listview

import (
	"sort"
	"strings"
)

// Filter büyük/küçük harf duyarsız alt dize aramasıyla filtreler. fields her
// öğenin aranabilir alanlarını döner; herhangi biri eşleşirse öğe kalır.
// Boş arama terimi koleksiyonun tamamını döner.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}

	termLower := strings.ToLower(term)
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), termLower) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// Paginate filtrelenmiş listeyi sabit boyutlu sayfalara böler. Son sayfa
// hariç her sayfa tam pageSize öğe içerir; sayfaların birleşimi girişi
// sırasıyla yeniden üretir.
func Paginate[T any](items []T, pageSize int) [][]T {
	if pageSize <= 0 {
		return nil
	}

	pages := make([][]T, 0, (len(items)+pageSize-1)/pageSize)
	for i := 0; i < len(items); i += pageSize {
		end := i + pageSize
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[i:end])
	}
	return pages
}

// Page tek bir sayfayı döner; aralık dışı sayfa numarası boş dilim döner
func Page[T any](items []T, page, pageSize int) []T {
	pages := Paginate(items, pageSize)
	if page < 0 || page >= len(pages) {
		return []T{}
	}
	return pages[page]
}

// TotalPages toplam sayfa sayısını döner
func TotalPages(itemCount, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (itemCount + pageSize - 1) / pageSize
}

// Selection checkbox'larla biriken satır seçimini tutar. Toplu işlemler
// (düzenle/sil/export) bu küme üzerinden yürür.
type Selection struct {
	ids map[int]bool
}

// NewSelection boş seçim döner
func NewSelection() *Selection {
	return &Selection{ids: map[int]bool{}}
}

// Toggle tek satırın seçimini değiştirir
func (s *Selection) Toggle(id int, checked bool) {
	if checked {
		s.ids[id] = true
	} else {
		delete(s.ids, id)
	}
}

// SetAll görünürdeki tüm satırları seçer veya seçimi kaldırır
func (s *Selection) SetAll(ids []int, checked bool) {
	for _, id := range ids {
		s.Toggle(id, checked)
	}
}

// Has id'nin seçili olup olmadığını döner
func (s *Selection) Has(id int) bool {
	return s.ids[id]
}

// Count seçili satır sayısını döner
func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs seçili id'leri artan sırada döner
func (s *Selection) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clear seçimi sıfırlar
func (s *Selection) Clear() {
	s.ids = map[int]bool{}
}
