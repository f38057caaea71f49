package reconcile

// Denominations are the naira note values a cash count may contain,
// largest first.
var Denominations = []int{1000, 500, 200, 100, 50, 20, 10, 5}

// MaxNoteCount bounds a single denomination count; under it every total fits
// in int.
const MaxNoteCount = 1_000_000

func isDenomination(v int) bool {
	for _, d := range Denominations {
		if d == v {
			return true
		}
	}
	return false
}

type CashTotal struct {
	Subtotals map[int]int `json:"subtotals"`
	Total     int         `json:"total"`
}

// TotalizeCash sums a note count mapping. Keys that are not known note
// values are ignored; a negative count or one above MaxNoteCount is rejected.
func TotalizeCash(counts map[int]int) (CashTotal, error) {
	res := CashTotal{Subtotals: make(map[int]int, len(Denominations))}
	for value, count := range counts {
		if !isDenomination(value) {
			continue
		}
		if count < 0 {
			return CashTotal{}, invalid("denominations", "count for %d must not be negative, got %d", value, count)
		}
		if count > MaxNoteCount {
			return CashTotal{}, invalid("denominations", "count for %d exceeds %d, got %d", value, MaxNoteCount, count)
		}
		res.Subtotals[value] = value * count
		res.Total += value * count
	}
	return res, nil
}

// ClampCount is for display code only: it shows a negative count as zero.
func ClampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

type NoteLine struct {
	Value    int `json:"value"`
	Count    int `json:"count"`
	Subtotal int `json:"subtotal"`
}

// NoteBreakdown lists a stored count largest note first, skipping notes that
// were not counted.
func NoteBreakdown(counts map[int]int) []NoteLine {
	lines := make([]NoteLine, 0, len(counts))
	for _, d := range Denominations {
		n, ok := counts[d]
		if !ok {
			continue
		}
		n = ClampCount(n)
		lines = append(lines, NoteLine{Value: d, Count: n, Subtotal: d * n})
	}
	return lines
}
