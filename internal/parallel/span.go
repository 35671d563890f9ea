package parallel

// Span is the half-open index range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	return s.Hi - s.Lo
}

// Spans divides [0, n) into at most parts contiguous spans whose lengths
// differ by at most one. Empty spans are omitted.
func Spans(n, parts int) []Span {
	if n <= 0 {
		return nil
	}
	parts = min(max(parts, 1), n)

	spans := make([]Span, 0, parts)
	size, rest := n/parts, n%parts
	lo := 0
	for i := range parts {
		hi := lo + size
		if i < rest {
			hi++
		}
		spans = append(spans, Span{Lo: lo, Hi: hi})
		lo = hi
	}
	return spans
}
