package roster

import "context"

type ValueSource interface {
	Values(ctx context.Context, spreadsheetID, rng string) ([][]string, error)
}

type Store struct {
	src           ValueSource
	spreadsheetID string
	sheet         string
}

func NewStore(src ValueSource, spreadsheetID, sheet string) *Store {
	return &Store{src: src, spreadsheetID: spreadsheetID, sheet: sheet}
}

// Rows: 명단 스냅샷 (A4:S). 호출 시점의 시트 내용을 그대로 가져온다.
func (s *Store) Rows(ctx context.Context) ([][]string, error) {
	return s.src.Values(ctx, s.spreadsheetID, s.sheet+rosterRangeSuffix)
}
