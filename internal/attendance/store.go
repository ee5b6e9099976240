package attendance

import "context"

type BatchSource interface {
	BatchValues(ctx context.Context, spreadsheetID string, ranges ...string) ([][][]string, error)
}

type Store struct {
	src           BatchSource
	spreadsheetID string
	sheet         string
}

func NewStore(src BatchSource, spreadsheetID, sheet string) *Store {
	return &Store{src: src, spreadsheetID: spreadsheetID, sheet: sheet}
}

// Snapshot: 날짜 헤더 행과 데이터 행을 한 번의 호출로 가져온다.
func (s *Store) Snapshot(ctx context.Context) (headers []string, rows [][]string, err error) {
	res, err := s.src.BatchValues(ctx, s.spreadsheetID,
		s.sheet+ledgerDateSuffix,
		s.sheet+ledgerDataSuffix,
	)
	if err != nil {
		return nil, nil, err
	}

	if len(res) > 0 && len(res[0]) > 0 {
		headers = res[0][0]
	}
	if len(res) > 1 {
		rows = res[1]
	}
	return headers, rows, nil
}
