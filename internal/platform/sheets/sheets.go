package sheets

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const credentialEnv = "GOOGLE_SERVICE_ACCOUNT_KEY"

// 읽기 전용 Google Sheets 클라이언트.
// 서비스 계정 키(JSON)는 환경변수에서 가져온다.
type Client struct {
	svc *sheets.Service
}

func NewClient(ctx context.Context) (*Client, error) {
	rawKey := os.Getenv(credentialEnv)
	if rawKey == "" {
		return nil, fmt.Errorf("환경변수 %s 가 설정되어 있지 않습니다", credentialEnv)
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(rawKey)),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets 클라이언트 생성 실패: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Values: 단일 범위 조회. 셀 값은 전부 문자열로 변환해서 돌려준다.
func (c *Client) Values(ctx context.Context, spreadsheetID, rng string) ([][]string, error) {
	res, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("시트 조회 실패 (%s): %w", rng, err)
	}
	return toStringRows(res.Values), nil
}

// BatchValues: 여러 범위를 한 번에 조회 (헤더 + 데이터 동시 조회용).
// 반환 순서는 ranges 순서와 동일.
func (c *Client) BatchValues(ctx context.Context, spreadsheetID string, ranges ...string) ([][][]string, error) {
	res, err := c.svc.Spreadsheets.Values.BatchGet(spreadsheetID).Ranges(ranges...).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("시트 일괄 조회 실패: %w", err)
	}
	out := make([][][]string, 0, len(res.ValueRanges))
	for _, vr := range res.ValueRanges {
		out = append(out, toStringRows(vr.Values))
	}
	return out, nil
}

func toStringRows(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			if v == nil {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, fmt.Sprint(v))
		}
		rows = append(rows, cells)
	}
	return rows
}
