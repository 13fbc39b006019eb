package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/lshigami/examportal/internal/dto"
	"github.com/lshigami/examportal/internal/model"
)

// dtoCopyOption lets copier turn uuid.UUID fields into their string form.
var dtoCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				id, ok := src.(uuid.UUID)
				if !ok {
					return nil, fmt.Errorf("expected uuid.UUID, got %T", src)
				}
				return id.String(), nil
			},
		},
	},
}

func toResultSummary(r *model.Result) (dto.ResultSummaryDTO, error) {
	var out dto.ResultSummaryDTO
	if err := copier.CopyWithOption(&out, r, dtoCopyOption); err != nil {
		return out, err
	}
	out.Exam.Duration = r.Exam.DurationMinutes
	return out, nil
}

func toResultSummaries(results []model.Result) ([]dto.ResultSummaryDTO, error) {
	out := make([]dto.ResultSummaryDTO, 0, len(results))
	for i := range results {
		summary, err := toResultSummary(&results[i])
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
