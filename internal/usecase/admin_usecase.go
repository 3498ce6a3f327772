package usecase

import (
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/dto"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/response"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/util"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type AdminUsecase struct {
	candidates CandidateStore
}

func NewAdminUsecase(candidates CandidateStore) *AdminUsecase {
	return &AdminUsecase{candidates: candidates}
}

// ListCandidates returns one page of candidates whose status matches status
// case-insensitively. An empty status or "all" lists everyone.
func (uc *AdminUsecase) ListCandidates(status string, page, pageSize int) ([]dto.CandidateListItemDTO, *response.Pagination, error) {
	candidates, err := uc.candidates.List(status)
	if err != nil {
		return nil, nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	pagination := response.NewPagination(page, pageSize, len(candidates))
	start, end := pagination.Bounds()

	items := make([]dto.CandidateListItemDTO, 0, end-start)
	for _, c := range candidates[start:end] {
		items = append(items, dto.NewCandidateListItemDTO(c))
	}
	return items, pagination, nil
}

// CandidateDetail decodes the candidate's JSON columns. The latest interview
// comes from last_interview_json, falling back to transcript_json.
func (uc *AdminUsecase) CandidateDetail(candidateID string) (*dto.CandidateDetailDTO, error) {
	c, err := uc.candidates.FindByID(candidateID)
	if err != nil {
		return nil, err
	}

	interview := util.DecodeAs(c.Get(model.ColLastInterview), []model.TranscriptEntry{})
	if len(interview) == 0 {
		interview = util.DecodeAs(c.Get(model.ColTranscript), []model.TranscriptEntry{})
	}

	detail := &dto.CandidateDetailDTO{
		Profile:   c.Profile(),
		Questions: util.DecodeAs(c.Get(model.ColQuestions), []model.QuestionRecord{}),
		Interview: interview,
		History:   util.DecodeAs(c.Get(model.ColHistory), []model.HistoryRecord{}),
	}
	if summary := util.DecodeAs[*model.Summary](c.Get(model.ColSummary), nil); summary != nil {
		detail.Summary = summary
	}
	return detail, nil
}
