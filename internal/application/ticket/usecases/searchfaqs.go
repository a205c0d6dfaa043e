package usecases

import (
	"context"
	"strings"

	"rannaghore/internal/domain/faq"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/services/markdown"
)

// maxFAQResults caps how many matches a search returns.
const maxFAQResults = 10

type SearchFAQsQuery struct {
	Query string
}

type FAQEntry struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	AnswerHTML string `json:"answer_html"`
	Category   string `json:"category,omitempty"`
}

type SearchFAQsResult struct {
	Query   string     `json:"query"`
	Results []FAQEntry `json:"results"`
}

type SearchFAQsUseCase struct {
	faqRepo         faq.FAQRepository
	markdownService markdown.Service
	logger          logger.Interface
}

func NewSearchFAQsUseCase(faqRepo faq.FAQRepository, markdownService markdown.Service, logger logger.Interface) *SearchFAQsUseCase {
	return &SearchFAQsUseCase{
		faqRepo:         faqRepo,
		markdownService: markdownService,
		logger:          logger,
	}
}

// Execute searches published FAQs. A blank query returns an empty result set
// rather than everything.
func (uc *SearchFAQsUseCase) Execute(ctx context.Context, query SearchFAQsQuery) (*SearchFAQsResult, error) {
	term := strings.TrimSpace(query.Query)
	if term == "" {
		return &SearchFAQsResult{Query: "", Results: []FAQEntry{}}, nil
	}

	faqs, err := uc.faqRepo.Search(ctx, term, maxFAQResults)
	if err != nil {
		uc.logger.Errorw("failed to search FAQs", "query", term, "error", err)
		return nil, errors.NewInternalError("failed to search FAQs")
	}

	return &SearchFAQsResult{
		Query:   term,
		Results: uc.toEntries(faqs),
	}, nil
}

func (uc *SearchFAQsUseCase) toEntries(faqs []*faq.FAQ) []FAQEntry {
	entries := make([]FAQEntry, 0, len(faqs))
	for _, f := range faqs {
		entries = append(entries, newFAQEntry(f, uc.markdownService, uc.logger))
	}
	return entries
}

func newFAQEntry(f *faq.FAQ, markdownService markdown.Service, log logger.Interface) FAQEntry {
	answerHTML := ""
	if markdownService != nil {
		html, err := markdownService.ToHTMLSanitized(f.Answer())
		if err != nil {
			log.Warnw("failed to render FAQ answer", "faq_id", f.ID(), "error", err)
		} else {
			answerHTML = html
		}
	}
	return FAQEntry{
		ID:         f.ID(),
		Question:   f.Question(),
		Answer:     f.Answer(),
		AnswerHTML: answerHTML,
		Category:   f.Category(),
	}
}
