package usecases

import (
	"context"
	"strings"

	"rannaghore/internal/domain/faq"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/services/markdown"
)

type ListFAQsQuery struct {
	Category string
}

type ListFAQsResult struct {
	FAQs []FAQEntry `json:"faqs"`
}

type ListFAQsUseCase struct {
	faqRepo         faq.FAQRepository
	markdownService markdown.Service
	logger          logger.Interface
}

func NewListFAQsUseCase(faqRepo faq.FAQRepository, markdownService markdown.Service, logger logger.Interface) *ListFAQsUseCase {
	return &ListFAQsUseCase{
		faqRepo:         faqRepo,
		markdownService: markdownService,
		logger:          logger,
	}
}

func (uc *ListFAQsUseCase) Execute(ctx context.Context, query ListFAQsQuery) (*ListFAQsResult, error) {
	category := strings.TrimSpace(query.Category)

	var (
		faqs []*faq.FAQ
		err  error
	)
	// "all" is the storefront's explicit everything filter, same as no filter.
	if category == "" || strings.EqualFold(category, "all") {
		faqs, err = uc.faqRepo.ListActive(ctx)
	} else {
		faqs, err = uc.faqRepo.ListByCategory(ctx, category)
	}
	if err != nil {
		uc.logger.Errorw("failed to list FAQs", "category", category, "error", err)
		return nil, errors.NewInternalError("failed to list FAQs")
	}

	entries := make([]FAQEntry, 0, len(faqs))
	for _, f := range faqs {
		entries = append(entries, newFAQEntry(f, uc.markdownService, uc.logger))
	}

	return &ListFAQsResult{FAQs: entries}, nil
}
