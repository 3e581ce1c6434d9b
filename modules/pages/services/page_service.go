package services

import (
	"context"

	"github.com/iota-uz/commerce-admin/modules/pages/domain/page"
	"github.com/iota-uz/commerce-admin/pkg/composables"
)

type PageService struct {
	repo        page.Repository
	pageSize    int
	maxPageSize int
}

func NewPageService(repo page.Repository, pageSize, maxPageSize int) *PageService {
	return &PageService{repo: repo, pageSize: pageSize, maxPageSize: maxPageSize}
}

func (s *PageService) normalize(params *page.FindParams) *page.FindParams {
	p := *params
	if p.Before != "" {
		if p.Last <= 0 {
			p.Last = s.pageSize
		}
		p.First = 0
	} else if p.First <= 0 {
		p.First = s.pageSize
	}
	if s.maxPageSize > 0 {
		if p.First > s.maxPageSize {
			p.First = s.maxPageSize
		}
		if p.Last > s.maxPageSize {
			p.Last = s.maxPageSize
		}
	}
	if p.SortBy == "" {
		p.SortBy = page.SortByTitle
		p.Asc = true
	}
	return &p
}

func (s *PageService) ListPages(ctx context.Context, params *page.FindParams) (*page.ListResult, error) {
	p := s.normalize(params)
	composables.UseLogger(ctx).WithField("page-types", p.PageTypes).Debug("listing pages")
	return s.repo.List(ctx, p)
}
