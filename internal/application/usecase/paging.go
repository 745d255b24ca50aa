package usecase

import (
	"context"

	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
)

// fetchPage pide una página al backend. Si la página pedida queda fuera de rango
// según el total reportado, se vuelve a pedir la última página válida.
// Ante error devuelve un resultado vacío junto con el error.
func fetchPage[E, R any](
	ctx context.Context,
	fetch func(ctx context.Context, q repository.ListQuery) (*repository.Page[E], error),
	pageSize, page int,
	filters map[string]string,
	keep func(E) bool,
	toRow func(number int, e E) R,
) (*dto.PageResult[R], error) {
	if page < 1 {
		page = 1
	}
	q := repository.ListQuery{Page: page, Limit: pageSize, Filters: filters}
	res, err := fetch(ctx, q)
	if err != nil {
		return dto.EmptyPage[R](pageSize), err
	}
	pg := dto.NewPagination(res.Total, pageSize, page)
	if pg.Page != page && res.Total > 0 {
		q.Page = pg.Page
		if res, err = fetch(ctx, q); err != nil {
			return dto.EmptyPage[R](pageSize), err
		}
		pg = dto.NewPagination(res.Total, pageSize, pg.Page)
	}

	out := &dto.PageResult[R]{
		Records:     make([]R, 0, len(res.Items)),
		TotalAmount: res.TotalAmount,
		Pagination:  pg,
	}
	number := pg.FirstNumber()
	for _, e := range res.Items {
		if keep != nil && !keep(e) {
			continue
		}
		out.Records = append(out.Records, toRow(number, e))
		number++
	}
	return out, nil
}
