package group

import "github.com/sp1r1tt/dashboard2025/internal/product"

// Aggregate folds flat join rows into group records, preserving the
// first-seen order of group ids. A row carrying a non-null product id
// attaches that product as the group's single RelatedProduct; if several
// rows match the same group, the last one wins.
//
// The listing query joins products on g.id = p.id rather than p.group_id
// (see listJoinedQuery). Aggregate keeps that shape intact so the client
// contract stays stable; correcting the join key is a one-line change in
// the query, not here.
func Aggregate(rows []Row) []Group {
	groups := make([]Group, 0, len(rows))
	index := make(map[int64]int, len(rows))

	for _, row := range rows {
		i, seen := index[row.ID]
		if !seen {
			i = len(groups)
			index[row.ID] = i
			groups = append(groups, Group{
				ID:           row.ID,
				TitleEn:      row.TitleEn,
				TitleRu:      row.TitleRu,
				ProductCount: row.ProductCount,
				DateCode:     row.DateCode,
				DateText:     row.DateText,
				USD:          row.USD,
				CreatedAt:    row.CreatedAt,
			})
		}

		if row.ProductID == nil {
			continue
		}

		p := &product.Product{
			ID:       *row.ProductID,
			DateCode: row.ProductDateCode,
			DateText: row.ProductDateText,
		}
		if row.ProductName != nil {
			p.Name = *row.ProductName
		}
		if row.ProductSerial != nil {
			p.Serial = *row.ProductSerial
		}
		if row.ProductStatus != nil {
			p.Status = *row.ProductStatus
		}
		if row.ProductCreatedAt != nil {
			p.CreatedAt = *row.ProductCreatedAt
		}
		groups[i].RelatedProduct = p
	}

	return groups
}
