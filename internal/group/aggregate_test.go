package group_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sp1r1tt/dashboard2025/internal/group"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func groupOnlyRow(id int64, titleEn string) group.Row {
	return group.Row{
		ID:        id,
		TitleEn:   titleEn,
		TitleRu:   titleEn + "-ru",
		DateCode:  "2024-W01",
		DateText:  "January",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func joinedRow(id int64, titleEn, productName string) group.Row {
	row := groupOnlyRow(id, titleEn)
	row.ProductID = int64Ptr(id)
	row.ProductName = strPtr(productName)
	row.ProductSerial = strPtr("SN-" + productName)
	row.ProductStatus = strPtr("Free")
	row.ProductCreatedAt = timePtr(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	return row
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, group.Aggregate(nil))
	assert.Empty(t, group.Aggregate([]group.Row{}))
}

func TestAggregate_GroupWithoutProduct(t *testing.T) {
	t.Parallel()

	groups := group.Aggregate([]group.Row{groupOnlyRow(1, "arrival-1")})

	require.Len(t, groups, 1)
	assert.Equal(t, int64(1), groups[0].ID)
	assert.Equal(t, "arrival-1", groups[0].TitleEn)
	assert.Nil(t, groups[0].RelatedProduct)
}

func TestAggregate_AttachesRelatedProduct(t *testing.T) {
	t.Parallel()

	groups := group.Aggregate([]group.Row{joinedRow(1, "arrival-1", "scanner")})

	require.Len(t, groups, 1)
	require.NotNil(t, groups[0].RelatedProduct)
	assert.Equal(t, int64(1), groups[0].RelatedProduct.ID)
	assert.Equal(t, "scanner", groups[0].RelatedProduct.Name)
	assert.Equal(t, "SN-scanner", groups[0].RelatedProduct.Serial)
	assert.Equal(t, "Free", groups[0].RelatedProduct.Status)
}

func TestAggregate_PreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	rows := []group.Row{
		groupOnlyRow(3, "c"),
		groupOnlyRow(1, "a"),
		groupOnlyRow(2, "b"),
	}

	groups := group.Aggregate(rows)

	require.Len(t, groups, 3)
	assert.Equal(t, int64(3), groups[0].ID)
	assert.Equal(t, int64(1), groups[1].ID)
	assert.Equal(t, int64(2), groups[2].ID)
}

func TestAggregate_DuplicateGroupRowsFoldToOne(t *testing.T) {
	t.Parallel()

	rows := []group.Row{
		joinedRow(1, "arrival-1", "first"),
		joinedRow(1, "arrival-1", "second"),
		groupOnlyRow(2, "arrival-2"),
	}

	groups := group.Aggregate(rows)

	require.Len(t, groups, 2)
	require.NotNil(t, groups[0].RelatedProduct)
	// Last matching row wins.
	assert.Equal(t, "second", groups[0].RelatedProduct.Name)
	assert.Nil(t, groups[1].RelatedProduct)
}

func TestAggregate_ProductCountIsPassedThroughUnreconciled(t *testing.T) {
	t.Parallel()

	row := joinedRow(1, "arrival-1", "A")
	row.ProductCount = 2 // counter disagrees with the single joined row

	groups := group.Aggregate([]group.Row{row})

	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].ProductCount)
	require.NotNil(t, groups[0].RelatedProduct)
	assert.Equal(t, "A", groups[0].RelatedProduct.Name)
}

func TestAggregate_IdempotentOverSameRows(t *testing.T) {
	t.Parallel()

	rows := []group.Row{
		joinedRow(2, "b", "widget"),
		groupOnlyRow(1, "a"),
	}

	first := group.Aggregate(rows)
	second := group.Aggregate(rows)

	assert.Equal(t, first, second)
}
