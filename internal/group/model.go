package group

import (
	"time"

	"github.com/sp1r1tt/dashboard2025/internal/product"
)

// Group represents an arrival group (shipment) with at most one related
// product attached by the listing aggregation.
//
// ProductCount is the denormalized counter stored on the group row. It is
// independent of how many product rows actually reference the group and is
// passed through as-is; the aggregation never reconciles the two.
type Group struct {
	ID             int64
	TitleEn        string
	TitleRu        string
	ProductCount   int
	DateCode       string
	DateText       string
	USD            *string
	CreatedAt      time.Time
	RelatedProduct *product.Product
}

// Row is one flat record from the group/product left join. The product
// columns are nil when no product row matched.
type Row struct {
	ID               int64
	TitleEn          string
	TitleRu          string
	ProductCount     int
	DateCode         string
	DateText         string
	USD              *string
	CreatedAt        time.Time
	ProductID        *int64
	ProductName      *string
	ProductSerial    *string
	ProductStatus    *string
	ProductDateCode  *string
	ProductDateText  *string
	ProductCreatedAt *time.Time
}
