package handler

import (
	"slices"
	"strconv"
)

type LoginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ClientParams struct {
	ClientID int64   `param:"client_id" json:"-"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status"`
}

// Decimal values (price, area, totals) travel as JSON strings so nothing is
// rounded on the way through.
type ProductParams struct {
	ProductID   int64   `param:"product_id" json:"-"`
	Name        *string `json:"name"`
	Price       *string `json:"price"`
	Category    *string `json:"category"`
	Unit        *string `json:"unit"`
	Description *string `json:"description"`
	Stock       *int64  `json:"stock"`
}

type QuotationParams struct {
	QuotationID   int64   `param:"quotation_id" json:"-"`
	ClientID      *int64  `json:"clientId"`
	Description   *string `json:"description"`
	Area          *string `json:"area"`
	TotalValue    *string `json:"totalValue"`
	DeliveryValue *string `json:"deliveryValue"`
	Status        *string `json:"status"`
}

type NoteParams struct {
	NoteID   int64   `param:"note_id" json:"-"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Color    *string `json:"color"`
	IsPinned *bool   `json:"isPinned"`
}

type RevenueParams struct {
	TotalRevenue float64 `json:"totalRevenue"`
}

var (
	clientStatuses    = []string{"active", "inactive", "pending"}
	productCategories = []string{"paver", "bloco", "guia", "outro"}
	productUnits      = []string{"m2", "un", "m_linear"}
	quotationStatuses = []string{"approved", "pending", "rejected", "completed"}
	noteColors        = []string{"yellow", "blue", "green", "pink", "purple"}
)

func isOneOf(value string, options []string) bool {
	return slices.Contains(options, value)
}

func isDecimal(value string) bool {
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}
