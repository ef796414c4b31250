package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is one customer profile from the profile index. Monetary fields
// are decimals; the index stores them as numbers.
type Customer struct {
	ID           string     `json:"id"`
	CompanyName  string     `json:"companyName"`
	CustomerNo   string     `json:"customerNo"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Province     string     `json:"province"`
	District     string     `json:"district"`
	RegionCode   string     `json:"regionCode"`
	SalesRepName string     `json:"salesRepName"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	Active       bool       `json:"active"`
	UserType     string     `json:"userType"`
	Address      string     `json:"address"`
	LocationCode string     `json:"locationCode"`
	UserName     string     `json:"userName"`

	DbsLimit       decimal.Decimal `json:"dbsLimit"`
	DbsDebt        decimal.Decimal `json:"dbsDebt"`
	DbsRemaining   decimal.Decimal `json:"dbsRemaining"`
	LimitUsageRate decimal.Decimal `json:"limitUsageRate"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	MortgageLimit  decimal.Decimal `json:"mortgageLimit"`
	InsuranceLimit decimal.Decimal `json:"insuranceLimit"`
	CheckRisk      decimal.Decimal `json:"checkRisk"`
	OpenOrders     decimal.Decimal `json:"openOrders"`
	OpenInvoices   decimal.Decimal `json:"openInvoices"`
	OpenShipments  decimal.Decimal `json:"openShipments"`
	OpenDeliveries decimal.Decimal `json:"openDeliveries"`
	Aging0         decimal.Decimal `json:"aging0"`
	Aging30        decimal.Decimal `json:"aging30"`
	Aging60        decimal.Decimal `json:"aging60"`
	Aging90        decimal.Decimal `json:"aging90"`
	Aging120       decimal.Decimal `json:"aging120"`
	RemainingLimit decimal.Decimal `json:"remainingLimit"`
	Overdue        decimal.Decimal `json:"overdue"`
}
