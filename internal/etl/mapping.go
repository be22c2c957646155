package etl

import "strings"

// NormalizeHeader collapses a spreadsheet header into a match key: lower case,
// alphanumerics only.
func NormalizeHeader(h string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(strings.TrimSpace(h)) {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Canonical tape field names.
const (
	FieldLoanNumber      = "servicer_loan_number"
	FieldSellerAssetID   = "seller_asset_id"
	FieldCurrentBalance  = "current_balance"
	FieldDeferredBalance = "deferred_balance"
	FieldTotalDebt       = "total_debt"
	FieldInterestRate    = "interest_rate"
	FieldMonthlyPayment  = "monthly_payment"
	FieldPurchaseBasis   = "purchase_basis"
	FieldEscrowBalance   = "escrow_balance"
	FieldOriginationDate = "origination_date"
	FieldMaturityDate    = "maturity_date"
	FieldNextDueDate     = "next_due_date"
	FieldLastPaidDate    = "last_paid_date"
	FieldStreet          = "street"
	FieldCity            = "city"
	FieldState           = "state"
	FieldZip             = "zip"
	FieldPropertyType    = "property_type"
	FieldSquareFeet      = "square_feet"
	FieldBeds            = "beds"
	FieldBaths           = "baths"
	FieldYearBuilt       = "year_built"
	FieldOccupancy       = "occupancy"
	FieldAsOfDate        = "as_of_date"
	FieldUPB             = "upb"
	FieldStatusCode      = "status_code"
)

// tapeAliases maps normalized seller-tape headers to canonical fields. Sellers
// never agree on column names; extend here as new tapes show up.
var tapeAliases = map[string]string{
	"loannumber":         FieldLoanNumber,
	"loanid":             FieldLoanNumber,
	"servicerloannumber": FieldLoanNumber,
	"svcloannum":         FieldLoanNumber,
	"assetid":            FieldSellerAssetID,
	"sellerassetid":      FieldSellerAssetID,
	"sellerloanid":       FieldSellerAssetID,
	"currentbalance":     FieldCurrentBalance,
	"currupb":            FieldCurrentBalance,
	"currentupb":         FieldCurrentBalance,
	"upb":                FieldCurrentBalance,
	"unpaidbalance":      FieldCurrentBalance,
	"deferredbalance":    FieldDeferredBalance,
	"deferredupb":        FieldDeferredBalance,
	"totaldebt":          FieldTotalDebt,
	"totalpayoff":        FieldTotalDebt,
	"payoffamount":       FieldTotalDebt,
	"interestrate":       FieldInterestRate,
	"noterate":           FieldInterestRate,
	"rate":               FieldInterestRate,
	"monthlypayment":     FieldMonthlyPayment,
	"piti":               FieldMonthlyPayment,
	"pipayment":          FieldMonthlyPayment,
	"purchasebasis":      FieldPurchaseBasis,
	"purchaseprice":      FieldPurchaseBasis,
	"allocatedprice":     FieldPurchaseBasis,
	"escrowbalance":      FieldEscrowBalance,
	"escrow":             FieldEscrowBalance,
	"originationdate":    FieldOriginationDate,
	"origdate":           FieldOriginationDate,
	"maturitydate":       FieldMaturityDate,
	"maturity":           FieldMaturityDate,
	"nextduedate":        FieldNextDueDate,
	"nextdue":            FieldNextDueDate,
	"duedate":            FieldNextDueDate,
	"lastpaiddate":       FieldLastPaidDate,
	"lastpmtdate":        FieldLastPaidDate,
	"street":             FieldStreet,
	"address":            FieldStreet,
	"propertyaddress":    FieldStreet,
	"city":               FieldCity,
	"propertycity":       FieldCity,
	"state":              FieldState,
	"propertystate":      FieldState,
	"st":                 FieldState,
	"zip":                FieldZip,
	"zipcode":            FieldZip,
	"postalcode":         FieldZip,
	"propertytype":       FieldPropertyType,
	"proptype":           FieldPropertyType,
	"squarefeet":         FieldSquareFeet,
	"sqft":               FieldSquareFeet,
	"gla":                FieldSquareFeet,
	"livingarea":         FieldSquareFeet,
	"beds":               FieldBeds,
	"bedrooms":           FieldBeds,
	"baths":              FieldBaths,
	"bathrooms":          FieldBaths,
	"yearbuilt":          FieldYearBuilt,
	"yrbuilt":            FieldYearBuilt,
	"occupancy":          FieldOccupancy,
	"occupancystatus":    FieldOccupancy,
}

// servicerAliases maps servicer-feed headers. UPB stays distinct from the tape
// mapping because servicer feeds report it as of a snapshot date.
var servicerAliases = map[string]string{
	"loannumber":         FieldLoanNumber,
	"loanid":             FieldLoanNumber,
	"servicerloannumber": FieldLoanNumber,
	"asofdate":           FieldAsOfDate,
	"reportdate":         FieldAsOfDate,
	"snapshotdate":       FieldAsOfDate,
	"upb":                FieldUPB,
	"currentupb":         FieldUPB,
	"unpaidbalance":      FieldUPB,
	"escrowbalance":      FieldEscrowBalance,
	"escrow":             FieldEscrowBalance,
	"nextduedate":        FieldNextDueDate,
	"nextdue":            FieldNextDueDate,
	"lastpaiddate":       FieldLastPaidDate,
	"lastpmtdate":        FieldLastPaidDate,
	"statuscode":         FieldStatusCode,
	"loanstatus":         FieldStatusCode,
	"status":             FieldStatusCode,
}

// MapHeaders resolves a header row against an alias table, returning canonical
// field name by column index. Unknown columns are simply absent.
func MapHeaders(headers []string, aliases map[string]string) map[int]string {
	mapped := make(map[int]string, len(headers))
	for i, h := range headers {
		if field, ok := aliases[NormalizeHeader(h)]; ok {
			// First column wins when a tape repeats a header.
			if !containsValue(mapped, field) {
				mapped[i] = field
			}
		}
	}
	return mapped
}

func containsValue(m map[int]string, v string) bool {
	for _, existing := range m {
		if existing == v {
			return true
		}
	}
	return false
}

// MapTapeHeaders resolves seller-tape headers.
func MapTapeHeaders(headers []string) map[int]string {
	return MapHeaders(headers, tapeAliases)
}

// MapServicerHeaders resolves servicer-feed headers.
func MapServicerHeaders(headers []string) map[int]string {
	return MapHeaders(headers, servicerAliases)
}

// RowValues projects a raw row through a header mapping.
func RowValues(row []string, mapping map[int]string) map[string]string {
	values := make(map[string]string, len(mapping))
	for idx, field := range mapping {
		if idx < len(row) {
			values[field] = row[idx]
		}
	}
	return values
}
