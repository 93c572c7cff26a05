package docnum

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Document number prefixes used across the ERP.
const (
	PrefixGRN       = "GRN"
	PrefixStockTxn  = "STE"
	PrefixPO        = "PO"
	PrefixRFQ       = "RFQ"
	PrefixSQ        = "SQTN"
	PrefixSalesQ    = "SAL-QTN"
	PrefixSalesOrd  = "SAL-ORD"
	PrefixBOM       = "BOM"
	PrefixProdOrder = "MFG"
)

// Format renders a document number as PREFIX-YYYYMMDD-NNNN,
// e.g. GRN-20240101-0001.
func Format(prefix string, date time.Time, seq int) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, date.Format("20060102"), seq)
}

// DayPrefix returns the LIKE pattern prefix for all numbers of a given
// document type on a given day. Repositories match against it to find the
// last issued number.
func DayPrefix(prefix string, date time.Time) string {
	return fmt.Sprintf("%s-%s-", prefix, date.Format("20060102"))
}

// Seq extracts the sequence from a formatted document number, so the next
// number can be derived from the last issued one.
func Seq(no string) (int, error) {
	i := strings.LastIndex(no, "-")
	if i < 0 || i == len(no)-1 {
		return 0, fmt.Errorf("malformed document number %q", no)
	}
	return strconv.Atoi(no[i+1:])
}
