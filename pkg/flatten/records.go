// Package flatten turns the creditor records of a case file into the flat
// creditor rows the allocation engine works on.
package flatten

// CreditorRecord is a creditor as entered in a case file. Monetary fields are
// raw numbers and may be fractional, negative or missing.
type CreditorRecord struct {
	ID             string
	Number         string
	Name           string
	Reason         string
	Principal      float64
	Interest       float64
	IsPreferential bool
	IsSecured      bool
	SecuredData    *SecuredData
	IsSubrogated   bool
	Subrogations   []SubrogationRecord
}

// SecuredData describes the collateral of a secured (separate-interest) claim.
type SecuredData struct {
	CurrentAmount               float64
	ExpectedRepaymentAmount     float64 // recoverable through the collateral
	UnrepayableAmount           float64 // not recoverable through the collateral
	SecuredRehabilitationAmount float64
	MaxAmount                   float64
	CollateralObject            string
}

// SubrogationRecord is a claim a guarantor or insurer acquired by paying part
// of the original creditor's claim.
type SubrogationRecord struct {
	ID        string
	Number    string
	Name      string
	Reason    string
	Principal float64
	Damages   float64
	Interest  float64
}
