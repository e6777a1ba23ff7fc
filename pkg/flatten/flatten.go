package flatten

import (
	"fmt"

	"github.com/iwvelando/rehab-plan/pkg/allocation"
	"github.com/iwvelando/rehab-plan/pkg/mathutil"
)

// Creditors flattens records into engine rows: each record's own row followed
// by one row per subrogated claim. Subrogated rows inherit the preferential
// flag of their parent and are never secured. Secured data is used only when
// the record is marked secured and carries it.
func Creditors(records []CreditorRecord) []allocation.Creditor {
	creditors := make([]allocation.Creditor, 0, len(records))
	for _, r := range records {
		creditors = append(creditors, creditor(r))
		if !r.IsSubrogated {
			continue
		}
		for k, sub := range r.Subrogations {
			creditors = append(creditors, subrogated(r, sub, k+1))
		}
	}
	return creditors
}

func creditor(r CreditorRecord) allocation.Creditor {
	c := allocation.Creditor{
		ID:             r.ID,
		Number:         r.Number,
		Name:           r.Name,
		Principal:      mathutil.ToWon(r.Principal),
		IsPreferential: r.IsPreferential,
	}
	if secured, ok := r.Secured(); ok {
		c.IsSecured = true
		c.UnrepayableAmount = mathutil.ToWon(secured.UnrepayableAmount)
	}
	return c
}

func subrogated(parent CreditorRecord, sub SubrogationRecord, k int) allocation.Creditor {
	id := sub.ID
	if id == "" {
		id = fmt.Sprintf("%s-sub%d", parent.ID, k)
	}
	number := sub.Number
	if number == "" {
		number = fmt.Sprintf("%s-%d", parent.Number, k)
	}
	return allocation.Creditor{
		ID:             id,
		Number:         number,
		Name:           sub.Name,
		Principal:      mathutil.ToWon(sub.Principal),
		IsPreferential: parent.IsPreferential,
	}
}

// Secured returns the record's secured data when the record is a secured
// claim carrying it.
func (r CreditorRecord) Secured() (SecuredData, bool) {
	if !r.IsSecured || r.SecuredData == nil {
		return SecuredData{}, false
	}
	return *r.SecuredData, true
}
